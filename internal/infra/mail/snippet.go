package mail

import "fmt"

// WidgetSnippet renders the installation block a customer pastes into their
// site. The account id is the only thing the widget needs: it reads it at
// runtime and attaches it to every lead submission.
func WidgetSnippet(accountID, scriptURL string) string {
	return fmt.Sprintf(`<script>
  window.leadBotConfig = {
    accountId: %q
  };
</script>
<script src=%q async defer></script>`, accountID, scriptURL)
}
