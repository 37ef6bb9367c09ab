package mail

type WelcomeEmailData struct {
	Name    string
	Snippet string
}

// LeadNotification is the display-ready lead forwarded to the owner.
type LeadNotification struct {
	BusinessName  string
	Name          string
	Phone         string
	Service       string
	PreferredTime string
}

type EmailSender struct {
	Host            string
	Port            int
	User            string
	Password        string
	From            string
	WidgetScriptURL string
}
