package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"
)

var welcomeTemplate = template.Must(template.New("welcome").Parse(`
<h1>Welcome, {{if .Name}}{{.Name}}{{else}}there{{end}}!</h1>
<p>Thank you for signing up for Local Lead Bot. Your personalized chatbot is ready to be installed on your website.</p>
<p>Copy the snippet below and paste it onto your website right before the closing <code>&lt;/body&gt;</code> tag.</p>
<pre><code>{{.Snippet}}</code></pre>
<p>That's it! The chatbot will appear on your site and start capturing leads for you immediately.</p>
<p>If you have any questions, just reply to this email.</p>
<p>Best,</p>
<p>The Local Lead Bot Team</p>
`))

func NewEmailSender(host string, port int, user, password, from, widgetScriptURL string) *EmailSender {
	return &EmailSender{
		Host:            host,
		Port:            port,
		User:            user,
		Password:        password,
		From:            from,
		WidgetScriptURL: widgetScriptURL,
	}
}

// SendWelcome delivers the onboarding email carrying the installation
// snippet with the account token embedded.
func (s *EmailSender) SendWelcome(to, name, accountID string) error {
	data := WelcomeEmailData{
		Name:    name,
		Snippet: WidgetSnippet(accountID, s.WidgetScriptURL),
	}

	var body bytes.Buffer
	if err := welcomeTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("render welcome email: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Welcome to Local Lead Bot! Your Chatbot is Ready.")
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send welcome email: %w", err)
	}
	return nil
}

// SendLeadNotification forwards one captured lead to the business owner.
func (s *EmailSender) SendLeadNotification(to string, lead LeadNotification) error {
	body := fmt.Sprintf(`You have a new lead!

Name: %s
Phone: %s
Service needed: %s
Preferred time: %s
`, lead.Name, lead.Phone, lead.Service, lead.PreferredTime)

	subject := "New Lead"
	if lead.BusinessName != "" {
		subject = fmt.Sprintf("New Lead for %s", lead.BusinessName)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send lead notification: %w", err)
	}
	return nil
}
