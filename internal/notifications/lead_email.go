package notifications

import (
	"bytes"
	"fmt"
	"html/template"
	texttemplate "text/template"

	"github.com/Guidoll2/fontaneriabarcelona/internal/i18n"
	"github.com/Guidoll2/fontaneriabarcelona/internal/leads"
)

const quoteNotificationTemplate = `<!DOCTYPE html>
<html>
<body>
  <h3>{{.Content.Subject}}</h3>
  <p>{{.Content.Intro}}</p>
  <p><strong>{{.Content.Name}}:</strong> {{.Lead.Name}}</p>
  {{if .Lead.Email}}<p><strong>{{.Content.Email}}:</strong> {{.Lead.Email}}</p>{{end}}
  {{if .Lead.Phone}}<p><strong>{{.Content.Phone}}:</strong> <a href="tel:{{.Lead.Phone}}">{{.Lead.Phone}}</a></p>{{end}}
  {{if .Lead.Service}}<p><strong>{{.Content.Service}}:</strong> {{.Lead.Service}}</p>{{end}}
  {{if .Lead.Zone}}<p><strong>{{.Content.Zone}}:</strong> {{.Lead.Zone}}</p>{{end}}
  {{if .Lead.Message}}<p><strong>{{.Content.Message}}:</strong><br/>{{.Lead.Message}}</p>{{end}}
  <hr>
  <p><small>ID: {{.Lead.ID}}</small></p>
  <p><small>IP: {{.Lead.IP}}</small></p>
  <p>{{.Content.Follow}}</p>
</body>
</html>`

const chlorinatorNotificationTemplate = `<!DOCTYPE html>
<html>
<body>
  <h3>🎯 Nuevo Lead: Instalación Clorador Salino</h3>
  <p><strong>Nombre:</strong> {{.Name}}</p>
  <p><strong>Teléfono:</strong> <a href="tel:{{.Phone}}">{{.Phone}}</a></p>
  <p><strong>Población:</strong> {{.City}}</p>
  <p><strong>Tamaño piscina:</strong> {{.PoolSize}}</p>
  {{if .Message}}<p><strong>Mensaje:</strong> {{.Message}}</p>{{end}}
  <hr>
  <p><small>ID: {{.ID}}</small></p>
  <p><small>IP: {{.IP}}</small></p>
  <p>¡Contacta cuanto antes!</p>
</body>
</html>`

const quoteNotificationTextTemplate = `{{.Content.Subject}}

{{.Content.Intro}}

{{.Content.Name}}: {{.Lead.Name}}
{{if .Lead.Email}}{{.Content.Email}}: {{.Lead.Email}}
{{end}}{{if .Lead.Phone}}{{.Content.Phone}}: {{.Lead.Phone}}
{{end}}{{if .Lead.Service}}{{.Content.Service}}: {{.Lead.Service}}
{{end}}{{if .Lead.Zone}}{{.Content.Zone}}: {{.Lead.Zone}}
{{end}}{{if .Lead.Message}}{{.Content.Message}}: {{.Lead.Message}}
{{end}}
ID: {{.Lead.ID}}
IP: {{.Lead.IP}}

{{.Content.Follow}}
`

const chlorinatorNotificationTextTemplate = `Nuevo Lead: Instalación Clorador Salino

Nombre: {{.Name}}
Teléfono: {{.Phone}}
Población: {{.City}}
Tamaño piscina: {{.PoolSize}}
{{if .Message}}Mensaje: {{.Message}}
{{end}}
ID: {{.ID}}
IP: {{.IP}}

¡Contacta cuanto antes!
`

var (
	quoteNotificationTmpl           = template.Must(template.New("quote_notification").Parse(quoteNotificationTemplate))
	quoteNotificationTextTmpl       = texttemplate.Must(texttemplate.New("quote_notification_text").Parse(quoteNotificationTextTemplate))
	chlorinatorNotificationTmpl     = template.Must(template.New("chlorinator_notification").Parse(chlorinatorNotificationTemplate))
	chlorinatorNotificationTextTmpl = texttemplate.Must(texttemplate.New("chlorinator_notification_text").Parse(chlorinatorNotificationTextTemplate))
)

type quoteNotificationData struct {
	Content i18n.QuoteContent
	Lead    leads.QuoteLead
}

// BuildQuoteNotification renders the internal email for a new quote lead.
func BuildQuoteNotification(lead leads.QuoteLead, ownerEmail, ownerName string) (Message, error) {
	locale := i18n.Parse(lead.Locale)
	content := i18n.Quote(locale)

	data := quoteNotificationData{Content: content, Lead: lead}
	var htmlBuf, textBuf bytes.Buffer
	if err := quoteNotificationTmpl.Execute(&htmlBuf, data); err != nil {
		return Message{}, err
	}
	if err := quoteNotificationTextTmpl.Execute(&textBuf, data); err != nil {
		return Message{}, err
	}

	return Message{
		To:      ownerEmail,
		ToName:  ownerName,
		Subject: fmt.Sprintf("🎯 %s - %s", content.Subject, lead.Name),
		HTML:    htmlBuf.String(),
		Text:    textBuf.String(),
	}, nil
}

// BuildChlorinatorNotification renders the internal email for a new
// chlorinator-landing lead. The sales team reads Spanish, so this one is
// not localized.
func BuildChlorinatorNotification(lead leads.ChlorinatorLead, ownerEmail, ownerName string) (Message, error) {
	var htmlBuf, textBuf bytes.Buffer
	if err := chlorinatorNotificationTmpl.Execute(&htmlBuf, lead); err != nil {
		return Message{}, err
	}
	if err := chlorinatorNotificationTextTmpl.Execute(&textBuf, lead); err != nil {
		return Message{}, err
	}

	return Message{
		To:      ownerEmail,
		ToName:  ownerName,
		Subject: fmt.Sprintf("🎯 Nuevo Lead: Clorador Salino - %s", lead.Name),
		HTML:    htmlBuf.String(),
		Text:    textBuf.String(),
	}, nil
}
