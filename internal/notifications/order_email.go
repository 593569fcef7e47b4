package notifications

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
	texttemplate "text/template"

	"github.com/Guidoll2/fontaneriabarcelona/internal/i18n"
	"github.com/Guidoll2/fontaneriabarcelona/internal/orders"
)

const orderEmailHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="margin: 0; padding: 0; font-family: Arial, sans-serif; background-color: #f3f4f6;">
  <div style="max-width: 600px; margin: 0 auto; background-color: #ffffff;">
    <div style="background: #1d4ed8; padding: 32px 20px; text-align: center;">
      <h1 style="color: #ffffff; margin: 0; font-size: 26px;">{{.Headline}}</h1>
      {{if not .IsOwner}}<p style="color: #e0e7ff; margin: 10px 0 0 0;">{{.Content.CustomerMessage}}</p>{{end}}
    </div>
    <div style="padding: 32px 20px;">
      {{if .IsOwner}}
      <div style="background-color: #fef3c7; border-left: 4px solid #f59e0b; padding: 16px; margin-bottom: 24px;">
        <p style="margin: 0; color: #92400e; font-weight: 600;">{{.Content.NeedAction}}</p>
      </div>
      {{end}}
      <p style="margin: 0 0 4px 0; color: #6b7280; font-size: 14px;">#</p>
      <p style="margin: 0; color: #111827; font-size: 20px; font-weight: bold;">{{.OrderNumber}}</p>
      <p style="margin: 8px 0 24px 0; color: #6b7280; font-size: 14px;">{{.OrderDate}}</p>

      <div style="background-color: #f9fafb; padding: 20px; border-radius: 8px; margin-bottom: 24px;">
        <h2 style="margin: 0 0 16px 0; color: #111827; font-size: 18px;">{{.Content.CustomerInfo}}</h2>
        <table style="width: 100%; border-collapse: collapse;">
          <tr><td style="padding: 6px 0; color: #6b7280; width: 40%;">{{.Content.CustomerInfo}}:</td><td style="padding: 6px 0; color: #111827; font-weight: 600;">{{.Customer.Name}}</td></tr>
          <tr><td style="padding: 6px 0; color: #6b7280;">Email:</td><td style="padding: 6px 0; color: #111827; font-weight: 600;">{{.Customer.Email}}</td></tr>
          <tr><td style="padding: 6px 0; color: #6b7280;">Tel:</td><td style="padding: 6px 0; color: #111827; font-weight: 600;">{{.Customer.Phone}}</td></tr>
          <tr><td style="padding: 6px 0; color: #6b7280;">{{.Content.ShippingAddress}}:</td><td style="padding: 6px 0; color: #111827; font-weight: 600;">{{.Address}}</td></tr>
          <tr><td style="padding: 6px 0; color: #6b7280;">{{.Content.PaymentMethod}}:</td><td style="padding: 6px 0; color: #111827; font-weight: 600;">{{.PaymentLabel}}</td></tr>
          {{if .Customer.Notes}}<tr><td style="padding: 6px 0; color: #6b7280; vertical-align: top;">Notas:</td><td style="padding: 6px 0; color: #111827;">{{.Customer.Notes}}</td></tr>{{end}}
        </table>
      </div>

      <h2 style="margin: 0 0 16px 0; color: #111827; font-size: 18px;">{{.Content.OrderDetails}}</h2>
      <table style="width: 100%; border-collapse: collapse; border: 1px solid #e5e7eb;">
        <thead>
          <tr style="background-color: #f9fafb;">
            <th style="padding: 12px 8px; text-align: left; color: #6b7280; font-size: 12px; text-transform: uppercase;">{{.Content.Product}}</th>
            <th style="padding: 12px 8px; text-align: center; color: #6b7280; font-size: 12px; text-transform: uppercase;">{{.Content.Quantity}}</th>
            <th style="padding: 12px 8px; text-align: right; color: #6b7280; font-size: 12px; text-transform: uppercase;">{{.Content.Price}}</th>
            <th style="padding: 12px 8px; text-align: right; color: #6b7280; font-size: 12px; text-transform: uppercase;">{{.Content.Total}}</th>
          </tr>
        </thead>
        <tbody>
          {{range .Lines}}
          <tr style="border-bottom: 1px solid #e5e7eb;">
            <td style="padding: 12px 8px;"><strong>{{.Name}}</strong><br><small style="color: #6b7280;">{{.Description}}</small></td>
            <td style="padding: 12px 8px; text-align: center;">{{.Quantity}}</td>
            <td style="padding: 12px 8px; text-align: right;">{{.UnitPrice}}</td>
            <td style="padding: 12px 8px; text-align: right; font-weight: bold;">{{.LineTotal}}</td>
          </tr>
          {{end}}
        </tbody>
        <tfoot>
          <tr style="border-top: 2px solid #e5e7eb;">
            <td colspan="3" style="padding: 16px 8px; text-align: right; font-weight: bold; color: #111827; font-size: 18px;">{{.Content.OrderTotal}}</td>
            <td style="padding: 16px 8px; text-align: right; font-weight: bold; color: #1d4ed8; font-size: 20px;">{{.GrandTotal}}</td>
          </tr>
        </tfoot>
      </table>
    </div>
    <div style="background-color: #f9fafb; padding: 20px; text-align: center; border-top: 1px solid #e5e7eb;">
      <p style="margin: 0 0 8px 0; color: #6b7280; font-size: 14px;">Fontanería Low Cost</p>
      <p style="margin: 0 0 8px 0; color: #6b7280; font-size: 14px;">677 133 242 | info@fontaneriaipiscinas.com</p>
      <p style="margin: 0; color: #9ca3af; font-size: 12px;">Servicio profesional en Barcelona y comarca</p>
    </div>
  </div>
</body>
</html>`

const orderEmailTextTemplate = `{{.Subject}}

{{if .IsOwner}}{{.Content.NeedAction}}{{else}}{{.Content.CustomerMessage}}{{end}}

#{{.OrderNumber}}
{{.OrderDate}}

---
{{.Content.CustomerInfo}}
---
{{.Customer.Name}}
Email: {{.Customer.Email}}
Tel: {{.Customer.Phone}}
{{.Content.ShippingAddress}}: {{.Address}}
{{.Content.PaymentMethod}}: {{.PaymentLabel}}
{{if .Customer.Notes}}Notas: {{.Customer.Notes}}{{end}}

---
{{.Content.OrderDetails}}
---
{{range .Lines}}{{.Quantity}}x {{.Name}} - {{.UnitPrice}} = {{.LineTotal}}
{{end}}
{{.Content.OrderTotal}}: {{.GrandTotal}}

---
Fontanería Low Cost
677 133 242
info@fontaneriaipiscinas.com
`

var (
	orderEmailHTMLTmpl = template.Must(template.New("order_email_html").Parse(orderEmailHTMLTemplate))
	orderEmailTextTmpl = texttemplate.Must(texttemplate.New("order_email_text").Parse(orderEmailTextTemplate))
)

type orderLine struct {
	Name        string
	Description string
	Quantity    int
	UnitPrice   string
	LineTotal   string
}

type orderEmailData struct {
	IsOwner      bool
	Subject      string
	Headline     string
	Content      i18n.OrderContent
	OrderNumber  string
	OrderDate    string
	Customer     orders.CustomerRequest
	Address      string
	PaymentLabel string
	Lines        []orderLine
	GrandTotal   string
}

// BuildOrderEmails renders the owner notification and the customer
// confirmation for an accepted order.
func BuildOrderEmails(order orders.Order, ownerEmail, ownerName string) (owner Message, customer Message, err error) {
	content := i18n.Order(order.Locale)

	lines := make([]orderLine, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, orderLine{
			Name:        item.Name,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   formatEuro(item.Price),
			LineTotal:   formatEuro(item.LineTotal()),
		})
	}

	address := order.Customer.Address
	if order.Customer.City != "" {
		address += ", " + order.Customer.City
	}
	if order.Customer.PostalCode != "" {
		address += ", " + order.Customer.PostalCode
	}

	data := orderEmailData{
		Content:      content,
		OrderNumber:  order.Number,
		OrderDate:    order.CreatedAt.Format("02/01/2006 15:04"),
		Customer:     order.Customer,
		Address:      address,
		PaymentLabel: i18n.PaymentMethodLabel(order.Customer.PaymentMethod, order.Locale),
		Lines:        lines,
		GrandTotal:   formatEuro(order.TotalPrice),
	}

	ownerData := data
	ownerData.IsOwner = true
	ownerData.Subject = fmt.Sprintf("🛒 %s #%s", content.OwnerSubject, order.Number)
	ownerData.Headline = "🛒 " + content.OwnerSubject

	customerData := data
	customerData.Subject = fmt.Sprintf("✅ %s #%s", content.CustomerSubject, order.Number)
	customerData.Headline = "✅ " + content.CustomerThanks

	ownerHTML, ownerText, err := renderOrderEmail(ownerData)
	if err != nil {
		return Message{}, Message{}, err
	}
	customerHTML, customerText, err := renderOrderEmail(customerData)
	if err != nil {
		return Message{}, Message{}, err
	}

	owner = Message{
		To:      ownerEmail,
		ToName:  ownerName,
		Subject: ownerData.Subject,
		HTML:    ownerHTML,
		Text:    ownerText,
	}
	customer = Message{
		To:      order.Customer.Email,
		ToName:  order.Customer.Name,
		Subject: customerData.Subject,
		HTML:    customerHTML,
		Text:    customerText,
	}
	return owner, customer, nil
}

func renderOrderEmail(data orderEmailData) (html, text string, err error) {
	var htmlBuf, textBuf bytes.Buffer
	if err := orderEmailHTMLTmpl.Execute(&htmlBuf, data); err != nil {
		return "", "", err
	}
	if err := orderEmailTextTmpl.Execute(&textBuf, data); err != nil {
		return "", "", err
	}
	return htmlBuf.String(), textBuf.String(), nil
}

func formatEuro(value float64) string {
	return "€" + strconv.FormatFloat(value, 'f', -1, 64)
}
