// Package i18n holds the server-side message catalogs for the three site
// locales. Content selection is done through the typed Locale enum so a
// missing translation is a compile-time hole, not a runtime fallback chain.
package i18n

import "strings"

type Locale string

const (
	LocaleES Locale = "es"
	LocaleEN Locale = "en"
	LocaleCA Locale = "ca"
)

// Parse maps a client-supplied locale tag to a supported Locale.
// Spanish is the site default.
func Parse(value string) Locale {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "en":
		return LocaleEN
	case "ca":
		return LocaleCA
	default:
		return LocaleES
	}
}

func (l Locale) Valid() bool {
	return l == LocaleES || l == LocaleEN || l == LocaleCA
}

// OrderContent carries every translated string used by the order emails.
type OrderContent struct {
	OwnerSubject    string
	CustomerSubject string
	OrderDetails    string
	CustomerInfo    string
	ShippingAddress string
	PaymentMethod   string
	Product         string
	Quantity        string
	Price           string
	Total           string
	OrderTotal      string
	CustomerThanks  string
	CustomerMessage string
	OwnerMessage    string
	NeedAction      string
}

var orderContent = map[Locale]OrderContent{
	LocaleES: {
		OwnerSubject:    "Nuevo Pedido",
		CustomerSubject: "Confirmación de Pedido",
		OrderDetails:    "Detalles del Pedido",
		CustomerInfo:    "Información del Cliente",
		ShippingAddress: "Dirección de Instalación",
		PaymentMethod:   "Método de Pago",
		Product:         "Producto",
		Quantity:        "Cant.",
		Price:           "Precio",
		Total:           "Total",
		OrderTotal:      "Total del Pedido",
		CustomerThanks:  "¡Gracias por tu compra!",
		CustomerMessage: "Hemos recibido tu pedido y nos pondremos en contacto pronto para confirmar los detalles y programar la instalación.",
		OwnerMessage:    "Se ha recibido un nuevo pedido desde la tienda online.",
		NeedAction:      "Acción Requerida: Contactar al cliente para confirmar el pedido y programar la instalación.",
	},
	LocaleEN: {
		OwnerSubject:    "New Order",
		CustomerSubject: "Order Confirmation",
		OrderDetails:    "Order Details",
		CustomerInfo:    "Customer Information",
		ShippingAddress: "Installation Address",
		PaymentMethod:   "Payment Method",
		Product:         "Product",
		Quantity:        "Qty",
		Price:           "Price",
		Total:           "Total",
		OrderTotal:      "Order Total",
		CustomerThanks:  "Thank you for your purchase!",
		CustomerMessage: "We have received your order and will contact you soon to confirm the details and schedule the installation.",
		OwnerMessage:    "A new order has been received from the online store.",
		NeedAction:      "Action Required: Contact the customer to confirm the order and schedule installation.",
	},
	LocaleCA: {
		OwnerSubject:    "Nova Comanda",
		CustomerSubject: "Confirmació de Comanda",
		OrderDetails:    "Detalls de la Comanda",
		CustomerInfo:    "Informació del Client",
		ShippingAddress: "Adreça d'Instal·lació",
		PaymentMethod:   "Mètode de Pagament",
		Product:         "Producte",
		Quantity:        "Qty",
		Price:           "Preu",
		Total:           "Total",
		OrderTotal:      "Total Comanda",
		CustomerThanks:  "Gràcies per la teva compra!",
		CustomerMessage: "Hem rebut la teva comanda i ens posarem en contacte aviat per confirmar els detalls i programar la instal·lació.",
		OwnerMessage:    "S'ha rebut una nova comanda des de la botiga en línia.",
		NeedAction:      "Acció Requerida: Contactar amb el client per confirmar la comanda i programar la instal·lació.",
	},
}

func Order(l Locale) OrderContent {
	if c, ok := orderContent[l]; ok {
		return c
	}
	return orderContent[LocaleES]
}

// QuoteContent carries the strings for the internal quote-lead notification.
type QuoteContent struct {
	Subject string
	Intro   string
	Name    string
	Email   string
	Phone   string
	Service string
	Zone    string
	Message string
	Follow  string
}

var quoteContent = map[Locale]QuoteContent{
	LocaleES: {
		Subject: "Nueva solicitud de presupuesto",
		Intro:   "Se ha recibido una nueva solicitud desde la web.",
		Name:    "Nombre",
		Email:   "Email",
		Phone:   "Teléfono",
		Service: "Servicio",
		Zone:    "Zona",
		Message: "Mensaje",
		Follow:  "¡Contacta cuanto antes!",
	},
	LocaleEN: {
		Subject: "New quote request",
		Intro:   "A new request has been received from the website.",
		Name:    "Name",
		Email:   "Email",
		Phone:   "Phone",
		Service: "Service",
		Zone:    "Area",
		Message: "Message",
		Follow:  "Contact them as soon as possible!",
	},
	LocaleCA: {
		Subject: "Nova sol·licitud de pressupost",
		Intro:   "S'ha rebut una nova sol·licitud des del web.",
		Name:    "Nom",
		Email:   "Email",
		Phone:   "Telèfon",
		Service: "Servei",
		Zone:    "Zona",
		Message: "Missatge",
		Follow:  "Contacta al més aviat possible!",
	},
}

func Quote(l Locale) QuoteContent {
	if c, ok := quoteContent[l]; ok {
		return c
	}
	return quoteContent[LocaleES]
}

// Payment method codes as submitted by the checkout form.
const (
	PaymentTransfer = "transferencia"
	PaymentCash     = "efectivo"
	PaymentCard     = "tarjeta"
)

var paymentLabels = map[string]map[Locale]string{
	PaymentTransfer: {
		LocaleES: "Transferencia Bancaria",
		LocaleEN: "Bank Transfer",
		LocaleCA: "Transferència Bancària",
	},
	PaymentCash: {
		LocaleES: "Efectivo",
		LocaleEN: "Cash",
		LocaleCA: "Efectiu",
	},
	PaymentCard: {
		LocaleES: "Tarjeta de Crédito/Débito",
		LocaleEN: "Credit/Debit Card",
		LocaleCA: "Targeta de Crèdit/Dèbit",
	},
}

// PaymentMethodLabel maps a payment code to its human-readable label.
// Unknown codes pass through verbatim.
func PaymentMethodLabel(method string, l Locale) string {
	labels, ok := paymentLabels[method]
	if !ok {
		return method
	}
	if label, ok := labels[l]; ok {
		return label
	}
	return labels[LocaleES]
}
