// Package orders handles shop checkout submissions: validation, server-side
// total recomputation and the two confirmation emails.
package orders

import (
	"time"

	"github.com/Guidoll2/fontaneriabarcelona/internal/cart"
	"github.com/Guidoll2/fontaneriabarcelona/internal/i18n"
)

type CustomerRequest struct {
	Name          string `json:"name" validate:"required,min=2"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required,phone"`
	Address       string `json:"address" validate:"required,min=2"`
	City          string `json:"city"`
	PostalCode    string `json:"postalCode"`
	Notes         string `json:"notes"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=transferencia efectivo tarjeta"`
}

type Request struct {
	Items      []cart.Item     `json:"items" validate:"required,min=1"`
	Customer   CustomerRequest `json:"customer" validate:"required"`
	TotalPrice float64         `json:"totalPrice" validate:"gte=0"`
	Locale     string          `json:"locale" validate:"omitempty,locale"`
}

// Order is an accepted submission with its generated reference.
type Order struct {
	Number     string
	Items      []cart.Item
	Customer   CustomerRequest
	TotalPrice float64
	Locale     i18n.Locale
	CreatedAt  time.Time
}

// Total recomputes the grand total from the line items. This figure, not the
// client-sent one, is what gets confirmed and emailed.
func Total(items []cart.Item) float64 {
	total := 0.0
	for _, item := range items {
		total += item.LineTotal()
	}
	return total
}
