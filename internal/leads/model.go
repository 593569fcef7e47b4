// Package leads handles the quote and chlorinator-landing form submissions.
package leads

import (
	"strings"
	"time"
)

// Service tags a visitor can ask a quote for.
const (
	ServicePlumbing   = "plumbing"
	ServicePools      = "pools"
	ServiceElectrical = "electrical"
	ServiceEmergency  = "emergency"
)

// QuoteRequest is the general quote form payload. Field names on the wire
// match the Spanish site forms. Fax is the hidden decoy field.
type QuoteRequest struct {
	Name    string `json:"nombre" validate:"required,min=2"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"telefono" validate:"omitempty,phone"`
	Service string `json:"servicio" validate:"omitempty,oneof=plumbing pools electrical emergency"`
	Zone    string `json:"zona"`
	Message string `json:"mensaje"`
	Fax     string `json:"fax"`
	Locale  string `json:"locale" validate:"omitempty,locale"`
}

// Normalize trims every field so length constraints apply to the content,
// not the padding. Must run before validation: " J " is not a valid name.
func (r *QuoteRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Service = strings.TrimSpace(r.Service)
	r.Zone = strings.TrimSpace(r.Zone)
	r.Message = strings.TrimSpace(r.Message)
	r.Locale = strings.TrimSpace(r.Locale)
}

// ChlorinatorRequest is the salt-chlorinator landing form payload.
type ChlorinatorRequest struct {
	Name     string `json:"nombre" validate:"required,min=2"`
	Phone    string `json:"telefono" validate:"required,phone"`
	City     string `json:"poblacion" validate:"required,min=2"`
	PoolSize string `json:"tiposPiscina"`
	Message  string `json:"mensaje"`
	Source   string `json:"source"`
	Fax      string `json:"fax"`
	Locale   string `json:"locale" validate:"omitempty,locale"`
}

func (r *ChlorinatorRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.City = strings.TrimSpace(r.City)
	r.PoolSize = strings.TrimSpace(r.PoolSize)
	r.Message = strings.TrimSpace(r.Message)
	r.Source = strings.TrimSpace(r.Source)
	r.Locale = strings.TrimSpace(r.Locale)
}

// QuoteLead is the accepted quote as persisted: the submission verbatim plus
// the server-attached fields.
type QuoteLead struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"nombre" json:"nombre"`
	Email     string    `bson:"email,omitempty" json:"email,omitempty"`
	Phone     string    `bson:"telefono,omitempty" json:"telefono,omitempty"`
	Service   string    `bson:"servicio,omitempty" json:"servicio,omitempty"`
	Zone      string    `bson:"zona,omitempty" json:"zona,omitempty"`
	Message   string    `bson:"mensaje,omitempty" json:"mensaje,omitempty"`
	Locale    string    `bson:"locale" json:"locale"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	IP        string    `bson:"ip" json:"ip"`
	UserAgent string    `bson:"userAgent,omitempty" json:"userAgent,omitempty"`
}

type ChlorinatorLead struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"nombre" json:"nombre"`
	Phone     string    `bson:"telefono" json:"telefono"`
	City      string    `bson:"poblacion" json:"poblacion"`
	PoolSize  string    `bson:"tipoPiscina" json:"tipoPiscina"`
	Message   string    `bson:"mensaje,omitempty" json:"mensaje,omitempty"`
	Source    string    `bson:"source" json:"source"`
	Locale    string    `bson:"locale" json:"locale"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	IP        string    `bson:"ip" json:"ip"`
	UserAgent string    `bson:"userAgent,omitempty" json:"userAgent,omitempty"`
}

// Meta carries the server-attached request context.
type Meta struct {
	IP        string
	UserAgent string
}
