package orders

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Guidoll2/fontaneriabarcelona/internal/i18n"
	"github.com/google/uuid"
)

var (
	// ErrNoItems rejects an order without line items.
	ErrNoItems = errors.New("no items in order")
	// ErrTotalMismatch rejects a client-sent total that does not match the
	// total recomputed from the line items.
	ErrTotalMismatch = errors.New("total price mismatch")
	// ErrInvalidItem rejects a line item with a non-positive quantity or a
	// negative price.
	ErrInvalidItem = errors.New("invalid line item")
	// ErrDeliveryFailed reports that a required confirmation email was not
	// delivered. Unlike quote leads, order acceptance depends on it.
	ErrDeliveryFailed = errors.New("confirmation email delivery failed")
)

// Dispatcher sends the owner notification and the customer confirmation for
// an accepted order.
type Dispatcher interface {
	SendOrderEmails(ctx context.Context, order Order) error
}

type Service struct {
	dispatcher Dispatcher
	location   *time.Location
	now        func() time.Time
}

func NewService(dispatcher Dispatcher, location *time.Location) *Service {
	return &Service{
		dispatcher: dispatcher,
		location:   location,
		now:        time.Now,
	}
}

// Submit validates the order, recomputes its total server-side and sends
// both confirmation emails. Email delivery is part of the contract: a
// failure fails the submission.
func (s *Service) Submit(ctx context.Context, req Request) (Order, error) {
	if len(req.Items) == 0 {
		return Order{}, ErrNoItems
	}
	for _, item := range req.Items {
		if item.Quantity < 1 || item.Price < 0 {
			return Order{}, ErrInvalidItem
		}
	}

	total := Total(req.Items)
	// The client echoes the total it displayed; anything else means a
	// tampered or stale cart.
	if math.Abs(total-req.TotalPrice) > 0.009 {
		return Order{}, fmt.Errorf("%w: got %.2f, computed %.2f", ErrTotalMismatch, req.TotalPrice, total)
	}

	now := s.now().In(s.location)
	order := Order{
		Number:     newOrderNumber(now),
		Items:      req.Items,
		Customer:   req.Customer,
		TotalPrice: total,
		Locale:     i18n.Parse(req.Locale),
		CreatedAt:  now,
	}

	if s.dispatcher == nil {
		return Order{}, fmt.Errorf("%w: mailer not configured", ErrDeliveryFailed)
	}
	if err := s.dispatcher.SendOrderEmails(ctx, order); err != nil {
		return Order{}, fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	return order, nil
}

// newOrderNumber builds the time-based reference quoted in both emails,
// e.g. ORD-1735689600000-3F2A81C9D.
func newOrderNumber(now time.Time) string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:9]
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), token)
}
