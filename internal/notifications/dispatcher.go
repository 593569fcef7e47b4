package notifications

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Guidoll2/fontaneriabarcelona/internal/leads"
	"github.com/Guidoll2/fontaneriabarcelona/internal/metrics"
	"github.com/Guidoll2/fontaneriabarcelona/internal/orders"
	"golang.org/x/sync/errgroup"
)

// Dispatcher renders and delivers the service's emails through the
// configured Mailer. It implements leads.Notifier and orders.Dispatcher.
type Dispatcher struct {
	mailer     Mailer
	ownerEmail string
	ownerName  string
	// bestEffort downgrades the owner copy of an order to a logged failure.
	// The customer confirmation always stays mandatory.
	bestEffort bool
	log        *slog.Logger
}

func NewDispatcher(mailer Mailer, ownerEmail, ownerName string, bestEffort bool, log *slog.Logger) *Dispatcher {
	if mailer == nil || ownerEmail == "" {
		return nil
	}
	return &Dispatcher{
		mailer:     mailer,
		ownerEmail: ownerEmail,
		ownerName:  ownerName,
		bestEffort: bestEffort,
		log:        log,
	}
}

func (d *Dispatcher) SendQuoteNotification(ctx context.Context, lead leads.QuoteLead) error {
	if d == nil {
		return errors.New("dispatcher is nil")
	}
	msg, err := BuildQuoteNotification(lead, d.ownerEmail, d.ownerName)
	if err != nil {
		return err
	}
	return d.send(ctx, msg)
}

func (d *Dispatcher) SendChlorinatorNotification(ctx context.Context, lead leads.ChlorinatorLead) error {
	if d == nil {
		return errors.New("dispatcher is nil")
	}
	msg, err := BuildChlorinatorNotification(lead, d.ownerEmail, d.ownerName)
	if err != nil {
		return err
	}
	return d.send(ctx, msg)
}

// SendOrderEmails delivers the owner notification and the customer
// confirmation concurrently and waits for both. Either failure fails the
// operation, unless best-effort mode relaxes the owner copy.
func (d *Dispatcher) SendOrderEmails(ctx context.Context, order orders.Order) error {
	if d == nil {
		return errors.New("dispatcher is nil")
	}

	ownerMsg, customerMsg, err := BuildOrderEmails(order, d.ownerEmail, d.ownerName)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := d.send(ctx, ownerMsg)
		if err != nil && d.bestEffort {
			d.log.Warn("order owner notification failed, continuing",
				slog.String("order_number", order.Number),
				slog.String("error", err.Error()),
			)
			return nil
		}
		return err
	})
	g.Go(func() error {
		return d.send(ctx, customerMsg)
	})
	return g.Wait()
}

func (d *Dispatcher) send(ctx context.Context, msg Message) error {
	if err := d.mailer.Send(ctx, msg); err != nil {
		metrics.EmailsSent.WithLabelValues("error").Inc()
		return err
	}
	metrics.EmailsSent.WithLabelValues("ok").Inc()
	return nil
}
