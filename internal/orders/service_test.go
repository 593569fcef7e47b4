package orders

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Guidoll2/fontaneriabarcelona/internal/cart"
	"github.com/Guidoll2/fontaneriabarcelona/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDispatcher struct {
	sent []Order
	err  error
}

func (f *fakeDispatcher) SendOrderEmails(ctx context.Context, order Order) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, order)
	return nil
}

func validRequest() Request {
	return Request{
		Items: []cart.Item{
			{ID: "caldera-1", Name: "Caldera Estándar 24kW", Price: 1200, Quantity: 1},
			{ID: "caldera-2", Name: "Caldera Premium 28kW", Price: 1450, Quantity: 2},
		},
		Customer: CustomerRequest{
			Name:          "Marta Vidal",
			Email:         "marta@example.com",
			Phone:         "612345678",
			Address:       "Carrer Mallorca 21",
			PaymentMethod: i18n.PaymentTransfer,
		},
		TotalPrice: 4100,
		Locale:     "es",
	}
}

func TestSubmitRecomputesTotal(t *testing.T) {
	d := &fakeDispatcher{}
	svc := NewService(d, time.UTC)

	order, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 4100.0, order.TotalPrice)
	assert.Equal(t, i18n.LocaleES, order.Locale)
	require.Len(t, d.sent, 1)
	assert.Equal(t, order.Number, d.sent[0].Number)
}

func TestSubmitRejectsTamperedTotal(t *testing.T) {
	d := &fakeDispatcher{}
	svc := NewService(d, time.UTC)

	req := validRequest()
	req.TotalPrice = 1

	_, err := svc.Submit(context.Background(), req)
	require.ErrorIs(t, err, ErrTotalMismatch)
	assert.Empty(t, d.sent, "a rejected order must not send emails")
}

func TestSubmitToleratesRoundingNoise(t *testing.T) {
	d := &fakeDispatcher{}
	svc := NewService(d, time.UTC)

	req := validRequest()
	req.TotalPrice = 4100.004

	_, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)
}

func TestSubmitRejectsEmptyAndInvalidItems(t *testing.T) {
	svc := NewService(&fakeDispatcher{}, time.UTC)

	req := validRequest()
	req.Items = nil
	_, err := svc.Submit(context.Background(), req)
	require.ErrorIs(t, err, ErrNoItems)

	req = validRequest()
	req.Items[0].Quantity = 0
	_, err = svc.Submit(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidItem)

	req = validRequest()
	req.Items[1].Price = -5
	_, err = svc.Submit(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidItem)
}

func TestSubmitFailsWhenDeliveryFails(t *testing.T) {
	d := &fakeDispatcher{err: errors.New("smtp timeout")}
	svc := NewService(d, time.UTC)

	_, err := svc.Submit(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrDeliveryFailed)
}

func TestSubmitFailsWithoutDispatcher(t *testing.T) {
	svc := NewService(nil, time.UTC)

	_, err := svc.Submit(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrDeliveryFailed)
}

func TestOrderNumberFormat(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	number := newOrderNumber(fixed)

	parts := strings.Split(number, "-")
	require.Len(t, parts, 3)
	assert.Equal(t, "ORD", parts[0])
	assert.Equal(t, "1772366400000", parts[1])
	assert.Len(t, parts[2], 9)
	assert.Equal(t, strings.ToUpper(parts[2]), parts[2])
}
