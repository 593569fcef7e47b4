package orders

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Guidoll2/fontaneriabarcelona/internal/cart"
	"github.com/Guidoll2/fontaneriabarcelona/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderTestHandler(d Dispatcher, carts *cart.Store) *Handler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(NewService(d, time.UTC), carts, validation.New(), log)
}

func postOrder(h *Handler, body, sessionToken string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if sessionToken != "" {
		req.Header.Set(cart.SessionHeader, sessionToken)
	}
	rec := httptest.NewRecorder()
	h.Create(rec, req)
	return rec
}

const validOrderBody = `{
	"items": [
		{"id":"caldera-1","name":"Caldera Estándar 24kW","price":1200,"quantity":1},
		{"id":"caldera-2","name":"Caldera Premium 28kW","price":1450,"quantity":2}
	],
	"customer": {
		"name": "Marta Vidal",
		"email": "marta@example.com",
		"phone": "612345678",
		"address": "Carrer Mallorca 21",
		"paymentMethod": "transferencia"
	},
	"totalPrice": 4100,
	"locale": "es"
}`

func TestCreateOrderEndpointOK(t *testing.T) {
	d := &fakeDispatcher{}
	h := newOrderTestHandler(d, nil)

	rec := postOrder(h, validOrderBody, "")
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

	var resp struct {
		Success     bool   `json:"success"`
		Message     string `json:"message"`
		OrderNumber string `json:"orderNumber"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, strings.HasPrefix(resp.OrderNumber, "ORD-"))
	require.Len(t, d.sent, 1)
}

func TestCreateOrderEndpointClearsCartSession(t *testing.T) {
	carts := cart.NewStore(30 * time.Minute)
	token, c := carts.Acquire("")
	c.AddItem(cart.Item{ID: "caldera-1", Price: 1200})

	h := newOrderTestHandler(&fakeDispatcher{}, carts)
	rec := postOrder(h, validOrderBody, token)
	require.Equal(t, http.StatusOK, rec.Code)

	again, _ := carts.Acquire(token)
	assert.NotEqual(t, token, again, "order submission should drop the cart session")
}

func TestCreateOrderEndpointTotalMismatch(t *testing.T) {
	h := newOrderTestHandler(&fakeDispatcher{}, nil)

	body := strings.Replace(validOrderBody, `"totalPrice": 4100`, `"totalPrice": 99`, 1)
	rec := postOrder(h, body, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "total does not match")
}

func TestCreateOrderEndpointDeliveryFailure(t *testing.T) {
	h := newOrderTestHandler(&fakeDispatcher{err: errors.New("mailer down")}, nil)

	rec := postOrder(h, validOrderBody, "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to process order")
}

func TestCreateOrderEndpointValidation(t *testing.T) {
	h := newOrderTestHandler(&fakeDispatcher{}, nil)

	cases := []struct {
		name string
		body string
	}{
		{"no items", `{"items":[],"customer":{"name":"M","email":"m@example.com","phone":"612345678","address":"C","paymentMethod":"efectivo"},"totalPrice":0}`},
		{"bad payment method", strings.Replace(validOrderBody, "transferencia", "bizum", 1)},
		{"missing customer email", strings.Replace(validOrderBody, `"email": "marta@example.com",`, "", 1)},
		{"invalid json", `{"items":`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postOrder(h, tc.body, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
