package service

import (
	"context"

	"focusflow/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutRequest carries the server-side priced checkout parameters. The
// amount always comes from the catalog, never from the client.
type CheckoutRequest struct {
	UserID      string
	Reference   string // package or product id
	Description string
	Amount      decimal.Decimal
	Currency    string
}

// CheckoutSession is the provider's handle for one checkout attempt.
type CheckoutSession struct {
	SessionID   string
	CheckoutURL string
}

// PaymentProvider abstracts the external payment processor. Production wires
// a real processor; dev and tests use DevProvider.
type PaymentProvider interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (CheckoutSession, error)
	CheckStatus(ctx context.Context, sessionID string) (domain.PaymentStatus, error)
}

// DevProvider fakes a processor that instantly settles every session. Useful
// for local development and the integration tests.
type DevProvider struct {
	// BaseURL prefixes the fake checkout URL, e.g. http://localhost:3000/pay.
	BaseURL string
}

func (p *DevProvider) CreateCheckout(ctx context.Context, req CheckoutRequest) (CheckoutSession, error) {
	id := "dev_" + uuid.NewString()
	return CheckoutSession{
		SessionID:   id,
		CheckoutURL: p.BaseURL + "/" + id,
	}, nil
}

func (p *DevProvider) CheckStatus(ctx context.Context, sessionID string) (domain.PaymentStatus, error) {
	return domain.PaymentCompleted, nil
}
