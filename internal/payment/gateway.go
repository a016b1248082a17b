package payment

import "context"

// StatusComplete is the hosted-checkout status that allows order creation.
const StatusComplete = "complete"

type SessionRequest struct {
	PlantID       string
	Name          string
	Description   string
	ImageURL      string
	Price         float64 // dollars; converted to minor units at the gateway
	Quantity      int64
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
}

// Session is the slice of a hosted-checkout session the order workflow
// needs: status, the payment-intent id used for idempotency, and the
// metadata round-tripped at session creation.
type Session struct {
	ID              string
	URL             string
	Status          string
	PaymentIntentID string
	AmountTotal     int64 // minor units
	PlantID         string
	CustomerEmail   string
}

type Gateway interface {
	CreateSession(ctx context.Context, req *SessionRequest) (*Session, error)
	RetrieveSession(ctx context.Context, id string) (*Session, error)
}
