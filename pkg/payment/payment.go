package payment

import (
	"context"
	"fmt"
)

// IntentRequest describes one card payment to be collected.
type IntentRequest struct {
	AmountCents int64
	Currency    string
	CustomerID  string // payment-provider customer id, optional
	Description string
	Metadata    map[string]string
}

type Intent struct {
	ID           string
	ClientSecret string
	Status       string
}

// Provider is the card-payment processor behind the checkout flow.
type Provider interface {
	CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error)
}

// APIError carries an upstream payment-provider failure.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("payment provider error (status %d): %s", e.StatusCode, e.Message)
}
