package payment

import (
	"context"
	"fmt"
	"time"
)

// StubProvider is a no-op provider for development without Stripe keys.
type StubProvider struct{}

func (s *StubProvider) CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error) {
	id := fmt.Sprintf("pi_stub_%d", time.Now().UnixNano())
	return &Intent{
		ID:           id,
		ClientSecret: id + "_secret_dev",
		Status:       "requires_payment_method",
	}, nil
}
