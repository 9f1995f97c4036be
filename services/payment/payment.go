package payment

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"go.uber.org/zap"
)

// ErrDisabled is returned when no Stripe key is configured.
var ErrDisabled = errors.New("payments are not configured")

// ErrInvalidAmount is returned for prices that round to less than one cent.
var ErrInvalidAmount = errors.New("invalid payment amount")

type PaymentService interface {
	// CreateIntent opens a card PaymentIntent for price (in dollars) and
	// returns its client secret.
	CreateIntent(ctx context.Context, price float64) (string, error)
}

// IntentCreator is the subset of the Stripe API the service calls.
type IntentCreator interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

// StripePaymentService creates PaymentIntents through Stripe.
type StripePaymentService struct {
	intents IntentCreator
	logger  *zap.Logger
}

// NewStripePaymentService returns a service for key. An empty key yields a
// service whose calls fail with ErrDisabled.
func NewStripePaymentService(key string, logger *zap.Logger) *StripePaymentService {
	s := &StripePaymentService{logger: logger}
	if key != "" {
		s.intents = client.New(key, nil).PaymentIntents
	}
	return s
}

// NewWithCreator wires a custom IntentCreator.
func NewWithCreator(intents IntentCreator, logger *zap.Logger) *StripePaymentService {
	return &StripePaymentService{intents: intents, logger: logger}
}

func (s *StripePaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	if s.intents == nil {
		return "", ErrDisabled
	}
	amount := int64(math.Round(price * 100))
	if amount <= 0 {
		return "", ErrInvalidAmount
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := s.intents.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	s.logger.Info("payment intent created", zap.String("id", pi.ID), zap.Int64("amount", amount))
	return pi.ClientSecret, nil
}
