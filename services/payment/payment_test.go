package payment_test

import (
	"context"
	"errors"
	"testing"

	"doctorportal/services/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

type recordingIntents struct {
	got *stripe.PaymentIntentParams
	err error
}

func (r *recordingIntents) New(p *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	r.got = p
	if r.err != nil {
		return nil, r.err
	}
	return &stripe.PaymentIntent{ID: "pi_123", ClientSecret: "pi_123_secret"}, nil
}

func TestCreateIntentAmountInCents(t *testing.T) {
	intents := &recordingIntents{}
	svc := payment.NewWithCreator(intents, zap.NewNop())

	secret, err := svc.CreateIntent(context.Background(), 49.99)
	require.NoError(t, err)
	assert.Equal(t, "pi_123_secret", secret)
	require.NotNil(t, intents.got)
	assert.Equal(t, int64(4999), *intents.got.Amount)
	assert.Equal(t, "usd", *intents.got.Currency)
	assert.Equal(t, []*string{stripe.String("card")}, intents.got.PaymentMethodTypes)
}

func TestCreateIntentErrors(t *testing.T) {
	disabled := payment.NewStripePaymentService("", zap.NewNop())
	_, err := disabled.CreateIntent(context.Background(), 10)
	assert.ErrorIs(t, err, payment.ErrDisabled)

	svc := payment.NewWithCreator(&recordingIntents{}, zap.NewNop())
	_, err = svc.CreateIntent(context.Background(), 0.001)
	assert.ErrorIs(t, err, payment.ErrInvalidAmount)

	failing := payment.NewWithCreator(&recordingIntents{err: errors.New("card_declined")}, zap.NewNop())
	_, err = failing.CreateIntent(context.Background(), 10)
	assert.ErrorContains(t, err, "card_declined")
}
