package billing

import (
	"context"
	"fmt"
	"math"

	"medicore/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// StripeBillingProcessor charges card and online payments through Stripe
// PaymentIntents. Cash payments are recorded only; the desk settles them.
type StripeBillingProcessor struct {
	Currency string
	Logger   *zap.Logger
}

func NewStripeBillingProcessor(logger *zap.Logger) *StripeBillingProcessor {
	return &StripeBillingProcessor{Currency: string(stripe.CurrencyUSD), Logger: logger}
}

// ChargeCompleted creates and confirms a PaymentIntent for the amount due.
// An empty transaction ID with a nil error means nothing was charged (cash).
func (p *StripeBillingProcessor) ChargeCompleted(ctx context.Context, appt *models.Appointment, amountDue float64) (string, error) {
	if appt.Payment.Method == models.PaymentMethodCash {
		return "", nil
	}
	if amountDue <= 0 {
		return "", nil
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(toMinorUnits(amountDue)),
		Currency: stripe.String(p.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}
	params.Context = ctx
	params.AddMetadata("appointmentId", appt.ID)
	params.AddMetadata("patientId", appt.PatientID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("creating payment intent: %w", err)
	}

	p.Logger.Info("payment intent created",
		zap.String("appointmentId", appt.ID),
		zap.String("paymentIntentId", pi.ID),
		zap.Float64("amountDue", amountDue))
	return pi.ID, nil
}

func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
