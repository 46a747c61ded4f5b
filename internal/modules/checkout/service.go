package checkout

import (
	"context"
	"errors"
	"strings"

	"github.com/nightmare-ai/core/internal/config"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
	"go.uber.org/zap"
)

// Provider-side metadata size limit; the dream is capped before attach.
const metadataDreamMax = 4500

// Seams for tests; production always points at the Stripe SDK.
var (
	newCheckoutSession      = session.New
	retrieveCheckoutSession = session.Get
)

// Service owns the two provider round trips: create a hosted checkout session
// and read one back by id. The session object is the only server-side state
// this system ever has, and Stripe owns it.
type Service struct {
	cfg    *config.AppConfig
	logger *zap.Logger
}

func NewService(cfg *config.AppConfig, logger *zap.Logger) *Service {
	stripe.Key = cfg.Stripe.SecretKey
	return &Service{cfg: cfg, logger: logger}
}

// Create asks Stripe for a one-item fixed-price checkout session with the
// dream text attached as metadata, and returns the hosted redirect URL.
// Checkout returns to /portal first (loading journey), which routes to /reveal.
func (s *Service) Create(ctx context.Context, dream string) (string, error) {
	base := s.cfg.SiteURL

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(s.cfg.Stripe.Currency),
					UnitAmount: stripe.Int64(s.cfg.Stripe.UnitAmount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(s.cfg.Stripe.ProductName),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(base + "/portal?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(base + "/"),
	}
	params.Context = ctx
	params.AddMetadata("dream", capDream(dream))

	sess, err := newCheckoutSession(params)
	if err != nil {
		return "", err
	}
	if sess.URL == "" {
		return "", errors.New("checkout session has no redirect url")
	}
	return sess.URL, nil
}

// VerifyResult is the session state read back from the provider.
type VerifyResult struct {
	Paid        bool
	Dream       string
	Currency    string
	AmountTotal int64
}

// Verify retrieves the session by id. Either a paid payment_status or a
// complete session status counts as paid.
func (s *Service) Verify(ctx context.Context, sessionID string) (VerifyResult, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	sess, err := retrieveCheckoutSession(sessionID, params)
	if err != nil {
		return VerifyResult{}, err
	}

	result := VerifyResult{
		Paid: sess.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid ||
			sess.Status == stripe.CheckoutSessionStatusComplete,
		Currency:    string(sess.Currency),
		AmountTotal: sess.AmountTotal,
	}
	if sess.Metadata != nil {
		result.Dream = sess.Metadata["dream"]
	}
	if result.Currency == "" {
		result.Currency = s.cfg.Stripe.Currency
	}
	return result, nil
}

// capDream truncates to the provider metadata size limit, rune-safe.
func capDream(dream string) string {
	dream = strings.TrimSpace(dream)
	runes := []rune(dream)
	if len(runes) <= metadataDreamMax {
		return dream
	}
	return string(runes[:metadataDreamMax])
}
