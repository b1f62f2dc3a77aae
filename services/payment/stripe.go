package payment

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/charge"
	"github.com/stripe/stripe-go/v76/oauth"
	"go.uber.org/zap"
)

// Gateway abstracts the payment provider: capturing charges on behalf of a
// connected host account and managing the Connect lifecycle.
type Gateway interface {
	// Charge captures amount (smallest currency unit) from the given payment
	// source, paid out to the destination connected account.
	Charge(ctx context.Context, amount int64, source, destinationAccount string) error
	// Connect exchanges an OAuth authorization code for a connected account id.
	Connect(ctx context.Context, code string) (string, error)
	// Disconnect deauthorizes a connected account.
	Disconnect(ctx context.Context, accountID string) error
}

// applicationFeeRate is the platform's cut of every charge.
const applicationFeeRate = 0.05

// StripeGateway implements Gateway against Stripe. The platform API key is set
// globally (stripe.Key) at startup.
type StripeGateway struct {
	ClientID string // Stripe Connect client id, used for deauthorization
	Logger   *zap.Logger
}

// NewStripeGateway creates a Gateway backed by Stripe.
func NewStripeGateway(clientID string, logger *zap.Logger) *StripeGateway {
	return &StripeGateway{ClientID: clientID, Logger: logger}
}

// Charge captures a payment on behalf of the host's connected account.
func (g *StripeGateway) Charge(ctx context.Context, amount int64, source, destinationAccount string) error {
	params := &stripe.ChargeParams{
		Amount:               stripe.Int64(amount),
		Currency:             stripe.String(string(stripe.CurrencyUSD)),
		ApplicationFeeAmount: stripe.Int64(int64(math.Round(float64(amount) * applicationFeeRate))),
	}
	params.Context = ctx
	if err := params.SetSource(source); err != nil {
		return fmt.Errorf("invalid payment source: %w", err)
	}
	params.SetStripeAccount(destinationAccount)

	ch, err := charge.New(params)
	if err != nil {
		return fmt.Errorf("stripe charge failed: %w", err)
	}
	if ch.Status != stripe.ChargeStatusSucceeded {
		return fmt.Errorf("stripe charge not captured: status %s", ch.Status)
	}

	g.Logger.Info("stripe charge captured",
		zap.String("charge", ch.ID),
		zap.Int64("amount", amount),
		zap.String("destination", destinationAccount),
	)
	return nil
}

// Connect exchanges an OAuth authorization code for a connected account id.
func (g *StripeGateway) Connect(ctx context.Context, code string) (string, error) {
	params := &stripe.OAuthTokenParams{
		GrantType: stripe.String("authorization_code"),
		Code:      stripe.String(code),
	}
	params.Context = ctx

	token, err := oauth.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe grant error: %w", err)
	}
	if token.StripeUserID == "" {
		return "", errors.New("stripe grant returned no account id")
	}
	return token.StripeUserID, nil
}

// Disconnect deauthorizes a connected account.
func (g *StripeGateway) Disconnect(ctx context.Context, accountID string) error {
	params := &stripe.DeauthorizeParams{
		ClientID:     stripe.String(g.ClientID),
		StripeUserID: stripe.String(accountID),
	}
	params.Context = ctx

	if _, err := oauth.Del(params); err != nil {
		return fmt.Errorf("stripe deauthorize error: %w", err)
	}
	return nil
}
