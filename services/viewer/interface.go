package viewer

import (
	"context"

	userRepo "stayhaven/database/repository/user"
	"stayhaven/models"
	"stayhaven/services/payment"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ViewerService resolves and manages the identity behind a request.
type ViewerService interface {
	// AuthURL returns the Google OAuth consent URL the client redirects to.
	AuthURL() string
	// SignInWithGoogle exchanges an OAuth code for a profile, upserts the
	// user, and returns the user, the raw session token, and the signed
	// viewer cookie value.
	SignInWithGoogle(ctx context.Context, code string) (*models.User, string, string, error)
	// SignInFromCookie rotates the session token for an already-identified
	// viewer. Returns (nil, "", nil) when the user no longer exists.
	SignInFromCookie(ctx context.Context, viewerID string) (*models.User, string, error)
	// SignOut invalidates the viewer's session token.
	SignOut(ctx context.Context, viewerID string) error
	// Authorize resolves the viewer from its id and session token. Returns
	// (nil, nil) when the credentials don't match a user.
	Authorize(ctx context.Context, viewerID, sessionToken string) (*models.User, error)
	// ConnectWallet exchanges a Stripe Connect code and stores the wallet id.
	ConnectWallet(ctx context.Context, viewer *models.User, code string) (*models.User, error)
	// DisconnectWallet deauthorizes and clears the viewer's wallet id.
	DisconnectWallet(ctx context.Context, viewer *models.User) (*models.User, error)
}

// DefaultViewerService implements ViewerService.
type DefaultViewerService struct {
	Repo      userRepo.UserRepository
	Payments  payment.Gateway
	AuthCache *redis.Client
	Logger    *zap.Logger
}
