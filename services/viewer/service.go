package viewer

import (
	"context"
	"errors"
	"fmt"

	"stayhaven/models"
	"stayhaven/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// SignInWithGoogle exchanges the OAuth code, upserts the user record, and
// issues a fresh session.
func (s *DefaultViewerService) SignInWithGoogle(ctx context.Context, code string) (*models.User, string, string, error) {
	profile, err := s.fetchGoogleProfile(ctx, code)
	if err != nil {
		return nil, "", "", err
	}

	rawToken, err := utils.GenerateSessionToken()
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to generate session token: %w", err)
	}
	tokenHash := utils.HashToken(rawToken)

	existing, err := s.Repo.GetByID(ctx, profile.ID)
	if err != nil {
		return nil, "", "", err
	}

	var signedIn *models.User
	if existing == nil {
		newUser := &models.User{
			ID:        profile.ID,
			Name:      profile.Name,
			Avatar:    profile.Avatar,
			Contact:   profile.Email,
			TokenHash: tokenHash,
			Income:    0,
			Bookings:  []string{},
			Listings:  []string{},
		}
		if err := s.Repo.Create(ctx, newUser); err != nil {
			return nil, "", "", err
		}
		signedIn = newUser
	} else {
		if err := s.Repo.UpdateProfile(ctx, profile.ID, profile.Name, profile.Avatar, profile.Email, tokenHash); err != nil {
			return nil, "", "", err
		}
		existing.Name = profile.Name
		existing.Avatar = profile.Avatar
		existing.Contact = profile.Email
		existing.TokenHash = tokenHash
		signedIn = existing
	}

	cookie, err := utils.GenerateViewerCookie(signedIn.ID)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to sign viewer cookie: %w", err)
	}

	s.cacheSession(ctx, signedIn.ID, tokenHash)
	return signedIn, rawToken, cookie, nil
}

// SignInFromCookie rotates the session token for a returning viewer.
func (s *DefaultViewerService) SignInFromCookie(ctx context.Context, viewerID string) (*models.User, string, error) {
	usr, err := s.Repo.GetByID(ctx, viewerID)
	if err != nil {
		return nil, "", err
	}
	if usr == nil {
		return nil, "", nil
	}

	rawToken, err := utils.GenerateSessionToken()
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate session token: %w", err)
	}
	tokenHash := utils.HashToken(rawToken)

	if err := s.Repo.SetSessionToken(ctx, viewerID, tokenHash); err != nil {
		return nil, "", err
	}
	usr.TokenHash = tokenHash

	s.cacheSession(ctx, viewerID, tokenHash)
	return usr, rawToken, nil
}

// SignOut invalidates the viewer's session token.
func (s *DefaultViewerService) SignOut(ctx context.Context, viewerID string) error {
	if err := s.Repo.SetSessionToken(ctx, viewerID, ""); err != nil {
		return err
	}
	if s.AuthCache != nil {
		_ = s.AuthCache.Del(ctx, utils.AuthCachePrefix+viewerID).Err()
	}
	return nil
}

// Authorize resolves the viewer from its id and session token. The token hash
// is cached in Redis so the common case skips the user lookup for matching.
func (s *DefaultViewerService) Authorize(ctx context.Context, viewerID, sessionToken string) (*models.User, error) {
	if viewerID == "" || sessionToken == "" {
		return nil, nil
	}
	computedHash := utils.HashToken(sessionToken)

	cacheKey := utils.AuthCachePrefix + viewerID
	if s.AuthCache != nil {
		cachedHash, err := s.AuthCache.Get(ctx, cacheKey).Result()
		if err == nil {
			if cachedHash != computedHash {
				return nil, nil
			}
			_ = s.AuthCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
			return s.Repo.GetByID(ctx, viewerID)
		}
		if !errors.Is(err, redis.Nil) {
			s.Logger.Warn("auth cache lookup failed; falling back to store", zap.Error(err))
		}
	}

	usr, err := s.Repo.GetByID(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if usr == nil || usr.TokenHash == "" || usr.TokenHash != computedHash {
		return nil, nil
	}

	s.cacheSession(ctx, viewerID, computedHash)
	return usr, nil
}

// ConnectWallet exchanges a Stripe Connect code and stores the wallet id.
func (s *DefaultViewerService) ConnectWallet(ctx context.Context, viewer *models.User, code string) (*models.User, error) {
	if viewer == nil {
		return nil, errors.New("viewer cannot be found")
	}

	walletID, err := s.Payments.Connect(ctx, code)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.SetWallet(ctx, viewer.ID, walletID); err != nil {
		return nil, err
	}
	viewer.WalletID = walletID
	return viewer, nil
}

// DisconnectWallet deauthorizes and clears the viewer's wallet id.
func (s *DefaultViewerService) DisconnectWallet(ctx context.Context, viewer *models.User) (*models.User, error) {
	if viewer == nil || viewer.WalletID == "" {
		return nil, errors.New("viewer cannot be found or has not connected with Stripe")
	}

	if err := s.Payments.Disconnect(ctx, viewer.WalletID); err != nil {
		return nil, err
	}

	if err := s.Repo.SetWallet(ctx, viewer.ID, ""); err != nil {
		return nil, err
	}
	viewer.WalletID = ""
	return viewer, nil
}

func (s *DefaultViewerService) cacheSession(ctx context.Context, viewerID, tokenHash string) {
	if s.AuthCache == nil {
		return
	}
	if err := s.AuthCache.Set(ctx, utils.AuthCachePrefix+viewerID, tokenHash, utils.AuthCacheTTL).Err(); err != nil {
		s.Logger.Warn("failed to cache viewer session", zap.Error(err))
	}
}
