package middleware

import (
	"context"
	"net/http"

	"stayhaven/models"
	"stayhaven/services/viewer"
	"stayhaven/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type requestAuthKey struct{}

// RequestAuth carries the resolved viewer of a request plus the gin context,
// so resolvers deep in the graph can read cookies and write response headers.
type RequestAuth struct {
	// Viewer is non-nil only when the request carried a valid cookie and a
	// matching session token.
	Viewer *models.User
	// ViewerID is set whenever the cookie parsed, even if the session token
	// did not check out. Sign-in uses it to re-identify returning viewers.
	ViewerID string
	Gin      *gin.Context
}

// WithRequestAuth stores the auth on the request context.
func WithRequestAuth(ctx context.Context, auth *RequestAuth) context.Context {
	return context.WithValue(ctx, requestAuthKey{}, auth)
}

// RequestAuthFrom extracts the auth placed by ViewerContext. The second return
// is false for requests that did not pass through the middleware.
func RequestAuthFrom(ctx context.Context) (*RequestAuth, bool) {
	auth, ok := ctx.Value(requestAuthKey{}).(*RequestAuth)
	return auth, ok
}

// ViewerContext resolves the viewer behind each request from the viewer cookie
// and the X-CSRF-TOKEN header. It never aborts; unauthenticated requests just
// proceed with an empty viewer.
func ViewerContext(viewers viewer.ViewerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := &RequestAuth{Gin: c}

		cookie, err := c.Cookie(utils.ViewerCookieName)
		if err == nil && cookie != "" {
			viewerID, parseErr := utils.ParseViewerCookie(cookie)
			if parseErr != nil {
				// A cookie that no longer validates is dropped so the
				// client stops presenting it.
				ClearViewerCookie(c)
			} else {
				auth.ViewerID = viewerID

				token := c.GetHeader("X-CSRF-TOKEN")
				if token != "" {
					resolved, authErr := viewers.Authorize(c.Request.Context(), viewerID, token)
					if authErr != nil {
						utils.GetLogger().Warn("viewer authorization failed",
							zap.String("viewerId", viewerID),
							zap.Error(authErr),
						)
					}
					auth.Viewer = resolved
				}
			}
		}

		c.Request = c.Request.WithContext(WithRequestAuth(c.Request.Context(), auth))
		c.Next()
	}
}

// SetViewerCookie writes the signed viewer cookie on the response.
func SetViewerCookie(c *gin.Context, value string, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(utils.ViewerCookieName, value, int(utils.ViewerCookieMaxAge.Seconds()), "/", "", secure, true)
}

// ClearViewerCookie expires the viewer cookie on the response.
func ClearViewerCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(utils.ViewerCookieName, "", -1, "/", "", false, true)
}
