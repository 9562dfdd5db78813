package web

import (
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/careadmin/internal/common"
	"github.com/dmitrijs2005/careadmin/internal/server/auth"
	"github.com/dmitrijs2005/careadmin/internal/server/state"
	"github.com/gin-gonic/gin"
)

const workspaceKey = "workspace"

// sessionMiddleware binds the request to a workspace through the session
// cookie. A missing, invalid or expired cookie, or one naming an evicted
// workspace, gets a fresh anonymous workspace. The cookie is reissued on
// every request so its lifetime slides with use.
func (s *HTTPServer) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var ws *state.Workspace
		if token, err := c.Cookie(common.SessionCookieName); err == nil && token != "" {
			id, err := auth.GetWorkspaceIDFromToken(token, s.jwtSecret)
			switch {
			case err == nil:
				if w, ok := s.ctrl.Get(id); ok {
					ws = w
				}
			case errors.Is(err, common.ErrTokenExpired):
				s.logger.Debug(ctx, "session cookie expired")
			default:
				s.logger.Warn(ctx, "rejected session cookie", "error", err)
			}
		}

		if ws == nil {
			ws = s.ctrl.Create(ctx)
		}

		token, err := auth.GenerateToken(ws.ID(), s.jwtSecret, s.validityDuration)
		if err != nil {
			s.logger.Error(ctx, "sign session cookie", "error", err)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(common.SessionCookieName, token, int(s.validityDuration.Seconds()), "/", "", false, true)
		c.Set(workspaceKey, ws)

		c.Next()
	}
}

func workspace(c *gin.Context) *state.Workspace {
	return c.MustGet(workspaceKey).(*state.Workspace)
}

// requireLogin sends anonymous visitors back to the root page, which shows
// the login form.
func requireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !workspace(c).Snapshot().Authenticated() {
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *HTTPServer) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		ctx := c.Request.Context()
		latency := time.Since(startTime)
		statusCode := c.Writer.Status()

		args := []any{
			"status_code", statusCode,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"remote_ip", c.ClientIP(),
			"latency_ms", latency.Milliseconds(),
		}

		switch {
		case len(c.Errors) > 0:
			s.logger.Error(ctx, c.Errors.ByType(gin.ErrorTypePrivate).String(), args...)
		case statusCode >= 500:
			s.logger.Error(ctx, "Request completed with server error", args...)
		case statusCode >= 400:
			s.logger.Warn(ctx, "Request completed with client error", args...)
		default:
			s.logger.Info(ctx, "Request completed successfully", args...)
		}
	}
}
