package middleware

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/collectives/internal/domain"
)

const (
	// UserContextKey is where RequireSession stores the *domain.User.
	UserContextKey = "user"

	// AuthCookieName holds the session token issued at sign in.
	AuthCookieName = "auth_token"

	// SignInPath is where unauthenticated users are sent.
	SignInPath = "/signin"
)

// SessionToken returns the session token from the auth cookie, or "".
func SessionToken(c echo.Context) string {
	cookie, err := c.Cookie(AuthCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// SignInURL is the sign-in page that returns to next afterwards.
func SignInURL(next string) string {
	if next == "" {
		return SignInPath
	}
	return SignInPath + "?next=" + url.QueryEscape(next)
}

// RequireSession protects routes that need a signed-in user. The user is
// stored under UserContextKey; requests without a valid session are
// redirected to the sign-in page.
func RequireSession(store domain.SessionRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := SessionToken(c)
			if token == "" {
				return c.Redirect(http.StatusSeeOther, SignInURL(c.Request().URL.Path))
			}

			user, err := store.LoggedInUser(c.Request().Context(), token)
			if err != nil {
				return err
			}
			if user == nil {
				// Clear the stale cookie so the browser stops sending it.
				c.SetCookie(&http.Cookie{
					Name:   AuthCookieName,
					Value:  "",
					Path:   "/",
					MaxAge: -1,
				})
				return c.Redirect(http.StatusSeeOther, SignInURL(c.Request().URL.Path))
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

// UserFromContext returns the user stored by RequireSession, or nil.
func UserFromContext(c echo.Context) *domain.User {
	user, _ := c.Get(UserContextKey).(*domain.User)
	return user
}
