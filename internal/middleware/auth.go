package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"

	"github.com/adititiwari16/Recruitbotai/internal/apperrors"
	"github.com/adititiwari16/Recruitbotai/internal/config"
	"github.com/adititiwari16/Recruitbotai/internal/models"
	"github.com/adititiwari16/Recruitbotai/internal/repositories"
)

const sessionUserKey = "user_id"

// userLocalKey is where RequireAuth stashes the loaded user for handlers.
const userLocalKey = "current_user"

// SessionAuth owns the cookie session store and gates routes on it.
type SessionAuth struct {
	store *session.Store
	users repositories.UserRepository
}

func NewSessionAuth(cfg config.SessionConfig, users repositories.UserRepository) *SessionAuth {
	store := session.New(session.Config{
		KeyLookup:      "cookie:" + cfg.CookieName,
		Expiration:     cfg.Expiration,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
	return &SessionAuth{store: store, users: users}
}

// Login binds the user to the request's session.
func (a *SessionAuth) Login(c *fiber.Ctx, userID uuid.UUID) error {
	sess, err := a.store.Get(c)
	if err != nil {
		return apperrors.Persistence("failed to open session", err)
	}
	sess.Set(sessionUserKey, userID.String())
	if err := sess.Save(); err != nil {
		return apperrors.Persistence("failed to save session", err)
	}
	return nil
}

// Logout destroys the request's session.
func (a *SessionAuth) Logout(c *fiber.Ctx) error {
	sess, err := a.store.Get(c)
	if err != nil {
		return apperrors.Persistence("failed to open session", err)
	}
	if err := sess.Destroy(); err != nil {
		return apperrors.Persistence("failed to destroy session", err)
	}
	return nil
}

// RequireAuth rejects unauthenticated requests and loads the session's user
// into the request locals for downstream handlers.
func (a *SessionAuth) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := a.store.Get(c)
		if err != nil {
			return apperrors.Persistence("failed to open session", err)
		}

		raw, ok := sess.Get(sessionUserKey).(string)
		if !ok {
			return apperrors.Authorization("authentication required")
		}
		userID, err := uuid.Parse(raw)
		if err != nil {
			return apperrors.Authorization("authentication required")
		}

		user, err := a.users.FindByID(userID)
		if err != nil {
			if apperrors.KindOf(err) == apperrors.KindNotFound {
				return apperrors.Authorization("authentication required")
			}
			return err
		}

		c.Locals(userLocalKey, user)
		return c.Next()
	}
}

// RequireRecruiter must run after RequireAuth.
func (a *SessionAuth) RequireRecruiter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil || user.Role != models.RoleRecruiter {
			return apperrors.Authorization("recruiter role required")
		}
		return c.Next()
	}
}

// CurrentUser returns the user loaded by RequireAuth, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userLocalKey).(*models.User)
	return user
}

// CanAccessInterview reports whether the user may read or drive the
// interview. Candidates are restricted to their own sessions; recruiters
// see everything.
func CanAccessInterview(user *models.User, interview *models.Interview) bool {
	if user == nil {
		return false
	}
	if user.Role == models.RoleRecruiter {
		return true
	}
	return interview.UserID == user.ID
}
