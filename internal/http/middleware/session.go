package middleware

import (
	"github.com/gofiber/fiber/v2"

	"docdash/internal/dashboard"
	"docdash/internal/session"
)

const (
	// SessionIDLocalKey holds the dashboard session id in Fiber's context locals.
	SessionIDLocalKey = "session_id"
	// ControllerLocalKey holds the session's *dashboard.Controller.
	ControllerLocalKey = "dashboard_controller"
)

// Session resolves the X-Session-ID header to a dashboard controller, creating a session when needed.
// The effective id is echoed in the response header.
func Session(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ctrl := store.Get(c.Get(session.Header))

		c.Locals(SessionIDLocalKey, id)
		c.Locals(ControllerLocalKey, ctrl)
		c.Set(session.Header, id)

		return c.Next()
	}
}

// Controller returns the controller stored by Session, or nil.
func Controller(c *fiber.Ctx) *dashboard.Controller {
	ctrl, _ := c.Locals(ControllerLocalKey).(*dashboard.Controller)
	return ctrl
}
