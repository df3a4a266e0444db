package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetFlags handles GET /api/flags. It returns the feature flags as resolved
// for the authenticated user, so clients in a percentage rollout see the
// same decision the server makes.
func (s *Server) GetFlags(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"flags": s.flags.Snapshot(authedUserID(c)),
	})
}
