package server

import (
	"github.com/gofiber/fiber/v2"
)

// ToggleFollow handles PUT /api/users/:id/follow. The same endpoint follows
// and unfollows; the response carries the resulting state.
func (s *Server) ToggleFollow(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	following, err := s.followService.ToggleFollow(c.UserContext(), authedUserID(c), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"following": following})
}

// GetFollowers handles GET /api/users/:id/followers
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	profiles, err := s.followService.Followers(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(profiles)
}

// GetFollowing handles GET /api/users/:id/following
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	profiles, err := s.followService.Following(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(profiles)
}
