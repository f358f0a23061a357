package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "userdesk/internal/log"
	"userdesk/internal/services"
)

type PageHandler struct {
	Users *services.UserService
}

// GET /
func (h *PageHandler) Index(c *fiber.Ctx) error {
	users, err := h.Users.List()
	if err != nil {
		applog.Error(c, "page.users.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).SendString("Could not load users")
	}
	roles, err := h.Users.ListRoles()
	if err != nil {
		applog.Error(c, "page.roles.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).SendString("Could not load roles")
	}
	return render(c, "users", fiber.Map{"Users": users, "Roles": roles})
}
