package app

import (
	"github.com/gofiber/fiber/v2"

	"userdesk/internal/config"
	"userdesk/internal/http/handlers"
	"userdesk/internal/http/router"
)

// Routes is the ordered route table. Order matters: the first match wins.
func Routes(d *handlers.Deps, fallbackPath string) *router.Router {
	r := router.New().
		Get(`^/$`, d.PageHandler.Index).
		Get(`^/users$`, d.UserHandler.List).
		Get(`^/roles$`, d.UserHandler.Roles).
		Get(`^/user/(\d+)$`, d.UserHandler.Get).
		Post(`^/add$`, d.UserHandler.Add).
		Post(`^/update$`, d.UserHandler.Update).
		Post(`^/delete$`, d.UserHandler.Delete).
		Post(`^/update-status$`, d.UserHandler.UpdateStatus).
		Get(`^/healthz$`, func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })

	if fallbackPath == config.FallbackNone {
		return r.Fallback(func(c *fiber.Ctx) error {
			return handlers.Fail(c, fiber.StatusNotFound, "Not found")
		})
	}
	return r.Fallback(func(c *fiber.Ctx) error { return c.Redirect(fallbackPath) })
}
