package handlers

import (
	"github.com/gofiber/fiber/v2"

	"userdesk/internal/http/router"
	applog "userdesk/internal/log"
	"userdesk/internal/services"
)

type UserHandler struct {
	Users *services.UserService
}

// GET /users
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.Users.List()
	if err != nil {
		return failWith(c, "users.list", err)
	}
	return Success(c, fiber.Map{"users": users})
}

// GET /roles
func (h *UserHandler) Roles(c *fiber.Ctx) error {
	roles, err := h.Users.ListRoles()
	if err != nil {
		return failWith(c, "roles.list", err)
	}
	return Success(c, fiber.Map{"roles": roles})
}

// GET /user/{id}
func (h *UserHandler) Get(c *fiber.Ctx) error {
	u, err := h.Users.Get(router.Param(c, 0))
	if err != nil {
		return failWith(c, "users.get", err)
	}
	return Success(c, fiber.Map{"user": u})
}

// POST /add
func (h *UserHandler) Add(c *fiber.Ctx) error {
	in, err := readInput(c)
	if err != nil {
		return Fail(c, fiber.StatusBadRequest, "Malformed request body")
	}
	id, err := h.Users.Create(in.candidate())
	if err != nil {
		return failWith(c, "users.add", err)
	}
	applog.Info(c, "users.add", map[string]any{"user_id": id})
	return Success(c, fiber.Map{"id": id})
}

// POST /update
func (h *UserHandler) Update(c *fiber.Ctx) error {
	in, err := readInput(c)
	if err != nil {
		return Fail(c, fiber.StatusBadRequest, "Malformed request body")
	}
	id := in.text("id")
	if err := h.Users.Update(id, in.candidate()); err != nil {
		return failWith(c, "users.update", err)
	}
	applog.Info(c, "users.update", map[string]any{"user_id": id})
	return Success(c, nil)
}

// POST /delete
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	in, err := readInput(c)
	if err != nil {
		return Fail(c, fiber.StatusBadRequest, "Malformed request body")
	}
	ids := in.list("id")
	if err := h.Users.Delete(ids); err != nil {
		return failWith(c, "users.delete", err)
	}
	applog.Info(c, "users.delete", map[string]any{"ids": ids})
	return Success(c, nil)
}

// POST /update-status
func (h *UserHandler) UpdateStatus(c *fiber.Ctx) error {
	in, err := readInput(c)
	if err != nil {
		return Fail(c, fiber.StatusBadRequest, "Malformed request body")
	}
	ids := in.list("id")
	if err := h.Users.SetStatus(ids, in.raw("status")); err != nil {
		return failWith(c, "users.status", err)
	}
	applog.Info(c, "users.status", map[string]any{"ids": ids})
	return Success(c, nil)
}
