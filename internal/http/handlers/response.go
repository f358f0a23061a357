package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "userdesk/internal/log"
	"userdesk/internal/services"
)

// ErrorBody is the error member of a failure envelope.
type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Success writes {status:true, error:null, ...extra}.
func Success(c *fiber.Ctx, extra fiber.Map) error {
	body := fiber.Map{"status": true, "error": nil}
	for k, v := range extra {
		body[k] = v
	}
	return c.Status(fiber.StatusOK).JSON(body)
}

// Fail writes {status:false, error:{code, message}} with code as the HTTP status.
func Fail(c *fiber.Ctx, code int, msg string) error {
	return c.Status(code).JSON(fiber.Map{
		"status": false,
		"error":  ErrorBody{Code: code, Message: msg},
	})
}

// failWith logs err and turns it into exactly one envelope. Only the
// client-safe message of a services.Error is ever sent back.
func failWith(c *fiber.Ctx, action string, err error) error {
	var se *services.Error
	if !errors.As(err, &se) {
		se = services.Storage("Something went wrong", err)
	}
	if se.Code >= fiber.StatusInternalServerError {
		applog.Error(c, action+".fail", err, nil)
	} else {
		applog.Warn(c, "validation.fail", map[string]any{"action": action, "code": se.Code, "message": se.Message})
	}
	return Fail(c, se.Code, se.Message)
}
