package handlers

import "github.com/gofiber/fiber/v2"

// Where the CSRF middleware keeps the token; the page echoes it in X-Csrf-Token.
const (
	CSRFLocal  = "csrf"
	CSRFCookie = "csrf_"
)

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	tok, _ := c.Locals(CSRFLocal).(string)
	if tok == "" {
		tok = c.Cookies(CSRFCookie)
	}
	data["CSRFToken"] = tok

	return c.Render(tmpl, data)
}
