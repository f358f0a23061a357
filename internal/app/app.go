package app

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"userdesk/internal/config"
	"userdesk/internal/http/handlers"
	applog "userdesk/internal/log"
	"userdesk/web"
)

const bodyLimit = 1 << 20 // 1 MiB

// New assembles middleware, the route table and handlers around db.
func New(cfg config.Config, db *sqlx.DB) *fiber.App {
	engine := html.NewFileSystem(web.Templates(), ".html")

	app := fiber.New(fiber.Config{
		Views:        engine,
		BodyLimit:    bodyLimit,
		ErrorHandler: errorHandler,
	})

	// ---------- Middlewares ----------
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Warn(c, "rate.limit.hit", nil)
			return handlers.Fail(c, fiber.StatusTooManyRequests, "Too many requests, retry soon")
		},
	}))
	if cfg.CSRF {
		app.Use(csrf.New(csrf.Config{
			KeyLookup:      "header:" + csrf.HeaderName,
			CookieName:     handlers.CSRFCookie,
			ContextKey:     handlers.CSRFLocal,
			CookieSameSite: "Lax",
			CookieSecure:   false, // set true behind HTTPS
			ErrorHandler: func(c *fiber.Ctx, err error) error {
				applog.Warn(c, "csrf.fail", map[string]any{"reason": err.Error()})
				return handlers.Fail(c, fiber.StatusForbidden, "Security check failed. Please refresh and try again.")
			},
		}))
	}

	// ---------- Static assets ----------
	app.Use("/static", filesystem.New(filesystem.Config{Root: web.Static()}))

	// ---------- Routes ----------
	deps := handlers.NewDeps(db)
	app.Use(Routes(deps, cfg.FallbackPath).Dispatch)

	return app
}

// errorHandler keeps every failure inside the envelope and never echoes internals.
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		applog.Warn(c, "server.reject", map[string]any{"code": fe.Code, "message": fe.Message})
		return handlers.Fail(c, fe.Code, fe.Message)
	}
	applog.Error(c, "server.error", err, nil)
	return handlers.Fail(c, fiber.StatusInternalServerError, "Something went wrong. Please try again.")
}
