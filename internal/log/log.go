// Package log writes one JSON object per line through the standard logger so
// that tests and main can redirect it with log.SetOutput.
package log

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

type record struct {
	TS     string         `json:"ts"`
	Level  string         `json:"level"`
	Action string         `json:"action,omitempty"`
	ReqID  string         `json:"req_id,omitempty"`
	IP     string         `json:"ip,omitempty"`
	Method string         `json:"method,omitempty"`
	Path   string         `json:"path,omitempty"`
	Status int            `json:"status,omitempty"`
	Err    string         `json:"err,omitempty"`
	Fields map[string]any `json:"fields,omitempty"`
}

// withRequest copies the request line and id; c is nil outside a handler.
func (r *record) withRequest(c *fiber.Ctx) {
	if c == nil {
		return
	}
	r.Method, r.Path, r.IP = c.Method(), c.Path(), c.IP()
	r.Status = c.Response().StatusCode()
	r.ReqID, _ = c.Locals(requestid.ConfigDefault.ContextKey).(string)
}

func emit(level string, c *fiber.Ctx, action string, err error, fields map[string]any) {
	r := record{
		TS:     time.Now().UTC().Format(time.RFC3339),
		Level:  level,
		Action: action,
		Fields: fields,
	}
	r.withRequest(c)
	if err != nil {
		r.Err = err.Error()
	}
	line, mErr := json.Marshal(r)
	if mErr != nil {
		// unencodable field value
		r.Fields = map[string]any{"marshal_err": mErr.Error()}
		line, _ = json.Marshal(r)
	}
	log.Println(string(line))
}

func Info(c *fiber.Ctx, action string, fields map[string]any) { emit("info", c, action, nil, fields) }

// Warn covers rejected requests: bad input, csrf, rate limit.
func Warn(c *fiber.Ctx, action string, fields map[string]any) { emit("warn", c, action, nil, fields) }

func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	emit("error", c, action, err, fields)
}
