// Package router dispatches requests through an ordered table of
// (method, path pattern, handler) entries. The first matching entry wins.
package router

import (
	"regexp"

	"github.com/gofiber/fiber/v2"
)

const paramsKey = "router.params"

type route struct {
	method  string
	pattern *regexp.Regexp
	handler fiber.Handler
}

type Router struct {
	routes   []route
	fallback fiber.Handler
}

func New() *Router { return &Router{} }

// Handle registers a route. pattern is matched against the raw request path and
// should be anchored; capture groups become positional params.
func (r *Router) Handle(method, pattern string, h fiber.Handler) *Router {
	r.routes = append(r.routes, route{method: method, pattern: regexp.MustCompile(pattern), handler: h})
	return r
}

func (r *Router) Get(pattern string, h fiber.Handler) *Router {
	return r.Handle(fiber.MethodGet, pattern, h)
}

func (r *Router) Post(pattern string, h fiber.Handler) *Router {
	return r.Handle(fiber.MethodPost, pattern, h)
}

// Fallback sets the handler for requests no route matches. Without one the
// request is passed on to the next fiber handler.
func (r *Router) Fallback(h fiber.Handler) *Router {
	r.fallback = h
	return r
}

// Match is a pure lookup: the handler of the first route whose method and
// pattern match, plus the pattern's captured groups.
func (r *Router) Match(method, path string) (fiber.Handler, []string, bool) {
	for _, rt := range r.routes {
		if rt.method != method {
			continue
		}
		if m := rt.pattern.FindStringSubmatch(path); m != nil {
			return rt.handler, m[1:], true
		}
	}
	return nil, nil, false
}

// Dispatch adapts the router to fiber.
func (r *Router) Dispatch(c *fiber.Ctx) error {
	h, params, ok := r.Match(c.Method(), c.Path())
	if !ok {
		if r.fallback != nil {
			return r.fallback(c)
		}
		return c.Next()
	}
	c.Locals(paramsKey, params)
	return h(c)
}

// Param returns the i-th captured group of the matched route, or "".
func Param(c *fiber.Ctx, i int) string {
	params, _ := c.Locals(paramsKey).([]string)
	if i < 0 || i >= len(params) {
		return ""
	}
	return params[i]
}
