package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"userdesk/internal/domain"
	"userdesk/internal/validate"
)

var errMalformedBody = errors.New("malformed request body")

// input holds submitted fields by name. List keys sent as "id[]" are stored under "id".
type input map[string][]string

func readInput(c *fiber.Ctx) (input, error) {
	in := input{}
	ct := strings.ToLower(c.Get(fiber.HeaderContentType))
	switch {
	case strings.HasPrefix(ct, fiber.MIMEApplicationJSON):
		return decodeJSON(c.Body())
	case strings.HasPrefix(ct, fiber.MIMEMultipartForm):
		form, err := c.MultipartForm()
		if err != nil {
			return nil, errMalformedBody
		}
		for k, vs := range form.Value {
			in.add(k, vs...)
		}
	default:
		c.Request().PostArgs().VisitAll(func(k, v []byte) {
			in.add(string(k), string(v))
		})
	}
	return in, nil
}

func (in input) add(key string, vs ...string) {
	key = strings.TrimSuffix(key, "[]")
	in[key] = append(in[key], vs...)
}

// text returns the first value of key, trimmed and HTML-escaped; "" if absent.
func (in input) text(key string) string {
	vs := in[key]
	if len(vs) == 0 {
		return ""
	}
	return validate.Text(vs[0])
}

// raw returns the first value of key untouched, or nil if the key was not sent.
func (in input) raw(key string) *string {
	vs, ok := in[key]
	if !ok {
		return nil
	}
	v := ""
	if len(vs) > 0 {
		v = vs[0]
	}
	return &v
}

// list returns every value of key, or nil if the key was not sent.
func (in input) list(key string) []string {
	vs, ok := in[key]
	if !ok {
		return nil
	}
	return append([]string{}, vs...)
}

func (in input) candidate() domain.Candidate {
	var status string
	if s := in.raw("status"); s != nil {
		status = *s
	}
	return domain.Candidate{
		FirstName: in.text("first_name"),
		LastName:  in.text("last_name"),
		Role:      in.text("role"),
		RawStatus: status,
	}
}

// decodeJSON flattens a JSON object into input: scalars become one value,
// arrays become lists, false becomes "" (an unticked checkbox) and null is dropped.
func decodeJSON(body []byte) (input, error) {
	in := input{}
	if len(bytes.TrimSpace(body)) == 0 {
		return in, nil
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, errMalformedBody
	}
	for k, v := range obj {
		if arr, ok := v.([]any); ok {
			vals := make([]string, 0, len(arr))
			for _, e := range arr {
				s, ok := scalar(e)
				if !ok {
					return nil, errMalformedBody
				}
				vals = append(vals, s)
			}
			in[k] = vals
			continue
		}
		if v == nil {
			continue
		}
		s, ok := scalar(v)
		if !ok {
			return nil, errMalformedBody
		}
		in[k] = []string{s}
	}
	return in, nil
}

func scalar(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case json.Number:
		return x.String(), true
	case bool:
		if x {
			return "true", true
		}
		return "", true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	}
	return "", false
}
