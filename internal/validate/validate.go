package validate

import (
	"html"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var reID = regexp.MustCompile(`^[0-9]{1,19}$`)

// Rule is one entry of a validation chain. When reports a violation; it is only
// called if every earlier rule passed, so it may rely on their checks.
type Rule struct {
	When    func() bool
	Message string
	Code    int
}

// Failure is the first violated rule of a chain.
type Failure struct {
	Code    int
	Message string
}

func (f *Failure) Error() string { return f.Message }

// BadRequest is a 400 rule, the common case.
func BadRequest(msg string, when func() bool) Rule {
	return Rule{When: when, Message: msg, Code: http.StatusBadRequest}
}

// Chain returns the first violated rule, or nil when every rule passes.
func Chain(rules ...Rule) *Failure {
	for _, r := range rules {
		if r.When() {
			return &Failure{Code: r.Code, Message: r.Message}
		}
	}
	return nil
}

// Text trims and HTML-escapes a free-form input value.
func Text(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}

// TooLong reports whether s has more than max characters (runes, not bytes).
func TooLong(s string, max int) bool {
	return utf8.RuneCountInString(s) > max
}

// ID parses a purely numeric, positive identifier.
func ID(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if !reID.MatchString(s) {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// IDs parses every element with ID, dropping duplicates while keeping order.
// ok is false if any element is not a valid id.
func IDs(raw []string) (ids []int64, ok bool) {
	seen := make(map[int64]struct{}, len(raw))
	for _, s := range raw {
		id, valid := ID(s)
		if !valid {
			return nil, false
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, true
}
