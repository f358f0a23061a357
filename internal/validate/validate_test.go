package validate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"userdesk/internal/validate"
)

func TestChainReturnsFirstViolation(t *testing.T) {
	f := validate.Chain(
		validate.Rule{When: func() bool { return false }, Message: "a", Code: 400},
		validate.Rule{When: func() bool { return true }, Message: "b", Code: 404},
		validate.Rule{When: func() bool { return true }, Message: "c", Code: 500},
	)
	require.NotNil(t, f)
	require.Equal(t, 404, f.Code)
	require.Equal(t, "b", f.Message)
	require.Equal(t, "b", f.Error())
}

func TestChainPasses(t *testing.T) {
	require.Nil(t, validate.Chain())
	require.Nil(t, validate.Chain(validate.Rule{When: func() bool { return false }, Message: "x", Code: 400}))
}

func TestChainStopsEvaluating(t *testing.T) {
	var calls int
	var names []string // nil: indexing would panic if evaluated
	f := validate.Chain(
		validate.Rule{When: func() bool { calls++; return names == nil }, Message: "missing", Code: 400},
		validate.Rule{When: func() bool { calls++; return names[0] == "" }, Message: "empty", Code: 400},
	)
	require.Equal(t, "missing", f.Message)
	require.Equal(t, 1, calls)
}

func TestText(t *testing.T) {
	require.Equal(t, "Ann", validate.Text("  Ann "))
	require.Equal(t, "&lt;b&gt;Lee&lt;/b&gt;", validate.Text("<b>Lee</b>"))
	require.Equal(t, "O&#39;Brien", validate.Text("O'Brien"))
}

func TestTooLongCountsRunes(t *testing.T) {
	require.False(t, validate.TooLong(strings.Repeat("a", 70), 70))
	require.True(t, validate.TooLong(strings.Repeat("a", 71), 70))
	require.False(t, validate.TooLong(strings.Repeat("ж", 70), 70))
}

func TestID(t *testing.T) {
	id, ok := validate.ID("42")
	require.True(t, ok)
	require.EqualValues(t, 42, id)

	for _, bad := range []string{"", "0", "-1", "1.5", "1e3", "abc", "7a", "99999999999999999999"} {
		_, ok := validate.ID(bad)
		require.False(t, ok, bad)
	}
}

func TestIDs(t *testing.T) {
	ids, ok := validate.IDs([]string{"7", "3", "7"})
	require.True(t, ok)
	require.Equal(t, []int64{7, 3}, ids)

	_, ok = validate.IDs([]string{"7", "x"})
	require.False(t, ok)
}

func TestBadRequest(t *testing.T) {
	f := validate.Chain(validate.BadRequest("Role is empty", func() bool { return true }))
	require.Equal(t, 400, f.Code)
	require.Equal(t, "Role is empty", f.Message)
}
