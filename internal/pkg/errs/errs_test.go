//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"tripmatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

var errMarker = errors.New("marker")

func TestMark(t *testing.T) {
	base := errs.New("row vanished")
	marked := errs.Mark(base, errMarker)

	assert.True(t, errs.Is(marked, errMarker))
	assert.True(t, errs.Is(marked, base))
	assert.Equal(t, "row vanished", marked.Error())

	assert.Equal(t, errMarker, errs.Mark(nil, errMarker))
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "ctx"))
	assert.NoError(t, errs.Wrapf(nil, "ctx %d", 1))
	assert.NoError(t, errs.WithHint(nil, "hint"))
}

func TestIsAny(t *testing.T) {
	other := errors.New("other")
	err := errs.Wrap(errMarker, "while matching")

	assert.True(t, errs.IsAny(err, other, errMarker))
	assert.False(t, errs.IsAny(err, other))
}

func TestAs(t *testing.T) {
	type kindErr struct{ error }
	err := errs.Wrapf(&kindErr{errMarker}, "attempt %d", 2)

	var target *kindErr
	assert.True(t, errs.As(err, &target))
}

func TestHints(t *testing.T) {
	err := errs.WithHint(errs.New("boom"), "check MATCH_GROUP_SIZE")
	assert.Equal(t, []string{"check MATCH_GROUP_SIZE"}, errs.Hints(errs.Wrap(err, "outer")))
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 3))

	lines := errs.ExtractStackLines(errs.New("boom"), 2)
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "boom")
}
