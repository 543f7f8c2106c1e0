package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(New(KindNotFound, "campaign 1 not found")))
	assert.Equal(t, KindBusy, KindOf(Wrap(KindBusy, "row locked", errors.New("mysql 3572"))))

	// foreign errors default to storage
	assert.Equal(t, KindStorage, KindOf(errors.New("connection refused")))
}

func TestKindOf_Wrapped_Through_Fmt(t *testing.T) {
	inner := New(KindEditNotAllowed, "single submission only")
	outer := fmt.Errorf("submit: %w", inner)

	assert.Equal(t, KindEditNotAllowed, KindOf(outer))
	assert.Equal(t, true, Is(outer, KindEditNotAllowed))
	assert.Equal(t, false, Is(outer, KindBusy))
}

func TestReasonOf(t *testing.T) {
	err := SelectionInvalid(ReasonTooManyItems, "limit exceeded")
	assert.Equal(t, KindSelectionInvalid, KindOf(err))
	assert.Equal(t, ReasonTooManyItems, ReasonOf(err))

	assert.Equal(t, Reason(""), ReasonOf(New(KindNotFound, "missing")))
	assert.Equal(t, Reason(""), ReasonOf(errors.New("plain")))
}

func TestError_Message(t *testing.T) {
	assert.Equal(t, "missing", New(KindNotFound, "missing").Error())

	cause := errors.New("duplicate entry")
	wrapped := Wrap(KindStorage, "insert participant", cause)
	assert.Equal(t, "insert participant: duplicate entry", wrapped.Error())
	assert.Equal(t, cause, errors.Unwrap(wrapped))
}
