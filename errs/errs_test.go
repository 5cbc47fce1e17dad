package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorsIsMatchesKindAndMessage(t *testing.T) {
	err := fmt.Errorf("handler: %w", ErrPaymentRequired)

	assert.True(t, errors.Is(err, ErrPaymentRequired))
	assert.False(t, errors.Is(err, ErrAlreadyEnrolled))
	assert.True(t, errors.Is(err, &Error{Kind: KindPaymentRequired}))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(KindInternal, "ledger.Create", "failed to create enrollment", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindInternal, KindOf(err))
	assert.Equal(t, "Internal server error", MessageOf(err))
	assert.Contains(t, err.Error(), "connection reset")
}

func TestKindOfUnclassified(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.Nil(t, DetailsOf(errors.New("boom")))
}

func TestInvalidDetails(t *testing.T) {
	err := Invalid("validate", "Validation error", map[string]string{"email": "is required"})

	assert.Equal(t, KindInvalidArgument, KindOf(err))
	assert.Equal(t, "Validation error", MessageOf(err))
	assert.Equal(t, "is required", DetailsOf(err)["email"])
}
