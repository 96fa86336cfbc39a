package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyUnknownAction(t *testing.T) {
	assert.ErrorIs(t, apply(nil, "sideways"), ErrUnknownAction)
}
