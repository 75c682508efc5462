package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrConfig, "Something failed", "Try this instead")

	assert.Equal(t, ErrConfig, err.Code)
	assert.Contains(t, err.Error(), "✗ Something failed")
	assert.Contains(t, err.Error(), "Try this instead")
	assert.Nil(t, err.Cause)
}

func TestWrap_DefaultsToProbeCode(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, "Probe failed")

	assert.Equal(t, ErrProbe, err.Code)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, cause, err.Unwrap())
}

func TestWrapWithCode(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := WrapWithCode(cause, ErrIntegration, "Cannot parse tool config", "Fix the file")

	assert.Equal(t, ErrIntegration, err.Code)
	assert.Contains(t, err.Error(), "Cannot parse tool config")
	assert.Contains(t, err.Error(), "unexpected end of JSON input")
	assert.Contains(t, err.Error(), "Fix the file")
}

func TestIsCode(t *testing.T) {
	err := New(ErrParse, "Bad flag", "")

	assert.True(t, IsCode(err, ErrParse))
	assert.False(t, IsCode(err, ErrConfig))
	assert.False(t, IsCode(nil, ErrParse))
	assert.False(t, IsCode(errors.New("plain"), ErrParse))
}

func TestIsCode_WrappedChain(t *testing.T) {
	inner := New(ErrConfig, "Missing key", "")
	outer := fmt.Errorf("loading settings: %w", inner)

	assert.True(t, IsCode(outer, ErrConfig))
}

func TestError_SuggestionOmittedWhenEmpty(t *testing.T) {
	err := New(ErrProbe, "Timed out", "")
	lines := err.Error()

	require.Contains(t, lines, "✗ Timed out")
	assert.NotContains(t, lines, "\n\n  \n")
}
