package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeBodyInvalid, "body missing name")
	require.NotNil(t, err)
	assert.Equal(t, ErrCodeBodyInvalid, err.Code)
	assert.Equal(t, "body missing name", err.Message)
	assert.NotEmpty(t, err.Stack)
	assert.Equal(t, "[ASP_001] body missing name", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(ErrCodeLongitudeOutOfRange, "longitude %.2f out of range", 361.5)
	assert.Equal(t, "[GEO_002] longitude 361.50 out of range", err.Error())
}

func TestWithDetail(t *testing.T) {
	base := New(ErrCodeValidation, "bad input")
	detailed := base.WithDetail("body=Mars")

	assert.Equal(t, "[COMMON_002] bad input: body=Mars", detailed.Error())
	// Original is not mutated.
	assert.Empty(t, base.Detail)

	var nilErr *AppError
	assert.Nil(t, nilErr.WithDetail("x"))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrCodeInternal, "ignored"))

	cause := stderrors.New("disk on fire")
	err := Wrap(cause, ErrCodeConfigInvalid, "loading config")
	require.NotNil(t, err)
	assert.Equal(t, ErrCodeConfigInvalid, err.Code)
	assert.ErrorIs(t, err, cause)
}

func TestWrap_PreservesCodeOnUnknown(t *testing.T) {
	inner := New(ErrCodeEpochInvalid, "zero epoch")
	outer := Wrap(inner, CodeUnknown, "sequence generation failed")
	assert.Equal(t, ErrCodeEpochInvalid, outer.Code)
}

func TestIsCode(t *testing.T) {
	inner := New(ErrCodeAspectOrbInvalid, "orb 16 too wide")
	wrapped := fmt.Errorf("detect: %w", inner)

	assert.True(t, IsCode(wrapped, ErrCodeAspectOrbInvalid))
	assert.False(t, IsCode(wrapped, ErrCodeEpochInvalid))
	assert.False(t, IsCode(nil, ErrCodeEpochInvalid))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, CodeOK, GetCode(nil))
	assert.Equal(t, CodeUnknown, GetCode(stderrors.New("plain")))
	assert.Equal(t, ErrCodeDMSOutOfRange, GetCode(New(ErrCodeDMSOutOfRange, "minutes 61")))
}

func TestIsInvalidInput(t *testing.T) {
	assert.True(t, IsInvalidInput(New(ErrCodeBodyInvalid, "no name")))
	assert.True(t, IsInvalidInput(InvalidParam("generic")))
	assert.False(t, IsInvalidInput(New(ErrCodeSchemeInvalid, "durations do not sum")))
	assert.False(t, IsInvalidInput(nil))
}

func TestIsConfiguration(t *testing.T) {
	assert.True(t, IsConfiguration(New(ErrCodeAspectOrbInvalid, "orb 0")))
	assert.True(t, IsConfiguration(New(ErrCodeSchemeInvalid, "empty scheme")))
	assert.False(t, IsConfiguration(New(ErrCodeBodyInvalid, "no name")))
}

func TestModuleForCode(t *testing.T) {
	assert.Equal(t, "DSH", ModuleForCode(ErrCodeEpochInvalid))
	assert.Equal(t, "GEO", ModuleForCode(ErrCodeDMSOutOfRange))
	assert.Equal(t, "UNKNOWN", ModuleForCode(ErrorCode("")))
}

func TestDefaultMessageForCode(t *testing.T) {
	assert.Equal(t, "invalid epoch", DefaultMessageForCode(ErrCodeEpochInvalid))
	assert.Equal(t, "unknown error", DefaultMessageForCode(ErrorCode("NOPE_999")))
}

//Personal.AI order the ending
