package intranet

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osintranet-http-service/internal/error/code"
)

func TestErrorMessageAppendsArguments(t *testing.T) {
	err := NewBusinessError(code.ErrAccountNotFound, "DANKORT")

	assert.Equal(t, KindBusiness, err.Kind())
	assert.Equal(t, "Kontoen findes ikke: DANKORT", err.Message(code.Danish))
	assert.Equal(t, "Account not found: DANKORT", err.Message(code.English))
	assert.Equal(t, "business error 104002: Account not found: DANKORT", err.Error())
}

func TestErrorUnwrapsCause(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewRepositoryError(code.ErrRepository, cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection reset")

	wrapped := errors.Annotate(err, "loading accounts")
	found, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindRepository, found.Kind())
	assert.True(t, HasCode(wrapped, code.ErrRepository))
	assert.False(t, IsBusiness(wrapped))
}

func TestClassify(t *testing.T) {
	type request struct {
		Name string `validate:"required"`
	}
	validationErr := validator.New().Struct(request{})

	tests := []struct {
		name string
		err  error
		kind Kind
		code int
	}{
		{"intranet error is kept", NewBusinessError(code.ErrHouseholdNotFound), KindBusiness, code.ErrHouseholdNotFound},
		{"not found", errors.NotFoundf("posting %d", 4), KindBusiness, code.ErrRecordNotFound},
		{"already exists", errors.AlreadyExistsf("account %q", "KASSE"), KindBusiness, code.ErrRecordAlreadyExists},
		{"not valid", errors.NotValidf("month 13"), KindBusiness, code.ErrValidation},
		{"forbidden", errors.Forbiddenf("household"), KindBusiness, code.ErrForbidden},
		{"validator", validationErr, KindBusiness, code.ErrValidation},
		{"deadline", context.DeadlineExceeded, KindSystem, code.ErrSystem},
		{"anything else", stderrors.New("boom"), KindSystem, code.ErrUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			require.NotNil(t, got)
			assert.Equal(t, tt.kind, got.Kind())
			assert.Equal(t, tt.code, got.Code)
		})
	}

	assert.Nil(t, Classify(nil))
}

func TestClassifyListsFailedFields(t *testing.T) {
	type request struct {
		Name string `validate:"required"`
	}
	got := Classify(validator.New().Struct(request{}))
	assert.Equal(t, "The request is invalid: Name (required)", got.Message(code.English))
}
