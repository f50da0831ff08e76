package code

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEveryCodeHasMessageAndStatus(t *testing.T) {
	for c := range codeMessageMap {
		_, ok := codeStatusMap[c]
		assert.True(t, ok, "code %d has no status", c)
	}
	for c := range codeStatusMap {
		assert.True(t, Known(c), "code %d has no message", c)
	}
}

func TestGetLocalizedMessage(t *testing.T) {
	assert.Equal(t, "Kontoen findes ikke", GetMessage(ErrAccountNotFound))
	assert.Equal(t, "Account not found", GetLocalizedMessage(English, ErrAccountNotFound))
	assert.Equal(t, "Unknown error", GetLocalizedMessage(English, 999999))
}

func TestGetStatus(t *testing.T) {
	assert.Equal(t, StatusNotFound, GetStatus(ErrHouseholdNotFound))
	assert.Equal(t, StatusConflict, GetStatus(ErrAccountAlreadyExists))
	assert.Equal(t, StatusUnprocessable, GetStatus(ErrPostingDateOutOfRange))
	assert.Equal(t, StatusInternalServerError, GetStatus(424242))
}
