package utils

import (
	"strings"

	"github.com/google/uuid"
)

// ActivationCode returns length upper-case hex characters taken from a random
// uuid. Length is capped at 32.
func ActivationCode(length int) string {
	code := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	if length <= 0 || length > len(code) {
		return code
	}
	return code[:length]
}
