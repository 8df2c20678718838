// Package validation provides input validation for account fields.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var nicknameRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// ValidateNickname checks signup nickname format: at least 3 characters,
// alphanumeric only.
func ValidateNickname(nickname string) error {
	if len(nickname) < 3 || !nicknameRegex.MatchString(nickname) {
		return fmt.Errorf("nickname must be at least 3 characters of letters and digits only")
	}
	return nil
}

// ValidatePassword checks signup password rules against the chosen nickname.
func ValidatePassword(password, nickname string) error {
	if len(password) < 4 {
		return fmt.Errorf("password must be at least 4 characters")
	}
	if nickname != "" && strings.Contains(password, nickname) {
		return fmt.Errorf("password must not contain the nickname")
	}
	return nil
}
