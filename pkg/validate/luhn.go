package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsLuhn reports whether s passes the Luhn checksum. Used for payout card
// numbers supplied during provider onboarding.
func IsLuhn(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}
