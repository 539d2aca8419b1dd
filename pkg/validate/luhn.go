package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsCardNumber reports whether s passes the Luhn checksum. Used for the
// optional card number in withdrawal bank details.
func IsCardNumber(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}
