package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Validation must be a pure format check: addresses on domains that do not
// resolve (or with no MX records) are still well formed, and rejecting them
// would make login depend on the network.
func TestEmailValidationIsFormatOnly(t *testing.T) {
	for _, email := range []string{
		"admin@portfolio.com",
		"a@b.com",
		"user@no-such-domain-xyz.invalid",
	} {
		err := RegisterRequest{Email: email, Password: "admin123"}.Validate()
		assert.NoError(t, err, "email %q", email)

		err = LoginRequest{Email: email, Password: "admin123"}.Validate()
		assert.NoError(t, err, "email %q", email)
	}
}

func TestEmailValidationRejectsMalformed(t *testing.T) {
	for _, email := range []string{"", "not-an-email", "missing@tld@twice"} {
		err := RegisterRequest{Email: email, Password: "admin123"}.Validate()
		assert.Error(t, err, "email %q", email)
	}
}
