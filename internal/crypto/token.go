package crypto

import "github.com/google/uuid"

// NewResetToken returns an opaque one-shot password-reset token. Reset tokens
// are held server-side with an expiry and are unrelated to session JWTs.
func NewResetToken() string {
	return uuid.NewString()
}
