package schema

import (
	"strings"

	"officehub/internal/models"
)

// InsertUser is the validated shape accepted when creating a login record.
type InsertUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate coerces the input into a storable user, collecting per-field
// errors.
func (in InsertUser) Validate() (models.User, FieldErrors) {
	errs := FieldErrors{}

	// Passwords are stored verbatim, so only the blank check applies.
	u := models.User{
		Username: requiredString(errs, "username", "Username", in.Username),
		Password: in.Password,
	}
	if strings.TrimSpace(in.Password) == "" {
		errs["password"] = "Password is required"
	}

	if len(errs) > 0 {
		return models.User{}, errs
	}
	return u, nil
}
