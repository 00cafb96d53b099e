package auth

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/medivac/portal/api"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^[0-9\-+()]{10,}$`)
)

const passwordSpecials = "@$!%*?&"

// ValidateRegistration checks the registration form before any network call.
func ValidateRegistration(request *RegisterRequest) error {
	fields := map[string]string{}
	switch {
	case strings.TrimSpace(request.Name) == "":
		fields["name"] = "Name is required"
	case utf8.RuneCountInString(request.Name) < 2:
		fields["name"] = "Name must be at least 2 characters"
	}
	if msg := validateEmail(request.Email); msg != "" {
		fields["email"] = msg
	}
	phone := strings.Join(strings.Fields(request.Phone), "")
	switch {
	case phone == "":
		fields["phone"] = "Phone number is required"
	case !phoneRegex.MatchString(phone):
		fields["phone"] = "Please enter a valid phone number"
	}
	switch {
	case request.Password == "":
		fields["password"] = "Password is required"
	case !strongPassword(request.Password):
		fields["password"] = "Password must be at least 8 characters with uppercase, lowercase, number, and special character"
	}
	if request.ConfirmPassword != "" && request.ConfirmPassword != request.Password {
		fields["confirmPassword"] = "Passwords do not match"
	}
	if len(fields) > 0 {
		return api.NewValidationError(fields)
	}
	return nil
}

// ValidateLogin checks the login form before any network call.
func ValidateLogin(request *LoginRequest) error {
	fields := map[string]string{}
	if msg := validateEmail(request.Email); msg != "" {
		fields["email"] = msg
	}
	if request.Password == "" {
		fields["password"] = "Password is required"
	}
	if len(fields) > 0 {
		return api.NewValidationError(fields)
	}
	return nil
}

func validateEmail(email string) string {
	if email == "" {
		return "Email is required"
	}
	if !emailRegex.MatchString(email) {
		return "Please enter a valid email"
	}
	return ""
}

// strongPassword requires 8+ characters drawn from letters, digits and
// @$!%*?&, with at least one of each class.
func strongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case r > unicode.MaxASCII:
			return false
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		default:
			return false
		}
	}
	return lower && upper && digit && special
}
