package auth

import (
	"testing"

	"github.com/medivac/portal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRegistration(t *testing.T) {
	testCases := []struct {
		description string
		mutate      func(r *RegisterRequest)
		fields      []string
	}{
		{description: "valid", mutate: func(r *RegisterRequest) {}},
		{description: "phone with spaces", mutate: func(r *RegisterRequest) { r.Phone = "555 123 4567" }},
		{description: "no confirmation given", mutate: func(r *RegisterRequest) { r.ConfirmPassword = "" }},
		{description: "padded short name", mutate: func(r *RegisterRequest) { r.Name = " J " }},
		{description: "short name", mutate: func(r *RegisterRequest) { r.Name = "J" }, fields: []string{"name"}},
		{description: "blank name", mutate: func(r *RegisterRequest) { r.Name = "   " }, fields: []string{"name"}},
		{description: "missing name", mutate: func(r *RegisterRequest) { r.Name = "" }, fields: []string{"name"}},
		{description: "bad email", mutate: func(r *RegisterRequest) { r.Email = "jane@x" }, fields: []string{"email"}},
		{description: "short phone", mutate: func(r *RegisterRequest) { r.Phone = "12345" }, fields: []string{"phone"}},
		{description: "letters in phone", mutate: func(r *RegisterRequest) { r.Phone = "555-CALL-NOW1" }, fields: []string{"phone"}},
		{description: "weak password", mutate: func(r *RegisterRequest) { r.Password = "password"; r.ConfirmPassword = "password" }, fields: []string{"password"}},
		{description: "unsupported special", mutate: func(r *RegisterRequest) { r.Password = "Secret1#x"; r.ConfirmPassword = "Secret1#x" }, fields: []string{"password"}},
		{description: "mismatch", mutate: func(r *RegisterRequest) { r.ConfirmPassword = "Secret1!y" }, fields: []string{"confirmPassword"}},
		{description: "everything wrong", mutate: func(r *RegisterRequest) { *r = RegisterRequest{} }, fields: []string{"email", "name", "password", "phone"}},
	}
	for _, tc := range testCases {
		request := validRegistration()
		tc.mutate(request)
		err := ValidateRegistration(request)
		if len(tc.fields) == 0 {
			assert.NoError(t, err, tc.description)
			continue
		}
		require.Error(t, err, tc.description)
		apiErr, ok := err.(*api.Error)
		require.True(t, ok, tc.description)
		assert.Equal(t, api.KindValidation, apiErr.Kind, tc.description)
		var fields []string
		for name := range apiErr.Fields {
			fields = append(fields, name)
		}
		assert.ElementsMatch(t, tc.fields, fields, tc.description)
	}
}

func TestValidateLogin(t *testing.T) {
	assert.NoError(t, ValidateLogin(&LoginRequest{Email: "jane@x.io", Password: "x"}))

	err := ValidateLogin(&LoginRequest{})
	require.Error(t, err)
	assert.Equal(t, "Email is required; Password is required", err.Error())

	err = ValidateLogin(&LoginRequest{Email: "jane", Password: "x"})
	require.Error(t, err)
	assert.Equal(t, "Please enter a valid email", err.Error())
}
