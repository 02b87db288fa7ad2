package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/khutwa/internal/models"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		errMsg  string
		wantErr bool
	}{
		{name: "valid email", email: "a@x.com"},
		{name: "valid email with subdomain", email: "doctor@clinic.khutwa.org"},
		{name: "valid email with surrounding spaces", email: "  a@x.com "},
		{name: "empty", email: "", wantErr: true, errMsg: "required"},
		{name: "only spaces", email: "   ", wantErr: true, errMsg: "required"},
		{name: "missing at", email: "ax.com", wantErr: true, errMsg: "valid email"},
		{name: "missing domain dot", email: "a@x", wantErr: true, errMsg: "valid email"},
		{name: "inner space", email: "a b@x.com", wantErr: true, errMsg: "valid email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("secret1"))
	assert.NoError(t, ValidatePassword("123456"))

	err := ValidatePassword("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")

	err = ValidatePassword("12345")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 6 characters")
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("A"))
	assert.Error(t, ValidateName(""))
	assert.Error(t, ValidateName("   "))

	long := make([]byte, MaxNameLen+1)
	for i := range long {
		long[i] = 'a'
	}
	assert.Error(t, ValidateName(string(long)))
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		phone   string
		wantErr bool
	}{
		{phone: ""},
		{phone: "+965 5555 1234"},
		{phone: "(02) 555-0100"},
		{phone: "12345", wantErr: true},
		{phone: "call me", wantErr: true},
		{phone: "+1+2+3+4+5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			err := ValidatePhone(tt.phone)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateDateOfBirth(t *testing.T) {
	assert.NoError(t, ValidateDateOfBirth(""))
	assert.NoError(t, ValidateDateOfBirth("1970-05-17"))
	assert.Error(t, ValidateDateOfBirth("17/05/1970"))
	assert.Error(t, ValidateDateOfBirth("2999-01-01"))
}

func TestValidateRole(t *testing.T) {
	assert.NoError(t, ValidateRole(""))
	assert.NoError(t, ValidateRole(models.RolePatient))
	assert.NoError(t, ValidateRole(models.RoleDoctor))
	assert.NoError(t, ValidateRole(models.RoleAdmin))
	assert.Error(t, ValidateRole("nurse"))
}
