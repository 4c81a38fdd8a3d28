package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		errMsg   string
		wantErr  bool
	}{
		{name: "valid lowercase", username: "alice"},
		{name: "valid mixed case", username: "AliceSmith"},
		{name: "valid with underscore", username: "alice_smith"},
		{name: "valid digits only", username: "123456"},
		{name: "valid max length", username: strings.Repeat("a", 32)},
		{name: "empty", username: "", wantErr: true, errMsg: "cannot be empty"},
		{name: "too short", username: "ab", wantErr: true, errMsg: "at least 3"},
		{name: "too long", username: strings.Repeat("a", 33), wantErr: true, errMsg: "must not exceed 32"},
		{name: "space", username: "alice smith", wantErr: true, errMsg: "can only contain"},
		{name: "dash", username: "alice-smith", wantErr: true, errMsg: "can only contain"},
		{name: "cyrillic", username: "алиса", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.errMsg != "" {
				assert.Contains(t, err.Error(), tt.errMsg)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		errMsg   string
		wantErr  bool
	}{
		{name: "exactly 8 chars", password: "passw0rd"},
		{name: "long", password: "super_secret_password_123"},
		{name: "special chars", password: "P@ssw0rd!@#$"},
		{name: "unicode counted in runes", password: "пароль12"},
		{name: "empty", password: "", wantErr: true, errMsg: "cannot be empty"},
		{name: "7 chars", password: "passw0r", wantErr: true, errMsg: "at least 8"},
		{name: "over bcrypt limit", password: strings.Repeat("x", 73), wantErr: true, errMsg: "must not exceed 72"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestValidateDocumentID(t *testing.T) {
	valid := []string{"doc1", "team.notes", "2024-06-01_minutes", strings.Repeat("d", 128)}
	for _, id := range valid {
		assert.NoError(t, ValidateDocumentID(id), id)
	}

	assert.ErrorIs(t, ValidateDocumentID(""), ErrEmptyDocumentID)

	invalid := []string{".", "..", "a/b", "with space", "doc?x=1", strings.Repeat("d", 129)}
	for _, id := range invalid {
		assert.Error(t, ValidateDocumentID(id), id)
	}
}
