package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type idStruct struct {
	AccountID string `json:"account_id" validate:"required,accountid"`
	RequestID string `json:"request_id" validate:"requestid"`
}

// =============================================================================
// Validator Tests
// =============================================================================

func TestValidator_AccountID(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"simple", "alice", false},
		{"uuid", "0b9f6a0e-4f7e-4c55-9b1b-0d0d2a1c9e11", false},
		{"underscore", "player_1", false},
		{"max length", strings.Repeat("a", 64), false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 65), true},
		{"space", "al ice", true},
		{"slash", "a/b", true},
		{"unicode", "алиса", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(idStruct{AccountID: tt.id})
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, FormatValidationError(err), "account_id")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_RequestID(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"empty is optional", "", false},
		{"printable", "req-42:retry#1", false},
		{"max length", strings.Repeat("r", 128), false},

		{"too long", strings.Repeat("r", 129), true},
		{"space", "req 1", true},
		{"newline", "req\n1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(idStruct{AccountID: "alice", RequestID: tt.id})
			if tt.wantErr {
				require.Error(t, err)
				fields := FormatValidationError(err)
				assert.Equal(t, "Must be 1-128 printable characters without spaces", fields["request_id"])
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_FieldErrorsUseJSONNames(t *testing.T) {
	err := GetValidator().ValidateStruct(SellRequest{ItemIDs: []string{"nope"}})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "Must be a UUID", fields["item_ids[0]"])
}

func TestValidator_MultipleFieldErrors(t *testing.T) {
	err := GetValidator().ValidateStruct(UpgradeRequest{Chance: 95})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "This field is required", fields["account_id"])
	assert.Equal(t, "This field is required", fields["source_item_id"])
	assert.Equal(t, "This field is required", fields["target_id"])
	assert.Equal(t, "Must be at most 90", fields["chance"])
}

func TestFormatValidationError_NonValidationError(t *testing.T) {
	fields := FormatValidationError(assert.AnError)
	assert.Equal(t, "Invalid request format", fields["error"])
	assert.Nil(t, FormatValidationError(nil))
}
