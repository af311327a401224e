package internal_test

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/zetherabarter/Rec-Backend2/internal"
)

type customPayload struct {
	Custom map[string][]string `validate:"omitempty,placeholderkeys"`
}

func TestPlaceholderKeysValidator(t *testing.T) {

	v := validator.New()
	err := v.RegisterValidation("placeholderkeys", internal.PlaceholderKeysValidator)

	if err != nil {
		t.Fatalf("failed to register validator - %v", err)
	}

	tests := []struct {
		name    string
		custom  map[string][]string
		isValid bool
	}{
		{
			name:    "Alphanumeric keys with underscores are valid",
			custom:  map[string][]string{"name": {"Alice"}, "interview_slot": {"10am"}},
			isValid: true,
		},
		{
			name:    "Empty map is valid",
			custom:  map[string][]string{},
			isValid: true,
		},
		{
			name:    "Spaces in keys are rejected",
			custom:  map[string][]string{"bad key": {"value"}},
			isValid: false,
		},
		{
			name:    "Punctuation in keys is rejected",
			custom:  map[string][]string{"name!": {"value"}},
			isValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(customPayload{Custom: tt.custom})

			if tt.isValid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
