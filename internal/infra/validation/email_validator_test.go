package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailValidator_IsValid(t *testing.T) {
	v := NewEmailValidator()

	tests := []struct {
		email string
		want  bool
	}{
		{email: "john@example.com", want: true},
		{email: "asdas@asda.com", want: true},
		{email: "first.last+tag@sub.example.org", want: true},
		{email: "invalid", want: false},
		{email: "invalid_email", want: false},
		{email: "missing-domain@", want: false},
		{email: "@missing-local.com", want: false},
		{email: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			got, err := v.IsValid(tt.email)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
