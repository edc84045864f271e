package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		input    string
		expected Role
		wantErr  bool
	}{
		{input: "STUDENT", expected: RoleStudent},
		{input: "INSTRUCTOR", expected: RoleInstructor},
		{input: "ADMIN", expected: RoleAdmin},
		{input: "student", wantErr: true},
		{input: "TEACHER", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			role, err := ParseRole(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.False(t, Role(tt.input).Valid())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, role)
				assert.True(t, role.Valid())
			}
		})
	}
}
