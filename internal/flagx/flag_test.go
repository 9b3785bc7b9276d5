package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate flag and value",
			args:    []string{"-a", ":3000", "-x", "ignored"},
			allowed: []string{"-a"},
			want:    []string{"-a", ":3000"},
		},
		{
			name:    "combined flag=value",
			args:    []string{"-d=postgres://localhost/auth", "-s=key"},
			allowed: []string{"-s"},
			want:    []string{"-s=key"},
		},
		{
			name:    "test framework flags are dropped",
			args:    []string{"-test.v", "-test.run", "TestFoo", "-a", ":9090"},
			allowed: []string{"-a", "-d", "-s", "-t"},
			want:    []string{"-a", ":9090"},
		},
		{
			name:    "flag followed by another flag has no value",
			args:    []string{"-a", "-d", "dsn"},
			allowed: []string{"-a", "-d"},
			want:    []string{"-a", "-d", "dsn"},
		},
		{
			name:    "empty input",
			args:    nil,
			allowed: []string{"-a"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}
