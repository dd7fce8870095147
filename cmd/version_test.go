package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribeVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"(devel)", "(devel)"},
		{"v1.2", "v1.2.0"},
		{"v1.2.3", "v1.2.3"},
		{"v2.0.0-rc.1", "v2.0.0-rc.1 (pre-release)"},
		{"1.2.3", "1.2.3"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, describeVersion(tt.in), tt.in)
	}
}
