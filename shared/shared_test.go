package shared_test

import (
	"testing"

	"frontdesk/shared"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{name: "empty string returns nil", input: "", expected: nil},
		{name: "valid true string", input: "true", expected: boolPtr(true)},
		{name: "valid 0 string", input: "0", expected: boolPtr(false)},
		{name: "invalid string returns nil", input: "maybe", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "limiter:10.0.0.1:curl", shared.BuildCacheKey("limiter", "10.0.0.1", "curl"))
	assert.Equal(t, "limiter:10.0.0.1", shared.BuildCacheKey("limiter", "10.0.0.1", " "))
	assert.Equal(t, "limiter", shared.BuildCacheKey("limiter"))
}

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, 0.3, shared.RoundMoney(0.1+0.2))
	assert.Equal(t, 1750.0, shared.RoundMoney(1750))
	assert.Equal(t, -12.35, shared.RoundMoney(-12.346))
}
