package helpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateToken(t *testing.T) {
	token := GenerateToken(64)
	assert.Len(t, token, 64)
	for _, r := range token {
		assert.Contains(t, tokenChars, string(r))
	}

	// Two draws colliding would mean the source is broken.
	assert.NotEqual(t, token, GenerateToken(64))
}

func TestGenerateCode(t *testing.T) {
	code := GenerateCode(10)
	assert.Len(t, code, 10)
	assert.Equal(t, strings.ToUpper(code), code)
	for _, r := range code {
		assert.Contains(t, codeChars, string(r))
	}
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, 0.5714, FormatFloat(0.57142857, 4))
	assert.Equal(t, 0.0001, FormatFloat(0.00005, 4))
	assert.Equal(t, 123.46, FormatFloat(123.456, 2))
}
