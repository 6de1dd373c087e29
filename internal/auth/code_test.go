package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		code, err := GenerateCode()
		assert.NoError(t, err)
		assert.Len(t, code, 6)
		assert.Regexp(t, `^\d{6}$`, code)
		seen[code] = true
	}
	// 20 draws from a 900k space colliding down to one value would mean the
	// generator is broken.
	assert.Greater(t, len(seen), 1)
}

func TestHashAndVerifyCode(t *testing.T) {
	code, err := GenerateCode()
	assert.NoError(t, err)

	hash, err := HashCode(code)
	assert.NoError(t, err)
	assert.NotEqual(t, code, hash)

	assert.NoError(t, VerifyCode(hash, code))
	assert.Error(t, VerifyCode(hash, "000000"))
}
