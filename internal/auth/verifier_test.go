package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticVerifier(t *testing.T) {
	v := NewStaticVerifier("200230")

	assert.True(t, v.Verify("200230"))
	assert.False(t, v.Verify("200231"))
	assert.False(t, v.Verify("2002300"))
	assert.False(t, v.Verify(""))
}
