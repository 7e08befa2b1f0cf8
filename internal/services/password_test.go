package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := hashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, verifyPassword("correct horse battery staple", hash))
	assert.False(t, verifyPassword("wrong", hash))
}

func TestPasswordHashesAreSalted(t *testing.T) {
	h1, err := hashPassword("same input")
	require.NoError(t, err)
	h2, err := hashPassword("same input")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}
