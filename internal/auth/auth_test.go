package auth_test

import (
	"testing"

	"github.com/foodikal/ordering-go/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		hash, err := auth.HashPassword("s3cret-password")

		require.NoError(t, err)
		assert.True(t, auth.VerifyPassword("s3cret-password", hash))
	})

	t.Run("wrong password", func(t *testing.T) {
		hash, err := auth.HashPassword("s3cret-password")

		require.NoError(t, err)
		assert.False(t, auth.VerifyPassword("wrong", hash))
	})

	t.Run("distinct salts for the same password", func(t *testing.T) {
		hash1, err1 := auth.HashPassword("same")
		hash2, err2 := auth.HashPassword("same")

		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, hash1, hash2)
	})
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{name: "empty", hash: ""},
		{name: "wrong field count", hash: "deadbeef$100000"},
		{name: "bad salt hex", hash: "zz$100000$deadbeef"},
		{name: "bad iterations", hash: "deadbeef$lots$deadbeef"},
		{name: "zero iterations", hash: "deadbeef$0$deadbeef"},
		{name: "bad hash hex", hash: "deadbeef$100000$zz"},
		{name: "empty hash part", hash: "deadbeef$100000$"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, auth.VerifyPassword("anything", tt.hash))
		})
	}
}

func TestExtractBearerToken(t *testing.T) {
	assert.Equal(t, "tok123", auth.ExtractBearerToken("Bearer tok123"))
	assert.Equal(t, "tok123", auth.ExtractBearerToken("Bearer tok123  "))
	assert.Empty(t, auth.ExtractBearerToken(""))
	assert.Empty(t, auth.ExtractBearerToken("Basic dXNlcg=="))
	assert.Empty(t, auth.ExtractBearerToken("Bearer "))
	assert.Empty(t, auth.ExtractBearerToken("bearer tok123"))
}

func TestAuthenticate(t *testing.T) {
	hash, err := auth.HashPassword("admin-password")
	require.NoError(t, err)

	assert.True(t, auth.Authenticate("Bearer admin-password", hash))
	assert.False(t, auth.Authenticate("Bearer nope", hash))
	assert.False(t, auth.Authenticate("", hash))
	assert.False(t, auth.Authenticate("Bearer admin-password", "not-a-hash"))
}
