// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/locallibrary/internal/platform/sec"
)

const testSecret = "0123456789abcdef0123456789abcdef"

/*
TestSessionSigner_RoundTrip checks that a signed session ID verifies back to itself.
*/
func TestSessionSigner_RoundTrip(t *testing.T) {
	signer, err := sec.NewSessionSigner(testSecret, "locallibrary", time.Hour)
	require.NoError(t, err)

	token, err := signer.Sign("session-42")
	require.NoError(t, err)

	id, err := signer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "session-42", id)
}

/*
TestSessionSigner_Rejects covers tampered, expired and foreign tokens.
*/
func TestSessionSigner_Rejects(t *testing.T) {
	signer, err := sec.NewSessionSigner(testSecret, "locallibrary", time.Hour)
	require.NoError(t, err)

	other, err := sec.NewSessionSigner("another-secret-of-enough-length", "locallibrary", time.Hour)
	require.NoError(t, err)

	expired, err := sec.NewSessionSigner(testSecret, "locallibrary", -time.Minute)
	require.NoError(t, err)

	foreignIssuer, err := sec.NewSessionSigner(testSecret, "someone-else", time.Hour)
	require.NoError(t, err)

	valid, err := signer.Sign("sid")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token func() string
	}{
		{"garbage", func() string { return "not-a-token" }},
		{"tampered", func() string { return valid[:len(valid)-2] + "xx" }},
		{"other_key", func() string { token, _ := other.Sign("sid"); return token }},
		{"expired", func() string { token, _ := expired.Sign("sid"); return token }},
		{"foreign_issuer", func() string { token, _ := foreignIssuer.Sign("sid"); return token }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := signer.Verify(tt.token())
			assert.ErrorIs(t, err, sec.ErrInvalidToken)
		})
	}
}

/*
TestDeriveKey verifies determinism, purpose separation and the secret length guard.
*/
func TestDeriveKey(t *testing.T) {
	first, err := sec.DeriveKey(testSecret, "purpose-a", 32)
	require.NoError(t, err)
	again, err := sec.DeriveKey(testSecret, "purpose-a", 32)
	require.NoError(t, err)
	second, err := sec.DeriveKey(testSecret, "purpose-b", 32)
	require.NoError(t, err)

	assert.Len(t, first, 32)
	assert.Equal(t, first, again)
	assert.NotEqual(t, first, second)

	_, err = sec.DeriveKey("short", "purpose-a", 32)
	assert.ErrorIs(t, err, sec.ErrWeakSecret)
}
