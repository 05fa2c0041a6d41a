package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestVerifier_ValidSignature(t *testing.T) {
	body := []byte(`{"meetingId":"abc","eventType":"Transcription completed"}`)
	v := NewVerifier(true, "s3cret", nil)

	assert.True(t, v.Verify(body, Sign("s3cret", body)))
	assert.False(t, v.Verify(body, Sign("other", body)))
}

func TestVerifier_SingleBitMutation(t *testing.T) {
	body := []byte(`{"meetingId":"abc"}`)
	v := NewVerifier(true, "s3cret", nil)
	sig := Sign("s3cret", body)

	for i := range body {
		mutated := append([]byte(nil), body...)
		mutated[i] ^= 0x01
		assert.False(t, v.Verify(mutated, sig), "body byte %d flipped", i)
	}

	sigBytes := []byte(sig)
	for i := range sigBytes {
		mutated := append([]byte(nil), sigBytes...)
		mutated[i] ^= 0x01
		assert.False(t, v.Verify(body, string(mutated)), "signature byte %d flipped", i)
	}
}

func TestVerifier_EmptySignature(t *testing.T) {
	v := NewVerifier(true, "s3cret", nil)
	assert.False(t, v.Verify([]byte("{}"), ""))
}

func TestVerifier_DisabledAcceptsAnything(t *testing.T) {
	v := NewVerifier(false, "", nil)
	assert.True(t, v.Verify([]byte("{}"), ""))
	assert.True(t, v.Verify([]byte("{}"), "garbage"))
}

func TestVerifier_EnabledWithoutSecret(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	v := NewVerifier(true, "", zap.New(core))

	body := []byte("{}")
	assert.False(t, v.Verify(body, Sign("", body)))
	assert.Equal(t, 1, logs.Len())
}
