package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifySignature(t *testing.T) {
	secret := []byte("hook-secret")
	body := []byte(`{"x":1}`)
	sig := Sign(secret, body)

	assert.True(t, VerifySignature(secret, body, sig))
	assert.True(t, VerifySignature(secret, body, strings.ToUpper(sig)))
	assert.True(t, VerifySignature(secret, body, "sha256="+sig))

	assert.False(t, VerifySignature([]byte("other"), body, sig))
	assert.False(t, VerifySignature(secret, body, "not-hex"))
	assert.False(t, VerifySignature(secret, body, ""))
}

func TestVerifySignature_AnySingleByteChange(t *testing.T) {
	secret := []byte("hook-secret")
	body := []byte(`{"event":"order.paid","amount":10}`)
	sig := Sign(secret, body)

	for i := range body {
		tampered := append([]byte(nil), body...)
		tampered[i] ^= 0x01
		assert.False(t, VerifySignature(secret, tampered, sig), "byte %d", i)
	}
}
