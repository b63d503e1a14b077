package jwt

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestService_RoundTrip(t *testing.T) {
	svc := New("test-secret", time.Hour)

	token, err := svc.GenerateToken(42, "asel@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "asel@example.com", claims.Email)
}

func TestService_RejectsTamperedSignature(t *testing.T) {
	svc := New("test-secret", time.Hour)

	token, err := svc.GenerateToken(1, "a@b.com")
	assert.NoError(t, err)

	parts := strings.Split(token, ".")
	parts[2] = "AAAA" + parts[2][4:]
	_, err = svc.ValidateToken(strings.Join(parts, "."))
	assert.Error(t, err)
}

func TestService_RejectsWrongSecret(t *testing.T) {
	token, err := New("secret-one", time.Hour).GenerateToken(1, "a@b.com")
	assert.NoError(t, err)

	_, err = New("secret-two", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestService_RejectsExpiredToken(t *testing.T) {
	svc := New("test-secret", -time.Minute)

	token, err := svc.GenerateToken(1, "a@b.com")
	assert.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestService_RejectsGarbage(t *testing.T) {
	svc := New("test-secret", time.Hour)

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}
