package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/avoronov/authgate/internal/shared"
)

var testSecret = []byte("test-secret-key")

func TestGenerateAndVerifyToken(t *testing.T) {
	token, err := GenerateToken("user-123", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken returned empty token")
	}

	userID, err := GetUserIDFromToken(token, testSecret)
	if err != nil {
		t.Fatalf("GetUserIDFromToken error: %v", err)
	}
	if userID != "user-123" {
		t.Fatalf("unexpected user id: %q", userID)
	}
}

func TestGetUserIDFromToken_Tampered(t *testing.T) {
	token, err := GenerateToken("user-123", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	// flip one character somewhere in the signed string
	b := []byte(token)
	i := len(b) / 2
	if b[i] == 'a' {
		b[i] = 'b'
	} else {
		b[i] = 'a'
	}

	_, err = GetUserIDFromToken(string(b), testSecret)
	if !errors.Is(err, shared.ErrorInvalidToken) {
		t.Fatalf("want shared.ErrorInvalidToken, got %v", err)
	}
}

func TestGetUserIDFromToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("user-123", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = GetUserIDFromToken(token, []byte("another-secret"))
	if !errors.Is(err, shared.ErrorInvalidToken) {
		t.Fatalf("want shared.ErrorInvalidToken, got %v", err)
	}
}

func TestGetUserIDFromToken_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "garbage"},
		{"not a jwt", "aaa.bbb.ccc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GetUserIDFromToken(tt.token, testSecret)
			if !errors.Is(err, shared.ErrorInvalidToken) {
				t.Fatalf("want shared.ErrorInvalidToken, got %v", err)
			}
		})
	}
}

func TestGetUserIDFromToken_Expired(t *testing.T) {
	token, err := GenerateToken("user-123", testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = GetUserIDFromToken(token, testSecret)
	if !errors.Is(err, shared.ErrorInvalidToken) {
		t.Fatalf("want shared.ErrorInvalidToken, got %v", err)
	}
}

func TestGetUserIDFromToken_WrongSigningMethod(t *testing.T) {
	// alg=none tokens must never verify
	token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "user-123"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("signing error: %v", err)
	}

	_, err = GetUserIDFromToken(signed, testSecret)
	if !errors.Is(err, shared.ErrorInvalidToken) {
		t.Fatalf("want shared.ErrorInvalidToken, got %v", err)
	}
}
