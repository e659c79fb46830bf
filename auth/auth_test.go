package auth

import (
	"testing"
	"time"

	"buzzline/globals"
	"buzzline/middleware"
	"buzzline/models"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAccessTokenRoundTrip(t *testing.T) {
	user := models.User{
		UserID:   "u1234567890",
		Username: "budi",
		Role:     []string{"user"},
	}

	tokenString, err := generateAccessToken(user)
	if err != nil {
		t.Fatalf("generateAccessToken: %v", err)
	}

	claims := &middleware.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return globals.JwtSecret, nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token did not parse back: %v", err)
	}
	if claims.UserID != user.UserID {
		t.Errorf("userID = %q, want %q", claims.UserID, user.UserID)
	}
	if claims.Username != user.Username {
		t.Errorf("username = %q, want %q", claims.Username, user.Username)
	}
	if time.Until(claims.ExpiresAt.Time) > accessTokenTTL {
		t.Error("expiry further out than the access token TTL")
	}
}

func TestGenerateRefreshTokenUnique(t *testing.T) {
	a, err := generateRefreshToken()
	if err != nil {
		t.Fatal(err)
	}
	b, err := generateRefreshToken()
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("two refresh tokens should never collide")
	}
	if len(a) != 64 {
		t.Errorf("refresh token length = %d, want 64 hex chars", len(a))
	}
}

func TestHashTokenDeterministic(t *testing.T) {
	if hashToken("abc") != hashToken("abc") {
		t.Error("same input must hash the same")
	}
	if hashToken("abc") == hashToken("abd") {
		t.Error("different inputs must hash differently")
	}
	if len(hashToken("abc")) != 64 {
		t.Error("expected sha256 hex digest")
	}
}
