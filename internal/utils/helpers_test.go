package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestPasswordHashing(t *testing.T) {
	const password = "s3cret-pass"
	salt := GenerateRandomString(16)

	hash, err := HashPassword(password, salt)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if !CheckPasswordHash(password, salt, hash) {
		t.Error("correct password and salt should verify")
	}
	if CheckPasswordHash("wrong-pass", salt, hash) {
		t.Error("wrong password must not verify")
	}
	if CheckPasswordHash(password, "wrong-salt", hash) {
		t.Error("wrong salt must not verify")
	}
}

func TestGenerateToken(t *testing.T) {
	secret := []byte("unit-test-secret")
	tokenString, err := GenerateToken("admin@example.com", secret)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("issued token failed to parse: %v", err)
	}

	claims := token.Claims.(jwt.MapClaims)
	if claims["email"] != "admin@example.com" {
		t.Errorf("email claim = %v", claims["email"])
	}
	if claims["iss"] != "quizadmin-api" {
		t.Errorf("iss claim = %v", claims["iss"])
	}
}

func TestGenerateRandomString(t *testing.T) {
	s := GenerateRandomString(24)
	if len(s) != 24 {
		t.Errorf("length = %d, want 24", len(s))
	}
	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')) {
			t.Errorf("unexpected character %q", r)
		}
	}
}
