package utils

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/quizmint/quizadmin-api/internal/models"
)

// RespondWithJSON sends a JSON response.
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Error marshalling JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// RespondSuccess sends the uniform success envelope.
func RespondSuccess(w http.ResponseWriter, code int, message string, data interface{}) {
	RespondWithJSON(w, code, models.Envelope{
		Success: true,
		Message: message,
		Status:  code,
		Data:    data,
	})
}

// RespondError sends the uniform error envelope. Data is null unless the error
// attaches a structured payload.
func RespondError(w http.ResponseWriter, code int, message string, data interface{}) {
	RespondWithJSON(w, code, models.Envelope{
		Success: false,
		Message: message,
		Status:  code,
		Data:    data,
	})
}

// RespondAuthError sends the authentication/authorization rejection shape:
// {message, status, error, details?}.
func RespondAuthError(w http.ResponseWriter, code int, message, errLabel, details string) {
	RespondWithJSON(w, code, models.AuthErrorResponse{
		Message: message,
		Status:  code,
		Error:   errLabel,
		Details: details,
	})
}

// HashPassword hashes password+salt with bcrypt. The salt is stored alongside
// the hash on the admin document.
func HashPassword(password, salt string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password+salt), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a plain-text password+salt against a bcrypt hash.
func CheckPasswordHash(password, salt, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password+salt))
	return err == nil
}

// GenerateToken issues a signed JWT carrying the admin's email claim.
func GenerateToken(email string, secretKey []byte) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
		"iss":   "quizadmin-api",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateRandomString generates a random string of the given length, used for
// temporary passwords and salts.
func GenerateRandomString(length int) string {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[seededRand.Intn(len(charset))]
	}
	return string(b)
}
