package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/rutamk/dsr-final/internal/models"
	"github.com/rutamk/dsr-final/internal/repository"
)

// ErrInvalidCredentials covers both an unknown email and a wrong password so
// the response never leaks which one it was.
var ErrInvalidCredentials = errors.New("Invalid Credentials")

const tokenTTL = 72 * time.Hour

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Authenticate checks the password against the stored bcrypt hash and hands
// back the user on success.
func Authenticate(ctx context.Context, db *mongo.Database, email, password string) (models.User, error) {
	user, err := repository.FindUserByEmail(ctx, db, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// IssueToken signs an HS256 token carrying only the user id and role. Scope
// is re-read from the store on every request, so user edits take effect
// without a re-login.
func IssueToken(user models.User, secret string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID.Hex(),
		"role":    user.Role,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
