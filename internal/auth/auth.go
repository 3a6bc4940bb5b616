package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"dental-center-management/internal/model"
)

var ErrBadToken = errors.New("invalid token")

func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b), err
}

func CheckPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}

// Claims carry the whole portal identity so a restored session needs no
// lookup against the identity table.
type Claims struct {
	Email     string     `json:"email"`
	Role      model.Role `json:"role"`
	PatientID string     `json:"pid,omitempty"`
	jwt.RegisteredClaims
}

// MakeSessionToken signs the identity into an HS256 token. Sessions are
// device-local, so the lifetime is generous (30 days).
func MakeSessionToken(u model.User, secret string) (string, error) {
	c := Claims{
		Email:     u.Email,
		Role:      u.Role,
		PatientID: u.PatientID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
}

// ParseSessionToken validates the token and reconstructs the identity.
func ParseSessionToken(raw, secret string) (*model.User, error) {
	tok, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		// block alg confusion
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrBadToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	c, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, ErrBadToken
	}
	return &model.User{
		ID:        c.Subject,
		Email:     c.Email,
		Role:      c.Role,
		PatientID: c.PatientID,
	}, nil
}
