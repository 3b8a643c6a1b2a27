package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/store-reservations/internal/httperr"
)

const claimAdmin = "isAdmin"

type Authenticator struct {
	passwordHash []byte
	secret       []byte
	ttl          time.Duration
	now          func() time.Time
}

// NewAuthenticator accepts either a bcrypt hash or a plain password; a plain
// password is hashed once here.
func NewAuthenticator(passwordHash, password, secret string, ttl time.Duration) (*Authenticator, error) {
	hash := []byte(passwordHash)
	if len(hash) == 0 {
		if password == "" {
			return nil, errors.New("admin password or hash required")
		}
		h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash admin password: %w", err)
		}
		hash = h
	}
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}

	return &Authenticator{
		passwordHash: hash,
		secret:       []byte(secret),
		ttl:          ttl,
		now:          time.Now,
	}, nil
}

// Login checks the password and returns a signed admin token.
func (a *Authenticator) Login(password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)); err != nil {
		return "", httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}

	now := a.now()
	claims := jwt.MapClaims{
		"sub":      "admin",
		claimAdmin: true,
		"exp":      now.Add(a.ttl).Unix(),
		"iat":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// Verify parses a token and returns the session it carries.
func (a *Authenticator) Verify(tokenString string) (*State, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return a.secret, nil
	}, jwt.WithTimeFunc(a.now))
	if err != nil || !token.Valid {
		return nil, errors.New("invalid_token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid_token_claims")
	}

	isAdmin, _ := claims[claimAdmin].(bool)
	st := &State{}
	st.Login(isAdmin)
	return st, nil
}
