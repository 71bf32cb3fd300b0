package jwtutil

import (
	"errors"
	"time"

	"notes-auth/pkg/xerrors"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by both access and refresh tokens. Refresh tokens omit the
// display name.
type Claims struct {
	UserID string `json:"uid"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies session tokens with a single process-wide HS256
// secret. Construct once at startup and treat as immutable.
type Issuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewIssuer(secret []byte, accessTTL, refreshTTL time.Duration) *Issuer {
	return &Issuer{
		secret:     secret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// IssueAccess signs a short-lived access token carrying uid, email and name.
func (i *Issuer) IssueAccess(userID, email, name string) (string, error) {
	return i.sign(Claims{
		UserID: userID,
		Email:  email,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(i.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	})
}

// IssueRefresh signs a longer-lived refresh token. It carries uid and email
// only.
func (i *Issuer) IssueRefresh(userID, email string) (string, error) {
	return i.sign(Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(i.refreshTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	})
}

func (i *Issuer) sign(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// ParseAndValidate verifies the signature and expiry of a token and returns
// its claims. Expired tokens are reported as xerrors.ErrTokenExpired, every
// other failure as xerrors.ErrInvalidToken.
func (i *Issuer) ParseAndValidate(tokenStr string) (*Claims, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, xerrors.ErrInvalidToken
		}
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, xerrors.ErrTokenExpired
		}
		return nil, xerrors.ErrInvalidToken
	}
	if !token.Valid {
		return nil, xerrors.ErrInvalidToken
	}
	return claims, nil
}
