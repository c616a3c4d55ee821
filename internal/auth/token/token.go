// Package token issues and verifies the HS256 access/refresh pair.
package token

import (
	"errors"
	"fmt"
	"time"

	"job-portal/internal/access"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Type string

const (
	TypeAccess  Type = "access"
	TypeRefresh Type = "refresh"
)

var (
	ErrInvalid   = errors.New("invalid token")
	ErrExpired   = errors.New("token expired")
	ErrWrongType = errors.New("wrong token type")
)

type Claims struct {
	UserID      string `json:"user_id"`
	Role        string `json:"role"`
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`
	TokenType   Type   `json:"token_type"`
	jwt.RegisteredClaims
}

// Actor converts verified claims into the policy identity.
func (c Claims) Actor() (access.Actor, error) {
	uid, err := uuid.Parse(c.UserID)
	if err != nil {
		return access.Actor{}, fmt.Errorf("%w: user_id", ErrInvalid)
	}
	role, err := access.ParseRole(c.Role)
	if err != nil {
		return access.Actor{}, fmt.Errorf("%w: role", ErrInvalid)
	}
	return access.Actor{UserID: uid, Role: role, IsStaff: c.IsStaff, IsSuperuser: c.IsSuperuser}, nil
}

// Subject is the identity baked into a token pair.
type Subject struct {
	UserID      uuid.UUID
	Role        string
	IsStaff     bool
	IsSuperuser bool
}

type Pair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type Manager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewManager(secret string, accessTTL, refreshTTL time.Duration) *Manager {
	return &Manager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

func (m *Manager) Issue(sub Subject) (Pair, error) {
	accessToken, err := m.sign(sub, TypeAccess, m.accessTTL)
	if err != nil {
		return Pair{}, err
	}
	refreshToken, err := m.sign(sub, TypeRefresh, m.refreshTTL)
	if err != nil {
		return Pair{}, err
	}
	return Pair{Access: accessToken, Refresh: refreshToken}, nil
}

func (m *Manager) sign(sub Subject, typ Type, ttl time.Duration) (string, error) {
	now := m.now()
	claims := Claims{
		UserID:      sub.UserID.String(),
		Role:        sub.Role,
		IsStaff:     sub.IsStaff,
		IsSuperuser: sub.IsSuperuser,
		TokenType:   typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   sub.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Parse verifies the signature, expiry and token type.
func (m *Manager) Parse(raw string, want Type) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}
	if !tok.Valid {
		return nil, ErrInvalid
	}
	if claims.TokenType != want {
		return nil, ErrWrongType
	}
	return claims, nil
}
