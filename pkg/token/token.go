// Package token issues and verifies HS256 bearer tokens.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingSecret   = errors.New("token: signing secret is required")
	ErrInvalidToken    = errors.New("token: invalid token")
	ErrExpired         = errors.New("token: expired")
	ErrNotYetValid     = errors.New("token: not valid yet")
	ErrInvalidIssuer   = errors.New("token: invalid issuer")
	ErrInvalidAudience = errors.New("token: invalid audience")
)

// Identity is what gets embedded in a token.
type Identity struct {
	UserID int64
	Email  string
	Name   string
	Role   string
}

// Claims is a verified token payload.
type Claims struct {
	Identity
	Issuer    string
	Audience  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type Config struct {
	Secret   string
	Issuer   string
	Audience string
	TTL      time.Duration
}

// Manager signs and verifies tokens with one shared secret.
// It holds no mutable state and is safe for concurrent use.
type Manager struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

type Option func(*Manager)

// WithClock replaces the wall clock, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

func NewManager(cfg Config, opts ...Option) (*Manager, error) {
	if cfg.Secret == "" {
		return nil, ErrMissingSecret
	}
	if cfg.TTL <= 0 {
		return nil, fmt.Errorf("token: ttl must be positive, got %s", cfg.TTL)
	}

	m := &Manager{
		secret:   []byte(cfg.Secret),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		ttl:      cfg.TTL,
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue signs a token for id. The exp claim is whole seconds, rounded up, so
// the token verifies at any instant up to issuance plus ttl and ExpiresAt
// equals the claim exactly.
func (m *Manager) Issue(id Identity) (string, time.Time, error) {
	now := m.now().UTC()
	exp := ceilSecond(now.Add(m.ttl))

	claims := jwtv5.MapClaims{
		"sub":   strconv.FormatInt(id.UserID, 10),
		"email": id.Email,
		"name":  id.Name,
		"role":  id.Role,
		"iat":   now.Unix(),
		"nbf":   now.Unix(),
		"exp":   exp.Unix(),
	}
	if m.issuer != "" {
		claims["iss"] = m.issuer
	}
	if m.audience != "" {
		claims["aud"] = m.audience
	}

	tk := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	signed, err := tk.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, exp, nil
}

// Verify checks signature, algorithm, issuer, audience and validity window.
// A token is accepted up to and including its exp second.
func (m *Manager) Verify(raw string) (*Claims, error) {
	keyfunc := func(t *jwtv5.Token) (any, error) {
		return m.secret, nil
	}

	tk, err := jwtv5.Parse(raw, keyfunc,
		jwtv5.WithValidMethods([]string{jwtv5.SigningMethodHS256.Alg()}),
		jwtv5.WithoutClaimsValidation(),
	)
	if err != nil || !tk.Valid {
		return nil, ErrInvalidToken
	}

	mc, ok := tk.Claims.(jwtv5.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	if m.issuer != "" {
		if iss, _ := mc["iss"].(string); iss != m.issuer {
			return nil, ErrInvalidIssuer
		}
	}
	if m.audience != "" && !hasAudience(mc["aud"], m.audience) {
		return nil, ErrInvalidAudience
	}

	now := m.now()
	expf, ok := mc["exp"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}
	exp := time.Unix(int64(expf), 0).UTC()
	if now.After(exp) {
		return nil, ErrExpired
	}
	if nbff, ok := mc["nbf"].(float64); ok {
		if time.Unix(int64(nbff), 0).After(now) {
			return nil, ErrNotYetValid
		}
	}

	sub, _ := mc["sub"].(string)
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}

	out := &Claims{
		Identity: Identity{
			UserID: userID,
			Email:  stringClaim(mc, "email"),
			Name:   stringClaim(mc, "name"),
			Role:   stringClaim(mc, "role"),
		},
		Issuer:    stringClaim(mc, "iss"),
		Audience:  m.audience,
		ExpiresAt: exp,
	}
	if iatf, ok := mc["iat"].(float64); ok {
		out.IssuedAt = time.Unix(int64(iatf), 0).UTC()
	}
	return out, nil
}

func ceilSecond(t time.Time) time.Time {
	if s := t.Truncate(time.Second); s.Before(t) {
		return s.Add(time.Second)
	}
	return t
}

func stringClaim(mc jwtv5.MapClaims, key string) string {
	v, _ := mc[key].(string)
	return v
}

// aud may be a single string or an array per RFC 7519.
func hasAudience(raw any, want string) bool {
	switch aud := raw.(type) {
	case string:
		return aud == want
	case []any:
		for _, a := range aud {
			if s, ok := a.(string); ok && s == want {
				return true
			}
		}
	}
	return false
}
