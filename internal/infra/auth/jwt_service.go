// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"sync"
	"time"

	"examadda/config"
	"examadda/internal/domain/entity"
	"examadda/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrSigningSecretMissing is returned outside development when no signing secret is configured.
var ErrSigningSecretMissing = errors.New("access token signing secret must be configured outside development")

var (
	devSecretOnce sync.Once
	devSecret     string
	devSecretErr  error
)

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config, logger *slog.Logger) (service.TokenService, error) {
	secret, generated, err := ResolveSigningSecret(cfg)
	if err != nil {
		return nil, err
	}
	if generated && logger != nil {
		logger.Warn("No access token secret configured, using a random development secret; tokens will not survive a restart")
	}

	ttl, issuer := 24*time.Hour, ""
	if cfg.Auth != nil {
		if cfg.Auth.TokenTTL > 0 {
			ttl = cfg.Auth.TokenTTL
		}
		issuer = cfg.Auth.Issuer
	}

	return &jwtService{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// ResolveSigningSecret returns the configured secret. In development only, an empty secret is
// replaced by a random one generated once per process; generated reports that case.
func ResolveSigningSecret(cfg *config.Config) (secret string, generated bool, err error) {
	if cfg.SecretKey.Access != "" {
		return cfg.SecretKey.Access, false, nil
	}
	if !cfg.IsDevelopment() {
		return "", false, ErrSigningSecretMissing
	}

	devSecretOnce.Do(func() {
		buf := make([]byte, 32)
		if _, readErr := rand.Read(buf); readErr != nil {
			devSecretErr = errors.Wrap(readErr, "generate development secret")

			return
		}
		devSecret = hex.EncodeToString(buf)
	})

	return devSecret, true, devSecretErr
}

// Issue signs an access token carrying the user's id, email and role.
func (s *jwtService) Issue(user *entity.User) (string, error) {
	now := s.now()
	claims := &service.Claims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign access token")
	}

	return signed, nil
}

// Verify parses the token, enforcing HS256, a valid signature and an unexpired exp claim.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject claim")
	}
	if !claims.Role.IsValid() {
		return nil, errors.Errorf("invalid role claim %q", claims.Role)
	}
	claims.UserID = userID

	return claims, nil
}
