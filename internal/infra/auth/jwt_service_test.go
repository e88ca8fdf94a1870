package auth

import (
	"testing"
	"time"

	"examadda/config"
	"examadda/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig(secret string) *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{TokenTTL: time.Hour, Issuer: "examadda-test"},
	}
	cfg.Env.Env = "production"
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test_access_secret_key_very_long_for_testing"), nil)
	require.NoError(t, err)

	user := &entity.User{ID: uuid.New(), Email: "student@example.com", Role: entity.RoleStudent}

	token, err := svc.Issue(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, entity.RoleStudent, claims.Role)
	assert.Equal(t, "examadda-test", claims.Issuer)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("secret"), nil)
	require.NoError(t, err)

	impl := svc.(*jwtService)
	issuedAt := time.Now().Add(-2 * time.Hour)
	impl.now = func() time.Time { return issuedAt }

	token, err := svc.Issue(&entity.User{ID: uuid.New(), Email: "a@b.test", Role: entity.RoleInstitute})
	require.NoError(t, err)

	impl.now = time.Now
	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsTokenWithoutExpiry(t *testing.T) {
	secret := "secret"
	svc, err := NewJWTService(newTestJWTConfig(secret), nil)
	require.NoError(t, err)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   uuid.New().String(),
		"email": "a@b.test",
		"role":  "STUDENT",
		"iss":   "examadda-test",
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.Error(t, err)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig("secret-one"), nil)
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestJWTConfig("secret-two"), nil)
	require.NoError(t, err)

	token, err := issuer.Issue(&entity.User{ID: uuid.New(), Email: "a@b.test", Role: entity.RoleStudent})
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWTService_RejectsOtherAlgorithms(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("secret"), nil)
	require.NoError(t, err)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub":  uuid.New().String(),
		"role": "STUDENT",
		"iss":  "examadda-test",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.Error(t, err)
}

func TestJWTService_RejectsUnknownRole(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("secret"), nil)
	require.NoError(t, err)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  uuid.New().String(),
		"role": "ADMIN",
		"iss":  "examadda-test",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("secret"), nil)
	require.NoError(t, err)

	claims, err := svc.Verify("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestResolveSigningSecret(t *testing.T) {
	t.Run("configured secret wins", func(t *testing.T) {
		cfg := newTestJWTConfig("configured")
		secret, generated, err := ResolveSigningSecret(cfg)
		require.NoError(t, err)
		assert.Equal(t, "configured", secret)
		assert.False(t, generated)
	})

	t.Run("missing secret outside development fails", func(t *testing.T) {
		cfg := newTestJWTConfig("")
		_, _, err := ResolveSigningSecret(cfg)
		assert.ErrorIs(t, err, ErrSigningSecretMissing)

		svc, err := NewJWTService(cfg, nil)
		assert.ErrorIs(t, err, ErrSigningSecretMissing)
		assert.Nil(t, svc)
	})

	t.Run("development generates a stable random secret", func(t *testing.T) {
		cfg := newTestJWTConfig("")
		cfg.Env.Env = config.EnvDevelopment

		first, generated, err := ResolveSigningSecret(cfg)
		require.NoError(t, err)
		assert.True(t, generated)
		assert.Len(t, first, 64)

		second, _, err := ResolveSigningSecret(cfg)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
