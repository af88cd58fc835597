package utils

import (
	"context"
	"strings"
	"testing"
	"time"

	"Backend-Career-Advisor/src/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestPredictionCache(t *testing.T) {
	mr, client := newRedis(t)
	cache := NewPredictionCache(client, time.Minute)
	ctx := context.Background()
	v := models.FeatureVector{1, 2, 3}

	_, ok, err := cache.Get(ctx, "v1", v)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "v1", v, 7))
	assert.True(t, mr.Exists("prediction:v1:1,2,3"))

	got, ok, err := cache.Get(ctx, "v1", v)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 7, got)

	// another model version does not share entries
	_, ok, err = cache.Get(ctx, "v2", v)
	require.NoError(t, err)
	assert.False(t, ok)

	mr.FastForward(2 * time.Minute)
	_, ok, err = cache.Get(ctx, "v1", v)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPredictionCache_NilClient(t *testing.T) {
	cache := NewPredictionCache(nil, time.Minute)
	ctx := context.Background()

	assert.NoError(t, cache.Set(ctx, "v1", models.FeatureVector{1}, 3))
	_, ok, err := cache.Get(ctx, "v1", models.FeatureVector{1})
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestPredictionCache_RedisDown(t *testing.T) {
	mr, client := newRedis(t)
	cache := NewPredictionCache(client, time.Minute)
	mr.Close()

	_, _, err := cache.Get(context.Background(), "v1", models.FeatureVector{1})
	assert.Error(t, err)
}

func TestTokenBlacklist(t *testing.T) {
	_, client := newRedis(t)
	bl := NewTokenBlacklist(client)
	ctx := context.Background()

	found, err := bl.Contains(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, bl.Add(ctx, "tok", time.Hour))
	found, err = bl.Contains(ctx, "tok")
	require.NoError(t, err)
	assert.True(t, found)

	var none *TokenBlacklist
	found, err = none.Contains(ctx, "tok")
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	token, err := issuer.Generate("admin", RoleAdmin)
	require.NoError(t, err)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestTokenIssuer_Rejects(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	_, err := issuer.Parse("")
	assert.Error(t, err)

	other := NewTokenIssuer("other", time.Hour)
	token, err := other.Generate("admin", RoleAdmin)
	require.NoError(t, err)
	_, err = issuer.Parse(token)
	assert.Error(t, err)

	expired := NewTokenIssuer("secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err = expired.Generate("admin", RoleAdmin)
	require.NoError(t, err)
	_, err = issuer.Parse(token)
	assert.Error(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, AdminClaims{Username: "admin", Role: RoleAdmin})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = issuer.Parse(unsigned)
	assert.Error(t, err)

	_, err = NewTokenIssuer("", time.Hour).Generate("admin", RoleAdmin)
	assert.ErrorIs(t, err, ErrSecretNotConfigured)
}

func TestTokenIssuer_EmptySecretRejectsEverything(t *testing.T) {
	issuer := NewTokenIssuer("", time.Hour)
	assert.False(t, issuer.Enabled())

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, AdminClaims{Username: "x", Role: RoleAdmin}).SignedString([]byte{})
	require.NoError(t, err)

	_, err = issuer.Parse(forged)
	assert.ErrorIs(t, err, ErrSecretNotConfigured)
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2"))
	assert.True(t, CheckPassword(hash, "s3cret"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("", "s3cret"))
}
