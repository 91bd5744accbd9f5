package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*TokenStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewTokenStore(rdb, "portal-test"), mr
}

func TestTokenStore_RevokeEIsRevoked(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	revoked, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, "jti-1", time.Minute))

	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
}

// A chave expira junto com o token: depois do TTL o jti some sozinho.
func TestTokenStore_RevogacaoExpiraComOToken(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Revoke(ctx, "jti-2", 30*time.Second))
	mr.FastForward(time.Minute)

	revoked, err := store.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)
}

// Token já expirado não precisa de revogação: TTL não positivo é no-op.
func TestTokenStore_TTLNaoPositivoEhNoOp(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Revoke(ctx, "jti-3", 0))
	require.NoError(t, store.Revoke(ctx, "jti-3", -time.Minute))
	require.NoError(t, store.Revoke(ctx, "", time.Minute))

	revoked, err := store.IsRevoked(ctx, "jti-3")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestTokenStore_RedisForaDoArDevolveErro(t *testing.T) {
	store, mr := newTestStore(t)
	mr.Close()

	_, err := store.IsRevoked(context.Background(), "jti-4")
	assert.Error(t, err)
}
