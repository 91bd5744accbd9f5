package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// TokenStore lista de revogação de tokens no Redis. O logout grava o jti com TTL
// igual ao tempo de vida restante do token; depois disso a chave expira sozinha
// junto com o token.
type TokenStore struct {
	rdb    *goredis.Client
	prefix string
}

// NewTokenStore constrói o store. prefix separa as chaves de outros usos do Redis.
func NewTokenStore(rdb *goredis.Client, prefix string) *TokenStore {
	if prefix == "" {
		prefix = "revoked"
	}
	return &TokenStore{rdb: rdb, prefix: prefix}
}

func (s *TokenStore) key(jti string) string {
	return s.prefix + ":jti:" + jti
}

// Revoke marca o jti como revogado até o token expirar. TTL não positivo é no-op:
// o token já expirou e não precisa de revogação.
func (s *TokenStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if jti == "" || ttl <= 0 {
		return nil
	}
	if err := s.rdb.Set(ctx, s.key(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revogar token: %w", err)
	}
	return nil
}

// IsRevoked informa se o jti está na lista de revogação.
func (s *TokenStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.rdb.Exists(ctx, s.key(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("consultar revogação: %w", err)
	}
	return n > 0, nil
}
