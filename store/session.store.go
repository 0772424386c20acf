package store

import (
	"context"
	"notehub-server/global"

	"github.com/go-redis/redis/v8"
)

// PutSession records a login session in redis with the token's validity
// window; logout or expiry revokes the token server-side
func (s *Store) PutSession(ctx context.Context, sessionID string, userID string, ip string) error {

	query := map[string]interface{}{
		"userid": userID,
		"ip":     ip,
	}

	_, err := s.redis.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		if err := pipe.HSet(ctx, "sessions:"+sessionID, query).Err(); err != nil {
			return err
		}
		return pipe.Expire(ctx, "sessions:"+sessionID, global.AccessTokenDuration).Err()
	})

	return err
}

// SessionUserID resolves a session to the user it was issued to
func (s *Store) SessionUserID(ctx context.Context, sessionID string) (string, error) {

	userID, err := s.redis.HGet(ctx, "sessions:"+sessionID, "userid").Result()
	if err != nil {
		if err == redis.Nil {
			return "", ErrNotFound
		}
		return "", err
	}

	return userID, nil
}

// DeleteSession revokes a session
func (s *Store) DeleteSession(ctx context.Context, sessionID string) error {
	return s.redis.Del(ctx, "sessions:"+sessionID).Err()
}
