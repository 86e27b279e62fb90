package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"study-assistant/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisCacheAdapter_Get(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewRedisCacheAdapter(db)
	ctx := context.Background()
	key := "studyassist:document:01HX:text:v1"

	t.Run("Hit", func(t *testing.T) {
		mock.ExpectGet(key).SetVal("extracted text")
		val, err := cache.Get(ctx, key)
		assert.NoError(t, err)
		assert.Equal(t, "extracted text", val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Miss", func(t *testing.T) {
		mock.ExpectGet(key).SetErr(redis.Nil)
		val, err := cache.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
		assert.Empty(t, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RedisError", func(t *testing.T) {
		redisErr := errors.New("connection reset")
		mock.ExpectGet(key).SetErr(redisErr)
		_, err := cache.Get(ctx, key)
		assert.ErrorIs(t, err, redisErr)
		assert.NotErrorIs(t, err, domain.ErrCacheMiss)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisCacheAdapter_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewRedisCacheAdapter(db)
	ctx := context.Background()

	mock.ExpectSet("k", "v", time.Hour).SetVal("OK")
	assert.NoError(t, cache.Set(ctx, "k", "v", time.Hour))

	redisErr := errors.New("OOM")
	mock.ExpectSet("k", "v", time.Hour).SetErr(redisErr)
	assert.ErrorIs(t, cache.Set(ctx, "k", "v", time.Hour), redisErr)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewRedisCacheAdapter(db)
	ctx := context.Background()

	mock.ExpectDel("k").SetVal(0)
	assert.NoError(t, cache.Delete(ctx, "k"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_Ping(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewRedisCacheAdapter(db)

	mock.ExpectPing().SetVal("PONG")
	assert.NoError(t, cache.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
