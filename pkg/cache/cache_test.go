package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestClient_NilIsMiss(t *testing.T) {
	var c *Client
	c.Set(context.Background(), "k", []byte("v"), time.Minute)
	assert.Nil(t, c.Get(context.Background(), "k"))
	assert.Nil(t, New(nil).Get(context.Background(), "k"))
}

func TestClient_SetGet(t *testing.T) {
	mr := miniredis.RunT(t)
	c := New(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	ctx := context.Background()

	assert.Nil(t, c.Get(ctx, "geo:x"))
	c.Set(ctx, "geo:x", []byte(`[]`), time.Minute)
	assert.Equal(t, []byte(`[]`), c.Get(ctx, "geo:x"))

	mr.FastForward(2 * time.Minute)
	assert.Nil(t, c.Get(ctx, "geo:x"))
}

func TestClient_RedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	c := New(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	mr.Close()

	c.Set(context.Background(), "k", []byte("v"), time.Minute)
	assert.Nil(t, c.Get(context.Background(), "k"))
}
