package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	return New(mr.Addr(), "", 0), mr
}

func TestGetOrLoadPopulatesAndServesCached(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	calls := 0
	load := func(context.Context) ([]byte, error) {
		calls++
		if calls == 1 {
			return []byte(`"v1"`), nil
		}
		return []byte(`"v2"`), nil
	}

	b, err := c.GetOrLoad(ctx, "k", time.Minute, load)
	require.NoError(t, err)
	assert.Equal(t, `"v1"`, string(b))
	assert.Equal(t, 1, calls)

	// TTL 内第二次读不回源
	b, err = c.GetOrLoad(ctx, "k", time.Minute, load)
	require.NoError(t, err)
	assert.Equal(t, `"v1"`, string(b))
	assert.Equal(t, 1, calls)

	// 过期后重新回源
	mr.FastForward(2 * time.Minute)
	b, err = c.GetOrLoad(ctx, "k", time.Minute, load)
	require.NoError(t, err)
	assert.Equal(t, `"v2"`, string(b))
	assert.Equal(t, 2, calls)
}

func TestGetOrLoadErrorIsNotCached(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	boom := errors.New("store down")
	calls := 0
	_, err := c.GetOrLoad(ctx, "k", time.Minute, func(context.Context) ([]byte, error) {
		calls++
		return nil, boom
	})
	require.ErrorIs(t, err, boom)

	// 失败不落缓存，下一次还会回源
	b, err := c.GetOrLoad(ctx, "k", time.Minute, func(context.Context) ([]byte, error) {
		calls++
		return []byte(`1`), nil
	})
	require.NoError(t, err)
	assert.Equal(t, `1`, string(b))
	assert.Equal(t, 2, calls)
}

func TestInvalidateDropsKey(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	calls := 0
	load := func(context.Context) ([]byte, error) { calls++; return []byte(`1`), nil }
	_, err := c.GetOrLoad(ctx, "k", time.Minute, load)
	require.NoError(t, err)

	c.Invalidate(ctx, "k")

	_, err = c.GetOrLoad(ctx, "k", time.Minute, load)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestGetOrLoadJSONRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	type row struct {
		Name  string `json:"name"`
		Price int    `json:"price"`
	}

	calls := 0
	load := func(context.Context) (*[]row, error) {
		calls++
		return &[]row{{Name: "Chair", Price: 120}}, nil
	}

	out, err := GetOrLoadJSON[[]row](c, ctx, "rows", time.Minute, load)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, []row{{Name: "Chair", Price: 120}}, *out)

	// 第二次命中缓存，结果一致
	out, err = GetOrLoadJSON[[]row](c, ctx, "rows", time.Minute, load)
	require.NoError(t, err)
	assert.Equal(t, []row{{Name: "Chair", Price: 120}}, *out)
	assert.Equal(t, 1, calls)
}

func TestGetOrLoadJSONNilValue(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	// 回源返回 nil：缓存 "null"，取出仍是 nil 而不是解码错误
	out, err := GetOrLoadJSON[int](c, ctx, "none", time.Minute, func(context.Context) (*int, error) {
		return nil, nil
	})
	require.NoError(t, err)
	assert.Nil(t, out)

	out, err = GetOrLoadJSON[int](c, ctx, "none", time.Minute, func(context.Context) (*int, error) {
		t.Fatal("should not reload within ttl")
		return nil, nil
	})
	require.NoError(t, err)
	assert.Nil(t, out)
}
