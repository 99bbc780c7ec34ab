package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"variety-store-server/internal/domain"
)

func TestProductListCacheServesStaleWithinTTL(t *testing.T) {
	e := newEnvWithCache(t)
	seedProduct(t, e, domain.Document{"name": "first"})

	var docs []map[string]any
	w := e.do(t, http.MethodGet, "/products", nil)
	requireStatus(t, w, http.StatusOK)
	decode(t, w, &docs)
	require.Len(t, docs, 1)

	// 绕过 handler 直接写存储：没有失效动作，TTL 内读到的还是缓存
	seedProduct(t, e, domain.Document{"name": "second"})
	w = e.do(t, http.MethodGet, "/products", nil)
	requireStatus(t, w, http.StatusOK)
	decode(t, w, &docs)
	assert.Len(t, docs, 1)
	assert.Equal(t, "first", docs[0]["name"])
}

func TestProductWritesInvalidateListCache(t *testing.T) {
	e := newEnvWithCache(t)
	seedUser(t, e, domain.User{Name: "Asha", Email: "asha@x.com", Role: domain.RoleSeller})

	var docs []map[string]any
	w := e.do(t, http.MethodGet, "/products", nil)
	requireStatus(t, w, http.StatusOK)
	decode(t, w, &docs)
	assert.Empty(t, docs) // 空列表也已进缓存

	// create 走 handler：失效后下一次读看到新商品
	w = e.do(t, http.MethodPost, "/products?email=asha@x.com", domain.Document{"name": "Chair", "price": 120})
	requireStatus(t, w, http.StatusOK)
	var ins domain.InsertResult
	decode(t, w, &ins)
	id, okID := ins.InsertedID.(string)
	require.True(t, okID)

	w = e.do(t, http.MethodGet, "/products", nil)
	requireStatus(t, w, http.StatusOK)
	decode(t, w, &docs)
	require.Len(t, docs, 1)
	assert.Equal(t, "Chair", docs[0]["name"])

	// update 同样失效
	w = e.do(t, http.MethodPut, "/products/"+id, domain.Document{"price": 99})
	requireStatus(t, w, http.StatusOK)
	w = e.do(t, http.MethodGet, "/products", nil)
	requireStatus(t, w, http.StatusOK)
	decode(t, w, &docs)
	require.Len(t, docs, 1)
	assert.EqualValues(t, 99, docs[0]["price"])

	// delete 之后列表回到空
	w = e.do(t, http.MethodDelete, "/products/"+id, nil)
	requireStatus(t, w, http.StatusOK)
	w = e.do(t, http.MethodGet, "/products", nil)
	requireStatus(t, w, http.StatusOK)
	decode(t, w, &docs)
	assert.Empty(t, docs)
}

func TestCategoryCreateInvalidatesListCache(t *testing.T) {
	e := newEnvWithCache(t)

	var docs []map[string]any
	w := e.do(t, http.MethodGet, "/category", nil)
	requireStatus(t, w, http.StatusOK)
	decode(t, w, &docs)
	assert.Empty(t, docs)

	w = e.do(t, http.MethodPost, "/category", domain.Document{"name": "Furniture"})
	requireStatus(t, w, http.StatusOK)

	w = e.do(t, http.MethodGet, "/category", nil)
	requireStatus(t, w, http.StatusOK)
	decode(t, w, &docs)
	require.Len(t, docs, 1)
	assert.Equal(t, "Furniture", docs[0]["name"])
}
