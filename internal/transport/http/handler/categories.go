package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"variety-store-server/internal/core/cache"
	"variety-store-server/internal/domain"
	resp "variety-store-server/internal/transport/http/response"
)

const (
	cacheKeyCategories = "variety:categories"
	cacheKeyProducts   = "variety:products"
	listCacheTTL       = 30 * time.Second
)

type Categories struct {
	store    domain.CategoryStore
	products domain.ProductStore
	cache    *cache.Cache
}

func NewCategories(s domain.CategoryStore, p domain.ProductStore, ch *cache.Cache) *Categories {
	return &Categories{store: s, products: p, cache: ch}
}

func (h *Categories) MountAPI(g *gin.RouterGroup) {
	g.POST("/category", h.create)
	g.GET("/category", h.list)
	g.GET("/category/:id", h.productsByCategory)
}

func (h *Categories) create(c *gin.Context) {
	var doc domain.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	res, err := h.store.Insert(c.Request.Context(), doc)
	if err != nil {
		resp.Internal(c, err)
		return
	}
	if h.cache != nil {
		h.cache.Invalidate(c.Request.Context(), cacheKeyCategories)
	}
	resp.Send(c, res)
}

func (h *Categories) list(c *gin.Context) {
	docs, err := cachedList(h.cache, c.Request.Context(), cacheKeyCategories, h.store.List)
	if err != nil {
		resp.Internal(c, err)
		return
	}
	resp.Send(c, docs)
}

// productsByCategory 按 categoryId 字符串相等过滤，不做类型转换
func (h *Categories) productsByCategory(c *gin.Context) {
	docs, err := h.products.ListByCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		resp.Internal(c, err)
		return
	}
	resp.Send(c, docs)
}

// cachedList 列表读透缓存；没配 redis 时直连存储
func cachedList(ch *cache.Cache, ctx context.Context, key string, load func(context.Context) ([]domain.Document, error)) ([]domain.Document, error) {
	if ch == nil {
		return load(ctx)
	}
	out, err := cache.GetOrLoadJSON[[]domain.Document](ch, ctx, key, listCacheTTL, func(ctx context.Context) (*[]domain.Document, error) {
		docs, e := load(ctx)
		if e != nil {
			return nil, e
		}
		return &docs, nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		return []domain.Document{}, nil
	}
	return *out, nil
}
