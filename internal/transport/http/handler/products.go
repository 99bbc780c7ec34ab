package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"variety-store-server/internal/core/auth"
	"variety-store-server/internal/core/cache"
	"variety-store-server/internal/domain"
	resp "variety-store-server/internal/transport/http/response"
)

type Products struct {
	store    domain.ProductStore
	users    domain.UserStore
	resolver auth.RoleResolver
	cache    *cache.Cache
}

func NewProducts(s domain.ProductStore, u domain.UserStore, r auth.RoleResolver, ch *cache.Cache) *Products {
	return &Products{store: s, users: u, resolver: r, cache: ch}
}

func (h *Products) MountAPI(g *gin.RouterGroup) {
	g.GET("/products", h.list)
	g.GET("/single-product/:id", h.single)
	g.GET("/my-products", h.mine)
	g.POST("/products", h.create)
	g.PUT("/products/:id", h.update)
	g.DELETE("/products/:id", h.delete)
}

func (h *Products) list(c *gin.Context) {
	docs, err := cachedList(h.cache, c.Request.Context(), cacheKeyProducts, h.store.List)
	if err != nil {
		resp.Internal(c, err)
		return
	}
	resp.Send(c, docs)
}

// single 返回商品本身加同类目的 relatedProducts（包含它自己）
func (h *Products) single(c *gin.Context) {
	doc, err := h.store.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidID) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.Internal(c, err)
		return
	}
	if doc == nil {
		resp.NotFound(c, "product not found")
		return
	}
	// categoryId 缺失或不是字符串时不能查空串（会捞出一堆不相干商品），
	// related 就只剩它自己
	categoryID, ok := doc["categoryId"].(string)
	if !ok {
		resp.Send(c, gin.H{"product": doc, "relatedProducts": []domain.Document{doc}})
		return
	}
	related, err := h.store.ListByCategory(c.Request.Context(), categoryID)
	if err != nil {
		resp.Internal(c, err)
		return
	}
	resp.Send(c, gin.H{"product": doc, "relatedProducts": related})
}

// mine admin 看全量，其他角色只看自己挂名的商品
func (h *Products) mine(c *gin.Context) {
	email := c.Query("email")
	u, err := h.resolver.Resolve(c.Request.Context(), email)
	if err != nil {
		resp.Internal(c, err)
		return
	}
	if u == nil {
		resp.NotFound(c, "user not found")
		return
	}
	var docs []domain.Document
	if u.Role == domain.RoleAdmin {
		docs, err = h.store.List(c.Request.Context())
	} else {
		docs, err = h.store.ListByEmail(c.Request.Context(), email)
	}
	if err != nil {
		resp.Internal(c, err)
		return
	}
	resp.Send(c, docs)
}

// create 把创建者的 seller/verify/email 盖在商品上，之后不随用户变
func (h *Products) create(c *gin.Context) {
	u, err := h.users.FindByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		resp.Internal(c, err)
		return
	}
	if u == nil {
		resp.NotFound(c, "user not found")
		return
	}
	var doc domain.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if doc == nil { // body 为字面 null 时 bind 不报错
		doc = domain.Document{}
	}
	doc["seller"] = u.Name
	doc["verify"] = u.Verify
	doc["email"] = u.Email

	res, err := h.store.Insert(c.Request.Context(), doc)
	if err != nil {
		resp.Internal(c, err)
		return
	}
	h.invalidate(c)
	resp.Send(c, res)
}

func (h *Products) update(c *gin.Context) {
	var fields domain.Document
	if err := c.ShouldBindJSON(&fields); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	delete(fields, "_id") // 主键不可改
	res, err := h.store.Update(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidID) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.Internal(c, err)
		return
	}
	h.invalidate(c)
	resp.Send(c, res)
}

func (h *Products) delete(c *gin.Context) {
	res, err := h.store.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidID) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.Internal(c, err)
		return
	}
	h.invalidate(c)
	resp.Send(c, res)
}

func (h *Products) invalidate(c *gin.Context) {
	if h.cache != nil {
		h.cache.Invalidate(c.Request.Context(), cacheKeyProducts)
	}
}
