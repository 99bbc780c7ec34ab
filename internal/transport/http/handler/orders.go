package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"variety-store-server/internal/domain"
	resp "variety-store-server/internal/transport/http/response"
)

type Orders struct {
	store domain.OrderStore
}

func NewOrders(s domain.OrderStore) *Orders { return &Orders{store: s} }

func (h *Orders) MountAPI(g *gin.RouterGroup) {
	g.POST("/orders", h.create)
	g.GET("/orders", h.listByBuyer)
	g.DELETE("/orders/:id", h.delete)
}

// create 原样入库，不校验商品库存和价格
func (h *Orders) create(c *gin.Context) {
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
	resp.Send(c, res)
}

func (h *Orders) listByBuyer(c *gin.Context) {
	docs, err := h.store.ListByBuyer(c.Request.Context(), c.Query("email"))
	if err != nil {
		resp.Internal(c, err)
		return
	}
	resp.Send(c, docs)
}

func (h *Orders) delete(c *gin.Context) {
	res, err := h.store.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidID) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.Internal(c, err)
		return
	}
	resp.Send(c, res) // 不存在也是 200，deletedCount=0
}
