package handler

import (
	"github.com/gin-gonic/gin"

	"variety-store-server/internal/payment"
	resp "variety-store-server/internal/transport/http/response"
)

type Checkout struct {
	pay payment.Client
}

func NewCheckout(p payment.Client) *Checkout { return &Checkout{pay: p} }

func (h *Checkout) MountAPI(g *gin.RouterGroup) {
	g.POST("/api/create-checkout-session", h.createSession)
}

// createSession 单行项目结算：前端拿到 session 后跳转 session.url
func (h *Checkout) createSession(c *gin.Context) {
	var item payment.LineItem
	if err := c.ShouldBindJSON(&item); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	sess, err := h.pay.CreateSession(c.Request.Context(), item)
	if err != nil {
		resp.Internal(c, err)
		return
	}
	resp.Send(c, sess)
}
