package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"variety-store-server/internal/domain"
	resp "variety-store-server/internal/transport/http/response"
)

type Users struct {
	store domain.UserStore
}

func NewUsers(s domain.UserStore) *Users { return &Users{store: s} }

func (h *Users) MountAPI(g *gin.RouterGroup) {
	g.POST("/users", h.create)
	g.GET("/users", h.list)
	g.PUT("/users/admin/:id", h.setRole)
	g.DELETE("/users/:id", h.delete)
	g.GET("/chack-role", h.byEmail)
	g.GET("/buyers", h.listByRole(domain.RoleBuyer))
	g.GET("/sellers", h.listByRole(domain.RoleSeller))
	g.GET("/admins", h.listByRole(domain.RoleAdmin))
	g.GET("/seller-verify", h.verifySeller)
}

func (h *Users) create(c *gin.Context) {
	var u domain.User
	if err := c.ShouldBindJSON(&u); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	existing, err := h.store.FindByEmail(c.Request.Context(), u.Email)
	if err != nil {
		resp.Internal(c, err)
		return
	}
	if existing != nil {
		resp.BusinessError(c, "User already exists")
		return
	}
	res, err := h.store.Insert(c.Request.Context(), &u)
	if err != nil {
		resp.Internal(c, err)
		return
	}
	resp.Send(c, res)
}

func (h *Users) list(c *gin.Context) {
	users, err := h.store.List(c.Request.Context())
	if err != nil {
		resp.Internal(c, err)
		return
	}
	resp.Send(c, users)
}

func (h *Users) listByRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := h.store.ListByRole(c.Request.Context(), role)
		if err != nil {
			resp.Internal(c, err)
			return
		}
		resp.Send(c, users)
	}
}

// setRole 默认严格更新，id 不存在返回 404；?upsert=true 才允许插入半空记录
func (h *Users) setRole(c *gin.Context) {
	var body struct {
		Role string `json:"role"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	upsert := strings.EqualFold(c.Query("upsert"), "true")
	res, err := h.store.SetRole(c.Request.Context(), c.Param("id"), body.Role, upsert)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidID) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.Internal(c, err)
		return
	}
	if !upsert && res.MatchedCount == 0 {
		resp.NotFound(c, "user not found")
		return
	}
	resp.Send(c, res)
}

func (h *Users) delete(c *gin.Context) {
	res, err := h.store.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidID) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.Internal(c, err)
		return
	}
	resp.Send(c, res) // id 不存在也是 200，deletedCount=0
}

func (h *Users) byEmail(c *gin.Context) {
	u, err := h.store.FindByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		resp.Internal(c, err)
		return
	}
	if u == nil {
		resp.NotFound(c, "user not found")
		return
	}
	resp.Send(c, u)
}

// verifySeller 只认字面 "true"（不区分大小写），其余一律置 false
func (h *Users) verifySeller(c *gin.Context) {
	email := c.Query("email")
	verify := strings.EqualFold(c.Query("verify"), "true")

	res, err := h.store.SetVerify(c.Request.Context(), email, verify)
	if err != nil {
		resp.Internal(c, err)
		return
	}
	if res.MatchedCount == 0 {
		resp.NotFound(c, "seller not found")
		return
	}
	u, err := h.store.FindByEmail(c.Request.Context(), email)
	if err != nil {
		resp.Internal(c, err)
		return
	}
	if u == nil { // 更新和读取之间被删掉了
		resp.NotFound(c, "seller not found")
		return
	}
	resp.Send(c, gin.H{"verify": u.Verify})
}
