package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"variety-store-server/internal/core/auth"
	"variety-store-server/internal/core/cache"
	"variety-store-server/internal/domain"
	"variety-store-server/internal/payment"
	"variety-store-server/internal/transport/http/handler"
	mdw "variety-store-server/internal/transport/http/middleware"
)

// Deps 注入：存储走接口，测试里换成内存实现
type Deps struct {
	Users      domain.UserStore
	Categories domain.CategoryStore
	Products   domain.ProductStore
	Orders     domain.OrderStore
	Resolver   auth.RoleResolver
	Payments   payment.Client
	Cache      *cache.Cache // 可为 nil
}

func NewEngine(l *zap.Logger, d Deps) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Variety Store Server is Running.")
	})
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 路由表无版本前缀：线上前端就是这么调的
	var reg Registry
	reg.Register(
		handler.NewUsers(d.Users),
		handler.NewCategories(d.Categories, d.Products, d.Cache),
		handler.NewProducts(d.Products, d.Users, d.Resolver, d.Cache),
		handler.NewOrders(d.Orders),
		handler.NewCheckout(d.Payments),
	)
	reg.MountAll(r.Group(""))

	return r
}
