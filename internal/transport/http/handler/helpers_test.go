package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"

	"variety-store-server/internal/core/auth"
	"variety-store-server/internal/core/cache"
	"variety-store-server/internal/payment"
	"variety-store-server/internal/repo/mem"
	"variety-store-server/internal/transport/http/router"
)

type fakePayments struct {
	last payment.LineItem
	err  error
}

func (f *fakePayments) CreateSession(_ context.Context, item payment.LineItem) (*stripe.CheckoutSession, error) {
	f.last = item
	if f.err != nil {
		return nil, f.err
	}
	return &stripe.CheckoutSession{
		ID:  "cs_test_123",
		URL: "https://checkout.stripe.com/c/pay/cs_test_123",
	}, nil
}

type env struct {
	users      *mem.Users
	categories *mem.Categories
	products   *mem.Products
	orders     *mem.Orders
	pay        *fakePayments
	engine     *gin.Engine
}

func newEnv(t *testing.T) *env { return buildEnv(t, nil) }

// newEnvWithCache 用 miniredis 撑起列表缓存，走和线上一样的读透/失效路径
func newEnvWithCache(t *testing.T) *env {
	t.Helper()
	mr := miniredis.RunT(t)
	return buildEnv(t, cache.New(mr.Addr(), "", 0))
}

func buildEnv(t *testing.T, ch *cache.Cache) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)
	e := &env{
		users:      mem.NewUsers(),
		categories: mem.NewCategories(),
		products:   mem.NewProducts(),
		orders:     mem.NewOrders(),
		pay:        &fakePayments{},
	}
	e.engine = router.NewEngine(zap.NewNop(), router.Deps{
		Users:      e.users,
		Categories: e.categories,
		Products:   e.products,
		Orders:     e.orders,
		Resolver:   &auth.StoreResolver{Users: e.users},
		Payments:   e.pay,
		Cache:      ch,
	})
	return e
}

func (e *env) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), "body: %s", w.Body.String())
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "body: %s", w.Body.String())
}
