package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"variety-store-server/internal/domain"
)

func TestOrderCreateAndListByBuyer(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodPost, "/orders", domain.Document{
		"buyerEmail": "b@x.com", "productName": "Chair", "price": 120,
	})
	requireStatus(t, w, http.StatusOK)
	var ins domain.InsertResult
	decode(t, w, &ins)
	assert.True(t, ins.Acknowledged)

	var docs []map[string]any
	w = e.do(t, http.MethodGet, "/orders?email=b@x.com", nil)
	requireStatus(t, w, http.StatusOK)
	decode(t, w, &docs)
	require.Len(t, docs, 1)
	assert.Equal(t, "Chair", docs[0]["productName"])

	// 其他买家看不到
	w = e.do(t, http.MethodGet, "/orders?email=other@x.com", nil)
	requireStatus(t, w, http.StatusOK)
	decode(t, w, &docs)
	assert.Empty(t, docs)
}

func TestOrderDelete(t *testing.T) {
	e := newEnv(t)
	res, err := e.orders.Insert(context.Background(), domain.Document{"buyerEmail": "b@x.com"})
	require.NoError(t, err)
	id := res.InsertedID.(primitive.ObjectID).Hex()

	var del domain.DeleteResult
	w := e.do(t, http.MethodDelete, "/orders/"+id, nil)
	requireStatus(t, w, http.StatusOK)
	decode(t, w, &del)
	assert.EqualValues(t, 1, del.DeletedCount)

	// 不存在的 id 不报错，deletedCount=0
	w = e.do(t, http.MethodDelete, "/orders/"+primitive.NewObjectID().Hex(), nil)
	requireStatus(t, w, http.StatusOK)
	decode(t, w, &del)
	assert.EqualValues(t, 0, del.DeletedCount)

	w = e.do(t, http.MethodDelete, "/orders/garbage", nil)
	requireStatus(t, w, http.StatusBadRequest)
}
