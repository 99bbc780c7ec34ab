package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSessionParams(t *testing.T) {
	item := LineItem{
		Name:     "Chair",
		Image:    "https://cdn.example.com/chair.png",
		Price:    1000,
		Quantity: 2,
	}
	params := BuildSessionParams(item, "https://shop.example.com", "inr")

	require.Len(t, params.LineItems, 1)
	li := params.LineItems[0]
	// 1000 主货币单位 → 100000 最小货币单位
	assert.EqualValues(t, 100000, *li.PriceData.UnitAmount)
	assert.EqualValues(t, 2, *li.Quantity)
	assert.Equal(t, "inr", *li.PriceData.Currency)
	assert.Equal(t, "Chair", *li.PriceData.ProductData.Name)
	require.Len(t, li.PriceData.ProductData.Images, 1)
	assert.Equal(t, item.Image, *li.PriceData.ProductData.Images[0])

	assert.Equal(t, "payment", *params.Mode)
	require.Len(t, params.PaymentMethodTypes, 1)
	assert.Equal(t, "card", *params.PaymentMethodTypes[0])
	assert.Equal(t, "https://shop.example.com/sucess", *params.SuccessURL)
	assert.Equal(t, "https://shop.example.com/cancel", *params.CancelURL)
}

func TestBuildSessionParamsRoundsFractionalPrice(t *testing.T) {
	params := BuildSessionParams(LineItem{Name: "Pen", Price: 19.99, Quantity: 1}, "https://x", "inr")
	assert.EqualValues(t, 1999, *params.LineItems[0].PriceData.UnitAmount)
}
