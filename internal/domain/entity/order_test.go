package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stocksync-dashboard/internal/domain"
	"github.com/jhoicas/stocksync-dashboard/internal/domain/entity"
)

func TestOrderTotal_SumaExacta(t *testing.T) {
	o := entity.Order{Items: []entity.OrderItem{
		{Product: entity.Ref{ID: "p1"}, Qty: 2, Price: decimal.RequireFromString("9.99")},
		{Product: entity.Ref{ID: "p2"}, Qty: 3, Price: decimal.RequireFromString("0.10")},
	}}
	assert.Equal(t, "20.28", o.Total().StringFixed(2))
}

func TestOrderTotal_SinItemsEsCero(t *testing.T) {
	assert.Equal(t, "0.00", entity.Order{}.Total().StringFixed(2))
}

func TestProductStatus(t *testing.T) {
	cases := []struct {
		stock int
		want  entity.StockStatus
	}{
		{0, entity.StockOut},
		{1, entity.StockLow},
		{9, entity.StockLow},
		{10, entity.StockIn},
		{250, entity.StockIn},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, entity.Product{Stock: c.stock}.Status(), "stock=%d", c.stock)
	}
}

func TestCountLowStock_IncluyeAgotados(t *testing.T) {
	products := []entity.Product{{Stock: 0}, {Stock: 5}, {Stock: 10}, {Stock: 11}}
	assert.Equal(t, 2, entity.CountLowStock(products))
}

func TestParseKind(t *testing.T) {
	k, err := entity.ParseKind("suppliers")
	assert.NoError(t, err)
	assert.Equal(t, entity.KindSupplier, k)
	assert.Equal(t, "suppliers", k.Collection())
	assert.Equal(t, "Supplier", k.Title())

	_, err = entity.ParseKind("warehouse")
	assert.ErrorIs(t, err, domain.ErrUnknownKind)
}
