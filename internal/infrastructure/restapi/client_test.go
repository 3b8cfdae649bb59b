package restapi_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocksync-dashboard/internal/domain"
	"github.com/jhoicas/stocksync-dashboard/internal/domain/entity"
	"github.com/jhoicas/stocksync-dashboard/internal/infrastructure/restapi"
	"github.com/jhoicas/stocksync-dashboard/internal/infrastructure/restapi/restapitest"
)

// ──────────────────────────────────────────────────────────────────────────────
// Client.Do — taxonomía de errores
// ──────────────────────────────────────────────────────────────────────────────

func serve(t *testing.T, status int, body string) *restapi.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return restapi.NewClient(srv.URL+"/", 0, nil)
}

func TestDo_HTTPErrorUsaCampoError(t *testing.T) {
	c := serve(t, http.StatusConflict, `{"error":"SKU already exists"}`)

	err := c.Do(context.Background(), http.MethodPost, "/products", map[string]any{"sku": "A"}, nil)

	var httpErr *domain.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusConflict, httpErr.Status)
	assert.Equal(t, "SKU already exists", httpErr.Message)
}

func TestDo_HTTPErrorSinJSONUsaLineaDeEstado(t *testing.T) {
	c := serve(t, http.StatusBadGateway, `<html>bad gateway</html>`)

	err := c.Do(context.Background(), http.MethodGet, "/products", nil, nil)

	var httpErr *domain.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, "HTTP 502: Bad Gateway", httpErr.Message)
}

func TestDo_HTTPErrorJSONSinCampoError(t *testing.T) {
	c := serve(t, http.StatusNotFound, `{"message":"nope"}`)

	err := c.Do(context.Background(), http.MethodDelete, "/orders/x", nil, nil)
	assert.EqualError(t, err, "HTTP 404: Not Found")
}

func TestDo_ParseErrorEnRespuestaExitosa(t *testing.T) {
	c := serve(t, http.StatusOK, `[{"_id":`)

	var out []map[string]any
	err := c.Do(context.Background(), http.MethodGet, "/products", nil, &out)

	var parseErr *domain.ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestDo_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := restapi.NewClient(url, 0, nil)
	err := c.Do(context.Background(), http.MethodGet, "/products", nil, nil)

	var netErr *domain.NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Equal(t, "GET /products", netErr.Op)
}

func TestDo_CuerpoVacioEnDeleteEsExito(t *testing.T) {
	c := serve(t, http.StatusNoContent, "")
	assert.NoError(t, c.Do(context.Background(), http.MethodDelete, "/products/p1", nil, nil))
}

func TestProductRepo_ColeccionGrandeSeLeeCompleta(t *testing.T) {
	const n = 50000
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, `{"_id":"p%06d","sku":"SKU-%06d","name":"Producto de inventario %06d","price":12.5,"stock":%d,"category":"Ferretería"}`, i, i, i, i%20)
	}
	b.WriteByte(']')
	require.Greater(t, b.Len(), 4<<20, "el cuerpo supera 4 MiB")

	repo := restapi.NewProductRepository(serve(t, http.StatusOK, b.String()))
	list, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, list, n)
	assert.Equal(t, "p049999", list[n-1].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios
// ──────────────────────────────────────────────────────────────────────────────

func TestProductRepo_CRUD(t *testing.T) {
	api := restapitest.New(t)
	c := restapi.NewClient(api.URL, 0, nil)
	repo := restapi.NewProductRepository(c)
	ctx := context.Background()

	created, err := repo.Create(ctx, entity.Product{
		SKU: "W-1", Name: "Widget", Price: decimal.RequireFromString("5.50"), Stock: 3,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID, "el id lo asigna la API")

	body := api.Requests(http.MethodPost, "/products")[0].JSON(t)
	assert.Equal(t, 5.5, body["price"], "el precio viaja como número")
	assert.NotContains(t, body, "category", "category vacío se omite")
	assert.NotContains(t, body, "_id")

	_, err = repo.Update(ctx, created.ID, entity.Product{SKU: "W-1", Name: "Widget XL", Price: decimal.NewFromInt(7), Stock: 0})
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Widget XL", list[0].Name)
	assert.Equal(t, entity.StockOut, list[0].Status())

	require.NoError(t, repo.Delete(ctx, created.ID))
	list, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestOrderRepo_ReferenciasIdYEmbebidas(t *testing.T) {
	api := restapitest.New(t)
	api.Seed("orders",
		map[string]any{
			"_id":        "o1",
			"supplierId": "s1",
			"items":      []any{map[string]any{"productId": "p1", "qty": 2, "price": 9.99}},
		},
		map[string]any{
			"_id":        "o2",
			"supplierId": map[string]any{"_id": "s2", "name": "ACME"},
			"status":     "completed",
			"items":      []any{map[string]any{"productId": map[string]any{"_id": "p2", "name": "Bolt"}, "qty": 1, "price": 1}},
		},
	)
	repo := restapi.NewOrderRepository(restapi.NewClient(api.URL, 0, nil))

	orders, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.Equal(t, entity.Ref{ID: "s1"}, orders[0].Supplier)
	assert.Equal(t, entity.OrderPending, orders[0].Status, "sin estado → pending")
	assert.Equal(t, "19.98", orders[0].Total().StringFixed(2))

	assert.Equal(t, entity.Ref{ID: "s2", Name: "ACME"}, orders[1].Supplier)
	assert.Equal(t, "Bolt", orders[1].Items[0].Product.Name)
}

func TestOrderRepo_PayloadDeCreacion(t *testing.T) {
	api := restapitest.New(t)
	repo := restapi.NewOrderRepository(restapi.NewClient(api.URL, 0, nil))

	_, err := repo.Create(context.Background(), entity.Order{
		Supplier: entity.Ref{ID: "s1"},
		Items:    []entity.OrderItem{{Product: entity.Ref{ID: "p1"}, Qty: 2, Price: decimal.RequireFromString("9.99")}},
	})
	require.NoError(t, err)

	body := api.Requests(http.MethodPost, "/orders")[0].JSON(t)
	assert.Equal(t, "s1", body["supplierId"])
	assert.Equal(t, "pending", body["status"])
	items := body["items"].([]any)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, "p1", item["productId"])
	assert.Equal(t, float64(2), item["qty"])
	assert.Equal(t, 9.99, item["price"])
}

func TestSupplierRepo_ListaConFecha(t *testing.T) {
	api := restapitest.New(t)
	api.Seed("suppliers", map[string]any{"_id": "s1", "name": "ACME", "contact": "acme@example.com", "createdAt": "2024-03-05T10:00:00Z"})
	repo := restapi.NewSupplierRepository(restapi.NewClient(api.URL, 0, nil))

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "2024-03-05", list[0].CreatedAt.Format("2006-01-02"))
}
