package session_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocksync-dashboard/internal/application/dto"
	"github.com/jhoicas/stocksync-dashboard/internal/application/preference"
	"github.com/jhoicas/stocksync-dashboard/internal/application/session"
	"github.com/jhoicas/stocksync-dashboard/internal/application/status"
	"github.com/jhoicas/stocksync-dashboard/internal/domain"
	"github.com/jhoicas/stocksync-dashboard/internal/domain/entity"
	"github.com/jhoicas/stocksync-dashboard/internal/domain/repository/mocks"
	"github.com/jhoicas/stocksync-dashboard/internal/infrastructure/restapi"
	"github.com/jhoicas/stocksync-dashboard/internal/infrastructure/restapi/restapitest"
)

func newDeps(t *testing.T, api *restapitest.Server) (session.Deps, *mocks.MockPreferenceRepository) {
	t.Helper()
	c := restapi.NewClient(api.URL, 0, nil)
	prefs := new(mocks.MockPreferenceRepository)
	prefs.On("Get", mock.Anything, mock.Anything, mock.Anything).Return("", false, nil).Maybe()
	return session.Deps{
		Products:       restapi.NewProductRepository(c),
		Suppliers:      restapi.NewSupplierRepository(c),
		Orders:         restapi.NewOrderRepository(c),
		Preferences:    preference.NewService(prefs, nil),
		Status:         status.NewChecker(c, nil),
		AppName:        "StockSync Pro",
		NotifyDuration: time.Minute,
	}, prefs
}

func seeded(t *testing.T) *restapitest.Server {
	t.Helper()
	api := restapitest.New(t)
	api.Seed("products",
		map[string]any{"_id": "p1", "sku": "W-1", "name": "Widget", "price": 9.99, "stock": 4},
		map[string]any{"_id": "p2", "sku": "B-1", "name": "Bolt", "price": 0.5, "stock": 40},
	)
	api.Seed("suppliers", map[string]any{"_id": "s1", "name": "ACME", "contact": "acme@example.com"})
	api.Seed("orders", map[string]any{
		"_id": "o1", "supplierId": "s1", "status": "pending",
		"items": []any{map[string]any{"productId": "p1", "qty": 2, "price": 9.99}},
	})
	return api
}

func start(t *testing.T, api *restapitest.Server) *session.Session {
	t.Helper()
	deps, _ := newDeps(t, api)
	s := session.New(session.NewClientID(), deps)
	t.Cleanup(s.Close)
	s.Start(context.Background())
	return s
}

func messages(s *session.Session) []string {
	var out []string
	for _, n := range s.Notifier().Active() {
		out = append(out, n.Message)
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────

func TestStart_CargaDashboardYEstado(t *testing.T) {
	s := start(t, seeded(t))

	p := s.Page("", "")
	assert.Equal(t, "dashboard", p.Section)
	assert.Equal(t, dto.DashboardCounts{TotalProducts: 2, LowStock: 1, TotalSuppliers: 1, TotalOrders: 1}, p.Dashboard)
	assert.True(t, p.APIStatus.Connected)
	assert.Equal(t, "light", p.Theme)
	assert.Nil(t, p.List)
	assert.Empty(t, p.Notifications)
}

func TestStart_APICaidaNotifica(t *testing.T) {
	api := restapitest.New(t)
	api.Fail("products", http.StatusServiceUnavailable, "")

	s := start(t, api)

	assert.Contains(t, messages(s), session.MsgDisconnected)
	assert.False(t, s.Page("", "").APIStatus.Connected)
}

func TestNavigate_SeccionExclusivaYCarga(t *testing.T) {
	s := start(t, seeded(t))
	ctx := context.Background()

	require.NoError(t, s.Navigate(ctx, "products"))
	p := s.Page("", "")
	active := 0
	for _, sec := range p.Sections {
		if sec.Active {
			active++
			assert.Equal(t, "products", sec.ID)
		}
	}
	assert.Equal(t, 1, active)
	require.NotNil(t, p.List)
	assert.Equal(t, dto.ViewReady, p.List.State)
	assert.Equal(t, 2, p.List.Count)
	assert.Equal(t, "2", p.Sections[1].Badge)
	assert.Empty(t, p.Sections[2].Badge, "proveedores aún sin cargar")

	assert.ErrorIs(t, s.Navigate(ctx, "warehouses"), domain.ErrUnknownSection)
	assert.Equal(t, session.SectionProducts, s.Section(), "una sección desconocida no cambia la activa")
}

func TestNavigate_ErrorDeCargaMuestraEstadoDeError(t *testing.T) {
	api := seeded(t)
	s := start(t, api)
	api.Fail("suppliers", http.StatusInternalServerError, `{"error":"db down"}`)

	require.NoError(t, s.Navigate(context.Background(), "suppliers"))

	p := s.Page("", "")
	assert.Equal(t, dto.ViewError, p.List.State)
	assert.Equal(t, "Error loading suppliers: db down", p.List.Message)
	assert.Contains(t, messages(s), "Error loading suppliers: db down")
}

func TestPage_FiltroPorTerminoYEstado(t *testing.T) {
	s := start(t, seeded(t))
	require.NoError(t, s.Navigate(context.Background(), "products"))

	p := s.Page("bolt", "")
	assert.Equal(t, 1, p.List.Count)
	assert.Equal(t, 2, p.List.Total)
	assert.Equal(t, "bolt", p.Query)
}

func TestSubmitYRecarga_ElStoreContieneLoEnviado(t *testing.T) {
	api := seeded(t)
	s := start(t, api)
	ctx := context.Background()
	require.NoError(t, s.Navigate(ctx, "suppliers"))

	f, err := s.Form(entity.KindSupplier)
	require.NoError(t, err)
	require.NoError(t, f.Show(ctx))
	f.Bind(map[string]string{"name": "Globex", "contact": "globex@example.com"})
	require.NoError(t, f.Submit(ctx))

	p := s.Page("globex", "")
	require.Equal(t, 1, p.List.Count)
	assert.Equal(t, "globex@example.com", p.List.Rows[0].Cells[1])
	assert.Equal(t, 2, p.Dashboard.TotalSuppliers, "el dashboard se recalcula")
	assert.Nil(t, p.Form, "formulario oculto tras el alta")
	assert.Contains(t, messages(s), "Supplier created successfully")
}

func TestBorrado_ConfirmarRecargaYCancelarNoLlama(t *testing.T) {
	api := seeded(t)
	s := start(t, api)
	ctx := context.Background()
	require.NoError(t, s.Navigate(ctx, "products"))

	require.NoError(t, s.Deletion().Request(entity.KindProduct, "p2"))
	assert.Equal(t, `Are you sure you want to delete "Bolt"? This action cannot be undone.`, s.Page("", "").Delete.Message)
	s.Deletion().Cancel()
	assert.Empty(t, api.Requests(http.MethodDelete, "/products"))

	require.NoError(t, s.Deletion().Request(entity.KindProduct, "p2"))
	require.NoError(t, s.Deletion().Confirm(ctx))

	p := s.Page("", "")
	assert.Len(t, api.Requests(http.MethodDelete, "/products/p2"), 1)
	assert.Equal(t, 1, p.List.Count)
	assert.Equal(t, 1, p.Dashboard.TotalProducts)
	assert.False(t, p.Delete.Open)
}

func TestViewOrder_DetalleConTotal(t *testing.T) {
	s := start(t, seeded(t))
	ctx := context.Background()

	_, err := s.ViewOrder("o1")
	assert.ErrorIs(t, err, domain.ErrNotFound, "caché de órdenes aún vacía")
	assert.Contains(t, messages(s), "Order not found")

	require.NoError(t, s.Navigate(ctx, "orders"))
	d, err := s.ViewOrder("o1")
	require.NoError(t, err)
	assert.Equal(t, "$19.98", d.Total)
	assert.Equal(t, "Product ID: p1", d.Lines[0].Product, "productos sin cargar")
	require.NotNil(t, s.Page("", "").OrderDetail)

	s.CloseOrderDetail()
	assert.Nil(t, s.Page("", "").OrderDetail)
}

func TestRefresh_Notifica(t *testing.T) {
	s := start(t, seeded(t))
	counts := s.Refresh(context.Background())
	assert.Equal(t, 2, counts.TotalProducts)
	assert.Contains(t, messages(s), "Dashboard refreshed successfully")
}

func TestToggleTheme_PersistePorCliente(t *testing.T) {
	api := seeded(t)
	deps, prefs := newDeps(t, api)
	s := session.New(session.NewClientID(), deps)
	t.Cleanup(s.Close)
	prefs.On("Set", mock.Anything, s.ID(), entity.PrefTheme, "dark").Return(nil).Once()

	theme, err := s.ToggleTheme(context.Background())

	require.NoError(t, err)
	assert.Equal(t, entity.ThemeDark, theme)
	assert.Equal(t, "dark", s.Page("", "").Theme)
	prefs.AssertExpectations(t)
}

func TestManager_MismaSesionPorClienteYSweep(t *testing.T) {
	deps, _ := newDeps(t, seeded(t))
	m := session.NewManager(deps)
	t.Cleanup(m.Close)
	ctx := context.Background()

	a := m.Get(ctx, "")
	assert.NotEmpty(t, a.ID())
	assert.Same(t, a, m.Get(ctx, a.ID()))
	assert.NotSame(t, a, m.Get(ctx, "no-es-un-uuid"))
	assert.Equal(t, 2, m.Len())

	assert.Equal(t, 0, m.Sweep(time.Hour))
	assert.Equal(t, 2, m.Sweep(-time.Second))
	assert.Equal(t, 0, m.Len())
}
