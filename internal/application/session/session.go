// Package session es el objeto de estado de la aplicación: una Session por navegador
// posee las cachés, los formularios, el flujo de borrado, los avisos y la navegación.
// Toda mutación pasa por sus métodos; no hay estado global.
package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/stocksync-dashboard/internal/application/dashboard"
	"github.com/jhoicas/stocksync-dashboard/internal/application/deletion"
	"github.com/jhoicas/stocksync-dashboard/internal/application/dto"
	"github.com/jhoicas/stocksync-dashboard/internal/application/form"
	"github.com/jhoicas/stocksync-dashboard/internal/application/notify"
	"github.com/jhoicas/stocksync-dashboard/internal/application/preference"
	"github.com/jhoicas/stocksync-dashboard/internal/application/status"
	"github.com/jhoicas/stocksync-dashboard/internal/application/store"
	"github.com/jhoicas/stocksync-dashboard/internal/application/view"
	"github.com/jhoicas/stocksync-dashboard/internal/domain"
	"github.com/jhoicas/stocksync-dashboard/internal/domain/entity"
	"github.com/jhoicas/stocksync-dashboard/internal/domain/repository"
	"github.com/jhoicas/stocksync-dashboard/pkg/logger"
)

// MsgDisconnected aviso del chequeo inicial fallido.
const MsgDisconnected = "Cannot connect to API. Check your connection."

// Deps colaboradores compartidos por todas las sesiones.
type Deps struct {
	Products       repository.ProductRepository
	Suppliers      repository.SupplierRepository
	Orders         repository.OrderRepository
	Preferences    *preference.Service
	Status         *status.Checker
	AppName        string
	NotifyDuration time.Duration
	Log            *logger.Logger
}

// Session estado de un navegador.
type Session struct {
	id   string
	deps Deps
	log  *logger.Logger

	products  *store.Store[entity.Product]
	suppliers *store.Store[entity.Supplier]
	orders    *store.Store[entity.Order]
	aggregate *dashboard.Aggregate
	notifier  *notify.Notifier

	productForm  *form.ProductForm
	supplierForm *form.SupplierForm
	orderForm    *form.OrderForm
	deletion     *deletion.Flow

	mu       sync.Mutex
	section  Section
	counts   dto.DashboardCounts
	prefs    entity.Preferences
	detail   *dto.OrderDetailView
	lastSeen time.Time
}

// New construye la sesión del cliente clientID. No toca la red: ver Start.
func New(clientID string, deps Deps) *Session {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	log := deps.Log.Component("session")
	s := &Session{
		id:        clientID,
		deps:      deps,
		log:       log,
		products:  store.New(deps.Products.List),
		suppliers: store.New(deps.Suppliers.List),
		orders:    store.New(deps.Orders.List),
		aggregate: dashboard.NewAggregate(deps.Products, deps.Suppliers, deps.Orders, deps.Log),
		notifier:  notify.New(deps.NotifyDuration),
		section:   SectionDashboard,
		prefs:     entity.DefaultPreferences(),
		lastSeen:  time.Now(),
	}
	s.productForm = form.NewProductForm(deps.Products, s.products, s.notifier, s, deps.Log)
	s.supplierForm = form.NewSupplierForm(deps.Suppliers, s.suppliers, s.notifier, s, deps.Log)
	s.orderForm = form.NewOrderForm(deps.Orders, deps.Products, deps.Suppliers, s.orders, s.notifier, s, deps.Log)
	s.deletion = deletion.NewFlow(repository.Deleters{
		entity.KindProduct:  deps.Products,
		entity.KindSupplier: deps.Suppliers,
		entity.KindOrder:    deps.Orders,
	}, s, s.notifier, s, deps.Log)
	return s
}

// Start lee las preferencias, comprueba la API y carga el dashboard.
func (s *Session) Start(ctx context.Context) {
	if s.deps.Preferences != nil {
		prefs := s.deps.Preferences.Load(ctx, s.id)
		s.mu.Lock()
		s.prefs = prefs
		s.mu.Unlock()
	}
	if s.deps.Status != nil {
		if st := s.deps.Status.Check(ctx); !st.Connected {
			s.notifier.Notify(MsgDisconnected, notify.Error)
		}
	}
	s.loadDashboard(ctx)
}

// ID identificador de cliente (cookie).
func (s *Session) ID() string { return s.id }

// Touch marca actividad.
func (s *Session) Touch() {
	s.mu.Lock()
	s.lastSeen = time.Now()
	s.mu.Unlock()
}

// IdleSince última actividad.
func (s *Session) IdleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Close detiene los temporizadores de avisos.
func (s *Session) Close() { s.notifier.Clear() }

// ── Navegación ───────────────────────────────────────────────────────────────

// Navigate activa la sección y carga sus datos.
func (s *Session) Navigate(ctx context.Context, name string) error {
	sec, err := ParseSection(name)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.section = sec
	s.detail = nil
	s.mu.Unlock()

	if kind := sec.Kind(); kind != "" {
		s.loadStore(ctx, kind)
		return nil
	}
	s.loadDashboard(ctx)
	return nil
}

// Section sección activa.
func (s *Session) Section() Section {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.section
}

// Reload recarga la colección de kind y el dashboard. La usan formularios y borrado.
func (s *Session) Reload(ctx context.Context, kind entity.Kind) {
	s.loadStore(ctx, kind)
	s.loadDashboard(ctx)
}

// Refresh recalcula el dashboard y lo notifica.
func (s *Session) Refresh(ctx context.Context) dto.DashboardCounts {
	counts := s.loadDashboard(ctx)
	s.notifier.Notify("Dashboard refreshed successfully", notify.Success)
	return counts
}

// Counts últimos contadores calculados.
func (s *Session) Counts() dto.DashboardCounts {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts
}

func (s *Session) loadDashboard(ctx context.Context) dto.DashboardCounts {
	counts := s.aggregate.Load(ctx)
	s.mu.Lock()
	s.counts = counts
	s.mu.Unlock()
	return counts
}

func (s *Session) loadStore(ctx context.Context, kind entity.Kind) {
	var err error
	switch kind {
	case entity.KindProduct:
		err = s.products.Load(ctx)
	case entity.KindSupplier:
		err = s.suppliers.Load(ctx)
	case entity.KindOrder:
		err = s.orders.Load(ctx)
	default:
		return
	}
	if err != nil {
		s.log.Warn().Err(err).Str("kind", string(kind)).Str("client_id", s.id).Msg("error cargando colección")
		s.notifier.Notify("Error loading "+kind.Collection()+": "+domain.UserMessage(err), notify.Error)
	}
}

// ── Componentes ──────────────────────────────────────────────────────────────

// Form controlador de formulario de kind.
func (s *Session) Form(kind entity.Kind) (form.Controller, error) {
	switch kind {
	case entity.KindProduct:
		return s.productForm, nil
	case entity.KindSupplier:
		return s.supplierForm, nil
	case entity.KindOrder:
		return s.orderForm, nil
	}
	return nil, domain.ErrUnknownKind
}

// OrderForm formulario de órdenes (items dinámicos).
func (s *Session) OrderForm() *form.OrderForm { return s.orderForm }

// Deletion flujo de borrado.
func (s *Session) Deletion() *deletion.Flow { return s.deletion }

// Notifier avisos de la sesión.
func (s *Session) Notifier() *notify.Notifier { return s.notifier }

// DisplayName implementa deletion.NameResolver. Las órdenes no tienen nombre visible.
func (s *Session) DisplayName(kind entity.Kind, id string) (string, bool) {
	switch kind {
	case entity.KindProduct:
		if p, ok := s.products.Find(id); ok {
			return p.Name, true
		}
	case entity.KindSupplier:
		if sp, ok := s.suppliers.Find(id); ok {
			return sp.Name, true
		}
	}
	return "", false
}

// ViewOrder abre el detalle de una orden de la caché local.
func (s *Session) ViewOrder(id string) (dto.OrderDetailView, error) {
	o, ok := s.orders.Find(id)
	if !ok {
		err := &domain.NotFoundError{Kind: string(entity.KindOrder), ID: id}
		s.notifier.Notify(err.Error(), notify.Error)
		return dto.OrderDetailView{}, err
	}
	d := view.RenderOrderDetail(o, s.suppliers.Items(), s.products.Items())
	s.mu.Lock()
	s.detail = &d
	s.mu.Unlock()
	return d, nil
}

// CloseOrderDetail cierra el detalle.
func (s *Session) CloseOrderDetail() {
	s.mu.Lock()
	s.detail = nil
	s.mu.Unlock()
}

// ── Preferencias ─────────────────────────────────────────────────────────────

// Preferences preferencias vigentes.
func (s *Session) Preferences() entity.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs
}

// ToggleTheme alterna y persiste el tema.
func (s *Session) ToggleTheme(ctx context.Context) (entity.Theme, error) {
	theme, err := s.deps.Preferences.ToggleTheme(ctx, s.id)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	s.prefs.Theme = theme
	s.mu.Unlock()
	return theme, nil
}

// ToggleSidebar alterna y persiste el estado del sidebar.
func (s *Session) ToggleSidebar(ctx context.Context) (bool, error) {
	collapsed, err := s.deps.Preferences.ToggleSidebar(ctx, s.id)
	if err != nil {
		return false, err
	}
	s.mu.Lock()
	s.prefs.SidebarCollapsed = collapsed
	s.mu.Unlock()
	return collapsed, nil
}

// ── Vista de página ──────────────────────────────────────────────────────────

// Page modelo completo de la página actual. query y statusFilter filtran el listado.
func (s *Session) Page(query, statusFilter string) dto.PageView {
	s.mu.Lock()
	sec := s.section
	counts := s.counts
	prefs := s.prefs
	detail := s.detail
	s.mu.Unlock()

	p := dto.PageView{
		AppName:          s.deps.AppName,
		Year:             time.Now().Year(),
		Section:          string(sec),
		SectionTitle:     sec.Title(),
		Sections:         s.sections(sec),
		Theme:            string(prefs.Theme),
		SidebarCollapsed: prefs.SidebarCollapsed,
		Dashboard:        counts,
		Query:            strings.TrimSpace(query),
		StatusFilter:     strings.TrimSpace(statusFilter),
		OrderDetail:      detail,
		Delete:           s.deletion.View(),
		Notifications:    s.notifier.Active(),
	}
	if s.deps.Status != nil {
		p.APIStatus = s.deps.Status.Last()
	}

	if kind := sec.Kind(); kind != "" {
		list := view.Filter(s.render(kind), p.Query, p.StatusFilter)
		p.List = &list
		if ctrl, err := s.Form(kind); err == nil {
			if fv := ctrl.View(); fv.Visible {
				p.Form = &fv
			}
		}
	}
	return p
}

// render vista sin filtrar de la colección de kind.
func (s *Session) render(kind entity.Kind) dto.ListView {
	switch kind {
	case entity.KindProduct:
		items, err := s.products.Snapshot()
		return view.RenderProducts(items, err)
	case entity.KindSupplier:
		items, err := s.suppliers.Snapshot()
		return view.RenderSuppliers(items, err)
	default:
		items, err := s.orders.Snapshot()
		return view.RenderOrders(items, s.suppliers.Items(), err)
	}
}

// List vista filtrada de la colección kind (endpoint JSON).
func (s *Session) List(kind entity.Kind, query, statusFilter string) dto.ListView {
	return view.Filter(s.render(kind), query, statusFilter)
}

func (s *Session) sections(active Section) []dto.Section {
	badges := s.Badges()
	out := make([]dto.Section, 0, len(Sections))
	for _, sec := range Sections {
		item := dto.Section{ID: string(sec), Title: sec.Title(), Active: sec == active}
		switch sec {
		case SectionProducts:
			item.Badge = badges.Products
		case SectionSuppliers:
			item.Badge = badges.Suppliers
		case SectionOrders:
			item.Badge = badges.Orders
		}
		out = append(out, item)
	}
	return out
}

// Badges tamaños de las cachés; vacío cuando la colección está vacía.
func (s *Session) Badges() dto.NavBadges {
	return dto.NavBadges{
		Products:  badge(s.products.Len()),
		Suppliers: badge(s.suppliers.Len()),
		Orders:    badge(s.orders.Len()),
	}
}

func badge(n int) string {
	if n == 0 {
		return ""
	}
	return view.Itoa(n)
}
