package form

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/jhoicas/stocksync-dashboard/internal/application/dto"
	"github.com/jhoicas/stocksync-dashboard/internal/application/notify"
	"github.com/jhoicas/stocksync-dashboard/internal/application/store"
	"github.com/jhoicas/stocksync-dashboard/internal/application/view"
	"github.com/jhoicas/stocksync-dashboard/internal/domain"
	"github.com/jhoicas/stocksync-dashboard/internal/domain/entity"
	"github.com/jhoicas/stocksync-dashboard/internal/domain/repository"
	"github.com/jhoicas/stocksync-dashboard/pkg/logger"
)

// ErrItemRange índice de item inexistente.
var ErrItemRange = errors.New("item fuera de rango")

var orderFields = []string{"supplier", "status"}

// lineItem texto crudo de un item tal como está en el formulario.
type lineItem struct {
	productID string
	qty       string
	price     string
}

func newLineItem() lineItem { return lineItem{qty: "1"} }

// OrderForm alta y edición de órdenes con una lista dinámica de items.
// El catálogo de productos y la lista de proveedores se piden frescos a la API;
// nunca se escriben en las cachés de la sesión.
type OrderForm struct {
	state
	repo      repository.OrderRepository
	products  repository.ProductRepository
	suppliers repository.SupplierRepository
	orders    *store.Store[entity.Order]
	notifier  Notifier
	reloader  Reloader
	log       *logger.Logger

	itemsMu      sync.Mutex
	items        []lineItem
	catalog      []entity.Product
	supplierList []entity.Supplier
}

// NewOrderForm construye el controlador.
func NewOrderForm(
	repo repository.OrderRepository,
	products repository.ProductRepository,
	suppliers repository.SupplierRepository,
	orders *store.Store[entity.Order],
	notifier Notifier,
	reloader Reloader,
	log *logger.Logger,
) *OrderForm {
	if log == nil {
		log = logger.Nop()
	}
	f := &OrderForm{
		repo:      repo,
		products:  products,
		suppliers: suppliers,
		orders:    orders,
		notifier:  notifier,
		reloader:  reloader,
		log:       log.Component("order_form"),
	}
	f.init(entity.KindOrder)
	return f
}

// Show abre el alta con un único item vacío y carga proveedores y productos.
func (f *OrderForm) Show(ctx context.Context) error {
	f.open(ModeCreate, "", map[string]string{"status": string(entity.OrderPending)})
	f.setItems([]lineItem{newLineItem()})
	f.loadOptions(ctx)
	return nil
}

// Edit carga la orden desde la caché local.
func (f *OrderForm) Edit(ctx context.Context, id string) error {
	o, ok := f.orders.Find(id)
	if !ok {
		err := &domain.NotFoundError{Kind: string(entity.KindOrder), ID: id}
		f.notifier.Notify(err.Error(), notify.Error)
		return err
	}
	items := make([]lineItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, lineItem{
			productID: it.Product.ID,
			qty:       strconv.Itoa(it.Qty),
			price:     it.Price.String(),
		})
	}
	if len(items) == 0 {
		items = append(items, newLineItem())
	}
	f.open(ModeEdit, o.ID, map[string]string{
		"supplier": o.Supplier.ID,
		"status":   string(o.Status.OrDefault()),
	})
	f.setItems(items)
	f.loadOptions(ctx)
	return nil
}

// loadOptions pide proveedores y productos; cada fallo se notifica por separado.
func (f *OrderForm) loadOptions(ctx context.Context) {
	suppliers, err := f.suppliers.List(ctx)
	if err != nil {
		f.log.Warn().Err(err).Msg("error cargando proveedores para el formulario")
		f.notifier.Notify("Error loading suppliers", notify.Error)
	}
	f.itemsMu.Lock()
	if err == nil {
		f.supplierList = suppliers
	}
	f.itemsMu.Unlock()
	f.refreshCatalog(ctx)
}

func (f *OrderForm) refreshCatalog(ctx context.Context) {
	products, err := f.products.List(ctx)
	if err != nil {
		f.log.Warn().Err(err).Msg("error cargando productos para el formulario")
		f.notifier.Notify("Error loading products", notify.Error)
		return
	}
	f.itemsMu.Lock()
	f.catalog = products
	f.itemsMu.Unlock()
}

func (f *OrderForm) setItems(items []lineItem) {
	f.itemsMu.Lock()
	defer f.itemsMu.Unlock()
	f.items = items
}

// AddItem agrega un item {producto, cantidad=1, precio} y vuelve a pedir el catálogo.
// Si el catálogo falla el item se agrega igualmente.
func (f *OrderForm) AddItem(ctx context.Context) error {
	if mode, _, _ := f.snapshot(); mode == ModeHidden {
		return ErrNotOpen
	}
	f.itemsMu.Lock()
	f.items = append(f.items, newLineItem())
	f.itemsMu.Unlock()
	f.refreshCatalog(ctx)
	return nil
}

// RemoveItem quita el item i mientras quede más de uno.
func (f *OrderForm) RemoveItem(i int) error {
	f.itemsMu.Lock()
	defer f.itemsMu.Unlock()
	if i < 0 || i >= len(f.items) {
		return ErrItemRange
	}
	if len(f.items) <= 1 {
		f.notifier.Notify(domain.ErrLastItem.Error(), notify.Error)
		return domain.ErrLastItem
	}
	f.items = append(f.items[:i], f.items[i+1:]...)
	return nil
}

// SelectProduct fija el producto del item i y copia su precio de catálogo.
// El precio sigue siendo editable: se envía lo que haya en el campo.
func (f *OrderForm) SelectProduct(i int, productID string) error {
	f.itemsMu.Lock()
	defer f.itemsMu.Unlock()
	if i < 0 || i >= len(f.items) {
		return ErrItemRange
	}
	f.items[i].productID = productID
	for _, p := range f.catalog {
		if p.ID == productID {
			f.items[i].price = p.Price.String()
			break
		}
	}
	return nil
}

// Bind copia supplier, status y los campos de items con claves
// "item_product_<i>", "item_qty_<i>", "item_price_<i>". No cambia el número de items.
func (f *OrderForm) Bind(fields map[string]string) {
	f.bind(fields, orderFields...)

	f.itemsMu.Lock()
	defer f.itemsMu.Unlock()
	for k, v := range fields {
		field, idx, ok := itemKey(k)
		if !ok || idx >= len(f.items) {
			continue
		}
		switch field {
		case "product":
			f.items[idx].productID = v
		case "qty":
			f.items[idx].qty = v
		case "price":
			f.items[idx].price = v
		}
	}
}

// ItemField clave de formulario de un campo de item.
func ItemField(field string, i int) string {
	return fmt.Sprintf("item_%s_%d", field, i)
}

func itemKey(k string) (string, int, bool) {
	rest, ok := strings.CutPrefix(k, "item_")
	if !ok {
		return "", 0, false
	}
	field, num, ok := strings.Cut(rest, "_")
	if !ok {
		return "", 0, false
	}
	idx, err := strconv.Atoi(num)
	if err != nil || idx < 0 {
		return "", 0, false
	}
	return field, idx, true
}

func (f *OrderForm) Cancel() {
	f.hide()
	f.setItems(nil)
}

// View incluye items, opciones de proveedor y de estado.
func (f *OrderForm) View() dto.FormView {
	v := f.view("Create New Order")
	if !v.Visible {
		return v
	}

	f.itemsMu.Lock()
	defer f.itemsMu.Unlock()
	v.Items = make([]dto.OrderItemView, 0, len(f.items))
	for i, it := range f.items {
		v.Items = append(v.Items, dto.OrderItemView{
			Index:     i,
			ProductID: it.productID,
			Qty:       it.qty,
			Price:     it.price,
			Options:   view.ProductOptions(f.catalog, it.productID),
			Removable: len(f.items) > 1,
			Errors:    itemErrors(v.Errors, i),
		})
	}
	v.Suppliers = view.SupplierOptions(f.supplierList, v.Fields["supplier"])
	for _, s := range entity.OrderStatuses {
		v.Statuses = append(v.Statuses, dto.Option{
			Value:    string(s),
			Label:    view.Title(string(s)),
			Selected: string(s) == v.Fields["status"],
		})
	}
	return v
}

// Submit valida proveedor, estado e items y envía POST o PUT.
func (f *OrderForm) Submit(ctx context.Context) error {
	if err := f.begin(); err != nil {
		return err
	}
	defer f.end()

	mode, id, fields := f.snapshot()
	if mode == ModeHidden {
		return ErrNotOpen
	}
	f.itemsMu.Lock()
	items := append([]lineItem(nil), f.items...)
	f.itemsMu.Unlock()

	order, verrs := parseOrder(fields, items)
	if len(verrs) > 0 {
		f.setErrors(verrs)
		errs := verrs.Fields()
		if _, ok := errs["items"]; ok {
			f.notifier.Notify(domain.ErrLastItem.Error(), notify.Error)
		}
		for i := range items {
			if len(itemErrors(errs, i)) > 0 {
				f.notifier.Notify(fmt.Sprintf("Item %d is incomplete", i+1), notify.Error)
			}
		}
		return verrs
	}
	f.clearErrors()

	var err error
	if mode == ModeEdit {
		_, err = f.repo.Update(ctx, id, order)
	} else {
		_, err = f.repo.Create(ctx, order)
	}
	if err != nil {
		f.log.Warn().Err(err).Str("mode", string(mode)).Str("id", id).Msg("error guardando orden")
		f.notifier.Notify(domain.UserMessage(err), notify.Error)
		return err
	}

	f.notifier.Notify(savedMessage(entity.KindOrder, mode), notify.Success)
	f.Cancel()
	f.reloader.Reload(ctx, entity.KindOrder)
	return nil
}

// itemErrors errores del item i indexados por campo ("product", "qty", "price").
func itemErrors(errs map[string]string, i int) map[string]string {
	var out map[string]string
	for _, field := range itemFieldNames {
		if msg, ok := errs[ItemField(field, i)]; ok {
			if out == nil {
				out = map[string]string{}
			}
			out[field] = msg
		}
	}
	return out
}

var itemFieldNames = []string{"product", "qty", "price"}

func parseOrder(fields map[string]string, items []lineItem) (entity.Order, domain.ValidationErrors) {
	var v validator
	order := entity.Order{
		Supplier: entity.Ref{ID: v.required("supplier", fields["supplier"], "Supplier is required")},
		Status:   entity.OrderStatus(strings.TrimSpace(fields["status"])).OrDefault(),
	}
	if !order.Status.Valid() {
		v.add("status", "Valid status is required")
	}
	if len(items) == 0 {
		v.add("items", domain.ErrLastItem.Error())
	}
	for i, it := range items {
		order.Items = append(order.Items, entity.OrderItem{
			Product: entity.Ref{ID: v.required(ItemField("product", i), it.productID, "Product is required")},
			Qty:     v.integer(ItemField("qty", i), it.qty, 1, "Quantity must be a positive whole number"),
			Price:   v.money(ItemField("price", i), it.price, "Valid price is required"),
		})
	}
	return order, v.errs
}
