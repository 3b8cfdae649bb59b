package form

import (
	"context"
	"strconv"
	"strings"

	"github.com/jhoicas/stocksync-dashboard/internal/application/dto"
	"github.com/jhoicas/stocksync-dashboard/internal/application/notify"
	"github.com/jhoicas/stocksync-dashboard/internal/application/store"
	"github.com/jhoicas/stocksync-dashboard/internal/domain"
	"github.com/jhoicas/stocksync-dashboard/internal/domain/entity"
	"github.com/jhoicas/stocksync-dashboard/internal/domain/repository"
	"github.com/jhoicas/stocksync-dashboard/pkg/logger"
)

var productFields = []string{"sku", "name", "price", "stock", "category"}

// ProductForm alta y edición de productos.
type ProductForm struct {
	state
	repo     repository.ProductRepository
	products *store.Store[entity.Product]
	notifier Notifier
	reloader Reloader
	log      *logger.Logger
}

// NewProductForm construye el controlador. products es la caché donde Edit busca.
func NewProductForm(
	repo repository.ProductRepository,
	products *store.Store[entity.Product],
	notifier Notifier,
	reloader Reloader,
	log *logger.Logger,
) *ProductForm {
	if log == nil {
		log = logger.Nop()
	}
	f := &ProductForm{
		repo:     repo,
		products: products,
		notifier: notifier,
		reloader: reloader,
		log:      log.Component("product_form"),
	}
	f.init(entity.KindProduct)
	return f
}

// Show abre el formulario vacío en modo alta.
func (f *ProductForm) Show(_ context.Context) error {
	f.open(ModeCreate, "", map[string]string{})
	return nil
}

// Edit carga el producto desde la caché local. Si no está, notifica y sigue oculto.
func (f *ProductForm) Edit(_ context.Context, id string) error {
	p, ok := f.products.Find(id)
	if !ok {
		err := &domain.NotFoundError{Kind: string(entity.KindProduct), ID: id}
		f.notifier.Notify(err.Error(), notify.Error)
		return err
	}
	f.open(ModeEdit, p.ID, map[string]string{
		"sku":      p.SKU,
		"name":     p.Name,
		"price":    p.Price.String(),
		"stock":    strconv.Itoa(p.Stock),
		"category": p.Category,
	})
	return nil
}

// Bind copia el texto de los campos recibidos.
func (f *ProductForm) Bind(fields map[string]string) {
	f.bind(fields, productFields...)
}

// Cancel oculta el formulario sin llamar a la API.
func (f *ProductForm) Cancel() { f.hide() }

// View instantánea para el render.
func (f *ProductForm) View() dto.FormView { return f.view("Add New Product") }

// Submit valida y envía POST (alta) o PUT (edición).
func (f *ProductForm) Submit(ctx context.Context) error {
	if err := f.begin(); err != nil {
		return err
	}
	defer f.end()

	mode, id, fields := f.snapshot()
	if mode == ModeHidden {
		return ErrNotOpen
	}

	product, verrs := parseProduct(fields)
	if len(verrs) > 0 {
		f.setErrors(verrs)
		return verrs
	}
	f.clearErrors()

	var err error
	if mode == ModeEdit {
		_, err = f.repo.Update(ctx, id, product)
	} else {
		_, err = f.repo.Create(ctx, product)
	}
	if err != nil {
		f.log.Warn().Err(err).Str("mode", string(mode)).Str("id", id).Msg("error guardando producto")
		f.notifier.Notify(domain.UserMessage(err), notify.Error)
		return err
	}

	f.notifier.Notify(savedMessage(entity.KindProduct, mode), notify.Success)
	f.hide()
	f.reloader.Reload(ctx, entity.KindProduct)
	return nil
}

func parseProduct(fields map[string]string) (entity.Product, domain.ValidationErrors) {
	var v validator
	p := entity.Product{
		SKU:   v.required("sku", fields["sku"], "SKU is required"),
		Name:  v.required("name", fields["name"], "Product name is required"),
		Price: v.money("price", fields["price"], "Valid price is required"),
		Stock: v.integer("stock", fields["stock"], 0, "Valid stock quantity is required"),
	}
	p.Category = strings.TrimSpace(fields["category"])
	return p, v.errs
}
