package form

import (
	"context"

	"github.com/jhoicas/stocksync-dashboard/internal/application/dto"
	"github.com/jhoicas/stocksync-dashboard/internal/application/notify"
	"github.com/jhoicas/stocksync-dashboard/internal/application/store"
	"github.com/jhoicas/stocksync-dashboard/internal/domain"
	"github.com/jhoicas/stocksync-dashboard/internal/domain/entity"
	"github.com/jhoicas/stocksync-dashboard/internal/domain/repository"
	"github.com/jhoicas/stocksync-dashboard/pkg/logger"
)

var supplierFields = []string{"name", "contact"}

// SupplierForm alta y edición de proveedores.
type SupplierForm struct {
	state
	repo      repository.SupplierRepository
	suppliers *store.Store[entity.Supplier]
	notifier  Notifier
	reloader  Reloader
	log       *logger.Logger
}

// NewSupplierForm construye el controlador.
func NewSupplierForm(
	repo repository.SupplierRepository,
	suppliers *store.Store[entity.Supplier],
	notifier Notifier,
	reloader Reloader,
	log *logger.Logger,
) *SupplierForm {
	if log == nil {
		log = logger.Nop()
	}
	f := &SupplierForm{
		repo:      repo,
		suppliers: suppliers,
		notifier:  notifier,
		reloader:  reloader,
		log:       log.Component("supplier_form"),
	}
	f.init(entity.KindSupplier)
	return f
}

func (f *SupplierForm) Show(_ context.Context) error {
	f.open(ModeCreate, "", map[string]string{})
	return nil
}

func (f *SupplierForm) Edit(_ context.Context, id string) error {
	s, ok := f.suppliers.Find(id)
	if !ok {
		err := &domain.NotFoundError{Kind: string(entity.KindSupplier), ID: id}
		f.notifier.Notify(err.Error(), notify.Error)
		return err
	}
	f.open(ModeEdit, s.ID, map[string]string{"name": s.Name, "contact": s.Contact})
	return nil
}

func (f *SupplierForm) Bind(fields map[string]string) { f.bind(fields, supplierFields...) }

func (f *SupplierForm) Cancel() { f.hide() }

func (f *SupplierForm) View() dto.FormView { return f.view("Add New Supplier") }

func (f *SupplierForm) Submit(ctx context.Context) error {
	if err := f.begin(); err != nil {
		return err
	}
	defer f.end()

	mode, id, fields := f.snapshot()
	if mode == ModeHidden {
		return ErrNotOpen
	}

	var v validator
	supplier := entity.Supplier{
		Name:    v.required("name", fields["name"], "Supplier name is required"),
		Contact: v.required("contact", fields["contact"], "Contact information is required"),
	}
	if err := v.err(); err != nil {
		f.setErrors(v.errs)
		return err
	}
	f.clearErrors()

	var err error
	if mode == ModeEdit {
		_, err = f.repo.Update(ctx, id, supplier)
	} else {
		_, err = f.repo.Create(ctx, supplier)
	}
	if err != nil {
		f.log.Warn().Err(err).Str("mode", string(mode)).Str("id", id).Msg("error guardando proveedor")
		f.notifier.Notify(domain.UserMessage(err), notify.Error)
		return err
	}

	f.notifier.Notify(savedMessage(entity.KindSupplier, mode), notify.Success)
	f.hide()
	f.reloader.Reload(ctx, entity.KindSupplier)
	return nil
}
