package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stocksync-dashboard/internal/application/form"
	"github.com/jhoicas/stocksync-dashboard/internal/application/session"
	"github.com/jhoicas/stocksync-dashboard/internal/domain/entity"
)

// FormHandler formularios de alta y edición de products, suppliers y orders.
type FormHandler struct{}

// NewFormHandler construye el handler.
func NewFormHandler() *FormHandler { return &FormHandler{} }

// controller resuelve el formulario de :kind (acepta "products" o "product").
func controller(c *fiber.Ctx) (*session.Session, form.Controller, error) {
	s := GetSession(c)
	kind, err := entity.ParseKind(c.Params("kind"))
	if err != nil {
		return s, nil, err
	}
	ctrl, err := s.Form(kind)
	return s, ctrl, err
}

// Show abre el formulario vacío.
// POST /:kind/form/show
func (h *FormHandler) Show(c *fiber.Ctx) error {
	s, ctrl, err := controller(c)
	if err != nil {
		return fail(c, err)
	}
	return afterAction(c, s, ctrl.Show(c.UserContext()))
}

// Edit abre el formulario con los datos de la caché local.
// POST /:kind/:id/edit
func (h *FormHandler) Edit(c *fiber.Ctx) error {
	s, ctrl, err := controller(c)
	if err != nil {
		return fail(c, err)
	}
	return afterAction(c, s, ctrl.Edit(c.UserContext(), c.Params("id")))
}

// Submit godoc
// @Summary      Enviar formulario
// @Description  Valida localmente; si pasa, POST (alta) o PUT (edición) contra la API.
// @Tags         forms
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        kind  path  string  true  "products | suppliers | orders"
// @Success      200  {object}  dto.PageView
// @Failure      409  {object}  dto.PageView
// @Failure      422  {object}  dto.PageView
// @Failure      502  {object}  dto.PageView
// @Router       /{kind}/form/submit [post]
func (h *FormHandler) Submit(c *fiber.Ctx) error {
	s, ctrl, err := controller(c)
	if err != nil {
		return fail(c, err)
	}
	fields, err := formFields(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorBody("INVALID_BODY", "cuerpo inválido"))
	}
	ctrl.Bind(fields)
	return afterAction(c, s, ctrl.Submit(c.UserContext()))
}

// Cancel oculta el formulario sin llamar a la API.
// POST /:kind/form/cancel
func (h *FormHandler) Cancel(c *fiber.Ctx) error {
	s, ctrl, err := controller(c)
	if err != nil {
		return fail(c, err)
	}
	ctrl.Cancel()
	return afterAction(c, s, nil)
}

// ── Items de órdenes ─────────────────────────────────────────────────────────

// bindOrder conserva lo escrito antes de cambiar la lista de items.
func bindOrder(c *fiber.Ctx) (*session.Session, *form.OrderForm, map[string]string, error) {
	s := GetSession(c)
	fields, err := formFields(c)
	if err != nil {
		return s, nil, nil, err
	}
	f := s.OrderForm()
	f.Bind(fields)
	return s, f, fields, nil
}

// AddItem agrega un item vacío.
// POST /orders/form/items
func (h *FormHandler) AddItem(c *fiber.Ctx) error {
	s, f, _, err := bindOrder(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorBody("INVALID_BODY", "cuerpo inválido"))
	}
	return afterAction(c, s, f.AddItem(c.UserContext()))
}

// RemoveItem quita el item :index (nunca el último).
// POST /orders/form/items/:index/remove
func (h *FormHandler) RemoveItem(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorBody("BAD_REQUEST", "index inválido"))
	}
	s, f, _, err := bindOrder(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorBody("INVALID_BODY", "cuerpo inválido"))
	}
	return afterAction(c, s, f.RemoveItem(index))
}

// SelectProduct fija el producto del item y copia su precio.
// POST /orders/form/items/:index/select (campo product_id o item_product_<index>)
func (h *FormHandler) SelectProduct(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorBody("BAD_REQUEST", "index inválido"))
	}
	s, f, fields, err := bindOrder(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorBody("INVALID_BODY", "cuerpo inválido"))
	}
	productID := fields["product_id"]
	if productID == "" {
		productID = fields[form.ItemField("product", index)]
	}
	return afterAction(c, s, f.SelectProduct(index, productID))
}

// ViewOrder godoc
// @Summary      Detalle de una orden
// @Tags         orders
// @Produce      json
// @Param        id  path  string  true  "Order ID"
// @Success      200  {object}  dto.PageView
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /orders/{id}/view [get]
func (h *FormHandler) ViewOrder(c *fiber.Ctx) error {
	s := GetSession(c)
	if _, err := s.ViewOrder(c.Params("id")); err != nil {
		if wantsJSON(c) {
			return fail(c, err)
		}
		return render(c, s, statusFor(err))
	}
	// Sin redirect: navegar a /orders cerraría el detalle.
	return render(c, s, fiber.StatusOK)
}

// CloseOrder cierra el detalle.
// POST /orders/detail/close
func (h *FormHandler) CloseOrder(c *fiber.Ctx) error {
	s := GetSession(c)
	s.CloseOrderDetail()
	return afterAction(c, s, nil)
}
