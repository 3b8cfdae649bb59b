// Package form contiene los controladores de formulario de alta y edición.
//
// Estados: hidden → create → hidden | hidden → edit(id) → hidden.
// La validación local nunca llama a la API; los errores de la API se notifican y el
// formulario queda abierto con los datos introducidos.
package form

import (
	"context"
	"errors"
	"maps"
	"sync"
	"sync/atomic"

	"github.com/jhoicas/stocksync-dashboard/internal/application/dto"
	"github.com/jhoicas/stocksync-dashboard/internal/application/notify"
	"github.com/jhoicas/stocksync-dashboard/internal/domain"
	"github.com/jhoicas/stocksync-dashboard/internal/domain/entity"
)

// Mode estado del formulario.
type Mode string

const (
	ModeHidden Mode = "hidden"
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// ErrNotOpen Submit o edición de items con el formulario oculto.
var ErrNotOpen = errors.New("el formulario no está abierto")

// Notifier puerto de avisos de la sesión.
type Notifier interface {
	Notify(message string, severity notify.Severity) notify.Handle
}

// Reloader recarga la colección de kind y el agregado del dashboard tras una escritura.
type Reloader interface {
	Reload(ctx context.Context, kind entity.Kind)
}

// Controller operaciones comunes a los tres formularios (las usa la capa HTTP).
type Controller interface {
	Show(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Bind(fields map[string]string)
	Submit(ctx context.Context) error
	Cancel()
	View() dto.FormView
}

// state estado compartido de un formulario: modo, id en edición, campos y errores.
type state struct {
	mu     sync.Mutex
	kind   entity.Kind
	mode   Mode
	id     string
	fields map[string]string
	errs   map[string]string
	busy   atomic.Bool
}

func (s *state) init(kind entity.Kind) {
	s.kind = kind
	s.mode = ModeHidden
	s.fields = map[string]string{}
	s.errs = map[string]string{}
}

// open resetea errores y entra en mode con los campos dados.
func (s *state) open(mode Mode, id string, fields map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
	s.id = id
	s.fields = fields
	s.errs = map[string]string{}
}

func (s *state) hide() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = ModeHidden
	s.id = ""
	s.fields = map[string]string{}
	s.errs = map[string]string{}
}

// bind copia solo las claves permitidas.
func (s *state) bind(fields map[string]string, allowed ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range allowed {
		if v, ok := fields[k]; ok {
			s.fields[k] = v
		}
	}
}

func (s *state) snapshot() (Mode, string, map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode, s.id, maps.Clone(s.fields)
}

func (s *state) setErrors(v domain.ValidationErrors) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs = v.Fields()
}

func (s *state) clearErrors() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs = map[string]string{}
}

// begin marca el envío en curso; un segundo envío simultáneo devuelve ErrBusy.
func (s *state) begin() error {
	if !s.busy.CompareAndSwap(false, true) {
		return domain.ErrBusy
	}
	return nil
}

func (s *state) end() { s.busy.Store(false) }

func (s *state) view(createTitle string) dto.FormView {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := dto.FormView{
		Kind:    string(s.kind),
		Visible: s.mode != ModeHidden,
		Mode:    string(s.mode),
		ID:      s.id,
		Fields:  maps.Clone(s.fields),
		Errors:  maps.Clone(s.errs),
		Busy:    s.busy.Load(),
	}
	switch s.mode {
	case ModeCreate:
		v.Title = createTitle
	case ModeEdit:
		v.Title = "Edit " + s.kind.Title()
	}
	return v
}

// savedMessage "Product created successfully" / "Order updated successfully".
func savedMessage(kind entity.Kind, mode Mode) string {
	verb := "created"
	if mode == ModeEdit {
		verb = "updated"
	}
	return kind.Title() + " " + verb + " successfully"
}
