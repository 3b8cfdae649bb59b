// Package deletion implementa la confirmación de borrado: idle → pending(kind, id) → idle.
package deletion

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/jhoicas/stocksync-dashboard/internal/application/dto"
	"github.com/jhoicas/stocksync-dashboard/internal/application/notify"
	"github.com/jhoicas/stocksync-dashboard/internal/domain"
	"github.com/jhoicas/stocksync-dashboard/internal/domain/entity"
	"github.com/jhoicas/stocksync-dashboard/internal/domain/repository"
	"github.com/jhoicas/stocksync-dashboard/pkg/logger"
)

// Notifier puerto de avisos.
type Notifier interface {
	Notify(message string, severity notify.Severity) notify.Handle
}

// Reloader recarga la colección afectada y el dashboard.
type Reloader interface {
	Reload(ctx context.Context, kind entity.Kind)
}

// NameResolver nombre visible de una entidad en la caché local.
type NameResolver interface {
	DisplayName(kind entity.Kind, id string) (string, bool)
}

type target struct {
	kind    entity.Kind
	id      string
	message string
}

// Flow estado del modal de borrado de una sesión.
type Flow struct {
	deleters repository.Deleters
	names    NameResolver
	notifier Notifier
	reloader Reloader
	log      *logger.Logger

	mu      sync.Mutex
	pending *target
	busy    bool
}

// NewFlow construye el flujo.
func NewFlow(deleters repository.Deleters, names NameResolver, notifier Notifier, reloader Reloader, log *logger.Logger) *Flow {
	if log == nil {
		log = logger.Nop()
	}
	return &Flow{
		deleters: deleters,
		names:    names,
		notifier: notifier,
		reloader: reloader,
		log:      log.Component("deletion"),
	}
}

// Request abre el modal para kind/id. No llama a la API.
func (f *Flow) Request(kind entity.Kind, id string) error {
	if _, ok := f.deleters[kind]; !ok {
		return domain.ErrUnknownKind
	}
	// id puede apuntar a un buffer que el servidor HTTP reutiliza.
	id = strings.Clone(id)
	msg := Prompt(kind, id, f.names)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending = &target{kind: kind, id: id, message: msg}
	return nil
}

// Prompt "Are you sure you want to delete "Widget"? This action cannot be undone."
func Prompt(kind entity.Kind, id string, names NameResolver) string {
	subject := "this " + string(kind)
	if names != nil {
		if name, ok := names.DisplayName(kind, id); ok && name != "" {
			subject = `"` + name + `"`
		}
	}
	return fmt.Sprintf("Are you sure you want to delete %s? This action cannot be undone.", subject)
}

// Cancel descarta la acción pendiente.
func (f *Flow) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending = nil
}

// Confirm toma la acción pendiente (dejando el flujo en idle) y emite el DELETE.
// Sin acción pendiente no hace nada, así un doble confirm no borra dos veces.
func (f *Flow) Confirm(ctx context.Context) error {
	f.mu.Lock()
	t := f.pending
	f.pending = nil
	if t != nil {
		f.busy = true
	}
	f.mu.Unlock()
	if t == nil {
		return nil
	}
	defer func() {
		f.mu.Lock()
		f.busy = false
		f.mu.Unlock()
	}()

	if err := f.deleters[t.kind].Delete(ctx, t.id); err != nil {
		f.log.Warn().Err(err).Str("kind", string(t.kind)).Str("id", t.id).Msg("error borrando")
		f.notifier.Notify(fmt.Sprintf("Error deleting %s: %s", t.kind, domain.UserMessage(err)), notify.Error)
		return err
	}

	f.log.Info().Str("kind", string(t.kind)).Str("id", t.id).Msg("entidad borrada")
	f.notifier.Notify(t.kind.Title()+" deleted successfully", notify.Success)
	f.reloader.Reload(ctx, t.kind)
	return nil
}

// View estado del modal.
func (f *Flow) View() dto.DeletePrompt {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pending == nil {
		return dto.DeletePrompt{Busy: f.busy}
	}
	return dto.DeletePrompt{
		Open:    true,
		Kind:    string(f.pending.kind),
		ID:      f.pending.id,
		Message: f.pending.message,
		Busy:    f.busy,
	}
}
