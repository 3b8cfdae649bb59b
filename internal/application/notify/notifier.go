// Package notify mantiene los avisos transitorios (toasts) de una sesión.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stocksync-dashboard/internal/application/dto"
)

// DefaultDuration vida de un aviso cuando no se configura otra.
const DefaultDuration = 5 * time.Second

// Severity nivel visual del aviso.
type Severity string

const (
	Success Severity = "success"
	Error   Severity = "error"
	Warning Severity = "warning"
	Info    Severity = "info"
)

// Handle identifica un aviso para descartarlo antes de que expire.
type Handle string

type entry struct {
	handle   Handle
	message  string
	severity Severity
	timer    *time.Timer
}

// Notifier lista de avisos activos. Varios avisos coexisten; descartar y expirar pasan
// por el mismo camino (remove).
type Notifier struct {
	mu       sync.Mutex
	items    []*entry
	duration time.Duration
}

// New construye el notificador; duration <= 0 usa DefaultDuration.
func New(duration time.Duration) *Notifier {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Notifier{duration: duration}
}

// Notify muestra message con la duración por defecto.
func (n *Notifier) Notify(message string, severity Severity) Handle {
	return n.NotifyFor(message, severity, n.duration)
}

// NotifyFor muestra message durante d (d <= 0 usa la duración por defecto).
func (n *Notifier) NotifyFor(message string, severity Severity, d time.Duration) Handle {
	if d <= 0 {
		d = n.duration
	}
	e := &entry{handle: Handle(uuid.NewString()), message: message, severity: severity}

	n.mu.Lock()
	n.items = append(n.items, e)
	e.timer = time.AfterFunc(d, func() { n.remove(e.handle) })
	n.mu.Unlock()
	return e.handle
}

// Dismiss retira el aviso. Devuelve false si ya no estaba (expirado o descartado).
func (n *Notifier) Dismiss(h Handle) bool {
	return n.remove(h)
}

func (n *Notifier) remove(h Handle) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, e := range n.items {
		if e.handle != h {
			continue
		}
		e.timer.Stop()
		n.items = append(n.items[:i], n.items[i+1:]...)
		return true
	}
	return false
}

// Active avisos vigentes, el más antiguo primero.
func (n *Notifier) Active() []dto.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]dto.Notification, 0, len(n.items))
	for _, e := range n.items {
		out = append(out, dto.Notification{ID: string(e.handle), Message: e.message, Severity: string(e.severity)})
	}
	return out
}

// Clear descarta todos los avisos y detiene sus temporizadores.
func (n *Notifier) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, e := range n.items {
		e.timer.Stop()
	}
	n.items = nil
}
