package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Manager sesiones vivas por id de cliente.
type Manager struct {
	deps Deps

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager construye el registro vacío.
func NewManager(deps Deps) *Manager {
	return &Manager{deps: deps, sessions: map[string]*Session{}}
}

// NewClientID id opaco para la cookie del navegador.
func NewClientID() string { return uuid.NewString() }

// Get devuelve la sesión de clientID, creándola (y arrancándola) si no existe.
// Un clientID vacío o que no es un UUID recibe uno nuevo.
func (m *Manager) Get(ctx context.Context, clientID string) *Session {
	if _, err := uuid.Parse(clientID); err != nil {
		clientID = NewClientID()
	} else {
		// Llega de la cookie; se guarda como clave del mapa.
		clientID = strings.Clone(clientID)
	}

	m.mu.Lock()
	s, ok := m.sessions[clientID]
	if !ok {
		s = New(clientID, m.deps)
		m.sessions[clientID] = s
	}
	m.mu.Unlock()

	if !ok {
		s.Start(ctx)
	}
	s.Touch()
	return s
}

// Len número de sesiones vivas.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep cierra las sesiones sin actividad desde hace más de maxIdle. Devuelve cuántas.
func (m *Manager) Sweep(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	m.mu.Lock()
	var stale []*Session
	for id, s := range m.sessions {
		if s.IdleSince().Before(cutoff) {
			stale = append(stale, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range stale {
		s.Close()
	}
	return len(stale)
}

// Close cierra todas las sesiones (apagado).
func (m *Manager) Close() {
	m.Sweep(-time.Hour)
}
