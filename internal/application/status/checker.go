// Package status comprueba si la API de inventario responde.
package status

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/stocksync-dashboard/internal/application/dto"
	"github.com/jhoicas/stocksync-dashboard/pkg/logger"
)

// ProbePath colección usada como sonda de conectividad.
const ProbePath = "/products"

const (
	LabelConnected    = "Connected"
	LabelDisconnected = "Disconnected"
	LabelUnknown      = "Checking..."
)

// Pinger lo implementa restapi.Client.
type Pinger interface {
	Ping(ctx context.Context, path string) error
}

// Checker guarda el último resultado para que las páginas no esperen a la red.
type Checker struct {
	pinger Pinger
	log    *logger.Logger
	now    func() time.Time

	mu   sync.RWMutex
	last dto.APIStatus
}

// NewChecker construye el chequeo; el estado inicial es "Checking...".
func NewChecker(pinger Pinger, log *logger.Logger) *Checker {
	if log == nil {
		log = logger.Nop()
	}
	return &Checker{
		pinger: pinger,
		log:    log.Component("status"),
		now:    time.Now,
		last:   dto.APIStatus{Label: LabelUnknown},
	}
}

// Check hace GET ProbePath y guarda el resultado.
func (c *Checker) Check(ctx context.Context) dto.APIStatus {
	err := c.pinger.Ping(ctx, ProbePath)
	st := dto.APIStatus{Connected: err == nil, Label: LabelConnected, CheckedAt: c.now().UTC().Format(time.RFC3339)}
	if err != nil {
		st.Label = LabelDisconnected
	}

	c.mu.Lock()
	changed := c.last.Connected != st.Connected || c.last.Label == LabelUnknown
	c.last = st
	c.mu.Unlock()

	if changed {
		ev := c.log.Info()
		if err != nil {
			ev = c.log.Warn().Err(err)
		}
		ev.Str("status", st.Label).Msg("estado de la API")
	}
	return st
}

// Last último estado conocido sin llamar a la red.
func (c *Checker) Last() dto.APIStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.last
}
