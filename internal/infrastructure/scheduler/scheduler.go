// Package scheduler ejecuta tareas periódicas en segundo plano con robfig/cron.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/stocksync-dashboard/pkg/logger"
)

// jobTimeout límite de cada ejecución.
const jobTimeout = 10 * time.Second

// Scheduler envoltorio de cron.Cron. Una ejecución que sigue en curso hace que la
// siguiente se salte.
type Scheduler struct {
	cron *cron.Cron
	log  *logger.Logger
}

// New construye el scheduler. Acepta expresiones de 5 campos y descriptores ("@every 30s").
func New(log *logger.Logger) *Scheduler {
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("scheduler")
	return &Scheduler{
		cron: cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		log:  log,
	}
}

// Add registra run bajo spec.
func (s *Scheduler) Add(name, spec string, run func(ctx context.Context)) error {
	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		start := time.Now()
		run(ctx)
		s.log.Debug().Str("job", name).Dur("elapsed", time.Since(start)).Msg("tarea ejecutada")
	})
	if err != nil {
		return fmt.Errorf("scheduler: spec %q de %s: %w", spec, name, err)
	}
	s.log.Info().Str("job", name).Str("spec", spec).Msg("tarea programada")
	return nil
}

// Start arranca el planificador en su propia goroutine.
func (s *Scheduler) Start() { s.cron.Start() }

// Stop detiene el planificador y espera a las tareas en curso hasta que ctx expire.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.log.Warn().Msg("scheduler: tareas en curso al apagar")
	}
}
