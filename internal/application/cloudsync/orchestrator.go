// Package cloudsync persiste y sincroniza el estado tras cada cambio mientras hay sesión.
package cloudsync

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Inventario-stock/internal/application/ports"
	"github.com/jhoicas/Inventario-stock/internal/application/state"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
)

// Resultados de un lote, usados como etiqueta de métricas.
const (
	OutcomeOK           = "ok"
	OutcomePersistError = "persist_error"
	OutcomePushError    = "push_error"
	OutcomeSkipped      = "skipped"
)

// SessionSource sesión vigente (auth.Manager).
type SessionSource interface {
	Authenticated() bool
	WithSession(fn func(entity.Session))
}

// Recorder métricas de lotes.
type Recorder interface {
	SyncBatch(outcome string)
}

// Orchestrator un único worker; las ráfagas de cambios se condensan en el último snapshot.
// Entrega como máximo una vez por lote, sin reintentos; gana el último que escribe.
type Orchestrator struct {
	session  SessionSource
	store    *state.Store
	remote   ports.RemoteSyncClient
	recorder Recorder
	log      zerolog.Logger

	mu      sync.Mutex
	pending *entity.Snapshot
	wake    chan struct{}

	procMu sync.Mutex
}

// NewOrchestrator construye el orquestador. recorder puede ser nil.
func NewOrchestrator(session SessionSource, store *state.Store, remote ports.RemoteSyncClient, recorder Recorder, log zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		session:  session,
		store:    store,
		remote:   remote,
		recorder: recorder,
		log:      log,
		wake:     make(chan struct{}, 1),
	}
}

// Notify es el listener de cambios del motor. Nunca bloquea.
func (o *Orchestrator) Notify(snap entity.Snapshot) {
	if !o.session.Authenticated() {
		return
	}
	o.mu.Lock()
	o.pending = &snap
	o.mu.Unlock()
	select {
	case o.wake <- struct{}{}:
	default:
	}
}

// Run procesa lotes hasta que ctx se cancela.
func (o *Orchestrator) Run(ctx context.Context) {
	o.log.Info().Msg("worker de sincronización iniciado")
	for {
		select {
		case <-ctx.Done():
			o.log.Info().Msg("worker de sincronización detenido")
			return
		case <-o.wake:
			o.process(ctx)
		}
	}
}

// Flush procesa de forma síncrona el lote pendiente, si lo hay.
func (o *Orchestrator) Flush(ctx context.Context) {
	o.process(ctx)
}

// Discard descarta el lote pendiente sin procesarlo (logout): el snapshot de una sesión
// cerrada nunca se empuja con el token de la siguiente.
func (o *Orchestrator) Discard() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.pending != nil {
		o.log.Debug().Msg("lote pendiente descartado")
	}
	o.pending = nil
}

// Pending indica si hay un lote sin procesar.
func (o *Orchestrator) Pending() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.pending != nil
}

func (o *Orchestrator) process(ctx context.Context) {
	o.procMu.Lock()
	defer o.procMu.Unlock()

	o.mu.Lock()
	snap := o.pending
	o.pending = nil
	o.mu.Unlock()
	if snap == nil {
		return
	}

	batchID := uuid.NewString()
	logger := o.log.With().Str("batch_id", batchID).Int("products", len(snap.Products)).Logger()

	var (
		active  bool
		token   string
		saveErr error
	)
	o.session.WithSession(func(s entity.Session) {
		if !s.IsAuthenticated {
			return
		}
		active = true
		token = s.AuthToken
		saveErr = o.store.Save(ctx, state.AuthRecord{IsAuthenticated: true, UserEmail: s.UserEmail}, *snap)
	})
	if !active {
		logger.Debug().Msg("lote descartado: sesión cerrada")
		o.record(OutcomeSkipped)
		return
	}
	if saveErr != nil {
		logger.Error().Err(saveErr).Msg("no se pudo persistir el estado local")
	}

	if token == "" {
		if saveErr != nil {
			o.record(OutcomePersistError)
		} else {
			o.record(OutcomeOK)
		}
		return
	}
	if err := o.remote.Push(ctx, token, *snap); err != nil {
		logger.Warn().Err(err).Msg("push de sincronización fallido")
		o.record(OutcomePushError)
		return
	}
	if saveErr != nil {
		o.record(OutcomePersistError)
		return
	}
	logger.Debug().Msg("lote sincronizado")
	o.record(OutcomeOK)
}

func (o *Orchestrator) record(outcome string) {
	if o.recorder != nil {
		o.recorder.SyncBatch(outcome)
	}
}
