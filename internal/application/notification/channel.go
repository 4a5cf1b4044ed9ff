// Package notification implementa el canal de notificaciones efímeras (toast de un solo slot).
package notification

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
)

// DefaultTTL tiempo que un toast permanece visible.
const DefaultTTL = 4 * time.Second

// Recorder recibe cada toast mostrado (métricas).
type Recorder interface {
	ToastShown(kind entity.ToastType)
}

// Channel slot único: un nuevo mensaje reemplaza al actual sin cola.
// El temporizador de un mensaje reemplazado no borra al siguiente (contador de generación).
type Channel struct {
	mu         sync.RWMutex
	current    *entity.Toast
	generation uint64
	ttl        time.Duration
	after      func(d time.Duration, f func())
	recorder   Recorder
	log        zerolog.Logger
}

// Option configura el canal.
type Option func(*Channel)

// WithTTL cambia la duración de visibilidad.
func WithTTL(ttl time.Duration) Option {
	return func(c *Channel) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithScheduler reemplaza time.AfterFunc (tests deterministas).
func WithScheduler(after func(d time.Duration, f func())) Option {
	return func(c *Channel) { c.after = after }
}

// WithRecorder registra cada toast en métricas.
func WithRecorder(r Recorder) Option {
	return func(c *Channel) { c.recorder = r }
}

// NewChannel construye el canal.
func NewChannel(log zerolog.Logger, opts ...Option) *Channel {
	c := &Channel{
		ttl: DefaultTTL,
		after: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
		log: log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Show reemplaza el mensaje actual y programa su borrado automático.
func (c *Channel) Show(message string, kind entity.ToastType) {
	if kind == "" {
		kind = entity.ToastSuccess
	}
	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.current = &entity.Toast{Message: message, Type: kind}
	c.mu.Unlock()

	c.log.Debug().Str("type", string(kind)).Str("message", message).Msg("notificación")
	if c.recorder != nil {
		c.recorder.ToastShown(kind)
	}
	c.after(c.ttl, func() { c.expire(gen) })
}

func (c *Channel) expire(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation == gen {
		c.current = nil
	}
}

// Current devuelve el toast visible, si hay uno.
func (c *Channel) Current() (entity.Toast, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.current == nil {
		return entity.Toast{}, false
	}
	return *c.current, true
}
