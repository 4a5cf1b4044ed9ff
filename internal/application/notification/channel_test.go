package notification_test

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-stock/internal/application/notification"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
)

// fakeScheduler captura los temporizadores para dispararlos a mano.
type fakeScheduler struct {
	delays []time.Duration
	fns    []func()
}

func (s *fakeScheduler) after(d time.Duration, f func()) {
	s.delays = append(s.delays, d)
	s.fns = append(s.fns, f)
}

type countingRecorder map[entity.ToastType]int

func (r countingRecorder) ToastShown(kind entity.ToastType) { r[kind]++ }

func TestChannel_ShowYExpira(t *testing.T) {
	sched := &fakeScheduler{}
	ch := notification.NewChannel(zerolog.Nop(), notification.WithScheduler(sched.after))

	ch.Show("✅ ok", entity.ToastSuccess)

	got, ok := ch.Current()
	require.True(t, ok)
	assert.Equal(t, entity.Toast{Message: "✅ ok", Type: entity.ToastSuccess}, got)
	require.Len(t, sched.fns, 1)
	assert.Equal(t, notification.DefaultTTL, sched.delays[0])

	sched.fns[0]()
	_, ok = ch.Current()
	assert.False(t, ok, "el toast debe borrarse al expirar")
}

func TestChannel_NuevoMensajeReemplazaYTemporizadorViejoNoBorra(t *testing.T) {
	sched := &fakeScheduler{}
	ch := notification.NewChannel(zerolog.Nop(), notification.WithScheduler(sched.after))

	ch.Show("primero", entity.ToastInfo)
	ch.Show("segundo", entity.ToastError)

	got, _ := ch.Current()
	assert.Equal(t, "segundo", got.Message)

	// El temporizador del primero dispara: no debe borrar el segundo.
	sched.fns[0]()
	got, ok := ch.Current()
	require.True(t, ok)
	assert.Equal(t, "segundo", got.Message)

	sched.fns[1]()
	_, ok = ch.Current()
	assert.False(t, ok)
}

func TestChannel_TipoVacioEsSuccessYRegistraMetrica(t *testing.T) {
	sched := &fakeScheduler{}
	rec := countingRecorder{}
	ch := notification.NewChannel(zerolog.Nop(),
		notification.WithScheduler(sched.after),
		notification.WithTTL(time.Second),
		notification.WithRecorder(rec),
	)

	ch.Show("hola", "")

	got, _ := ch.Current()
	assert.Equal(t, entity.ToastSuccess, got.Type)
	assert.Equal(t, time.Second, sched.delays[0])
	assert.Equal(t, 1, rec[entity.ToastSuccess])
}
