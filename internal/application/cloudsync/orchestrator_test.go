package cloudsync_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-stock/internal/application/cloudsync"
	"github.com/jhoicas/Inventario-stock/internal/application/state"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
	"github.com/jhoicas/Inventario-stock/internal/infrastructure/memory"
)

// ─── Fakes ────────────────────────────────────────────────────────────────────

type remoteMock struct {
	mock.Mock
}

func (m *remoteMock) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *remoteMock) FetchData(ctx context.Context, token string) (*entity.RemoteData, error) {
	args := m.Called(ctx, token)
	return nil, args.Error(1)
}

func (m *remoteMock) Push(ctx context.Context, token string, snapshot entity.Snapshot) error {
	return m.Called(ctx, token, snapshot).Error(0)
}

type fakeSession struct {
	mu sync.RWMutex
	s  entity.Session
}

func (f *fakeSession) set(s entity.Session) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.s = s
}

func (f *fakeSession) Authenticated() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.s.IsAuthenticated
}

func (f *fakeSession) WithSession(fn func(entity.Session)) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	fn(f.s)
}

type outcomes struct {
	mu   sync.Mutex
	list []string
}

func (o *outcomes) SyncBatch(outcome string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.list = append(o.list, outcome)
}

func (o *outcomes) all() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.list...)
}

func snapshot(names ...string) entity.Snapshot {
	s := entity.Snapshot{Suppliers: []string{"X"}, Settings: entity.DefaultSettings()}
	for i, n := range names {
		s.Products = append(s.Products, entity.Product{ID: int64(i + 1), Name: n, Supplier: "X"})
	}
	return s
}

func newOrchestrator(t *testing.T) (*cloudsync.Orchestrator, *fakeSession, *remoteMock, *memory.KVStore, *outcomes) {
	t.Helper()
	sess := &fakeSession{}
	remote := &remoteMock{}
	kv := memory.NewKVStore()
	rec := &outcomes{}
	o := cloudsync.NewOrchestrator(sess, state.NewStore(kv, zerolog.Nop()), remote, rec, zerolog.Nop())
	return o, sess, remote, kv, rec
}

// ─── Tests ────────────────────────────────────────────────────────────────────

func TestNotify_SinSesionNoEncola(t *testing.T) {
	o, _, remote, kv, _ := newOrchestrator(t)

	o.Notify(snapshot("A"))
	o.Flush(context.Background())

	assert.False(t, o.Pending())
	assert.Zero(t, kv.Len())
	remote.AssertNotCalled(t, "Push", mock.Anything, mock.Anything, mock.Anything)
}

func TestFlush_PersisteYEmpujaElUltimoSnapshot(t *testing.T) {
	o, sess, remote, kv, rec := newOrchestrator(t)
	sess.set(entity.Session{IsAuthenticated: true, UserEmail: "a@b.com", AuthToken: "tok"})
	last := snapshot("A", "B")
	remote.On("Push", mock.Anything, "tok", last).Return(nil).Once()

	o.Notify(snapshot("A"))
	o.Notify(last)
	o.Flush(context.Background())

	remote.AssertExpectations(t)
	assert.Equal(t, 4, kv.Len())
	raw, _, _ := kv.Get(context.Background(), repository.KeyAuth)
	assert.JSONEq(t, `{"isAuthenticated":true,"userEmail":"a@b.com"}`, raw)
	assert.Equal(t, []string{cloudsync.OutcomeOK}, rec.all())
}

func TestFlush_PushFallidoSoloSeRegistra(t *testing.T) {
	o, sess, remote, kv, rec := newOrchestrator(t)
	sess.set(entity.Session{IsAuthenticated: true, AuthToken: "tok"})
	remote.On("Push", mock.Anything, "tok", mock.Anything).Return(errors.New("503"))

	o.Notify(snapshot("A"))
	o.Flush(context.Background())

	assert.Equal(t, 4, kv.Len(), "el estado local se guarda aunque falle el push")
	assert.Equal(t, []string{cloudsync.OutcomePushError}, rec.all())
	assert.False(t, o.Pending(), "sin reintentos")
}

func TestFlush_SinTokenSoloPersiste(t *testing.T) {
	o, sess, remote, kv, rec := newOrchestrator(t)
	sess.set(entity.Session{IsAuthenticated: true, UserEmail: "a@b.com"})

	o.Notify(snapshot("A"))
	o.Flush(context.Background())

	assert.Equal(t, 4, kv.Len())
	remote.AssertNotCalled(t, "Push", mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, []string{cloudsync.OutcomeOK}, rec.all())
}

func TestFlush_LoteDescartadoTrasLogout(t *testing.T) {
	o, sess, remote, kv, rec := newOrchestrator(t)
	sess.set(entity.Session{IsAuthenticated: true, AuthToken: "tok"})
	o.Notify(snapshot("A"))

	sess.set(entity.Session{})
	o.Flush(context.Background())

	assert.Zero(t, kv.Len())
	remote.AssertNotCalled(t, "Push", mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, []string{cloudsync.OutcomeSkipped}, rec.all())
}

func TestRun_ProcesaEnSegundoPlano(t *testing.T) {
	o, sess, remote, _, rec := newOrchestrator(t)
	sess.set(entity.Session{IsAuthenticated: true, AuthToken: "tok"})
	remote.On("Push", mock.Anything, "tok", mock.Anything).Return(nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		o.Run(ctx)
		close(done)
	}()

	o.Notify(snapshot("A"))

	assert.Eventually(t, func() bool { return len(rec.all()) == 1 }, 2*time.Second, 10*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		require.Fail(t, "Run no terminó al cancelar el contexto")
	}
}

func TestDiscard_LoteDeSesionCerradaNoSeEmpujaConNuevoToken(t *testing.T) {
	o, sess, remote, kv, rec := newOrchestrator(t)
	sess.set(entity.Session{IsAuthenticated: true, AuthToken: "tokA"})
	o.Notify(snapshot("catalogo-de-A"))

	o.Discard()
	sess.set(entity.Session{IsAuthenticated: true, AuthToken: "tokB"})
	o.Flush(context.Background())

	assert.False(t, o.Pending())
	assert.Zero(t, kv.Len())
	assert.Empty(t, rec.all())
	remote.AssertNotCalled(t, "Push", mock.Anything, mock.Anything, mock.Anything)
}
