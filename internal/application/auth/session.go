package auth

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Inventario-stock/internal/application/inventory"
	"github.com/jhoicas/Inventario-stock/internal/application/ports"
	"github.com/jhoicas/Inventario-stock/internal/application/state"
	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
)

// StockEngine operaciones del motor que dispara la sesión.
type StockEngine interface {
	MergeSettings(patch entity.SettingsPatch)
	ApplyRemote(data entity.RemoteData) error
	Restore(st inventory.State)
	Reset()
}

// Notifier canal de notificaciones.
type Notifier interface {
	Show(message string, kind entity.ToastType)
}

// Manager casos de uso de sesión: login, logout e hidratación al arrancar.
// Estados: LoggedOut <-> LoggedIn, sin estado intermedio.
type Manager struct {
	mu      sync.RWMutex
	session entity.Session

	remote   ports.RemoteSyncClient
	tokens   repository.TokenStore
	store    *state.Store
	engine   StockEngine
	notifier Notifier
	log      zerolog.Logger

	onLogout []func()
}

// NewManager construye el gestor de sesión (inicia en LoggedOut).
func NewManager(
	remote ports.RemoteSyncClient,
	tokens repository.TokenStore,
	store *state.Store,
	engine StockEngine,
	notifier Notifier,
	log zerolog.Logger,
) *Manager {
	return &Manager{
		remote:   remote,
		tokens:   tokens,
		store:    store,
		engine:   engine,
		notifier: notifier,
		log:      log,
	}
}

// OnLogout registra una acción que se ejecuta durante el logout, antes de limpiar el almacén
// (el orquestador descarta ahí su lote pendiente).
func (m *Manager) OnLogout(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onLogout = append(m.onLogout, fn)
}

// Login valida los campos, intercambia credenciales y, si todo va bien, hidrata desde remoto.
// Cualquier fallo deja la sesión en LoggedOut; no hay reintento.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		m.notifier.Show("❌ Veuillez remplir tous les champs", entity.ToastError)
		return domain.ErrInvalidInput
	}

	token, err := m.remote.Login(ctx, email, password)
	if err != nil {
		m.log.Error().Err(err).Str("email", email).Msg("login rechazado")
		m.notifier.Show("❌ Échec de la connexion", entity.ToastError)
		return fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	if err := m.tokens.Set(ctx, token); err != nil {
		m.log.Error().Err(err).Msg("no se pudo guardar el token")
		m.notifier.Show("❌ Échec de la connexion", entity.ToastError)
		return fmt.Errorf("%w: guardar token: %v", domain.ErrStorage, err)
	}

	m.mu.Lock()
	m.session = entity.Session{IsAuthenticated: true, UserEmail: email, AuthToken: token}
	m.mu.Unlock()

	m.engine.MergeSettings(entity.SettingsPatch{UserEmail: &email})
	m.fetchRemote(ctx, token)
	m.log.Info().Str("email", email).Msg("sesión iniciada")
	m.notifier.Show("✅ Connexion réussie !", entity.ToastSuccess)
	return nil
}

// Logout reinicio duro: borra token, estado persistido y catálogo en memoria.
// Los fallos de almacenamiento solo se registran.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	email := m.session.UserEmail
	m.session = entity.Session{}
	for _, fn := range m.onLogout {
		fn()
	}
	if err := m.tokens.Delete(ctx); err != nil {
		m.log.Error().Err(err).Msg("no se pudo borrar el token")
	}
	if err := m.store.Clear(ctx); err != nil {
		m.log.Error().Err(err).Msg("no se pudo limpiar el almacén local")
	}
	m.mu.Unlock()

	m.engine.Reset()
	m.log.Info().Str("email", email).Msg("sesión cerrada")
	m.notifier.Show("👋 Déconnexion réussie", entity.ToastInfo)
}

// Hydrate restaura el estado persistido al arrancar. Con token guardado la sesión se
// considera autenticada aunque falte la clave auth, y se intenta un fetch remoto.
func (m *Manager) Hydrate(ctx context.Context) {
	loaded, err := m.store.Load(ctx)
	if err != nil {
		m.log.Error().Err(err).Msg("no se pudo leer el estado local")
	}
	token, hasToken, err := m.tokens.Get(ctx)
	if err != nil {
		m.log.Error().Err(err).Msg("no se pudo leer el token")
		hasToken = false
	}

	m.engine.Restore(inventory.State{
		Products:  loaded.Products,
		Suppliers: loaded.Suppliers,
		Settings:  loaded.Settings,
	})

	sess := entity.Session{}
	if loaded.Auth != nil {
		sess.IsAuthenticated = loaded.Auth.IsAuthenticated
		sess.UserEmail = loaded.Auth.UserEmail
	}
	if hasToken {
		sess.AuthToken = token
		if loaded.Auth == nil {
			sess.IsAuthenticated = true
		}
	}
	m.mu.Lock()
	m.session = sess
	m.mu.Unlock()

	m.log.Info().
		Bool("authenticated", sess.IsAuthenticated).
		Bool("token", hasToken).
		Msg("estado local restaurado")

	if hasToken {
		m.fetchRemote(ctx, token)
	}
}

// fetchRemote best-effort: los errores se registran y no llegan al usuario.
func (m *Manager) fetchRemote(ctx context.Context, token string) {
	data, err := m.remote.FetchData(ctx, token)
	if err != nil {
		m.log.Warn().Err(err).Msg("no se pudo obtener el estado remoto")
		return
	}
	if data == nil {
		return
	}
	if err := m.engine.ApplyRemote(*data); err != nil {
		m.log.Warn().Err(err).Msg("estado remoto descartado")
	}
}

// Session copia del estado de sesión.
func (m *Manager) Session() entity.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session
}

// Authenticated atajo para el middleware y el orquestador.
func (m *Manager) Authenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.IsAuthenticated
}

// Token token actual ("" si no hay).
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.AuthToken
}

// WithSession ejecuta fn con la sesión vigente bajo lock de lectura: un Logout concurrente
// espera a que fn termine, así nada se persiste después de limpiar el almacén.
func (m *Manager) WithSession(fn func(entity.Session)) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	fn(m.session)
}
