package inventory

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/inventory"
)

// State estado restaurable; nil = conservar el valor actual.
type State struct {
	Products  *[]entity.Product
	Suppliers *[]string
	Settings  *entity.AppSettings
}

// Engine motor de stock: dueño exclusivo de productos, proveedores y ajustes.
// Las alertas se recalculan con inventory.DeriveAlerts después de cada mutación.
// Los ids desconocidos son no-ops silenciosos.
type Engine struct {
	mu        sync.RWMutex
	products  []entity.Product
	suppliers []string
	settings  entity.AppSettings
	alerts    []entity.Alert

	listeners []ChangeListener
	notifier  Notifier
	recorder  Recorder
	now       func() time.Time
	log       zerolog.Logger
}

// Option configura el motor.
type Option func(*Engine)

// WithClock reemplaza time.Now (tests).
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithRecorder registra métricas por operación.
func WithRecorder(r Recorder) Option {
	return func(e *Engine) { e.recorder = r }
}

// NewEngine construye el motor con catálogo vacío y ajustes por defecto.
func NewEngine(notifier Notifier, log zerolog.Logger, opts ...Option) *Engine {
	e := &Engine{
		products:  []entity.Product{},
		suppliers: []string{},
		settings:  entity.DefaultSettings(),
		alerts:    []entity.Alert{},
		notifier:  notifier,
		now:       time.Now,
		log:       log,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// OnChange registra un listener de cambios (orquestador de sincronización).
func (e *Engine) OnChange(l ChangeListener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, l)
}

// mutate ejecuta fn bajo el lock de escritura; si hubo cambio recalcula alertas y avisa a los listeners.
func (e *Engine) mutate(op string, fn func() bool) bool {
	e.mu.Lock()
	if !fn() {
		e.mu.Unlock()
		return false
	}
	e.alerts = inventory.DeriveAlerts(e.products)
	snap := e.snapshotLocked()
	alerts := slices.Clone(e.alerts)
	listeners := slices.Clone(e.listeners)
	e.mu.Unlock()

	if e.recorder != nil {
		e.recorder.Operation(op)
		e.recorder.Alerts(alerts)
	}
	for _, l := range listeners {
		l(snap)
	}
	return true
}

func (e *Engine) notify(message string, kind entity.ToastType) {
	if e.notifier != nil {
		e.notifier.Show(message, kind)
	}
}

func (e *Engine) indexOf(id int64) int {
	for i := range e.products {
		if e.products[i].ID == id {
			return i
		}
	}
	return -1
}

// ── Mutaciones ────────────────────────────────────────────────────────────────

// AddProducts agrega productos al final del catálogo y registra los proveedores nuevos
// en orden de primera aparición. No deduplica productos.
func (e *Engine) AddProducts(products []entity.Product) {
	if len(products) == 0 {
		return
	}
	e.mutate("add_products", func() bool {
		for _, p := range products {
			c := p.Clone()
			c.CurrentStock = max(0, c.CurrentStock)
			e.products = append(e.products, c)
			if !slices.Contains(e.suppliers, p.Supplier) {
				e.suppliers = append(e.suppliers, p.Supplier)
			}
		}
		return true
	})
	e.log.Info().Int("count", len(products)).Msg("productos agregados")
}

// UpdateProduct mezcla los campos del parche en el producto id.
func (e *Engine) UpdateProduct(id int64, patch entity.ProductPatch) {
	e.mutate("update_product", func() bool {
		i := e.indexOf(id)
		if i < 0 {
			return false
		}
		patch.Apply(&e.products[i])
		return true
	})
}

// UpdateStock aplica change al stock (recortado a cero) y agrega un movimiento.
// reason vacío toma "Ajout" o "Retrait" según el signo.
func (e *Engine) UpdateStock(id int64, change int, reason string) {
	e.mutate("update_stock", func() bool {
		i := e.indexOf(id)
		if i < 0 {
			return false
		}
		e.applyChangeLocked(i, change, reason)
		return true
	})
}

func (e *Engine) applyChangeLocked(i, change int, reason string) {
	if reason == "" {
		reason = entity.DefaultReason(change)
	}
	p := &e.products[i]
	newStock := inventory.ApplyChange(p.CurrentStock, change)
	p.Movements = append(p.Movements, entity.StockMovement{
		Date:     e.now(),
		Change:   change,
		NewStock: newStock,
		Reason:   reason,
	})
	p.CurrentStock = newStock
}

// SetInitialStock (re)inicializa el stock: fija cantidad y umbral y REEMPLAZA el historial
// por un único movimiento "Stock initial". threshold <= 0 toma DefaultAlertThreshold.
func (e *Engine) SetInitialStock(id int64, quantity, threshold int) {
	if threshold <= 0 {
		threshold = entity.DefaultAlertThreshold
	}
	quantity = max(0, quantity)
	e.mutate("set_initial_stock", func() bool {
		i := e.indexOf(id)
		if i < 0 {
			return false
		}
		p := &e.products[i]
		p.CurrentStock = quantity
		p.AlertThreshold = threshold
		p.StockInitialized = true
		p.Movements = []entity.StockMovement{{
			Date:     e.now(),
			Change:   quantity,
			NewStock: quantity,
			Reason:   entity.ReasonInitial,
		}}
		return true
	})
}

// AddSupplier agrega un proveedor si no existe. Nombres vacíos se ignoran.
func (e *Engine) AddSupplier(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	added := e.mutate("add_supplier", func() bool {
		if slices.Contains(e.suppliers, name) {
			return false
		}
		e.suppliers = append(e.suppliers, name)
		return true
	})
	if added {
		e.notify(fmt.Sprintf("✅ Fournisseur \"%s\" ajouté", name), entity.ToastSuccess)
	}
}

// RemoveSupplier reasigna los productos del proveedor a "Autre" y lo elimina de la lista. Idempotente.
func (e *Engine) RemoveSupplier(name string) {
	e.mutate("remove_supplier", func() bool {
		changed := false
		for i := range e.products {
			if e.products[i].Supplier == name {
				e.products[i].Supplier = entity.SupplierOther
				changed = true
			}
		}
		if idx := slices.Index(e.suppliers, name); idx >= 0 {
			e.suppliers = slices.Delete(e.suppliers, idx, idx+1)
			changed = true
		}
		return changed
	})
	e.notify(fmt.Sprintf("✅ Fournisseur \"%s\" supprimé", name), entity.ToastSuccess)
}

// UpdateSettings merge superficial de ajustes con notificación al usuario.
func (e *Engine) UpdateSettings(patch entity.SettingsPatch) {
	e.MergeSettings(patch)
	e.notify("✅ Paramètres mis à jour", entity.ToastSuccess)
}

// MergeSettings merge superficial sin notificación (uso interno de la sesión).
func (e *Engine) MergeSettings(patch entity.SettingsPatch) {
	e.mutate("update_settings", func() bool {
		patch.Apply(&e.settings)
		return true
	})
}

// ScanSale descuenta una unidad del producto con el EAN escaneado.
func (e *Engine) ScanSale(ean string) (entity.Product, error) {
	var (
		sold    entity.Product
		scanErr error
	)
	e.mutate("scan_sale", func() bool {
		if !e.settings.EnableBarcodeScanner {
			scanErr = domain.ErrScannerDisabled
			return false
		}
		i := slices.IndexFunc(e.products, func(p entity.Product) bool { return p.EAN == ean })
		if i < 0 {
			scanErr = domain.ErrProductNotFound
			return false
		}
		if e.products[i].CurrentStock <= 0 {
			sold = e.products[i].Clone()
			scanErr = domain.ErrOutOfStock
			return false
		}
		e.applyChangeLocked(i, -1, entity.ReasonScanSale)
		sold = e.products[i].Clone()
		return true
	})

	switch scanErr {
	case nil:
		e.notify(fmt.Sprintf("✅ VENDU ! %s - Stock restant: %d", sold.Name, sold.CurrentStock), entity.ToastSuccess)
		return sold, nil
	case domain.ErrOutOfStock:
		e.notify(fmt.Sprintf("❌ RUPTURE DE STOCK! %s", sold.Name), entity.ToastError)
	case domain.ErrProductNotFound:
		e.notify(fmt.Sprintf("❌ PRODUIT NON TROUVÉ - Code EAN: %s", ean), entity.ToastError)
	case domain.ErrScannerDisabled:
		e.notify("❌ Scanner désactivé dans les paramètres", entity.ToastError)
	}
	return sold, scanErr
}

// LoadSampleData reemplaza el catálogo por los productos de demostración.
func (e *Engine) LoadSampleData() {
	samples := sampleProducts(e.now())
	e.mutate("load_sample_data", func() bool {
		e.products = samples
		if !slices.Contains(e.suppliers, sampleSupplier) {
			e.suppliers = append(e.suppliers, sampleSupplier)
		}
		return true
	})
	e.notify(fmt.Sprintf("✅ %d produits d'exemple chargés avec succès !", len(samples)), entity.ToastSuccess)
}

// Restore carga el estado persistido localmente. No dispara listeners: el estado ya está guardado.
func (e *Engine) Restore(state State) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if state.Products != nil {
		e.products = cloneClamped(*state.Products)
	}
	if state.Suppliers != nil {
		e.suppliers = slices.Clone(*state.Suppliers)
	}
	if state.Settings != nil {
		e.settings = *state.Settings
	}
	e.alerts = inventory.DeriveAlerts(e.products)
}

// ApplyRemote aplica la respuesta del servidor: products/suppliers reemplazan, settings se mezcla.
// Si settings no es decodificable no se aplica nada. El stock remoto negativo se recorta a cero.
func (e *Engine) ApplyRemote(data entity.RemoteData) error {
	hasSettings := data.HasSettings()
	if hasSettings {
		var check entity.AppSettings
		if err := json.Unmarshal(data.Settings, &check); err != nil {
			return fmt.Errorf("decodificar settings remotos: %w", err)
		}
	}
	if data.Products == nil && data.Suppliers == nil && !hasSettings {
		return nil
	}
	var applyErr error
	e.mutate("apply_remote", func() bool {
		if hasSettings {
			// El merge se hace sobre los ajustes vigentes bajo el lock.
			merged := e.settings
			if err := json.Unmarshal(data.Settings, &merged); err != nil {
				applyErr = fmt.Errorf("decodificar settings remotos: %w", err)
				return false
			}
			e.settings = merged
		}
		if data.Products != nil {
			e.products = cloneClamped(*data.Products)
		}
		if data.Suppliers != nil {
			e.suppliers = slices.Clone(*data.Suppliers)
		}
		return true
	})
	return applyErr
}

// Reset vuelve al estado inicial (logout).
func (e *Engine) Reset() {
	e.mutate("reset", func() bool {
		e.products = []entity.Product{}
		e.suppliers = []string{}
		e.settings = entity.DefaultSettings()
		return true
	})
}

// ── Lecturas (siempre copias) ─────────────────────────────────────────────────

// Products devuelve una copia del catálogo.
func (e *Engine) Products() []entity.Product {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return cloneProducts(e.products)
}

// Product busca un producto por id.
func (e *Engine) Product(id int64) (entity.Product, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if i := e.indexOf(id); i >= 0 {
		return e.products[i].Clone(), true
	}
	return entity.Product{}, false
}

// Suppliers devuelve la lista ordenada de proveedores.
func (e *Engine) Suppliers() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Clone(e.suppliers)
}

// Settings devuelve los ajustes actuales.
func (e *Engine) Settings() entity.AppSettings {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.settings
}

// Alerts devuelve el conjunto de alertas vigente.
func (e *Engine) Alerts() []entity.Alert {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Clone(e.alerts)
}

// Stats indicadores del tablero.
func (e *Engine) Stats() inventory.Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return inventory.ComputeStats(e.products)
}

// Snapshot estado completo para persistir o sincronizar.
func (e *Engine) Snapshot() entity.Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() entity.Snapshot {
	return entity.Snapshot{
		Products:  cloneProducts(e.products),
		Suppliers: slices.Clone(e.suppliers),
		Settings:  e.settings,
	}
}

// cloneClamped copia productos de origen externo recortando el stock negativo a cero.
func cloneClamped(in []entity.Product) []entity.Product {
	out := cloneProducts(in)
	for i := range out {
		out[i].CurrentStock = max(0, out[i].CurrentStock)
	}
	return out
}

func cloneProducts(in []entity.Product) []entity.Product {
	out := make([]entity.Product, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}
