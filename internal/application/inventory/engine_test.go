package inventory_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-stock/internal/application/inventory"
	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
)

// ─── helpers ──────────────────────────────────────────────────────────────────

type recordingNotifier struct {
	toasts []entity.Toast
}

func (n *recordingNotifier) Show(message string, kind entity.ToastType) {
	n.toasts = append(n.toasts, entity.Toast{Message: message, Type: kind})
}

func (n *recordingNotifier) last() entity.Toast {
	if len(n.toasts) == 0 {
		return entity.Toast{}
	}
	return n.toasts[len(n.toasts)-1]
}

var fixedNow = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func newEngine(t *testing.T) (*inventory.Engine, *recordingNotifier) {
	t.Helper()
	n := &recordingNotifier{}
	e := inventory.NewEngine(n, zerolog.Nop(), inventory.WithClock(func() time.Time { return fixedNow }))
	return e, n
}

func product(id int64, supplier string, stock, threshold int, initialized bool) entity.Product {
	return entity.Product{
		ID:               id,
		Supplier:         supplier,
		EAN:              "ean",
		Name:             "Prod",
		CurrentStock:     stock,
		AlertThreshold:   threshold,
		StockInitialized: initialized,
		CreatedAt:        fixedNow,
	}
}

// ─── AddProducts ──────────────────────────────────────────────────────────────

func TestAddProducts_ProveedorRepetidoSeAgregaUnaVez(t *testing.T) {
	e, _ := newEngine(t)

	e.AddProducts([]entity.Product{product(1, "X", 0, 5, false), product(2, "X", 0, 5, false)})

	assert.Len(t, e.Products(), 2)
	assert.Equal(t, []string{"X"}, e.Suppliers())
}

func TestAddProducts_OrdenDeProveedoresPorPrimeraAparicion(t *testing.T) {
	e, _ := newEngine(t)

	e.AddProducts([]entity.Product{product(1, "Demo", 0, 5, false), product(2, "Other", 0, 5, false)})
	e.AddProducts([]entity.Product{product(3, "Other", 0, 5, false), product(4, "Zoo", 0, 5, false)})

	assert.Equal(t, []string{"Demo", "Other", "Zoo"}, e.Suppliers())
	ids := []int64{}
	for _, p := range e.Products() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int64{1, 2, 3, 4}, ids)
}

func TestAddProducts_NoDeduplicaProductos(t *testing.T) {
	e, _ := newEngine(t)
	p := product(1, "X", 0, 5, false)

	e.AddProducts([]entity.Product{p, p})

	assert.Len(t, e.Products(), 2)
}

// ─── UpdateStock ──────────────────────────────────────────────────────────────

func TestUpdateStock_SumaRecortadaPorPaso(t *testing.T) {
	e, _ := newEngine(t)
	e.AddProducts([]entity.Product{product(1, "X", 3, 2, true)})

	changes := []int{-5, 4, -1, 10, -20, 2}
	want := 3
	for _, c := range changes {
		e.UpdateStock(1, c, "")
		want = max(0, want+c)
	}

	got, ok := e.Product(1)
	require.True(t, ok)
	assert.Equal(t, want, got.CurrentStock)
	assert.Len(t, got.Movements, len(changes))
	assert.Equal(t, entity.ReasonRemove, got.Movements[0].Reason)
	assert.Equal(t, 0, got.Movements[0].NewStock)
	assert.Equal(t, entity.ReasonAdd, got.Movements[1].Reason)
}

func TestUpdateStock_EscenarioVentaAgotaYGeneraAlertaOut(t *testing.T) {
	e, _ := newEngine(t)
	e.AddProducts([]entity.Product{product(1, "X", 5, 5, true)})
	require.Equal(t, entity.AlertLow, e.Alerts()[0].Type)

	e.UpdateStock(1, -5, "sale")

	got, _ := e.Product(1)
	assert.Equal(t, 0, got.CurrentStock)
	require.Len(t, got.Movements, 1)
	assert.Equal(t, entity.StockMovement{Date: fixedNow, Change: -5, NewStock: 0, Reason: "sale"}, got.Movements[0])

	alerts := e.Alerts()
	require.Len(t, alerts, 1)
	assert.Equal(t, entity.AlertOut, alerts[0].Type)
	assert.Equal(t, int64(1), alerts[0].ProductID)
}

func TestUpdateStock_IdDesconocidoEsNoOp(t *testing.T) {
	e, _ := newEngine(t)
	e.AddProducts([]entity.Product{product(1, "X", 5, 5, true)})
	calls := 0
	e.OnChange(func(entity.Snapshot) { calls++ })

	e.UpdateStock(99, -1, "")
	e.UpdateProduct(99, entity.ProductPatch{})
	e.SetInitialStock(99, 4, 2)

	got, _ := e.Product(1)
	assert.Equal(t, 5, got.CurrentStock)
	assert.Empty(t, got.Movements)
	assert.Zero(t, calls)
}

// ─── SetInitialStock ──────────────────────────────────────────────────────────

func TestSetInitialStock_ReemplazaHistorial(t *testing.T) {
	e, _ := newEngine(t)
	e.AddProducts([]entity.Product{product(1, "X", 0, 5, false)})
	e.UpdateStock(1, 4, "")
	e.UpdateStock(1, -1, "")

	e.SetInitialStock(1, 12, 3)

	got, _ := e.Product(1)
	assert.Equal(t, 12, got.CurrentStock)
	assert.Equal(t, 3, got.AlertThreshold)
	assert.True(t, got.StockInitialized)
	require.Len(t, got.Movements, 1)
	assert.Equal(t, entity.StockMovement{Date: fixedNow, Change: 12, NewStock: 12, Reason: entity.ReasonInitial}, got.Movements[0])
}

func TestSetInitialStock_UmbralPorDefectoYCantidadNegativa(t *testing.T) {
	e, _ := newEngine(t)
	e.AddProducts([]entity.Product{product(1, "X", 0, 9, false)})

	e.SetInitialStock(1, -3, 0)

	got, _ := e.Product(1)
	assert.Equal(t, 0, got.CurrentStock)
	assert.Equal(t, entity.DefaultAlertThreshold, got.AlertThreshold)
	assert.Equal(t, entity.AlertOut, e.Alerts()[0].Type)
}

// ─── Alertas ──────────────────────────────────────────────────────────────────

func TestAlerts_CoincidenConLaClasificacion(t *testing.T) {
	e, _ := newEngine(t)
	e.AddProducts([]entity.Product{
		product(1, "X", 0, 5, true),   // out
		product(2, "X", 3, 5, true),   // low
		product(3, "X", 6, 5, true),   // sano
		product(4, "X", 0, 5, false),  // sin inicializar
		product(5, "X", 5, 5, true),   // low (límite)
	})

	alerts := e.Alerts()
	require.Len(t, alerts, 3)
	assert.Equal(t, entity.AlertLow, alerts[0].Type)
	assert.Equal(t, int64(2), alerts[0].ProductID)
	assert.Equal(t, int64(5), alerts[1].ProductID)
	assert.Equal(t, entity.AlertOut, alerts[2].Type)
	assert.Equal(t, int64(1), alerts[2].ProductID)
}

// ─── Proveedores ──────────────────────────────────────────────────────────────

func TestRemoveSupplier_ReasignaAAutreEsIdempotente(t *testing.T) {
	e, n := newEngine(t)
	e.AddProducts([]entity.Product{product(1, "X", 0, 5, false), product(2, "Y", 0, 5, false), product(3, "X", 0, 5, false)})

	e.RemoveSupplier("X")
	e.RemoveSupplier("X")

	for _, p := range e.Products() {
		assert.NotEqual(t, "X", p.Supplier)
	}
	got, _ := e.Product(1)
	assert.Equal(t, entity.SupplierOther, got.Supplier)
	assert.Equal(t, []string{"Y"}, e.Suppliers())
	assert.Equal(t, entity.Toast{Message: `✅ Fournisseur "X" supprimé`, Type: entity.ToastSuccess}, n.last())
}

func TestAddSupplier_IgnoraVacioYDuplicado(t *testing.T) {
	e, n := newEngine(t)

	e.AddSupplier("   ")
	e.AddSupplier("Acme")
	e.AddSupplier("Acme")

	assert.Equal(t, []string{"Acme"}, e.Suppliers())
	require.Len(t, n.toasts, 1)
	assert.Equal(t, `✅ Fournisseur "Acme" ajouté`, n.toasts[0].Message)
}

// ─── Settings ─────────────────────────────────────────────────────────────────

func TestUpdateSettings_MergeSuperficial(t *testing.T) {
	e, n := newEngine(t)
	company := "Animalerie"

	e.UpdateSettings(entity.SettingsPatch{CompanyName: &company})

	s := e.Settings()
	assert.Equal(t, "Animalerie", s.CompanyName)
	assert.True(t, s.EnableBarcodeScanner)
	assert.Equal(t, "orange", s.LowStockColor)
	assert.Equal(t, "✅ Paramètres mis à jour", n.last().Message)
}

// ─── Escaneo ──────────────────────────────────────────────────────────────────

func TestScanSale(t *testing.T) {
	e, n := newEngine(t)
	p := product(1, "X", 1, 5, true)
	p.EAN = "123"
	p.Name = "Jouet"
	e.AddProducts([]entity.Product{p})

	sold, err := e.ScanSale("123")
	require.NoError(t, err)
	assert.Equal(t, 0, sold.CurrentStock)
	assert.Equal(t, entity.ReasonScanSale, sold.Movements[0].Reason)
	assert.Equal(t, "✅ VENDU ! Jouet - Stock restant: 0", n.last().Message)

	_, err = e.ScanSale("123")
	assert.ErrorIs(t, err, domain.ErrOutOfStock)
	assert.Equal(t, entity.Toast{Message: "❌ RUPTURE DE STOCK! Jouet", Type: entity.ToastError}, n.last())

	_, err = e.ScanSale("999")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Equal(t, "❌ PRODUIT NON TROUVÉ - Code EAN: 999", n.last().Message)

	off := false
	e.MergeSettings(entity.SettingsPatch{EnableBarcodeScanner: &off})
	_, err = e.ScanSale("123")
	assert.ErrorIs(t, err, domain.ErrScannerDisabled)
}

// ─── Búsqueda y datos de ejemplo ──────────────────────────────────────────────

func TestLoadSampleDataYSearch(t *testing.T) {
	e, n := newEngine(t)

	e.LoadSampleData()

	assert.Len(t, e.Products(), 4)
	assert.Contains(t, e.Suppliers(), "Demo")
	assert.Equal(t, "✅ 4 produits d'exemple chargés avec succès !", n.last().Message)
	assert.Len(t, e.Alerts(), 2, "Pro Plan en low, Litière en out")

	res := e.Search("litiere")
	require.Len(t, res, 1)
	assert.Equal(t, int64(3), res[0].ID)

	assert.Len(t, e.Search("rayon"), 4)
	assert.Len(t, e.Search("541034"), 2)
	assert.Len(t, e.Search(""), 4)

	stats := e.Stats()
	assert.Equal(t, 4, stats.TotalProducts)
	assert.Equal(t, 1, stats.OutOfStock)
}

// ─── Copias, listeners y remoto ───────────────────────────────────────────────

func TestLecturasDevuelvenCopias(t *testing.T) {
	e, _ := newEngine(t)
	e.AddProducts([]entity.Product{product(1, "X", 2, 5, true)})
	e.UpdateStock(1, 1, "")

	ps := e.Products()
	ps[0].CurrentStock = 99
	ps[0].Movements[0].Change = 99

	got, _ := e.Product(1)
	assert.Equal(t, 3, got.CurrentStock)
	assert.Equal(t, 1, got.Movements[0].Change)
}

func TestOnChange_RecibeSnapshotPosterior(t *testing.T) {
	e, _ := newEngine(t)
	var snaps []entity.Snapshot
	e.OnChange(func(s entity.Snapshot) { snaps = append(snaps, s) })

	e.AddProducts([]entity.Product{product(1, "X", 2, 5, true)})
	e.UpdateStock(1, 3, "")

	require.Len(t, snaps, 2)
	assert.Equal(t, 5, snaps[1].Products[0].CurrentStock)
	assert.Equal(t, []string{"X"}, snaps[1].Suppliers)
}

func TestApplyRemote_ReemplazaYMezclaSettings(t *testing.T) {
	e, _ := newEngine(t)
	e.AddProducts([]entity.Product{product(1, "X", 2, 5, true)})
	remote := []entity.Product{product(7, "R", 0, 5, true)}
	suppliers := []string{"R"}

	err := e.ApplyRemote(entity.RemoteData{
		Products:  &remote,
		Suppliers: &suppliers,
		Settings:  json.RawMessage(`{"companyName":"Zoo"}`),
	})
	require.NoError(t, err)

	ps := e.Products()
	require.Len(t, ps, 1)
	assert.Equal(t, int64(7), ps[0].ID)
	assert.Equal(t, []string{"R"}, e.Suppliers())
	assert.Equal(t, "Zoo", e.Settings().CompanyName)
	assert.True(t, e.Settings().EnableBarcodeScanner)
	assert.Equal(t, entity.AlertOut, e.Alerts()[0].Type)
}

func TestApplyRemote_SettingsInvalidosNoAplicaNada(t *testing.T) {
	e, _ := newEngine(t)
	e.AddProducts([]entity.Product{product(1, "X", 2, 5, true)})
	remote := []entity.Product{}

	err := e.ApplyRemote(entity.RemoteData{Products: &remote, Settings: json.RawMessage(`"x"`)})

	assert.Error(t, err)
	assert.Len(t, e.Products(), 1)
}

func TestRestoreNoDisparaListenersYResetVacia(t *testing.T) {
	e, _ := newEngine(t)
	calls := 0
	e.OnChange(func(entity.Snapshot) { calls++ })
	products := []entity.Product{product(1, "X", 0, 5, true)}

	e.Restore(inventory.State{Products: &products})

	assert.Zero(t, calls)
	assert.Len(t, e.Alerts(), 1)

	e.Reset()
	assert.Empty(t, e.Products())
	assert.Empty(t, e.Suppliers())
	assert.Empty(t, e.Alerts())
	assert.Equal(t, entity.DefaultSettings(), e.Settings())
	assert.Equal(t, 1, calls)
}

func TestApplyRemote_StockNegativoSeRecortaYGeneraAlerta(t *testing.T) {
	e, _ := newEngine(t)
	remote := []entity.Product{product(1, "R", -3, 5, true)}

	require.NoError(t, e.ApplyRemote(entity.RemoteData{Products: &remote}))

	p, ok := e.Product(1)
	require.True(t, ok)
	assert.Zero(t, p.CurrentStock)
	require.Len(t, e.Alerts(), 1)
	assert.Equal(t, entity.AlertOut, e.Alerts()[0].Type)
	assert.Equal(t, -3, remote[0].CurrentStock, "la entrada no se modifica")
}

func TestRestore_StockNegativoSeRecorta(t *testing.T) {
	e, _ := newEngine(t)
	products := []entity.Product{product(1, "X", -1, 5, true), product(2, "X", 4, 5, true)}

	e.Restore(inventory.State{Products: &products})

	ps := e.Products()
	assert.Zero(t, ps[0].CurrentStock)
	assert.Equal(t, 4, ps[1].CurrentStock)
	alerts := e.Alerts()
	require.Len(t, alerts, 2)
	assert.Equal(t, entity.AlertLow, alerts[0].Type)
	assert.Equal(t, entity.AlertOut, alerts[1].Type)
}

func TestApplyRemote_MezclaSobreAjustesVigentes(t *testing.T) {
	e, _ := newEngine(t)
	company := "Local"
	e.UpdateSettings(entity.SettingsPatch{CompanyName: &company})

	require.NoError(t, e.ApplyRemote(entity.RemoteData{Settings: json.RawMessage(`{"lowStockColor":"yellow"}`)}))

	s := e.Settings()
	assert.Equal(t, "Local", s.CompanyName)
	assert.Equal(t, "yellow", s.LowStockColor)
}
