package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/infrastructure/metrics"
)

func TestMetrics_Contadores(t *testing.T) {
	m := metrics.New()

	m.Operation("update_stock")
	m.Operation("update_stock")
	m.ToastShown(entity.ToastError)
	m.SyncBatch("ok")
	m.Alerts([]entity.Alert{{Type: entity.AlertLow}, {Type: entity.AlertLow}, {Type: entity.AlertOut}})

	assert.Equal(t, 1, testutil.CollectAndCount(m.Registry(), "inventario_engine_operations_total"))
	assert.Equal(t, 2, testutil.CollectAndCount(m.Registry(), "inventario_stock_alerts"))
	assert.Equal(t, 1, testutil.CollectAndCount(m.Registry(), "inventario_toasts_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(m.Registry(), "inventario_sync_batches_total"))
}
