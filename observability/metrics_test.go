package observability

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/lucasjlepore/ftracker"
)

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()

	m.RecordProcessed("RUN")
	m.RecordProcessed("RUN")
	m.RecordProcessed("SWM")

	_, unknown := ftracker.ReadPackage("XYZ", nil)
	_, mismatch := ftracker.ReadPackage("RUN", []float64{1})
	m.RecordDispatchError(unknown)
	m.RecordDispatchError(mismatch)
	m.RecordDispatchError(errors.New("boom"))

	require.Equal(t, 2.0, testutil.ToFloat64(m.processed.WithLabelValues("RUN")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.processed.WithLabelValues("SWM")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.dispatchErrors.WithLabelValues("unknown_activity")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.dispatchErrors.WithLabelValues("argument_count")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.dispatchErrors.WithLabelValues("other")))

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	require.Len(t, families, 3)
}

func TestMetricsRecordRunIgnoresZeroTime(t *testing.T) {
	m := NewMetrics()
	m.RecordRun(time.Time{})
	require.Equal(t, 0.0, testutil.ToFloat64(m.lastRun))

	ts := time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC)
	m.RecordRun(ts)
	require.Equal(t, float64(ts.Unix()), testutil.ToFloat64(m.lastRun))
}

func TestMetricsWriteTextfile(t *testing.T) {
	m := NewMetrics()
	m.RecordProcessed("WLK")

	path := filepath.Join(t.TempDir(), "ftracker.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `ftracker_packages_processed_total{code="WLK"} 1`)
}

func TestErrorKindWrapped(t *testing.T) {
	_, err := ftracker.Process([]ftracker.Package{{Code: "BIKE"}}, false)
	require.Equal(t, "unknown_activity", ErrorKind(err))
}
