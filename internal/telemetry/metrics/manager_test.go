package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager(t *testing.T) {
	m, reg := NewTestManagerAndRegistry()

	m.CounterSetsLogged.Inc()
	m.CounterSetsLogged.Inc()
	m.CounterWorkoutsFinished.With(prometheus.Labels{"track": "novato"}).Inc()
	m.GaugeLifeSignal.Set(1)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.CounterSetsLogged))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CounterWorkoutsFinished.WithLabelValues("novato")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.CounterWorkoutsFinished.WithLabelValues("avanzado")))

	families, err := reg.Gather()
	require.NoError(t, err)

	byName := map[string]*dto.MetricFamily{}
	for _, f := range families {
		byName[f.GetName()] = f
	}
	require.Contains(t, byName, "fitjournal_test_server_sets_logged")
	assert.Equal(t, dto.MetricType_COUNTER, byName["fitjournal_test_server_sets_logged"].GetType())
	require.Contains(t, byName, "fitjournal_test_server_life_signal")
	assert.Equal(t, float64(1), byName["fitjournal_test_server_life_signal"].GetMetric()[0].GetGauge().GetValue())
}

func TestNewManager_TwoRegistries(t *testing.T) {
	// each manager registers on its own registry, no duplicate registration panics
	assert.NotPanics(t, func() {
		NewTestManager()
		NewTestManager()
	})
}

func TestSetupPrometheus(t *testing.T) {
	extra := prometheus.NewCounter(prometheus.CounterOpts{Name: "extra_collector_total", Help: "extra"})
	reg := SetupPrometheus(extra)
	extra.Inc()

	families, err := reg.Gather()
	require.NoError(t, err)
	found := false
	for _, f := range families {
		if f.GetName() == "extra_collector_total" {
			found = true
		}
	}
	assert.True(t, found)
}
