// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package metrics

import (
	"errors"
	"net/http"
	"sync"

	"github.com/ethereum/go-ethereum/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tunes"

// InitializePrometheusMetrics switches the process to the prometheus backend.
// Meters created before the switch stay no-ops.
func InitializePrometheusMetrics() {
	// don't allow for reset
	if _, ok := metrics.(*prometheusMetrics); !ok {
		metrics = &prometheusMetrics{}
	}
}

// meters caches meters by name.
type meters[T any] struct {
	lock  sync.Mutex
	items map[string]T
}

func (m *meters[T]) getOrCreate(name string, create func() T) T {
	m.lock.Lock()
	defer m.lock.Unlock()

	if meter, ok := m.items[name]; ok {
		return meter
	}
	if m.items == nil {
		m.items = make(map[string]T)
	}
	meter := create()
	m.items[name] = meter
	return meter
}

type prometheusMetrics struct {
	counters      meters[CountMeter]
	counterVecs   meters[CountVecMeter]
	gauges        meters[GaugeMeter]
	histogramVecs meters[HistogramVecMeter]
}

// register registers c, or returns the collector registered before under the same name.
func register[C prometheus.Collector](c C) C {
	if err := prometheus.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing
			}
		}
		log.Warn("unable to register metric", "err", err)
	}
	return c
}

func toFloatBuckets(buckets []int64) []float64 {
	if len(buckets) == 0 {
		return nil
	}
	floats := make([]float64, 0, len(buckets))
	for _, b := range buckets {
		floats = append(floats, float64(b))
	}
	return floats
}

func (o *prometheusMetrics) Handler() http.Handler {
	return promhttp.Handler()
}

func (o *prometheusMetrics) CountMeter(name string) CountMeter {
	return o.counters.getOrCreate(name, func() CountMeter {
		return &promCountMeter{register(prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
		}))}
	})
}

func (o *prometheusMetrics) CountVecMeter(name string, labels []string) CountVecMeter {
	return o.counterVecs.getOrCreate(name, func() CountVecMeter {
		return &promCountVecMeter{register(prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
		}, labels))}
	})
}

func (o *prometheusMetrics) GaugeMeter(name string) GaugeMeter {
	return o.gauges.getOrCreate(name, func() GaugeMeter {
		return &promGaugeMeter{register(prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      name,
		}))}
	})
}

func (o *prometheusMetrics) HistogramVecMeter(name string, labels []string, buckets []int64) HistogramVecMeter {
	return o.histogramVecs.getOrCreate(name, func() HistogramVecMeter {
		return &promHistogramVecMeter{register(prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      name,
			Buckets:   toFloatBuckets(buckets),
		}, labels))}
	})
}

type promCountMeter struct {
	counter prometheus.Counter
}

func (c *promCountMeter) Add(i int64) {
	c.counter.Add(float64(i))
}

type promCountVecMeter struct {
	counter *prometheus.CounterVec
}

func (c *promCountVecMeter) AddWithLabel(i int64, labels map[string]string) {
	c.counter.With(labels).Add(float64(i))
}

type promGaugeMeter struct {
	gauge prometheus.Gauge
}

func (c *promGaugeMeter) Add(i int64) {
	c.gauge.Add(float64(i))
}

func (c *promGaugeMeter) Set(i int64) {
	c.gauge.Set(float64(i))
}

type promHistogramVecMeter struct {
	histogram *prometheus.HistogramVec
}

func (c *promHistogramVecMeter) ObserveWithLabels(i int64, labels map[string]string) {
	c.histogram.With(labels).Observe(float64(i))
}
