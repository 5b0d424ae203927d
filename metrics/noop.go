// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package metrics

import "net/http"

type noopMetrics struct{}

func defaultNoopMetrics() Metrics { return &noopMetrics{} }

func (n *noopMetrics) CountMeter(string) CountMeter { return &noopMetric }
func (n *noopMetrics) CountVecMeter(string, []string) CountVecMeter { return &noopMetric }
func (n *noopMetrics) GaugeMeter(string) GaugeMeter { return &noopMetric }
func (n *noopMetrics) HistogramVecMeter(string, []string, []int64) HistogramVecMeter {
	return &noopMetric
}
func (n *noopMetrics) Handler() http.Handler { return nil }

var noopMetric = noopMeters{}

type noopMeters struct{}

func (n noopMeters) Add(int64) {}
func (n noopMeters) Set(int64) {}
func (n noopMeters) AddWithLabel(int64, map[string]string) {}
func (n noopMeters) ObserveWithLabels(int64, map[string]string) {}
