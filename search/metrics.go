// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package search

import "github.com/prometheus/client_golang/prometheus"

// Metrics collects statistics about finished searches, partitioned by policy.
// The collectors are not registered anywhere; use Collectors to do so.
type Metrics struct {
	// EventsPerSearch is the number of events produced by each search.
	EventsPerSearch *prometheus.HistogramVec
	// Searches counts finished searches.
	Searches *prometheus.CounterVec
	// Matches counts searches that matched their target.
	Matches *prometheus.CounterVec
}

// NewMetrics creates Metrics whose collector names are prefixed with
// namespace.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		EventsPerSearch: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_events",
			Help:      "Number of nodes visited by a search.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 16),
		}, []string{"policy"}),
		Searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Number of finished searches.",
		}, []string{"policy"}),
		Matches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_matches_total",
			Help:      "Number of searches that found their target.",
		}, []string{"policy"}),
	}
}

// Collectors returns the collectors of m, for registration.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.EventsPerSearch, m.Searches, m.Matches}
}

func (m *Metrics) record(p Policy, events int, matched bool) {
	label := p.String()
	m.EventsPerSearch.WithLabelValues(label).Observe(float64(events))
	m.Searches.WithLabelValues(label).Inc()
	if matched {
		m.Matches.WithLabelValues(label).Inc()
	}
}
