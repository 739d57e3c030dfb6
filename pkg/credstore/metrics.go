/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credstore

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultOK      = "ok"
	resultMissing = "missing"
	resultError   = "error"
)

// Metrics counts credential store loads and writes by result
// ("ok", "missing" or "error").
type Metrics struct {
	Loads  *prometheus.CounterVec
	Writes *prometheus.CounterVec
}

// NewMetrics creates the store counters and registers them with reg.
// A nil reg leaves them unregistered. Counters already registered with reg
// are shared.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gwclient",
			Subsystem: "credstore",
			Name:      "loads_total",
			Help:      "Number of credential store loads by result.",
		}, []string{"result"}),
		Writes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gwclient",
			Subsystem: "credstore",
			Name:      "writes_total",
			Help:      "Number of credential store writes by result.",
		}, []string{"result"}),
	}
	if reg == nil {
		return m, nil
	}
	var err error
	if m.Loads, err = register(reg, m.Loads); err != nil {
		return nil, err
	}
	if m.Writes, err = register(reg, m.Writes); err != nil {
		return nil, err
	}
	return m, nil
}

// register registers c with reg. A counter already registered under the
// same description is reused.
func register(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}
	if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
		if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
			return existing, nil
		}
	}
	return nil, errors.Wrap(err, "registering credential store metrics failed")
}

func (m *Metrics) observeLoad(result string) {
	if m == nil {
		return
	}
	m.Loads.WithLabelValues(result).Inc()
}

func (m *Metrics) observeWrite(result string) {
	if m == nil {
		return
	}
	m.Writes.WithLabelValues(result).Inc()
}
