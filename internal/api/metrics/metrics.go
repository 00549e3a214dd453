// Package metrics defines and registers all custom Prometheus metrics for
// the vendas API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register themselves with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "vendas"

// LoginsTotal counts login attempts.
// Labels:
//   - principal: "admin" or "cliente"
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by principal type and result.",
	},
	[]string{"principal", "result"},
)

// PropostasCriadasTotal counts purchase proposals successfully created.
var PropostasCriadasTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "propostas_criadas_total",
		Help:      "Total number of purchase proposals created.",
	},
)

// CatalogoCacheTotal counts catalog cache lookups.
// Label:
//   - result: "hit", "miss" or "error"
var CatalogoCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalogo_cache_total",
		Help:      "Total number of catalog cache lookups, by result.",
	},
	[]string{"result"},
)
