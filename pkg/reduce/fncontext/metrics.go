package fncontext

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// contextsBuilt counts call contexts constructed, by call kind.
var contextsBuilt = promauto.NewCounterVec(prometheus.CounterOpts{
	Subsystem: "reduce_fnctx",
	Name:      "contexts_total",
	Help:      "Total number of reduce call contexts built",
}, []string{"kind"})

// namespaceResolutions counts state namespace resolutions, by addressing style.
var namespaceResolutions = promauto.NewCounterVec(prometheus.CounterOpts{
	Subsystem: "reduce_fnctx",
	Name:      "namespace_resolutions_total",
	Help:      "Total number of state namespace resolutions",
}, []string{"style"})
