package status

import (
	"fmt"
	"sync/atomic"
)

// Registry is the HUD sink readable from any goroutine
// Publish runs on the simulation goroutine, readers poll without coordination
type Registry struct {
	Flags    *MetricMap[atomic.Bool]
	Counters *MetricMap[atomic.Int64]
	Ratios   *MetricMap[AtomicFloat]
	Labels   *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Flags:    NewMetricMap[atomic.Bool](),
		Counters: NewMetricMap[atomic.Int64](),
		Ratios:   NewMetricMap[AtomicFloat](),
		Labels:   NewMetricMap[AtomicString](),
	}
}

// Len returns the number of registered metrics of every kind
func (r *Registry) Len() int {
	return r.Flags.Count() + r.Counters.Count() + r.Ratios.Count() + r.Labels.Count()
}

// Dump formats every metric as key=value, grouped by kind and sorted by key
func (r *Registry) Dump() []string {
	out := make([]string, 0, r.Len())
	r.Counters.Range(func(k string, v *atomic.Int64) { out = append(out, fmt.Sprintf("%s=%d", k, v.Load())) })
	r.Flags.Range(func(k string, v *atomic.Bool) { out = append(out, fmt.Sprintf("%s=%t", k, v.Load())) })
	r.Ratios.Range(func(k string, v *AtomicFloat) { out = append(out, fmt.Sprintf("%s=%.3f", k, v.Get())) })
	r.Labels.Range(func(k string, v *AtomicString) { out = append(out, fmt.Sprintf("%s=%s", k, v.Load())) })
	return out
}
