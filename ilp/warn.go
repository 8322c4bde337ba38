package ilp

import (
	"sync"

	"github.com/gomlx/exceptions"
	"k8s.io/klog/v2"
)

// Warn-once sets. Keys are the offending K, or the op name.
var (
	warnedK        sync.Map
	warnedIdentity sync.Map
)

// validateK panics on an unroll factor below 1 and warns, once per distinct
// value, about factors above MaxUsefulK.
func validateK(k int) {
	if k < 1 {
		exceptions.Panicf("ilp: unroll factor must be at least 1, got %d", k)
	}
	if k > MaxUsefulK {
		if _, loaded := warnedK.LoadOrStore(k, struct{}{}); !loaded {
			klog.Warningf("ilp: unroll factor %d exceeds %d; it exceeds the execution ports of any "+
				"supported CPU and bloats the instruction cache", k, MaxUsefulK)
		}
	}
}

func warnUnknownIdentity(name string, k int) {
	if _, loaded := warnedIdentity.LoadOrStore(name, struct{}{}); !loaded {
		klog.Warningf("ilp: op %q has no identity element, running with K=1 instead of K=%d; "+
			"use NewMonoid to declare its identity", name, k)
	}
}
