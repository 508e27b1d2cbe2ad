//go:build !tinygo

package mmio

import "sync/atomic"

// On a host the register blocks live in ordinary Go memory and are shared with
// goroutines that model the hardware, so accesses are atomic.

func load(addr *uint32) uint32 { return atomic.LoadUint32(addr) }

func store(addr *uint32, v uint32) { atomic.StoreUint32(addr, v) }
