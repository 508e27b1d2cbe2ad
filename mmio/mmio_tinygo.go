//go:build tinygo

package mmio

import "runtime/volatile"

//go:inline
func load(addr *uint32) uint32 { return volatile.LoadUint32(addr) }

//go:inline
func store(addr *uint32, v uint32) { volatile.StoreUint32(addr, v) }
