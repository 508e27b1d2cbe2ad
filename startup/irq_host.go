//go:build !tinygo

package startup

import (
	"runtime"
	"sync/atomic"
)

var irqState atomic.Bool

func enableIRQ()       { irqState.Store(true) }
func disableIRQ()      { irqState.Store(false) }
func irqEnabled() bool { return irqState.Load() }

func idle() { runtime.Gosched() }
