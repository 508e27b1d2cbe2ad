//go:build tinygo && crt0

package main

// Links the crt0 reset path, which calls main after memory and package init.
import _ "nrf52dk-go/startup"
