package uart

import "golang.org/x/exp/slices"

// DefaultBaudRate is used for zero and unrecognized rates.
const DefaultBaudRate = 115200

type baudEntry struct {
	rate    uint32
	divisor uint32
}

// BAUDRATE register values, ascending by rate.
var baudTable = []baudEntry{
	{1200, 0x0004_F000},
	{2400, 0x0009_D000},
	{4800, 0x0013_B000},
	{9600, 0x0027_5000},
	{14400, 0x003A_F000},
	{19200, 0x004E_A000},
	{28800, 0x0075_C000},
	{38400, 0x009D_0000},
	{57600, 0x00EB_0000},
	{76800, 0x013A_9000},
	{115200, 0x01D6_0000},
	{230400, 0x03B0_0000},
	{250000, 0x0400_0000},
	{460800, 0x0740_0000},
	{921600, 0x0F00_0000},
	{1000000, 0x1000_0000},
}

// Divisor returns the BAUDRATE register value for rate. Unrecognized rates
// get the 115200 divisor.
func Divisor(rate uint32) uint32 {
	i := slices.IndexFunc(baudTable, func(e baudEntry) bool { return e.rate == rate })
	if i < 0 {
		return Divisor(DefaultBaudRate)
	}
	return baudTable[i].divisor
}

// Supported reports whether rate has its own divisor.
func Supported(rate uint32) bool {
	return slices.ContainsFunc(baudTable, func(e baudEntry) bool { return e.rate == rate })
}

// BaudRates lists the recognized rates in ascending order.
func BaudRates() []uint32 {
	rates := make([]uint32, 0, len(baudTable))
	for _, e := range baudTable {
		rates = append(rates, e.rate)
	}
	return rates
}
