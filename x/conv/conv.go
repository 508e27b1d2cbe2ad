// Package conv appends integer text to byte slices without going through
// fmt or strconv, so it is usable from fault handlers and before the heap
// is set up. Nothing allocates when dst has room.
package conv

const hexDigits = "0123456789ABCDEF"

// AppendHex32 appends n as eight upper-case hex digits, zero padded and
// without a 0x prefix.
func AppendHex32(dst []byte, n uint32) []byte {
	for shift := 28; shift >= 0; shift -= 4 {
		dst = append(dst, hexDigits[(n>>uint(shift))&0xF])
	}
	return dst
}

// AppendUint appends the decimal form of n.
func AppendUint(dst []byte, n uint64) []byte {
	var tmp [20]byte
	i := len(tmp)
	for {
		i--
		tmp[i] = byte('0' + n%10)
		n /= 10
		if n == 0 {
			break
		}
	}
	return append(dst, tmp[i:]...)
}
