package mmio

import "golang.org/x/exp/constraints"

// Await spins until cond reports true. There is no timeout and no yield: a
// flag that never rises hangs the caller.
func Await(cond func() bool) {
	for !cond() {
	}
}

// AwaitN polls cond at most limit times. It returns the number of polls made
// and whether cond became true. A limit of zero polls once.
func AwaitN(cond func() bool, limit uint32) (uint32, bool) {
	return awaitN(cond, limit)
}

// awaitN stops with n == limit, so the counter never has to pass the
// largest value of T.
func awaitN[T constraints.Unsigned](cond func() bool, limit T) (T, bool) {
	if limit == 0 {
		limit = 1
	}
	for n := T(0); n < limit; {
		n++
		if cond() {
			return n, true
		}
	}
	return limit, false
}
