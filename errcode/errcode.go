package errcode

// Code is a stable error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK            Code = "ok"
	Timeout       Code = "timeout"
	InvalidPin    Code = "invalid_pin"
	InvalidParams Code = "invalid_params"

	InvalidVector         Code = "invalid_vector"
	IncompleteVectorTable Code = "incomplete_vector_table"

	Error Code = "error" // generic fallback
)

// E keeps an operation name and a cause alongside a Code. Drivers panic with
// *E on programming errors so the fault is identifiable under a debugger.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}

// Recovered maps a value obtained from recover() to a Code. It returns OK for
// nil and Error for panics that did not originate from this module.
func Recovered(v any) Code {
	if v == nil {
		return OK
	}
	if err, ok := v.(error); ok {
		return Of(err)
	}
	return Error
}
