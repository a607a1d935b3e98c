package asm

// Severity classifies a diagnostic. Errors gate assembly success;
// warnings are advisory.
type Severity int

//go:generate go tool stringer -linecomment -type=Severity
const (
	SEVERITY_WARNING = Severity(0) // warning
	SEVERITY_ERROR   = Severity(1) // error
)

// Diagnostic is one line-attributed message from either pass.
type Diagnostic struct {
	Severity Severity
	LineNo   int
	Message  string
}

func (d Diagnostic) String() string {
	return f("line %d: %v: %v", d.LineNo, d.Severity, d.Message)
}

// Diagnostics accumulates diagnostics in encounter order, across both
// passes. Only the Resolver and the Encoder append to it.
type Diagnostics []Diagnostic

// Error appends err as an error-severity diagnostic for a source line.
func (ds *Diagnostics) Error(lineno int, err error) {
	*ds = append(*ds, Diagnostic{Severity: SEVERITY_ERROR, LineNo: lineno, Message: err.Error()})
}

// Warnf appends a warning-severity diagnostic for a source line.
func (ds *Diagnostics) Warnf(lineno int, format string, args ...any) {
	*ds = append(*ds, Diagnostic{Severity: SEVERITY_WARNING, LineNo: lineno, Message: f(format, args...)})
}

// HasErrors reports whether any error-severity diagnostic was recorded.
func (ds Diagnostics) HasErrors() bool {
	for _, d := range ds {
		if d.Severity == SEVERITY_ERROR {
			return true
		}
	}
	return false
}
