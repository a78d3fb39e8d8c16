package playground

import (
	"errors"
	"strings"
)

// notEnoughMessage is what the user sees for ErrNotEnoughArguments.
const notEnoughMessage = "Not enough arguments supplied."

// Outcome is the result of one run. Err is set when parsing or the curried
// function failed, otherwise Value and its display form Output are.
type Outcome struct {
	RunID  string
	Mode   Mode
	Groups [][]string
	Value  any
	Output string
	Err    error
	Span   TimeSpan
}

func (o Outcome) OK() bool {
	return o.Err == nil
}

// Trace renders how the groups were applied, e.g. "f(1, 2) ➜ (3) ➜ ()".
func (o Outcome) Trace() string {
	if len(o.Groups) == 0 {
		return "f()"
	}
	var b strings.Builder
	for i, g := range o.Groups {
		if i == 0 {
			b.WriteString("f(")
		} else {
			b.WriteString(" ➜ (")
		}
		b.WriteString(strings.Join(g, ", "))
		b.WriteString(")")
	}
	return b.String()
}

// Message is the user-facing text of the outcome.
func (o Outcome) Message() string {
	if errors.Is(o.Err, ErrNotEnoughArguments) {
		return notEnoughMessage
	}
	if o.Err != nil {
		return o.Err.Error()
	}
	return o.Output
}
