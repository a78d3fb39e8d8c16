// Package playground lets a user pick a curried demo function, type its
// arguments and apply them either one per call, f(a)(b)(c), or grouped,
// f(a, b)(c). Every failure is captured in the run's Outcome.
package playground

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/on-the-ground/curry_ive_go/curry"
	"github.com/on-the-ground/curry_ive_go/demo"
	"github.com/on-the-ground/curry_ive_go/log"
)

var (
	ErrNotEnoughArguments = errors.New("not enough arguments supplied")
	ErrInputIndex         = errors.New("input index out of range")
	ErrUnknownMode        = errors.New("unknown mode")
)

// Mode is how a run feeds arguments to the curried function.
type Mode string

const (
	ModeStepwise Mode = "stepwise"
	ModeGrouped  Mode = "grouped"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeStepwise, ModeGrouped:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

type Option func(*Session)

// WithMemo memoizes the selected function's results in a table of size
// entries. Zero disables memoization.
func WithMemo(size uint32) Option {
	return func(s *Session) {
		s.memoSize = size
	}
}

// Session holds the state of one playground: the selected function, the raw
// inputs and the argument groups of the last run. It is not safe for
// concurrent use.
type Session struct {
	ID       string
	entry    demo.Entry
	fn       curry.Fn
	inputs   []string
	groups   [][]string
	memoSize uint32
}

func NewSession(ctx context.Context, key string, opts ...Option) (*Session, error) {
	s := &Session{ID: uuid.New().String()}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.Select(key); err != nil {
		return nil, err
	}
	log.Emit(ctx, log.LogDebug, "playground session started", map[string]any{
		"session_id": s.ID,
		"fn":         key,
		"memo_size":  s.memoSize,
	})
	return s, nil
}

// Select switches to another catalog function and resets the session.
func (s *Session) Select(key string) error {
	entry, err := demo.Lookup(key)
	if err != nil {
		return err
	}
	s.entry = entry
	s.fn = entry.Fn
	if s.memoSize > 0 {
		s.fn = curry.Memoize(entry.Fn, s.memoSize)
	}
	s.Reset()
	return nil
}

func (s *Session) Entry() demo.Entry {
	return s.entry
}

// Reset clears the inputs and the recorded groups.
func (s *Session) Reset() {
	s.inputs = make([]string, s.entry.Arity)
	s.groups = make([][]string, s.entry.Arity)
	for i := range s.groups {
		s.groups[i] = []string{}
	}
}

func (s *Session) SetInput(i int, raw string) error {
	if i < 0 || i >= len(s.inputs) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInputIndex, i, len(s.inputs))
	}
	s.inputs[i] = raw
	return nil
}

// SetInputs fills the inputs from the start; extra values are an error.
func (s *Session) SetInputs(raw ...string) error {
	for i, r := range raw {
		if err := s.SetInput(i, r); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) Inputs() []string {
	return append([]string(nil), s.inputs...)
}

func (s *Session) Placeholder(i int) string {
	return s.entry.Placeholder(i)
}

// Groups returns the argument groups of the last run that got far enough
// to apply them.
func (s *Session) Groups() [][]string {
	return cloneGroups(s.groups)
}

// Validate parses every input and reports all failures at once.
func (s *Session) Validate() error {
	var err error
	for i, raw := range s.inputs {
		_, perr := parseArg(s.entry, i, raw)
		err = multierr.Append(err, perr)
	}
	return err
}

func (s *Session) Run(ctx context.Context, mode Mode) (Outcome, error) {
	switch mode {
	case ModeStepwise:
		return s.RunStepwise(ctx), nil
	case ModeGrouped:
		return s.RunGrouped(ctx), nil
	}
	return Outcome{}, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
}

// RunStepwise applies one argument per call, f(a)(b)(c).
func (s *Session) RunStepwise(ctx context.Context) Outcome {
	out := s.begin(ModeStepwise)

	step, applied, err := s.applyEach()
	if err != nil {
		return s.finish(ctx, out, curry.Step{}, err)
	}
	s.groups = applied
	if !step.Resolved() {
		return s.finish(ctx, out, curry.Step{}, ErrNotEnoughArguments)
	}
	return s.finish(ctx, out, step, nil)
}

func (s *Session) applyEach() (curry.Step, [][]string, error) {
	fn := s.fn
	if s.entry.Arity == 0 {
		step, err := fn.Apply()
		return step, [][]string{}, err
	}

	var step curry.Step
	applied := make([][]string, 0, s.entry.Arity)
	for i := 0; i < s.entry.Arity; i++ {
		arg, err := parseArg(s.entry, i, s.inputs[i])
		if err != nil {
			return curry.Step{}, nil, err
		}
		if step, err = fn.Apply(arg); err != nil {
			return curry.Step{}, nil, err
		}
		applied = append(applied, []string{formatValue(arg)})
		if next, ok := step.Next(); ok {
			fn = next
		}
	}
	return step, applied, nil
}

// RunGrouped applies all but the last input as one group, when all of them
// are filled in, then the last input as a second group, f(a, b)(c).
func (s *Session) RunGrouped(ctx context.Context) Outcome {
	out := s.begin(ModeGrouped)

	first, last, err := s.groupArgs()
	if err != nil {
		return s.finish(ctx, out, curry.Step{}, err)
	}

	var groups [][]any
	for _, g := range [][]any{first, last} {
		if len(g) > 0 {
			groups = append(groups, g)
		}
	}
	if len(groups) == 0 && s.entry.Arity == 0 {
		groups = append(groups, nil)
	}

	step, err := s.fn.ApplyGroups(groups...)
	if err != nil {
		return s.finish(ctx, out, curry.Step{}, err)
	}

	s.groups = [][]string{formatAll(first), formatAll(last), {}}
	if !step.Resolved() {
		return s.finish(ctx, out, curry.Step{}, ErrNotEnoughArguments)
	}
	return s.finish(ctx, out, step, nil)
}

func (s *Session) groupArgs() (first, last []any, err error) {
	n := s.entry.Arity
	if n == 0 {
		return nil, nil, nil
	}

	filled := true
	for _, raw := range s.inputs[:n-1] {
		filled = filled && raw != ""
	}
	if filled {
		for i := 0; i < n-1; i++ {
			arg, err := parseArg(s.entry, i, s.inputs[i])
			if err != nil {
				return nil, nil, err
			}
			first = append(first, arg)
		}
	}

	if s.inputs[n-1] != "" {
		arg, err := parseArg(s.entry, n-1, s.inputs[n-1])
		if err != nil {
			return nil, nil, err
		}
		last = []any{arg}
	}
	return first, last, nil
}

func (s *Session) begin(mode Mode) Outcome {
	return Outcome{
		RunID: uuid.New().String(),
		Mode:  mode,
		Span:  NewTimeSpan(time.Now(), time.Now()),
	}
}

func (s *Session) finish(ctx context.Context, out Outcome, step curry.Step, err error) Outcome {
	out.Span = NewTimeSpan(out.Span.Start(), time.Now())
	out.Groups = s.Groups()

	fields := map[string]any{
		"session_id": s.ID,
		"run_id":     out.RunID,
		"fn":         s.entry.Key,
		"mode":       string(out.Mode),
		"elapsed":    out.Span.Duration(),
	}
	if err != nil {
		out.Err = err
		fields["error"] = err.Error()
		log.Emit(ctx, log.LogWarn, "curry run failed", fields)
		return out
	}

	out.Value = step.Value()
	out.Output = formatValue(out.Value)
	fields["output"] = out.Output
	log.Emit(ctx, log.LogInfo, "curry run resolved", fields)
	return out
}

func formatAll(args []any) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = formatValue(a)
	}
	return out
}

func cloneGroups(groups [][]string) [][]string {
	out := make([][]string, len(groups))
	for i, g := range groups {
		out[i] = append([]string{}, g...)
	}
	return out
}
