package sequence

import (
	"iter"

	"github.com/google/uuid"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/observability"
	"github.com/kbukum/seqkit/source"
)

// Sequence is a lazily evaluated chain over a source.
// It is not safe for concurrent use.
type Sequence struct {
	source any
	driver Upstream
	err    error
	opts   options
	pulled int
}

// errCarrier is implemented by sources that can fail to build, such as
// generators with invalid arguments.
type errCarrier interface {
	Err() error
}

// New wraps src without checking it. Sources the adapter does not support
// behave as empty. Wrapping a *Sequence returns it unchanged.
func New(src any, opts ...Option) *Sequence {
	if s, ok := src.(*Sequence); ok && s != nil {
		return s
	}
	s := &Sequence{source: src, opts: newOptions(opts)}
	s.driver = s.walk
	if s.opts.strict {
		if err := checkSource(src); err != nil {
			s.fail("new", err)
		}
	}
	return s
}

// From wraps src, rejecting nil and values that are not iterable.
// Wrapping a *Sequence returns it unchanged.
func From(src any, opts ...Option) (*Sequence, error) {
	if s, ok := src.(*Sequence); ok && s != nil {
		return s, nil
	}
	if err := checkSource(src); err != nil {
		return nil, err
	}
	return New(src, opts...), nil
}

// Of wraps the given values.
func Of(values ...any) *Sequence {
	if values == nil {
		values = []any{}
	}
	return New(values)
}

func checkSource(src any) error {
	if !source.IsIterable(src) {
		return errors.InvalidArgument("expecting an iterable object").WithDetail("kind", source.Kind(src))
	}
	if c, ok := src.(errCarrier); ok {
		if err := c.Err(); err != nil {
			return err
		}
	}
	return nil
}

// derive creates a sequence over src sharing s's options.
func (s *Sequence) derive(src any) *Sequence {
	out := &Sequence{source: src, opts: s.opts}
	out.driver = out.walk
	return out
}

// Source returns the value the sequence was created over.
func (s *Sequence) Source() any { return s.source }

// Err returns the first construction error recorded on the sequence.
func (s *Sequence) Err() error { return s.err }

// Pipe appends stage to the chain and returns s. Nothing is driven.
// After a construction error Pipe is a no-op.
func (s *Sequence) Pipe(stage Stage) *Sequence {
	if s.err != nil {
		return s
	}
	if stage == nil {
		return s.fail("pipe", errors.InvalidArgument("stage must be a function"))
	}
	upstream := s.driver
	s.driver = func(downstream Downstream) bool {
		return stage(upstream, downstream)
	}
	return s
}

// Seq returns the chain as a range-over-func iterator of key/value pairs.
// A sequence carrying an error yields nothing; check Err first.
func (s *Sequence) Seq() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		_, _ = s.drive("seq", func(st Step) bool {
			return yield(st.Key, st.Value)
		}, nil)
	}
}

// fail records err as the sticky construction error.
func (s *Sequence) fail(operation string, err error) *Sequence {
	if s.err != nil {
		return s
	}
	s.err = err
	s.report(operation, err)
	return s
}

// report logs and counts a rejected argument.
func (s *Sequence) report(operation string, err error) {
	s.opts.logger.Debug("sequence construction rejected", logger.ErrorFields(operation, err))
	if s.opts.metrics != nil {
		s.opts.metrics.RecordConstructionError(s.opts.ctx, string(errors.CodeOf(err)))
	}
}

// walk is the root upstream: it adapts the source afresh on every drive.
func (s *Sequence) walk(downstream Downstream) bool {
	c := source.Adapt(s.source)
	defer source.Close(c)
	for {
		value, key, ok := c.Next()
		if !ok {
			return true
		}
		s.pulled++
		if !downstream(Step{Value: value, Key: key, Source: s.source}) {
			return false
		}
	}
}

// drive runs the chain once into final. after, when set, is called with the
// drive result and may turn it into an error.
func (s *Sequence) drive(operation string, final Downstream, after func(exhausted bool) error) (bool, error) {
	if s.err != nil {
		return false, s.err
	}

	o := s.opts
	logDrive := o.logDrives && o.logger.DebugEnabled()
	var id string
	if logDrive || o.tracer != nil {
		id = uuid.NewString()
	}
	kind := source.Kind(s.source)
	dc := observability.NewDriveContext(id, operation, kind, o.metrics, o.tracer)
	dc.SetClock(o.clock)
	ctx, span := dc.Start(o.ctx)

	outer := s.pulled
	s.pulled = 0
	exhausted := s.driver(final)
	pulled := s.pulled
	s.pulled = outer

	var err error
	if after != nil {
		err = after(exhausted)
	}

	outcome := observability.OutcomeExhausted
	switch {
	case err != nil:
		outcome = observability.OutcomeError
	case !exhausted:
		outcome = observability.OutcomeStopped
	}
	dc.End(ctx, span, outcome, pulled, err)

	if logDrive {
		fields := logger.MergeWithError(logger.DriveFields(operation, kind, pulled, !exhausted, dc.Duration()), err)
		o.logger.WithContext(logger.ContextWithDriveID(ctx, id)).Debug("sequence drive finished", fields)
	}
	return exhausted, err
}
