// Package options implements the functional option pattern shared by the
// codec and frequency table builder configurations.
package options

// Option configures a value of type T. Options are applied in order by Apply;
// the first failing option aborts the sequence.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function to the Option interface.
type Func[T any] struct {
	applyFunc func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New wraps fn, which may reject its argument, as an Option.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// NoError wraps fn, which cannot fail, as an Option.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply applies opts to target in order and returns the first error.
// Nil options are skipped so callers can pass conditionally built slices.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}

// Resolve applies opts to target, then runs finalize, which fills derived
// defaults and validates the result. A nil finalize is skipped.
//
// Returns:
//   - T: target, only meaningful when error is nil
//   - error: The first option error, otherwise the finalize error
func Resolve[T any](target T, finalize func(T) error, opts ...Option[T]) (T, error) {
	if err := Apply(target, opts...); err != nil {
		return target, err
	}
	if finalize != nil {
		if err := finalize(target); err != nil {
			return target, err
		}
	}

	return target, nil
}
