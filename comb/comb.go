package comb

import "fmt"

const eofMessage = "unexpected end of input"

// Next consumes a single token. It fails with "unexpected end of input"
// if no token is left.
func Next[T comparable](s Stream[T]) (T, error) {
	x, ok := s.Consume()
	if !ok {
		var zero T
		return zero, s.Error(eofMessage)
	}
	return x, nil
}

// Predicate consumes a single token and checks it with pred. A rejected token
// stays consumed.
func Predicate[T comparable](s Stream[T], pred func(T) bool) (T, error) {
	var zero T
	x, err := Next(s)
	if err != nil {
		return zero, err
	}
	if !pred(x) {
		return zero, s.Error(fmt.Sprintf("unexpected token %v", x))
	}
	return x, nil
}

// Atom consumes a single token and checks it for equality with expected.
// A mismatching token stays consumed.
func Atom[T comparable](s Stream[T], expected T) (T, error) {
	var zero T
	x, err := Next(s)
	if err != nil {
		return zero, err
	}
	if x != expected {
		return zero, s.Error(fmt.Sprintf("unexpected token %v, expected %v", x, expected))
	}
	return x, nil
}

// String matches a fixed sequence of tokens, one Atom at a time. It fails with
// the error of the first mismatching Atom, leaving the cursor where the partial
// match stopped.
func String[T comparable](s Stream[T], seq []T) ([]T, error) {
	return StringAs(s, seq, AsSlice[T]())
}

// StringAs is like String, but collects the matched tokens with collect.
func StringAs[T comparable, O any](s Stream[T], seq []T, collect Collector[T, O]) (O, error) {
	matched := make([]T, 0, len(seq))
	for _, expected := range seq {
		x, err := Atom(s, expected)
		if err != nil {
			var zero O
			return zero, err
		}
		matched = append(matched, x)
	}
	return collect(matched), nil
}

// Try runs p after recording a checkpoint. If p fails, the cursor is restored
// to where it was before the call and p's error is returned.
func Try[T comparable, X any](s Stream[T], p Parser[T, X]) (X, error) {
	s.Save()
	x, err := p(s)
	if err != nil {
		s.Load()
		var zero X
		return zero, err
	}
	if c, ok := s.(Committer); ok {
		c.Commit()
	}
	return x, nil
}

// Choose tries the alternatives ps in order, each one wrapped in Try, and returns
// the result of the first one to succeed.
//
// If every alternative fails, the errors of the alternatives are dropped. Choose
// reports the token at the position where it started instead (or end of input),
// i.e. what could not be matched there.
func Choose[T comparable, X any](s Stream[T], ps ...Parser[T, X]) (X, error) {
	for i, p := range ps {
		x, err := Try(s, p)
		if err == nil {
			return x, nil
		}
		tracer().Debugf("choose: alternative %d/%d failed at %s: %v", i+1, len(ps), s.CurrentPos(), err)
	}
	var zero X
	if x, ok := s.Preview(); ok {
		return zero, s.Error(fmt.Sprintf("unexpected token %v", x))
	}
	return zero, s.Error(eofMessage)
}

// Many applies p as often as possible, each time wrapped in Try, and returns
// the results in order. The attempt which ends the repetition is rolled back.
// Many never fails; zero matches result in an empty slice.
//
// A p which succeeds without consuming input will make Many loop forever.
func Many[T comparable, X any](s Stream[T], p Parser[T, X]) ([]X, error) {
	return ManyAs(s, p, AsSlice[X]())
}

// ManyAs is like Many, but collects the results with collect.
func ManyAs[T comparable, X any, O any](s Stream[T], p Parser[T, X], collect Collector[X, O]) (O, error) {
	return collect(repeat(s, p, make([]X, 0, 4))), nil
}

// Many1 is like Many, but requires at least one match. The first application
// of p is not wrapped in Try: if it fails, its error is returned as is, with
// the cursor wherever p left it.
func Many1[T comparable, X any](s Stream[T], p Parser[T, X]) ([]X, error) {
	return Many1As(s, p, AsSlice[X]())
}

// Many1As is like Many1, but collects the results with collect.
func Many1As[T comparable, X any, O any](s Stream[T], p Parser[T, X], collect Collector[X, O]) (O, error) {
	first, err := p(s)
	if err != nil {
		var zero O
		return zero, err
	}
	return collect(repeat(s, p, []X{first})), nil
}

func repeat[T comparable, X any](s Stream[T], p Parser[T, X], results []X) []X {
	for {
		x, err := Try(s, p)
		if err != nil {
			tracer().Debugf("repetition stops after %d matches: %v", len(results), err)
			return results
		}
		results = append(results, x)
	}
}

// Optional applies p wrapped in Try and ignores its outcome. If p fails, the
// cursor is left where it was.
func Optional[T comparable, X any](s Stream[T], p Parser[T, X]) {
	if _, err := Try(s, p); err != nil {
		tracer().Debugf("optional step skipped: %v", err)
	}
}
