package comb

// The functions below wrap single-token combinators into Parser values, for use
// as arguments to Try, Choose, Many, Many1 and Optional.

// Expect returns a parser performing Atom(s, expected).
func Expect[T comparable](expected T) Parser[T, T] {
	return func(s Stream[T]) (T, error) {
		return Atom(s, expected)
	}
}

// Satisfy returns a parser performing Predicate(s, pred).
func Satisfy[T comparable](pred func(T) bool) Parser[T, T] {
	return func(s Stream[T]) (T, error) {
		return Predicate(s, pred)
	}
}

// Literal returns a parser performing String(s, seq).
func Literal[T comparable](seq ...T) Parser[T, []T] {
	return func(s Stream[T]) ([]T, error) {
		return String(s, seq)
	}
}
