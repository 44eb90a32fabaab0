package pmatch

// Const returns a function that produces a.
func Const[T any](a T) func() T {
	return func() T {
		return a
	}
}

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}

// Ignore adapts a zero-argument function to take and ignore an argument.
func Ignore[A, T any](f func() T) func(A) T {
	return func(A) T {
		return f()
	}
}
