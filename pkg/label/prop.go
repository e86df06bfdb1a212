package label

// Prop is a label property that is either a literal value or a function
// evaluated against the request at layout time. The zero value is unset.
type Prop[T any] struct {
	value T
	fn    func(*Request) T
	set   bool
}

// Literal returns a Prop holding v.
func Literal[T any](v T) Prop[T] {
	return Prop[T]{value: v, set: true}
}

// Computed returns a Prop evaluated by fn against the request.
// A nil fn yields an unset Prop.
func Computed[T any](fn func(*Request) T) Prop[T] {
	if fn == nil {
		return Prop[T]{}
	}
	return Prop[T]{fn: fn, set: true}
}

// IsSet reports whether the Prop carries a literal or a function.
func (p Prop[T]) IsSet() bool { return p.set }

// IsComputed reports whether the Prop is function-valued.
func (p Prop[T]) IsComputed() bool { return p.fn != nil }

// Resolve evaluates the Prop against r. The second result is false when
// the Prop is unset.
func (p Prop[T]) Resolve(r *Request) (T, bool) {
	if !p.set {
		var zero T
		return zero, false
	}
	if p.fn != nil {
		return p.fn(r), true
	}
	return p.value, true
}

// ResolveOr evaluates the Prop against r, returning def when unset.
func (p Prop[T]) ResolveOr(r *Request, def T) T {
	if v, ok := p.Resolve(r); ok {
		return v
	}
	return def
}
