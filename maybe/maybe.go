/*
Package maybe provides an option type for values which may be absent.

Box generation, for example, produces either a box or nothing at all for
a document node (think of `display: none`). Maybe makes this explicit in
function signatures, instead of overloading nil pointers.

Clients unwrap a Maybe by pattern matching:

    var b *Box
    switch m := mb.Match(); m {
    case m.Just(&b):
        // use b
    case m.Nothing():
        // no box
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

// Maybe is an optional value of type T: either Just(x) or Nothing.
type Maybe[T comparable] interface {
	Match() Matcher[T]
	Get() (T, bool)
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
}

type maybe[T comparable] struct {
	value T
	tag   bool
}

// Just wraps x into a Maybe.
func Just[T comparable](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing returns an empty Maybe.
func Nothing[T comparable]() Maybe[T] {
	return maybe[T]{tag: false}
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

// Get returns the wrapped value and true, or the zero value and false.
func (m maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

// WithDefault returns the wrapped value or def for Nothing.
func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// AndThen chains a computation which may fail onto x.
func AndThen[T, S comparable](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return f(v)
	}
	return Nothing[S]()
}

// IsNothing is a predicate for empty Maybes.
func IsNothing[T comparable](x Maybe[T]) bool {
	_, ok := x.Get()
	return !ok
}

// --- Matching --------------------------------------------------------------

// Matcher is used for pattern matching, see package documentation.
type Matcher[T comparable] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T comparable] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		if v != nil {
			*v = mm.m.value
		}
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
