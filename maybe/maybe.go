/*
Package maybe implements an optional value type.

thedom uses Maybe as its single convention for "absent" values, e.g. for
attributes which are not set or style properties without a value.
Clients may either pattern-match

	var v string
	switch m := n.Attr("href").Match(); m {
	case m.Just(&v):
		…
	case m.Nothing():
		…
	}

or unpack a Maybe comma-ok style with Get, or provide a default value with
WithDefault.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package maybe

// Maybe is either Just(x) or Nothing.
type Maybe[T any] interface {
	Match() Matcher[T]
	Get() (T, bool)
	IsNothing() bool
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps x into a Maybe.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing returns the empty Maybe for type T.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

// Of returns Just(x) if ok is set, Nothing otherwise.
func Of[T any](x T, ok bool) Maybe[T] {
	if ok {
		return Just(x)
	}
	return Nothing[T]()
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

// Get returns the wrapped value and true, or the zero value and false for Nothing.
func (m maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

func (m maybe[T]) IsNothing() bool {
	return !m.tag
}

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

// AndThen chains a computation which may fail to produce a value.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher is used for switching on Maybe values, see package documentation.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
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
