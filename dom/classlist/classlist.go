/*
Package classlist provides a set-like view onto the CSS classes of an HTML
element.

The classes of an element are the tokens of its `class` attribute. A Set
does not hold any state of its own: every operation reads the attribute
anew, and mutations are written back immediately. Thus changes to the
attribute made by other parties are always visible through a Set.

	classes := classlist.Of(n)
	classes.Add("active").Add("large")
	if classes.Has("hidden") {
		classes.Delete("hidden")
	}

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package classlist

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/thedom/dom/w3cdom"
	"github.com/npillmayer/thedom/tokens"
	"golang.org/x/net/html"
)

// tracer traces with key 'thedom.dom'.
func tracer() tracing.Trace {
	return tracing.Select("thedom.dom")
}

// Set is a set of class names, backed by the `class` attribute of an element.
type Set struct {
	node *html.Node
}

// Of creates a Set for the classes of node n. For nodes other than
// elements the set is always empty.
func Of(n *html.Node) Set {
	return Set{node: n}
}

func (s Set) classes() []string {
	text, _ := w3cdom.GetAttribute(s.node, "class")
	return tokens.Split(text)
}

func (s Set) store(classes []string) {
	w3cdom.SetAttribute(s.node, "class", tokens.Join(classes))
}

// Has is a predicate wether the element is of class name.
// Class names are case-sensitive.
func (s Set) Has(name string) bool {
	return tokens.IndexOf(s.classes(), name) >= 0
}

// Add adds a class name, if not already present. Names which are empty or
// contain whitespace cannot be represented as a single class and are ignored.
// Add returns the set, thus calls may be chained.
func (s Set) Add(name string) Set {
	if !tokens.IsToken(name) {
		tracer().Infof("classlist: ignoring invalid class name %q", name)
		return s
	}
	classes := s.classes()
	if tokens.IndexOf(classes, name) < 0 {
		s.store(append(classes, name))
	}
	return s
}

// Delete removes a class name. It returns true if the name has been present,
// false otherwise.
func (s Set) Delete(name string) bool {
	classes := s.classes()
	i := tokens.IndexOf(classes, name)
	if i < 0 {
		return false
	}
	s.store(append(classes[:i], classes[i+1:]...))
	return true
}

// Clear removes all classes.
func (s Set) Clear() {
	w3cdom.SetAttribute(s.node, "class", "")
}

// Size returns the number of classes.
func (s Set) Size() int {
	return len(s.classes())
}

// Keys returns a cursor over the class names. For a set, keys and values
// are identical.
func (s Set) Keys() *tokens.Cursor[string] {
	return tokens.Iterate(s.classes())
}

// Values returns a cursor over the class names, in attribute order.
func (s Set) Values() *tokens.Cursor[string] {
	return tokens.Iterate(s.classes())
}

// Entries returns a cursor over pairs (name, name).
func (s Set) Entries() *tokens.Cursor[tokens.Pair[string, string]] {
	return tokens.Iterate(tokens.Map(s.classes(), func(c string) tokens.Pair[string, string] {
		return tokens.Pair[string, string]{Key: c, Value: c}
	}))
}

// ForEach calls f for every class name, in attribute order. As with
// sets in general, value and key are the same.
func (s Set) ForEach(f func(value, key string, set Set)) {
	for _, c := range s.classes() {
		f(c, c, s)
	}
}

// List returns a snapshot of the class names. This is the default iteration
// of a Set:
//
//	for _, class := range classes.List() { … }
func (s Set) List() []string {
	return s.classes()
}

func (s Set) String() string {
	return tokens.Join(s.classes())
}
