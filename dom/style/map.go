package style

import (
	"github.com/npillmayer/thedom/dom/style/cssom"
	"github.com/npillmayer/thedom/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/thedom/maybe"
	"github.com/npillmayer/thedom/tokens"
	"golang.org/x/net/html"
)

// Map is a map-like view onto a declaration block, usually the inline
// styles of an element. Keys are property names, values are Properties.
//
// A Map does not cache anything; it is safe to keep it around while
// other parties change the underlying declarations.
type Map struct {
	decl cssom.Declarations
}

// MapOf creates a Map for the inline styles of element n.
func MapOf(n *html.Node) Map {
	return Map{decl: douceuradapter.ForElement(n)}
}

// MapFor creates a Map for an arbitrary declaration block.
func MapFor(decl cssom.Declarations) Map {
	return Map{decl: decl}
}

// Get returns the value of a property. If the property is not set or its
// value is empty, Nothing is returned.
func (m Map) Get(prop string) maybe.Maybe[Property] {
	if m.decl == nil {
		return maybe.Nothing[Property]()
	}
	p := Property(m.decl.GetPropertyValue(NormalizeKey(prop)))
	if p.IsEmpty() {
		return maybe.Nothing[Property]()
	}
	return maybe.Just(p)
}

// Set sets a property. Setting a property to the empty string removes it.
// Set returns the map, thus calls may be chained.
func (m Map) Set(prop string, value string) Map {
	if m.decl == nil {
		return m
	}
	prop = NormalizeKey(prop)
	tracer().Debugf("style: set %s = %q", prop, value)
	m.decl.SetProperty(prop, value, "")
	return m
}

// Delete removes a property. It returns true if the property has been set
// before, false otherwise.
func (m Map) Delete(prop string) bool {
	if !m.Has(prop) {
		return false
	}
	m.decl.RemoveProperty(NormalizeKey(prop))
	return true
}

// Has is a predicate wether a property is set.
func (m Map) Has(prop string) bool {
	return tokens.IndexOf(m.names(), NormalizeKey(prop)) >= 0
}

// Priority returns "important" for properties marked as !important,
// and "" otherwise.
func (m Map) Priority(prop string) string {
	if m.decl == nil {
		return ""
	}
	return m.decl.GetPropertyPriority(NormalizeKey(prop))
}

// Clear removes all properties.
func (m Map) Clear() {
	// remove by name from a snapshot: removing by index from the live,
	// shrinking declaration block would skip every other entry
	for _, name := range m.names() {
		m.decl.RemoveProperty(name)
	}
}

// Size returns the number of properties set.
func (m Map) Size() int {
	if m.decl == nil {
		return 0
	}
	return m.decl.Length()
}

// Keys returns a cursor over the property names, in declaration order.
func (m Map) Keys() *tokens.Cursor[string] {
	return tokens.Iterate(m.names())
}

// Values returns a cursor over the property values, in declaration order.
func (m Map) Values() *tokens.Cursor[Property] {
	return tokens.Iterate(m.List())
}

// Entries returns a cursor over property name/value pairs, in declaration order.
func (m Map) Entries() *tokens.Cursor[KeyValue] {
	return tokens.Iterate(tokens.Map(m.names(), func(name string) KeyValue {
		return KeyValue{Key: name, Value: Property(m.decl.GetPropertyValue(name))}
	}))
}

// List returns a snapshot of the property values, in declaration order.
// This is the default iteration of a Map:
//
//	for _, value := range m.List() { … }
func (m Map) List() []Property {
	return tokens.Map(m.names(), func(name string) Property {
		return Property(m.decl.GetPropertyValue(name))
	})
}

// ForEach calls f for every property, in declaration order, with the
// property's value and name.
func (m Map) ForEach(f func(value Property, key string, m Map)) {
	for _, kv := range m.Entries().Rest() {
		f(kv.Value, kv.Key, m)
	}
}

// String returns the serialized declarations.
func (m Map) String() string {
	if m.decl == nil {
		return ""
	}
	return m.decl.CSSText()
}

func (m Map) names() []string {
	if m.decl == nil {
		return nil
	}
	l := m.decl.Length()
	names := make([]string, 0, l)
	for i := 0; i < l; i++ {
		names = append(names, m.decl.Item(i))
	}
	return names
}
