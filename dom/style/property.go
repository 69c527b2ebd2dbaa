/*
Package style provides CSS style values and a map-like view onto the inline
styles of an HTML element.

Inline styles are the declarations of an element's `style` attribute, e.g.

	<p style="color: black; font-size: 2em">

Type Map lets clients get, set and delete these declarations by property
name, iterate over them in declaration order, and clear them. A Map holds
no state of its own: every operation reads and writes the element's
attribute through an implementation of cssom.Declarations.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package style

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/thedom/dom/style/cssom"
)

// tracer will return a tracer. We are tracing to 'thedom.style'
func tracer() tracing.Trace {
	return tracing.Select("thedom.style")
}

// Property is a raw value for a CSS property. For example, with
//
//	color: black
//
// a property value of "black" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string
// or whitespace only.
func (p Property) IsEmpty() bool {
	return strings.TrimSpace(string(p)) == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// NormalizeKey returns the canonical form of a property name, see
// cssom.PropertyName.
func NormalizeKey(key string) string {
	return cssom.PropertyName(key)
}
