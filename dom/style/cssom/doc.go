/*
Package cssom defines an interface for CSS style declaration blocks.

CSSOM is the "CSS Object Model", similar to the DOM for HTML.
Browsers expose the declarations of an element's `style` attribute as a
CSSStyleDeclaration object. Interface Declarations mirrors the part of it
we need to build convenience wrappers on top of it, see package style.

In order to de-couple CSS parsing from the wrappers, concrete
implementations live in sub-packages (e.g., see package douceuradapter).

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "strings"

// Declarations is an interface to abstract away an implementation of
// CSS declaration blocks, i.e. an ordered list of property declarations.
//
// Property names passed to the methods are expected to be in canonical
// form (see PropertyName).
type Declarations interface {
	Length() int                              // number of declared properties
	Item(int) string                          // name of i-th property, "" if out of range
	GetPropertyValue(string) string           // value for property, "" if not set
	GetPropertyPriority(string) string        // "important" or ""
	SetProperty(name, value, priority string) // set or, for an empty value, remove
	RemoveProperty(string) string             // remove a property, returning its value
	CSSText() string                          // serialized form of all declarations
}

// PriorityImportant is the priority of declarations marked with "!important".
const PriorityImportant = "important"

// PropertyName returns the canonical form of a property name.
// CSS property names are ASCII case-insensitive, with the exception of
// custom properties ("--my-prop"), which are kept verbatim.
func PropertyName(key string) string {
	key = strings.TrimSpace(key)
	if strings.HasPrefix(key, "--") {
		return key
	}
	return strings.ToLower(key)
}
