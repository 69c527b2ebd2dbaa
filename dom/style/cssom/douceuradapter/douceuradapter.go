/*
Package douceuradapter is a concrete implementation of interface cssom.Declarations.

It operates on the `style` attribute of HTML elements and uses the CSS
parser of github.com/aymerick/douceur to split the attribute into
declarations. Every operation reads the attribute anew, thus changes to the
attribute made by other parties are always reflected.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"regexp"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/thedom/dom/style/cssom"
	"github.com/npillmayer/thedom/dom/w3cdom"
	"golang.org/x/net/html"
)

// tracer traces with key 'thedom.style'.
func tracer() tracing.Trace {
	return tracing.Select("thedom.style")
}

// InlineStyle is an adapter for interface cssom.Declarations, backed by
// the `style` attribute of an element.
type InlineStyle struct {
	node *html.Node
}

// ForElement wraps the inline style declarations of element n.
// For non-element nodes the declaration block is always empty and
// mutations are ignored.
func ForElement(n *html.Node) *InlineStyle {
	return &InlineStyle{node: n}
}

var _ cssom.Declarations = &InlineStyle{}

// Length returns the number of declared properties.
//
// Interface cssom.Declarations
func (s *InlineStyle) Length() int {
	return len(s.declarations())
}

// Item returns the name of the i-th declared property, or "" if i is out of range.
//
// Interface cssom.Declarations
func (s *InlineStyle) Item(i int) string {
	decls := s.declarations()
	if i < 0 || i >= len(decls) {
		return ""
	}
	return decls[i].Property
}

// GetPropertyValue returns the value of a property, or "" if it is not declared.
//
// Interface cssom.Declarations
func (s *InlineStyle) GetPropertyValue(name string) string {
	decls := s.declarations()
	if d := find(decls, name); d >= 0 {
		return decls[d].Value
	}
	return ""
}

// GetPropertyPriority returns "important" for declarations marked as such.
//
// Interface cssom.Declarations
func (s *InlineStyle) GetPropertyPriority(name string) string {
	decls := s.declarations()
	if d := find(decls, name); d >= 0 && decls[d].Important {
		return cssom.PriorityImportant
	}
	return ""
}

// SetProperty sets a property, replacing a previous declaration.
// A value of "" removes the property. A value may carry its priority
// ("red !important") instead of passing it separately.
// Values which do not parse as a single declaration for name, e.g.
// "red; top: 0", are rejected and leave the declarations unchanged.
//
// Interface cssom.Declarations
func (s *InlineStyle) SetProperty(name, value, priority string) {
	value = strings.TrimSpace(value)
	important := strings.EqualFold(priority, cssom.PriorityImportant)
	if importantRegexp.MatchString(value) {
		important = true
		value = strings.TrimSpace(importantRegexp.ReplaceAllString(value, ""))
	}
	if value == "" {
		s.RemoveProperty(name)
		return
	}
	if !isSingleDeclaration(name, value) {
		tracer().Errorf("rejecting value %q for style property %s", value, name)
		return
	}
	decls := s.declarations()
	if d := find(decls, name); d >= 0 {
		decls[d].Value = value
		decls[d].Important = important
	} else {
		decls = append(decls, &css.Declaration{Property: name, Value: value, Important: important})
	}
	s.store(decls)
}

// RemoveProperty removes a property declaration and returns its former value.
// If the property has not been declared, "" is returned.
//
// Interface cssom.Declarations
func (s *InlineStyle) RemoveProperty(name string) string {
	decls := s.declarations()
	d := find(decls, name)
	if d < 0 {
		return ""
	}
	value := decls[d].Value
	s.store(append(decls[:d], decls[d+1:]...))
	return value
}

// CSSText returns the serialized form of the declaration block, e.g.
// "color: red; font-size: 2em;".
//
// Interface cssom.Declarations
func (s *InlineStyle) CSSText() string {
	return serialize(s.declarations())
}

// --- Parsing and serializing -----------------------------------------------

var importantRegexp = regexp.MustCompile(`(?i)\s*!important\s*$`)

func find(decls []*css.Declaration, name string) int {
	for i, d := range decls {
		if d.Property == name {
			return i
		}
	}
	return -1
}

// declarations parses the current style attribute. Property names are
// normalized; for repeated properties the last declaration wins.
func (s *InlineStyle) declarations() []*css.Declaration {
	text, ok := w3cdom.GetAttribute(s.node, "style")
	if !ok {
		return nil
	}
	return Parse(text)
}

// isSingleDeclaration is a predicate wether "name: value" parses as exactly
// one declaration of property name, with value unchanged.
func isSingleDeclaration(name, value string) bool {
	decls, err := parser.ParseDeclarations(name + ": " + value + ";")
	if err != nil || len(decls) != 1 {
		return false
	}
	d := decls[0]
	return cssom.PropertyName(d.Property) == name && !d.Important && d.Value == value
}

func (s *InlineStyle) store(decls []*css.Declaration) {
	w3cdom.SetAttribute(s.node, "style", serialize(decls))
}

// Parse parses the text of a style attribute into a list of declarations.
// Declarations without a value are dropped. If the text is malformed,
// the declarations up to the error are returned and the error is traced.
func Parse(text string) []*css.Declaration {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if !strings.HasSuffix(text, ";") {
		text += ";" // douceur drops a final declaration without terminator
	}
	parsed, err := parser.ParseDeclarations(text)
	if err != nil {
		tracer().Errorf("cannot parse style declarations %q: %v", text, err)
	}
	decls := make([]*css.Declaration, 0, len(parsed))
	for _, d := range parsed {
		if d.Property == "" || strings.TrimSpace(d.Value) == "" {
			continue
		}
		d.Property = cssom.PropertyName(d.Property)
		if i := find(decls, d.Property); i >= 0 {
			decls = append(decls[:i], decls[i+1:]...)
		}
		decls = append(decls, d)
	}
	return decls
}

func serialize(decls []*css.Declaration) string {
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d.String()
	}
	return strings.Join(parts, " ")
}
