/*
Package thedom wraps HTML documents into an ergonomic, DOM-like API.

Documents are trees of golang.org/x/net/html. Import wraps any node of such a
tree, FromDocument bundles the well-known parts of a document. Everything else
is reached by navigating from a wrapped node, see package dom.

	doc, err := thedom.ParseString(`<html><body><p class="a">Hello</p></body></html>`)
	if err != nil { … }
	p := doc.Body.Find("p.a")
	p.Class.Add("greeting")
	p.Style.Set("color", "blue")
	item := doc.Create("div")
	item.SetText("World")
	doc.Body.Append(item)

Tracing is done to tracer keys 'thedom.dom', 'thedom.style' and
'thedom.events'. Tracing is silent unless configured, see ConfigureTracing.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package thedom

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/thedom/dom"
	"github.com/npillmayer/thedom/dom/w3cdom"
	"golang.org/x/net/html"
)

// Import wraps an HTML node. Importing nil results in nil.
func Import(n *html.Node) *dom.Node {
	return dom.Wrap(n)
}

// Document bundles the parts of an HTML document. Parts missing in the
// document are nil.
type Document struct {
	HTML    *dom.Node // the document element
	Head    *dom.Node
	Body    *dom.Node // <body> or <frameset>
	Doctype *dom.Node
	doc     *html.Node
}

// FromDocument wraps the parts of document node doc. If doc is not a
// document node, all parts will be nil.
func FromDocument(doc *html.Node) *Document {
	return &Document{
		HTML:    dom.Wrap(w3cdom.DocumentElement(doc)),
		Head:    dom.Wrap(w3cdom.Head(doc)),
		Body:    dom.Wrap(w3cdom.Body(doc)),
		Doctype: dom.Wrap(w3cdom.Doctype(doc)),
		doc:     doc,
	}
}

// Parse parses an HTML document from r.
func Parse(r io.Reader) (*Document, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("cannot parse HTML document: %w", err)
	}
	return FromDocument(doc), nil
}

// ParseString parses an HTML document from a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Node returns the document node itself.
func (d *Document) Node() *dom.Node {
	if d == nil {
		return nil
	}
	return dom.Wrap(d.doc)
}

// Create creates a new element with a given tag name. The element is not
// part of the document until it is appended somewhere.
func (d *Document) Create(tagname string) *dom.Node {
	return dom.Wrap(w3cdom.CreateElement(tagname))
}

// ConfigureTracing sets up tracing for this module from a configuration.
// Configuration keys are:
//
//	tracing.adapter        "go" for Go's log package, or any adapter registered
//	                       with tracing.RegisterTraceAdapter
//	tracelevel.root        trace level of the root tracer
//	tracelevel.thedom.dom  trace level for tracer 'thedom.dom', etc.
//
// Trace levels are "Debug", "Info" or "Error".
func ConfigureTracing(conf schuko.Configuration) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}
