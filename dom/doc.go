/*
Package dom provides convenience wrappers for nodes of an HTML tree.

Nodes of golang.org/x/net/html are plain data structures. Type Node wraps
an *html.Node and offers an API modelled after the browser DOM:
search by CSS selectors, navigation between elements, relative position,
attributes, content as text or markup, and event listeners. Sub-adapters
give access to the classes (package classlist) and inline styles
(package style) of an element.

Wrappers hold no state besides the wrapped node; they are created on demand
and may be discarded at any time. Wrapping the same HTML node twice results
in two distinct wrappers, which compare as equal with Equal.

	body := dom.Wrap(htmlBody)
	for _, p := range body.FindAll("p.note") {
		p.Class.Add("highlight")
		p.Style.Set("color", "red")
	}

A nil *Node stands for "no node". All methods may be called on nil:
navigation will return nil, predicates false, and mutations ErrNoNode.

Operations which accept either a wrapped or an unwrapped node take a Ref.
Use Raw to pass an *html.Node.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package dom

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/thedom/dom/w3cdom"
)

// tracer will return a tracer. We are tracing to 'thedom.dom'
func tracer() tracing.Trace {
	return tracing.Select("thedom.dom")
}

// Errors returned by mutating operations.
var (
	ErrNoNode       = errors.New("no node")
	ErrNoParent     = errors.New("node has no parent")
	ErrNotAChild    = errors.New("node is not a child of this node")
	ErrHierarchy    = errors.New("node may not be inserted into its own subtree")
	ErrNotAnElement = w3cdom.ErrNotAnElement
)
