/*
Package w3cdom provides W3C Document Object Model primitives on top of
HTML parse trees of package golang.org/x/net/html.

Package html is a fine parser and renderer, but it lacks much of what the
W3C DOM offers to scripts in a browser: node kinds, document order
comparison, text content, inner HTML and element-only navigation.
w3cdom fills these gaps with small functions operating on *html.Node.
Higher level packages build their wrappers on top of these.

See also https://www.w3schools.com/XML/dom_intro.asp

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package w3cdom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Kind is a closed classification of DOM nodes, following the W3C node types.
type Kind uint8

// Node kinds. KindNone is used for every node category which is not one of
// the W3C node types we recognize.
//
// Package html never produces processing instructions (HTML parses them as
// bogus comments) or document fragments; the kinds are provided for
// completeness of the classification.
const (
	KindNone Kind = iota
	KindElement
	KindText
	KindProcessingInstruction
	KindComment
	KindDocument
	KindDocumentType
	KindDocumentFragment
)

var kindNames = [...]string{
	KindNone:                  "",
	KindElement:               "element",
	KindText:                  "text",
	KindProcessingInstruction: "processing-instruction",
	KindComment:               "comment",
	KindDocument:              "document",
	KindDocumentType:          "document-type",
	KindDocumentFragment:      "document-fragment",
}

// String returns the W3C-ish name of a kind, e.g. "document-type".
// KindNone returns the empty string.
func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return ""
	}
	return kindNames[k]
}

// NodeType returns the numeric W3C nodeType of a kind, or 0 for KindNone.
func (k Kind) NodeType() int {
	switch k {
	case KindElement:
		return 1
	case KindText:
		return 3
	case KindProcessingInstruction:
		return 7
	case KindComment:
		return 8
	case KindDocument:
		return 9
	case KindDocumentType:
		return 10
	case KindDocumentFragment:
		return 11
	}
	return 0
}

// KindOf classifies an HTML node.
func KindOf(n *html.Node) Kind {
	if n == nil {
		return KindNone
	}
	switch n.Type {
	case html.ElementNode:
		return KindElement
	case html.TextNode:
		return KindText
	case html.CommentNode:
		return KindComment
	case html.DocumentNode:
		return KindDocument
	case html.DoctypeNode:
		return KindDocumentType
	}
	return KindNone
}

// IsElement is a predicate for element nodes.
func IsElement(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode
}

// TagName returns the lower-cased, trimmed tag name of an element, or ""
// for all other kinds of nodes.
func TagName(n *html.Node) string {
	if !IsElement(n) {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(n.Data))
}

// CreateElement creates a detached element node for a tag name.
// The tag name will be lower-cased.
func CreateElement(tagname string) *html.Node {
	tagname = strings.ToLower(strings.TrimSpace(tagname))
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tagname,
		DataAtom: atom.Lookup([]byte(tagname)),
	}
}

// --- Attributes ------------------------------------------------------------

// attrKey normalizes attribute names: HTML elements have ASCII case-insensitive
// attribute names, which the parser lower-cases.
func attrKey(n *html.Node, key string) string {
	if n.Namespace == "" {
		return strings.ToLower(key)
	}
	return key
}

// GetAttribute returns the value of an element's attribute.
// If n is not an element or the attribute is not set, the second return
// value will be false.
func GetAttribute(n *html.Node, key string) (string, bool) {
	if !IsElement(n) {
		return "", false
	}
	key = attrKey(n, key)
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttribute sets the value of an element's attribute. It does nothing for
// non-element nodes.
func SetAttribute(n *html.Node, key, value string) {
	if !IsElement(n) {
		return
	}
	key = attrKey(n, key)
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: value})
}

// RemoveAttribute removes an attribute from an element. It returns true if
// the attribute has been present.
func RemoveAttribute(n *html.Node, key string) bool {
	if !IsElement(n) {
		return false
	}
	key = attrKey(n, key)
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return true
		}
	}
	return false
}

// --- Element navigation ----------------------------------------------------

// NextElementSibling returns the next sibling of n which is an element, or nil.
func NextElementSibling(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return s
		}
	}
	return nil
}

// PreviousElementSibling returns the previous sibling of n which is an element, or nil.
func PreviousElementSibling(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	for s := n.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type == html.ElementNode {
			return s
		}
	}
	return nil
}

// ElementChildren returns the element children of n, in document order.
func ElementChildren(n *html.Node) []*html.Node {
	if n == nil {
		return nil
	}
	var children []*html.Node
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode {
			children = append(children, ch)
		}
	}
	return children
}

// IsInclusiveAncestor is a predicate wether a is n or an ancestor of n.
func IsInclusiveAncestor(a, n *html.Node) bool {
	if a == nil {
		return false
	}
	for ; n != nil; n = n.Parent {
		if n == a {
			return true
		}
	}
	return false
}

// --- Document parts --------------------------------------------------------

// DocumentElement returns the root element of a document (usually <html>).
func DocumentElement(doc *html.Node) *html.Node {
	if doc == nil || doc.Type != html.DocumentNode {
		return nil
	}
	for ch := doc.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode {
			return ch
		}
	}
	return nil
}

// Doctype returns the document type node of a document, if present.
func Doctype(doc *html.Node) *html.Node {
	if doc == nil || doc.Type != html.DocumentNode {
		return nil
	}
	for ch := doc.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.DoctypeNode {
			return ch
		}
	}
	return nil
}

// Head returns the <head> element of a document, if present.
func Head(doc *html.Node) *html.Node {
	root := DocumentElement(doc)
	if root == nil || root.DataAtom != atom.Html {
		return nil
	}
	for _, ch := range ElementChildren(root) {
		if ch.DataAtom == atom.Head {
			return ch
		}
	}
	return nil
}

// Body returns the <body> (or <frameset>) element of a document, if present.
func Body(doc *html.Node) *html.Node {
	root := DocumentElement(doc)
	if root == nil || root.DataAtom != atom.Html {
		return nil
	}
	for _, ch := range ElementChildren(root) {
		if ch.DataAtom == atom.Body || ch.DataAtom == atom.Frameset {
			return ch
		}
	}
	return nil
}
