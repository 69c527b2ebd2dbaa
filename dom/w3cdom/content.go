package w3cdom

import (
	"bytes"
	"errors"
	"strings"

	"golang.org/x/net/html"
)

// ErrNotAnElement is returned for operations which require an element node.
var ErrNotAnElement = errors.New("node is not an element")

// TextContent returns the text content of a node: for elements and
// document fragments the concatenated text of all descendant text nodes,
// for text and comment nodes their data. For documents and document types
// the result is the empty string.
func TextContent(n *html.Node) string {
	if n == nil {
		return ""
	}
	switch n.Type {
	case html.TextNode, html.CommentNode:
		return n.Data
	case html.ElementNode:
		var sb strings.Builder
		collectText(n, &sb)
		return sb.String()
	}
	return ""
}

func collectText(n *html.Node, sb *strings.Builder) {
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		switch ch.Type {
		case html.TextNode:
			sb.WriteString(ch.Data)
		case html.ElementNode:
			collectText(ch, sb)
		}
	}
}

// SetTextContent replaces the content of a node with text.
// For elements, all children are removed and, if text is non-empty,
// replaced by a single text node. For text and comment nodes the data is
// replaced. For all other kinds of nodes SetTextContent does nothing.
func SetTextContent(n *html.Node, text string) {
	if n == nil {
		return
	}
	switch n.Type {
	case html.TextNode, html.CommentNode:
		n.Data = text
	case html.ElementNode:
		RemoveChildren(n)
		if text != "" {
			n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
		}
	}
}

// RemoveChildren detaches all children of n.
func RemoveChildren(n *html.Node) {
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
}

// InnerHTML serializes the children of n to HTML.
func InnerHTML(n *html.Node) (string, error) {
	if n == nil {
		return "", nil
	}
	var buf bytes.Buffer
	literal := IsElement(n) && rawTextElements[TagName(n)]
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if literal && ch.Type == html.TextNode {
			buf.WriteString(ch.Data) // html.Render escapes a detached text node
			continue
		}
		if err := html.Render(&buf, ch); err != nil {
			return buf.String(), err
		}
	}
	return buf.String(), nil
}

// SetInnerHTML parses markup as an HTML fragment in the context of
// element n and replaces n's children by the result.
func SetInnerHTML(n *html.Node, markup string) error {
	if !IsElement(n) {
		return ErrNotAnElement
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), n)
	if err != nil {
		return err
	}
	RemoveChildren(n)
	for _, ch := range nodes {
		if ch.Parent != nil {
			ch.Parent.RemoveChild(ch)
		}
		n.AppendChild(ch)
	}
	return nil
}

// Elements whose text children are rendered without escaping.
var rawTextElements = map[string]bool{
	"iframe":    true,
	"noembed":   true,
	"noframes":  true,
	"noscript":  true,
	"plaintext": true,
	"script":    true,
	"style":     true,
	"xmp":       true,
}
