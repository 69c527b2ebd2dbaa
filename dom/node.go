package dom

import (
	"fmt"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/thedom/dom/classlist"
	"github.com/npillmayer/thedom/dom/events"
	"github.com/npillmayer/thedom/dom/style"
	"github.com/npillmayer/thedom/dom/w3cdom"
	"github.com/npillmayer/thedom/maybe"
	"github.com/npillmayer/thedom/tokens"
	"golang.org/x/net/html"
)

// Ref is either a wrapped node or a raw *html.Node, see Raw.
type Ref interface {
	htmlNode() *html.Node
}

type raw struct {
	node *html.Node
}

func (r raw) htmlNode() *html.Node {
	return r.node
}

// Raw turns an *html.Node into a Ref.
func Raw(n *html.Node) Ref {
	return raw{node: n}
}

func unwrap(r Ref) *html.Node {
	if r == nil {
		return nil
	}
	return r.htmlNode()
}

// Node is a wrapper for an *html.Node.
type Node struct {
	node  *html.Node
	Class classlist.Set // CSS classes of the element
	Style style.Map     // inline styles of the element
}

// Wrap creates a wrapper for n. Wrapping nil will return nil.
func Wrap(n *html.Node) *Node {
	if n == nil {
		return nil
	}
	return &Node{
		node:  n,
		Class: classlist.Of(n),
		Style: style.MapOf(n),
	}
}

// HTMLNode returns the wrapped node.
func (n *Node) HTMLNode() *html.Node {
	if n == nil {
		return nil
	}
	return n.node
}

func (n *Node) htmlNode() *html.Node {
	return n.HTMLNode()
}

var _ Ref = &Node{}

// Equal is a predicate wether n and other wrap the same HTML node.
func (n *Node) Equal(other Ref) bool {
	return n != nil && n.node == unwrap(other)
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if name := n.Name(); name != "" {
		return fmt.Sprintf("<%s>", name)
	}
	return fmt.Sprintf("(%s)", n.Type())
}

// --- Search ----------------------------------------------------------------

func compile(selector string) cascadia.SelectorGroup {
	sel, err := cascadia.ParseGroup(selector)
	if err != nil {
		tracer().Errorf("invalid selector %q: %v", selector, err)
		return nil
	}
	return sel
}

// Find returns the first descendant of n matching a CSS selector (group),
// in document order. If none matches, Find returns nil.
//
// Invalid selectors never match.
func (n *Node) Find(selector string) *Node {
	if n == nil {
		return nil
	}
	sel := compile(selector)
	if sel == nil {
		return nil
	}
	return Wrap(cascadia.Query(n.node, sel))
}

// FindAll returns all descendants of n matching a CSS selector (group),
// in document order. The result may be empty.
func (n *Node) FindAll(selector string) NodeList {
	if n == nil {
		return NodeList{}
	}
	sel := compile(selector)
	if sel == nil {
		return NodeList{}
	}
	return WrapAll(cascadia.QueryAll(n.node, sel))
}

// Matches is a predicate wether n itself matches a CSS selector (group).
func (n *Node) Matches(selector string) bool {
	if n == nil {
		return false
	}
	sel := compile(selector)
	return sel != nil && sel.Match(n.node)
}

// --- Navigation ------------------------------------------------------------

// Parent returns the parent node, or nil for detached nodes and roots.
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return Wrap(n.node.Parent)
}

// Following returns the next sibling which is an element, or nil.
func (n *Node) Following() *Node {
	if n == nil {
		return nil
	}
	return Wrap(w3cdom.NextElementSibling(n.node))
}

// Preceding returns the previous sibling which is an element, or nil.
func (n *Node) Preceding() *Node {
	if n == nil {
		return nil
	}
	return Wrap(w3cdom.PreviousElementSibling(n.node))
}

// Children returns the element children of n.
func (n *Node) Children() NodeList {
	if n == nil {
		return NodeList{}
	}
	return WrapAll(w3cdom.ElementChildren(n.node))
}

// --- Relative position -----------------------------------------------------

// Position returns the position of other relative to n, as a bit mask.
func (n *Node) Position(other Ref) w3cdom.Position {
	o := unwrap(other)
	if n == nil || o == nil {
		return w3cdom.PositionDisconnected | w3cdom.PositionImplementationSpecific
	}
	return w3cdom.CompareDocumentPosition(n.node, o)
}

// Precedes is a predicate wether n comes before other in document order.
func (n *Node) Precedes(other Ref) bool {
	return n.Position(other).Has(w3cdom.PositionFollowing)
}

// Follows is a predicate wether n comes after other in document order.
func (n *Node) Follows(other Ref) bool {
	return n.Position(other).Has(w3cdom.PositionPreceding)
}

// Contains is a predicate wether other is a descendant of n.
func (n *Node) Contains(other Ref) bool {
	return n.Position(other).Has(w3cdom.PositionContainedBy)
}

// Contained is a predicate wether n is a descendant of other.
func (n *Node) Contained(other Ref) bool {
	return n.Position(other).Has(w3cdom.PositionContains)
}

// --- Metadata and attributes -----------------------------------------------

// Name returns the lower-case tag name of an element. For other nodes,
// Name returns "".
func (n *Node) Name() string {
	return w3cdom.TagName(n.HTMLNode())
}

// Type returns the kind of node.
func (n *Node) Type() w3cdom.Kind {
	return w3cdom.KindOf(n.HTMLNode())
}

// Attr returns the value of an attribute, or Nothing if the attribute
// is not set.
func (n *Node) Attr(name string) maybe.Maybe[string] {
	return maybe.Of(w3cdom.GetAttribute(n.HTMLNode(), name))
}

// SetAttr sets an attribute. It returns n, thus calls may be chained.
func (n *Node) SetAttr(name, value string) *Node {
	if n != nil {
		tracer().Debugf("dom: %v set attribute %s = %q", n, name, value)
		w3cdom.SetAttribute(n.node, name, value)
	}
	return n
}

// RemoveAttr removes an attribute and returns true if it has been set.
func (n *Node) RemoveAttr(name string) bool {
	return w3cdom.RemoveAttribute(n.HTMLNode(), name)
}

// --- Mutation --------------------------------------------------------------

// Append appends child as the last child of n. If child is already part
// of a tree, it is moved.
func (n *Node) Append(child Ref) error {
	c := unwrap(child)
	if n == nil || c == nil {
		return ErrNoNode
	}
	if w3cdom.IsInclusiveAncestor(c, n.node) {
		return fmt.Errorf("cannot append %v to %v: %w", Wrap(c), n, ErrHierarchy)
	}
	if c.Parent != nil {
		c.Parent.RemoveChild(c)
	}
	n.node.AppendChild(c)
	tracer().Debugf("dom: appended %v to %v", Wrap(c), n)
	return nil
}

// Attach appends n as the last child of parent.
func (n *Node) Attach(parent Ref) error {
	p := unwrap(parent)
	if p == nil {
		return ErrNoNode
	}
	return Wrap(p).Append(n)
}

// Remove detaches n from its parent. If n has no parent, ErrNoParent is
// returned.
func (n *Node) Remove() error {
	if n == nil {
		return ErrNoNode
	}
	if n.node.Parent == nil {
		return ErrNoParent
	}
	n.node.Parent.RemoveChild(n.node)
	tracer().Debugf("dom: removed %v from tree", n)
	return nil
}

// RemoveChild detaches child from n. If child is not a child of n,
// ErrNotAChild is returned.
func (n *Node) RemoveChild(child Ref) error {
	c := unwrap(child)
	if n == nil || c == nil {
		return ErrNoNode
	}
	if c.Parent != n.node {
		return ErrNotAChild
	}
	return Wrap(c).Remove()
}

// --- Content ---------------------------------------------------------------

// Text returns the concatenated text of n and its descendants.
func (n *Node) Text() string {
	return w3cdom.TextContent(n.HTMLNode())
}

// SetText replaces the children of n by a single text node.
func (n *Node) SetText(text string) error {
	if n == nil {
		return ErrNoNode
	}
	w3cdom.SetTextContent(n.node, text)
	return nil
}

// Content is an alias for Text.
func (n *Node) Content() string {
	return n.Text()
}

// SetContent is an alias for SetText.
func (n *Node) SetContent(text string) error {
	return n.SetText(text)
}

// HTML returns the markup of the children of n. If n cannot be rendered,
// "" is returned and the error is traced.
func (n *Node) HTML() string {
	if n == nil {
		return ""
	}
	markup, err := w3cdom.InnerHTML(n.node)
	if err != nil {
		tracer().Errorf("dom: cannot render %v: %v", n, err)
	}
	return markup
}

// SetHTML replaces the children of n by the nodes parsed from markup.
// Markup is parsed in the context of element n.
func (n *Node) SetHTML(markup string) error {
	if n == nil {
		return ErrNoNode
	}
	if err := w3cdom.SetInnerHTML(n.node, markup); err != nil {
		return fmt.Errorf("cannot set markup of %v: %w", n, err)
	}
	return nil
}

// --- Events ----------------------------------------------------------------

// On adds listener l for one or more event types, separated by whitespace,
// e.g. "click wheel".
//
// Listeners are kept in the process-wide registry events.Default, which
// references n until the listeners are removed. Call Forget before dropping
// a subtree which had listeners attached.
func (n *Node) On(names string, l events.Listener) *Node {
	if n != nil {
		for _, typ := range tokens.Split(names) {
			events.Default.Add(n.node, typ, l)
		}
	}
	return n
}

// Off removes listener l for one or more event types, separated by
// whitespace.
func (n *Node) Off(names string, l events.Listener) *Node {
	if n != nil {
		for _, typ := range tokens.Split(names) {
			events.Default.Remove(n.node, typ, l)
		}
	}
	return n
}

// Forget removes all listeners of n and of its descendants.
func (n *Node) Forget() *Node {
	if n != nil {
		forget(n.node)
	}
	return n
}

func forget(h *html.Node) {
	events.Default.Forget(h)
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		forget(ch)
	}
}

// Dispatch dispatches event e to n and returns the number of listeners
// called.
func (n *Node) Dispatch(e *events.Event) int {
	if n == nil {
		return 0
	}
	return events.Default.Dispatch(n.node, e)
}

// Trigger dispatches a new bubbling event of type name to n.
func (n *Node) Trigger(name string) int {
	return n.Dispatch(events.New(name, true))
}
