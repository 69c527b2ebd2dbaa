package w3cdom

import "golang.org/x/net/html"

// Position is a bitmask describing the position of a node relative to
// a reference node, as returned by CompareDocumentPosition.
type Position uint16

// Document position bits, as defined by the W3C DOM.
const (
	PositionDisconnected           Position = 0x01
	PositionPreceding              Position = 0x02
	PositionFollowing              Position = 0x04
	PositionContains               Position = 0x08
	PositionContainedBy            Position = 0x10
	PositionImplementationSpecific Position = 0x20
)

// Has is a predicate wether all bits of mask are set in p.
func (p Position) Has(mask Position) bool {
	return p&mask == mask
}

// CompareDocumentPosition reports the position of other relative to ref,
// e.g., PositionFollowing if other comes after ref in document order.
// Ancestors precede their descendants.
//
// For nodes in different trees the result is
// PositionDisconnected|PositionImplementationSpecific, without an ordering bit.
// Comparing a node to itself yields 0.
func CompareDocumentPosition(ref, other *html.Node) Position {
	if ref == other {
		return 0
	}
	if ref == nil || other == nil {
		return PositionDisconnected | PositionImplementationSpecific
	}
	a, b := ancestry(ref), ancestry(other)
	if a[0] != b[0] { // different roots
		return PositionDisconnected | PositionImplementationSpecific
	}
	k := 1
	for k < len(a) && k < len(b) && a[k] == b[k] {
		k++
	}
	if k == len(a) { // ref is an ancestor of other
		return PositionContainedBy | PositionFollowing
	}
	if k == len(b) { // other is an ancestor of ref
		return PositionContains | PositionPreceding
	}
	// a[k] and b[k] are different children of a[k-1]
	for s := a[k].NextSibling; s != nil; s = s.NextSibling {
		if s == b[k] {
			return PositionFollowing
		}
	}
	return PositionPreceding
}

// ancestry returns the path from the root of n's tree down to n.
func ancestry(n *html.Node) []*html.Node {
	var path []*html.Node
	for ; n != nil; n = n.Parent {
		path = append(path, n)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
