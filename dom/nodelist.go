package dom

import (
	"github.com/npillmayer/thedom/dom/events"
	"github.com/npillmayer/thedom/tokens"
	"golang.org/x/net/html"
)

// NodeList is a list of wrapped nodes. It is a snapshot: changing the tree
// will not change the list.
type NodeList []*Node

// WrapAll wraps every node of nodes.
func WrapAll(nodes []*html.Node) NodeList {
	list := make(NodeList, 0, len(nodes))
	for _, n := range nodes {
		if n != nil {
			list = append(list, Wrap(n))
		}
	}
	return list
}

// Len returns the number of nodes in the list.
func (l NodeList) Len() int {
	return len(l)
}

// At returns the i-th node of the list, or nil if i is out of range.
func (l NodeList) At(i int) *Node {
	if i < 0 || i >= len(l) {
		return nil
	}
	return l[i]
}

// Values returns a cursor over the nodes of the list.
func (l NodeList) Values() *tokens.Cursor[*Node] {
	return tokens.Iterate(l)
}

// On adds listener l to every node of the list, see Node.On.
func (l NodeList) On(names string, listener events.Listener) NodeList {
	for _, n := range l {
		n.On(names, listener)
	}
	return l
}

// Off removes listener l from every node of the list, see Node.Off.
func (l NodeList) Off(names string, listener events.Listener) NodeList {
	for _, n := range l {
		n.Off(names, listener)
	}
	return l
}

// Forget removes all listeners of the nodes of the list and of their
// descendants, see Node.Forget.
func (l NodeList) Forget() NodeList {
	for _, n := range l {
		n.Forget()
	}
	return l
}
