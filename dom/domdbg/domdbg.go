/*
Package domdbg implements helpers to debug a DOM tree.

Print renders a subtree as indented text, suitable for logging in tests.
ToGraphViz outputs a diagram in GraphViz (DOT) format, including the classes
and inline styles of elements.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package domdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/thedom/dom"
	"github.com/npillmayer/thedom/dom/style"
	"github.com/npillmayer/thedom/dom/w3cdom"
	tp "github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// Print returns a textual tree representation of the subtree under n.
func Print(n *dom.Node) string {
	if n == nil {
		return "<nil>\n"
	}
	p := tp.NewWithRoot(label(n))
	ppt(p, n.HTMLNode())
	return p.String()
}

func ppt(p tp.Tree, h *html.Node) {
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		wrapped := dom.Wrap(ch)
		if ch.FirstChild == nil {
			p.AddNode(label(wrapped))
			continue
		}
		ppt(p.AddBranch(label(wrapped)), ch)
	}
}

// label returns a one-line description of a node, e.g. `<div #main .a.b>`.
func label(n *dom.Node) string {
	switch n.Type() {
	case w3cdom.KindElement:
		var sb strings.Builder
		sb.WriteString("<" + n.Name())
		if id, ok := n.Attr("id").Get(); ok {
			sb.WriteString(" #" + id)
		}
		if n.Class.Size() > 0 {
			sb.WriteString(" ." + strings.Join(n.Class.List(), "."))
		}
		if n.Style.Size() > 0 {
			sb.WriteString(fmt.Sprintf(" {%s}", n.Style))
		}
		sb.WriteString(">")
		return sb.String()
	case w3cdom.KindText:
		return fmt.Sprintf("%q", shortText(n.HTMLNode().Data, 20))
	case w3cdom.KindComment:
		return fmt.Sprintf("<!-- %s -->", shortText(n.HTMLNode().Data, 20))
	case w3cdom.KindDocumentType:
		return fmt.Sprintf("<!DOCTYPE %s>", n.HTMLNode().Data)
	case w3cdom.KindDocument:
		return "#document"
	}
	return "?"
}

func shortText(s string, max int) string {
	if r := []rune(s); len(r) > max {
		return string(r[:max]) + "..."
	}
	return s
}

// --- GraphViz --------------------------------------------------------------

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname  string
	NodeTmpl  *template.Template
	EdgeTmpl  *template.Template
	StyleTmpl *template.Template
}

// ToGraphViz outputs a diagram for a DOM (sub-)tree. The diagram is in
// GraphViz (DOT) format. Elements with classes or inline styles will have
// an attached box listing them.
func ToGraphViz(n *dom.Node, w io.Writer) error {
	if n == nil {
		return dom.ErrNoNode
	}
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Funcs(
		template.FuncMap{
			"shortstring": dotText,
		}).Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.StyleTmpl = template.Must(template.New("styles").Parse(stylesTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[*html.Node]string, 256)
	if err = nodes(n, w, dict, &gparams); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a DOM node and a testing.T, it will
// create a Graphiviz image of the DOM tree under `doc` and write it to
// a file in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
func Dotty(doc *dom.Node, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "dom.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing DOM digraph to %s\n", tmpfile.Name())
	if err = ToGraphViz(doc, tmpfile); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Log("writing DOM tree image to tree.svg\n")
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	N    *dom.Node
	Name string
}

func (n node) IsText() bool {
	return n.N.Type() == w3cdom.KindText
}

func (n node) Label() string {
	return label(n.N)
}

func nodes(n *dom.Node, w io.Writer, dict map[*html.Node]string, gparams *graphParamsType) error {
	if err := domNode(n, w, dict, gparams); err != nil {
		return err
	}
	for ch := n.HTMLNode().FirstChild; ch != nil; ch = ch.NextSibling {
		c := dom.Wrap(ch)
		if err := nodes(c, w, dict, gparams); err != nil {
			return err
		}
		if err := domEdge(n, c, w, dict, gparams); err != nil {
			return err
		}
	}
	return nil
}

func domNode(n *dom.Node, w io.Writer, dict map[*html.Node]string, gparams *graphParamsType) error {
	name := dict[n.HTMLNode()]
	if name == "" {
		l := len(dict) + 1
		name = fmt.Sprintf("node%05d", l)
		dict[n.HTMLNode()] = name
	}
	if err := gparams.NodeTmpl.Execute(w, node{n, name}); err != nil {
		return err
	}
	return domStyles(n, name, w, gparams)
}

type styleBox struct {
	Name    string
	Classes []string
	Styles  []style.KeyValue
}

func domStyles(n *dom.Node, name string, w io.Writer, gparams *graphParamsType) error {
	box := styleBox{Name: name, Classes: n.Class.List(), Styles: n.Style.Entries().Rest()}
	if len(box.Classes) == 0 && len(box.Styles) == 0 {
		return nil
	}
	return gparams.StyleTmpl.Execute(w, box)
}

type edge struct {
	N1, N2 node
}

func domEdge(n1 *dom.Node, n2 *dom.Node, w io.Writer, dict map[*html.Node]string,
	gparams *graphParamsType) error {
	//
	name1 := dict[n1.HTMLNode()]
	name2 := dict[n2.HTMLNode()]
	e := edge{node{n1, name1}, node{n2, name2}}
	return gparams.EdgeTmpl.Execute(w, e)
}

func dotText(n *dom.Node) string {
	s := "\"\\\"" + shortText(n.HTMLNode().Data, 10) + "\\\"\""
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if .IsText }}
{{ .Name }}	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .Label }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const stylesTmpl = `{{ .Name }}s [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      {{ if .Classes }}<tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ range .Classes }}.{{ . }} {{ end }}</font></td></tr>{{ end }}
      {{ range .Styles }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ end }}
    </table>> ] ;
{{ .Name }} -> {{ .Name }}s [dir=none weight=1 style="dashed"] ;
`

const domEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`
