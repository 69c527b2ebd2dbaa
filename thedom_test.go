package thedom

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/thedom/dom"
	"github.com/npillmayer/thedom/dom/domdbg"
	"github.com/npillmayer/thedom/dom/events"
	"github.com/npillmayer/thedom/dom/w3cdom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const page = `<!DOCTYPE html>
<html lang="en">
<head><title>thedom</title></head>
<body>
<ul id="list"><li class="item">one</li><li class="item">two</li></ul>
</body>
</html>`

func TestFromDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thedom.dom")
	defer teardown()
	//
	doc, err := ParseString(page)
	require.NoError(t, err)
	require.NotNil(t, doc.Body)
	assert.Equal(t, "body", doc.Body.Name())
	assert.Equal(t, "head", doc.Head.Name())
	assert.Equal(t, "html", doc.HTML.Name())
	assert.Equal(t, "en", doc.HTML.Attr("lang").WithDefault(""))
	assert.Equal(t, w3cdom.KindDocumentType, doc.Doctype.Type())
	assert.Equal(t, w3cdom.KindDocument, doc.Node().Type())
	assert.True(t, doc.Body.Parent().Equal(doc.HTML))
	t.Logf("document =\n%s", domdbg.Print(doc.Node()))
}

func TestFromDocumentWithoutDoctype(t *testing.T) {
	doc, err := ParseString("<p>hello</p>")
	require.NoError(t, err)
	assert.Nil(t, doc.Doctype)
	assert.NotNil(t, doc.Body)
	assert.Equal(t, "hello", doc.Body.Text())
	other := FromDocument(w3cdom.CreateElement("div"))
	assert.Nil(t, other.Body)
	assert.Nil(t, other.HTML)
}

func TestImport(t *testing.T) {
	assert.Nil(t, Import(nil))
	root, err := html.Parse(strings.NewReader(page))
	require.NoError(t, err)
	n := Import(root)
	assert.True(t, n.Equal(dom.Raw(root)))
	ul := n.Find("#list")
	require.NotNil(t, ul)
	assert.Equal(t, 2, ul.Children().Len())
}

func TestCreate(t *testing.T) {
	doc, err := ParseString(page)
	require.NoError(t, err)
	li := doc.Create(" LI ")
	assert.Equal(t, "li", li.Name())
	assert.Nil(t, li.Parent())
	assert.Equal(t, "li", li.HTMLNode().DataAtom.String())
	li.Class.Add("item").Add("new")
	require.NoError(t, li.SetText("three"))
	ul := doc.Body.Find("ul")
	require.NoError(t, ul.Append(li))
	items := doc.Body.FindAll("li.item")
	assert.Equal(t, 3, items.Len())
	assert.True(t, items.At(2).Equal(li))
	assert.Equal(t, `<li class="item new">three</li>`, lastChildMarkup(t, ul))
}

func lastChildMarkup(t *testing.T, n *dom.Node) string {
	var buf bytes.Buffer
	require.NoError(t, html.Render(&buf, n.HTMLNode().LastChild))
	return buf.String()
}

func TestEventsThroughDocument(t *testing.T) {
	doc, err := ParseString(page)
	require.NoError(t, err)
	var seen []string
	h := events.Func(func(e *events.Event) {
		seen = append(seen, dom.Wrap(e.CurrentTarget).Name())
	})
	items := doc.Body.FindAll("li")
	items.On("click", h)
	doc.Body.On("click", h)
	defer items.Off("click", h)
	defer doc.Body.Off("click", h)
	n := items.At(0).Trigger("click")
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"li", "body"}, seen)
}

func TestConfigureTracing(t *testing.T) {
	conf := testconfig.Conf{
		"tracing.adapter":         "go",
		"tracelevel.root":         "Error",
		"tracelevel.thedom.dom":   "Debug",
		"tracelevel.thedom.style": "Info",
	}
	require.NoError(t, ConfigureTracing(conf))
	defer trace2go.Teardown()
	assert.Equal(t, tracing.LevelDebug, tracing.Select("thedom.dom").GetTraceLevel())
	assert.Equal(t, tracing.LevelInfo, tracing.Select("thedom.style").GetTraceLevel())
}
