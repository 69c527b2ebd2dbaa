package style_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/thedom/dom/style"
	"github.com/npillmayer/thedom/dom/w3cdom"
	"golang.org/x/net/html"
)

func element(styleAttr string) *html.Node {
	n := w3cdom.CreateElement("body")
	if styleAttr != "" {
		w3cdom.SetAttribute(n, "style", styleAttr)
	}
	return n
}

func attr(n *html.Node) string {
	v, _ := w3cdom.GetAttribute(n, "style")
	return v
}

func TestMapGetSetDelete(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thedom.style")
	defer teardown()
	//
	body := element("color: red")
	styles := style.MapOf(body)
	if !styles.Has("color") {
		t.Fatal("expected already defined style to be present")
	}
	if v := styles.Get("color").WithDefault("none"); v != "red" {
		t.Errorf("expected color to be red, is %q", v)
	}
	styles.Set("color", "yellow").Set("color", "green")
	if v := styles.Get("color").WithDefault("none"); v != "green" {
		t.Errorf("expected color to be green, is %q", v)
	}
	if attr(body) != "color: green;" {
		t.Errorf("expected style attribute to be updated, is %q", attr(body))
	}
	styles.Set("color", "red; background: blue")
	if styles.Size() != 1 || styles.Has("background") {
		t.Errorf("expected value with extra declarations to be rejected, have %q", attr(body))
	}
	if v := styles.Get("color").WithDefault("none"); v != "green" {
		t.Errorf("expected color to remain green after rejected value, is %q", v)
	}
	if !styles.Delete("color") {
		t.Error("expected color to be deleted")
	}
	if !styles.Get("color").IsNothing() {
		t.Error("expected deleted style to be missing")
	}
	if styles.Size() != 0 {
		t.Errorf("expected no styles, have %d", styles.Size())
	}
	if styles.Delete("color") {
		t.Error("expected second deletion to fail")
	}
	styles.Set("font-size", "2em")
	if v := styles.Get("font-size").WithDefault(""); v != "2em" || styles.Size() != 1 {
		t.Errorf("expected font-size 2em as single property, is %q (size %d)", v, styles.Size())
	}
}

func TestMapReadsLiveAttribute(t *testing.T) {
	body := element("font-size: 2em")
	styles := style.MapOf(body)
	w3cdom.SetAttribute(body, "style", "")
	if !styles.Get("font-size").IsNothing() {
		t.Error("expected removal from the DOM to be reflected")
	}
	w3cdom.SetAttribute(body, "style", "color: black")
	if v := styles.Get("color").WithDefault(""); v != "black" {
		t.Errorf("expected addition to the DOM to be reflected, color is %q", v)
	}
}

func TestMapClearDoesNotSkip(t *testing.T) {
	body := element("")
	styles := style.MapOf(body)
	styles.Set("color", "blue").Set("font-size", "2em").Set("font-family", "Helvetica").Set("margin", "0")
	if styles.Size() != 4 {
		t.Fatalf("expected 4 properties, have %d: %s", styles.Size(), styles)
	}
	styles.Clear()
	if styles.Size() != 0 {
		t.Errorf("expected all properties to be cleared, have %q", attr(body))
	}
}

func TestMapIteration(t *testing.T) {
	list := []style.KeyValue{
		{Key: "color", Value: "blue"},
		{Key: "font-size", Value: "2em"},
		{Key: "font-family", Value: "Helvetica"},
	}
	styles := style.MapOf(element("color: blue;font-size: 2em;font-family: Helvetica"))
	entries := styles.Entries()
	for _, kv := range list {
		if step := entries.Next(); step.Done || step.Value != kv {
			t.Errorf("expected entry %v, have %v", kv, step)
		}
	}
	if !entries.Next().Done {
		t.Error("expected entries to be finished")
	}
	keys, values := styles.Keys(), styles.Values()
	for _, kv := range list {
		if k := keys.Next().Value; k != kv.Key {
			t.Errorf("expected key %q, have %q", kv.Key, k)
		}
		if v := values.Next().Value; v != kv.Value {
			t.Errorf("expected value %q, have %q", kv.Value, v)
		}
	}
	if !keys.Next().Done || !values.Next().Done {
		t.Error("expected keys and values to be finished")
	}
	for i, v := range styles.List() {
		if v != list[i].Value {
			t.Errorf("expected default iteration to yield %q, have %q", list[i].Value, v)
		}
	}
	i := 0
	styles.ForEach(func(value style.Property, key string, m style.Map) {
		if value != list[i].Value || key != list[i].Key {
			t.Errorf("forEach: expected %v, have %s=%s", list[i], key, value)
		}
		i++
	})
	if i != 3 {
		t.Errorf("expected 3 calls to forEach callback, have %d", i)
	}
}

func TestMapNormalizesNames(t *testing.T) {
	styles := style.MapOf(element("COLOR: red; --Brand: teal"))
	if !styles.Has("color") || !styles.Has("Color") {
		t.Error("expected property names to be case-insensitive")
	}
	if !styles.Has("--Brand") || styles.Has("--brand") {
		t.Error("expected custom property names to be case-sensitive")
	}
}

func TestMapPriority(t *testing.T) {
	body := element("color: red !important")
	styles := style.MapOf(body)
	if styles.Priority("color") != "important" {
		t.Errorf("expected color to be important, priority is %q", styles.Priority("color"))
	}
	if v := styles.Get("color").WithDefault(""); v != "red" {
		t.Errorf("expected priority to be stripped from value, have %q", v)
	}
	styles.Set("margin", "0 !important")
	if attr(body) != "color: red !important; margin: 0 !important;" {
		t.Errorf("unexpected serialization %q", attr(body))
	}
}

func TestMapOnNonElement(t *testing.T) {
	styles := style.MapOf(&html.Node{Type: html.TextNode, Data: "x"})
	styles.Set("color", "red")
	if styles.Size() != 0 || styles.Has("color") {
		t.Error("expected text nodes to never carry styles")
	}
	var zero style.Map
	if zero.Size() != 0 || !zero.Get("color").IsNothing() || zero.Delete("color") {
		t.Error("expected zero map to be empty")
	}
}

func TestPropertyHelpers(t *testing.T) {
	if !style.Property(" \t").IsEmpty() || style.Property("0").IsEmpty() {
		t.Error("expected whitespace-only properties to be empty")
	}
	if !style.Property("inherit").IsInherit() || !style.Property("initial").IsInitial() {
		t.Error("expected inheritance keywords to be recognized")
	}
}
