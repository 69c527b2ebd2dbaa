package douceuradapter

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/thedom/dom/w3cdom"
)

func TestParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thedom.style")
	defer teardown()
	//
	decls := Parse("  color : red; Font-Size: 2em ; color: blue; margin: ;")
	if len(decls) != 2 {
		t.Fatalf("expected 2 declarations, have %d: %s", len(decls), serialize(decls))
	}
	if decls[0].Property != "font-size" || decls[0].Value != "2em" {
		t.Errorf("expected font-size: 2em first, have %s", decls[0])
	}
	if decls[1].Property != "color" || decls[1].Value != "blue" {
		t.Errorf("expected last color declaration to win, have %s", decls[1])
	}
	if Parse("   ") != nil {
		t.Error("expected blank text to contain no declarations")
	}
}

func TestParseWithoutTerminator(t *testing.T) {
	decls := Parse("color: blue;font-family: Helvetica")
	if len(decls) != 2 || decls[1].Value != "Helvetica" {
		t.Errorf("expected final declaration without ';' to be kept, have %s", serialize(decls))
	}
}

func TestInlineStyle(t *testing.T) {
	div := w3cdom.CreateElement("div")
	s := ForElement(div)
	if s.Length() != 0 || s.Item(0) != "" {
		t.Error("expected empty declaration block")
	}
	s.SetProperty("color", "red", "")
	s.SetProperty("top", "0", "important")
	if s.Length() != 2 || s.Item(1) != "top" {
		t.Errorf("expected 2 declarations, have %q", s.CSSText())
	}
	if s.GetPropertyPriority("top") != "important" || s.GetPropertyPriority("color") != "" {
		t.Error("expected only top to be important")
	}
	for _, bad := range []string{"blue; left: 0", "blue} left: 0", "left: 0"} {
		s.SetProperty("color", bad, "")
		if s.CSSText() != "color: red; top: 0 !important;" {
			t.Errorf("expected value %q to be rejected, have %q", bad, s.CSSText())
		}
	}
	s.SetProperty("font-family", "Helvetica, sans-serif", "")
	if v := s.GetPropertyValue("font-family"); v != "Helvetica, sans-serif" {
		t.Errorf("expected list value to be accepted, have %q", v)
	}
	s.RemoveProperty("font-family")
	if old := s.RemoveProperty("color"); old != "red" {
		t.Errorf("expected removed value to be red, is %q", old)
	}
	if old := s.RemoveProperty("color"); old != "" {
		t.Errorf("expected second removal to return empty value, is %q", old)
	}
	s.SetProperty("top", "", "")
	if v, _ := w3cdom.GetAttribute(div, "style"); v != "" {
		t.Errorf("expected empty style attribute, is %q", v)
	}
}
