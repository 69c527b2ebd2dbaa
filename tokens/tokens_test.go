package tokens_test

import (
	"reflect"
	"testing"

	"github.com/npillmayer/thedom/tokens"
)

func TestSplitDiscardsEmpty(t *testing.T) {
	for _, text := range []string{"", " ", "\t\n  "} {
		if toks := tokens.Split(text); len(toks) != 0 {
			t.Errorf("expected Split(%q) to be empty, is %#v", text, toks)
		}
	}
	toks := tokens.Split("  a \t b\n\nc  ")
	if !reflect.DeepEqual(toks, []string{"a", "b", "c"}) {
		t.Errorf("expected tokens [a b c], have %#v", toks)
	}
}

func TestSplitJoinRoundTrip(t *testing.T) {
	seqs := [][]string{
		{"one"},
		{"a", "b", "c"},
		{"btn", "btn-primary", "is-ÄÖÜ"},
	}
	for _, seq := range seqs {
		again := tokens.Split(tokens.Join(seq))
		if !reflect.DeepEqual(seq, again) {
			t.Errorf("expected Split(Join(%v)) to reconstruct input, have %v", seq, again)
		}
	}
}

func TestIndexOfIsCaseSensitive(t *testing.T) {
	toks := []string{"Foo", "foo"}
	if inx := tokens.IndexOf(toks, "foo"); inx != 1 {
		t.Errorf("expected foo at position 1, is %d", inx)
	}
	if inx := tokens.IndexOf(toks, "FOO"); inx != -1 {
		t.Errorf("expected FOO not to be found, is at %d", inx)
	}
}

func TestIsToken(t *testing.T) {
	if tokens.IsToken("") || tokens.IsToken("a b") || !tokens.IsToken("a-b") {
		t.Error("token predicate misclassifies")
	}
}

func TestCursor(t *testing.T) {
	c := tokens.Iterate([]string{"a", "b", "c"})
	for _, expected := range []string{"a", "b", "c"} {
		step := c.Next()
		if step.Done || step.Value != expected {
			t.Fatalf("expected step %q, have %#v", expected, step)
		}
	}
	for i := 0; i < 3; i++ {
		if step := c.Next(); !step.Done {
			t.Errorf("expected cursor to stay done, have %#v", step)
		}
	}
}

func TestCursorIsSnapshot(t *testing.T) {
	seq := []int{1, 2, 3}
	c := tokens.Iterate(seq)
	seq[0] = 100
	if v := c.Next().Value; v != 1 {
		t.Errorf("expected cursor to iterate over a snapshot, got %d", v)
	}
	rest := c.Rest()
	if !reflect.DeepEqual(rest, []int{2, 3}) {
		t.Errorf("expected rest to be [2 3], is %v", rest)
	}
	if !c.Next().Done {
		t.Error("expected cursor to be drained by Rest")
	}
}

func TestCursorsAreIndependent(t *testing.T) {
	seq := []int{1, 2}
	c1, c2 := tokens.Iterate(seq), tokens.Iterate(seq)
	c1.Next()
	if v := c2.Next().Value; v != 1 {
		t.Errorf("expected second cursor to start at 1, is at %d", v)
	}
}

func TestEmptyCursor(t *testing.T) {
	var c *tokens.Cursor[string]
	if !c.Next().Done {
		t.Error("expected nil cursor to be done")
	}
	if !tokens.Iterate[string](nil).Next().Done {
		t.Error("expected cursor on empty sequence to be done")
	}
}

func TestMap(t *testing.T) {
	pairs := tokens.Map([]string{"x", "y"}, func(s string) tokens.Pair[string, string] {
		return tokens.Pair[string, string]{Key: s, Value: s}
	})
	if len(pairs) != 2 || pairs[1].Key != "y" || pairs[1].Value != "y" {
		t.Errorf("unexpected pairs %v", pairs)
	}
}
