package tokens

// Step is the result of advancing a Cursor.
// If Done is set, Value is the zero value for T.
type Step[T any] struct {
	Value T
	Done  bool
}

// Cursor is a single-use forward iterator over a sequence.
// Every call to Iterate creates a fresh, independent cursor; cursors cannot
// be restarted.
type Cursor[T any] struct {
	seq  []T
	next int
}

// Iterate creates a cursor on a copy of seq. Later changes to seq
// will not be visible through the cursor.
func Iterate[T any](seq []T) *Cursor[T] {
	snapshot := make([]T, len(seq))
	copy(snapshot, seq)
	return &Cursor[T]{seq: snapshot}
}

// Next yields the next element of the sequence, with Done unset. After the
// last element has been delivered, Next returns a Step with Done set, forever
// after.
func (c *Cursor[T]) Next() Step[T] {
	if c == nil || c.next >= len(c.seq) {
		return Step[T]{Done: true}
	}
	v := c.seq[c.next]
	c.next++
	return Step[T]{Value: v}
}

// Rest drains the cursor and returns all elements not yet delivered.
func (c *Cursor[T]) Rest() []T {
	if c == nil || c.next >= len(c.seq) {
		return nil
	}
	rest := c.seq[c.next:]
	c.next = len(c.seq)
	return rest
}

// Map creates a new sequence by applying f to every element of seq.
func Map[S, T any](seq []S, f func(S) T) []T {
	r := make([]T, len(seq))
	for i, s := range seq {
		r[i] = f(s)
	}
	return r
}
