package ltcheck

// Action is a cursor move.
type Action string

const (
	First    Action = "first"
	Last     Action = "last"
	Next     Action = "next"
	Previous Action = "previous"
)

// ParseAction maps a token to an Action. It accepts the full names and the
// one-letter forms f, l, n, p.
func ParseAction(s string) (Action, bool) {
	switch s {
	case "f", string(First):
		return First, true
	case "l", string(Last):
		return Last, true
	case "n", string(Next):
		return Next, true
	case "p", string(Previous):
		return Previous, true
	}
	return "", false
}

// Cursor is a circular position over a slice of errors.
//
// It does not remember which slice it walked: after the slice is replaced
// the caller must move it to First (or Reset it) before navigating.
type Cursor struct {
	pos int
}

// Position returns the zero-based position.
func (c *Cursor) Position() int { return c.pos }

// Reset moves the cursor back to 0 without delivering anything.
func (c *Cursor) Reset() { c.pos = 0 }

// Navigate applies a to the cursor and hands the item at the new position
// to consumer. It does nothing and returns false on an empty slice or an
// unknown action.
func (c *Cursor) Navigate(items []*Error, a Action, consumer func(*Error)) bool {
	n := len(items)
	if n == 0 {
		return false
	}
	switch a {
	case First:
		c.pos = 0
	case Last:
		c.pos = n - 1
	case Next:
		c.pos = (c.pos + 1) % n
	case Previous:
		c.pos = (c.pos - 1 + n) % n
	default:
		return false
	}
	if consumer != nil {
		consumer(items[c.pos])
	}
	return true
}

// Goto jumps to the 1-based position n and hands that item to consumer.
func (c *Cursor) Goto(items []*Error, n int, consumer func(*Error)) error {
	if n < 1 || n > len(items) {
		return &PositionError{N: n, Len: len(items)}
	}
	c.pos = n - 1
	if consumer != nil {
		consumer(items[c.pos])
	}
	return nil
}
