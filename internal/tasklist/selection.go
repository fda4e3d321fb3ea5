package tasklist

// Selection is an optional list index. The zero value selects nothing.
type Selection struct {
	index int
	ok    bool
}

// None is the "nothing selected" selection.
func None() Selection { return Selection{} }

// At selects index i.
func At(i int) Selection { return Selection{index: i, ok: true} }

// SelectionFromIndex converts a widget cursor, where -1 means nothing selected.
func SelectionFromIndex(i int) Selection {
	if i == -1 {
		return None()
	}
	return At(i)
}

// Index returns the selected index and whether anything is selected.
func (s Selection) Index() (int, bool) { return s.index, s.ok }

// Input is an optional prompt answer. The zero value is withheld.
type Input struct {
	value    string
	provided bool
}

// Provided wraps an answered prompt. The value may still be empty.
func Provided(v string) Input { return Input{value: v, provided: true} }

// Withheld is a cancelled prompt.
func Withheld() Input { return Input{} }

// Value returns the answer and whether one was given.
func (in Input) Value() (string, bool) { return in.value, in.provided }
