package domain

import "encoding/json"

// Text is a nullable text column value.
// Request fields that were omitted stay null all the way to the store, so
// the table's NOT NULL constraints are what reject incomplete input.
type Text struct {
	value string
	valid bool
}

// NewText wraps an optional request value; nil becomes null.
func NewText(v *string) Text {
	if v == nil {
		return Text{}
	}
	return Text{value: *v, valid: true}
}

// TextOf wraps a value that is known to be present.
func TextOf(v string) Text { return Text{value: v, valid: true} }

// Value returns the text and whether it is non-null.
func (t Text) Value() (string, bool) { return t.value, t.valid }

// String returns the text, or "" for null.
func (t Text) String() string { return t.value }

func (t Text) IsNull() bool { return !t.valid }

func (t Text) Equals(other Text) bool {
	return t.valid && other.valid && t.value == other.value
}

func (t Text) MarshalJSON() ([]byte, error) {
	if !t.valid {
		return []byte("null"), nil
	}
	return json.Marshal(t.value)
}
