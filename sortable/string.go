package sortable

// String is a sortable wrapper type for the built-in string type,
// ordered lexicographically by byte value.
type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}
