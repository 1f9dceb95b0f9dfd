package dish

import "strings"

const MaxNameLength = 100

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Name{}, ErrEmptyName
	}
	if len(t) > MaxNameLength {
		return Name{}, ErrNameTooLong
	}
	return Name{value: t}, nil
}

func (n Name) String() string { return n.value }
