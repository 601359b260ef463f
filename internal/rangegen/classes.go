package rangegen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/backmassage/samplenamer/internal/pitch"
)

// ClassSet is a set of disabled note classes keyed by sharp spelling
// ("C#", never "Db"). The zero value is an empty set. Methods that change
// membership return a new set so a ClassSet can be shared between
// generations without copying.
type ClassSet struct {
	m map[string]struct{}
}

// NewClassSet builds a set from class names in either spelling. Flat
// names are stored as their sharp equivalent; unknown names are an error.
func NewClassSet(classes ...string) (ClassSet, error) {
	s := ClassSet{m: make(map[string]struct{}, len(classes))}
	for _, c := range classes {
		sharp, err := sharpClass(c)
		if err != nil {
			return ClassSet{}, err
		}
		s.m[sharp] = struct{}{}
	}
	return s, nil
}

// ParseClassList parses a comma or space separated class list such as
// "C#, Eb F". Letters are case-insensitive.
func ParseClassList(list string) (ClassSet, error) {
	fields := strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	return NewClassSet(fields...)
}

// Has reports whether class is disabled. class may be in either spelling.
func (s ClassSet) Has(class string) bool {
	sharp, err := sharpClass(class)
	if err != nil {
		return false
	}
	_, ok := s.m[sharp]
	return ok
}

// Len returns the number of disabled classes.
func (s ClassSet) Len() int { return len(s.m) }

// With returns a copy of s with class disabled.
func (s ClassSet) With(class string) ClassSet {
	sharp, err := sharpClass(class)
	if err != nil {
		return s
	}
	out := s.clone()
	out.m[sharp] = struct{}{}
	return out
}

// Without returns a copy of s with class enabled.
func (s ClassSet) Without(class string) ClassSet {
	sharp, err := sharpClass(class)
	if err != nil {
		return s
	}
	out := s.clone()
	delete(out.m, sharp)
	return out
}

// Toggle returns a copy of s with class flipped: a disabled class becomes
// enabled and vice versa.
func (s ClassSet) Toggle(class string) ClassSet {
	if s.Has(class) {
		return s.Without(class)
	}
	return s.With(class)
}

// Sorted returns the disabled classes in pitch order.
func (s ClassSet) Sorted() []string {
	out := make([]string, 0, len(s.m))
	for c := range s.m {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		a, _ := pitch.ClassIndex(out[i])
		b, _ := pitch.ClassIndex(out[j])
		return a < b
	})
	return out
}

// String joins the sorted classes with commas.
func (s ClassSet) String() string {
	return strings.Join(s.Sorted(), ",")
}

func (s ClassSet) clone() ClassSet {
	out := ClassSet{m: make(map[string]struct{}, len(s.m)+1)}
	for c := range s.m {
		out.m[c] = struct{}{}
	}
	return out
}

// sharpClass maps a class name in either spelling to its sharp name.
func sharpClass(class string) (string, error) {
	c := pitch.CanonicalNote(class)
	idx, ok := pitch.ClassIndex(c)
	if !ok {
		return "", fmt.Errorf("unknown note class %q", class)
	}
	return pitch.SharpClass(idx), nil
}
