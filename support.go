package propnet

import (
	"sort"
	"strings"
)

// Support is a set of assumption labels justifying a value,
// implemented as a sorted slice without duplicates.
// The zero Support is the empty set: a value that depends on nothing.
type Support []string

// NewSupport builds a Support from the given labels.
func NewSupport(labels ...string) Support {
	var s Support
	for _, l := range labels {
		s = s.Add(l)
	}
	return s
}

// Add returns s with label added.
func (s Support) Add(label string) Support {
	i := sort.SearchStrings(s, label)
	if i < len(s) && s[i] == label {
		return s
	}
	result := make(Support, 0, len(s)+1)
	result = append(result, s[:i]...)
	result = append(result, label)
	return append(result, s[i:]...)
}

// Contains tells whether label is in s.
func (s Support) Contains(label string) bool {
	i := sort.SearchStrings(s, label)
	return i < len(s) && s[i] == label
}

// Union returns the labels in either s or other.
func (s Support) Union(other Support) Support {
	result := make(Support, 0, len(s)+len(other))
	i, j := 0, 0
	for i < len(s) && j < len(other) {
		switch {
		case s[i] < other[j]:
			result = append(result, s[i])
			i++
		case s[i] > other[j]:
			result = append(result, other[j])
			j++
		default:
			result = append(result, s[i])
			i++
			j++
		}
	}
	result = append(result, s[i:]...)
	return append(result, other[j:]...)
}

// SubsetOf tells whether every label in s is also in other.
func (s Support) SubsetOf(other Support) bool {
	if len(s) > len(other) {
		return false
	}
	for _, l := range s {
		if !other.Contains(l) {
			return false
		}
	}
	return true
}

// Equal tells whether s and other hold the same labels.
func (s Support) Equal(other Support) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// MoreInformativeThan tells whether s is a proper subset of other.
// Fewer assumptions make a stronger claim.
func (s Support) MoreInformativeThan(other Support) bool {
	return !s.Equal(other) && s.SubsetOf(other)
}

func (s Support) String() string {
	return "{" + strings.Join(s, ", ") + "}"
}
