package model

import (
	"slices"

	"github.com/google/uuid"
)

// IDList is an ordered list of entity references, stored as a jsonb array.
type IDList []uuid.UUID

// IndexOf reports the position of id in the list and whether it is present.
func (l IDList) IndexOf(id uuid.UUID) (int, bool) {
	for i, v := range l {
		if v == id {
			return i, true
		}
	}
	return -1, false
}

func (l IDList) Contains(id uuid.UUID) bool {
	_, ok := l.IndexOf(id)
	return ok
}

// Remove deletes the first occurrence of id, keeping the relative order of
// the remaining elements. Removing an absent id is a no-op.
func (l IDList) Remove(id uuid.UUID) IDList {
	if i, ok := l.IndexOf(id); ok {
		return slices.Delete(l, i, i+1)
	}
	return l
}

// MoveElement moves the element at index from to index to, shifting the
// elements in between. A from index outside the list leaves it unchanged,
// so callers that failed to locate an element may pass -1. An out-of-range
// to index is clamped to the nearest end of the list.
func MoveElement[S ~[]E, E any](s S, from, to int) S {
	if from < 0 || from >= len(s) {
		return s
	}
	e := s[from]
	s = slices.Delete(s, from, from+1)
	if to < 0 {
		to = 0
	} else if to > len(s) {
		to = len(s)
	}
	return slices.Insert(s, to, e)
}
