package ndn

import (
	"slices"
	"strings"

	enc "github.com/named-data/ndnb/std/encoding"
)

// ExcludeEntry is one entry of an Exclude filter. Comp is excluded, and if
// Any is set so is every component between Comp and the next entry.
// An entry with an empty Comp and Any set excludes from the beginning.
type ExcludeEntry struct {
	Comp enc.Component
	Any  bool
}

// Exclude is a set of excluded name components, kept as entries in
// ascending canonical order. The zero value excludes nothing.
type Exclude struct {
	entries []ExcludeEntry
}

// NewExclude builds a filter from entries in strictly ascending canonical
// order.
func NewExclude(entries ...ExcludeEntry) (Exclude, error) {
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Comp.Compare(entries[i].Comp) >= 0 {
			return Exclude{}, ErrInvalidValue{Item: "Exclude", Value: entries[i].Comp.String()}
		}
	}
	return Exclude{entries: slices.Clone(entries)}, nil
}

// Entries returns a copy of the entries.
func (e Exclude) Entries() []ExcludeEntry {
	return slices.Clone(e.entries)
}

func (e Exclude) Len() int {
	return len(e.entries)
}

func (e Exclude) IsEmpty() bool {
	return len(e.entries) == 0
}

func (e Exclude) Equal(rhs Exclude) bool {
	return slices.EqualFunc(e.entries, rhs.entries, func(a, b ExcludeEntry) bool {
		return a.Any == b.Any && a.Comp.Equal(b.Comp)
	})
}

// floor returns the index of the last entry not greater than c, or -1.
func (e Exclude) floor(c enc.Component) int {
	i, found := slices.BinarySearchFunc(e.entries, c, func(ent ExcludeEntry, c enc.Component) int {
		return ent.Comp.Compare(c)
	})
	if found {
		return i
	}
	return i - 1
}

// IsExcluded reports whether the filter excludes c.
func (e Exclude) IsExcluded(c enc.Component) bool {
	i := e.floor(c)
	if i < 0 {
		return false
	}
	return e.entries[i].Any || e.entries[i].Comp.Equal(c)
}

// ExcludeOne excludes a single component.
func (e *Exclude) ExcludeOne(c enc.Component) {
	if e.IsExcluded(c) {
		return
	}
	i := e.floor(c) + 1
	e.entries = slices.Insert(e.entries, i, ExcludeEntry{Comp: c.Clone()})
}

// ExcludeBefore excludes every component up to and including to.
func (e *Exclude) ExcludeBefore(to enc.Component) error {
	return e.ExcludeRange(enc.Component{Val: []byte{}}, to)
}

// ExcludeAfter excludes from and every component after it.
func (e *Exclude) ExcludeAfter(from enc.Component) {
	e.excludeFrom(from, nil)
}

// ExcludeRange excludes every component in [from, to].
// from must be less than to; use ExcludeOne for a single component.
func (e *Exclude) ExcludeRange(from, to enc.Component) error {
	if from.Compare(to) >= 0 {
		return ErrInvalidValue{Item: "Exclude range", Value: "[" + from.String() + ", " + to.String() + "]"}
	}
	e.excludeFrom(from, &to)
	return nil
}

// excludeFrom excludes [from, to], or everything from on if to is nil.
func (e *Exclude) excludeFrom(from enc.Component, to *enc.Component) {
	i := 0
	ret := make([]ExcludeEntry, 0, len(e.entries)+2)
	for ; i < len(e.entries) && e.entries[i].Comp.Compare(from) < 0; i++ {
		ret = append(ret, e.entries[i])
	}

	// an open range below from already covers it
	merged := len(ret) > 0 && ret[len(ret)-1].Any
	if !merged {
		ret = append(ret, ExcludeEntry{Comp: from.Clone(), Any: true})
	}

	// drop the entries inside the new range
	removed, lastAny := 0, false
	for ; i < len(e.entries); i++ {
		if to != nil && e.entries[i].Comp.Compare(*to) > 0 {
			break
		}
		removed++
		lastAny = e.entries[i].Any
	}

	if to != nil {
		if merged && removed == 0 {
			return
		}
		if !lastAny {
			ret = append(ret, ExcludeEntry{Comp: to.Clone()})
		}
	}

	e.entries = append(ret, e.entries[i:]...)
}

// String renders the filter like "*,a,b,*,d" where * is Any.
func (e Exclude) String() string {
	parts := make([]string, 0, len(e.entries)*2)
	for i, ent := range e.entries {
		if i > 0 || !ent.Any || len(ent.Comp.Val) != 0 {
			parts = append(parts, ent.Comp.String())
		}
		if ent.Any {
			parts = append(parts, "*")
		}
	}
	return strings.Join(parts, ",")
}
