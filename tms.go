package propnet

import (
	"sort"
	"strings"

	"go.uber.org/zap"
)

// TMS is a truth-maintenance cell value: a set of alternative Datums,
// each a candidate belief with its own support, interpreted under a
// shared Beliefs context.
//
// A TMS is immutable; the methods that change it return a new one.
type TMS struct {
	beliefs *Beliefs
	data    []Datum
}

// NewTMS produces a TMS holding the given datums, subject to b.
func NewTMS(b *Beliefs, data ...Datum) *TMS {
	t := &TMS{beliefs: b}
	for _, d := range data {
		t = t.assimilateOne(d)
	}
	return t
}

// Data returns the datums in t in insertion order.
func (t *TMS) Data() []Datum {
	return append([]Datum(nil), t.data...)
}

// Len is the number of alternative datums in t.
func (t *TMS) Len() int {
	return len(t.data)
}

// Beliefs returns the context t is interpreted under.
func (t *TMS) Beliefs() *Beliefs {
	return t.beliefs
}

// IsBelieved tells whether d is believed under t's context.
func (t *TMS) IsBelieved(d Datum) bool {
	return t.beliefs.IsBelieved(d)
}

// Assimilate folds v into t. A Datum or plain value is added unless
// something in t already subsumes it; a *TMS has each of its datums
// added in turn; nil leaves t unchanged.
func (t *TMS) Assimilate(v Value) *TMS {
	switch v := v.(type) {
	case nil:
		return t
	case *TMS:
		if v == nil {
			return t
		}
		result := t
		for _, d := range v.data {
			result = result.assimilateOne(d)
		}
		return result
	default:
		return t.assimilateOne(liftDatum(v))
	}
}

func (t *TMS) assimilateOne(d Datum) *TMS {
	for _, have := range t.data {
		if have.Subsumes(d) {
			return t
		}
	}
	result := &TMS{beliefs: t.beliefs}
	for _, have := range t.data {
		if d.Subsumes(have) {
			continue
		}
		result.data = append(result.data, have)
	}
	result.data = append(result.data, d)
	return result
}

// StrongestConsequence merges every believed datum in t into one.
// The boolean result is false when nothing in t is believed.
//
// When two believed datums contradict each other, the union of their
// supports is recorded as a nogood and the later datum is skipped, so
// the result describes a consistent worldview.
func (t *TMS) StrongestConsequence() (Datum, bool) {
	var (
		result Datum
		found  bool
	)
	for _, d := range t.data {
		if !t.beliefs.IsBelieved(d) {
			continue
		}
		if !found {
			result, found = d, true
			continue
		}
		m, err := result.Merge(d)
		if err != nil {
			if t.beliefs != nil {
				if _, ok := IsContradiction(err); ok {
					t.beliefs.AddNogood(result.Support.Union(d.Support))
				} else {
					t.beliefs.logger.Warn("skipping unmergeable datum", zap.Stringer("datum", d), zap.Error(err))
				}
				if !t.beliefs.IsBelieved(result) {
					found = false
				}
			}
			continue
		}
		md, ok := m.(Datum)
		if !ok {
			continue
		}
		result = md
	}
	return result, found
}

// Merge assimilates other into t, then reabsorbs the strongest
// consequence of the result. Contradictions become nogoods rather
// than errors.
func (t *TMS) Merge(other Value) (Value, error) {
	base := t
	if base.beliefs == nil {
		if o, ok := other.(*TMS); ok && o != nil {
			base = &TMS{beliefs: o.beliefs, data: t.data}
		}
	}
	candidate := base.Assimilate(other)
	if c, ok := candidate.StrongestConsequence(); ok {
		candidate = candidate.Assimilate(c)
	}
	return candidate, nil
}

// Query returns the current answer for t: a new TMS if reabsorbing
// the strongest consequence changed the set, otherwise the strongest
// consequence itself, or nil if nothing is believed.
func (t *TMS) Query() Value {
	answer, ok := t.StrongestConsequence()
	if !ok {
		return nil
	}
	if better := t.Assimilate(answer); !better.Equal(t) {
		return better
	}
	return answer
}

func (t *TMS) keys() []string {
	keys := make([]string, 0, len(t.data))
	for _, d := range t.data {
		keys = append(keys, string(d.Bytes()))
	}
	sort.Strings(keys)
	return keys
}

// Equal tells whether other is a TMS holding the same datums.
func (t *TMS) Equal(other Value) bool {
	o, ok := other.(*TMS)
	if !ok || o == nil || len(o.data) != len(t.data) {
		return false
	}
	a, b := t.keys(), o.keys()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (t *TMS) Bytes() []byte {
	var bs [][]byte
	for _, k := range t.keys() {
		bs = append(bs, []byte(k))
	}
	return marshal(kindTMS, bs)
}

func (t *TMS) String() string {
	strs := make([]string, 0, len(t.data))
	for _, d := range t.data {
		strs = append(strs, d.String())
	}
	return "{" + strings.Join(strs, " | ") + "}"
}
