package propnet

import (
	"go.uber.org/zap"
)

// Beliefs is the belief-revision context consulted by TMS values: the
// assumption labels currently retracted, and the combinations of
// assumptions known to be jointly inconsistent ("nogoods").
//
// Each Network owns one Beliefs. A nil *Beliefs believes everything.
// Changing beliefs affects only later queries; it does not re-run any
// propagators (see Network.AlertAll).
type Beliefs struct {
	notBelieved map[string]struct{}
	nogoods     []Support
	logger      *zap.Logger
}

// NewBeliefs produces an empty belief context, for use with TMS values
// outside of any Network.
func NewBeliefs() *Beliefs {
	return newBeliefs(nil)
}

func newBeliefs(logger *zap.Logger) *Beliefs {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Beliefs{
		notBelieved: make(map[string]struct{}),
		logger:      logger,
	}
}

// Retract stops believing the given assumptions.
func (b *Beliefs) Retract(labels ...string) {
	for _, l := range labels {
		b.notBelieved[l] = struct{}{}
		b.logger.Debug("retracted assumption", zap.String("label", l))
	}
}

// Assume resumes believing the given assumptions.
func (b *Beliefs) Assume(labels ...string) {
	for _, l := range labels {
		delete(b.notBelieved, l)
		b.logger.Debug("assumed", zap.String("label", l))
	}
}

// Retracted returns the labels currently not believed.
func (b *Beliefs) Retracted() Support {
	if b == nil {
		return nil
	}
	var s Support
	for l := range b.notBelieved {
		s = s.Add(l)
	}
	return s
}

// AddNogood records that the assumptions in s cannot all hold at
// once. It reports whether s was new.
func (b *Beliefs) AddNogood(s Support) bool {
	for _, ng := range b.nogoods {
		if ng.Equal(s) {
			return false
		}
	}
	b.nogoods = append(b.nogoods, s)
	b.logger.Warn("recorded nogood", zap.Stringer("support", s))
	return true
}

// Nogoods returns the recorded inconsistent assumption sets, oldest first.
func (b *Beliefs) Nogoods() []Support {
	if b == nil {
		return nil
	}
	return append([]Support(nil), b.nogoods...)
}

// IsBelieved tells whether none of d's assumptions are retracted and
// d's support contains no nogood.
func (b *Beliefs) IsBelieved(d Datum) bool {
	if b == nil {
		return true
	}
	for _, l := range d.Support {
		if _, ok := b.notBelieved[l]; ok {
			return false
		}
	}
	for _, ng := range b.nogoods {
		if ng.SubsetOf(d.Support) {
			return false
		}
	}
	return true
}
