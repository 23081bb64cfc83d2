package flatconf

import (
	"reflect"
	"sort"
)

// ChangeKind classifies a single rule difference between two effective
// configurations.
type ChangeKind string

// Kinds of rule-table differences.
const (
	ChangeAdded   ChangeKind = "added"   // present only in the second table
	ChangeRemoved ChangeKind = "removed" // present only in the first table
	ChangeLevel   ChangeKind = "level"   // severity or options differ
)

// RuleChange is one entry of an effective rule-table diff.
type RuleChange struct {
	Rule string     `json:"rule"`
	Kind ChangeKind `json:"kind"`
	From string     `json:"from,omitempty"` // severity in the first table, "" when absent
	To   string     `json:"to,omitempty"`   // severity in the second table, "" when absent
}

// DiffEffective compares two effective rule tables and returns the
// differences sorted by rule name. Identical tables return nil.
func DiffEffective(a, b *Effective) []RuleChange {
	var changes []RuleChange

	for name, la := range a.Rules {
		lb, ok := b.Rules[name]
		if !ok {
			changes = append(changes, RuleChange{Rule: name, Kind: ChangeRemoved, From: la.Severity.String()})
			continue
		}
		if la.Severity != lb.Severity || !reflect.DeepEqual(la.Options, lb.Options) {
			changes = append(changes, RuleChange{
				Rule: name,
				Kind: ChangeLevel,
				From: la.Severity.String(),
				To:   lb.Severity.String(),
			})
		}
	}
	for name, lb := range b.Rules {
		if _, ok := a.Rules[name]; !ok {
			changes = append(changes, RuleChange{Rule: name, Kind: ChangeAdded, To: lb.Severity.String()})
		}
	}

	sort.Slice(changes, func(i, j int) bool { return changes[i].Rule < changes[j].Rule })
	return changes
}

// EquivalentFor reports whether two configurations produce identical
// effective rule tables for every probe path. Configurations that differ
// only in extension reference style (symbolic vs direct) are equivalent.
// The returned changes belong to the first path that differs.
func EquivalentFor(a, b *Config, paths ...string) (bool, []RuleChange, error) {
	for _, path := range paths {
		ea, err := a.Resolve(path)
		if err != nil {
			return false, nil, err
		}
		eb, err := b.Resolve(path)
		if err != nil {
			return false, nil, err
		}
		if changes := DiffEffective(ea, eb); len(changes) > 0 {
			return false, changes, nil
		}
	}
	return true, nil, nil
}
