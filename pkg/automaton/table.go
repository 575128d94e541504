package automaton

import "github.com/aretw0/dpda/pkg/domain"

// entry is what a key resolves to inside one source state's table.
type entry struct {
	target int
	push   string
}

// Group is a set of transitions from one source state sharing a target.
// It is a storage view only and carries no automaton semantics.
type Group struct {
	Target      int
	Transitions []domain.Transition
}

type group struct {
	target int
	keys   []domain.Key
}

// stateTable holds every transition leaving one source state.
//
// byKey gives constant time lookup and exact-conflict detection. The two
// counters track, per pop symbol, how many transitions consume a concrete
// input and, per input symbol, how many pop a concrete stack symbol; they make
// the epsilon-versus-concrete checks constant time as well.
type stateTable struct {
	byKey               map[domain.Key]entry
	groups              []group
	groupIndex          map[int]int
	concreteInputsByPop map[rune]int
	concretePopsByInput map[rune]int
}

func newStateTable() stateTable {
	return stateTable{
		byKey:               make(map[domain.Key]entry),
		groupIndex:          make(map[int]int),
		concreteInputsByPop: make(map[rune]int),
		concretePopsByInput: make(map[rune]int),
	}
}

func (t *stateTable) lookup(k domain.Key) (entry, bool) {
	e, ok := t.byKey[k]
	return e, ok
}

// insert stores a transition that already passed validation.
func (t *stateTable) insert(tr domain.Transition) {
	k := tr.Key()
	t.byKey[k] = entry{target: tr.Target, push: tr.Push}

	idx, ok := t.groupIndex[tr.Target]
	if !ok {
		idx = len(t.groups)
		t.groups = append(t.groups, group{target: tr.Target})
		t.groupIndex[tr.Target] = idx
	}
	t.groups[idx].keys = append(t.groups[idx].keys, k)

	if !domain.IsEpsilon(k.Consumed) {
		t.concreteInputsByPop[k.Pop]++
	}
	if !domain.IsEpsilon(k.Pop) {
		t.concretePopsByInput[k.Consumed]++
	}
}

func (t *stateTable) size() int {
	return len(t.byKey)
}

func (t *stateTable) transition(source int, k domain.Key) domain.Transition {
	e := t.byKey[k]
	return domain.Transition{
		Source:   source,
		Target:   e.target,
		Consumed: k.Consumed,
		Pop:      k.Pop,
		Push:     e.push,
	}
}

// view materializes the groups of this table in first-insertion order.
func (t *stateTable) view(source int) []Group {
	out := make([]Group, 0, len(t.groups))
	for _, g := range t.groups {
		grp := Group{Target: g.target, Transitions: make([]domain.Transition, 0, len(g.keys))}
		for _, k := range g.keys {
			grp.Transitions = append(grp.Transitions, t.transition(source, k))
		}
		out = append(out, grp)
	}
	return out
}
