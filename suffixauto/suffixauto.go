// Package suffixauto implements a suffix automaton: the minimal DFA of all
// substrings of a string, built online in O(n log sigma). It answers
// substring membership, counts distinct substrings and computes longest
// common substrings.
package suffixauto

// State is one automaton node. Link is the suffix link, Len the length of
// the longest substring in the state's class.
type State struct {
	Next map[byte]int32
	Link int32
	Len  int32
}

// Automaton is the suffix automaton of a string. State 0 is the initial
// state.
type Automaton struct {
	States []State
	last   int32
}

// New returns the automaton of the empty string, ready for Extend.
func New() *Automaton {
	return &Automaton{
		States: []State{{Next: make(map[byte]int32), Link: -1, Len: 0}},
	}
}

// Build constructs the automaton for s.
func Build(s string) *Automaton {
	a := New()
	for i := 0; i < len(s); i++ {
		a.Extend(s[i])
	}
	return a
}

func (a *Automaton) clone(src int32, length int32) int32 {
	st := a.States[src]
	next := make(map[byte]int32, len(st.Next))
	for c, t := range st.Next {
		next[c] = t
	}
	a.States = append(a.States, State{Next: next, Link: st.Link, Len: length})
	return int32(len(a.States) - 1)
}

// Extend appends one character to the underlying string.
func (a *Automaton) Extend(c byte) {
	cur := int32(len(a.States))
	a.States = append(a.States, State{
		Next: make(map[byte]int32),
		Link: -1,
		Len:  a.States[a.last].Len + 1,
	})

	p := a.last
	for p != -1 {
		if _, ok := a.States[p].Next[c]; ok {
			break
		}
		a.States[p].Next[c] = cur
		p = a.States[p].Link
	}

	switch {
	case p == -1:
		a.States[cur].Link = 0
	default:
		q := a.States[p].Next[c]
		if a.States[q].Len == a.States[p].Len+1 {
			a.States[cur].Link = q
		} else {
			cl := a.clone(q, a.States[p].Len+1)
			for p != -1 && a.States[p].Next[c] == q {
				a.States[p].Next[c] = cl
				p = a.States[p].Link
			}
			a.States[q].Link = cl
			a.States[cur].Link = cl
		}
	}
	a.last = cur
}

// Dump returns the state table and the active state, for snapshotting.
func (a *Automaton) Dump() ([]State, int32) {
	return a.States, a.last
}

// Load replaces the automaton with a previously dumped state table.
func (a *Automaton) Load(states []State, last int32) {
	a.States = states
	a.last = last
}

// Contains reports whether sub is a substring of the built string.
func (a *Automaton) Contains(sub string) bool {
	v := int32(0)
	for i := 0; i < len(sub); i++ {
		next, ok := a.States[v].Next[sub[i]]
		if !ok {
			return false
		}
		v = next
	}
	return true
}

// CountDistinctSubstrings returns the number of distinct non-empty
// substrings of the built string.
func (a *Automaton) CountDistinctSubstrings() int64 {
	var total int64
	for i := 1; i < len(a.States); i++ {
		total += int64(a.States[i].Len - a.States[a.States[i].Link].Len)
	}
	return total
}

// LongestCommonSubstring returns the longest substring of t that is also a
// substring of the built string (the first such in t on ties).
func (a *Automaton) LongestCommonSubstring(t string) string {
	v := int32(0)
	length := int32(0)
	best, bestEnd := int32(0), 0
	for i := 0; i < len(t); i++ {
		c := t[i]
		for v != 0 {
			if _, ok := a.States[v].Next[c]; ok {
				break
			}
			v = a.States[v].Link
			length = a.States[v].Len
		}
		if next, ok := a.States[v].Next[c]; ok {
			v = next
			length++
		}
		if length > best {
			best, bestEnd = length, i+1
		}
	}
	return t[bestEnd-int(best) : bestEnd]
}
