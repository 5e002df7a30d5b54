package uncert

import "sync"

// term is one weighted reference to a sub-combination: the building
// block of the lazy (non-expanded) representation.
type term struct {
	factor float64
	comb   *linComb
}

// linComb is a weighted sum over independent Variables in one of two
// states:
//
//   - pending:  an ordered list of (factor, sub-combination) terms — a
//     frozen snapshot of how a derived value was built, recorded in
//     O(1) per arithmetic step without collapsing repeated variables;
//   - expanded: the canonical flat map from Variable (by pointer
//     identity) to its accumulated net coefficient.
//
// The pending slice and the sub-combinations it references are never
// mutated after construction; the only state transition is
// pending → expanded inside expand, guarded by mu so that a first-time
// expansion of a sub-expression shared by several owners (or several
// goroutines) is observed consistently by all of them.
type linComb struct {
	mu       sync.Mutex
	pending  []term
	expanded map[*Variable]float64
}

// newPending wraps terms into a lazy combination. The slice is owned by
// the combination from this point on.
func newPending(terms ...term) *linComb {
	return &linComb{pending: terms}
}

// newExpanded wraps an already-flat coefficient map. A nil map is
// normalized to an empty one (the linear part of an exact value).
func newExpanded(m map[*Variable]float64) *linComb {
	if m == nil {
		m = map[*Variable]float64{}
	}

	return &linComb{expanded: m}
}

// state atomically reports the current representation: exactly one of
// the two return values is non-nil for a non-empty combination. The
// returned map/slice must be treated as read-only.
func (lc *linComb) state() (map[*Variable]float64, []term) {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	return lc.expanded, lc.pending
}

// isEmpty reports whether the combination has no terms in its current
// representation (the linear part of an exact value).
func (lc *linComb) isEmpty() bool {
	m, ts := lc.state()

	return len(m) == 0 && len(ts) == 0
}

// expand collapses the combination into its flat map form and memoizes
// the result; re-expanding is a no-op returning the cached map.
//
// The flattening is iterative: a work-list of (factor, sub-expr) pairs
// replaces recursion, so derivation chains thousands of operations deep
// (running sums built in a loop) cannot blow the stack. When a popped
// sub-expression is itself pending, its inner terms are pushed back
// scaled by the outer factor; when it is expanded, its coefficients are
// accumulated into the output keyed by Variable identity. Repeated
// paths to the same Variable sum algebraically, which is exactly what
// makes x−x collapse to a net coefficient of zero.
//
// Sub-combinations reachable from here are read, never written: each is
// only ever locked for its own state snapshot, and combinations form a
// DAG (terms reference strictly older nodes), so the nested locking
// cannot deadlock.
func (lc *linComb) expand() map[*Variable]float64 {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	if lc.expanded != nil {
		return lc.expanded
	}

	out := make(map[*Variable]float64)
	work := make([]term, len(lc.pending))
	copy(work, lc.pending)
	for len(work) > 0 {
		t := work[len(work)-1]
		work = work[:len(work)-1]

		flat, nested := t.comb.state()
		if flat != nil {
			for v, coeff := range flat {
				out[v] += t.factor * coeff
			}

			continue
		}
		for _, inner := range nested {
			work = append(work, term{factor: t.factor * inner.factor, comb: inner.comb})
		}
	}

	lc.expanded = out
	lc.pending = nil

	return out
}

// copyTree structurally duplicates the combination. Shared
// sub-combinations stay shared inside the copy (memo preserves the DAG
// shape), while Variables — the leaves — are kept by reference.
func (lc *linComb) copyTree(memo map[*linComb]*linComb) *linComb {
	if cp, ok := memo[lc]; ok {
		return cp
	}

	flat, nested := lc.state()
	if flat != nil {
		out := make(map[*Variable]float64, len(flat))
		for v, coeff := range flat {
			out[v] = coeff
		}
		cp := &linComb{expanded: out}
		memo[lc] = cp

		return cp
	}

	inner := make([]term, len(nested))
	cp := &linComb{pending: inner}
	memo[lc] = cp
	for i, t := range nested {
		inner[i] = term{factor: t.factor, comb: t.comb.copyTree(memo)}
	}

	return cp
}
