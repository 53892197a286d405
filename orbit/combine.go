// SPDX-License-Identifier: MIT

package orbit

// compositions enumerates every arrangement of a multiset: each sequence of
// length Σcounts over {0..len(counts)-1} in which symbol i occurs exactly
// counts[i] times. The recursion is driven by remaining counts, never by
// labelled positions, so each distinct arrangement appears exactly once.
//
// Stage 1: pick any symbol with a remaining count, decrement it.
// Stage 2: recurse on the rest, prefixed by that symbol.
// Stage 3: when nothing remains, emit a copy of the prefix.
//
// counts must be non-negative; Combine validates. Σcounts == 0 yields one
// empty sequence.
// Complexity: O(N · N!/Πcounts_i!) time and output size, N = Σcounts.
func compositions(counts []int) [][]int {
	remaining := make([]int, len(counts))
	copy(remaining, counts)
	total := 0
	for _, c := range counts {
		total += c
	}

	var out [][]int
	prefix := make([]int, 0, total)
	var rec func()
	rec = func() {
		if len(prefix) == total {
			seq := make([]int, total)
			copy(seq, prefix)
			out = append(out, seq)
			return
		}
		for i := range remaining {
			if remaining[i] == 0 {
				continue
			}
			remaining[i]--
			prefix = append(prefix, i)
			rec()
			prefix = prefix[:len(prefix)-1]
			remaining[i]++
		}
	}
	rec()

	return out
}

// Combine builds every coordinate vector obtained by distributing the given
// types over N = ΣCount ordered slots and choosing one alternative per slot.
//
// For each slot→type template from compositions, the slot-by-slot cartesian
// product of the assigned value-sets is appended; templates are concatenated
// in enumeration order. The result has N columns and
// (#templates) · Π|Values_i|^Count_i rows.
//
// Identical rows are NOT merged: a value-set like {+0, -0} contributes both
// rows. Combine does not know the target dimension; callers pad with a zero
// type when fewer than n slots are specified.
//
// Returns ErrInvalidOrbitSpec for a negative Count, an empty value-set with
// a positive Count, or a result larger than MaxSize elements. Types with
// Count == 0 are ignored.
func (e Engine[T]) Combine(specs ...TypeSpec[T]) (*Points[T], error) {
	return e.combine(MethodCombine, specs)
}

// combine is Combine with the caller's method name in errors.
func (e Engine[T]) combine(method string, specs []TypeSpec[T]) (*Points[T], error) {
	// Stage 1 (Validate): counts and value-sets.
	counts := make([]int, len(specs))
	n := 0
	for i, s := range specs {
		if s.Count < 0 {
			return nil, specErrorf(method, "type %d has count %d", i, s.Count)
		}
		if s.Count > 0 && len(s.Values) == 0 {
			return nil, specErrorf(method, "type %d has an empty value-set", i)
		}
		if s.Count > MaxSize-n {
			return nil, sizeErrorf(method, "%d+ slots", n)
		}
		counts[i] = s.Count
		n += s.Count
	}

	// Stage 2 (Prepare): size, templates and output storage.
	rows, ok := multinomial(counts)
	for _, s := range specs {
		var per int
		if ok {
			per, ok = powSize(len(s.Values), s.Count)
		}
		if ok {
			rows, ok = mulSize(rows, per)
		}
	}
	if ok {
		_, ok = mulSize(rows, n)
	}
	if !ok {
		return nil, sizeErrorf(method, "%d slots", n)
	}
	templates := compositions(counts)
	out := newPoints[T](rows, n)

	// Stage 3 (Execute): one cartesian product per template.
	sets := make([][]T, n)
	row := 0
	for _, tpl := range templates {
		for slot, typ := range tpl {
			sets[slot] = specs[typ].Values
		}
		row = out.fillProduct(row, sets, identity(n))
	}

	return out, nil
}

// fillProduct writes the cartesian product of sets (slot k drawn from
// sets[k], written to column cols[k]) starting at row from, last slot
// varying fastest. Columns not listed in cols are left untouched.
// Returns the next free row.
// Complexity: O(Π|sets_k| · len(sets)).
func (p *Points[T]) fillProduct(from int, sets [][]T, cols []int) int {
	total := 1
	for _, s := range sets {
		total *= len(s)
	}
	if total == 0 {
		return from
	}

	cursor := make([]int, len(sets)) // mixed-radix odometer
	for r := 0; r < total; r++ {
		dst := p.view(from + r)
		for k, set := range sets {
			dst[cols[k]] = set[cursor[k]]
		}
		for k := len(sets) - 1; k >= 0; k-- {
			cursor[k]++
			if cursor[k] < len(sets[k]) {
				break
			}
			cursor[k] = 0
		}
	}

	return from + total
}

// identity returns [0, 1, ..., n-1].
func identity(n int) []int {
	cols := make([]int, n)
	for i := range cols {
		cols[i] = i
	}

	return cols
}

// MaxSize bounds Len()·Dim() of every generated group. Larger orbits fail
// with ErrInvalidOrbitSpec instead of overflowing int or exhausting memory.
const MaxSize = 1 << 28

// mulSize returns a·b for a, b ≥ 0, and false when it exceeds MaxSize.
func mulSize(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > MaxSize/b {
		return 0, false
	}

	return a * b, true
}

// powSize returns b^k for b, k ≥ 0 (0^0 == 1), and false when it exceeds
// MaxSize.
func powSize(b, k int) (int, bool) {
	r := 1
	for ; k > 0 && r > 0; k-- {
		var ok bool
		if r, ok = mulSize(r, b); !ok {
			return 0, false
		}
	}

	return r, true
}

// multinomial returns (Σcounts)! / Πcounts_i!, the number of arrangements
// compositions(counts) emits, and false when it exceeds MaxSize.
// Σcounts must not exceed MaxSize.
func multinomial(counts []int) (int, bool) {
	r, total := 1, 0
	for _, c := range counts {
		if total == 0 {
			total = c
			continue
		}
		// C(total+i, i) is non-decreasing in i, so stop at the first excess.
		b := 1
		for i := 1; i <= c; i++ {
			b = b * (total + i) / i
			if b > MaxSize {
				return 0, false
			}
		}
		total += c
		var ok bool
		if r, ok = mulSize(r, b); !ok {
			return 0, false
		}
	}

	return r, true
}
