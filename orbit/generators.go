// SPDX-License-Identifier: MIT

package orbit

// Z returns the single all-zero vector of dimension n.
// Complexity: O(n).
func (e Engine[T]) Z(n int) (*Points[T], error) {
	if n < 0 {
		return nil, specErrorf(MethodZ, "n=%d", n)
	}
	if n > MaxSize {
		return nil, sizeErrorf(MethodZ, "n=%d", n)
	}

	return e.zeros(1, n), nil
}

// PM returns all 2^n sign assignments of a repeated n times:
// {+a, -a}^n, each exactly once.
// Complexity: O(n · 2^n).
func (e Engine[T]) PM(n int, a T) (*Points[T], error) {
	if n < 0 {
		return nil, specErrorf(MethodPM, "n=%d", n)
	}

	return e.combine(MethodPM, []TypeSpec[T]{{Values: e.pm(a), Count: n}})
}

// PMArray returns the 2^k independent sign assignments of v's entries with
// positions fixed: (±v_0, ±v_1, ..., ±v_{k-1}).
// Returns ErrInvalidOrbitSpec when 2^k·k exceeds MaxSize.
// Complexity: O(k · 2^k).
func (e Engine[T]) PMArray(v []T) (*Points[T], error) {
	k := len(v)
	rows, ok := powSize(2, k)
	if ok {
		_, ok = mulSize(rows, k)
	}
	if !ok {
		return nil, sizeErrorf(MethodPMArray, "2^%d rows of dimension %d", k, k)
	}
	sets := make([][]T, k)
	for i, x := range v {
		sets[i] = e.pm(x)
	}
	out := newPoints[T](rows, k)
	out.fillProduct(0, sets, identity(k))

	return out, nil
}

// PMArray0 embeds PMArray(v) at columns idx of an n-vector, zero elsewhere.
// idx must have len(v) distinct entries in [0, n).
// Complexity: O(n · 2^k).
func (e Engine[T]) PMArray0(n int, v []T, idx []int) (*Points[T], error) {
	// Stage 1 (Validate): dimension and index set.
	if n < 0 {
		return nil, specErrorf(MethodPMArray0, "n=%d", n)
	}
	if len(idx) != len(v) {
		return nil, specErrorf(MethodPMArray0, "len(idx)=%d, len(v)=%d", len(idx), len(v))
	}
	seen := make(map[int]bool, len(idx))
	for _, j := range idx {
		if j < 0 || j >= n {
			return nil, specErrorf(MethodPMArray0, "index %d outside [0,%d)", j, n)
		}
		if seen[j] {
			return nil, specErrorf(MethodPMArray0, "duplicate index %d", j)
		}
		seen[j] = true
	}

	rows, ok := powSize(2, len(v))
	if ok {
		_, ok = mulSize(rows, n)
	}
	if !ok {
		return nil, sizeErrorf(MethodPMArray0, "2^%d rows of dimension %d", len(v), n)
	}

	// Stage 2 (Execute): zero rows, then scatter the sign product into idx.
	sets := make([][]T, len(v))
	for i, x := range v {
		sets[i] = e.pm(x)
	}
	out := e.zeros(rows, n)
	out.fillProduct(0, sets, idx)

	return out, nil
}

// PMRoll places PMArray(v) contiguously at offset 0 of a zero n-vector and
// emits that block once for each cyclic shift s = 0..n-1, where shift s
// moves column j to (j+s) mod n. Rows: n · 2^k, k = len(v) ≤ n.
// Complexity: O(n² · 2^k).
func (e Engine[T]) PMRoll(n int, v []T) (*Points[T], error) {
	if n < 0 || len(v) > n {
		return nil, specErrorf(MethodPMRoll, "n=%d, len(v)=%d", n, len(v))
	}

	block, ok := powSize(2, len(v))
	rows := 0
	if ok {
		rows, ok = mulSize(n, block)
	}
	if ok {
		_, ok = mulSize(rows, n)
	}
	if !ok {
		return nil, sizeErrorf(MethodPMRoll, "%d·2^%d rows of dimension %d", n, len(v), n)
	}

	sets := make([][]T, len(v))
	for i, x := range v {
		sets[i] = e.pm(x)
	}
	out := e.zeros(rows, n)
	cols := make([]int, len(v))
	for s := 0; s < n; s++ {
		for j := range cols {
			cols[j] = (j + s) % n
		}
		out.fillProduct(s*block, sets, cols)
	}

	return out, nil
}

// FSD returns the fully symmetric orbit with Count slots of ±Value per item
// and the remaining n - ΣCount slots zero: FSD(3, {1,1}) is the six vectors
// (±1,0,0), (0,±1,0), (0,0,±1).
//
// Every Count must be positive and ΣCount ≤ n.
func (e Engine[T]) FSD(n int, items ...Item[T]) (*Points[T], error) {
	used, err := validateItems(MethodFSD, n, items)
	if err != nil {
		return nil, err
	}

	specs := make([]TypeSpec[T], 0, len(items)+1)
	for _, it := range items {
		specs = append(specs, TypeSpec[T]{Values: e.pm(it.Value), Count: it.Count})
	}
	specs = append(specs, TypeSpec[T]{Values: []T{e.f.Zero()}, Count: n - used})

	return e.combine(MethodFSD, specs)
}

// FSArray returns every ordering of v's entries over len(v) slots, each entry
// with an independent sign: k! · 2^k rows for k = len(v), duplicates kept
// when entries coincide.
func (e Engine[T]) FSArray(v []T) (*Points[T], error) {
	specs := make([]TypeSpec[T], len(v))
	for i, x := range v {
		specs[i] = TypeSpec[T]{Values: e.pm(x), Count: 1}
	}

	return e.combine(MethodFSArray, specs)
}

// RD is FSD without signs: Count slots of Value per item, the remaining
// slots zero, permuted over positions only. RD(3, {1/3, 3}) is the centroid
// of the triangle in barycentric coordinates.
//
// Every Count must be positive and ΣCount ≤ n.
func (e Engine[T]) RD(n int, items []Item[T]) (*Points[T], error) {
	used, err := validateItems(MethodRD, n, items)
	if err != nil {
		return nil, err
	}

	specs := make([]TypeSpec[T], 0, len(items)+1)
	for _, it := range items {
		specs = append(specs, TypeSpec[T]{Values: []T{it.Value}, Count: it.Count})
	}
	specs = append(specs, TypeSpec[T]{Values: []T{e.f.Zero()}, Count: n - used})

	return e.combine(MethodRD, specs)
}

// validateItems checks n ≥ 0, Count > 0 per item and ΣCount ≤ n, returning ΣCount.
func validateItems[T any](method string, n int, items []Item[T]) (int, error) {
	if n < 0 {
		return 0, specErrorf(method, "n=%d", n)
	}
	used := 0
	for i, it := range items {
		if it.Count <= 0 {
			return 0, specErrorf(method, "item %d has count %d, want > 0", i, it.Count)
		}
		used += it.Count
	}
	if used > n {
		return 0, specErrorf(method, "counts sum to %d, exceeding n=%d", used, n)
	}

	return used, nil
}

// zeros returns a rows×n group filled with the field's zero.
func (e Engine[T]) zeros(rows, n int) *Points[T] {
	out := newPoints[T](rows, n)
	zero := e.f.Zero()
	for i := range out.data {
		out.data[i] = zero
	}

	return out
}

// Partition returns every tuple of boxes non-negative integers summing to
// balls (the weak compositions, "stars and bars"), first entry descending:
// Partition(2, 2) == [[2 0] [1 1] [0 2]].
//
// boxes == 0 yields one empty tuple when balls == 0 and none otherwise.
// Returns ErrInvalidOrbitSpec for negative arguments or more than MaxSize
// entries in total.
// Complexity: O(boxes · C(balls+boxes-1, boxes-1)).
func Partition(boxes, balls int) ([][]int, error) {
	if boxes < 0 || balls < 0 {
		return nil, specErrorf(MethodPartition, "boxes=%d, balls=%d", boxes, balls)
	}
	if boxes == 0 {
		if balls == 0 {
			return [][]int{{}}, nil
		}
		return [][]int{}, nil
	}
	count, ok := 0, balls <= MaxSize && boxes <= MaxSize-balls
	if ok {
		count, ok = multinomial([]int{balls, boxes - 1})
	}
	if ok {
		_, ok = mulSize(count, boxes)
	}
	if !ok {
		return nil, sizeErrorf(MethodPartition, "boxes=%d, balls=%d", boxes, balls)
	}

	out := make([][]int, 0, count)
	prefix := make([]int, 0, boxes)
	var rec func(boxes, balls int)
	rec = func(boxes, balls int) {
		if boxes == 1 {
			tuple := make([]int, 0, len(prefix)+1)
			out = append(out, append(append(tuple, prefix...), balls))
			return
		}
		for i := 0; i <= balls; i++ {
			prefix = append(prefix, balls-i)
			rec(boxes-1, i)
			prefix = prefix[:len(prefix)-1]
		}
	}
	rec(boxes, balls)

	return out, nil
}
