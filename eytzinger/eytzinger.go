// Package eytzinger implements the Eytzinger (BFS / "breadth-first heap")
// array layout and the branchless binary search that goes with it.
//
// A sorted array stored in Eytzinger order places the root of an implicit
// binary search tree at index 0, its children at indices 1 and 2, and so on,
// the same way a binary heap is laid out. Searching such an array walks the
// implicit tree top-down, which keeps successive probes close together in
// cache lines far more often than the usual divide-in-half binary search
// over a sorted array does.
package eytzinger

import "math/bits"

// Permutation returns, for i in [0, n), the index within a size-n Eytzinger
// layout that the i-th smallest element of a sorted input should occupy.
// Equivalently, applying the inverse of this permutation to an
// Eytzinger-ordered array recovers sorted order.
//
// The result should be read as: sorted index i belongs at Eytzinger
// position Permutation(n)[i].
func Permutation(n int) []int {
	perm := make([]int, n)

	i := 0
	var visit func(k int)
	visit = func(k int) {
		if k > n {
			return
		}
		visit(2 * k)
		perm[i] = k - 1
		i++
		visit(2*k + 1)
	}
	visit(1)

	return perm
}

// Search locates x among n elements laid out in Eytzinger order, where
// labelAt(pos) returns the key stored at 0-based Eytzinger position pos. It
// returns the position of x, or -1 if x is not present.
//
// The search walks the implicit binary tree from the root (k=1), then
// recovers the final branch-free position with the "snap back to the last
// left turn" trick: the trailing 1-bits of k record the most recent
// sequence of right turns, so shifting them off together with the 0-bit of
// the left turn before them, then decrementing, lands on the last element
// compared against that was >= x.
func Search(n int, labelAt func(pos int) uint64, x uint64) int {
	k := 1
	for k <= n {
		if labelAt(k-1) < x {
			k = 2*k + 1
		} else {
			k = 2 * k
		}
	}

	// k's binary representation ends in a run of 1s recording each "went
	// right" step since the last "went left" step; shift that run off.
	shift := bits.TrailingZeros64(^uint64(k)) + 1
	k >>= uint(shift)
	k--

	if k < 0 || k >= n {
		return -1
	}
	if labelAt(k) != x {
		return -1
	}

	return k
}
