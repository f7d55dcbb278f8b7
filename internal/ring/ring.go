// Package ring implements the crab's cup game as a closed ring of labels.
//
// Labels form a dense permutation of 1..N, so adjacency is stored in two
// slices indexed by label rather than in linked nodes. Finding the
// destination cup and splicing the picked-up cups are both constant time.
package ring

import (
	"fmt"
	"strings"
)

// PickUp is the number of cups removed by each move.
const PickUp = 3

// Ring is a cycle of uniquely labelled cups with a current cup.
type Ring struct {
	next []int
	prev []int
	head int
}

// ParseLabels reads a run of single-digit labels such as "389125467".
func ParseLabels(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	labels := make([]int, 0, len(s))
	for i, r := range s {
		if r < '1' || r > '9' {
			return nil, fmt.Errorf("invalid cup label %q at %d", r, i)
		}
		labels = append(labels, int(r-'0'))
	}
	return labels, nil
}

// New arranges labels clockwise, followed by the labels len(labels)+1..size
// in ascending order, and makes the first label current. labels must be a
// permutation of 1..len(labels) and the ring needs at least PickUp+1 cups.
func New(labels []int, size int) (*Ring, error) {
	if size < len(labels) {
		size = len(labels)
	}
	if size < PickUp+1 {
		return nil, fmt.Errorf("ring of %d cups is too small", size)
	}
	seen := make([]bool, len(labels)+1)
	for _, l := range labels {
		if l < 1 || l > len(labels) {
			return nil, fmt.Errorf("cup label %d outside 1..%d", l, len(labels))
		}
		if seen[l] {
			return nil, fmt.Errorf("duplicate cup label %d", l)
		}
		seen[l] = true
	}

	r := &Ring{next: make([]int, size+1), prev: make([]int, size+1)}
	order := func(i int) int {
		if i < len(labels) {
			return labels[i]
		}
		return i + 1
	}
	for i := 0; i < size; i++ {
		cur, nxt := order(i), order((i+1)%size)
		r.next[cur] = nxt
		r.prev[nxt] = cur
	}
	r.head = order(0)
	return r, nil
}

// Len returns the number of cups.
func (r *Ring) Len() int { return len(r.next) - 1 }

// Head returns the current cup.
func (r *Ring) Head() int { return r.head }

// Next returns the cup clockwise of label.
func (r *Ring) Next(label int) int { return r.next[label] }

// Prev returns the cup counter-clockwise of label.
func (r *Ring) Prev(label int) int { return r.prev[label] }

// Advance performs one move: pick up the three cups after the current one,
// place them after the destination cup and select the cup that followed the
// picked-up run as the new current cup.
func (r *Ring) Advance() {
	n := r.Len()
	h := r.head
	a := r.next[h]
	b := r.next[a]
	c := r.next[b]
	after := r.next[c]

	r.next[h] = after
	r.prev[after] = h

	dest := h
	for tries := 0; ; tries++ {
		if tries == n {
			panic(fmt.Sprintf("ring: no destination for current cup %d", h))
		}
		dest--
		if dest < 1 {
			dest = n
		}
		if dest != a && dest != b && dest != c {
			break
		}
	}

	dn := r.next[dest]
	r.next[dest] = a
	r.prev[a] = dest
	r.next[c] = dn
	r.prev[dn] = c

	r.head = after
}

// Move performs n moves.
func (r *Ring) Move(n int) {
	for i := 0; i < n; i++ {
		r.Advance()
	}
}

// After returns the k labels clockwise of label.
func (r *Ring) After(label, k int) []int {
	out := make([]int, 0, k)
	for l := r.next[label]; len(out) < k; l = r.next[l] {
		out = append(out, l)
	}
	return out
}

// Labels returns every label clockwise starting at the current cup.
func (r *Ring) Labels() []int {
	out := make([]int, 0, r.Len())
	l := r.head
	for {
		out = append(out, l)
		l = r.next[l]
		if l == r.head {
			return out
		}
	}
}

// String renders the ring from the current cup, marking it in parentheses.
func (r *Ring) String() string {
	var b strings.Builder
	for i, l := range r.Labels() {
		if i > 0 {
			b.WriteByte(' ')
		}
		if l == r.head {
			fmt.Fprintf(&b, "(%d)", l)
			continue
		}
		fmt.Fprintf(&b, "%d", l)
	}
	return b.String()
}
