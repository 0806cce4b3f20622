package polyomino

import "fmt"

// referenceCounts holds the number of free polyominoes for n = 1..16
// (OEIS A000105).
var referenceCounts = [...]int{
	1, 1, 2, 5, 12, 35, 108, 369, 1285, 4655,
	17073, 63600, 238591, 901971, 3426576, 13079255,
}

// ReferenceCount returns the known number of free polyominoes of size n and
// whether the table covers n.
func ReferenceCount(n int) (int, bool) {
	if n < 1 || n > len(referenceCounts) {
		return 0, false
	}
	return referenceCounts[n-1], true
}

// IncompleteError reports an enumeration whose size disagrees with the
// reference count.
type IncompleteError struct {
	Size  int
	Found int
	Want  int
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("polyomino: found %d free polyominoes of size %d, reference count is %d", e.Found, e.Size, e.Want)
}

// Audit compares an enumeration of size n against the reference count. It
// returns nil when they agree or when no reference is known.
func Audit(n int, shapes []Shape) error {
	want, ok := ReferenceCount(n)
	if !ok || len(shapes) == want {
		return nil
	}
	return &IncompleteError{Size: n, Found: len(shapes), Want: want}
}
