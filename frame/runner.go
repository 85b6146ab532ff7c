package frame

// Runner executes fn over disjoint row ranges that together cover
// [0, height), possibly concurrently. fn must only write rows inside its
// range.
type Runner interface {
	ForRows(height int, fn func(y0, y1 int))
}

// ForRows runs fn through r, or over the whole range on the calling
// goroutine when r is nil.
func ForRows(r Runner, height int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}
	if r == nil {
		fn(0, height)
		return
	}
	r.ForRows(height, fn)
}
