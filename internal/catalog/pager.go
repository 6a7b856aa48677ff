package catalog

// Pager tracks how much of the unfiltered catalog is on screen.
type Pager struct {
	initial int
	step    int
	shown   int
	total   int
}

func NewPager(initial, step, total int) *Pager {
	p := &Pager{initial: max(initial, 0), step: max(step, 0), total: max(total, 0)}
	p.Reset()
	return p
}

// Limit is the value to pass to Catalog.List.
func (p *Pager) Limit() int {
	return min(p.shown, p.total)
}

// HasMore reports whether LoadMore would show anything new.
func (p *Pager) HasMore() bool {
	return p.shown < p.total
}

// LoadMore grows the page by one step, never past the catalog size. It
// reports whether anything changed.
func (p *Pager) LoadMore() bool {
	if !p.HasMore() {
		return false
	}
	p.shown = min(p.shown+p.step, p.total)
	return true
}

// Reset goes back to the initial page.
func (p *Pager) Reset() {
	p.shown = min(p.initial, p.total)
}
