package gallery

import "fmt"

// Pager owns the current position in a catalog. Navigation is clamped at
// both ends and never wraps around.
//
// A Pager is not safe for concurrent use; it belongs to the event loop that renders it.
type Pager struct {
	catalog *Catalog
	index   int
}

// NewPager starts at the first artwork. It panics on a nil or empty catalog.
func NewPager(c *Catalog) *Pager {
	if c == nil || c.Len() == 0 {
		panic("gallery: pager requires a non-empty catalog")
	}
	return &Pager{catalog: c}
}

// Next advances one artwork. It is a no-op on the last one.
func (p *Pager) Next() {
	if p.CanGoNext() {
		p.index++
	}
}

// Previous steps back one artwork. It is a no-op on the first one.
func (p *Pager) Previous() {
	if p.CanGoPrevious() {
		p.index--
	}
}

func (p *Pager) CanGoNext() bool {
	return p.index < p.catalog.Len()-1
}

func (p *Pager) CanGoPrevious() bool {
	return p.index > 0
}

func (p *Pager) Current() Artwork {
	return p.catalog.Get(p.index)
}

func (p *Pager) Index() int {
	return p.index
}

func (p *Pager) Catalog() *Catalog {
	return p.catalog
}

// Position is the 1-based "page / total" label.
func (p *Pager) Position() string {
	return fmt.Sprintf("%d / %d", p.index+1, p.catalog.Len())
}

// Progress maps the index onto [0, 1]. A single-entry catalog reports 1.
func (p *Pager) Progress() float64 {
	if p.catalog.Len() <= 1 {
		return 1
	}
	return float64(p.index) / float64(p.catalog.Len()-1)
}
