// Package pager computes page boundaries over the currently selected tab's
// item sequence. State is recomputed from the live display height on every
// redraw; the page index survives recomputes and resets to the last page
// (newest entries) after a tab switch.
package pager

import "github.com/tinytelemetry/sumi/internal/model"

// Pager tracks the current tab and page and derives page arithmetic from the
// most recent Recompute call.
type Pager struct {
	tab      model.Tab
	page     int
	capacity int
	items    int
	pages    int

	// jumpToLast defers the reset-to-newest-page until the next Recompute,
	// when the target tab's page count is known. Set on construction and on
	// every tab switch.
	jumpToLast bool
}

// New returns a Pager on the first tab, positioned on the last page of the
// first recomputed layout.
func New() *Pager {
	return &Pager{tab: model.TabAll, jumpToLast: true}
}

// Recompute derives the page count for totalItems items at capacity rows per
// page and clamps or resets the page index.
//
// A capacity below one is an invalid display configuration: the pager reports
// zero pages and the caller renders a too-small notice instead of a page.
func (p *Pager) Recompute(totalItems, capacity int) {
	p.items = totalItems
	p.capacity = capacity

	if totalItems <= 0 || capacity < 1 {
		p.pages = 0
		p.page = 0
		return
	}

	p.pages = (totalItems + capacity - 1) / capacity

	if p.jumpToLast {
		p.page = p.pages - 1
		p.jumpToLast = false
		return
	}
	if p.page >= p.pages {
		p.page = p.pages - 1
	}
	if p.page < 0 {
		p.page = 0
	}
}

// AdvancePage moves one page backward (-1) or forward (+1). Both boundaries
// clamp; there is no wraparound.
func (p *Pager) AdvancePage(delta int) {
	if p.pages == 0 {
		return
	}
	next := p.page + delta
	if next < 0 || next > p.pages-1 {
		return
	}
	p.page = next
}

// JumpFirst moves to the first page.
func (p *Pager) JumpFirst() {
	p.page = 0
}

// JumpLast moves to the last page.
func (p *Pager) JumpLast() {
	if p.pages > 0 {
		p.page = p.pages - 1
	}
}

// SwitchTab cycles the tab backward (-1) or forward (+1), wrapping in both
// directions, and schedules a jump to the new tab's last page.
func (p *Pager) SwitchTab(delta int) {
	if delta >= 0 {
		p.tab = p.tab.Next()
	} else {
		p.tab = p.tab.Prev()
	}
	p.jumpToLast = true
}

// Bounds returns the current page's slice boundaries [first, last) into the
// item sequence. All non-final pages hold exactly capacity items; the final
// page extends to the full item count.
func (p *Pager) Bounds() (first, last int) {
	if p.pages == 0 {
		return 0, 0
	}
	first = p.page * p.capacity
	if p.page == p.pages-1 {
		return first, p.items
	}
	return first, first + p.capacity
}

// Tab returns the active tab.
func (p *Pager) Tab() model.Tab { return p.tab }

// Page returns the zero-based page index.
func (p *Pager) Page() int { return p.page }

// Pages returns the total page count from the last Recompute.
func (p *Pager) Pages() int { return p.pages }

// Items returns the total item count from the last Recompute.
func (p *Pager) Items() int { return p.items }
