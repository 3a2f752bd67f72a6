package app

import "time"

// maxCatchUp bounds how many passes a single frame may run after a stall.
const maxCatchUp = 4

// Pacer spaces confinement passes at a fixed rate independent of the frame
// rate.
type Pacer struct {
	interval time.Duration
	debt     time.Duration
	last     time.Time
	now      func() time.Time
}

// NewPacer returns a pacer targeting rate passes per second. A non-positive
// rate runs one pass per call to Due.
func NewPacer(rate int) *Pacer {
	p := &Pacer{now: time.Now}
	if rate > 0 {
		p.interval = time.Second / time.Duration(rate)
	}
	return p
}

// Due reports how many passes are owed since the previous call.
func (p *Pacer) Due() int {
	if p.interval == 0 {
		return 1
	}
	now := p.now()
	if p.last.IsZero() {
		p.last = now
		return 1
	}
	p.debt += now.Sub(p.last)
	p.last = now
	n := int(p.debt / p.interval)
	p.debt -= time.Duration(n) * p.interval
	if n > maxCatchUp {
		n = maxCatchUp
		p.debt = 0
	}
	return n
}

// Restart forgets accumulated time, so the next Due runs one pass.
func (p *Pacer) Restart() {
	p.last = time.Time{}
	p.debt = 0
}
