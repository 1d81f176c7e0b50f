package sched

import "github.com/vk/dlacgo/internal/ir"

// pickNext scans the worklist in order and dispatches every candidate
// whose resource class has a free unit right now, removing it from the
// worklist. Strict first-fit: no reordering, no preemption, no lookahead.
// Candidates left behind keep their relative order for the next round.
func (s *Scheduler) pickNext(worklist *[]*ir.Node) []*ir.Node {
	var next []*ir.Node
	kept := (*worklist)[:0]
	for _, n := range *worklist {
		res := s.backend.ResourceOf(n)
		if s.occ.available(res) {
			s.occ.occupy(res, n)
			next = append(next, n)
			continue
		}
		kept = append(kept, n)
	}
	*worklist = kept
	return next
}
