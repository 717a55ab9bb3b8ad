// Copyright 2026 Sultan Rosh
// Licensed under the MIT license. See license text in the LICENSE file.

package hexkeypad

// A Synchronizer carries the asynchronous "any row active" condition into
// the clocked domain through two register stages, so that by the time the
// scan controller reads it, the level has been stable for a full cycle and
// cannot be caught mid-transition.
//
// Both stages clear on reset and commit once per clock edge:
//
//	stage1(t) = active(t)
//	stage2(t) = stage1(t-1)
//
type Synchronizer struct {
	stage1 bool
	stage2 bool
}

// Step commits one clock edge. reset clears both stages and takes priority
// over the normal shift on the same edge.
//
func (s *Synchronizer) Step(active, reset bool) {
	if reset {
		s.stage1, s.stage2 = false, false
		return
	}
	s.stage2 = s.stage1
	s.stage1 = active
}

// Stable returns the registered stage2 value: the synchronized level as
// observable during the cycle following the edge that committed it. An
// activity step presented at cycle N reads true here at cycle N+2.
//
func (s *Synchronizer) Stable() bool { return s.stage2 }
