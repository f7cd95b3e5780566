package system

import "time"

// Runner drives registered systems one phase at a time. Each phase keeps its
// systems in registration order.
type Runner struct {
	phases [phaseCount][]System
	ticks  uint64
}

func NewRunner() *Runner {
	return &Runner{}
}

// Register panics on a phase outside PhaseInput..PhaseOutput.
func (r *Runner) Register(s System) {
	p := s.Phase()
	if p < 0 || p >= phaseCount {
		panic("system: register with unknown phase " + p.String())
	}
	r.phases[p] = append(r.phases[p], s)
}

// Tick runs every phase in order and counts the tick.
func (r *Runner) Tick(dt time.Duration) {
	for p := range r.phases {
		r.run(Phase(p), dt)
	}
	r.ticks++
}

// TickPhase runs a single phase without counting a tick; the host redraws
// with it after a resize.
func (r *Runner) TickPhase(phase Phase, dt time.Duration) {
	if phase < 0 || phase >= phaseCount {
		return
	}
	r.run(phase, dt)
}

func (r *Runner) Ticks() uint64 { return r.ticks }

func (r *Runner) run(phase Phase, dt time.Duration) {
	for _, s := range r.phases[phase] {
		s.Update(dt)
	}
}
