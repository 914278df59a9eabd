package ecs

type System interface {
	Update(w *World)
}

// SystemFunc adapts a plain function to System.
type SystemFunc func(w *World)

func (f SystemFunc) Update(w *World) { f(w) }

// Condition gates a group of systems for one tick.
type Condition func(w *World) bool

type stage struct {
	cond    Condition
	systems []System
}

// Scheduler runs systems in registration order. Systems added with AddWhen
// only run on ticks where their condition holds; the condition is evaluated
// once per group, immediately before the group runs.
type Scheduler struct {
	stages []stage
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.stages = append(s.stages, stage{systems: []System{system}})
}

// AddWhen registers systems that run, in order, only while cond holds.
func (s *Scheduler) AddWhen(cond Condition, systems ...System) {
	group := make([]System, 0, len(systems))
	for _, system := range systems {
		if system != nil {
			group = append(group, system)
		}
	}
	if len(group) == 0 {
		return
	}
	s.stages = append(s.stages, stage{cond: cond, systems: group})
}

func (s *Scheduler) Update(w *World) {
	for _, st := range s.stages {
		if st.cond != nil && !st.cond(w) {
			continue
		}
		for _, system := range st.systems {
			system.Update(w)
		}
	}
}

func (s *Scheduler) Systems() []System {
	var systems []System
	for _, st := range s.stages {
		systems = append(systems, st.systems...)
	}
	return systems
}
