package core

// Stepper is anything that advances by one generation per call.
type Stepper interface {
	Step()
}

// Termination decides whether a run should stop once gen generations have
// completed. It is asked with gen 0 before anything runs.
type Termination func(gen int) bool

// After stops once n generations have completed.
func After(n int) Termination {
	return func(gen int) bool { return gen >= n }
}

// Until stops as soon as cond holds, including before the first step.
func Until(cond func() bool) Termination {
	return func(int) bool { return cond() }
}

// Either stops when any of the given policies would.
func Either(ts ...Termination) Termination {
	return func(gen int) bool {
		for _, t := range ts {
			if t(gen) {
				return true
			}
		}
		return false
	}
}

// Run steps s until stop reports true and returns the number of generations
// executed. stop is consulted with gen 0 before the first step, so a policy
// that already holds runs nothing.
func Run(s Stepper, stop Termination) int {
	gen := 0
	for !stop(gen) {
		s.Step()
		gen++
	}
	return gen
}
