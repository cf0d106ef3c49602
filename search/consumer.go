package search

import "github.com/pipeworks-go/infiniloop/solution"

// Signal is the consumer's response to a delivered solution.
type Signal int

const (
	// Continue tells the solver to keep searching for further solutions.
	Continue Signal = iota
	// Stop tells the solver to unwind without exploring further branches.
	Stop
)

// Consumer receives solutions as the search discovers them.
type Consumer interface {
	// Deliver is called synchronously on the search goroutine for each
	// solution found. The implementation must not retain sol beyond the
	// call: the solver may reuse or discard the underlying value once
	// Deliver returns.
	Deliver(sol *solution.Solution) Signal
}

// ConsumerFunc adapts a plain function to the Consumer interface.
type ConsumerFunc func(sol *solution.Solution) Signal

// Deliver calls f.
func (f ConsumerFunc) Deliver(sol *solution.Solution) Signal {
	return f(sol)
}
