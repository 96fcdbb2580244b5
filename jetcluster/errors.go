package jetcluster

import "fmt"

// ConfigError reports an invalid algorithm/power combination or an
// algorithm passed to the wrong strategy, raised by the façade before
// any state is mutated.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return fmt.Sprintf("jetcluster: configuration error: %s", e.Msg) }

// DomainError reports bad input: empty particle lists or non-finite
// coordinates.
type DomainError struct {
	Msg string
}

func (e *DomainError) Error() string { return fmt.Sprintf("jetcluster: domain error: %s", e.Msg) }

// InvariantError reports a bug caught by the optional consistency
// checker: a history parent or child reference outside the jet store,
// a jet retired twice as a parent, or a child recorded twice. These
// should never occur; they are not retried.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("jetcluster: invariant violation: %s", e.Msg)
}
