package shelf

import "fmt"

type EntityRangeError struct {
	Entity Entity
	Count  int
}

func (e EntityRangeError) Error() string {
	return fmt.Sprintf("entity %d out of range (%d entities)", e.Entity, e.Count)
}

type ReentrantUpdateError struct {
	Tick uint64
}

func (e ReentrantUpdateError) Error() string {
	return fmt.Sprintf("update pass for tick %d is already running", e.Tick)
}

// UpdateError wraps a failure returned by a component's update hook.
type UpdateError struct {
	Entity    Entity
	Component string
	Err       error
}

func (e UpdateError) Error() string {
	return fmt.Sprintf("updating %s on entity %d: %v", e.Component, e.Entity, e.Err)
}

func (e UpdateError) Unwrap() error {
	return e.Err
}
