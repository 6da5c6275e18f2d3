package shelf

import "iter"

// Add attaches value to e, replacing any existing instance
func (c AccessibleComponent[T]) Add(h Handle, e Entity, value T) error {
	return AddComponent(h, e, value)
}

// Set replaces e's component
func (c AccessibleComponent[T]) Set(h Handle, e Entity, value T) error {
	return SetComponent(h, e, value)
}

// Get retrieves the component for e, if it has one
func (c AccessibleComponent[T]) Get(h Handle, e Entity) (*T, bool) {
	return GetComponent[T](h, e)
}

// Check determines if e owns this component
func (c AccessibleComponent[T]) Check(h Handle, e Entity) bool {
	_, ok := GetComponent[T](h, e)
	return ok
}

// GetFromCursor retrieves the component for the entity at the cursor position
// Returns false when that entity does not own it
func (c AccessibleComponent[T]) GetFromCursor(cursor *Cursor) (*T, bool) {
	return GetComponent[T](cursor.registry, cursor.Entity())
}

// Each iterates every owner of this component in ascending entity order
func (c AccessibleComponent[T]) Each(h Handle) iter.Seq2[Entity, *T] {
	return Each[T](h)
}
