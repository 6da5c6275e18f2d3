package shelf

import (
	"time"

	"github.com/TheBitDrifter/table"
)

// column is the type-erased view of one component type's storage.
type column interface {
	pushEmpty()
	update(w *World, dt time.Duration) error
	occupied(e Entity) bool
	length() int
	elementType() table.ElementType
	name() string
}

var _ column = &slotColumn[struct{}]{}

// slotColumn holds one optional *T per entity; nil marks an empty slot.
type slotColumn[T any] struct {
	slots    []*T
	et       table.ElementType
	typeName string
	updates  bool
}

func newSlotColumn[T any](entityCount int) *slotColumn[T] {
	_, updates := any((*T)(nil)).(Updater)
	return &slotColumn[T]{
		slots:    make([]*T, entityCount),
		et:       elementTypeFor[T](),
		typeName: typeName[T](),
		updates:  updates,
	}
}

func (c *slotColumn[T]) pushEmpty() {
	c.slots = append(c.slots, nil)
}

// update re-reads the slice on every step: hooks may grow the column or replace
// slots that have not been visited yet.
func (c *slotColumn[T]) update(w *World, dt time.Duration) error {
	if !c.updates {
		return nil
	}
	for i := 0; i < len(c.slots); i++ {
		comp := c.slots[i]
		if comp == nil {
			continue
		}
		if err := any(comp).(Updater).Update(w, Entity(i), dt); err != nil {
			return UpdateError{Entity: Entity(i), Component: c.typeName, Err: err}
		}
	}
	return nil
}

func (c *slotColumn[T]) get(e Entity) (*T, bool) {
	if e < 0 || int(e) >= len(c.slots) {
		return nil, false
	}
	comp := c.slots[e]
	return comp, comp != nil
}

func (c *slotColumn[T]) set(e Entity, value T) {
	c.slots[e] = &value
}

func (c *slotColumn[T]) occupied(e Entity) bool {
	_, ok := c.get(e)
	return ok
}

func (c *slotColumn[T]) length() int {
	return len(c.slots)
}

func (c *slotColumn[T]) elementType() table.ElementType {
	return c.et
}

func (c *slotColumn[T]) name() string {
	return c.typeName
}
