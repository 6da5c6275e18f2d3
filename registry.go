package shelf

import (
	"github.com/TheBitDrifter/table"
	"github.com/rs/zerolog"
)

var _ Handle = &Registry{}

// Registry owns one sparse column per component type ever attached, in the order
// the types were first seen, and the signature of every entity. Signature bits are
// column positions, so they stay dense no matter how many types the process knows.
type Registry struct {
	entityCount int
	columns     []column
	bits        map[table.ElementTypeID]uint32
	signatures  []signature
	logger      zerolog.Logger
}

func newRegistry(logger zerolog.Logger) *Registry {
	return &Registry{
		bits:   make(map[table.ElementTypeID]uint32),
		logger: logger,
	}
}

// Storage returns r so that a *Registry can be used wherever a Handle is expected.
// A World promotes it from its embedded Registry.
func (r *Registry) Storage() *Registry {
	return r
}

// NewEntity allocates the next entity id and appends an empty slot to every column.
func (r *Registry) NewEntity() Entity {
	e := Entity(r.entityCount)
	for _, col := range r.columns {
		col.pushEmpty()
	}
	r.signatures = append(r.signatures, nil)
	r.entityCount++
	return e
}

// EntityCount returns the number of entities ever created.
func (r *Registry) EntityCount() int {
	return r.entityCount
}

// Contains reports whether e was issued by this registry.
func (r *Registry) Contains(e Entity) bool {
	return e >= 0 && int(e) < r.entityCount
}

// ComponentTypes lists the registered component types in registration order.
func (r *Registry) ComponentTypes() []string {
	names := make([]string, len(r.columns))
	for i, col := range r.columns {
		names[i] = col.name()
	}
	return names
}

// Has reports whether e owns every one of the given components.
func (r *Registry) Has(e Entity, components ...Component) bool {
	if !r.Contains(e) {
		return false
	}
	want, missing := r.signatureFor(components)
	if missing > 0 {
		return false
	}
	return r.signatures[e].containsAll(want)
}

// bitFor returns the signature bit of a component's column. It never creates a
// column, so read paths leave the registry untouched.
func (r *Registry) bitFor(c Component) (uint32, bool) {
	bit, ok := r.bits[c.ID()]
	return bit, ok
}

// signatureFor marks the bits of the given components and counts those that
// have no column in r.
func (r *Registry) signatureFor(components []Component) (want signature, missing int) {
	for _, c := range components {
		bit, ok := r.bitFor(c)
		if !ok {
			missing++
			continue
		}
		want.mark(bit)
	}
	return want, missing
}

func (r *Registry) signature(e Entity) signature {
	return r.signatures[e]
}

// lookupColumn finds T's column by asserting each erased column back to its
// concrete type. A miss means T was never attached.
func lookupColumn[T any](r *Registry) (*slotColumn[T], bool) {
	for _, col := range r.columns {
		if typed, ok := col.(*slotColumn[T]); ok {
			return typed, true
		}
	}
	return nil, false
}

func columnFor[T any](r *Registry) *slotColumn[T] {
	if col, ok := lookupColumn[T](r); ok {
		return col
	}
	col := newSlotColumn[T](r.entityCount)
	bit := uint32(len(r.columns))
	r.columns = append(r.columns, col)
	r.bits[col.elementType().ID()] = bit
	r.logger.Debug().
		Str("component", col.name()).
		Uint32("bit", bit).
		Int("entities", r.entityCount).
		Msg("registered component column")
	return col
}

// AddComponent attaches value to e, creating T's column on first use and
// silently replacing any T the entity already had.
func AddComponent[T any](h Handle, e Entity, value T) error {
	r := h.Storage()
	if !r.Contains(e) {
		return EntityRangeError{Entity: e, Count: r.entityCount}
	}
	col := columnFor[T](r)
	col.set(e, value)
	bit, _ := r.bitFor(col.elementType())
	r.signatures[e].mark(bit)
	return nil
}

// SetComponent replaces e's T. It behaves exactly like AddComponent and exists so
// update hooks read as what they do.
func SetComponent[T any](h Handle, e Entity, value T) error {
	return AddComponent(h, e, value)
}

// GetComponent returns e's T. It reports false when T was never attached to any
// entity, when e never had a T, or when e is outside the registry.
func GetComponent[T any](h Handle, e Entity) (*T, bool) {
	col, ok := lookupColumn[T](h.Storage())
	if !ok {
		return nil, false
	}
	return col.get(e)
}

// Len returns the length of T's column, or -1 when T has no column yet.
func Len[T any](h Handle) int {
	col, ok := lookupColumn[T](h.Storage())
	if !ok {
		return -1
	}
	return col.length()
}
