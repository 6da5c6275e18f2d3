package shelf

import (
	"iter"

	iter_util "github.com/TheBitDrifter/util/iter"
)

// ID returns the entity as a plain index.
func (e Entity) ID() int {
	return int(e)
}

// Each yields every entity that owns a T, in ascending entity order, together with
// its component. It is meant for read passes such as rendering; values must not be
// retained across ticks.
func Each[T any](h Handle) iter.Seq2[Entity, *T] {
	return func(yield func(Entity, *T) bool) {
		col, ok := lookupColumn[T](h.Storage())
		if !ok {
			return
		}
		for i := 0; i < len(col.slots); i++ {
			comp := col.slots[i]
			if comp == nil {
				continue
			}
			if !yield(Entity(i), comp) {
				return
			}
		}
	}
}

// Entities returns the owners of T in ascending order.
func Entities[T any](h Handle) []Entity {
	return iter_util.Collect(owners(Each[T](h)))
}

func owners[T any](seq iter.Seq2[Entity, *T]) iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for e := range seq {
			if !yield(e) {
				return
			}
		}
	}
}
