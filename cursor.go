package shelf

import (
	"iter"

	iter_util "github.com/TheBitDrifter/util/iter"
)

var _ iCursor = &Cursor{}

func newCursor(query QueryNode, registry *Registry) *Cursor {
	return &Cursor{
		query:    query,
		registry: registry,
	}
}

// Next advances to the next matching entity in ascending id order. It resets the
// cursor and returns false once the registry is exhausted.
func (c *Cursor) Next() bool {
	if !c.initialized {
		c.initialized = true
		c.next = 0
	}
	for int(c.next) < c.registry.EntityCount() {
		e := c.next
		c.next++
		if c.query.Evaluate(e, c.registry) {
			c.current = e
			return true
		}
	}
	c.Reset()
	return false
}

// Entity returns the entity the cursor currently points at.
func (c *Cursor) Entity() Entity {
	return c.current
}

func (c *Cursor) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		c.Reset()
		for c.Next() {
			if !yield(c.current) {
				c.Reset()
				return
			}
		}
	}
}

// Collect returns every matching entity.
func (c *Cursor) Collect() []Entity {
	return iter_util.Collect(c.Entities())
}

func (c *Cursor) Reset() {
	c.current = 0
	c.next = 0
	c.initialized = false
}

func (c *Cursor) TotalMatched() int {
	total := 0
	for e := Entity(0); int(e) < c.registry.EntityCount(); e++ {
		if c.query.Evaluate(e, c.registry) {
			total++
		}
	}
	return total
}
