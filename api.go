package shelf

import (
	"iter"
	"time"

	"github.com/TheBitDrifter/table"
)

// Entity is a dense, zero-based entity identifier.
type Entity int

// Handle is anything backed by a Registry. Both *Registry and *World satisfy it,
// so the typed accessors work the same inside and outside an update pass.
type Handle interface {
	Storage() *Registry
}

// Updater is the per-tick hook a component may implement on its pointer type.
// Components without it are stored but never visited by UpdateAll.
type Updater interface {
	Update(w *World, e Entity, dt time.Duration) error
}

// Component identifies a component type within a Registry.
type Component interface {
	table.ElementType
}

type Query interface {
	QueryNode
	And(items ...interface{}) QueryNode
	Or(items ...interface{}) QueryNode
	Not(items ...interface{}) QueryNode
}

type QueryNode interface {
	Evaluate(e Entity, reg *Registry) bool
}

type iCursor interface {
	Entities() iter.Seq[Entity]
	Next() bool
}

type Cache[T any] interface {
	GetIndex(string) (int, bool)
	GetItem(int) *T
	Register(string, T) (int, error)
	Len() int
}

// Cursor walks the entities of a registry whose signature satisfies a query.
type Cursor struct {
	query    QueryNode
	registry *Registry

	current     Entity
	next        Entity
	initialized bool
}

// AccessibleComponent pairs a Component with typed access to its column.
type AccessibleComponent[T any] struct {
	Component
}

type SimpleCache[T any] struct {
	items       []T
	itemIndices map[string]int
	maxCapacity int
}
