package shelf

type factory struct{}

var Factory factory

// NewRegistry creates an empty registry with no entities and no columns.
func (f factory) NewRegistry() *Registry {
	return newRegistry(Config.logger)
}

// NewWorld creates an empty world whose clock starts at zero.
func (f factory) NewWorld(opts ...WorldOption) *World {
	return newWorld(opts...)
}

func (f factory) NewQuery() Query {
	return newQuery()
}

func (f factory) NewCursor(query QueryNode, h Handle) *Cursor {
	return newCursor(query, h.Storage())
}

func FactoryNewComponent[T any]() AccessibleComponent[T] {
	return AccessibleComponent[T]{
		Component: elementTypeFor[T](),
	}
}

func FactoryNewCache[T any](cap int) Cache[T] {
	return &SimpleCache[T]{
		itemIndices: make(map[string]int),
		maxCapacity: cap,
	}
}
