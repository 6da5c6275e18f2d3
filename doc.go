/*
Package shelf provides a small, append-only Entity-Component-System (ECS) runtime.

Shelf stores every component type in its own sparse column: one slot per entity,
empty until a component of that type is attached. Columns are created lazily the
first time a type is attached and are kept the same length as the entity count
for the lifetime of the registry. Entities are dense integers handed out in order
and are never destroyed; attaching a component again simply overwrites it.

Core Concepts:

  - Entity: A dense, zero-based identifier for a game object.
  - Component: Any Go value attached to an entity, stored in its type's column.
  - Registry: The owner of all columns, keyed by component type.
  - World: A Registry plus a clock that drives the per-tick update pass.
  - Updater: The optional hook a component implements to take part in a tick.

Basic Usage:

	world := shelf.Factory.NewWorld()

	player := world.NewEntity()
	shelf.AddComponent(world, player, Position{X: 10})
	shelf.AddComponent(world, player, Velocity{X: 1})

	// *Velocity implements shelf.Updater and moves the entity's Position.
	world.UpdateAll(time.Second / 60)

	if pos, ok := shelf.GetComponent[Position](world, player); ok {
		fmt.Println(pos.X)
	}

During UpdateAll, columns are visited in the order their type was first attached
and slots in ascending entity order. Hooks receive the World and may read or
replace any component of any entity; those writes are visible to every slot
visited later in the same pass.
*/
package shelf
