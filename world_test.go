package shelf

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type visit struct {
	Component string
	Entity    Entity
}

type journal struct {
	visits []visit
}

// tracer records every update it receives.
type tracer struct {
	name string
	log  *journal
}

func (c *tracer) Update(w *World, e Entity, dt time.Duration) error {
	c.log.visits = append(c.log.visits, visit{c.name, e})
	return nil
}

type otherTracer struct {
	log *journal
}

func (c *otherTracer) Update(w *World, e Entity, dt time.Duration) error {
	c.log.visits = append(c.log.visits, visit{"other", e})
	return nil
}

// marker records the value it held when it was updated.
type marker struct {
	Value int
	seen  *[]int
}

func (m *marker) Update(w *World, e Entity, dt time.Duration) error {
	*m.seen = append(*m.seen, m.Value)
	return nil
}

// stamper overwrites the marker of the next entity.
type stamper struct {
	seen *[]int
}

func (s *stamper) Update(w *World, e Entity, dt time.Duration) error {
	return SetComponent(w, e+1, marker{Value: 100 + int(e), seen: s.seen})
}

type failing struct {
	err error
}

func (f *failing) Update(w *World, e Entity, dt time.Duration) error {
	return f.err
}

type reentrant struct {
	err error
}

func (r *reentrant) Update(w *World, e Entity, dt time.Duration) error {
	r.err = w.UpdateAll(dt)
	return nil
}

type clockReader struct {
	seen *[]time.Duration
}

func (c *clockReader) Update(w *World, e Entity, dt time.Duration) error {
	*c.seen = append(*c.seen, w.Now())
	return nil
}

// spawner attaches a fresh type the first time it runs.
type spawner struct{}

func (s *spawner) Update(w *World, e Entity, dt time.Duration) error {
	if _, ok := GetComponent[tracer](w, e); ok {
		return nil
	}
	log, _ := GetComponent[journal](w, e)
	return AddComponent(w, e, tracer{name: "spawned", log: log})
}

func TestUpdateAllVisitsEntitiesInAscendingOrder(t *testing.T) {
	world := Factory.NewWorld()
	log := &journal{}

	e1 := world.NewEntity()
	world.NewEntity()
	e2 := world.NewEntity()

	// Attach the later entity first; order must still follow ids.
	require.NoError(t, AddComponent(world, e2, tracer{name: "t", log: log}))
	require.NoError(t, AddComponent(world, e1, tracer{name: "t", log: log}))

	require.NoError(t, world.UpdateAll(time.Millisecond))
	assert.Equal(t, []visit{{"t", e1}, {"t", e2}}, log.visits)
}

func TestUpdateAllVisitsColumnsInRegistrationOrder(t *testing.T) {
	world := Factory.NewWorld()
	log := &journal{}
	a := world.NewEntity()
	b := world.NewEntity()

	require.NoError(t, AddComponent(world, b, otherTracer{log: log}))
	require.NoError(t, AddComponent(world, a, tracer{name: "t", log: log}))
	require.NoError(t, AddComponent(world, a, otherTracer{log: log}))

	require.NoError(t, world.UpdateAll(time.Millisecond))
	assert.Equal(t, []visit{{"other", a}, {"other", b}, {"t", a}}, log.visits)
}

func TestUpdateAllSkipsComponentsWithoutHooks(t *testing.T) {
	world := Factory.NewWorld()
	log := &journal{}
	e := world.NewEntity()

	require.NoError(t, AddComponent(world, e, Position{X: 1}))
	require.NoError(t, AddComponent(world, e, tracer{name: "t", log: log}))

	require.NoError(t, world.UpdateAll(time.Millisecond))
	pos, _ := GetComponent[Position](world, e)
	assert.Equal(t, Position{X: 1}, *pos)
	assert.Len(t, log.visits, 1)
}

func TestSamePassWritesAreVisibleToLaterSlots(t *testing.T) {
	world := Factory.NewWorld()
	var seen []int
	for i := 0; i < 3; i++ {
		world.NewEntity()
	}

	// stamper is registered first, so its writes land before marker's pass.
	require.NoError(t, AddComponent(world, 0, stamper{seen: &seen}))
	require.NoError(t, AddComponent(world, 1, stamper{seen: &seen}))
	require.NoError(t, AddComponent(world, 1, marker{Value: 1, seen: &seen}))
	require.NoError(t, AddComponent(world, 2, marker{Value: 2, seen: &seen}))

	require.NoError(t, world.UpdateAll(time.Millisecond))
	assert.Equal(t, []int{100, 101}, seen)
}

func TestSamePassWritesWithinOneColumn(t *testing.T) {
	world := Factory.NewWorld()
	var seen []int
	world.NewEntity()
	world.NewEntity()

	require.NoError(t, AddComponent(world, 0, relay{Value: 1, seen: &seen}))
	require.NoError(t, AddComponent(world, 1, relay{Value: 2, seen: &seen}))
	before, _ := GetComponent[relay](world, 1)

	require.NoError(t, world.UpdateAll(time.Millisecond))
	assert.Equal(t, []int{1, 99}, seen)

	after, _ := GetComponent[relay](world, 1)
	assert.NotSame(t, before, after)
}

// relay replaces the instance of the entity after it, which has not been
// visited yet in the current pass.
type relay struct {
	Value int
	seen  *[]int
}

func (r *relay) Update(w *World, e Entity, dt time.Duration) error {
	*r.seen = append(*r.seen, r.Value)
	if e == 0 {
		return SetComponent(w, 1, relay{Value: 99, seen: r.seen})
	}
	return nil
}

func TestColumnRegisteredDuringPassIsVisited(t *testing.T) {
	world := Factory.NewWorld()
	log := &journal{}
	e := world.NewEntity()

	require.NoError(t, AddComponent(world, e, *log))
	require.NoError(t, AddComponent(world, e, spawner{}))
	stored, _ := GetComponent[journal](world, e)

	require.NoError(t, world.UpdateAll(time.Millisecond))
	assert.Equal(t, []visit{{"spawned", e}}, stored.visits)
	assert.Equal(t, []string{"shelf.journal", "shelf.spawner", "shelf.tracer"}, world.ComponentTypes())
}

func TestUpdateAllAbortsOnHookError(t *testing.T) {
	world := Factory.NewWorld()
	log := &journal{}
	boom := errors.New("boom")
	for i := 0; i < 3; i++ {
		world.NewEntity()
	}

	require.NoError(t, AddComponent(world, 0, tracer{name: "t", log: log}))
	require.NoError(t, AddComponent(world, 2, tracer{name: "t", log: log}))
	require.NoError(t, AddComponent(world, 1, failing{err: boom}))

	err := world.UpdateAll(time.Second)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	var updateErr UpdateError
	require.True(t, errors.As(err, &updateErr))
	assert.Equal(t, Entity(1), updateErr.Entity)
	assert.Equal(t, "shelf.failing", updateErr.Component)

	assert.Len(t, log.visits, 2, "tracer column ran before the failure")
	assert.Equal(t, time.Duration(0), world.Now())
	assert.Equal(t, uint64(0), world.Tick())
	assert.False(t, world.Updating())
}

func TestNestedUpdateAllIsRejected(t *testing.T) {
	world := Factory.NewWorld()
	e := world.NewEntity()
	require.NoError(t, AddComponent(world, e, reentrant{}))

	require.NoError(t, world.UpdateAll(time.Millisecond))
	r, _ := GetComponent[reentrant](world, e)

	var reErr ReentrantUpdateError
	require.True(t, errors.As(r.err, &reErr))
	assert.Equal(t, uint64(1), world.Tick())
}

func TestClockAdvancesAfterEachPass(t *testing.T) {
	var seen []time.Duration
	world := Factory.NewWorld(WithClock(time.Second))
	e := world.NewEntity()
	require.NoError(t, AddComponent(world, e, clockReader{seen: &seen}))

	step := 250 * time.Millisecond
	for i := 0; i < 3; i++ {
		require.NoError(t, world.UpdateAll(step))
	}
	assert.Equal(t, []time.Duration{time.Second, 1250 * time.Millisecond, 1500 * time.Millisecond}, seen)
	assert.Equal(t, 1750*time.Millisecond, world.Now())
	assert.Equal(t, uint64(3), world.Tick())
}

func TestEntityCreatedDuringPassGetsSlots(t *testing.T) {
	world := Factory.NewWorld()
	e := world.NewEntity()
	require.NoError(t, AddComponent(world, e, Position{}))
	require.NoError(t, AddComponent(world, e, grower{}))

	require.NoError(t, world.UpdateAll(time.Millisecond))
	assert.Equal(t, 2, world.EntityCount())
	assert.Equal(t, 2, Len[Position](world))
	assert.Equal(t, 2, Len[grower](world))
}

type grower struct {
	done bool
}

func (g *grower) Update(w *World, e Entity, dt time.Duration) error {
	if g.done {
		return nil
	}
	g.done = true
	w.NewEntity()
	return nil
}
