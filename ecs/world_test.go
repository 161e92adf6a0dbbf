package ecs

import (
	"testing"

	"github.com/milk9111/carrig/ecs/component"
	"github.com/stretchr/testify/require"
)

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			require.Len(t, Entities(w), c.create)

			if c.destroyIndex < 0 {
				return
			}
			require.True(t, DestroyEntity(w, ents[c.destroyIndex]))
			require.False(t, IsAlive(w, ents[c.destroyIndex]))
			require.False(t, DestroyEntity(w, ents[c.destroyIndex]))
			require.Len(t, Entities(w), c.create-1)
			require.NotContains(t, Entities(w), ents[c.destroyIndex])
		})
	}
}

func TestRecycledSlotGetsNewGeneration(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := CreateEntity(w)
	require.NoError(t, Add(w, old, h.Kind(), intPtr(1)))
	require.True(t, DestroyEntity(w, old))

	fresh := CreateEntity(w)
	require.Equal(t, old.id(), fresh.id())
	require.NotEqual(t, old, fresh)
	require.True(t, IsAlive(w, fresh))
	require.False(t, IsAlive(w, old))

	// Components of the destroyed entity must not leak into the new one.
	require.False(t, Has(w, fresh, h.Kind()))
	_, ok := Get(w, old, h.Kind())
	require.False(t, ok)
	require.Equal(t, "1v1", fresh.String())
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	h := component.NewComponent[int]()

	require.ErrorIs(t, Add(w, e, h.Kind(), nil), component.ErrNilComponent)
	require.ErrorIs(t, Add(w, e, component.ComponentKind[int]{}, intPtr(1)), component.ErrInvalidComponentKind)

	require.True(t, DestroyEntity(w, e))
	require.ErrorIs(t, Add(w, e, h.Kind(), intPtr(1)), component.ErrEntityNotAlive)
}

func TestComponentsAndQueries(t *testing.T) {
	w := NewWorld()

	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()
	h3 := component.NewComponent[float64]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, h1.Kind())
				require.True(t, ok)
				require.Equal(t, 10, *v)
			},
			teardown: func() bool { return Remove(w, e1, h1.Kind()) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, h2.Kind(), stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, h2.Kind(), stringPtr("b"))
			},
			check: func(t *testing.T) {
				require.True(t, Has(w, e1, h2.Kind()))
				require.True(t, Has(w, e2, h2.Kind()))
				require.ElementsMatch(t, []Entity{e1, e2}, w.Query(h2.Kind().ID()))
			},
			teardown: func() bool { return Remove(w, e1, h2.Kind()) },
		},
		{
			name: "replace_float",
			setup: func() error {
				if err := Add(w, e1, h3.Kind(), float64Ptr(1.23)); err != nil {
					return err
				}
				return Add(w, e1, h3.Kind(), float64Ptr(4.5))
			},
			check: func(t *testing.T) {
				v, ok := Get(w, e1, h3.Kind())
				require.True(t, ok)
				require.Equal(t, 4.5, *v)
			},
			teardown: func() bool { return Remove(w, e1, h3.Kind()) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, tc.setup())
			tc.check(t)
			require.True(t, tc.teardown())
		})
	}

	require.False(t, Remove(w, e1, h1.Kind()))
	require.Equal(t, []Entity{e2}, w.Query(h2.Kind().ID()))
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	require.NoError(t, Add(w, e1, h.Kind(), intPtr(1)))
	require.NoError(t, Add(w, e3, h.Kind(), intPtr(3)))

	var ents []Entity
	ForEach(w, h.Kind(), func(e Entity, v *int) {
		*v *= 10
		ents = append(ents, e)
	})
	require.ElementsMatch(t, []Entity{e1, e3}, ents)
	require.NotContains(t, ents, e2)

	v, _ := Get(w, e3, h.Kind())
	require.Equal(t, 30, *v)

	first, ok := First(w, h.Kind())
	require.True(t, ok)
	require.Equal(t, e1, first)

	_, ok = First(w, component.NewComponent[string]().Kind())
	require.False(t, ok)
}

func TestForEach2(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	require.NoError(t, Add(w, e1, ka, intPtr(1)))
	require.NoError(t, Add(w, e2, ka, intPtr(2)))
	require.NoError(t, Add(w, e2, kb, stringPtr("two")))

	var got []string
	ForEach2(w, ka, kb, func(e Entity, a *int, b *string) {
		require.Equal(t, e2, e)
		require.Equal(t, 2, *a)
		got = append(got, *b)
	})
	require.Equal(t, []string{"two"}, got)
}

func TestForEach3(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)
				e3 := CreateEntity(w)
				e4 := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				require.NoError(t, Add(w, e1, ka, intPtr(1)))
				require.NoError(t, Add(w, e2, ka, intPtr(2)))
				require.NoError(t, Add(w, e2, kb, intPtr(3)))
				require.NoError(t, Add(w, e2, kc, intPtr(5)))
				require.NoError(t, Add(w, e3, kb, intPtr(4)))
				require.NoError(t, Add(w, e4, kc, intPtr(6)))

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				require.Equal(t, []Entity{e2}, res)
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				require.NoError(t, Add(w, e, ka, intPtr(1)))
				require.NoError(t, Add(w, e, kb, intPtr(2)))
				require.NoError(t, Add(w, e, kc, intPtr(3)))
				require.True(t, DestroyEntity(w, e))

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				require.Empty(t, res)
			},
		},
		{
			name: "missing_store",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				require.NoError(t, Add(w, e, ka, intPtr(1)))

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				require.Empty(t, res)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestSchedulerFlushesEvents(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)

	var order []string
	var seen []Event
	s := NewScheduler(
		SystemFunc(func(w *World) {
			order = append(order, "emit")
			w.Events().Push(Event{Type: EventBonusWoke, Entity: e})
		}),
		nil,
		SystemFunc(func(w *World) {
			order = append(order, "read")
			seen = append(seen, w.Events().Peek()...)
		}),
	)
	require.Len(t, s.Systems(), 2)

	s.Update(w)
	require.Equal(t, []string{"emit", "read"}, order)
	require.Equal(t, []Event{{Type: EventBonusWoke, Entity: e}}, seen)
	require.Empty(t, w.Events().Peek())
}

func TestEventQueueDrain(t *testing.T) {
	var q EventQueue
	require.Nil(t, q.Drain())

	q.Push(Event{Type: EventInspect})
	q.Push(Event{Type: EventBonusTouched, Data: 2})
	got := q.Drain()
	require.Len(t, got, 2)
	require.Equal(t, EventInspect, got[0].Type)
	require.Empty(t, q.Peek())

	var nilQueue *EventQueue
	nilQueue.Push(Event{})
	require.Nil(t, nilQueue.Peek())
}

func TestSparseSetSwapRemove(t *testing.T) {
	var s SparseSet
	a, b, c := makeEntity(1, 0), makeEntity(2, 0), makeEntity(3, 0)
	s.Set(a, "a")
	s.Set(b, "b")
	s.Set(c, "c")

	require.True(t, s.Remove(a))
	require.Equal(t, 2, s.Len())
	require.Equal(t, "c", s.Get(c))
	require.Equal(t, "b", s.Get(b))
	require.Nil(t, s.Get(a))
	require.ElementsMatch(t, []Entity{b, c}, s.Entities())

	// A stale handle for a reused slot does not match.
	s.Set(makeEntity(2, 1), "b2")
	require.False(t, s.Has(b))
	require.Equal(t, "b2", s.Get(makeEntity(2, 1)))
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func float64Ptr(f float64) *float64 {
	return &f
}
