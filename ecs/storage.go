package ecs

// entityStore hands out slot ids and bumps a slot's generation when its
// entity is destroyed, so stale handles stop matching.
type entityStore struct {
	gens  []generation
	free  []entityID
	count int
}

func (s *entityStore) create() Entity {
	s.count++
	if n := len(s.free); n > 0 {
		id := s.free[n-1]
		s.free = s.free[:n-1]
		return makeEntity(id, s.gens[id-1])
	}
	s.gens = append(s.gens, 0)
	return makeEntity(entityID(len(s.gens)), 0)
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	id := e.id()
	s.gens[id-1]++
	s.free = append(s.free, id)
	s.count--
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(s.gens) {
		return false
	}
	return s.gens[id-1] == e.generation()
}

// each calls fn for every live entity in slot order.
func (s *entityStore) each(fn func(Entity)) {
	dead := make(map[entityID]struct{}, len(s.free))
	for _, id := range s.free {
		dead[id] = struct{}{}
	}
	for i, gen := range s.gens {
		id := entityID(i + 1)
		if _, ok := dead[id]; ok {
			continue
		}
		fn(makeEntity(id, gen))
	}
}
