package strata

import "github.com/google/uuid"

// MemoryBoxStore is an in-memory [BoxStore] for demos, tests, and hosts that
// handle persistence elsewhere. Boxes keep insertion order, which doubles as
// render order within a depth layer. Not safe for concurrent use; the engine
// model is single-threaded.
type MemoryBoxStore struct {
	boxes []Box
	index map[string]int
}

// NewMemoryBoxStore creates an empty store.
func NewMemoryBoxStore() *MemoryBoxStore {
	return &MemoryBoxStore{index: make(map[string]int)}
}

// AddBox inserts a box and returns its id. An empty ID is assigned a fresh
// UUID; adding an existing id replaces that box's record in place.
func (s *MemoryBoxStore) AddBox(b Box) string {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if i, ok := s.index[b.ID]; ok {
		s.boxes[i] = b
		return b.ID
	}
	s.index[b.ID] = len(s.boxes)
	s.boxes = append(s.boxes, b)
	return b.ID
}

// RemoveBox deletes the box with the given id. Unknown ids are a no-op.
func (s *MemoryBoxStore) RemoveBox(id string) {
	i, ok := s.index[id]
	if !ok {
		return
	}
	s.boxes = append(s.boxes[:i], s.boxes[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.boxes); j++ {
		s.index[s.boxes[j].ID] = j
	}
}

// Boxes returns the current box list in insertion order. Callers must treat
// the slice as read-only.
func (s *MemoryBoxStore) Boxes() []Box {
	return s.boxes
}

// Box returns the box with the given id, if present.
func (s *MemoryBoxStore) Box(id string) (Box, bool) {
	i, ok := s.index[id]
	if !ok {
		return Box{}, false
	}
	return s.boxes[i], true
}

// UpdateBox applies a partial update. Last write wins; returns false for
// unknown ids.
func (s *MemoryBoxStore) UpdateBox(id string, patch BoxPatch) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	b := &s.boxes[i]
	if patch.X != nil {
		b.X = *patch.X
	}
	if patch.Y != nil {
		b.Y = *patch.Y
	}
	if patch.Width != nil {
		b.Width = *patch.Width
	}
	if patch.Height != nil {
		b.Height = *patch.Height
	}
	if patch.Z != nil {
		b.Z = *patch.Z
	}
	return true
}
