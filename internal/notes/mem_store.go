package notes

import (
	"context"
	"sort"
	"sync"
)

var _ Store = (*MemStore)(nil)

type MemStore struct {
	IntIDScheme

	mutex  sync.RWMutex
	lastID IntID
	notes  map[IntID]Note
}

func NewMemStore() *MemStore {
	return &MemStore{
		notes: make(map[IntID]Note),
	}
}

func (s *MemStore) List(_ context.Context) ([]Note, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var notes []Note
	for _, n := range s.notes {
		notes = append(notes, n)
	}
	sort.Slice(notes, func(i, j int) bool {
		return notes[i].ID.(IntID) < notes[j].ID.(IntID)
	})
	return notes, nil
}

func (s *MemStore) Get(_ context.Context, id ID) (*Note, error) {
	intID, err := AsIntID(id)
	if err != nil {
		return nil, err
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	note, ok := s.notes[intID]
	if !ok {
		return nil, nil
	}
	return &note, nil
}

func (s *MemStore) Add(_ context.Context, note *Note) (*Note, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.lastID++
	note.ID = s.lastID
	s.notes[s.lastID] = *note
	return note, nil
}

func (s *MemStore) Update(_ context.Context, note *Note) (*Note, error) {
	intID, err := AsIntID(note.ID)
	if err != nil {
		return nil, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.notes[intID]; ok {
		s.notes[intID] = *note
	}
	return note, nil
}

func (s *MemStore) Delete(_ context.Context, id ID) error {
	intID, err := AsIntID(id)
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.notes, intID)
	return nil
}

func (s *MemStore) DeleteAll(_ context.Context) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.notes = make(map[IntID]Note)
	return nil
}
