package reconcile

import (
	"fmt"

	"github.com/weft-ui/weft/internal/errors"
	"github.com/weft-ui/weft/pkg/view"
)

// StateStore holds one type-erased component state value per live identity.
// An entry lives from instance creation until the garbage collection pass
// removes it; the reconciler itself never deletes.
type StateStore struct {
	storage map[view.ID]any
}

// NewStateStore returns an empty component state store.
func NewStateStore() *StateStore {
	return &StateStore{storage: make(map[view.ID]any)}
}

// Insert stores the state for id, replacing any previous entry.
func (s *StateStore) Insert(id view.ID, state any) {
	s.storage[id] = state
}

// Get returns the state for id.
func (s *StateStore) Get(id view.ID) (any, bool) {
	state, ok := s.storage[id]
	return state, ok
}

// Contains reports whether an entry exists for id.
func (s *StateStore) Contains(id view.ID) bool {
	_, ok := s.storage[id]
	return ok
}

// Remove deletes the entry for id.
func (s *StateStore) Remove(id view.ID) {
	delete(s.storage, id)
}

// Len returns the number of live entries.
func (s *StateStore) Len() int {
	return len(s.storage)
}

// RemoveUnused deletes every entry whose id was live before a pass but is
// absent from the new id set, and returns how many were removed. Run this
// only after the pass's outputs are committed: a node torn down in one place
// can be rebuilt under a different parent within the same pass, and must not
// be collected while the diff is still running.
func (s *StateStore) RemoveUnused(old, current map[view.ID]struct{}) int {
	removed := 0
	for id := range old {
		if _, ok := current[id]; !ok {
			if _, live := s.storage[id]; live {
				delete(s.storage, id)
				removed++
			}
		}
	}
	return removed
}

// MustState returns the state for id as *T. A missing entry or a different
// concrete type is a fatal contract violation: the matching invariant is
// broken and silently reinitializing would corrupt the identity guarantees
// callers rely on.
func MustState[T any](s *StateStore, id view.ID) *T {
	raw, ok := s.storage[id]
	if !ok {
		panic(errors.MissingState(uint64(id), "component", "").Format())
	}
	state, ok := raw.(*T)
	if !ok {
		panic(errors.StateMismatch(uint64(id), fmt.Sprintf("%T", (*T)(nil)), fmt.Sprintf("%T", raw)).Format())
	}
	return state
}

// ElementStateStore holds one StateItem per live element identity.
type ElementStateStore struct {
	storage map[view.ID]*view.StateItem
}

// NewElementStateStore returns an empty element state store.
func NewElementStateStore() *ElementStateStore {
	return &ElementStateStore{storage: make(map[view.ID]*view.StateItem)}
}

// Insert stores the item for id, replacing any previous entry.
func (s *ElementStateStore) Insert(id view.ID, item *view.StateItem) {
	s.storage[id] = item
}

// Get returns the item for id.
func (s *ElementStateStore) Get(id view.ID) (*view.StateItem, bool) {
	item, ok := s.storage[id]
	return item, ok
}

// MustGet returns the item for a reused id. A missing entry is a fatal
// contract violation.
func (s *ElementStateStore) MustGet(id view.ID, tag string) *view.StateItem {
	item, ok := s.storage[id]
	if !ok {
		panic(errors.MissingState(uint64(id), "element", tag).Format())
	}
	return item
}

// Contains reports whether an entry exists for id.
func (s *ElementStateStore) Contains(id view.ID) bool {
	_, ok := s.storage[id]
	return ok
}

// Remove deletes the entry for id.
func (s *ElementStateStore) Remove(id view.ID) {
	delete(s.storage, id)
}

// Len returns the number of live entries.
func (s *ElementStateStore) Len() int {
	return len(s.storage)
}

// RemoveUnused deletes entries for ids live before a pass but absent after
// it. See StateStore.RemoveUnused for the timing contract.
func (s *ElementStateStore) RemoveUnused(old, current map[view.ID]struct{}) int {
	removed := 0
	for id := range old {
		if _, ok := current[id]; !ok {
			if _, live := s.storage[id]; live {
				delete(s.storage, id)
				removed++
			}
		}
	}
	return removed
}

// SetFocus applies a focus action across all base states: FocusSet focuses
// exactly the given id, FocusClear unfocuses everything, FocusNone is a
// no-op.
func (s *ElementStateStore) SetFocus(action view.FocusAction, id view.ID) {
	switch action {
	case view.FocusNone:
	case view.FocusSet:
		for entryID, item := range s.storage {
			item.Base.Focused = entryID == id
		}
	case view.FocusClear:
		for _, item := range s.storage {
			item.Base.Focused = false
		}
	}
}

// DataOf returns the typed widget data for id. Missing entries and type
// mismatches are fatal, matching MustState.
func DataOf[T any](s *ElementStateStore, id view.ID) *T {
	item, ok := s.storage[id]
	if !ok {
		panic(errors.MissingState(uint64(id), "element", "").Format())
	}
	data, ok := item.Data.(*T)
	if !ok {
		panic(errors.StateMismatch(uint64(id), fmt.Sprintf("%T", (*T)(nil)), fmt.Sprintf("%T", item.Data)).Format())
	}
	return data
}
