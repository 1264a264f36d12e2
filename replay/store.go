package replay

import (
	"fmt"

	"github.com/arloliu/ufwire/errs"
	"github.com/arloliu/ufwire/format"
	"github.com/arloliu/ufwire/updatefield"
)

// Key identifies one replicated block. An object usually owns several
// blocks (object, unit, player) under the same GUID.
type Key struct {
	Type format.ObjectType
	GUID updatefield.GUID
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s", k.Type, k.GUID)
}

// Store holds the decoded state of every block seen in a replay. It is
// not safe for concurrent use.
type Store struct {
	entities map[Key]updatefield.Entity
}

func NewStore() *Store {
	return &Store{entities: make(map[Key]updatefield.Entity)}
}

// Ensure returns the entity for k, creating an empty one on first use.
// created reports whether the entity is new.
func (s *Store) Ensure(k Key) (e updatefield.Entity, created bool, err error) {
	if e, ok := s.entities[k]; ok {
		return e, false, nil
	}

	e, err = updatefield.New(k.Type)
	if err != nil {
		return nil, false, err
	}
	s.entities[k] = e

	return e, true, nil
}

// Lookup returns the entity for k, or errs.ErrUnknownEntity when no Create
// has been applied for it.
func (s *Store) Lookup(k Key) (updatefield.Entity, error) {
	e, ok := s.entities[k]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownEntity, k)
	}

	return e, nil
}

// Get returns the entity for k if present.
func (s *Store) Get(k Key) (updatefield.Entity, bool) {
	e, ok := s.entities[k]
	return e, ok
}

func (s *Store) Delete(k Key) {
	delete(s.entities, k)
}

func (s *Store) Len() int {
	return len(s.entities)
}
