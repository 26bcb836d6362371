package store

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("store name cannot be empty")
	ErrEmptyLocation    = errors.New("store location cannot be empty")
	ErrEmptyDescription = errors.New("store description cannot be empty")
)

// Store is owned by a partner user; the reservation engine only reads
// its identity and ownership.
type Store struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	name        string
	location    string
	description string
	createdAt   time.Time
}

func NewStore(ownerID uuid.UUID, name, location, description string) (*Store, error) {
	name = strings.TrimSpace(name)
	location = strings.TrimSpace(location)
	description = strings.TrimSpace(description)

	switch {
	case name == "":
		return nil, ErrEmptyName
	case location == "":
		return nil, ErrEmptyLocation
	case description == "":
		return nil, ErrEmptyDescription
	}

	return &Store{
		id:          uuid.New(),
		ownerID:     ownerID,
		name:        name,
		location:    location,
		description: description,
	}, nil
}

func ReconstructStore(id, ownerID uuid.UUID, name, location, description string, createdAt time.Time) *Store {
	return &Store{
		id:          id,
		ownerID:     ownerID,
		name:        name,
		location:    location,
		description: description,
		createdAt:   createdAt,
	}
}

func (s *Store) Rename(name, location, description string) error {
	name = strings.TrimSpace(name)
	location = strings.TrimSpace(location)
	description = strings.TrimSpace(description)

	switch {
	case name == "":
		return ErrEmptyName
	case location == "":
		return ErrEmptyLocation
	case description == "":
		return ErrEmptyDescription
	}

	s.name = name
	s.location = location
	s.description = description
	return nil
}

func (s *Store) IsOwnedBy(userID uuid.UUID) bool {
	return s.ownerID == userID
}

func (s *Store) ID() uuid.UUID        { return s.id }
func (s *Store) OwnerID() uuid.UUID   { return s.ownerID }
func (s *Store) Name() string         { return s.name }
func (s *Store) Location() string     { return s.location }
func (s *Store) Description() string  { return s.description }
func (s *Store) CreatedAt() time.Time { return s.createdAt }
