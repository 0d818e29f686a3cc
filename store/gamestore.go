package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/minaorangina/setgame/game"
	uuid "github.com/satori/go.uuid"
)

var (
	ErrUnknownGameID = errors.New("unknown game ID")
	ErrFnDuplicateID = func(gameID string) error {
		return fmt.Errorf("game with id \"%s\" already exists", gameID)
	}
)

type GameStore interface {
	FindGame(gameID string) (*game.Session, error)
	AddGame(gameID string, session *game.Session) error
	RemoveGame(gameID string) error
	Len() int
}

// InMemoryGameStore maps game id to session
type InMemoryGameStore struct {
	mu    sync.RWMutex
	Games map[string]*game.Session
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		Games: map[string]*game.Session{},
	}
}

// NewID returns a fresh game ID
func NewID() string {
	return uuid.NewV4().String()
}

func (s *InMemoryGameStore) FindGame(gameID string) (*game.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.Games[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGameID, gameID)
	}
	return session, nil
}

func (s *InMemoryGameStore) AddGame(gameID string, session *game.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.Games[gameID]; exists {
		return ErrFnDuplicateID(gameID)
	}

	s.Games[gameID] = session
	return nil
}

// RemoveGame forgets a game. Sessions are otherwise kept until the
// process exits.
func (s *InMemoryGameStore) RemoveGame(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.Games[gameID]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownGameID, gameID)
	}
	delete(s.Games, gameID)
	return nil
}

func (s *InMemoryGameStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.Games)
}
