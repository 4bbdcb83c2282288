package store

import (
	"fmt"
	"sync"

	"github.com/minaorangina/literature/engine"
)

// NotFoundError means a game ID or join code does not exist. Terminal for
// the request that raised it.
type NotFoundError string

func (e NotFoundError) Error() string {
	return string(e)
}

func errUnknownGameID(gameID string) NotFoundError {
	return NotFoundError(fmt.Sprintf("unknown game ID %q", gameID))
}

func errUnknownJoinCode(code string) NotFoundError {
	return NotFoundError(fmt.Sprintf("unknown join code %q", code))
}

// GameStore holds the live game sessions
type GameStore interface {
	FindGame(gameID string) (*engine.GameEngine, error)
	FindGameByJoinCode(code string) (*engine.GameEngine, error)
	AddGame(ge *engine.GameEngine) error
	RemoveGame(gameID string)
}

// InMemoryGameStore maps game id to game engine
type InMemoryGameStore struct {
	mu    sync.RWMutex
	games map[string]*engine.GameEngine
	codes map[string]string // join code -> game id
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		games: map[string]*engine.GameEngine{},
		codes: map[string]string{},
	}
}

func (s *InMemoryGameStore) FindGame(gameID string) (*engine.GameEngine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ge, ok := s.games[gameID]
	if !ok {
		return nil, errUnknownGameID(gameID)
	}
	return ge, nil
}

func (s *InMemoryGameStore) FindGameByJoinCode(code string) (*engine.GameEngine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	gameID, ok := s.codes[code]
	if !ok {
		return nil, errUnknownJoinCode(code)
	}
	return s.games[gameID], nil
}

func (s *InMemoryGameStore) AddGame(ge *engine.GameEngine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[ge.ID()]; exists {
		return fmt.Errorf("game %q already exists", ge.ID())
	}

	s.games[ge.ID()] = ge
	s.codes[ge.JoinCode()] = ge.ID()
	return nil
}

func (s *InMemoryGameStore) RemoveGame(gameID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ge, ok := s.games[gameID]; ok {
		delete(s.codes, ge.JoinCode())
		delete(s.games, gameID)
	}
}
