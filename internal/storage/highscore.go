package storage

import "sync"

// GameHighScore binds a Store to one game id.
type GameHighScore struct {
	store  *Store
	gameID string
}

// ForGame returns a high-score accessor for gameID.
func (s *Store) ForGame(gameID string) *GameHighScore {
	return &GameHighScore{store: s, gameID: gameID}
}

// LoadHighScore returns the stored high score.
func (g *GameHighScore) LoadHighScore() (int, error) {
	return g.store.HighScore(g.gameID)
}

// SaveHighScore stores candidate if it beats the stored score.
func (g *GameHighScore) SaveHighScore(candidate int) (bool, error) {
	return g.store.SaveHighScore(g.gameID, candidate)
}

// Memory keeps a high score in memory. Used when no database is available.
type Memory struct {
	mu    sync.Mutex
	score int
}

// LoadHighScore returns the best score seen so far.
func (m *Memory) LoadHighScore() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score, nil
}

// SaveHighScore keeps candidate if it strictly exceeds the current value.
func (m *Memory) SaveHighScore(candidate int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if candidate <= m.score {
		return false, nil
	}
	m.score = candidate
	return true, nil
}
