package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// La tentative vit dans Redis le temps du checkout : elle doit survivre aux
// allers-retours HTTP de la revue et du widget, pas davantage. Le TTL borne
// la durée de vie d'une tentative oubliée.
const attemptTTL = 30 * time.Minute

// Store persiste la tentative courante de chaque utilisateur. Une seule
// tentative à la fois : en recommencer une écrase la précédente (dernière
// tentative gagne).
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func attemptKey(userID string) string {
	return "checkout:" + userID
}

func (s *Store) Save(ctx context.Context, userID string, a *Attempt) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("sérialisation tentative: %w", err)
	}
	return s.rdb.Set(ctx, attemptKey(userID), data, attemptTTL).Err()
}

func (s *Store) Load(ctx context.Context, userID string) (*Attempt, error) {
	data, err := s.rdb.Get(ctx, attemptKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoAttempt
	}
	if err != nil {
		return nil, err
	}

	var a Attempt
	if err := json.Unmarshal([]byte(data), &a); err != nil {
		return nil, fmt.Errorf("décodage tentative: %w", err)
	}
	return &a, nil
}

func (s *Store) Delete(ctx context.Context, userID string) error {
	return s.rdb.Del(ctx, attemptKey(userID)).Err()
}
