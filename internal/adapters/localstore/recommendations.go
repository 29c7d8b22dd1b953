package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/verdantly/wellspring/internal/domain"
	"github.com/verdantly/wellspring/internal/ports"
)

// RecommendationStore keeps generated plans under the recommendations key,
// a JSON object mapping plan id to record.
type RecommendationStore struct {
	kv  ports.KV
	log ports.Logger
	mu  sync.Mutex
}

func NewRecommendationStore(kv ports.KV, log ports.Logger) *RecommendationStore {
	return &RecommendationStore{kv: kv, log: log}
}

func (s *RecommendationStore) Save(ctx context.Context, rec domain.Recommendation) error {
	if rec.ID == "" {
		return &domain.ValidationError{Field: "id", Reason: "must not be empty"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load(ctx)
	if err != nil {
		return err
	}
	all[rec.ID] = rec

	buf, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("encode recommendations: %w", err)
	}
	if err := s.kv.Set(ctx, ports.KeyRecommendations, buf); err != nil {
		return fmt.Errorf("write recommendations: %w", err)
	}
	return nil
}

func (s *RecommendationStore) GetByID(ctx context.Context, id string) (domain.Recommendation, error) {
	all, err := s.load(ctx)
	if err != nil {
		return domain.Recommendation{}, err
	}
	rec, ok := all[id]
	if !ok {
		return domain.Recommendation{}, &domain.NotFoundError{Kind: "recommendation", Key: id}
	}
	return rec, nil
}

// ListByUser returns the user's plans, newest first.
func (s *RecommendationStore) ListByUser(ctx context.Context, userEmail string) ([]domain.Recommendation, error) {
	all, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	out := []domain.Recommendation{}
	for _, rec := range all {
		if rec.UserEmail == userEmail {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Created.After(out[j].Created)
	})
	return out, nil
}

func (s *RecommendationStore) load(ctx context.Context) (map[string]domain.Recommendation, error) {
	data, err := s.kv.Get(ctx, ports.KeyRecommendations)
	if err != nil {
		return nil, fmt.Errorf("read recommendations: %w", err)
	}
	if len(data) == 0 {
		return map[string]domain.Recommendation{}, nil
	}
	var all map[string]domain.Recommendation
	if err := json.Unmarshal(data, &all); err != nil {
		s.log.Error(fmt.Sprintf("malformed data under %q, treating as empty: %v", ports.KeyRecommendations, err))
		return map[string]domain.Recommendation{}, nil
	}
	return all, nil
}
