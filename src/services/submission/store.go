package submission

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"Backend-Career-Advisor/src/models"
	"Backend-Career-Advisor/src/services/roles"
)

var ErrNotFound = errors.New("submission not found")

// Store keeps the history of completed assessments.
type Store interface {
	Save(ctx context.Context, s *models.Submission) error
	Get(ctx context.Context, id string) (*models.Submission, error)
	// List returns one page in createdAt order plus the total match count.
	List(ctx context.Context, params models.PaginationParams) ([]models.Submission, int64, error)
	CountByRole(ctx context.Context) ([]models.RoleCount, error)
}

// MemoryStore is the Store used when no MongoDB is configured.
type MemoryStore struct {
	mu    sync.RWMutex
	items []models.Submission
	byID  map[string]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byID: make(map[string]int)}
}

func (m *MemoryStore) Save(_ context.Context, s *models.Submission) error {
	if s.ID == "" {
		return errors.New("submission ID is required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.byID[s.ID]; exists {
		return errors.New("duplicate submission ID")
	}
	m.byID[s.ID] = len(m.items)
	m.items = append(m.items, cloneSubmission(*s))
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (*models.Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	s := cloneSubmission(m.items[i])
	return &s, nil
}

func (m *MemoryStore) List(_ context.Context, params models.PaginationParams) ([]models.Submission, int64, error) {
	params.Normalize()
	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := make([]models.Submission, 0, len(m.items))
	for _, s := range m.items {
		if params.Role == "" || strings.EqualFold(s.Role, params.Role) {
			matched = append(matched, s)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if params.Order == "asc" {
			return matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	skip := params.GetSkip()
	if skip >= total {
		return []models.Submission{}, total, nil
	}
	page := matched[skip:]
	if len(page) > params.Limit {
		page = page[:params.Limit]
	}
	out := make([]models.Submission, len(page))
	for i, s := range page {
		out[i] = cloneSubmission(s)
	}
	return out, total, nil
}

func (m *MemoryStore) CountByRole(_ context.Context) ([]models.RoleCount, error) {
	m.mu.RLock()
	counts := make(map[int]int64)
	for _, s := range m.items {
		counts[s.ClassID]++
	}
	m.mu.RUnlock()

	out := make([]models.RoleCount, 0, len(counts))
	for id, c := range counts {
		out = append(out, models.RoleCount{ClassID: id, Role: roles.Lookup(id), Count: c})
	}
	sortCounts(out)
	return out, nil
}

// sortCounts orders by count descending, then class id.
func sortCounts(out []models.RoleCount) {
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].ClassID < out[j].ClassID
	})
}

func cloneSubmission(s models.Submission) models.Submission {
	s.Responses = append([]models.Response(nil), s.Responses...)
	s.Vector = append(models.FeatureVector(nil), s.Vector...)
	return s
}
