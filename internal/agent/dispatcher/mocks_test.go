package dispatcher

import (
	"context"
	"errors"
	"strings"
	"sync"

	"learning-activity-agent/internal/activity"
	"learning-activity-agent/internal/conversation"
	"learning-activity-agent/internal/conversation/memory"
	"learning-activity-agent/internal/evaluation"
	"learning-activity-agent/internal/extractor"
	"learning-activity-agent/internal/router"
)

// mockRouter classifies by exact prompt, defaulting to unknown.
type mockRouter struct {
	byPrompt map[string]router.Classification
	err      error
	calls    []string
}

func (m *mockRouter) Classify(ctx context.Context, message string, history []string) (router.Classification, error) {
	m.calls = append(m.calls, message)
	if m.err != nil {
		return router.Classification{}, m.err
	}
	if c, ok := m.byPrompt[message]; ok {
		c.Operation = c.Intent.Operation()
		return c, nil
	}
	return router.Classification{Intent: router.IntentUnknown, Operation: "unknown", Confidence: 0.5}, nil
}

func classified(intent router.Intent) router.Classification {
	return router.Classification{Intent: intent, Confidence: 0.9}
}

type mockExtractor struct {
	start  map[string]extractor.StartSlots
	create extractor.CreateSlots
	list   extractor.ListFilters
}

func (m *mockExtractor) ExtractStart(ctx context.Context, text string) extractor.StartSlots {
	if s, ok := m.start[text]; ok {
		return s
	}
	return extractor.StartSlots{ActivityName: text, AdditionalDetails: map[string]any{}}
}

func (m *mockExtractor) ExtractCreate(ctx context.Context, text string) extractor.CreateSlots {
	return m.create
}

func (m *mockExtractor) ExtractListFilters(ctx context.Context, text string) extractor.ListFilters {
	return m.list
}

type crudCall struct {
	op      string
	token   string
	id      string
	payload map[string]any
}

type mockCRUD struct {
	calls []crudCall
	err   error
	out   any
}

func (m *mockCRUD) Create(ctx context.Context, token string, payload activity.Payload) (any, error) {
	m.calls = append(m.calls, crudCall{op: "create", token: token, payload: payload})
	return m.out, m.err
}

func (m *mockCRUD) List(ctx context.Context, token string, query activity.ListQuery) (any, error) {
	m.calls = append(m.calls, crudCall{op: "list", token: token, payload: query})
	return m.out, m.err
}

func (m *mockCRUD) Edit(ctx context.Context, token, id string, payload activity.Payload) (any, error) {
	m.calls = append(m.calls, crudCall{op: "edit", token: token, id: id, payload: payload})
	return m.out, m.err
}

func (m *mockCRUD) Delete(ctx context.Context, token, id string) (any, error) {
	m.calls = append(m.calls, crudCall{op: "delete", token: token, id: id})
	return m.out, m.err
}

type mockCatalog struct {
	entries []activity.CatalogEntry
	err     error
}

func (m *mockCatalog) ListCatalog(ctx context.Context, filter activity.CatalogFilter) ([]activity.CatalogEntry, error) {
	return m.entries, m.err
}

type mockCatalogWriter struct {
	saved       []activity.CatalogEntry
	deactivated []string
}

func (m *mockCatalogWriter) SaveEntry(ctx context.Context, e activity.CatalogEntry) (activity.CatalogEntry, error) {
	m.saved = append(m.saved, e)
	return e, nil
}

func (m *mockCatalogWriter) Deactivate(ctx context.Context, id string) error {
	m.deactivated = append(m.deactivated, id)
	return nil
}

// mockCategories is an in-memory CategoryStore with exact-match lookups.
type mockCategories struct {
	categories    []activity.Category
	subcategories []activity.Subcategory
	lookups       []string
}

func (m *mockCategories) ListCategories(ctx context.Context) ([]activity.Category, error) {
	return m.categories, nil
}

func (m *mockCategories) FindCategory(ctx context.Context, name string) (activity.Category, error) {
	m.lookups = append(m.lookups, name)
	for _, c := range m.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return activity.Category{}, activity.ErrCategoryNotFound
}

func (m *mockCategories) CreateCategory(ctx context.Context, name string) (activity.Category, error) {
	c := activity.Category{ID: "cat-" + strings.ToLower(name), Name: name}
	m.categories = append(m.categories, c)
	return c, nil
}

func (m *mockCategories) ListSubcategories(ctx context.Context, categoryID string) ([]activity.Subcategory, error) {
	var out []activity.Subcategory
	for _, sc := range m.subcategories {
		if sc.CategoryID == categoryID {
			out = append(out, sc)
		}
	}
	return out, nil
}

func (m *mockCategories) FindSubcategory(ctx context.Context, categoryID, name string) (activity.Subcategory, error) {
	for _, sc := range m.subcategories {
		if sc.CategoryID == categoryID && sc.Name == name {
			return sc, nil
		}
	}
	return activity.Subcategory{}, activity.ErrSubcategoryNotFound
}

func (m *mockCategories) CreateSubcategory(ctx context.Context, categoryID, name string) (activity.Subcategory, error) {
	sc := activity.Subcategory{ID: "sub-" + strings.ToLower(name), CategoryID: categoryID, Name: name}
	m.subcategories = append(m.subcategories, sc)
	return sc, nil
}

type mockEvaluator struct {
	input evaluation.Input
	out   evaluation.Output
	err   error
}

func (m *mockEvaluator) Evaluate(ctx context.Context, in evaluation.Input) (evaluation.Output, error) {
	m.input = in
	if m.err != nil {
		return evaluation.Output{}, m.err
	}
	if len(in.History) == 0 {
		return evaluation.Output{}, evaluation.ErrNoHistory
	}
	return m.out, nil
}

// spyStore counts calls into a real in-memory store.
type spyStore struct {
	conversation.Store
	mu    sync.Mutex
	calls int
}

func newSpyStore() *spyStore {
	return &spyStore{Store: memory.New()}
}

func (s *spyStore) hit() {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
}

func (s *spyStore) GetOrCreateSession(ctx context.Context, userID string) (conversation.Session, error) {
	s.hit()
	return s.Store.GetOrCreateSession(ctx, userID)
}

func (s *spyStore) AddMessage(ctx context.Context, in conversation.AddMessageInput) (conversation.Message, error) {
	s.hit()
	return s.Store.AddMessage(ctx, in)
}

func (s *spyStore) GetHistory(ctx context.Context, sessionID string) ([]conversation.Message, error) {
	s.hit()
	return s.Store.GetHistory(ctx, sessionID)
}

var errBoom = errors.New("boom")
