package search

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/connecthub/omnisearch/internal/domain/entity"
	"github.com/connecthub/omnisearch/internal/domain/search/query"
	"github.com/connecthub/omnisearch/internal/domain/search/sortkey"
)

// --- Mocks ---

type stubRepo struct {
	records  []entity.Record
	err      error
	delay    time.Duration
	called   bool
	lastTerm string
}

func (r *stubRepo) Search(
	ctx context.Context, term string,
	_ map[string]string, _ bool, _ string,
) ([]entity.Record, error) {
	r.called = true
	r.lastTerm = term
	if r.delay > 0 {
		select {
		case <-time.After(r.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return r.records, r.err
}

type stubSuggester struct {
	suggestions []string
}

func (s *stubSuggester) Suggest(_, _ string) []string { return s.suggestions }

type loggedSearch struct {
	userID      string
	term        string
	searchType  string
	resultCount int
}

type stubHistory struct {
	logged []loggedSearch
}

func (h *stubHistory) Log(userID, term, searchType string, resultCount int) {
	h.logged = append(h.logged, loggedSearch{userID, term, searchType, resultCount})
}

func emptyRepos() map[entity.Type]Repository {
	repos := make(map[entity.Type]Repository)
	for _, t := range entity.All() {
		repos[t] = &stubRepo{}
	}
	return repos
}

func mustQuery(t *testing.T, term string, opts ...func(*queryParams)) *query.Query {
	t.Helper()
	p := queryParams{page: 1, limit: 20, sortBy: sortkey.Relevance}
	for _, opt := range opts {
		opt(&p)
	}
	q, err := query.New(term, p.filters, p.sortBy, p.page, p.limit, false, p.userID)
	if err != nil {
		t.Fatalf("query.New(%q): %v", term, err)
	}
	return &q
}

type queryParams struct {
	filters map[string]string
	sortBy  sortkey.Key
	page    int
	limit   int
	userID  string
}

func withPage(page, limit int) func(*queryParams) {
	return func(p *queryParams) { p.page = page; p.limit = limit }
}

func withUser(id string) func(*queryParams) {
	return func(p *queryParams) { p.userID = id }
}

// --- Tests ---

func TestGlobalSearch_MergesAcrossEntityTypes(t *testing.T) {
	repos := emptyRepos()
	repos[entity.TypeJob] = &stubRepo{records: []entity.Record{
		entity.Job{JobID: "j1", Title: "AI Engineer"},
		entity.Job{JobID: "j2", Title: "Applied AI Researcher"},
	}}
	repos[entity.TypeEvent] = &stubRepo{records: []entity.Record{
		entity.Event{EventID: "e1", Title: "AI Summit"},
	}}

	svc := New(repos, nil, nil)
	result, err := svc.GlobalSearch(context.Background(), mustQuery(t, "AI"))
	if err != nil {
		t.Fatalf("GlobalSearch: %v", err)
	}

	if result.TotalResults != 3 {
		t.Errorf("TotalResults = %d, want 3", result.TotalResults)
	}
	types := result.Facets[entity.DimEntityType]
	if !reflect.DeepEqual(types, map[string]int{"job": 2, "event": 1}) {
		t.Errorf("entityTypes facet = %v, want job:2 event:1", types)
	}
	if len(result.Results) != 3 {
		t.Errorf("page has %d results, want 3", len(result.Results))
	}
}

func TestGlobalSearch_QueriesEveryRepositoryConcurrently(t *testing.T) {
	repos := emptyRepos()
	svc := New(repos, nil, nil)

	if _, err := svc.GlobalSearch(context.Background(), mustQuery(t, "golang")); err != nil {
		t.Fatalf("GlobalSearch: %v", err)
	}

	for typ, repo := range repos {
		stub := repo.(*stubRepo)
		if !stub.called {
			t.Errorf("%s repository was not queried", typ)
		}
		if stub.lastTerm != "golang" {
			t.Errorf("%s repository got term %q, want %q", typ, stub.lastTerm, "golang")
		}
	}
}

func TestGlobalSearch_OutOfRangePageIsEmptyNotError(t *testing.T) {
	jobs := make([]entity.Record, 40)
	for i := range jobs {
		jobs[i] = entity.Job{JobID: string(rune('a' + i)), Title: "Go Developer"}
	}
	repos := emptyRepos()
	repos[entity.TypeJob] = &stubRepo{records: jobs}

	svc := New(repos, nil, nil)
	result, err := svc.GlobalSearch(context.Background(), mustQuery(t, "go", withPage(5, 20)))
	if err != nil {
		t.Fatalf("GlobalSearch: %v", err)
	}

	if len(result.Results) != 0 {
		t.Errorf("page 5 of 40 results has %d items, want 0", len(result.Results))
	}
	if result.TotalResults != 40 {
		t.Errorf("TotalResults = %d, want 40", result.TotalResults)
	}
	if result.TotalPages != 2 {
		t.Errorf("TotalPages = %d, want 2", result.TotalPages)
	}
}

func TestGlobalSearch_RepositoryFailureIsAbsorbed(t *testing.T) {
	repos := emptyRepos()
	repos[entity.TypeJob] = &stubRepo{err: errors.New("connection refused")}
	repos[entity.TypeUser] = &stubRepo{records: []entity.Record{
		entity.User{UserID: "u1", FullName: "Dana Go"},
	}}
	repos[entity.TypeProject] = &stubRepo{records: []entity.Record{
		entity.Project{ProjectID: "p1", Title: "Go Toolkit"},
	}}

	svc := New(repos, nil, nil)
	result, err := svc.GlobalSearch(context.Background(), mustQuery(t, "go"))
	if err != nil {
		t.Fatalf("a failing branch must not fail the search: %v", err)
	}

	if result.TotalResults != 2 {
		t.Errorf("TotalResults = %d, want 2 from the surviving branches", result.TotalResults)
	}
	if _, ok := result.Facets[entity.DimEntityType]["job"]; ok {
		t.Error("failed branch must contribute zero results")
	}
}

func TestGlobalSearch_AllBranchesFailing(t *testing.T) {
	repos := make(map[entity.Type]Repository)
	for _, typ := range entity.All() {
		repos[typ] = &stubRepo{err: errors.New("down")}
	}

	svc := New(repos, nil, nil)
	result, err := svc.GlobalSearch(context.Background(), mustQuery(t, "go"))
	if err != nil {
		t.Fatalf("GlobalSearch: %v", err)
	}
	if result.TotalResults != 0 || len(result.Results) != 0 {
		t.Errorf("want an empty page, got %d results", result.TotalResults)
	}
}

func TestGlobalSearch_CrossEntityTieKeepsEnumerationOrder(t *testing.T) {
	// An exact name and an exact title score identically (100); the stable
	// global sort must then keep users ahead of jobs.
	repos := emptyRepos()
	repos[entity.TypeJob] = &stubRepo{records: []entity.Record{
		entity.Job{JobID: "j1", Title: "Architect"},
	}}
	repos[entity.TypeUser] = &stubRepo{records: []entity.Record{
		entity.User{UserID: "u1", FullName: "Architect"},
	}}

	svc := New(repos, nil, nil)
	result, err := svc.GlobalSearch(context.Background(), mustQuery(t, "architect"))
	if err != nil {
		t.Fatalf("GlobalSearch: %v", err)
	}

	if len(result.Results) != 2 {
		t.Fatalf("len = %d, want 2", len(result.Results))
	}
	if result.Results[0].Score() != result.Results[1].Score() {
		t.Fatalf("fixture scores differ: %.0f vs %.0f",
			result.Results[0].Score(), result.Results[1].Score())
	}
	if result.Results[0].Type() != entity.TypeUser {
		t.Errorf("tie winner = %s, want user", result.Results[0].Type())
	}
}

func TestGlobalSearch_Deterministic(t *testing.T) {
	repos := emptyRepos()
	repos[entity.TypeJob] = &stubRepo{records: []entity.Record{
		entity.Job{JobID: "j1", Title: "Go Developer"},
		entity.Job{JobID: "j2", Title: "Senior Go Developer"},
		entity.Job{JobID: "j3", Title: "Platform Engineer", Description: "Go services"},
	}}

	svc := New(repos, nil, nil)
	q := mustQuery(t, "go")

	first, err := svc.GlobalSearch(context.Background(), q)
	if err != nil {
		t.Fatalf("GlobalSearch: %v", err)
	}
	second, err := svc.GlobalSearch(context.Background(), q)
	if err != nil {
		t.Fatalf("GlobalSearch: %v", err)
	}

	if len(first.Results) != len(second.Results) {
		t.Fatalf("result counts differ: %d vs %d", len(first.Results), len(second.Results))
	}
	for i := range first.Results {
		if first.Results[i].Record().ID() != second.Results[i].Record().ID() {
			t.Errorf("ordering differs at %d", i)
		}
		if first.Results[i].Score() != second.Results[i].Score() {
			t.Errorf("score differs at %d", i)
		}
	}
}

func TestGlobalSearch_AttachesSuggestions(t *testing.T) {
	svc := New(emptyRepos(), &stubSuggester{suggestions: []string{"go developer", "golang"}}, nil)

	result, err := svc.GlobalSearch(context.Background(), mustQuery(t, "go"))
	if err != nil {
		t.Fatalf("GlobalSearch: %v", err)
	}
	if !reflect.DeepEqual(result.Suggestions, []string{"go developer", "golang"}) {
		t.Errorf("Suggestions = %v", result.Suggestions)
	}
}

func TestGlobalSearch_LogsHistoryForKnownUser(t *testing.T) {
	repos := emptyRepos()
	repos[entity.TypeJob] = &stubRepo{records: []entity.Record{
		entity.Job{JobID: "j1", Title: "Go Developer"},
	}}
	hist := &stubHistory{}

	svc := New(repos, nil, hist)
	if _, err := svc.GlobalSearch(context.Background(), mustQuery(t, "go", withUser("u-7"))); err != nil {
		t.Fatalf("GlobalSearch: %v", err)
	}

	want := []loggedSearch{{userID: "u-7", term: "go", searchType: "global", resultCount: 1}}
	if !reflect.DeepEqual(hist.logged, want) {
		t.Errorf("logged = %v, want %v", hist.logged, want)
	}
}

func TestGlobalSearch_AnonymousSearchNotLogged(t *testing.T) {
	hist := &stubHistory{}
	svc := New(emptyRepos(), nil, hist)

	if _, err := svc.GlobalSearch(context.Background(), mustQuery(t, "go")); err != nil {
		t.Fatalf("GlobalSearch: %v", err)
	}
	if len(hist.logged) != 0 {
		t.Errorf("anonymous search logged %d entries, want 0", len(hist.logged))
	}
}

func TestGlobalSearch_EntityTimeoutCutsSlowBranch(t *testing.T) {
	repos := emptyRepos()
	repos[entity.TypeJob] = &stubRepo{
		delay:   200 * time.Millisecond,
		records: []entity.Record{entity.Job{JobID: "slow", Title: "Go Developer"}},
	}
	repos[entity.TypeUser] = &stubRepo{records: []entity.Record{
		entity.User{UserID: "u1", FullName: "Go Fast"},
	}}

	svc := New(repos, nil, nil).WithEntityTimeout(20 * time.Millisecond)
	result, err := svc.GlobalSearch(context.Background(), mustQuery(t, "go"))
	if err != nil {
		t.Fatalf("GlobalSearch: %v", err)
	}

	if result.TotalResults != 1 {
		t.Errorf("TotalResults = %d, want 1 (slow branch timed out)", result.TotalResults)
	}
	if result.Results[0].Type() != entity.TypeUser {
		t.Errorf("surviving result = %s, want user", result.Results[0].Type())
	}
}

func TestSearchScoped_PaginatesAndFacets(t *testing.T) {
	jobs := []entity.Record{
		entity.Job{JobID: "j1", Title: "Go Developer", SalaryRange: "80k-100k"},
		entity.Job{JobID: "j2", Title: "Senior Go Developer", SalaryRange: "100k-130k"},
		entity.Job{JobID: "j3", Title: "Go Platform Lead", SalaryRange: "100k-130k"},
	}
	repos := emptyRepos()
	repos[entity.TypeJob] = &stubRepo{records: jobs}

	svc := New(repos, nil, nil)
	result, err := svc.SearchScoped(context.Background(), entity.TypeJob, mustQuery(t, "go", withPage(1, 2)))
	if err != nil {
		t.Fatalf("SearchScoped: %v", err)
	}

	if result.EntityType != entity.TypeJob {
		t.Errorf("EntityType = %s", result.EntityType)
	}
	if result.Total != 3 {
		t.Errorf("Total = %d, want 3", result.Total)
	}
	if len(result.Results) != 2 {
		t.Errorf("page has %d results, want 2", len(result.Results))
	}
	// Facets cover the full set, not the page.
	if got := result.Facets[entity.DimSalaryRange]["100k-130k"]; got != 2 {
		t.Errorf("salaryRange 100k-130k = %d, want 2", got)
	}
}

func TestSearchScoped_RepositoryFailureYieldsEmptyResult(t *testing.T) {
	repos := emptyRepos()
	repos[entity.TypeJob] = &stubRepo{err: errors.New("down")}
	hist := &stubHistory{}

	svc := New(repos, nil, hist)
	result, err := svc.SearchScoped(context.Background(), entity.TypeJob, mustQuery(t, "go", withUser("u-1")))
	if err != nil {
		t.Fatalf("SearchScoped: %v", err)
	}
	if result.Total != 0 {
		t.Errorf("Total = %d, want 0", result.Total)
	}
	if len(hist.logged) != 1 || hist.logged[0].searchType != "job" {
		t.Errorf("logged = %v, want one job entry", hist.logged)
	}
}
