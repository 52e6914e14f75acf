// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/taibuivan/locallibrary/internal/core/author"
	"github.com/taibuivan/locallibrary/internal/platform/apperr"
	"github.com/taibuivan/locallibrary/internal/platform/dberr"
	"github.com/taibuivan/locallibrary/internal/platform/i18n"
	"github.com/taibuivan/locallibrary/internal/platform/lookup"
	"github.com/taibuivan/locallibrary/internal/platform/validate"
	"github.com/taibuivan/locallibrary/internal/platform/view"
	"github.com/taibuivan/locallibrary/pkg/pagination"
)

// # Fixtures

type memoryRepository struct {
	mu      sync.Mutex
	authors map[int]*author.Author
	books   map[int][]author.BookSummary
	nextID  int
	calls   int
	writes  int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		authors: make(map[int]*author.Author),
		books:   make(map[int][]author.BookSummary),
	}
}

func (repository *memoryRepository) touch() {
	repository.mu.Lock()
	repository.calls++
	repository.mu.Unlock()
}

func (repository *memoryRepository) ListAuthors(context context.Context, limit, offset int) ([]*author.Author, int, error) {
	all, _ := repository.AllAuthors(context)
	if offset >= len(all) {
		return nil, len(all), nil
	}
	end := min(offset+limit, len(all))
	return all[offset:end], len(all), nil
}

func (repository *memoryRepository) AllAuthors(context.Context) ([]*author.Author, error) {
	repository.touch()
	repository.mu.Lock()
	defer repository.mu.Unlock()

	all := make([]*author.Author, 0, len(repository.authors))
	for _, stored := range repository.authors {
		copied := *stored
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].FamilyName < all[j].FamilyName })
	return all, nil
}

func (repository *memoryRepository) GetAuthor(_ context.Context, id int) (*author.Author, error) {
	repository.touch()
	repository.mu.Lock()
	defer repository.mu.Unlock()

	stored, ok := repository.authors[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	copied := *stored
	return &copied, nil
}

func (repository *memoryRepository) AuthorExists(_ context.Context, id int) (bool, error) {
	repository.touch()
	repository.mu.Lock()
	defer repository.mu.Unlock()
	_, ok := repository.authors[id]
	return ok, nil
}

func (repository *memoryRepository) CountAuthors(context.Context) (int, error) {
	repository.touch()
	repository.mu.Lock()
	defer repository.mu.Unlock()
	return len(repository.authors), nil
}

func (repository *memoryRepository) CreateAuthor(_ context.Context, created *author.Author) error {
	repository.touch()
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.writes++
	repository.nextID++
	created.ID = repository.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt

	copied := *created
	repository.authors[created.ID] = &copied
	return nil
}

func (repository *memoryRepository) UpdateAuthor(_ context.Context, updated *author.Author) error {
	repository.touch()
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.authors[updated.ID]; !ok {
		return dberr.ErrNotFound
	}
	repository.writes++
	copied := *updated
	repository.authors[updated.ID] = &copied
	return nil
}

func (repository *memoryRepository) ListBooks(_ context.Context, authorID int) ([]author.BookSummary, error) {
	repository.touch()
	repository.mu.Lock()
	defer repository.mu.Unlock()
	return repository.books[authorID], nil
}

func (repository *memoryRepository) DeleteAuthor(_ context.Context, id int) (bool, error) {
	repository.touch()
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if len(repository.books[id]) > 0 {
		return false, nil
	}
	if _, ok := repository.authors[id]; !ok {
		return false, nil
	}
	repository.writes++
	delete(repository.authors, id)
	return true, nil
}

func newService(repository author.Repository) *author.Service {
	return author.NewService(repository, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newRouter(t *testing.T, repository author.Repository) http.Handler {
	t.Helper()

	translator, err := i18n.New(language.English)
	require.NoError(t, err)
	renderer, err := view.New(translator, nil)
	require.NoError(t, err)

	return author.NewHandler(newService(repository), renderer).Routes()
}

func submit(method, target string, form url.Values) *http.Request {
	request := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return request
}

func janeAusten() validate.Raw {
	return validate.Raw{
		author.FieldFirstName:   "Jane",
		author.FieldFamilyName:  "Austen",
		author.FieldDateOfBirth: "1775-12-16",
		author.FieldDateOfDeath: "1817-07-18",
	}
}

// # Form

/*
TestDecodeForm_JaneAusten builds a typed candidate from a valid submission.
*/
func TestDecodeForm_JaneAusten(t *testing.T) {
	result := author.DecodeForm(janeAusten())

	require.True(t, result.OK())
	assert.Equal(t, "Jane", result.Candidate.FirstName)
	assert.Equal(t, "Austen", result.Candidate.FamilyName)
	require.NotNil(t, result.Candidate.DateOfBirth)
	require.NotNil(t, result.Candidate.DateOfDeath)
	assert.Equal(t, 1775, result.Candidate.DateOfBirth.Year())
	assert.Equal(t, 1817, result.Candidate.DateOfDeath.Year())
}

/*
TestDecodeForm_Violations reports every rule with its field-specific key.
*/
func TestDecodeForm_Violations(t *testing.T) {
	tests := []struct {
		name  string
		patch validate.Raw
		want  []string
	}{
		{"missing first name", validate.Raw{author.FieldFirstName: ""}, []string{"form.first_name_valid", "form.first_name_char"}},
		{"punctuation in family name", validate.Raw{author.FieldFamilyName: "O'Brien"}, []string{"form.family_name_char"}},
		{"first name too long", validate.Raw{author.FieldFirstName: strings.Repeat("a", 256)}, []string{"form.first_name_valid"}},
		{"invalid birth date", validate.Raw{author.FieldDateOfBirth: "1775-13-45"}, []string{"form.date_of_birth_valid", "form.date_of_death_after"}},
		{"death before birth", validate.Raw{author.FieldDateOfDeath: "1700-01-01"}, []string{"form.date_of_death_after"}},
		{"same day death", validate.Raw{author.FieldDateOfDeath: "1775-12-16"}, []string{"form.date_of_death_after"}},
		{"same day later hour", validate.Raw{author.FieldDateOfBirth: "1800-01-01T10:00", author.FieldDateOfDeath: "1800-01-01T12:00"}, []string{"form.date_of_death_after"}},
		{"offset day before", validate.Raw{author.FieldDateOfBirth: "1800-01-02T00:00:00+05:00", author.FieldDateOfDeath: "1800-01-01T23:00:00Z"}, []string{"form.date_of_death_after"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := janeAusten()
			for key, value := range tt.patch {
				raw[key] = value
			}

			result := author.DecodeForm(raw)
			require.False(t, result.OK())

			keys := make([]string, 0, len(result.Violations))
			for _, violation := range result.Violations {
				keys = append(keys, violation.Key)
			}
			assert.Equal(t, tt.want, keys)
		})
	}
}

/*
TestDecodeForm_OptionalDates accepts an author without any date.
*/
func TestDecodeForm_OptionalDates(t *testing.T) {
	result := author.DecodeForm(validate.Raw{
		author.FieldFirstName:  "Homer",
		author.FieldFamilyName: "Unknown",
	})

	require.True(t, result.OK())
	assert.Nil(t, result.Candidate.DateOfBirth)
	assert.Nil(t, result.Candidate.DateOfDeath)
}

// # Model

/*
TestAuthor_Display covers the derived display fields.
*/
func TestAuthor_Display(t *testing.T) {
	born := time.Date(1775, 12, 16, 0, 0, 0, 0, time.UTC)
	died := time.Date(1817, 7, 18, 0, 0, 0, 0, time.UTC)

	jane := &author.Author{ID: 4, FirstName: "Jane", FamilyName: "Austen", DateOfBirth: &born, DateOfDeath: &died}
	assert.Equal(t, "Jane Austen", jane.Name())
	assert.Equal(t, "1775 – 1817", jane.Lifespan())
	assert.Equal(t, "/authors/4", jane.URL())

	assert.Equal(t, "", (&author.Author{}).Lifespan())
	assert.Equal(t, "1775 – ", (&author.Author{DateOfBirth: &born}).Lifespan())
}

// # Service

/*
TestService_RoundTrip stores a validated author and reads it back unchanged.
*/
func TestService_RoundTrip(t *testing.T) {
	repository := newMemoryRepository()
	service := newService(repository)

	result := author.DecodeForm(janeAusten())
	require.True(t, result.OK())

	created, err := service.CreateAuthor(context.Background(), result.Candidate)
	require.NoError(t, err)

	loaded, err := service.GetAuthor(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Austen", loaded.Name())
	assert.Equal(t, author.FormValues(loaded), validate.Values{
		author.FieldFirstName:   {"Jane"},
		author.FieldFamilyName:  {"Austen"},
		author.FieldDateOfBirth: {"1775-12-16"},
		author.FieldDateOfDeath: {"1817-07-18"},
	})

	authors, meta, err := service.ListAuthors(context.Background(), pagination.Params{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, authors, 1)
	assert.Equal(t, 1, meta.Total)
}

/*
TestService_GetAuthor_NotFound names the resource in the error.
*/
func TestService_GetAuthor_NotFound(t *testing.T) {
	_, err := newService(newMemoryRepository()).GetAuthor(context.Background(), 9999)

	require.Error(t, err)
	assert.True(t, lookup.IsNotFound(err))
	assert.Equal(t, "Author not found", apperr.As(err).Message)
}

/*
TestService_DeleteAuthor covers the blocked and the successful delete.
*/
func TestService_DeleteAuthor(t *testing.T) {
	repository := newMemoryRepository()
	service := newService(repository)

	created, err := service.CreateAuthor(context.Background(), author.Input{FirstName: "Jane", FamilyName: "Austen"})
	require.NoError(t, err)

	repository.books[created.ID] = []author.BookSummary{{ID: 3, Title: "Emma"}}

	outcome, err := service.DeleteAuthor(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, outcome.Blocked())
	require.Len(t, outcome.Dependents, 1)
	assert.Equal(t, "Emma", outcome.Dependents[0].Label)
	assert.Equal(t, "/books/3", outcome.Dependents[0].URL)

	_, err = service.GetAuthor(context.Background(), created.ID)
	assert.NoError(t, err, "blocked author must remain")

	delete(repository.books, created.ID)

	outcome, err = service.DeleteAuthor(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, outcome.Deleted)

	_, err = service.DeleteAuthor(context.Background(), created.ID)
	assert.True(t, lookup.IsNotFound(err))
}

// # HTTP

/*
TestHandler_Store redirects to the list after a valid submission.
*/
func TestHandler_Store(t *testing.T) {
	repository := newMemoryRepository()
	router := newRouter(t, repository)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, submit(http.MethodPost, "/store", url.Values{
		author.FieldFirstName:   {"Jane"},
		author.FieldFamilyName:  {"Austen"},
		author.FieldDateOfBirth: {"1775-12-16"},
	}))

	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, author.ListURL, recorder.Header().Get("Location"))
	assert.Equal(t, 1, repository.writes)
}

/*
TestHandler_StoreInvalid re-renders the form and never reaches storage.
*/
func TestHandler_StoreInvalid(t *testing.T) {
	repository := newMemoryRepository()
	router := newRouter(t, repository)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, submit(http.MethodPost, "/store", url.Values{
		author.FieldFirstName: {"<b>Jane</b>"},
	}))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, 0, repository.calls)

	body := recorder.Body.String()
	assert.Contains(t, body, "First name has non-alphanumeric characters.")
	assert.NotContains(t, body, "<b>Jane</b>")
}

// rejectingRepository stands in for a database whose CHECK refuses the row.
type rejectingRepository struct {
	*memoryRepository
}

func (repository rejectingRepository) CreateAuthor(context.Context, *author.Author) error {
	return dberr.Wrap(&pgconn.PgError{Code: "23514", ConstraintName: "author_lifespan_chk"}, "create_author")
}

/*
TestHandler_StoreRejectedByStorage redisplays the form instead of a 500.
*/
func TestHandler_StoreRejectedByStorage(t *testing.T) {
	router := newRouter(t, rejectingRepository{newMemoryRepository()})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, submit(http.MethodPost, "/store", url.Values{
		author.FieldFirstName:   {"Jane"},
		author.FieldFamilyName:  {"Austen"},
		author.FieldDateOfBirth: {"1775-12-16"},
	}))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, "The values break a rule of the catalog.")
	assert.Contains(t, body, `value="Austen"`)
}

/*
TestHandler_UpdateInvalidID rejects a malformed id before any lookup.
*/
func TestHandler_UpdateInvalidID(t *testing.T) {
	repository := newMemoryRepository()
	router := newRouter(t, repository)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, submit(http.MethodPut, "/update/abc", url.Values{
		author.FieldFirstName:  {"Jane"},
		author.FieldFamilyName: {"Austen"},
	}))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, 0, repository.calls)
}

/*
TestHandler_DetailNotFound sends the visitor back to the list.
*/
func TestHandler_DetailNotFound(t *testing.T) {
	router := newRouter(t, newMemoryRepository())

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/9999", nil))

	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, author.ListURL, recorder.Header().Get("Location"))
}

/*
TestHandler_DetailJSONNotFound answers JSON clients with the error envelope.
*/
func TestHandler_DetailJSONNotFound(t *testing.T) {
	router := newRouter(t, newMemoryRepository())

	request := httptest.NewRequest(http.MethodGet, "/9999", nil)
	request.Header.Set("Accept", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), apperr.CodeNotFound)
}

/*
TestHandler_RemoveBlocked renders the dependents instead of deleting.
*/
func TestHandler_RemoveBlocked(t *testing.T) {
	repository := newMemoryRepository()
	router := newRouter(t, repository)

	created := &author.Author{FirstName: "Jane", FamilyName: "Austen"}
	require.NoError(t, repository.CreateAuthor(context.Background(), created))
	repository.books[created.ID] = []author.BookSummary{{ID: 3, Title: "Emma"}}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/remove/1", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Emma")
	assert.Contains(t, recorder.Body.String(), `href="/books/3"`)
	assert.Len(t, repository.authors, 1)
}
