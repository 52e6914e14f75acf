// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/taibuivan/locallibrary/internal/core/author"
	"github.com/taibuivan/locallibrary/internal/core/book"
	"github.com/taibuivan/locallibrary/internal/core/genre"
	"github.com/taibuivan/locallibrary/internal/platform/apperr"
	"github.com/taibuivan/locallibrary/internal/platform/dberr"
	"github.com/taibuivan/locallibrary/internal/platform/i18n"
	"github.com/taibuivan/locallibrary/internal/platform/lookup"
	"github.com/taibuivan/locallibrary/internal/platform/validate"
	"github.com/taibuivan/locallibrary/internal/platform/view"
)

// # Fixtures

type memoryRepository struct {
	mu     sync.Mutex
	books  map[int]*book.Book
	copies map[int][]book.Copy
	nextID int
	writes int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{books: make(map[int]*book.Book), copies: make(map[int][]book.Copy)}
}

func (repository *memoryRepository) ListBooks(context context.Context, limit, offset int) ([]*book.Book, int, error) {
	all, _ := repository.AllBooks(context)
	if offset >= len(all) {
		return nil, len(all), nil
	}
	return all[offset:min(offset+limit, len(all))], len(all), nil
}

func (repository *memoryRepository) AllBooks(context.Context) ([]*book.Book, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	all := make([]*book.Book, 0, len(repository.books))
	for id := 1; id <= repository.nextID; id++ {
		if stored, ok := repository.books[id]; ok {
			copied := *stored
			all = append(all, &copied)
		}
	}
	return all, nil
}

func (repository *memoryRepository) GetBook(_ context.Context, id int) (*book.Book, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	stored, ok := repository.books[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	copied := *stored
	return &copied, nil
}

func (repository *memoryRepository) BookExists(_ context.Context, id int) (bool, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	_, ok := repository.books[id]
	return ok, nil
}

func (repository *memoryRepository) CountBooks(context.Context) (int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	return len(repository.books), nil
}

func (repository *memoryRepository) CreateBook(_ context.Context, created *book.Book) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.writes++
	repository.nextID++
	created.ID = repository.nextID
	copied := *created
	repository.books[created.ID] = &copied
	return nil
}

func (repository *memoryRepository) UpdateBook(_ context.Context, updated *book.Book) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.books[updated.ID]; !ok {
		return dberr.ErrNotFound
	}
	repository.writes++
	copied := *updated
	repository.books[updated.ID] = &copied
	return nil
}

func (repository *memoryRepository) ListCopies(_ context.Context, bookID int) ([]book.Copy, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	return repository.copies[bookID], nil
}

func (repository *memoryRepository) DeleteBook(_ context.Context, id int) (bool, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if len(repository.copies[id]) > 0 {
		return false, nil
	}
	if _, ok := repository.books[id]; !ok {
		return false, nil
	}
	delete(repository.books, id)
	return true, nil
}

// directory stands in for the author and genre services.
type directory struct {
	authors []*author.Author
	genres  []*genre.Genre
}

func (dir *directory) AllAuthors(context.Context) ([]*author.Author, error) { return dir.authors, nil }

func (dir *directory) AuthorExists(_ context.Context, id int) (bool, error) {
	for _, stored := range dir.authors {
		if stored.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (dir *directory) AllGenres(context.Context) ([]*genre.Genre, error) { return dir.genres, nil }

func (dir *directory) AllExist(_ context.Context, ids []int) (bool, error) {
	for _, id := range ids {
		found := false
		for _, stored := range dir.genres {
			found = found || stored.ID == id
		}
		if !found {
			return false, nil
		}
	}
	return true, nil
}

func newDirectory() *directory {
	return &directory{
		authors: []*author.Author{{ID: 1, FirstName: "Jane", FamilyName: "Austen"}},
		genres:  []*genre.Genre{{ID: 1, Name: "Romance"}, {ID: 2, Name: "Satire"}},
	}
}

func newService(repository book.Repository) *book.Service {
	dir := newDirectory()
	return book.NewService(repository, dir, dir, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newRouter(t *testing.T, repository book.Repository) http.Handler {
	t.Helper()

	translator, err := i18n.New(language.English)
	require.NoError(t, err)
	renderer, err := view.New(translator, nil)
	require.NoError(t, err)

	return book.NewHandler(newService(repository), renderer).Routes()
}

func submit(method, target string, form url.Values) *http.Request {
	request := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return request
}

func emma() url.Values {
	return url.Values{
		book.FieldTitle:   {"Emma"},
		book.FieldAuthor:  {"1"},
		book.FieldSummary: {"A young woman meddles in matches."},
		book.FieldISBN:    {"9780141439587"},
		book.FieldGenre:   {"1", "2"},
	}
}

func rawOf(values url.Values) validate.Raw {
	return validate.FromValues(values)
}

func violationKeys(violations []apperr.FieldError) []string {
	keys := make([]string, 0, len(violations))
	for _, violation := range violations {
		keys = append(keys, violation.Key)
	}
	return keys
}

// # Form

/*
TestDecodeForm_SingleGenre coerces one selected genre to a list.
*/
func TestDecodeForm_SingleGenre(t *testing.T) {
	values := emma()
	values.Set(book.FieldGenre, "2")

	result := book.DecodeForm(rawOf(values))
	require.True(t, result.OK())
	assert.Equal(t, []int{2}, result.Candidate.GenreIDs)
	assert.Equal(t, 1, result.Candidate.AuthorID)
}

/*
TestDecodeForm_Violations reports each field with its own key.
*/
func TestDecodeForm_Violations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(url.Values)
		want   []string
	}{
		{"missing title", func(v url.Values) { v.Del(book.FieldTitle) }, []string{"form.title_valid"}},
		{"author not an id", func(v url.Values) { v.Set(book.FieldAuthor, "abc") }, []string{"form.author_valid"}},
		{"blank summary", func(v url.Values) { v.Set(book.FieldSummary, "   ") }, []string{"form.summary_valid"}},
		{"isbn too long", func(v url.Values) { v.Set(book.FieldISBN, strings.Repeat("9", 300)) }, []string{"form.isbn_length"}},
		{"no genre", func(v url.Values) { v.Del(book.FieldGenre) }, []string{"form.book_genre_valid"}},
		{"genre not an id", func(v url.Values) { v[book.FieldGenre] = []string{"1", "x"} }, []string{"form.book_genre_valid"}},
		{"everything missing", func(v url.Values) {
			for key := range v {
				v.Del(key)
			}
		}, []string{"form.title_valid", "form.author_valid", "form.summary_valid", "form.isbn_valid", "form.book_genre_valid"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := emma()
			tt.mutate(values)

			result := book.DecodeForm(rawOf(values))
			require.False(t, result.OK())
			assert.Equal(t, tt.want, violationKeys(result.Violations))
		})
	}
}

// # Service

/*
TestService_CreateBook_UnknownReferences never persists a book naming missing rows.
*/
func TestService_CreateBook_UnknownReferences(t *testing.T) {
	repository := newMemoryRepository()
	service := newService(repository)

	_, err := service.CreateBook(context.Background(), book.Input{
		Title: "Ghost", AuthorID: 99, Summary: "s", ISBN: "i", GenreIDs: []int{1, 42},
	})

	require.Error(t, err)
	assert.Equal(t, []string{"form.author_exists", "form.book_genre_exists"}, violationKeys(validate.FieldErrors(err)))
	assert.Equal(t, 0, repository.writes)
}

/*
TestService_CreateBook_DedupesGenres stores each genre link once.
*/
func TestService_CreateBook_DedupesGenres(t *testing.T) {
	service := newService(newMemoryRepository())

	created, err := service.CreateBook(context.Background(), book.Input{
		Title: "Emma", AuthorID: 1, Summary: "s", ISBN: "i", GenreIDs: []int{2, 1, 2},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, created.GenreIDs)
}

/*
TestService_GetBook_NotFound names the resource.
*/
func TestService_GetBook_NotFound(t *testing.T) {
	_, err := newService(newMemoryRepository()).GetBook(context.Background(), 9999)

	require.Error(t, err)
	assert.True(t, lookup.IsNotFound(err))
	assert.Equal(t, "Book not found", apperr.As(err).Message)
}

/*
TestService_DeleteBook is blocked by copies.
*/
func TestService_DeleteBook(t *testing.T) {
	repository := newMemoryRepository()
	service := newService(repository)

	created, err := service.CreateBook(context.Background(), book.Input{Title: "Emma", AuthorID: 1, Summary: "s", ISBN: "i", GenreIDs: []int{1}})
	require.NoError(t, err)
	repository.copies[created.ID] = []book.Copy{{ID: 5, Imprint: "Penguin, 2003", Status: "Available"}}

	outcome, err := service.DeleteBook(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, outcome.Blocked())
	assert.Equal(t, "/bookinstances/5", outcome.Dependents[0].URL)

	repository.copies[created.ID] = nil
	outcome, err = service.DeleteBook(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, outcome.Deleted)
}

// # HTTP

/*
TestHandler_StoreAndUpdate redirects to the list after create and to the book after update.
*/
func TestHandler_StoreAndUpdate(t *testing.T) {
	repository := newMemoryRepository()
	router := newRouter(t, repository)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, submit(http.MethodPost, "/store", emma()))
	require.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, book.ListURL, recorder.Header().Get("Location"))

	values := emma()
	values.Set(book.FieldTitle, "Emma (annotated)")

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, submit(http.MethodPut, "/update/1", values))
	require.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/books/1", recorder.Header().Get("Location"))
	assert.Equal(t, "Emma (annotated)", repository.books[1].Title)
}

/*
TestHandler_StoreInvalid redisplays the form with the choices and the submitted values.
*/
func TestHandler_StoreInvalid(t *testing.T) {
	repository := newMemoryRepository()
	router := newRouter(t, repository)

	values := emma()
	values.Del(book.FieldISBN)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, submit(http.MethodPost, "/store", values))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, 0, repository.writes)

	body := recorder.Body.String()
	assert.Contains(t, body, "ISBN must not be empty.")
	assert.Contains(t, body, `value="Emma"`)
	assert.Contains(t, body, `value="2" checked`)
	assert.Contains(t, body, `value="1" selected`)
}

/*
TestHandler_DetailNotFound flashes and redirects to the list.
*/
func TestHandler_DetailNotFound(t *testing.T) {
	router := newRouter(t, newMemoryRepository())

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/9999", nil))

	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, book.ListURL, recorder.Header().Get("Location"))
}
