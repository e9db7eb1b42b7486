package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookgoblin/internal/catalog"
	"github.com/mrlokans/bookgoblin/internal/database"
	"github.com/mrlokans/bookgoblin/internal/entities"
	"github.com/mrlokans/bookgoblin/internal/validation"
)

type fakeCatalog struct {
	drafts []catalog.BookDraft
	err    error
	query  string
}

func (f *fakeCatalog) Search(_ context.Context, query string) ([]catalog.BookDraft, error) {
	f.query = query
	return f.drafts, f.err
}

func titlesOf(books []entities.Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.Title
	}
	return out
}

func TestBooks_CreateAndGet(t *testing.T) {
	env, cleanup := setupTestEnv(t)
	defer cleanup()

	created := env.book(t, "Kindred")

	got, err := env.books.GetBook(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = env.books.GetBook(created.ID + 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBooks_CreateInvalid(t *testing.T) {
	env, cleanup := setupTestEnv(t)
	defer cleanup()

	_, err := env.books.CreateBook(&entities.Book{Title: "No author"})

	var verr *validation.Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "is required", verr.Fields["author"])

	all, err := env.books.ListBooks()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestBooks_SearchDispatch(t *testing.T) {
	env, cleanup := setupTestEnv(t)
	defer cleanup()

	for _, b := range []entities.Book{
		{Title: "Emma", Author: "Jane Austen"},
		{Title: "Persuasion", Author: "Jane Austen"},
		{Title: "Jane Eyre", Author: "Charlotte Bronte"},
	} {
		_, err := env.books.CreateBook(&b)
		require.NoError(t, err)
	}

	tests := []struct {
		name          string
		title, author string
		want          []string
	}{
		{"no filters lists all", "", "", []string{"Emma", "Jane Eyre", "Persuasion"}},
		{"title only", "jane", "", []string{"Jane Eyre"}},
		{"author only", "", "jane", []string{"Emma", "Persuasion"}},
		{"both", "e", "austen", []string{"Emma", "Persuasion"}},
		{"whitespace is ignored", "  ", "  ", []string{"Emma", "Jane Eyre", "Persuasion"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := env.books.SearchBooks(tt.title, tt.author)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titlesOf(found))
		})
	}
}

func TestBooks_UpdateAndDelete(t *testing.T) {
	env, cleanup := setupTestEnv(t)
	defer cleanup()

	created := env.book(t, "Kindrd")

	updated, err := env.books.UpdateBook(created.ID, &entities.Book{Title: "Kindred", Author: "Octavia E. Butler"})
	require.NoError(t, err)
	assert.Equal(t, "Kindred", updated.Title)

	_, err = env.books.UpdateBook(999, &entities.Book{Title: "Ghost", Author: "Nobody"})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, env.books.DeleteBook(created.ID))
	assert.ErrorIs(t, env.books.DeleteBook(created.ID), ErrNotFound)
}

func TestBooks_DeleteReferencedBook(t *testing.T) {
	env, cleanup := setupTestEnv(t)
	defer cleanup()

	book := env.book(t, "Kindred")
	env.entry(t, "alice", book.ID)

	err := env.books.DeleteBook(book.ID)
	assert.ErrorIs(t, err, database.ErrIntegrityViolation)
}

func TestBooks_Tags(t *testing.T) {
	env, cleanup := setupTestEnv(t)
	defer cleanup()

	for _, name := range []string{"history", "fiction", "science-fiction"} {
		_, err := env.books.CreateTag(&entities.Tag{Name: name})
		require.NoError(t, err)
	}

	all, err := env.books.ListTags("")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	matching, err := env.books.ListTags("fic")
	require.NoError(t, err)
	assert.Len(t, matching, 2)

	_, err = env.books.CreateTag(&entities.Tag{})
	var verr *validation.Error
	assert.True(t, errors.As(err, &verr))

	renamed, err := env.books.UpdateTag(all[0].ID, &entities.Tag{Name: "sf"})
	require.NoError(t, err)
	assert.Equal(t, "sf", renamed.Name)

	_, err = env.books.UpdateTag(999, &entities.Tag{Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = env.books.GetTag(999)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, env.books.DeleteTag(all[0].ID))
	assert.ErrorIs(t, env.books.DeleteTag(all[0].ID), ErrNotFound)
}

func TestBooks_AssignTag(t *testing.T) {
	env, cleanup := setupTestEnv(t)
	defer cleanup()

	book := env.book(t, "Kindred")
	tag, err := env.books.CreateTag(&entities.Tag{Name: "classic"})
	require.NoError(t, err)

	require.NoError(t, env.books.AssignTag(tag.ID, book.ID))

	err = env.books.AssignTag(tag.ID, book.ID)
	assert.ErrorIs(t, err, ErrAlreadyAssigned)

	assigned, err := env.books.ListBookTags(book.ID)
	require.NoError(t, err)
	require.Len(t, assigned, 1)
	assert.Equal(t, "classic", assigned[0].Name)

	assert.ErrorIs(t, env.books.AssignTag(tag.ID+1, book.ID), ErrNotFound)
	assert.ErrorIs(t, env.books.AssignTag(tag.ID, book.ID+1), ErrNotFound)

	_, err = env.books.ListBookTags(book.ID + 1)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, env.books.UnassignTag(tag.ID, book.ID))
	assert.ErrorIs(t, env.books.UnassignTag(tag.ID, book.ID), ErrNotAssigned)
}

func TestBooks_External(t *testing.T) {
	env, cleanup := setupTestEnv(t)
	defer cleanup()

	isbn := "9780547928227"
	env.catalog.drafts = []catalog.BookDraft{{Title: "The Hobbit", Author: "J.R.R. Tolkien", ISBN: &isbn}}

	drafts, err := env.books.SearchExternal(context.Background(), "hobbit")
	require.NoError(t, err)
	assert.Equal(t, "hobbit", env.catalog.query)
	require.Len(t, drafts, 1)

	all, err := env.books.ListBooks()
	require.NoError(t, err)
	assert.Empty(t, all, "searching never persists")

	saved, err := env.books.ImportDraft(drafts[0])
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
	assert.Equal(t, "The Hobbit", saved.Title)
	assert.Equal(t, isbn, *saved.ISBN)

	env.catalog.err = catalog.ErrUnavailable
	_, err = env.books.SearchExternal(context.Background(), "hobbit")
	assert.ErrorIs(t, err, catalog.ErrUnavailable)
}
