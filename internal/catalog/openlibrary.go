// Package catalog searches the OpenLibrary catalog for books that are not in
// the local database yet. Results are unsaved drafts; nothing here writes to
// the store.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/mrlokans/bookgoblin/internal/config"
	"github.com/mrlokans/bookgoblin/internal/entities"
)

const (
	// UnknownAuthor stands in when a catalog record lists no authors.
	UnknownAuthor = "Unknown Author"

	searchFields = "title,author_name,isbn,first_publish_year,cover_i,edition_key"
	searchLimit  = 20
	userAgent    = "BookGoblin/1.0 (https://github.com/mrlokans/bookgoblin)"
)

var (
	ErrEmptyQuery  = errors.New("search query is required")
	ErrUnavailable = errors.New("external catalog unavailable")
)

// BookDraft is a catalog search hit that has not been saved.
type BookDraft struct {
	Title           string  `json:"title"`
	Author          string  `json:"author"`
	ISBN            *string `json:"isbn,omitempty"`
	CoverImageURL   *string `json:"cover_image_url,omitempty"`
	PublicationYear *int    `json:"publication_year,omitempty"`
	EditionKey      string  `json:"edition_key,omitempty"`
}

// ToBook converts the draft into an unsaved book.
func (d BookDraft) ToBook() entities.Book {
	return entities.Book{
		Title:           d.Title,
		Author:          d.Author,
		ISBN:            d.ISBN,
		CoverImageURL:   d.CoverImageURL,
		PublicationYear: d.PublicationYear,
	}
}

type searchResponse struct {
	Docs []searchDoc `json:"docs"`
}

type searchDoc struct {
	Title            string   `json:"title"`
	AuthorName       []string `json:"author_name"`
	ISBN             []string `json:"isbn"`
	FirstPublishYear *int     `json:"first_publish_year"`
	CoverI           *int     `json:"cover_i"`
	EditionKey       []string `json:"edition_key"`
}

// Client queries the OpenLibrary search API.
type Client struct {
	httpClient    *http.Client
	baseURL       string
	coversBaseURL string
	limiter       *rate.Limiter
}

// NewClient creates a client from catalog settings. A non-positive rate
// disables throttling.
func NewClient(cfg config.Catalog) *Client {
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		httpClient:    &http.Client{Timeout: timeout},
		baseURL:       strings.TrimRight(orDefault(cfg.BaseURL, config.DefaultCatalogBaseURL), "/"),
		coversBaseURL: strings.TrimRight(orDefault(cfg.CoversBaseURL, config.DefaultCoversBaseURL), "/"),
		limiter:       rate.NewLimiter(limit, 1),
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// Search returns up to 20 drafts matching a free-text query.
func (c *Client) Search(ctx context.Context, query string) ([]BookDraft, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("fields", searchFields)
	params.Set("limit", fmt.Sprint(searchLimit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search.json?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: search books: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status: %d", ErrUnavailable, resp.StatusCode)
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: decode search response: %w", ErrUnavailable, err)
	}

	drafts := make([]BookDraft, 0, len(result.Docs))
	for i := range result.Docs {
		drafts = append(drafts, c.toDraft(&result.Docs[i]))
	}
	return drafts, nil
}

func (c *Client) toDraft(doc *searchDoc) BookDraft {
	draft := BookDraft{
		Title:           doc.Title,
		Author:          UnknownAuthor,
		PublicationYear: doc.FirstPublishYear,
	}

	if len(doc.AuthorName) > 0 {
		draft.Author = doc.AuthorName[0]
	}
	if len(doc.ISBN) > 0 {
		isbn := doc.ISBN[0]
		draft.ISBN = &isbn
	}
	if doc.CoverI != nil {
		cover := fmt.Sprintf("%s/b/id/%d-M.jpg", c.coversBaseURL, *doc.CoverI)
		draft.CoverImageURL = &cover
	}
	if len(doc.EditionKey) > 0 {
		draft.EditionKey = doc.EditionKey[0]
	}

	return draft
}
