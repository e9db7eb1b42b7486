package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookgoblin/internal/catalog"
)

// OpenLibraryController proxies searches to the external catalog and
// imports picked results into the local one.
type OpenLibraryController struct {
	catalog CatalogService
}

func NewOpenLibraryController(catalog CatalogService) *OpenLibraryController {
	return &OpenLibraryController{catalog: catalog}
}

// GET /openlibrary/search?q=
func (oc *OpenLibraryController) Search(c *gin.Context) {
	drafts, err := oc.catalog.SearchExternal(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondServiceError(c, err, "openlibrary search")
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": drafts, "count": len(drafts)})
}

// POST /openlibrary/import
func (oc *OpenLibraryController) Import(c *gin.Context) {
	var draft catalog.BookDraft
	if !bindJSON(c, &draft) {
		return
	}

	book, err := oc.catalog.ImportDraft(draft)
	if err != nil {
		respondServiceError(c, err, "openlibrary import")
		return
	}
	respondCreated(c, book)
}
