package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookgoblin/internal/entities"
)

type TagsController struct {
	catalog CatalogService
}

func NewTagsController(catalog CatalogService) *TagsController {
	return &TagsController{catalog: catalog}
}

type tagRequest struct {
	Name string `json:"name"`
}

// List returns all tags, or those whose name contains q.
// GET /tags?q=
func (tc *TagsController) List(c *gin.Context) {
	tags, err := tc.catalog.ListTags(c.Query("q"))
	if err != nil {
		respondServiceError(c, err, "list tags")
		return
	}
	c.JSON(http.StatusOK, tags)
}

// GET /tags/:id
func (tc *TagsController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	tag, err := tc.catalog.GetTag(id)
	if err != nil {
		respondServiceError(c, err, "get tag")
		return
	}
	c.JSON(http.StatusOK, tag)
}

// ListForBook returns the tags assigned to a book
// GET /tags/book/:bookId
func (tc *TagsController) ListForBook(c *gin.Context) {
	bookID, ok := parseIDParam(c, "bookId")
	if !ok {
		return
	}

	tags, err := tc.catalog.ListBookTags(bookID)
	if err != nil {
		respondServiceError(c, err, "list book tags")
		return
	}
	c.JSON(http.StatusOK, tags)
}

// POST /tags
func (tc *TagsController) Create(c *gin.Context) {
	var req tagRequest
	if !bindJSON(c, &req) {
		return
	}

	tag, err := tc.catalog.CreateTag(&entities.Tag{Name: req.Name})
	if err != nil {
		respondServiceError(c, err, "create tag")
		return
	}
	respondCreated(c, tag)
}

// PUT /tags/:id
func (tc *TagsController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req tagRequest
	if !bindJSON(c, &req) {
		return
	}

	tag, err := tc.catalog.UpdateTag(id, &entities.Tag{Name: req.Name})
	if err != nil {
		respondServiceError(c, err, "update tag")
		return
	}
	c.JSON(http.StatusOK, tag)
}

// DELETE /tags/:id
func (tc *TagsController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := tc.catalog.DeleteTag(id); err != nil {
		respondServiceError(c, err, "delete tag")
		return
	}
	respondSuccess(c, "tag deleted")
}

// Assign attaches a tag to a book
// POST /tags/:id/book/:bookId
func (tc *TagsController) Assign(c *gin.Context) {
	tagID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	bookID, ok := parseIDParam(c, "bookId")
	if !ok {
		return
	}

	if err := tc.catalog.AssignTag(tagID, bookID); err != nil {
		respondServiceError(c, err, "assign tag")
		return
	}
	respondSuccess(c, "tag added")
}

// Unassign detaches a tag from a book
// DELETE /tags/:id/book/:bookId
func (tc *TagsController) Unassign(c *gin.Context) {
	tagID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	bookID, ok := parseIDParam(c, "bookId")
	if !ok {
		return
	}

	if err := tc.catalog.UnassignTag(tagID, bookID); err != nil {
		respondServiceError(c, err, "unassign tag")
		return
	}
	respondSuccess(c, "tag removed")
}
