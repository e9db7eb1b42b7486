package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookgoblin/internal/auth"
	"github.com/mrlokans/bookgoblin/internal/entities"
)

// UserBooksController serves the caller's library. Routes sit behind
// RequireAuth, so the username is always present.
type UserBooksController struct {
	library LibraryService
}

func NewUserBooksController(library LibraryService) *UserBooksController {
	return &UserBooksController{library: library}
}

// GET /user-books
func (uc *UserBooksController) List(c *gin.Context) {
	entries, err := uc.library.ListUserBooks(auth.GetUsername(c))
	if err != nil {
		respondServiceError(c, err, "list user books")
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GET /user-books/:id
func (uc *UserBooksController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	entry, err := uc.library.GetUserBook(auth.GetUsername(c), id)
	if err != nil {
		respondServiceError(c, err, "get user book")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// Create adds a book to the caller's library. Any user_id in the body is
// ignored.
// POST /user-books
func (uc *UserBooksController) Create(c *gin.Context) {
	var ub entities.UserBook
	if !bindJSON(c, &ub) {
		return
	}

	entry, err := uc.library.AddUserBook(auth.GetUsername(c), &ub)
	if err != nil {
		respondServiceError(c, err, "create user book")
		return
	}
	respondCreated(c, entry)
}

// PUT /user-books/:id
func (uc *UserBooksController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var ub entities.UserBook
	if !bindJSON(c, &ub) {
		return
	}

	entry, err := uc.library.UpdateUserBook(auth.GetUsername(c), id, &ub)
	if err != nil {
		respondServiceError(c, err, "update user book")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DELETE /user-books/:id
func (uc *UserBooksController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := uc.library.DeleteUserBook(auth.GetUsername(c), id); err != nil {
		respondServiceError(c, err, "delete user book")
		return
	}
	respondSuccess(c, "user book deleted")
}
