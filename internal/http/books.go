package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookgoblin/internal/entities"
)

type BooksController struct {
	catalog CatalogService
}

func NewBooksController(catalog CatalogService) *BooksController {
	return &BooksController{
		catalog: catalog,
	}
}

// List returns every book in the catalog.
// GET /books
func (controller *BooksController) List(c *gin.Context) {
	books, err := controller.catalog.ListBooks()
	if err != nil {
		respondServiceError(c, err, "list books")
		return
	}
	c.JSON(http.StatusOK, gin.H{"books": books, "count": len(books)})
}

// Search matches books by title and/or author substring.
// GET /books/search?title=&author=
func (controller *BooksController) Search(c *gin.Context) {
	books, err := controller.catalog.SearchBooks(c.Query("title"), c.Query("author"))
	if err != nil {
		respondServiceError(c, err, "search books")
		return
	}
	c.JSON(http.StatusOK, gin.H{"books": books, "count": len(books)})
}

// GET /books/:id
func (controller *BooksController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := controller.catalog.GetBook(id)
	if err != nil {
		respondServiceError(c, err, "get book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// POST /books
func (controller *BooksController) Create(c *gin.Context) {
	var book entities.Book
	if !bindJSON(c, &book) {
		return
	}

	created, err := controller.catalog.CreateBook(&book)
	if err != nil {
		respondServiceError(c, err, "create book")
		return
	}
	respondCreated(c, created)
}

// PUT /books/:id
func (controller *BooksController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var book entities.Book
	if !bindJSON(c, &book) {
		return
	}

	updated, err := controller.catalog.UpdateBook(id, &book)
	if err != nil {
		respondServiceError(c, err, "update book")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes a book. Books still on someone's shelf are a 409.
// DELETE /books/:id
func (controller *BooksController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := controller.catalog.DeleteBook(id); err != nil {
		respondServiceError(c, err, "delete book")
		return
	}
	respondSuccess(c, "book deleted")
}
