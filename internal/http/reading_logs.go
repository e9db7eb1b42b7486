package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookgoblin/internal/auth"
	"github.com/mrlokans/bookgoblin/internal/entities"
)

type ReadingLogsController struct {
	library LibraryService
}

func NewReadingLogsController(library LibraryService) *ReadingLogsController {
	return &ReadingLogsController{library: library}
}

// ListForUserBook returns the reading sessions of one library entry
// GET /reading-logs/user-book/:userBookId
func (rc *ReadingLogsController) ListForUserBook(c *gin.Context) {
	userBookID, ok := parseIDParam(c, "userBookId")
	if !ok {
		return
	}

	logs, err := rc.library.ListReadingLogs(auth.GetUsername(c), userBookID)
	if err != nil {
		respondServiceError(c, err, "list reading logs")
		return
	}
	c.JSON(http.StatusOK, logs)
}

// GET /reading-logs/:id
func (rc *ReadingLogsController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	entry, err := rc.library.GetReadingLog(auth.GetUsername(c), id)
	if err != nil {
		respondServiceError(c, err, "get reading log")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// POST /reading-logs
func (rc *ReadingLogsController) Create(c *gin.Context) {
	var rl entities.ReadingLog
	if !bindJSON(c, &rl) {
		return
	}

	entry, err := rc.library.AddReadingLog(auth.GetUsername(c), &rl)
	if err != nil {
		respondServiceError(c, err, "create reading log")
		return
	}
	respondCreated(c, entry)
}

// Update replaces a reading log. Omitting user_book_id keeps the log on
// its current entry.
// PUT /reading-logs/:id
func (rc *ReadingLogsController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var rl entities.ReadingLog
	if !bindJSON(c, &rl) {
		return
	}

	entry, err := rc.library.UpdateReadingLog(auth.GetUsername(c), id, &rl)
	if err != nil {
		respondServiceError(c, err, "update reading log")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DELETE /reading-logs/:id
func (rc *ReadingLogsController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := rc.library.DeleteReadingLog(auth.GetUsername(c), id); err != nil {
		respondServiceError(c, err, "delete reading log")
		return
	}
	respondSuccess(c, "reading log deleted")
}
