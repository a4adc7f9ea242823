package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/baccarifarah/spendLog/internal/contracts"
	appErrors "github.com/baccarifarah/spendLog/internal/errors"
)

// UploadReceiptImage stores a receipt image and returns the URL to put in
// the receipt's image_url field.
func (h *Handler) UploadReceiptImage(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("file", "a file form field is required"))
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}
	defer src.Close()

	name, err := h.UploadStore.Save(userID, fileHeader.Filename, src)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.UploadResponse{
		FileName: name,
		Url:      "/api/uploads/" + name,
	})
}

// ServeReceiptImage streams back an uploaded file, confined to the
// requesting user's directory.
func (h *Handler) ServeReceiptImage(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	path, err := h.UploadStore.Resolve(userID, c.Param("name"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.File(path)
}

func (h *Handler) DeleteReceiptImage(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.UploadStore.Remove(userID, c.Param("name")); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "File deleted"})
}
