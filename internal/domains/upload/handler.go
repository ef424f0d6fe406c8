package upload

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	itemmodel "lostfound-backend/internal/domains/item/model"
	"lostfound-backend/internal/shared/response"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// UploadResponse is the success body of POST /api/upload.
type UploadResponse struct {
	Message  string `json:"message"`
	ImageURL string `json:"imageUrl"`
}

// Upload stores an image blob for a known user.
// POST /api/upload  (multipart: image file + userid field)
func (h *Handler) Upload(c *gin.Context) {
	userID := c.PostForm("userid")
	if userID == "" {
		response.BadRequest(c, "userid is required")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "No file to upload")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	image := itemmodel.ImagePayload{
		Data: data,
		Ext:  filepath.Ext(fileHeader.Filename),
	}

	imageURL, err := h.service.Upload(c.Request.Context(), userID, image)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyFile):
			response.BadRequest(c, "No file to upload")
		case errors.Is(err, ErrUnknownUser):
			response.NotFound(c, "Unknown user id")
		default:
			response.InternalServerError(c, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, UploadResponse{
		Message:  "Image uploaded successfully",
		ImageURL: imageURL,
	})
}
