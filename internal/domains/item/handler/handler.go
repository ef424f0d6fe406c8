package handler

import (
	"io"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	"lostfound-backend/internal/domains/item/model"
	"lostfound-backend/internal/domains/item/service"
	"lostfound-backend/internal/shared/response"
)

// =====================================================
// ITEM HANDLER
// =====================================================

type ItemHandler struct {
	itemService service.ServiceInterface
}

func NewItemHandler(itemService service.ServiceInterface) *ItemHandler {
	return &ItemHandler{
		itemService: itemService,
	}
}

// ListItems returns all postings, newest first.
// GET /api/items
func (h *ItemHandler) ListItems(c *gin.Context) {
	items, err := h.itemService.ListItems(c.Request.Context())
	if err != nil {
		statusCode, errCode := mapItemError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	// Bare array, the shape the campus frontend consumes.
	c.JSON(http.StatusOK, items)
}

// CreateItem creates a new posting.
// POST /api/items
func (h *ItemHandler) CreateItem(c *gin.Context) {
	var req model.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.itemService.CreateItem(c.Request.Context(), req); err != nil {
		statusCode, errCode := mapItemError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	c.JSON(http.StatusOK, "OK")
}

// UpdateItem replaces every mutable field of a posting, owner-only. The
// body is multipart form data so a replacement image can ride along in the
// optional imageFile part.
// PUT /api/items/:id
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid item id")
		return
	}

	var req model.UpdateItemRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	newImage, err := readImageFile(c)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	if err := h.itemService.UpdateItem(c.Request.Context(), itemID, req, newImage); err != nil {
		statusCode, errCode := mapItemError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	c.JSON(http.StatusOK, "OK")
}

// DeleteItem removes a posting, owner-only. The requesting user rides in
// the postedByUserId query parameter.
// DELETE /api/items/:id
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid item id")
		return
	}

	requestingUser := c.Query("postedByUserId")
	if requestingUser == "" {
		response.BadRequest(c, "postedByUserId is required")
		return
	}

	if err := h.itemService.DeleteItem(c.Request.Context(), itemID, requestingUser); err != nil {
		statusCode, errCode := mapItemError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	c.JSON(http.StatusOK, "OK")
}

// =====================================================
// HELPER FUNCTIONS
// =====================================================

// readImageFile pulls the optional imageFile part out of a multipart body.
// Returns nil when the part is absent.
func readImageFile(c *gin.Context) (*model.ImagePayload, error) {
	fileHeader, err := c.FormFile("imageFile")
	if err != nil {
		// Absent part, not an error
		return nil, nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &model.ImagePayload{
		Data: data,
		Ext:  filepath.Ext(fileHeader.Filename),
	}, nil
}

// mapItemError maps service errors to HTTP status codes.
func mapItemError(err error) (int, string) {
	if itemErr, ok := err.(*model.ItemError); ok {
		switch itemErr.Code {
		case model.ErrCodeItemNotFound:
			return http.StatusNotFound, itemErr.Code
		case model.ErrCodeForbidden:
			return http.StatusForbidden, itemErr.Code
		case model.ErrCodeMissingField, model.ErrCodeInvalidDate:
			return http.StatusBadRequest, itemErr.Code
		default:
			return http.StatusInternalServerError, "INTERNAL_ERROR"
		}
	}
	return http.StatusInternalServerError, "INTERNAL_ERROR"
}
