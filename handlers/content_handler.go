package handlers

import (
	"net/http"
	"strconv"

	"second-brain-server/helper"
	"second-brain-server/models"
	"second-brain-server/services"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	contentService services.ContentService
	Helper         *helper.HTTPHelper
}

func NewContentHandler(contentService services.ContentService, httpHelper *helper.HTTPHelper) *ContentHandler {
	return &ContentHandler{contentService: contentService, Helper: httpHelper}
}

func (h *ContentHandler) CreateContent(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	content, err := h.contentService.Create(userID.(uint), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Content created successfully",
		"content": models.NewContentResponse(content),
	})
}

func (h *ContentHandler) GetContents(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var params models.ContentListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	contents, err := h.contentService.ListForOwner(userID.(uint), params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    len(contents),
		"contents": models.NewContentResponses(contents),
	})
}

// GetHomeContents is the landing view: every content for the caller in a
// lighter projection, without the owner echo.
func (h *ContentHandler) GetHomeContents(c *gin.Context) {
	userID, _ := c.Get("user_id")

	contents, err := h.contentService.ListHome(userID.(uint))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    len(contents),
		"contents": models.NewHomeContentResponses(contents),
	})
}

// GetContentsByType builds the handler for one fixed-type route; tagId and
// search still compose on top.
func (h *ContentHandler) GetContentsByType(contentType models.ContentType) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var params models.ContentListParams
		if err := c.ShouldBindQuery(&params); err != nil {
			h.Helper.SendBadRequest(c, err.Error())
			return
		}

		contents, err := h.contentService.ListByType(userID.(uint), contentType, params)
		if err != nil {
			h.Helper.SendError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"type":     contentType,
			"count":    len(contents),
			"contents": models.NewContentResponses(contents),
		})
	}
}

func (h *ContentHandler) GetContent(c *gin.Context) {
	userID, _ := c.Get("user_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid content ID")
		return
	}

	content, err := h.contentService.GetByID(userID.(uint), uint(id))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"content": models.NewContentResponse(content)})
}

func (h *ContentHandler) UpdateContent(c *gin.Context) {
	userID, _ := c.Get("user_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid content ID")
		return
	}

	var req models.UpdateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	content, err := h.contentService.Update(userID.(uint), uint(id), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Content updated successfully",
		"content": models.NewContentResponse(content),
	})
}

func (h *ContentHandler) DeleteContent(c *gin.Context) {
	userID, _ := c.Get("user_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid content ID")
		return
	}

	if err := h.contentService.Delete(userID.(uint), uint(id)); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Content deleted successfully"})
}
