package handlers

import (
	"net/http"

	"second-brain-server/helper"
	"second-brain-server/models"
	"second-brain-server/services"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tagService services.TagService
	Helper     *helper.HTTPHelper
}

func NewTagHandler(tagService services.TagService, httpHelper *helper.HTTPHelper) *TagHandler {
	return &TagHandler{tagService: tagService, Helper: httpHelper}
}

func (h *TagHandler) GetTags(c *gin.Context) {
	tags, err := h.tagService.List()
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count": len(tags),
		"tags":  tags,
	})
}

// CreateTag answers 201 when a new tag row was created and 200 when the
// normalized title already existed; both are success outcomes.
func (h *TagHandler) CreateTag(c *gin.Context) {
	var req models.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	tag, created, err := h.tagService.CreateOrGet(req.Title)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	if !created {
		c.JSON(http.StatusOK, gin.H{
			"message": "Tag already exists",
			"tag":     tag,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Tag created successfully",
		"tag":     tag,
	})
}
