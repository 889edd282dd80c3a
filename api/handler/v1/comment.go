package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goto/remark/core/comment"
	"github.com/goto/remark/domain"
)

func (h *Handler) CreateComment(c *gin.Context) {
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abort(c, http.StatusBadRequest, CodeInvalidArgument, "invalid request body")
		return
	}

	created, err := h.commentService.Create(c.Request.Context(), comment.CreateCommentParams{
		ParentType: req.ParentType,
		ParentID:   req.ParentID,
		Body:       req.Body,
		Caller:     h.callerToken(c),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toCommentResponse(created))
}

func (h *Handler) ListComments(c *gin.Context) {
	var q listCommentsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.abort(c, http.StatusBadRequest, CodeInvalidArgument, "invalid query")
		return
	}

	comments, err := h.commentService.List(c.Request.Context(), domain.ListCommentsFilter{
		ParentType: q.ParentType,
		ParentID:   q.ParentID,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	res := make([]commentResponse, 0, len(comments))
	for _, cm := range comments {
		res = append(res, toCommentResponse(cm))
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) DeleteThread(c *gin.Context) {
	var q listCommentsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.abort(c, http.StatusBadRequest, CodeInvalidArgument, "invalid query")
		return
	}

	if err := h.commentService.DeleteThread(c.Request.Context(), domain.ParentReference{
		Type: q.ParentType,
		ID:   q.ParentID,
	}); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
