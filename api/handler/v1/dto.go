package v1

import (
	"time"

	"github.com/goto/remark/domain"
)

type createCommentRequest struct {
	Body       string `json:"body"`
	ParentType string `json:"parentType"`
	ParentID   string `json:"parentId"`
	// CreatedBy is accepted from older clients and ignored; the author is
	// always the authenticated caller.
	CreatedBy string `json:"createdBy,omitempty"`
}

type listCommentsQuery struct {
	ParentType string `form:"parentType"`
	ParentID   string `form:"parentId"`
}

type commentResponse struct {
	ID            string    `json:"id"`
	Body          string    `json:"body"`
	CreatedBy     string    `json:"createdBy"`
	CreatedByName string    `json:"createdByName"`
	ParentType    string    `json:"parentType"`
	ParentID      string    `json:"parentId"`
	CreatedAt     time.Time `json:"createdAt"`
}

type errorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

func toCommentResponse(c *domain.Comment) commentResponse {
	return commentResponse{
		ID:            c.ID,
		Body:          c.Body,
		CreatedBy:     c.CreatedBy,
		CreatedByName: c.CreatedByName,
		ParentType:    c.ParentType,
		ParentID:      c.ParentID,
		CreatedAt:     c.CreatedAt,
	}
}
