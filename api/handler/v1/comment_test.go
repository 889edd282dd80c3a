package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	v1 "github.com/goto/remark/api/handler/v1"
	"github.com/goto/remark/api/handler/v1/mocks"
	"github.com/goto/remark/core/comment"
	"github.com/goto/remark/domain"
	"github.com/goto/remark/pkg/log"
)

var anyCtx = mock.MatchedBy(func(ctx context.Context) bool { return true })

type HandlerTestSuite struct {
	suite.Suite
	commentService *mocks.CommentService
	router         *gin.Engine
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) setup() {
	gin.SetMode(gin.TestMode)
	s.commentService = new(mocks.CommentService)
	h := v1.NewHandler(s.commentService, log.NewNoop(), v1.HandlerOptions{
		AdminAPIKey:       "admin-secret",
		MaxRequestTimeout: time.Second,
	})
	s.router = gin.New()
	h.RegisterRoutes(s.router)
}

func (s *HandlerTestSuite) do(method, target string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) decodeError(rec *httptest.ResponseRecorder) map[string]string {
	var res map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	return res
}

func (s *HandlerTestSuite) TestCreateComment() {
	createdAt := time.Date(2025, 9, 9, 9, 0, 0, 0, time.UTC)

	for _, path := range []string{"/api/v1/comments", "/api/questions/save_comment"} {
		s.Run("should create comment via "+path, func() {
			s.setup()
			s.commentService.EXPECT().
				Create(anyCtx, comment.CreateCommentParams{
					ParentType: "question",
					ParentID:   "q-1",
					Body:       "hello",
					Caller:     "token-alice",
				}).
				Return(&domain.Comment{
					ID:            "101",
					ParentType:    "question",
					ParentID:      "q-1",
					Body:          "hello",
					CreatedBy:     "u-alice",
					CreatedByName: "Alice",
					CreatedAt:     createdAt,
				}, nil).Once()

			rec := s.do(http.MethodPost, path, map[string]string{
				"body":       "hello",
				"parentType": "question",
				"parentId":   "q-1",
				"createdBy":  "spoofed",
			}, map[string]string{"Authorization": "Bearer token-alice"})

			s.Equal(http.StatusCreated, rec.Code)
			var res map[string]interface{}
			s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res))
			s.Equal("101", res["id"])
			s.Equal("u-alice", res["createdBy"])
			s.Equal("Alice", res["createdByName"])
			s.Equal("question", res["parentType"])
			s.Equal("q-1", res["parentId"])
			s.Equal("2025-09-09T09:00:00Z", res["createdAt"])
			s.commentService.AssertExpectations(s.T())
		})
	}

	s.Run("should pass empty caller when the bearer token is missing", func() {
		s.setup()
		s.commentService.EXPECT().
			Create(anyCtx, mock.MatchedBy(func(p comment.CreateCommentParams) bool { return p.Caller == "" })).
			Return(nil, comment.ErrUnauthenticatedCaller).Once()

		rec := s.do(http.MethodPost, "/api/v1/comments", map[string]string{"body": "hi", "parentType": "question", "parentId": "q-1"},
			map[string]string{"Authorization": "Basic abc"})

		s.Equal(http.StatusUnauthorized, rec.Code)
		s.Equal(v1.CodeUnauthenticated, s.decodeError(rec)["code"])
	})

	s.Run("should reject malformed json", func() {
		s.setup()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/comments", bytes.NewBufferString("{"))
		rec := httptest.NewRecorder()

		s.router.ServeHTTP(rec, req)

		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal(v1.CodeInvalidArgument, s.decodeError(rec)["code"])
		s.commentService.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
	})

	s.Run("should map service errors to status codes", func() {
		testCases := []struct {
			err            error
			expectedStatus int
			expectedCode   string
		}{
			{comment.ErrEmptyBody, http.StatusBadRequest, v1.CodeEmptyBody},
			{comment.ErrEmptyParentID, http.StatusBadRequest, v1.CodeInvalidArgument},
			{fmt.Errorf("%w: %q", comment.ErrUnknownParentType, "answer"), http.StatusBadRequest, v1.CodeUnknownParentType},
			{comment.ErrUnauthenticatedCaller, http.StatusUnauthorized, v1.CodeUnauthenticated},
			{fmt.Errorf("%w: question %q", comment.ErrParentNotFound, "q-1"), http.StatusNotFound, v1.CodeParentNotFound},
			{fmt.Errorf("%w: %w", comment.ErrStorageUnavailable, errors.New("dial tcp")), http.StatusServiceUnavailable, v1.CodeStorageUnavailable},
			{fmt.Errorf("%w: %w", comment.ErrOperationTimedOut, context.DeadlineExceeded), http.StatusGatewayTimeout, v1.CodeTimeout},
			{errors.New("unexpected"), http.StatusInternalServerError, v1.CodeInternal},
		}

		for _, tc := range testCases {
			s.Run(tc.expectedCode, func() {
				s.setup()
				s.commentService.EXPECT().Create(anyCtx, mock.Anything).Return(nil, tc.err).Once()

				rec := s.do(http.MethodPost, "/api/v1/comments", map[string]string{"body": "x", "parentType": "question", "parentId": "q-1"},
					map[string]string{"Authorization": "Bearer t"})

				s.Equal(tc.expectedStatus, rec.Code)
				s.Equal(tc.expectedCode, s.decodeError(rec)["code"])
			})
		}
	})

	s.Run("should not leak storage details", func() {
		s.setup()
		s.commentService.EXPECT().Create(anyCtx, mock.Anything).
			Return(nil, fmt.Errorf("%w: %w", comment.ErrStorageUnavailable, errors.New("password authentication failed for user remark"))).Once()

		rec := s.do(http.MethodPost, "/api/v1/comments", map[string]string{"body": "x", "parentType": "question", "parentId": "q-1"},
			map[string]string{"Authorization": "Bearer t"})

		s.NotContains(rec.Body.String(), "password")
	})
}

func (s *HandlerTestSuite) TestListComments() {
	for _, path := range []string{"/api/v1/comments", "/api/questions/get/all/comments"} {
		s.Run("should list comments via "+path, func() {
			s.setup()
			s.commentService.EXPECT().
				List(anyCtx, domain.ListCommentsFilter{ParentType: "question", ParentID: "q-1"}).
				Return([]*domain.Comment{{ID: "1", Body: "a"}, {ID: "2", Body: "b"}}, nil).Once()

			rec := s.do(http.MethodGet, path+"?parentType=question&parentId=q-1", nil, nil)

			s.Equal(http.StatusOK, rec.Code)
			var res []map[string]interface{}
			s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res))
			s.Len(res, 2)
			s.Equal("1", res[0]["id"])
			s.Equal("2", res[1]["id"])
		})
	}

	s.Run("should return empty array for empty thread", func() {
		s.setup()
		s.commentService.EXPECT().List(anyCtx, mock.Anything).Return([]*domain.Comment{}, nil).Once()

		rec := s.do(http.MethodGet, "/api/v1/comments?parentType=question&parentId=q-1", nil, nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("should apply the request timeout header", func() {
		s.setup()
		s.commentService.EXPECT().List(mock.MatchedBy(func(ctx context.Context) bool {
			deadline, ok := ctx.Deadline()
			return ok && time.Until(deadline) <= time.Second
		}), mock.Anything).Return([]*domain.Comment{}, nil).Once()

		rec := s.do(http.MethodGet, "/api/v1/comments?parentType=question&parentId=q-1", nil,
			map[string]string{v1.HeaderRequestTimeout: "1h"})

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("should reject invalid request timeout header", func() {
		s.setup()

		rec := s.do(http.MethodGet, "/api/v1/comments?parentType=question&parentId=q-1", nil,
			map[string]string{v1.HeaderRequestTimeout: "soon"})

		s.Equal(http.StatusBadRequest, rec.Code)
		s.commentService.AssertNotCalled(s.T(), "List", mock.Anything, mock.Anything)
	})
}

func (s *HandlerTestSuite) TestDeleteThread() {
	s.Run("should delete thread with admin key", func() {
		s.setup()
		s.commentService.EXPECT().DeleteThread(anyCtx, domain.ParentReference{Type: "question", ID: "q-1"}).Return(nil).Once()

		rec := s.do(http.MethodDelete, "/api/v1/comments?parentType=question&parentId=q-1", nil,
			map[string]string{v1.HeaderAdminAPIKey: "admin-secret"})

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("should reject missing admin key", func() {
		s.setup()

		rec := s.do(http.MethodDelete, "/api/v1/comments?parentType=question&parentId=q-1", nil, nil)

		s.Equal(http.StatusUnauthorized, rec.Code)
		s.commentService.AssertNotCalled(s.T(), "DeleteThread", mock.Anything, mock.Anything)
	})
}

func (s *HandlerTestSuite) TestPing() {
	s.setup()

	rec := s.do(http.MethodGet, "/ping", nil, nil)

	s.Equal(http.StatusOK, rec.Code)
}
