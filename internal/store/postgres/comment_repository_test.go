package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/goto/remark/domain"
	store "github.com/goto/remark/internal/store/postgres"
	"github.com/goto/remark/pkg/id"
)

type CommentRepositoryTestSuite struct {
	suite.Suite
	sqlmock    sqlmock.Sqlmock
	repository *store.CommentRepository

	parent domain.ParentReference
}

func TestCommentRepository(t *testing.T) {
	suite.Run(t, new(CommentRepositoryTestSuite))
}

func (s *CommentRepositoryTestSuite) SetupTest() {
	db, mock, err := sqlmock.New()
	s.Require().NoError(err)
	s.sqlmock = mock

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{SkipDefaultTransaction: true})
	s.Require().NoError(err)

	ids, err := id.NewGenerator(1)
	s.Require().NoError(err)
	s.repository = store.NewCommentRepository(gormDB, ids)
	s.parent = domain.ParentReference{Type: "question", ID: "q-1"}
}

func (s *CommentRepositoryTestSuite) TearDownTest() {
	s.NoError(s.sqlmock.ExpectationsWereMet())
}

var (
	lockQuery     = regexp.QuoteMeta(`SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`)
	lastQuery     = regexp.QuoteMeta(`SELECT * FROM "comments" WHERE parent_type = $1 AND parent_id = $2 ORDER BY created_at DESC, id DESC LIMIT 1`)
	insertQuery   = regexp.QuoteMeta(`INSERT INTO "comments"`)
	threadQuery   = regexp.QuoteMeta(`SELECT * FROM "comments" WHERE parent_type = $1 AND parent_id = $2 ORDER BY created_at ASC, id ASC`)
	deleteQuery   = regexp.QuoteMeta(`DELETE FROM "comments" WHERE parent_type = $1 AND parent_id = $2`)
	commentColumn = []string{"id", "parent_type", "parent_id", "created_by", "created_by_name", "body", "created_at"}
)

func (s *CommentRepositoryTestSuite) TestAppend() {
	s.Run("should lock the thread and insert with assigned id and timestamp", func() {
		s.SetupTest()
		c := &domain.Comment{ParentType: s.parent.Type, ParentID: s.parent.ID, CreatedBy: "u-1", CreatedByName: "Alice", Body: "hello"}

		s.sqlmock.ExpectBegin()
		s.sqlmock.ExpectExec(lockQuery).WithArgs("8:question:q-1").WillReturnResult(sqlmock.NewResult(0, 0))
		s.sqlmock.ExpectQuery(lastQuery).WithArgs("question", "q-1").WillReturnRows(sqlmock.NewRows(commentColumn))
		s.sqlmock.ExpectExec(insertQuery).WillReturnResult(sqlmock.NewResult(0, 1))
		s.sqlmock.ExpectCommit()

		err := s.repository.Append(context.Background(), c)

		s.NoError(err)
		s.NotEmpty(c.ID)
		s.False(c.CreatedAt.IsZero())
		s.Equal("Alice", c.CreatedByName)
	})

	s.Run("should stamp after the last comment when the clock lags behind", func() {
		s.SetupTest()
		future := time.Now().Add(time.Hour).UTC().Truncate(time.Microsecond)
		c := &domain.Comment{ParentType: s.parent.Type, ParentID: s.parent.ID, CreatedBy: "u-1", Body: "late"}

		s.sqlmock.ExpectBegin()
		s.sqlmock.ExpectExec(lockQuery).WithArgs("8:question:q-1").WillReturnResult(sqlmock.NewResult(0, 0))
		s.sqlmock.ExpectQuery(lastQuery).WithArgs("question", "q-1").WillReturnRows(
			sqlmock.NewRows(commentColumn).AddRow(int64(1), "question", "q-1", "u-2", "Bob", "early", future),
		)
		s.sqlmock.ExpectExec(insertQuery).WillReturnResult(sqlmock.NewResult(0, 1))
		s.sqlmock.ExpectCommit()

		err := s.repository.Append(context.Background(), c)

		s.NoError(err)
		s.Equal(future.Add(time.Microsecond), c.CreatedAt)
	})

	s.Run("should keep seeded id and timestamp", func() {
		s.SetupTest()
		createdAt := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
		c := &domain.Comment{ID: "7", ParentType: s.parent.Type, ParentID: s.parent.ID, Body: "seed", CreatedAt: createdAt}

		s.sqlmock.ExpectBegin()
		s.sqlmock.ExpectExec(lockQuery).WithArgs("8:question:q-1").WillReturnResult(sqlmock.NewResult(0, 0))
		s.sqlmock.ExpectExec(insertQuery).WillReturnResult(sqlmock.NewResult(0, 1))
		s.sqlmock.ExpectCommit()

		err := s.repository.Append(context.Background(), c)

		s.NoError(err)
		s.Equal("7", c.ID)
		s.Equal(createdAt, c.CreatedAt)
	})

	s.Run("should reject non numeric ids", func() {
		s.SetupTest()

		err := s.repository.Append(context.Background(), &domain.Comment{ID: "abc", ParentType: s.parent.Type, ParentID: s.parent.ID})

		s.Error(err)
	})

	s.Run("should roll back when insert fails", func() {
		s.SetupTest()
		expectedError := errors.New("insert failed")

		s.sqlmock.ExpectBegin()
		s.sqlmock.ExpectExec(lockQuery).WithArgs("8:question:q-1").WillReturnResult(sqlmock.NewResult(0, 0))
		s.sqlmock.ExpectQuery(lastQuery).WithArgs("question", "q-1").WillReturnRows(sqlmock.NewRows(commentColumn))
		s.sqlmock.ExpectExec(insertQuery).WillReturnError(expectedError)
		s.sqlmock.ExpectRollback()

		c := &domain.Comment{ParentType: s.parent.Type, ParentID: s.parent.ID, Body: "x"}
		err := s.repository.Append(context.Background(), c)

		s.ErrorIs(err, expectedError)
		s.Empty(c.ID)
	})
}

func (s *CommentRepositoryTestSuite) TestQueryByParent() {
	s.Run("should return thread in order", func() {
		s.SetupTest()
		t0900 := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
		t0905 := t0900.Add(5 * time.Minute)
		s.sqlmock.ExpectQuery(threadQuery).WithArgs("question", "q-1").WillReturnRows(
			sqlmock.NewRows(commentColumn).
				AddRow(int64(1), "question", "q-1", "u-1", "Alice", "a", t0900).
				AddRow(int64(2), "question", "q-1", "u-2", "Bob", "b", t0905).
				AddRow(int64(3), "question", "q-1", "u-1", "Alice", "c", t0905),
		)

		comments, err := s.repository.QueryByParent(context.Background(), s.parent)

		s.NoError(err)
		s.Require().Len(comments, 3)
		s.Equal("1", comments[0].ID)
		s.Equal("Bob", comments[1].CreatedByName)
		s.Equal(t0905, comments[2].CreatedAt)
	})

	s.Run("should return empty slice for empty thread", func() {
		s.SetupTest()
		s.sqlmock.ExpectQuery(threadQuery).WithArgs("question", "q-1").WillReturnRows(sqlmock.NewRows(commentColumn))

		comments, err := s.repository.QueryByParent(context.Background(), s.parent)

		s.NoError(err)
		s.NotNil(comments)
		s.Empty(comments)
	})

	s.Run("should return db error", func() {
		s.SetupTest()
		expectedError := errors.New("db down")
		s.sqlmock.ExpectQuery(threadQuery).WillReturnError(expectedError)

		_, err := s.repository.QueryByParent(context.Background(), s.parent)

		s.ErrorIs(err, expectedError)
	})
}

func (s *CommentRepositoryTestSuite) TestDeleteAllForParent() {
	s.SetupTest()
	s.sqlmock.ExpectExec(deleteQuery).WithArgs("question", "q-1").WillReturnResult(sqlmock.NewResult(0, 2))

	err := s.repository.DeleteAllForParent(context.Background(), s.parent)

	s.NoError(err)
}
