package model

import (
	"fmt"
	"strconv"
	"time"

	"github.com/goto/remark/domain"
)

type Comment struct {
	ID            int64  `gorm:"primaryKey;autoIncrement:false"`
	ParentType    string `gorm:"type:varchar(64);not null"`
	ParentID      string `gorm:"not null"`
	CreatedBy     string
	CreatedByName string
	Body          string
	CreatedAt     time.Time `gorm:"autoCreateTime:false"`
}

func (Comment) TableName() string {
	return "comments"
}

func (m *Comment) FromDomain(c *domain.Comment) error {
	if c.ID != "" {
		id, err := strconv.ParseInt(c.ID, 10, 64)
		if err != nil {
			return fmt.Errorf("parsing comment id %q: %w", c.ID, err)
		}
		m.ID = id
	}

	m.ParentType = c.ParentType
	m.ParentID = c.ParentID
	m.CreatedBy = c.CreatedBy
	m.CreatedByName = c.CreatedByName
	m.Body = c.Body
	m.CreatedAt = c.CreatedAt

	return nil
}

func (m *Comment) ToDomain() *domain.Comment {
	return &domain.Comment{
		ID:            strconv.FormatInt(m.ID, 10),
		ParentType:    m.ParentType,
		ParentID:      m.ParentID,
		CreatedBy:     m.CreatedBy,
		CreatedByName: m.CreatedByName,
		Body:          m.Body,
		CreatedAt:     m.CreatedAt.UTC(),
	}
}
