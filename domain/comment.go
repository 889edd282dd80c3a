package domain

import (
	"strconv"
	"strings"
	"time"
)

// ParentReference addresses a comment thread. Type and ID are always used
// together as a composite key.
type ParentReference struct {
	Type string `json:"parent_type" yaml:"parent_type"`
	ID   string `json:"parent_id" yaml:"parent_id"`
}

func (p ParentReference) String() string {
	return p.Type + ":" + p.ID
}

// Key identifies the thread of p in stores. The type is length prefixed so
// no two distinct references share a key, whatever their content.
func (p ParentReference) Key() string {
	return strconv.Itoa(len(p.Type)) + ":" + p.Type + ":" + p.ID
}

type Comment struct {
	ID            string    `json:"id" yaml:"id"`
	ParentType    string    `json:"parent_type" yaml:"parent_type"`
	ParentID      string    `json:"parent_id" yaml:"parent_id"`
	CreatedBy     string    `json:"created_by" yaml:"created_by"`
	CreatedByName string    `json:"created_by_name" yaml:"created_by_name"`
	Body          string    `json:"body" yaml:"body"`
	CreatedAt     time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

func (c *Comment) Parent() ParentReference {
	return ParentReference{Type: c.ParentType, ID: c.ParentID}
}

type ListCommentsFilter struct {
	ParentType string
	ParentID   string
}

func (f ListCommentsFilter) Parent() ParentReference {
	return ParentReference{Type: f.ParentType, ID: f.ParentID}
}

// Caller is the authenticated identity posting or reading comments.
type Caller struct {
	ID          string `json:"id" yaml:"id"`
	DisplayName string `json:"display_name" yaml:"display_name"`
}

// CommentLess reports whether a sorts before b in thread order: created_at
// ascending, then id.
func CommentLess(a, b *Comment) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return CompareCommentIDs(a.ID, b.ID) < 0
}

// CompareCommentIDs orders decimal ids numerically and anything else
// lexicographically. Decimal ids always sort before non-decimal ones.
func CompareCommentIDs(a, b string) int {
	aNum, bNum := isDecimal(a), isDecimal(b)
	switch {
	case aNum && bNum:
		a, b = strings.TrimLeft(a, "0"), strings.TrimLeft(b, "0")
		if len(a) != len(b) {
			if len(a) < len(b) {
				return -1
			}
			return 1
		}
		return strings.Compare(a, b)
	case aNum:
		return -1
	case bNum:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
