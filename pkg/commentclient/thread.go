package commentclient

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	defaultRefreshAttempts = 3
	defaultRefreshDelay    = 100 * time.Millisecond
)

// Thread caches the comments of one parent. The cache only ever holds a full
// server listing: a successful post is followed by a re-fetch, never by a
// local insert.
type Thread struct {
	client     *Client
	parentType string
	parentID   string

	refreshAttempts uint64
	refreshDelay    time.Duration

	mu       sync.RWMutex
	comments []Comment
}

type ThreadOption func(*Thread)

// WithRefreshRetry bounds the re-fetch that follows a successful post.
func WithRefreshRetry(attempts uint64, initialDelay time.Duration) ThreadOption {
	return func(t *Thread) {
		if attempts == 0 {
			attempts = 1
		}
		t.refreshAttempts = attempts
		t.refreshDelay = initialDelay
	}
}

func (c *Client) Thread(parentType, parentID string, opts ...ThreadOption) *Thread {
	t := &Thread{
		client:          c,
		parentType:      parentType,
		parentID:        parentID,
		refreshAttempts: defaultRefreshAttempts,
		refreshDelay:    defaultRefreshDelay,
		comments:        []Comment{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Refresh replaces the cache with the server's current listing.
func (t *Thread) Refresh(ctx context.Context) error {
	comments, err := t.client.ListComments(ctx, t.parentType, t.parentID)
	if err != nil {
		return err
	}
	t.mu.Lock()
	t.comments = comments
	t.mu.Unlock()
	return nil
}

// Post creates a comment and then re-fetches the thread. A failed create
// leaves the cache untouched. ErrStale means the comment was stored but the
// cache could not be brought up to date.
func (t *Thread) Post(ctx context.Context, body string) (*Comment, error) {
	created, err := t.client.CreateComment(ctx, t.parentType, t.parentID, body)
	if err != nil {
		return nil, err
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = t.refreshDelay
	b.MaxElapsedTime = 0
	policy := backoff.WithContext(backoff.WithMaxRetries(b, t.refreshAttempts-1), ctx)

	if err := backoff.Retry(func() error { return t.Refresh(ctx) }, policy); err != nil {
		return created, fmt.Errorf("%w: %w", ErrStale, err)
	}
	return created, nil
}

// Comments returns a copy of the cached thread.
func (t *Thread) Comments() []Comment {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Comment, len(t.comments))
	copy(out, t.comments)
	return out
}
