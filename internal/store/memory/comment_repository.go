package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/goto/remark/domain"
	"github.com/goto/remark/pkg/clock"
	"github.com/goto/remark/pkg/id"
)

type thread struct {
	// sem serializes appends of one thread. Acquire honours ctx.
	sem      *semaphore.Weighted
	comments []*domain.Comment
}

// CommentRepository keeps comment threads in process memory. Every instance
// starts empty and is independent of any other.
type CommentRepository struct {
	mu      sync.RWMutex
	threads map[string]*thread

	ids   *id.Generator
	clock *clock.Monotonic
}

type Option func(*CommentRepository)

// WithNow replaces the wall clock used to stamp new comments.
func WithNow(now func() time.Time) Option {
	return func(r *CommentRepository) {
		r.clock = clock.NewMonotonic(now)
	}
}

func NewCommentRepository(ids *id.Generator, opts ...Option) *CommentRepository {
	r := &CommentRepository{
		threads: map[string]*thread{},
		ids:     ids,
		clock:   clock.NewMonotonic(nil),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Append stores a copy of c. ID and CreatedAt are assigned when empty and
// written back to c only once the record is stored.
func (r *CommentRepository) Append(ctx context.Context, c *domain.Comment) error {
	key := c.Parent().Key()
	t, err := r.lockThread(ctx, key)
	if err != nil {
		return err
	}
	defer t.sem.Release(1)

	record := *c
	if record.ID == "" {
		record.ID = r.ids.Next()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = r.clock.Now()
		if n := len(t.comments); n > 0 && !domain.CommentLess(t.comments[n-1], &record) {
			record.CreatedAt = t.comments[n-1].CreatedAt.Add(time.Microsecond)
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	i := sort.Search(len(t.comments), func(i int) bool {
		return domain.CommentLess(&record, t.comments[i])
	})
	comments := make([]*domain.Comment, 0, len(t.comments)+1)
	comments = append(comments, t.comments[:i]...)
	comments = append(comments, &record)
	comments = append(comments, t.comments[i:]...)
	t.comments = comments

	*c = record
	return nil
}

func (r *CommentRepository) QueryByParent(ctx context.Context, parent domain.ParentReference) ([]*domain.Comment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.threads[parent.Key()]
	if !ok {
		return []*domain.Comment{}, nil
	}
	result := make([]*domain.Comment, 0, len(t.comments))
	for _, c := range t.comments {
		copied := *c
		result = append(result, &copied)
	}
	return result, nil
}

func (r *CommentRepository) DeleteAllForParent(ctx context.Context, parent domain.ParentReference) error {
	key := parent.Key()
	t, err := r.lockThread(ctx, key)
	if err != nil {
		return err
	}
	defer t.sem.Release(1)

	r.mu.Lock()
	delete(r.threads, key)
	r.mu.Unlock()
	return nil
}

// Reset drops every thread.
func (r *CommentRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.threads = map[string]*thread{}
}

// lockThread acquires the append lock of the thread currently registered
// under key, creating it when missing. A thread removed while waiting is
// skipped in favour of its replacement.
func (r *CommentRepository) lockThread(ctx context.Context, key string) (*thread, error) {
	for {
		r.mu.Lock()
		t, ok := r.threads[key]
		if !ok {
			t = &thread{sem: semaphore.NewWeighted(1)}
			r.threads[key] = t
		}
		r.mu.Unlock()

		if err := t.sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}

		r.mu.RLock()
		current := r.threads[key] == t
		r.mu.RUnlock()
		if current {
			return t, nil
		}
		t.sem.Release(1)
	}
}
