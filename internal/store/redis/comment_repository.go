package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/goto/remark/domain"
	"github.com/goto/remark/pkg/clock"
	"github.com/goto/remark/pkg/id"
)

const defaultMaxRetries = 16

var ErrTooManyRetries = errors.New("thread is too contended, giving up")

// CommentRepository stores every thread as a sorted set index plus a hash of
// JSON records. Index members are "<created_at µs>:<id>", both zero padded,
// all with score 0 so the set orders them lexicographically.
type CommentRepository struct {
	client     goredis.UniversalClient
	prefix     string
	maxRetries int

	ids   *id.Generator
	clock *clock.Monotonic
}

func NewCommentRepository(client goredis.UniversalClient, ids *id.Generator, prefix string, maxRetries int) *CommentRepository {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	return &CommentRepository{
		client:     client,
		prefix:     prefix,
		maxRetries: maxRetries,
		ids:        ids,
		clock:      clock.NewMonotonic(nil),
	}
}

// Append writes the record and its index entry in one MULTI/EXEC, retried
// when another writer touches the thread index in between.
func (r *CommentRepository) Append(ctx context.Context, c *domain.Comment) error {
	if c.ID == "" {
		c.ID = r.ids.Next()
	}
	seq, err := strconv.ParseUint(c.ID, 10, 64)
	if err != nil {
		return fmt.Errorf("parsing comment id %q: %w", c.ID, err)
	}
	indexKey, recordsKey := r.keys(c.Parent())
	assignTimestamp := c.CreatedAt.IsZero()

	for attempt := 0; attempt < r.maxRetries; attempt++ {
		record := *c
		// the index member carries the canonical decimal form
		record.ID = strconv.FormatUint(seq, 10)
		err := r.client.Watch(ctx, func(tx *goredis.Tx) error {
			if assignTimestamp {
				last, err := tx.ZRevRangeByLex(ctx, indexKey, &goredis.ZRangeBy{Min: "-", Max: "+", Count: 1}).Result()
				if err != nil {
					return err
				}
				record.CreatedAt = r.clock.Now()
				if len(last) > 0 {
					prev, err := parseMember(last[0])
					if err != nil {
						return err
					}
					if !domain.CommentLess(prev, &record) {
						record.CreatedAt = prev.CreatedAt.Add(time.Microsecond)
					}
				}
			}

			payload, err := json.Marshal(record)
			if err != nil {
				return err
			}
			_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
				pipe.HSet(ctx, recordsKey, record.ID, payload)
				pipe.ZAdd(ctx, indexKey, goredis.Z{Score: 0, Member: member(record.CreatedAt, seq)})
				return nil
			})
			return err
		}, indexKey)

		switch {
		case err == nil:
			*c = record
			return nil
		case errors.Is(err, goredis.TxFailedErr):
			continue
		default:
			return err
		}
	}
	return fmt.Errorf("%w: %s", ErrTooManyRetries, c.Parent().String())
}

func (r *CommentRepository) QueryByParent(ctx context.Context, parent domain.ParentReference) ([]*domain.Comment, error) {
	indexKey, recordsKey := r.keys(parent)

	members, err := r.client.ZRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	comments := []*domain.Comment{}
	if len(members) == 0 {
		return comments, nil
	}

	ids := make([]string, 0, len(members))
	for _, m := range members {
		prev, err := parseMember(m)
		if err != nil {
			return nil, err
		}
		ids = append(ids, prev.ID)
	}
	values, err := r.client.HMGet(ctx, recordsKey, ids...).Result()
	if err != nil {
		return nil, err
	}
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// thread deleted between the two reads
			continue
		}
		var c domain.Comment
		if err := json.Unmarshal([]byte(raw), &c); err != nil {
			return nil, fmt.Errorf("decoding comment %s: %w", ids[i], err)
		}
		comments = append(comments, &c)
	}
	return comments, nil
}

func (r *CommentRepository) DeleteAllForParent(ctx context.Context, parent domain.ParentReference) error {
	indexKey, recordsKey := r.keys(parent)
	return r.client.Del(ctx, indexKey, recordsKey).Err()
}

// keys share a hash tag so both land on the same cluster slot.
func (r *CommentRepository) keys(parent domain.ParentReference) (index, records string) {
	base := fmt.Sprintf("%s:{%s}", r.prefix, parent.Key())
	return base + ":index", base + ":records"
}

func member(createdAt time.Time, seq uint64) string {
	return fmt.Sprintf("%020d:%020d", createdAt.UnixMicro(), seq)
}

func parseMember(m string) (*domain.Comment, error) {
	ts, id, ok := strings.Cut(m, ":")
	if !ok {
		return nil, fmt.Errorf("malformed index member %q", m)
	}
	micros, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("malformed index member %q: %w", m, err)
	}
	seq, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("malformed index member %q: %w", m, err)
	}
	return &domain.Comment{
		ID:        strconv.FormatUint(seq, 10),
		CreatedAt: time.UnixMicro(micros).UTC(),
	}, nil
}
