// Package queue implements a durable notification queue on PostgreSQL.
// It is the default transport when no Kafka cluster is configured.
//
// Producers serialize inserts per topic with a transaction-scoped advisory
// lock, so ids become visible in commit order and a consumer that tracks the
// last processed id never skips a row. A consumer group holds its offset row
// FOR UPDATE while it works a batch, so each group has one active reader.
//
// After a commit, rows that every registered group has passed and that are
// older than the retention window are deleted. A group registered later
// starts from whatever is left.
package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/library-backend/internal/adapter/postgres"
	"github.com/heartmarshall/library-backend/internal/domain"
)

const (
	lockTopicSQL = `SELECT pg_advisory_xact_lock(hashtext($1))`

	insertSQL = `
INSERT INTO notification_queue (topic, partition_key, payload)
VALUES ($1, $2, $3)
RETURNING id`

	ensureOffsetSQL = `
INSERT INTO notification_offsets (group_id, topic, last_id)
VALUES ($1, $2, 0)
ON CONFLICT (group_id, topic) DO NOTHING`

	lockOffsetSQL = `
SELECT last_id FROM notification_offsets
WHERE group_id = $1 AND topic = $2
FOR UPDATE`

	fetchSQL = `
SELECT id, partition_key, payload FROM notification_queue
WHERE topic = $1 AND id > $2
ORDER BY id
LIMIT $3`

	commitOffsetSQL = `
UPDATE notification_offsets SET last_id = $3, updated_at = now()
WHERE group_id = $1 AND topic = $2`

	pruneSQL = `
DELETE FROM notification_queue
WHERE topic = $1
  AND created_at < now() - make_interval(secs => $2)
  AND id <= (SELECT min(last_id) FROM notification_offsets WHERE topic = $1)`

	defaultBatchSize = 50
	defaultRetention = 24 * time.Hour
)

// Publisher appends messages to one topic.
type Publisher struct {
	pool  *pgxpool.Pool
	topic string
}

// NewPublisher creates a Publisher for topic.
func NewPublisher(pool *pgxpool.Pool, topic string) *Publisher {
	return &Publisher{pool: pool, topic: topic}
}

// Publish stores one message and returns its queue position.
func (p *Publisher) Publish(ctx context.Context, key string, value []byte) (int64, error) {
	var id int64
	err := pgx.BeginFunc(ctx, p.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, lockTopicSQL, p.topic); err != nil {
			return err
		}
		return tx.QueryRow(ctx, insertSQL, p.topic, key, value).Scan(&id)
	})
	if err != nil {
		return -1, fmt.Errorf("queue publish: %w", postgres.MapError(err, "topic", p.topic))
	}
	return id, nil
}

// Close is a no-op; the pool is owned by the caller.
func (p *Publisher) Close() error { return nil }

// Subscriber reads one topic on behalf of a consumer group.
type Subscriber struct {
	pool         *pgxpool.Pool
	topic        string
	groupID      string
	pollInterval time.Duration
	batchSize    int
	retention    time.Duration
	log          *slog.Logger
}

// NewSubscriber creates a Subscriber that polls every pollInterval when idle.
func NewSubscriber(pool *pgxpool.Pool, topic, groupID string, pollInterval time.Duration, logger *slog.Logger) *Subscriber {
	return &Subscriber{
		pool:         pool,
		topic:        topic,
		groupID:      groupID,
		pollInterval: pollInterval,
		batchSize:    defaultBatchSize,
		retention:    defaultRetention,
		log:          logger.With("transport", "postgres", "topic", topic, "group", groupID),
	}
}

// WithRetention sets how long consumed rows are kept. Zero deletes them as
// soon as every group has committed past them.
func (s *Subscriber) WithRetention(d time.Duration) *Subscriber {
	s.retention = d
	return s
}

// Consume delivers messages in id order to handle until ctx is done.
// The offset advances after handle returns, whatever the outcome of the
// handling; a message in flight at shutdown is delivered again.
func (s *Subscriber) Consume(ctx context.Context, handle func(ctx context.Context, key string, value []byte, offset int64)) error {
	for {
		n, err := s.pollOnce(ctx, handle)
		if ctx.Err() != nil {
			return nil
		}
		if err != nil {
			s.log.WarnContext(ctx, "queue poll failed", slog.String("error", err.Error()))
		}
		if err != nil || n == 0 {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(s.pollInterval):
			}
		}
	}
}

// Close is a no-op; the pool is owned by the caller.
func (s *Subscriber) Close() error { return nil }

func (s *Subscriber) pollOnce(ctx context.Context, handle func(ctx context.Context, key string, value []byte, offset int64)) (int, error) {
	if ctx.Err() != nil {
		return 0, nil
	}

	// Offset bookkeeping ignores cancellation so that messages handled
	// before shutdown stay committed.
	dbCtx := context.WithoutCancel(ctx)
	handled := 0

	err := pgx.BeginFunc(dbCtx, s.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(dbCtx, ensureOffsetSQL, s.groupID, s.topic); err != nil {
			return fmt.Errorf("ensure offset: %w", err)
		}

		var lastID int64
		if err := tx.QueryRow(dbCtx, lockOffsetSQL, s.groupID, s.topic).Scan(&lastID); err != nil {
			return fmt.Errorf("lock offset: %w", err)
		}

		rows, err := tx.Query(dbCtx, fetchSQL, s.topic, lastID, s.batchSize)
		if err != nil {
			return fmt.Errorf("fetch: %w", err)
		}
		type record struct {
			id    int64
			key   string
			value []byte
		}
		var batch []record
		for rows.Next() {
			var rec record
			if err := rows.Scan(&rec.id, &rec.key, &rec.value); err != nil {
				rows.Close()
				return fmt.Errorf("scan: %w", err)
			}
			batch = append(batch, rec)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return fmt.Errorf("fetch: %w", err)
		}

		for _, rec := range batch {
			handle(ctx, rec.key, rec.value, rec.id)
			if ctx.Err() != nil {
				break
			}
			lastID = rec.id
			handled++
		}

		if handled == 0 {
			return nil
		}
		if _, err := tx.Exec(dbCtx, commitOffsetSQL, s.groupID, s.topic, lastID); err != nil {
			return fmt.Errorf("commit offset: %w", err)
		}
		tag, err := tx.Exec(dbCtx, pruneSQL, s.topic, s.retention.Seconds())
		if err != nil {
			return fmt.Errorf("prune: %w", err)
		}
		if n := tag.RowsAffected(); n > 0 {
			s.log.DebugContext(ctx, "queue pruned", slog.Int64("rows", n))
		}
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return handled, fmt.Errorf("queue consume: %w: %w", domain.ErrDependencyUnavailable, err)
	}
	return handled, nil
}
