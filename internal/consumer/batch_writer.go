package consumer

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BarkinBalci/marketing-effectiveness-service/internal/domain"
	"github.com/BarkinBalci/marketing-effectiveness-service/internal/instrumentation"
	"github.com/BarkinBalci/marketing-effectiveness-service/internal/repository"
)

const finalFlushTimeout = 10 * time.Second

// BatchWriterConfig configures the batch writer
type BatchWriterConfig struct {
	// MinBatchSize holds back a timeout flush for one extra tick while the
	// batch is smaller. Zero disables the floor.
	MinBatchSize int
	MaxBatchSize int
	FlushTimeout time.Duration
}

// BatchWriter buffers envelopes and writes them to the repository when the
// batch is full or the flush timeout elapses
type BatchWriter struct {
	repository repository.TouchpointRepository
	config     BatchWriterConfig
	metrics    *instrumentation.Metrics
	log        *zap.Logger
}

// NewBatchWriter creates a new batch writer. metrics may be nil.
func NewBatchWriter(repo repository.TouchpointRepository, config BatchWriterConfig, metrics *instrumentation.Metrics, log *zap.Logger) *BatchWriter {
	return &BatchWriter{
		repository: repo,
		config:     config,
		metrics:    metrics,
		log:        log,
	}
}

// Start consumes envelopes until in closes or ctx is cancelled, flushing any
// buffered envelopes before returning
func (w *BatchWriter) Start(ctx context.Context, in <-chan *Envelope) {
	ticker := time.NewTicker(w.config.FlushTimeout)
	defer ticker.Stop()

	batch := make([]*Envelope, 0, w.config.MaxBatchSize)
	deferred := false

	for {
		select {
		case <-ctx.Done():
			w.log.Info("Batch writer shutting down")
			w.flushFinal(ctx, batch)
			return

		case envelope, ok := <-in:
			if !ok {
				w.log.Info("Batch writer input channel closed")
				w.flushFinal(ctx, batch)
				return
			}

			batch = append(batch, envelope)

			if len(batch) >= w.config.MaxBatchSize {
				w.log.Debug("Batch size threshold reached", zap.Int("batch_size", len(batch)))
				w.processBatch(ctx, batch)
				batch = make([]*Envelope, 0, w.config.MaxBatchSize)
				deferred = false
				ticker.Reset(w.config.FlushTimeout)
			}

		case <-ticker.C:
			if len(batch) == 0 {
				continue
			}
			if len(batch) < w.config.MinBatchSize && !deferred {
				w.log.Debug("Batch below minimum size, waiting one more interval",
					zap.Int("envelope_count", len(batch)),
					zap.Int("min_batch_size", w.config.MinBatchSize))
				deferred = true
				continue
			}
			w.log.Debug("Batch timeout reached", zap.Int("envelope_count", len(batch)))
			w.processBatch(ctx, batch)
			batch = make([]*Envelope, 0, w.config.MaxBatchSize)
			deferred = false
		}
	}
}

// flushFinal writes what is left on shutdown. The parent context may already
// be cancelled, so the write gets its own deadline.
func (w *BatchWriter) flushFinal(ctx context.Context, batch []*Envelope) {
	if len(batch) == 0 {
		return
	}
	w.log.Info("Flushing final batch", zap.Int("envelope_count", len(batch)))

	flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), finalFlushTimeout)
	defer cancel()
	w.processBatch(flushCtx, batch)
}

// processBatch inserts the batch and acks every envelope only if all rows
// were written; otherwise every envelope is nacked
func (w *BatchWriter) processBatch(ctx context.Context, envelopes []*Envelope) {
	if len(envelopes) == 0 {
		return
	}

	touchpoints := make([]*domain.Touchpoint, len(envelopes))
	for i, env := range envelopes {
		touchpoints[i] = env.Touchpoint
	}

	insertedCount, err := w.repository.InsertBatch(ctx, touchpoints)
	if err != nil {
		w.log.Error("Failed to insert touchpoint batch",
			zap.Error(err),
			zap.Int("touchpoint_count", len(touchpoints)))
		w.metrics.BatchInsert(instrumentation.BatchFailure, len(touchpoints))
		w.nackAll(ctx, envelopes)
		return
	}

	if insertedCount != len(touchpoints) {
		w.log.Warn("Partial insert success",
			zap.Int("inserted", insertedCount),
			zap.Int("expected", len(touchpoints)))
		w.metrics.BatchInsert(instrumentation.BatchPartial, len(touchpoints))
		w.nackAll(ctx, envelopes)
		return
	}

	w.log.Info("Inserted touchpoint batch", zap.Int("count", insertedCount))
	w.metrics.BatchInsert(instrumentation.BatchSuccess, insertedCount)
	w.ackAll(ctx, envelopes)
}

func (w *BatchWriter) ackAll(ctx context.Context, envelopes []*Envelope) {
	for _, env := range envelopes {
		if err := env.Ack(ctx); err != nil {
			w.log.Error("Failed to ack envelope",
				zap.String("touchpoint_id", env.Touchpoint.TouchpointID),
				zap.Error(err))
		}
	}
}

func (w *BatchWriter) nackAll(ctx context.Context, envelopes []*Envelope) {
	for _, env := range envelopes {
		if err := env.Nack(ctx); err != nil {
			w.log.Error("Failed to nack envelope",
				zap.String("touchpoint_id", env.Touchpoint.TouchpointID),
				zap.Error(err))
		}
	}
}
