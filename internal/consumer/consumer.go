package consumer

import (
	"context"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"

	"github.com/BarkinBalci/marketing-effectiveness-service/internal/config"
	"github.com/BarkinBalci/marketing-effectiveness-service/internal/instrumentation"
	"github.com/BarkinBalci/marketing-effectiveness-service/internal/queue"
	"github.com/BarkinBalci/marketing-effectiveness-service/internal/repository"
)

const stageBufferSize = 100

// Consumer runs the receive, parse and batch-write stages that move
// touchpoints from SQS into the repository
type Consumer struct {
	receiver    *Receiver
	parser      *ParserStage
	batchWriter *BatchWriter
	bufferSize  int
}

// NewConsumer wires the pipeline stages from configuration
func NewConsumer(cfg *config.Config, queueConsumer queue.QueueConsumer, repo repository.TouchpointRepository, metrics *instrumentation.Metrics, log *zap.Logger) *Consumer {
	receiver := NewReceiver(queueConsumer, ReceiverConfig{
		MaxMessages:     cfg.Consumer.MaxMessages,
		WaitTimeSeconds: cfg.Consumer.WaitTimeSeconds,
		BufferSize:      stageBufferSize,
	}, log)

	parser := NewParserStage(queueConsumer, NewJSONTouchpointParser(), log)

	batchWriter := NewBatchWriter(repo, BatchWriterConfig{
		MinBatchSize: cfg.Consumer.BatchSizeMin,
		MaxBatchSize: cfg.Consumer.BatchSizeMax,
		FlushTimeout: time.Duration(cfg.Consumer.BatchTimeoutSec) * time.Second,
	}, metrics, log)

	return &Consumer{
		receiver:    receiver,
		parser:      parser,
		batchWriter: batchWriter,
		bufferSize:  stageBufferSize,
	}
}

// Start runs the pipeline and blocks until every stage has stopped
func (c *Consumer) Start(ctx context.Context) error {
	bufferSize := c.bufferSize
	if bufferSize <= 0 {
		bufferSize = stageBufferSize
	}
	messageChan := make(chan types.Message, bufferSize)
	envelopeChan := make(chan *Envelope, bufferSize)

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		c.receiver.Start(ctx, messageChan)
	}()

	go func() {
		defer wg.Done()
		c.parser.Start(ctx, messageChan, envelopeChan)
	}()

	go func() {
		defer wg.Done()
		c.batchWriter.Start(ctx, envelopeChan)
	}()

	wg.Wait()
	return nil
}
