package server

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/invaderrssofficial-source/invaders.final/internal/metrics"
)

const sinkWriteTimeout = 5 * time.Second

// AuditManager batches audit entries and hands them to a sink from a small
// worker pool. Entries are flushed when a batch fills up or the flush
// timeout passes since the first entry of the batch.
type AuditManager struct {
	sink        AuditSink
	topic       string
	workerCount int
	batchSize   int
	timeout     time.Duration
	logger      *zap.Logger

	inputChan  chan AuditLogEntry
	batchChan  chan []AuditLogEntry
	shutdownCh chan struct{}
	once       sync.Once
	startOnce  sync.Once

	wg sync.WaitGroup
}

func NewAuditManager(sink AuditSink, topic string, workerCount, batchSize int, timeout time.Duration, logger *zap.Logger) *AuditManager {
	if workerCount < 1 {
		workerCount = 1
	}
	if batchSize < 1 {
		batchSize = 1
	}
	return &AuditManager{
		sink:        sink,
		topic:       topic,
		workerCount: workerCount,
		batchSize:   batchSize,
		timeout:     timeout,
		logger:      logger,
		inputChan:   make(chan AuditLogEntry, workerCount*batchSize*2),
		batchChan:   make(chan []AuditLogEntry, workerCount*2),
		shutdownCh:  make(chan struct{}),
	}
}

// Start launches the aggregator and workers. They run until Shutdown so
// entries from requests still draining are persisted.
func (m *AuditManager) Start() {
	m.startOnce.Do(func() {
		m.logger.Info("Starting AuditManager",
			zap.Int("workers", m.workerCount),
			zap.Int("batch_size", m.batchSize),
			zap.String("topic", m.topic),
		)

		m.wg.Add(1)
		go m.runAggregator()

		for i := 0; i < m.workerCount; i++ {
			m.wg.Add(1)
			go m.runWorker(i)
		}
	})
}

func (m *AuditManager) Shutdown(ctx context.Context) {
	m.once.Do(func() {
		m.logger.Info("Initiating AuditManager shutdown")
		close(m.shutdownCh)

		done := make(chan struct{})
		go func() {
			m.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			m.logger.Info("AuditManager shutdown completed")
		case <-ctx.Done():
			m.logger.Warn("AuditManager shutdown interrupted", zap.Error(ctx.Err()))
		}
	})
}

// LogEntry queues without waiting when there is room, even if ctx is
// already done. It never blocks past ctx; entries that cannot be queued are
// written to the log instead.
func (m *AuditManager) LogEntry(ctx context.Context, entry AuditLogEntry) {
	metrics.AuditPendingEntries.Inc()

	select {
	case <-m.shutdownCh:
		m.dropEntry(entry)
		return
	default:
	}

	select {
	case m.inputChan <- entry:
		return
	default:
	}

	select {
	case m.inputChan <- entry:
	case <-ctx.Done():
		m.dropEntry(entry)
	case <-m.shutdownCh:
		m.dropEntry(entry)
	}
}

func (m *AuditManager) dropEntry(entry AuditLogEntry) {
	metrics.AuditPendingEntries.Dec()
	m.emergencyLog(entry)
}

func (m *AuditManager) runAggregator() {
	defer m.wg.Done()

	var (
		batch    []AuditLogEntry
		timer    *time.Timer
		timeoutC <-chan time.Time
	)

	defer func() {
		if timer != nil {
			timer.Stop()
		}
		// pick up whatever was queued before the stop signal
	drain:
		for {
			select {
			case entry := <-m.inputChan:
				batch = append(batch, entry)
			default:
				break drain
			}
		}
		if len(batch) > 0 {
			m.dispatchBatch(batch)
		}
		close(m.batchChan)
	}()

	for {
		select {
		case entry := <-m.inputChan:
			batch = append(batch, entry)
			if len(batch) >= m.batchSize {
				m.dispatchBatch(batch)
				batch = nil
				timeoutC = nil
			} else if len(batch) == 1 {
				if timer != nil {
					timer.Stop()
				}
				timer = time.NewTimer(m.timeout)
				timeoutC = timer.C
			}

		case <-timeoutC:
			m.dispatchBatch(batch)
			batch = nil
			timeoutC = nil

		case <-m.shutdownCh:
			return
		}
	}
}

func (m *AuditManager) dispatchBatch(batch []AuditLogEntry) {
	if len(batch) == 0 {
		return
	}
	batchCopy := make([]AuditLogEntry, len(batch))
	copy(batchCopy, batch)

	select {
	case m.batchChan <- batchCopy:
	default:
		m.writeBatch(-1, batchCopy)
	}
}

func (m *AuditManager) runWorker(id int) {
	defer m.wg.Done()

	for batch := range m.batchChan {
		m.writeBatch(id, batch)
	}
	m.logger.Debug("Audit worker exiting", zap.Int("worker", id))
}

func (m *AuditManager) writeBatch(workerID int, batch []AuditLogEntry) {
	defer metrics.AuditPendingEntries.Sub(float64(len(batch)))

	ctx, cancel := context.WithTimeout(context.Background(), sinkWriteTimeout)
	defer cancel()

	if err := m.sink.WriteAuditBatch(ctx, m.topic, batch); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("write_audit_batch").Inc()
		m.logger.Error("failed to write audit batch",
			zap.Int("worker", workerID),
			zap.Int("size", len(batch)),
			zap.Error(err),
		)
		for _, entry := range batch {
			m.emergencyLog(entry)
		}
	}
}

func (m *AuditManager) emergencyLog(entry AuditLogEntry) {
	m.logger.Warn("audit entry not persisted",
		zap.String("procedure", entry.Procedure),
		zap.String("request_id", entry.RequestID),
		zap.String("user_id", entry.UserID),
		zap.String("entity_id", entry.EntityID),
		zap.String("outcome", entry.Outcome),
		zap.String("error", entry.Error),
	)
}
