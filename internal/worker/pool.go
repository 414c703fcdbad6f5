package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	QueueAlerts = "jobs:alerts"

	maxAttempts = 3
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type     string          `json:"type"`
	Payload  json.RawMessage `json:"payload"`
	Attempts int             `json:"attempts"`
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueLowStockAlert pushes a low-stock alert job to Redis.
func (d *Dispatcher) EnqueueLowStockAlert(ctx context.Context, payload LowStockAlertPayload) error {
	return d.enqueue(ctx, QueueAlerts, "low_stock_alert", payload)
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: jobType, Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}

// WorkerHandlers groups the processors the pool dispatches to.
type WorkerHandlers struct {
	Alert *AlertWorker
}

// StartWorkerPool launches numWorkers goroutines consuming the alert queue.
// Each goroutine blocks on BRPOP — zero CPU when idle.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, handlers *WorkerHandlers, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, handlers, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, handlers *WorkerHandlers, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, QueueAlerts).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			processJob(ctx, rdb, handlers, result[0], result[1])
		}
	}
}

func processJob(ctx context.Context, rdb *redis.Client, handlers *WorkerHandlers, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("worker: undecodable job discarded")
		return
	}

	var err error
	switch job.Type {
	case "low_stock_alert":
		err = handlers.Alert.Process(ctx, job.Payload)
	default:
		log.Warn().Str("type", job.Type).Msg("worker: unknown job type discarded")
		return
	}
	if err == nil {
		return
	}

	job.Attempts++
	if job.Attempts >= maxAttempts {
		SendToDLQ(ctx, rdb, queue, job.Type, job.Payload, err.Error(), job.Attempts)
		return
	}

	// Re-enqueue for another attempt.
	if encoded, mErr := json.Marshal(job); mErr == nil {
		if pushErr := rdb.LPush(ctx, queue, encoded).Err(); pushErr != nil {
			log.Error().Err(pushErr).Str("type", job.Type).Msg("worker: retry enqueue failed")
		}
	}
}
