package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const QueueCotizaciones = "jobs:cotizaciones"

const maxIntentos = 3

// Job is the generic envelope for all async tasks.
type Job struct {
	Type     string          `json:"type"`
	Payload  json.RawMessage `json:"payload"`
	Intentos int             `json:"intentos"`
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EncolarCotizacion pushes a quote-email job to Redis.
func (d *Dispatcher) EncolarCotizacion(ctx context.Context, cotizacionID int, correo string) error {
	return d.enqueue(ctx, QueueCotizaciones, "cotizacion_email", CotizacionEmailPayload{
		CotizacionID: cotizacionID,
		Correo:       correo,
	})
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

// requeue reinserta un job fallido con el contador de intentos ya subido.
func requeue(ctx context.Context, rdb *redis.Client, queue string, job Job) {
	encoded, err := json.Marshal(job)
	if err != nil {
		return
	}
	if err := rdb.LPush(ctx, queue, encoded).Err(); err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("no se pudo reencolar el job")
	}
}

// StartWorkerPool launches numWorkers goroutines consuming the quote queue.
// Each goroutine blocks on BRPOP — zero CPU when idle.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, numWorkers int, emailWorker *EmailWorker) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, i, emailWorker)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, id int, emailWorker *EmailWorker) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, QueueCotizaciones).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			processJob(ctx, rdb, result[0], result[1], emailWorker)
		}
	}
}

func processJob(ctx context.Context, rdb *redis.Client, queue, raw string, emailWorker *EmailWorker) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("failed to unmarshal job")
		return
	}

	if err := emailWorker.Process(ctx, job.Payload); err != nil {
		job.Intentos++
		if job.Intentos >= maxIntentos {
			EnviarADLQ(ctx, rdb, queue, job.Type, job.Payload, err.Error(), job.Intentos)
			return
		}
		log.Warn().Err(err).
			Str("type", job.Type).
			Int("intento", job.Intentos).
			Msg("job falló, se reencola")
		requeue(ctx, rdb, queue, job)
	}
}
