package worker

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"creatiq-server/modules/caption"
)

// StartWorker - watch the Redis queue and process generation jobs. Each job
// runs in its own goroutine; per-feature busy gates keep one in-flight
// generation per feature. Blocks forever, run it on a goroutine.
func StartWorker(rdb *redis.Client, service *caption.Service) {
	log.Println("🔄 Generation queue worker starting...")
	log.Printf("👀 Watching queue: %s", QueueKey)

	ctx := context.Background()

	for {
		result, err := rdb.BRPop(ctx, 0, QueueKey).Result()
		if err != nil {
			log.Printf("❌ Redis BRPOP error: %v", err)
			time.Sleep(5 * time.Second)
			continue
		}

		// result[0] is the queue name, result[1] the job payload
		payload := result[1]

		var job Job
		if err := json.Unmarshal([]byte(payload), &job); err != nil {
			log.Printf("❌ Dropping unreadable job payload: %v", err)
			continue
		}

		log.Printf("🎯 Received job: %s (%s)", job.JobID, job.Kind)

		go processJob(ctx, rdb, service, job)
	}
}

// processJob - run one generation job and store its result for polling. The
// orchestrator never fails a generation outright (fallback applies), so a
// failed status only means an unknown job kind or a Redis write problem.
func processJob(ctx context.Context, rdb *redis.Client, service *caption.Service, job Job) {
	markStatus(ctx, rdb, job, StatusProcessing)
	defer releaseBusy(ctx, rdb, job.Kind)

	jobResult := JobResult{
		JobID:  job.JobID,
		Kind:   job.Kind,
		Status: StatusCompleted,
	}

	switch job.Kind {
	case KindCaption:
		outcome := service.Generate(ctx, caption.CaptionRequest{
			Topic:         job.Topic,
			Details:       job.Details,
			DesiredLength: job.DesiredLength,
			Tone:          job.Tone,
		})
		jobResult.Caption = outcome.Result.Caption
		jobResult.Hashtags = outcome.Result.Hashtags
		jobResult.FallbackApplied = outcome.FallbackApplied
		jobResult.ReuseNotice = outcome.ReuseNotice

	case KindScript:
		outcome := service.GenerateScript(ctx, job.Idea)
		jobResult.Script = outcome.Result.Script
		jobResult.Suggestions = outcome.Result.ShootingSuggestions
		jobResult.FallbackApplied = outcome.FallbackApplied

	default:
		log.Printf("⚠️  Unknown job kind %q for job %s", job.Kind, job.JobID)
		jobResult.Status = StatusFailed
		jobResult.ErrorMessage = "unknown job kind"
	}

	jobResult.CompletedAt = time.Now().UTC()

	if err := storeResult(ctx, rdb, jobResult); err != nil {
		log.Printf("❌ Failed to store result for job %s: %v", job.JobID, err)
		return
	}

	log.Printf("✅ Job %s finished (status=%s, fallback=%v)",
		job.JobID, jobResult.Status, jobResult.FallbackApplied)
}

// markStatus - record the in-progress state under the result key
func markStatus(ctx context.Context, rdb *redis.Client, job Job, status string) {
	res := JobResult{
		JobID:  job.JobID,
		Kind:   job.Kind,
		Status: status,
	}
	if err := storeResult(ctx, rdb, res); err != nil {
		log.Printf("⚠️  Failed to mark job %s as %s: %v", job.JobID, status, err)
	}
}

func storeResult(ctx context.Context, rdb *redis.Client, res JobResult) error {
	data, err := json.Marshal(res)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, resultKeyPrefix+res.JobID, data, ResultTTL).Err()
}

// AcquireBusy - per-feature gate, true when this feature had no in-flight job
func AcquireBusy(ctx context.Context, rdb *redis.Client, kind string) bool {
	ok, err := rdb.SetNX(ctx, busyKeyPrefix+kind, "1", BusyTTL).Result()
	if err != nil {
		log.Printf("⚠️  Busy gate check failed for %s: %v", kind, err)
		return true // do not wedge the feature on a Redis hiccup
	}
	return ok
}

func releaseBusy(ctx context.Context, rdb *redis.Client, kind string) {
	if err := rdb.Del(ctx, busyKeyPrefix+kind).Err(); err != nil {
		log.Printf("⚠️  Failed to release busy gate for %s: %v", kind, err)
	}
}
