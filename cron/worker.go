package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"aamer/config"
	"aamer/services/chat"
	"aamer/services/tasks"

	"github.com/hibiken/asynq"
)

// InitCleanupWorker starts the asynq worker that prunes old chat messages
// and a ticker that enqueues the cleanup task every interval. Callers skip
// this entirely when no interval is configured.
func InitCleanupWorker(chatSvc chat.ChatService, interval time.Duration) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeMessagesCleanup, handleCleanupTask(chatSvc))

	go func() {
		log.Println("[CleanupWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[CleanupWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Println("[CleanupWorker] Max retry attempts reached; worker disabled.")
					return
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	go enqueueLoop(redisOpts, interval)
}

func handleCleanupTask(chatSvc chat.ChatService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.CleanupPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[CleanupHandler] Invalid payload: %v", err)
			return err
		}

		deleted, err := chatSvc.CleanupOldMessages(ctx)
		if err != nil {
			log.Printf("[CleanupHandler] Cleanup failed: %v", err)
			return err
		}
		log.Printf("[CleanupHandler] Deleted %d old messages (enqueued %s)", deleted, p.EnqueuedAt.Format(time.RFC3339))
		return nil
	}
}

func enqueueLoop(redisOpts asynq.RedisClientOpt, interval time.Duration) {
	client := asynq.NewClient(redisOpts)
	defer client.Close()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		task, err := tasks.NewCleanupTask()
		if err != nil {
			log.Printf("[CleanupWorker] Failed to build cleanup task: %v", err)
			continue
		}
		if _, err := client.Enqueue(task); err != nil {
			log.Printf("[CleanupWorker] Failed to enqueue cleanup task: %v", err)
		}
	}
}
