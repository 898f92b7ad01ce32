package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeMessagesCleanup = "messages:cleanup"

// CleanupPayload records when the cleanup was enqueued.
type CleanupPayload struct {
	EnqueuedAt time.Time `json:"enqueuedAt"`
}

func NewCleanupTask() (*asynq.Task, error) {
	b, err := json.Marshal(CleanupPayload{EnqueuedAt: time.Now()})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeMessagesCleanup, b), nil
}
