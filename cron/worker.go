package cron

import (
	"context"
	"encoding/json"
	"log"

	"lenshub/config"
	"lenshub/models"
	"lenshub/services/tasks"
	"lenshub/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker() {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask)

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[ReminderWorker] worker stopped: %v", err)
		}
	}()
}

func handleReminderTask(ctx context.Context, t *asynq.Task) error {
	var payload models.ReminderPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return err
	}

	// Delivery channels (mail/push) hang off here; for now the reminder is
	// recorded in the service log.
	utils.GetLogger().Info("shoot reminder due",
		zap.String("bookingId", payload.BookingID),
		zap.String("userId", payload.UserID),
		zap.String("photographerId", payload.PhotographerID),
		zap.String("date", payload.Date))
	return nil
}
