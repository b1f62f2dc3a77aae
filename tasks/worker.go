package tasks

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"stayhaven/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReconcileWorker runs the async worker in background.
func InitReconcileWorker() {
	srv := asynq.NewServer(
		queueRedisOpts(),
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypePaymentReconcile, handlePaymentReconcile)

	// Start async worker with retry logic
	go func() {
		log.Println("[ReconcileWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReconcileWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReconcileWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handlePaymentReconcile surfaces stranded charges for manual follow-up.
// There is no automated compensation: an operator has to either refund the
// charge or re-create the booking records.
func handlePaymentReconcile(ctx context.Context, task *asynq.Task) error {
	logger := utils.GetLogger()

	var p PaymentReconcilePayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		logger.Error("reconcile task has invalid payload", zap.Error(err))
		return err
	}

	logger.Error("captured payment without persisted booking; manual reconciliation required",
		zap.String("bookingId", p.BookingID),
		zap.String("listingId", p.ListingID),
		zap.String("tenantId", p.TenantID),
		zap.String("hostWallet", p.HostWallet),
		zap.Int64("amount", p.Amount),
		zap.String("cause", p.Cause),
	)
	return nil
}
