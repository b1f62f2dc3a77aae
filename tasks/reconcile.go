package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"stayhaven/config"

	"github.com/hibiken/asynq"
)

// TypePaymentReconcile marks a captured payment whose booking records failed
// to persist. These require manual follow-up: funds moved but no booking
// exists.
const TypePaymentReconcile = "payment:reconcile"

// PaymentReconcilePayload carries everything an operator needs to trace a
// stranded charge.
type PaymentReconcilePayload struct {
	BookingID  string `json:"bookingId"`
	ListingID  string `json:"listingId"`
	TenantID   string `json:"tenantId"`
	HostWallet string `json:"hostWallet"`
	Amount     int64  `json:"amount"`
	Cause      string `json:"cause"`
}

// Reconciler enqueues payment reconciliation work.
type Reconciler interface {
	EnqueuePaymentReconcile(ctx context.Context, p PaymentReconcilePayload) error
}

// AsynqReconciler implements Reconciler over an asynq queue in Redis.
type AsynqReconciler struct {
	client *asynq.Client
}

func queueRedisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// NewAsynqReconciler creates a Reconciler backed by asynq.
func NewAsynqReconciler() *AsynqReconciler {
	return &AsynqReconciler{client: asynq.NewClient(queueRedisOpts())}
}

// EnqueuePaymentReconcile queues a reconciliation task. Tasks are retained
// aggressively; losing one means losing the record of a stranded charge.
func (r *AsynqReconciler) EnqueuePaymentReconcile(ctx context.Context, p PaymentReconcilePayload) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal reconcile payload: %w", err)
	}

	task := asynq.NewTask(TypePaymentReconcile, payload)
	if _, err := r.client.EnqueueContext(ctx, task, asynq.MaxRetry(10)); err != nil {
		return fmt.Errorf("failed to enqueue reconcile task: %w", err)
	}
	return nil
}
