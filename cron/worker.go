package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"atithi/config"
	catalogRepo "atithi/database/repository/catalog"
	"atithi/models"
	"atithi/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeHousekeepingRemind = "housekeeping:remind"

// HousekeepingReminderPayload identifies a unit stuck in a housekeeping hold.
type HousekeepingReminderPayload struct {
	UnitType   string `json:"unitType"`
	UnitNumber string `json:"unitNumber"`
	HeldSince  string `json:"heldSince"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitHousekeepingWorker runs the async worker and the periodic sweep in the
// background. Units held past the configured age get a reminder task; actual
// delivery to housekeeping staff happens outside this service, the handler
// records the reminder.
func InitHousekeepingWorker(catalog catalogRepo.CatalogRepository) {
	logger := utils.GetLogger()

	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeHousekeepingRemind, handleHousekeepingReminder)

	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Error("housekeeping worker stopped", zap.Error(err))
		}
	}()

	go sweepLoop(catalog)
}

func handleHousekeepingReminder(ctx context.Context, t *asynq.Task) error {
	var p HousekeepingReminderPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to decode reminder payload: %w", err)
	}
	utils.GetLogger().Info("housekeeping reminder",
		zap.String("unitType", p.UnitType),
		zap.String("unit", p.UnitNumber),
		zap.String("heldSince", p.HeldSince))
	return nil
}

// sweepLoop enqueues a reminder for every unit whose open housekeeping hold
// is older than the configured threshold.
func sweepLoop(catalog catalogRepo.CatalogRepository) {
	logger := utils.GetLogger()
	client := asynq.NewClient(redisOpts())
	defer client.Close()

	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		threshold := time.Duration(config.AppConfig.HousekeepingRemindAfterHours) * time.Hour
		cutoff := time.Now().Add(-threshold)

		types, err := catalog.GetUnitTypes(context.Background(), "")
		if err != nil {
			logger.Error("housekeeping sweep: failed to load catalog", zap.Error(err))
			continue
		}

		for _, ut := range types {
			for _, unit := range ut.Units {
				heldSince, held := openHoldSince(unit)
				if !held || heldSince.After(cutoff) {
					continue
				}
				payload, err := json.Marshal(HousekeepingReminderPayload{
					UnitType:   ut.Name,
					UnitNumber: unit.Number,
					HeldSince:  heldSince.Format(utils.DateTimeLayout),
				})
				if err != nil {
					continue
				}
				if _, err := client.Enqueue(asynq.NewTask(TypeHousekeepingRemind, payload)); err != nil {
					logger.Error("failed to enqueue housekeeping reminder",
						zap.String("unit", unit.Number), zap.Error(err))
				}
			}
		}
	}
}

// openHoldSince reports when the unit entered its open housekeeping hold,
// if it is in one.
func openHoldSince(unit models.Unit) (time.Time, bool) {
	for _, occ := range unit.BookedDates {
		if occ.Status != models.StatusCheckOut && occ.Status != models.StatusPending {
			continue
		}
		if occ.CheckOut != "" || occ.CheckIn == "" {
			continue
		}
		since, err := utils.ParseTimestamp(occ.CheckIn)
		if err != nil {
			continue
		}
		return since, true
	}
	return time.Time{}, false
}
