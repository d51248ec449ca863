package jobs

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"time"

	"mnemo/internal/model"

	"gorm.io/gorm"
)

// Worker maintains the per-deck Due/New counters. Handlers never touch the
// statistic columns directly; they enqueue a refresh and the worker rebuilds
// the counts from the card table.
type Worker struct {
	ID   string
	Repo *Repo
	DB   *gorm.DB
}

func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(800 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			job, err := w.Repo.Claim(w.ID)
			if err != nil {
				log.Printf("worker claim error: %v\n", err)
				continue
			}
			if job == nil {
				continue
			}
			w.handle(job)
		}
	}
}

func (w *Worker) handle(job *Job) {
	switch job.Type {
	case TypeDeckStatsRefresh:
		w.handleDeckStats(job)
	default:
		_ = w.Repo.MarkFailed(job.ID, "unknown job type")
	}
}

func (w *Worker) handleDeckStats(job *Job) {
	type payload struct {
		DeckID uint64 `json:"deck_id"`
	}
	var p payload
	if err := json.Unmarshal(job.Payload, &p); err != nil {
		_ = w.Repo.MarkFailed(job.ID, "bad payload")
		return
	}

	if err := RefreshDeckStatistic(w.DB, p.DeckID); err != nil {
		w.retry(job, "stats refresh error")
		return
	}
	_ = w.Repo.MarkDone(job.ID)
}

// RefreshDeckStatistic recomputes one deck's counters: Due counts
// unsuspended cards whose due date has passed, New counts cards never
// scheduled. A deck that vanished (hard delete) is a no-op, not an error.
func RefreshDeckStatistic(db *gorm.DB, deckID uint64) error {
	now := time.Now().UTC()

	var due int64
	err := db.Model(&model.Card{}).
		Where("deck_id = ? AND is_suspended = ? AND due_date <= ?", deckID, false, now).
		Count(&due).Error
	if err != nil {
		return err
	}

	var fresh int64
	err = db.Model(&model.Card{}).
		Where("deck_id = ?", deckID).
		Where(map[string]any{"interval": 0}).
		Count(&fresh).Error
	if err != nil {
		return err
	}

	return db.Model(&model.Deck{}).
		Where("id = ?", deckID).
		UpdateColumns(map[string]any{
			"stat_due": due,
			"stat_new": fresh,
		}).Error
}

func (w *Worker) retry(job *Job, errMsg string) {
	attempts := job.Attempts + 1
	if attempts >= job.MaxAttempts {
		_ = w.Repo.MarkFailed(job.ID, errMsg)
		return
	}

	sec := math.Min(math.Pow(2, float64(attempts)), 600)
	next := time.Now().Add(time.Duration(sec) * time.Second)

	_ = w.Repo.RetryLater(job.ID, attempts, next, errMsg)
}
