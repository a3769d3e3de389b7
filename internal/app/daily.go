package app

import (
	"context"
	"fmt"
	"shadow_system/internal/models"
	"time"
)

// ProcessDailyStatus reads the user's daily quest ledger for the current day. A fresh
// day has no stored state and yields an empty, unfinished status.
func (app *App) ProcessDailyStatus(ctx context.Context, userID int64) (*models.DailyStatus, error) {
	return app.db.GetDailyStatus(ctx, userID, DayKey(time.Now()))
}

// ProcessToggleQuest flips the completion mark of one daily quest for today. Toggling
// is rejected once the daily batch has been submitted for the day.
func (app *App) ProcessToggleQuest(ctx context.Context, userID int64, req models.ToggleQuestRequest) (*models.DailyStatus, bool, error) {
	if req.QuestID == 0 {
		return nil, false, fmt.Errorf("%w: quest ID is required", ErrValidation)
	}
	return app.db.ToggleDailyQuest(ctx, userID, DayKey(time.Now()), req.QuestID)
}

// ProcessCompleteDailyQuests credits the submitted daily batch and marks the day
// finished. The submission must name at least one quest and carry positive rewards;
// crediting and the finished flag are committed atomically by the storage layer,
// which also rejects a second submission for the same day.
func (app *App) ProcessCompleteDailyQuests(ctx context.Context, userID int64, req models.CompleteDailyQuestsRequest) (*models.DailySummary, error) {
	if len(req.CompletedQuestIDs) == 0 {
		return nil, ErrNoQuestsSelected
	}
	if req.TotalXP <= 0 || req.TotalCoins <= 0 {
		return nil, fmt.Errorf("%w: missing reward data", ErrValidation)
	}
	for _, delta := range req.SkillXPUpdates {
		if delta < 0 {
			return nil, fmt.Errorf("%w: skill XP updates must be non-negative", ErrValidation)
		}
	}

	return app.db.CompleteDailyBatch(ctx, userID, DayKey(time.Now()), req.CompletedQuestIDs, req.TotalXP, req.TotalCoins, req.SkillXPUpdates)
}

// ProcessCompleteDungeonQuest completes a dungeon quest for the calling user. The
// quest pool is shared: any authenticated user may complete any dungeon quest and
// receives its rewards.
func (app *App) ProcessCompleteDungeonQuest(ctx context.Context, userID, questID int64) (*models.DungeonCompletion, error) {
	return app.db.CompleteDungeonQuest(ctx, userID, questID)
}

// ProcessAcceptPenaltyQuest records a penalty completion for today and credits its XP.
// Unlike dungeon quests, only the quest owner may accept a penalty quest.
func (app *App) ProcessAcceptPenaltyQuest(ctx context.Context, userID, questID int64) (*models.PenaltyCompletion, error) {
	completion, err := app.db.AcceptPenaltyQuest(ctx, userID, questID, DayKey(time.Now()))
	if err != nil {
		return nil, err
	}
	completion.Level = Rank(completion.TotalXP)
	completion.NextAvailable = "Tomorrow at 12:00 AM"
	return completion, nil
}

// ProcessPenaltyCleanup prunes penalty ledger rows older than yesterday. The reset is
// otherwise lazy; this endpoint only keeps the ledger from growing without bound.
func (app *App) ProcessPenaltyCleanup(ctx context.Context) (int64, error) {
	yesterday := DayKey(time.Now().AddDate(0, 0, -1))
	return app.db.CleanupPenaltyCompletions(ctx, yesterday)
}
