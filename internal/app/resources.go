package app

import (
	"context"
	"fmt"
	"shadow_system/internal/models"
	"strings"
	"time"
)

// Field limits shared by the quest entities.
const (
	questNameMin = 3
	questNameMax = 100
	rewardMax    = 10000
)

// validateQuestFields checks the common quest creation fields: a trimmed name of
// 3 to 100 characters, xp and coins within 1..10000 (coins only when required),
// and a non-empty skill reference.
func validateQuestFields(name string, xp, coins int, skill string, needsCoins bool) error {
	if len(name) < questNameMin || len(name) > questNameMax {
		return fmt.Errorf("%w: quest name must be between %d and %d characters", ErrValidation, questNameMin, questNameMax)
	}
	if xp < 1 || xp > rewardMax {
		return fmt.Errorf("%w: XP must be between 1 and %d", ErrValidation, rewardMax)
	}
	if needsCoins && (coins < 1 || coins > rewardMax) {
		return fmt.Errorf("%w: coins must be between 1 and %d", ErrValidation, rewardMax)
	}
	if skill == "" {
		return fmt.Errorf("%w: skill is required", ErrValidation)
	}
	return nil
}

// ProcessListDailyQuests retrieves the user's daily quests.
func (app *App) ProcessListDailyQuests(ctx context.Context, userID int64) ([]models.DailyQuest, error) {
	return app.db.ListDailyQuests(ctx, userID)
}

// ProcessCreateDailyQuest validates and creates a daily quest owned by the user.
func (app *App) ProcessCreateDailyQuest(ctx context.Context, userID int64, req models.CreateQuestRequest) (*models.DailyQuest, error) {
	name := strings.TrimSpace(req.Name)
	skill := strings.TrimSpace(req.Skill)
	if err := validateQuestFields(name, req.XP, req.Coins, skill, true); err != nil {
		return nil, err
	}

	return app.db.CreateDailyQuest(ctx, &models.DailyQuest{
		Name:      name,
		XP:        req.XP,
		Coins:     req.Coins,
		Skill:     skill,
		CreatedBy: userID,
	})
}

// ProcessUpdateDailyQuest updates the provided fields of the user's daily quest.
func (app *App) ProcessUpdateDailyQuest(ctx context.Context, userID, questID int64, req models.UpdateQuestRequest) (*models.DailyQuest, error) {
	if err := validateQuestUpdate(req, true); err != nil {
		return nil, err
	}
	return app.db.UpdateDailyQuest(ctx, questID, userID, req)
}

// ProcessDeleteDailyQuest removes the user's daily quest.
func (app *App) ProcessDeleteDailyQuest(ctx context.Context, userID, questID int64) (*models.DailyQuest, error) {
	return app.db.DeleteDailyQuest(ctx, questID, userID)
}

// validateQuestUpdate checks the fields present in a partial quest update.
func validateQuestUpdate(req models.UpdateQuestRequest, needsCoins bool) error {
	if req.Name != nil {
		if trimmed := strings.TrimSpace(*req.Name); len(trimmed) < questNameMin || len(trimmed) > questNameMax {
			return fmt.Errorf("%w: quest name must be between %d and %d characters", ErrValidation, questNameMin, questNameMax)
		}
	}
	if req.XP != nil && (*req.XP < 1 || *req.XP > rewardMax) {
		return fmt.Errorf("%w: XP must be between 1 and %d", ErrValidation, rewardMax)
	}
	if needsCoins && req.Coins != nil && (*req.Coins < 1 || *req.Coins > rewardMax) {
		return fmt.Errorf("%w: coins must be between 1 and %d", ErrValidation, rewardMax)
	}
	if req.Skill != nil && strings.TrimSpace(*req.Skill) == "" {
		return fmt.Errorf("%w: skill is required", ErrValidation)
	}
	return nil
}

// ProcessListDungeonQuests retrieves the user's dungeon quests.
func (app *App) ProcessListDungeonQuests(ctx context.Context, userID int64) ([]models.DungeonQuest, error) {
	return app.db.ListDungeonQuests(ctx, userID)
}

// ProcessCreateDungeonQuest validates and creates a dungeon quest. A title reward
// is required in addition to the common quest fields.
func (app *App) ProcessCreateDungeonQuest(ctx context.Context, userID int64, req models.CreateQuestRequest) (*models.DungeonQuest, error) {
	name := strings.TrimSpace(req.Name)
	skill := strings.TrimSpace(req.Skill)
	title := strings.TrimSpace(req.Title)
	if err := validateQuestFields(name, req.XP, req.Coins, skill, true); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	return app.db.CreateDungeonQuest(ctx, &models.DungeonQuest{
		Name:      name,
		XP:        req.XP,
		Coins:     req.Coins,
		Skill:     skill,
		Title:     title,
		CreatedBy: userID,
	})
}

// ProcessUpdateDungeonQuest updates the provided fields of the user's dungeon quest.
func (app *App) ProcessUpdateDungeonQuest(ctx context.Context, userID, questID int64, req models.UpdateQuestRequest) (*models.DungeonQuest, error) {
	if err := validateQuestUpdate(req, true); err != nil {
		return nil, err
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	return app.db.UpdateDungeonQuest(ctx, questID, userID, req)
}

// ProcessDeleteDungeonQuest removes the user's dungeon quest.
func (app *App) ProcessDeleteDungeonQuest(ctx context.Context, userID, questID int64) (*models.DungeonQuest, error) {
	return app.db.DeleteDungeonQuest(ctx, questID, userID)
}

// ProcessListPenaltyQuests retrieves the user's penalty quests with today's
// completion state derived from the ledger.
func (app *App) ProcessListPenaltyQuests(ctx context.Context, userID int64) ([]models.PenaltyQuest, error) {
	return app.db.ListPenaltyQuests(ctx, userID, DayKey(time.Now()))
}

// ProcessCreatePenaltyQuest validates and creates a penalty quest. Penalty quests
// award XP only, so no coin reward is accepted.
func (app *App) ProcessCreatePenaltyQuest(ctx context.Context, userID int64, req models.CreatePenaltyQuestRequest) (*models.PenaltyQuest, error) {
	name := strings.TrimSpace(req.Name)
	skill := strings.TrimSpace(req.Skill)
	if err := validateQuestFields(name, req.XP, 0, skill, false); err != nil {
		return nil, err
	}

	return app.db.CreatePenaltyQuest(ctx, &models.PenaltyQuest{
		Name:      name,
		XP:        req.XP,
		Skill:     skill,
		CreatedBy: userID,
	})
}

// ProcessDeletePenaltyQuest removes the user's penalty quest and its ledger entries.
func (app *App) ProcessDeletePenaltyQuest(ctx context.Context, userID, questID int64) (*models.PenaltyQuest, error) {
	return app.db.DeletePenaltyQuest(ctx, questID, userID)
}

// Skill field limits.
const (
	skillNameMin = 2
	skillNameMax = 50
	skillXPMax   = 100000
)

// ProcessListSkills retrieves the user's skills with derived levels.
func (app *App) ProcessListSkills(ctx context.Context, userID int64) ([]models.Skill, error) {
	return app.db.ListSkills(ctx, userID)
}

// ProcessCreateSkill validates and creates a skill owned by the user. Duplicate
// names per owner (case-insensitive) are rejected by the storage constraint.
func (app *App) ProcessCreateSkill(ctx context.Context, userID int64, req models.CreateSkillRequest) (*models.Skill, error) {
	name := strings.TrimSpace(req.Name)
	if len(name) < skillNameMin || len(name) > skillNameMax {
		return nil, fmt.Errorf("%w: skill name must be between %d and %d characters", ErrValidation, skillNameMin, skillNameMax)
	}
	if req.XP < 0 || req.XP > skillXPMax {
		return nil, fmt.Errorf("%w: XP must be between 0 and %d", ErrValidation, skillXPMax)
	}

	return app.db.CreateSkill(ctx, &models.Skill{
		Name:      name,
		XP:        req.XP,
		CreatedBy: userID,
	})
}

// ProcessUpdateSkill replaces the XP value of the user's skill.
func (app *App) ProcessUpdateSkill(ctx context.Context, userID, skillID int64, req models.UpdateSkillRequest) (*models.Skill, error) {
	if req.XP == nil || *req.XP < 0 {
		return nil, fmt.Errorf("%w: please provide a valid XP value (0 or greater)", ErrValidation)
	}
	if *req.XP > skillXPMax {
		return nil, fmt.Errorf("%w: XP cannot exceed %d", ErrValidation, skillXPMax)
	}
	return app.db.UpdateSkill(ctx, skillID, userID, *req.XP)
}

// ProcessDeleteSkill removes the user's skill.
func (app *App) ProcessDeleteSkill(ctx context.Context, userID, skillID int64) (*models.Skill, error) {
	return app.db.DeleteSkill(ctx, skillID, userID)
}

// ProcessSkillBatch adds XP deltas to multiple skills by name. Updates are
// best-effort per skill: a missing skill is reported by name and the remaining
// updates still apply.
func (app *App) ProcessSkillBatch(ctx context.Context, userID int64, req models.SkillBatchRequest) ([]models.Skill, []string, error) {
	if len(req.SkillXPUpdates) == 0 {
		return nil, nil, fmt.Errorf("%w: please provide skillXPUpdates object", ErrValidation)
	}

	updated := make([]models.Skill, 0, len(req.SkillXPUpdates))
	failures := make([]string, 0)
	for name, delta := range req.SkillXPUpdates {
		skill, err := app.db.AddSkillXP(ctx, userID, strings.TrimSpace(name), delta)
		if err != nil {
			failures = append(failures, fmt.Sprintf("skill %q not found", name))
			continue
		}
		updated = append(updated, *skill)
	}

	return updated, failures, nil
}

// Shop item field limits.
const (
	shopNameMax = 100
	shopDescMax = 500
)

// ProcessListShopItems retrieves active shop items, scoped to the user unless
// showAll requests the shared catalog.
func (app *App) ProcessListShopItems(ctx context.Context, userID int64, showAll bool) ([]models.ShopItem, error) {
	return app.db.ListShopItems(ctx, userID, showAll)
}

// validateShopItem checks the shop item fields shared by create and update.
func validateShopItem(name, description string, cost int) error {
	if name == "" || len(name) > shopNameMax {
		return fmt.Errorf("%w: item name is required and cannot exceed %d characters", ErrValidation, shopNameMax)
	}
	if description == "" || len(description) > shopDescMax {
		return fmt.Errorf("%w: item description is required and cannot exceed %d characters", ErrValidation, shopDescMax)
	}
	if cost < 1 || cost > rewardMax {
		return fmt.Errorf("%w: valid cost is required (1-%d coins)", ErrValidation, rewardMax)
	}
	return nil
}

// ProcessCreateShopItem validates and creates a shop item owned by the user.
func (app *App) ProcessCreateShopItem(ctx context.Context, userID int64, req models.CreateShopItemRequest) (*models.ShopItem, error) {
	name := strings.TrimSpace(req.Name)
	description := strings.TrimSpace(req.Description)
	if err := validateShopItem(name, description, req.Cost); err != nil {
		return nil, err
	}

	return app.db.CreateShopItem(ctx, &models.ShopItem{
		Name:        name,
		Description: description,
		Cost:        req.Cost,
		CreatedBy:   userID,
	})
}

// ProcessUpdateShopItem validates and replaces the fields of the user's shop item.
func (app *App) ProcessUpdateShopItem(ctx context.Context, userID, itemID int64, req models.CreateShopItemRequest) (*models.ShopItem, error) {
	name := strings.TrimSpace(req.Name)
	description := strings.TrimSpace(req.Description)
	if err := validateShopItem(name, description, req.Cost); err != nil {
		return nil, err
	}
	req.Name, req.Description = name, description

	return app.db.UpdateShopItem(ctx, itemID, userID, req)
}

// ProcessDeleteShopItem soft-deletes the user's shop item.
func (app *App) ProcessDeleteShopItem(ctx context.Context, userID, itemID int64) (*models.ShopItem, error) {
	return app.db.DeactivateShopItem(ctx, itemID, userID)
}

// Daily reward field limits.
const (
	rewardNameMin = 3
	rewardNameMax = 100
	rewardDescMin = 5
	rewardDescMax = 500
)

// ProcessListDailyRewards retrieves the user's daily rewards.
func (app *App) ProcessListDailyRewards(ctx context.Context, userID int64) ([]models.DailyReward, error) {
	return app.db.ListDailyRewards(ctx, userID)
}

// validateReward checks the daily reward fields shared by create and update.
func validateReward(name, description string) error {
	if len(name) < rewardNameMin || len(name) > rewardNameMax {
		return fmt.Errorf("%w: reward name must be between %d and %d characters", ErrValidation, rewardNameMin, rewardNameMax)
	}
	if len(description) < rewardDescMin || len(description) > rewardDescMax {
		return fmt.Errorf("%w: description must be between %d and %d characters", ErrValidation, rewardDescMin, rewardDescMax)
	}
	return nil
}

// ProcessCreateDailyReward validates and creates a daily reward owned by the user.
func (app *App) ProcessCreateDailyReward(ctx context.Context, userID int64, req models.CreateRewardRequest) (*models.DailyReward, error) {
	name := strings.TrimSpace(req.Name)
	description := strings.TrimSpace(req.Description)
	if err := validateReward(name, description); err != nil {
		return nil, err
	}

	return app.db.CreateDailyReward(ctx, &models.DailyReward{
		Name:        name,
		Description: description,
		CreatedBy:   userID,
	})
}

// ProcessUpdateDailyReward validates and replaces the fields of the user's daily reward.
func (app *App) ProcessUpdateDailyReward(ctx context.Context, userID, rewardID int64, req models.CreateRewardRequest) (*models.DailyReward, error) {
	name := strings.TrimSpace(req.Name)
	description := strings.TrimSpace(req.Description)
	if err := validateReward(name, description); err != nil {
		return nil, err
	}

	return app.db.UpdateDailyReward(ctx, rewardID, userID, name, description)
}

// ProcessDeleteDailyReward removes the user's daily reward.
func (app *App) ProcessDeleteDailyReward(ctx context.Context, userID, rewardID int64) (*models.DailyReward, error) {
	return app.db.DeleteDailyReward(ctx, rewardID, userID)
}
