package storage

import (
	"context"
	"database/sql"
	"errors"
	"shadow_system/internal/models"
)

const (
	listDailyQuestsQuery  = `SELECT id, name, xp, coins, skill, created_by, created_at FROM daily_quests WHERE created_by = $1 ORDER BY created_at DESC;`
	createDailyQuestQuery = `INSERT INTO daily_quests (name, xp, coins, skill, created_by) VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at;`
	getDailyQuestQuery    = `SELECT id, name, xp, coins, skill, created_by, created_at FROM daily_quests WHERE id = $1;`
	updateDailyQuestQuery = `UPDATE daily_quests SET name = COALESCE($1, name), xp = COALESCE($2, xp), coins = COALESCE($3, coins), skill = COALESCE($4, skill)
		WHERE id = $5 RETURNING id, name, xp, coins, skill, created_by, created_at;`
	deleteDailyQuestQuery = `DELETE FROM daily_quests WHERE id = $1 RETURNING id, name, xp, coins, skill, created_by, created_at;`

	listDungeonQuestsQuery  = `SELECT id, name, xp, coins, skill, title, is_completed, created_by, created_at FROM dungeon_quests WHERE created_by = $1 ORDER BY created_at DESC;`
	createDungeonQuestQuery = `INSERT INTO dungeon_quests (name, xp, coins, skill, title, created_by) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at;`
	getDungeonQuestQuery    = `SELECT id, name, xp, coins, skill, title, is_completed, created_by, created_at FROM dungeon_quests WHERE id = $1;`
	updateDungeonQuestQuery = `UPDATE dungeon_quests SET name = COALESCE($1, name), xp = COALESCE($2, xp), coins = COALESCE($3, coins), skill = COALESCE($4, skill), title = COALESCE($5, title)
		WHERE id = $6 RETURNING id, name, xp, coins, skill, title, is_completed, created_by, created_at;`
	deleteDungeonQuestQuery = `DELETE FROM dungeon_quests WHERE id = $1 RETURNING id, name, xp, coins, skill, title, is_completed, created_by, created_at;`
	claimDungeonQuestQuery  = `UPDATE dungeon_quests SET is_completed = TRUE WHERE id = $1 AND is_completed = FALSE
		RETURNING id, name, xp, coins, skill, title, is_completed, created_by, created_at;`

	listPenaltyQuestsQuery = `SELECT q.id, q.name, q.xp, q.skill, q.created_by, q.created_at, c.completed_at
		FROM penalty_quests q
		LEFT JOIN penalty_completions c ON c.quest_id = q.id AND c.user_id = $1 AND c.completed_date = $2
		WHERE q.created_by = $1 ORDER BY q.created_at DESC;`
	createPenaltyQuestQuery = `INSERT INTO penalty_quests (name, xp, skill, created_by) VALUES ($1, $2, $3, $4) RETURNING id, created_at;`
	getPenaltyQuestQuery    = `SELECT id, name, xp, skill, created_by, created_at FROM penalty_quests WHERE id = $1;`
	deletePenaltyQuestQuery = `DELETE FROM penalty_quests WHERE id = $1 RETURNING id, name, xp, skill, created_by, created_at;`
	recordPenaltyQuery      = `INSERT INTO penalty_completions (quest_id, user_id, completed_date) VALUES ($1, $2, $3);`
	cleanupPenaltyQuery     = `DELETE FROM penalty_completions WHERE completed_date < $1;`

	questStatsQuery = `SELECT
		(SELECT COUNT(*) FROM daily_quests WHERE created_by = $1),
		(SELECT COUNT(*) FROM daily_completion_quests WHERE user_id = $1),
		(SELECT COUNT(*) FROM dungeon_quests WHERE created_by = $1),
		(SELECT COUNT(*) FROM dungeon_quests WHERE created_by = $1 AND is_completed = TRUE),
		(SELECT COUNT(*) FROM penalty_quests WHERE created_by = $1),
		(SELECT COUNT(DISTINCT quest_id) FROM penalty_completions WHERE user_id = $1);`
)

// ListDailyQuests returns the daily quests created by the user, newest first.
func (postgresql *PostgreSQL) ListDailyQuests(ctx context.Context, ownerID int64) ([]models.DailyQuest, error) {
	rows, err := postgresql.db.QueryContext(ctx, listDailyQuestsQuery, ownerID)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query listDailyQuestsQuery: %s", err)
		return nil, err
	}
	defer rows.Close()

	quests := make([]models.DailyQuest, 0)
	for rows.Next() {
		quest := models.DailyQuest{}
		if err := rows.Scan(&quest.ID, &quest.Name, &quest.XP, &quest.Coins, &quest.Skill, &quest.CreatedBy, &quest.CreatedAt); err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan a row in ListDailyQuests method: %s", err)
			return nil, err
		}
		quests = append(quests, quest)
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in ListDailyQuests method: %s", err)
		return quests, err
	}

	return quests, nil
}

// CreateDailyQuest inserts a new daily quest owned by quest.CreatedBy.
func (postgresql *PostgreSQL) CreateDailyQuest(ctx context.Context, quest *models.DailyQuest) (*models.DailyQuest, error) {
	err := postgresql.db.QueryRowContext(ctx, createDailyQuestQuery, quest.Name, quest.XP, quest.Coins, quest.Skill, quest.CreatedBy).
		Scan(&quest.ID, &quest.CreatedAt)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query createDailyQuestQuery: %s", err)
		return quest, err
	}
	return quest, nil
}

// UpdateDailyQuest updates the provided fields of a quest owned by the caller.
func (postgresql *PostgreSQL) UpdateDailyQuest(ctx context.Context, questID, ownerID int64, req models.UpdateQuestRequest) (*models.DailyQuest, error) {
	quest := &models.DailyQuest{}

	err := postgresql.inTx(ctx, func(tx *sql.Tx) error {
		var createdBy int64
		err := tx.QueryRowContext(ctx, getDailyQuestQuery, questID).
			Scan(&quest.ID, &quest.Name, &quest.XP, &quest.Coins, &quest.Skill, &createdBy, &quest.CreatedAt)
		if err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				postgresql.log.Sugar().Errorf("Failed to execute a query getDailyQuestQuery: %s", err)
			}
			return err
		}
		if createdBy != ownerID {
			return ErrNotOwner
		}

		return tx.QueryRowContext(ctx, updateDailyQuestQuery, req.Name, req.XP, req.Coins, req.Skill, questID).
			Scan(&quest.ID, &quest.Name, &quest.XP, &quest.Coins, &quest.Skill, &quest.CreatedBy, &quest.CreatedAt)
	})
	if err != nil {
		return nil, err
	}

	return quest, nil
}

// DeleteDailyQuest removes a quest owned by the caller and returns the deleted row.
func (postgresql *PostgreSQL) DeleteDailyQuest(ctx context.Context, questID, ownerID int64) (*models.DailyQuest, error) {
	quest := &models.DailyQuest{}

	err := postgresql.inTx(ctx, func(tx *sql.Tx) error {
		var createdBy int64
		err := tx.QueryRowContext(ctx, getDailyQuestQuery, questID).
			Scan(&quest.ID, &quest.Name, &quest.XP, &quest.Coins, &quest.Skill, &createdBy, &quest.CreatedAt)
		if err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				postgresql.log.Sugar().Errorf("Failed to execute a query getDailyQuestQuery: %s", err)
			}
			return err
		}
		if createdBy != ownerID {
			return ErrNotOwner
		}

		return tx.QueryRowContext(ctx, deleteDailyQuestQuery, questID).
			Scan(&quest.ID, &quest.Name, &quest.XP, &quest.Coins, &quest.Skill, &quest.CreatedBy, &quest.CreatedAt)
	})
	if err != nil {
		return nil, err
	}

	return quest, nil
}

// ListDungeonQuests returns the dungeon quests created by the user, newest first.
func (postgresql *PostgreSQL) ListDungeonQuests(ctx context.Context, ownerID int64) ([]models.DungeonQuest, error) {
	rows, err := postgresql.db.QueryContext(ctx, listDungeonQuestsQuery, ownerID)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query listDungeonQuestsQuery: %s", err)
		return nil, err
	}
	defer rows.Close()

	quests := make([]models.DungeonQuest, 0)
	for rows.Next() {
		quest := models.DungeonQuest{}
		if err := rows.Scan(&quest.ID, &quest.Name, &quest.XP, &quest.Coins, &quest.Skill, &quest.Title, &quest.IsCompleted, &quest.CreatedBy, &quest.CreatedAt); err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan a row in ListDungeonQuests method: %s", err)
			return nil, err
		}
		quests = append(quests, quest)
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in ListDungeonQuests method: %s", err)
		return quests, err
	}

	return quests, nil
}

// CreateDungeonQuest inserts a new dungeon quest owned by quest.CreatedBy.
func (postgresql *PostgreSQL) CreateDungeonQuest(ctx context.Context, quest *models.DungeonQuest) (*models.DungeonQuest, error) {
	err := postgresql.db.QueryRowContext(ctx, createDungeonQuestQuery, quest.Name, quest.XP, quest.Coins, quest.Skill, quest.Title, quest.CreatedBy).
		Scan(&quest.ID, &quest.CreatedAt)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query createDungeonQuestQuery: %s", err)
		return quest, err
	}
	return quest, nil
}

// UpdateDungeonQuest updates the provided fields of a quest owned by the caller.
func (postgresql *PostgreSQL) UpdateDungeonQuest(ctx context.Context, questID, ownerID int64, req models.UpdateQuestRequest) (*models.DungeonQuest, error) {
	quest := &models.DungeonQuest{}

	err := postgresql.inTx(ctx, func(tx *sql.Tx) error {
		var createdBy int64
		err := tx.QueryRowContext(ctx, getDungeonQuestQuery, questID).
			Scan(&quest.ID, &quest.Name, &quest.XP, &quest.Coins, &quest.Skill, &quest.Title, &quest.IsCompleted, &createdBy, &quest.CreatedAt)
		if err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				postgresql.log.Sugar().Errorf("Failed to execute a query getDungeonQuestQuery: %s", err)
			}
			return err
		}
		if createdBy != ownerID {
			return ErrNotOwner
		}

		return tx.QueryRowContext(ctx, updateDungeonQuestQuery, req.Name, req.XP, req.Coins, req.Skill, req.Title, questID).
			Scan(&quest.ID, &quest.Name, &quest.XP, &quest.Coins, &quest.Skill, &quest.Title, &quest.IsCompleted, &quest.CreatedBy, &quest.CreatedAt)
	})
	if err != nil {
		return nil, err
	}

	return quest, nil
}

// DeleteDungeonQuest removes a quest owned by the caller and returns the deleted row.
func (postgresql *PostgreSQL) DeleteDungeonQuest(ctx context.Context, questID, ownerID int64) (*models.DungeonQuest, error) {
	quest := &models.DungeonQuest{}

	err := postgresql.inTx(ctx, func(tx *sql.Tx) error {
		var createdBy int64
		err := tx.QueryRowContext(ctx, getDungeonQuestQuery, questID).
			Scan(&quest.ID, &quest.Name, &quest.XP, &quest.Coins, &quest.Skill, &quest.Title, &quest.IsCompleted, &createdBy, &quest.CreatedAt)
		if err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				postgresql.log.Sugar().Errorf("Failed to execute a query getDungeonQuestQuery: %s", err)
			}
			return err
		}
		if createdBy != ownerID {
			return ErrNotOwner
		}

		return tx.QueryRowContext(ctx, deleteDungeonQuestQuery, questID).
			Scan(&quest.ID, &quest.Name, &quest.XP, &quest.Coins, &quest.Skill, &quest.Title, &quest.IsCompleted, &quest.CreatedBy, &quest.CreatedAt)
	})
	if err != nil {
		return nil, err
	}

	return quest, nil
}

// CompleteDungeonQuest completes a dungeon quest on behalf of any authenticated user
// (the quest pool is shared; ownership is deliberately not required here). The flag flip,
// reward crediting, title grant, and skill upsert all commit or roll back together.
// It fails with ErrAlreadyCompleted when the quest's one-shot flag was already set and
// with sql.ErrNoRows when the quest or user does not exist.
func (postgresql *PostgreSQL) CompleteDungeonQuest(ctx context.Context, userID, questID int64) (*models.DungeonCompletion, error) {
	quest := &models.DungeonQuest{}
	completion := &models.DungeonCompletion{Quest: quest}

	err := postgresql.inTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, claimDungeonQuestQuery, questID).
			Scan(&quest.ID, &quest.Name, &quest.XP, &quest.Coins, &quest.Skill, &quest.Title, &quest.IsCompleted, &quest.CreatedBy, &quest.CreatedAt)
		if errors.Is(err, sql.ErrNoRows) {
			// Either the quest is missing or its one-shot flag was already set.
			var exists bool
			if checkErr := tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM dungeon_quests WHERE id = $1)`, questID).Scan(&exists); checkErr != nil {
				return checkErr
			}
			if exists {
				return ErrAlreadyCompleted
			}
			return sql.ErrNoRows
		}
		if err != nil {
			postgresql.log.Sugar().Errorf("Failed to execute a query claimDungeonQuestQuery: %s", err)
			return err
		}

		var totalXp, coins int
		err = tx.QueryRowContext(ctx, creditUserQuery, quest.XP, quest.Coins, userID).Scan(&totalXp, &coins)
		if err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				postgresql.log.Sugar().Errorf("Failed to execute a query creditUserQuery: %s", err)
			}
			return err
		}

		if _, err := tx.ExecContext(ctx, awardTitleQuery, userID, quest.Title, models.TitleSourceDungeonQuest); err != nil {
			postgresql.log.Sugar().Errorf("Failed to execute a query awardTitleQuery: %s", err)
			return err
		}

		skill, err := postgresql.upsertSkill(ctx, tx, userID, quest.Skill, quest.XP)
		if err != nil {
			return err
		}

		completion.UpdatedProfile = &models.ProfileUpdate{
			TotalXp:  totalXp,
			Coins:    coins,
			NewTitle: quest.Title,
			SkillProgress: &models.SkillProgress{
				Skill: skill.Name,
				NewXp: skill.XP,
				Level: skill.Level,
			},
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return completion, nil
}

// ListPenaltyQuests returns the penalty quests created by the user, newest first,
// with the per-user completion state for the given day derived from the ledger.
func (postgresql *PostgreSQL) ListPenaltyQuests(ctx context.Context, ownerID int64, day string) ([]models.PenaltyQuest, error) {
	rows, err := postgresql.db.QueryContext(ctx, listPenaltyQuestsQuery, ownerID, day)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query listPenaltyQuestsQuery: %s", err)
		return nil, err
	}
	defer rows.Close()

	quests := make([]models.PenaltyQuest, 0)
	for rows.Next() {
		quest := models.PenaltyQuest{}
		if err := rows.Scan(&quest.ID, &quest.Name, &quest.XP, &quest.Skill, &quest.CreatedBy, &quest.CreatedAt, &quest.LastCompletedAt); err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan a row in ListPenaltyQuests method: %s", err)
			return nil, err
		}
		quest.IsCompletedToday = quest.LastCompletedAt != nil
		quests = append(quests, quest)
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in ListPenaltyQuests method: %s", err)
		return quests, err
	}

	return quests, nil
}

// CreatePenaltyQuest inserts a new penalty quest owned by quest.CreatedBy.
func (postgresql *PostgreSQL) CreatePenaltyQuest(ctx context.Context, quest *models.PenaltyQuest) (*models.PenaltyQuest, error) {
	err := postgresql.db.QueryRowContext(ctx, createPenaltyQuestQuery, quest.Name, quest.XP, quest.Skill, quest.CreatedBy).
		Scan(&quest.ID, &quest.CreatedAt)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query createPenaltyQuestQuery: %s", err)
		return quest, err
	}
	return quest, nil
}

// DeletePenaltyQuest removes a quest owned by the caller and returns the deleted row.
// Ledger entries referencing the quest are removed by the cascade.
func (postgresql *PostgreSQL) DeletePenaltyQuest(ctx context.Context, questID, ownerID int64) (*models.PenaltyQuest, error) {
	quest := &models.PenaltyQuest{}

	err := postgresql.inTx(ctx, func(tx *sql.Tx) error {
		var createdBy int64
		err := tx.QueryRowContext(ctx, getPenaltyQuestQuery, questID).
			Scan(&quest.ID, &quest.Name, &quest.XP, &quest.Skill, &createdBy, &quest.CreatedAt)
		if err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				postgresql.log.Sugar().Errorf("Failed to execute a query getPenaltyQuestQuery: %s", err)
			}
			return err
		}
		if createdBy != ownerID {
			return ErrNotOwner
		}

		return tx.QueryRowContext(ctx, deletePenaltyQuestQuery, questID).
			Scan(&quest.ID, &quest.Name, &quest.XP, &quest.Skill, &quest.CreatedBy, &quest.CreatedAt)
	})
	if err != nil {
		return nil, err
	}

	return quest, nil
}

// AcceptPenaltyQuest records a penalty completion for the given day and credits the
// quest's XP in the same transaction. Only the quest owner may accept. At-most-once
// per (quest, user, day) is enforced by the ledger's primary key: a duplicate insert
// fails with a unique violation that rolls the whole transaction back, so concurrent
// accepts cannot double-credit. If the user has a skill matching the quest's skill,
// it is credited too; a missing skill is not created.
func (postgresql *PostgreSQL) AcceptPenaltyQuest(ctx context.Context, userID, questID int64, day string) (*models.PenaltyCompletion, error) {
	quest := &models.PenaltyQuest{}
	completion := &models.PenaltyCompletion{Quest: quest, CompletedToday: true}

	err := postgresql.inTx(ctx, func(tx *sql.Tx) error {
		var createdBy int64
		err := tx.QueryRowContext(ctx, getPenaltyQuestQuery, questID).
			Scan(&quest.ID, &quest.Name, &quest.XP, &quest.Skill, &createdBy, &quest.CreatedAt)
		if err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				postgresql.log.Sugar().Errorf("Failed to execute a query getPenaltyQuestQuery: %s", err)
			}
			return err
		}
		if createdBy != userID {
			return ErrNotOwner
		}
		quest.CreatedBy = createdBy

		if _, err := tx.ExecContext(ctx, recordPenaltyQuery, questID, userID, day); err != nil {
			return err
		}

		var coins int
		err = tx.QueryRowContext(ctx, creditUserQuery, quest.XP, 0, userID).Scan(&completion.TotalXP, &coins)
		if err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				postgresql.log.Sugar().Errorf("Failed to execute a query creditUserQuery: %s", err)
			}
			return err
		}

		var skill models.Skill
		err = tx.QueryRowContext(ctx, addSkillXPQuery, quest.XP, userID, quest.Skill).
			Scan(&skill.ID, &skill.Name, &skill.XP, &skill.CreatedBy, &skill.CreatedAt)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			postgresql.log.Sugar().Errorf("Failed to execute a query addSkillXPQuery: %s", err)
			return err
		}

		quest.IsCompletedToday = true
		completion.XPAwarded = quest.XP

		return nil
	})
	if err != nil {
		return nil, err
	}

	return completion, nil
}

// GetQuestStats counts quests and completions per quest type for the profile view.
// Daily completions count every per-day ledger mark; penalty completions count
// quests the user has completed at least once.
func (postgresql *PostgreSQL) GetQuestStats(ctx context.Context, userID int64) (map[string]models.QuestStats, error) {
	var daily, dailyDone, dungeon, dungeonDone, penalty, penaltyDone int

	err := postgresql.db.QueryRowContext(ctx, questStatsQuery, userID).
		Scan(&daily, &dailyDone, &dungeon, &dungeonDone, &penalty, &penaltyDone)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query questStatsQuery: %s", err)
		return nil, err
	}

	return map[string]models.QuestStats{
		"dailyQuests":   {Total: daily, Completed: dailyDone},
		"dungeonQuests": {Total: dungeon, Completed: dungeonDone},
		"penaltyQuests": {Total: penalty, Completed: penaltyDone},
	}, nil
}

// CleanupPenaltyCompletions prunes ledger rows older than the given day key and
// returns the number of rows removed.
func (postgresql *PostgreSQL) CleanupPenaltyCompletions(ctx context.Context, before string) (int64, error) {
	result, err := postgresql.db.ExecContext(ctx, cleanupPenaltyQuery, before)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query cleanupPenaltyQuery: %s", err)
		return 0, err
	}

	return result.RowsAffected()
}
