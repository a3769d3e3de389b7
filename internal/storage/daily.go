package storage

import (
	"context"
	"database/sql"
	"errors"
	"shadow_system/internal/models"
)

const (
	getDayFinishedQuery  = `SELECT finished FROM daily_completions WHERE user_id = $1 AND day = $2;`
	ensureDayQuery       = `INSERT INTO daily_completions (user_id, day, finished) VALUES ($1, $2, FALSE) ON CONFLICT (user_id, day) DO NOTHING;`
	lockDayQuery         = `SELECT finished FROM daily_completions WHERE user_id = $1 AND day = $2 FOR UPDATE;`
	finishDayQuery       = `UPDATE daily_completions SET finished = TRUE WHERE user_id = $1 AND day = $2;`
	listDayMarksQuery    = `SELECT quest_id FROM daily_completion_quests WHERE user_id = $1 AND day = $2 ORDER BY quest_id;`
	insertDayMarkQuery   = `INSERT INTO daily_completion_quests (user_id, day, quest_id) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING;`
	deleteDayMarkQuery   = `DELETE FROM daily_completion_quests WHERE user_id = $1 AND day = $2 AND quest_id = $3;`
	clearDayMarksQuery   = `DELETE FROM daily_completion_quests WHERE user_id = $1 AND day = $2;`
	dailyQuestExists     = `SELECT EXISTS (SELECT 1 FROM daily_quests WHERE id = $1);`
	aggregateSkillsQuery = `SELECT name, xp FROM skills WHERE created_by = $1;`
)

// GetDailyStatus reads the user's completion ledger for the given day. A day with no
// stored state yields an empty, unfinished status; nothing is written on read, so the
// midnight rollover is realized lazily by the key mismatch.
func (postgresql *PostgreSQL) GetDailyStatus(ctx context.Context, userID int64, day string) (*models.DailyStatus, error) {
	status := &models.DailyStatus{
		CompletedQuests: make([]int64, 0),
		LastResetDate:   day,
		CurrentDate:     day,
	}

	err := postgresql.db.QueryRowContext(ctx, getDayFinishedQuery, userID, day).Scan(&status.FinishedToday)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		postgresql.log.Sugar().Errorf("Failed to execute a query getDayFinishedQuery: %s", err)
		return nil, err
	}

	rows, err := postgresql.db.QueryContext(ctx, listDayMarksQuery, userID, day)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query listDayMarksQuery: %s", err)
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var questID int64
		if err := rows.Scan(&questID); err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan a row in GetDailyStatus method: %s", err)
			return nil, err
		}
		status.CompletedQuests = append(status.CompletedQuests, questID)
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in GetDailyStatus method: %s", err)
		return status, err
	}

	return status, nil
}

// lockDay serializes ledger mutations for one (user, day) pair. It inserts the day
// row when absent and acquires a row lock, returning the finished flag.
func (postgresql *PostgreSQL) lockDay(ctx context.Context, tx *sql.Tx, userID int64, day string) (bool, error) {
	if _, err := tx.ExecContext(ctx, ensureDayQuery, userID, day); err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query ensureDayQuery: %s", err)
		return false, err
	}

	var finished bool
	if err := tx.QueryRowContext(ctx, lockDayQuery, userID, day).Scan(&finished); err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query lockDayQuery: %s", err)
		return false, err
	}

	return finished, nil
}

// ToggleDailyQuest flips the membership of questID in the user's completed set for the day.
// It fails with ErrAlreadyFinishedToday once the daily batch was submitted, and with
// sql.ErrNoRows when the quest does not exist. The returned bool reports whether the quest
// is marked completed after the toggle.
func (postgresql *PostgreSQL) ToggleDailyQuest(ctx context.Context, userID int64, day string, questID int64) (*models.DailyStatus, bool, error) {
	var isCompleted bool

	err := postgresql.inTx(ctx, func(tx *sql.Tx) error {
		finished, err := postgresql.lockDay(ctx, tx, userID, day)
		if err != nil {
			return err
		}
		if finished {
			return ErrAlreadyFinishedToday
		}

		var exists bool
		if err := tx.QueryRowContext(ctx, dailyQuestExists, questID).Scan(&exists); err != nil {
			postgresql.log.Sugar().Errorf("Failed to execute a query dailyQuestExists: %s", err)
			return err
		}
		if !exists {
			return sql.ErrNoRows
		}

		result, err := tx.ExecContext(ctx, deleteDayMarkQuery, userID, day, questID)
		if err != nil {
			postgresql.log.Sugar().Errorf("Failed to execute a query deleteDayMarkQuery: %s", err)
			return err
		}
		removed, err := result.RowsAffected()
		if err != nil {
			return err
		}

		if removed == 0 {
			if _, err := tx.ExecContext(ctx, insertDayMarkQuery, userID, day, questID); err != nil {
				postgresql.log.Sugar().Errorf("Failed to execute a query insertDayMarkQuery: %s", err)
				return err
			}
			isCompleted = true
		}

		return nil
	})
	if err != nil {
		return nil, false, err
	}

	status, err := postgresql.GetDailyStatus(ctx, userID, day)
	if err != nil {
		return nil, false, err
	}

	return status, isCompleted, nil
}

// CompleteDailyBatch credits the submitted daily rewards and freezes the day in a single
// transaction: user totals are incremented, each skill delta is upserted into the skills
// table, the completed set is replaced by the submitted ids, and the day is marked finished.
// A second call for the same day fails with ErrAlreadyFinishedToday and changes nothing.
func (postgresql *PostgreSQL) CompleteDailyBatch(ctx context.Context, userID int64, day string, questIDs []int64, totalXP, totalCoins int, skillXP map[string]int) (*models.DailySummary, error) {
	summary := &models.DailySummary{
		AddedXP:        totalXP,
		AddedCoins:     totalCoins,
		CompletionDate: day,
		SkillXP:        make(map[string]int),
	}

	err := postgresql.inTx(ctx, func(tx *sql.Tx) error {
		finished, err := postgresql.lockDay(ctx, tx, userID, day)
		if err != nil {
			return err
		}
		if finished {
			return ErrAlreadyFinishedToday
		}

		err = tx.QueryRowContext(ctx, creditUserQuery, totalXP, totalCoins, userID).Scan(&summary.TotalXP, &summary.Coins)
		if err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				postgresql.log.Sugar().Errorf("Failed to execute a query creditUserQuery: %s", err)
			}
			return err
		}

		for name, delta := range skillXP {
			if _, err := postgresql.upsertSkill(ctx, tx, userID, name, delta); err != nil {
				return err
			}
		}

		if _, err := tx.ExecContext(ctx, clearDayMarksQuery, userID, day); err != nil {
			postgresql.log.Sugar().Errorf("Failed to execute a query clearDayMarksQuery: %s", err)
			return err
		}
		for _, questID := range questIDs {
			if _, err := tx.ExecContext(ctx, insertDayMarkQuery, userID, day, questID); err != nil {
				postgresql.log.Sugar().Errorf("Failed to execute a query insertDayMarkQuery: %s", err)
				return err
			}
		}

		if _, err := tx.ExecContext(ctx, finishDayQuery, userID, day); err != nil {
			postgresql.log.Sugar().Errorf("Failed to execute a query finishDayQuery: %s", err)
			return err
		}

		// The per-skill XP view is derived from the skills table inside the same
		// transaction, so the response reflects exactly what was committed.
		rows, err := tx.QueryContext(ctx, aggregateSkillsQuery, userID)
		if err != nil {
			postgresql.log.Sugar().Errorf("Failed to execute a query aggregateSkillsQuery: %s", err)
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var name string
			var xp int
			if err := rows.Scan(&name, &xp); err != nil {
				postgresql.log.Sugar().Errorf("Failed to scan a row in CompleteDailyBatch method: %s", err)
				return err
			}
			summary.SkillXP[name] = xp
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return summary, nil
}
