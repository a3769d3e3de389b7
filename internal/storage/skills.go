package storage

import (
	"context"
	"database/sql"
	"errors"
	"shadow_system/internal/models"
)

const (
	listSkillsQuery  = `SELECT id, name, xp, created_by, created_at FROM skills WHERE created_by = $1 ORDER BY name;`
	createSkillQuery = `INSERT INTO skills (name, xp, created_by) VALUES ($1, $2, $3) RETURNING id, created_at;`
	getSkillQuery    = `SELECT id, name, xp, created_by, created_at FROM skills WHERE id = $1;`
	setSkillXPQuery  = `UPDATE skills SET xp = $1 WHERE id = $2 RETURNING id, name, xp, created_by, created_at;`
	deleteSkillQuery = `DELETE FROM skills WHERE id = $1 RETURNING id, name, xp, created_by, created_at;`
	addSkillXPQuery  = `UPDATE skills SET xp = xp + $1 WHERE created_by = $2 AND LOWER(name) = LOWER($3) RETURNING id, name, xp, created_by, created_at;`
	upsertSkillQuery = `INSERT INTO skills (name, xp, created_by) VALUES ($1, $2, $3)
		ON CONFLICT (created_by, LOWER(name)) DO UPDATE SET xp = skills.xp + EXCLUDED.xp
		RETURNING id, name, xp, created_by, created_at;`
)

// withLevel fills in the derived level field: floor(xp / 100).
func withLevel(skill *models.Skill) *models.Skill {
	skill.Level = skill.XP / 100
	return skill
}

// ListSkills returns the user's skills sorted alphabetically, with derived levels.
func (postgresql *PostgreSQL) ListSkills(ctx context.Context, ownerID int64) ([]models.Skill, error) {
	rows, err := postgresql.db.QueryContext(ctx, listSkillsQuery, ownerID)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query listSkillsQuery: %s", err)
		return nil, err
	}
	defer rows.Close()

	skills := make([]models.Skill, 0)
	for rows.Next() {
		skill := models.Skill{}
		if err := rows.Scan(&skill.ID, &skill.Name, &skill.XP, &skill.CreatedBy, &skill.CreatedAt); err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan a row in ListSkills method: %s", err)
			return nil, err
		}
		withLevel(&skill)
		skills = append(skills, skill)
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in ListSkills method: %s", err)
		return skills, err
	}

	return skills, nil
}

// CreateSkill inserts a new skill. The unique_skill_per_user index rejects a duplicate
// name for the same owner (case-insensitive); the violation propagates as a pg error.
func (postgresql *PostgreSQL) CreateSkill(ctx context.Context, skill *models.Skill) (*models.Skill, error) {
	err := postgresql.db.QueryRowContext(ctx, createSkillQuery, skill.Name, skill.XP, skill.CreatedBy).Scan(&skill.ID, &skill.CreatedAt)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query createSkillQuery: %s", err)
		return skill, err
	}
	return withLevel(skill), nil
}

// UpdateSkill replaces a skill's XP value. Only the owner may update; other callers
// get ErrNotOwner.
func (postgresql *PostgreSQL) UpdateSkill(ctx context.Context, skillID, ownerID int64, xp int) (*models.Skill, error) {
	skill := &models.Skill{}

	err := postgresql.inTx(ctx, func(tx *sql.Tx) error {
		var createdBy int64
		err := tx.QueryRowContext(ctx, getSkillQuery, skillID).Scan(&skill.ID, &skill.Name, &skill.XP, &createdBy, &skill.CreatedAt)
		if err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				postgresql.log.Sugar().Errorf("Failed to execute a query getSkillQuery: %s", err)
			}
			return err
		}
		if createdBy != ownerID {
			return ErrNotOwner
		}

		return tx.QueryRowContext(ctx, setSkillXPQuery, xp, skillID).
			Scan(&skill.ID, &skill.Name, &skill.XP, &skill.CreatedBy, &skill.CreatedAt)
	})
	if err != nil {
		return nil, err
	}

	return withLevel(skill), nil
}

// DeleteSkill removes a skill owned by the caller and returns the deleted row.
func (postgresql *PostgreSQL) DeleteSkill(ctx context.Context, skillID, ownerID int64) (*models.Skill, error) {
	skill := &models.Skill{}

	err := postgresql.inTx(ctx, func(tx *sql.Tx) error {
		var createdBy int64
		err := tx.QueryRowContext(ctx, getSkillQuery, skillID).Scan(&skill.ID, &skill.Name, &skill.XP, &createdBy, &skill.CreatedAt)
		if err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				postgresql.log.Sugar().Errorf("Failed to execute a query getSkillQuery: %s", err)
			}
			return err
		}
		if createdBy != ownerID {
			return ErrNotOwner
		}

		return tx.QueryRowContext(ctx, deleteSkillQuery, skillID).
			Scan(&skill.ID, &skill.Name, &skill.XP, &skill.CreatedBy, &skill.CreatedAt)
	})
	if err != nil {
		return nil, err
	}

	return withLevel(skill), nil
}

// AddSkillXP adds a delta to an existing skill matched by name, case-insensitively.
// It returns sql.ErrNoRows when the user has no skill with that name; it never creates one.
func (postgresql *PostgreSQL) AddSkillXP(ctx context.Context, ownerID int64, name string, delta int) (*models.Skill, error) {
	skill := &models.Skill{}

	err := postgresql.db.QueryRowContext(ctx, addSkillXPQuery, delta, ownerID, name).
		Scan(&skill.ID, &skill.Name, &skill.XP, &skill.CreatedBy, &skill.CreatedAt)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			postgresql.log.Sugar().Errorf("Failed to execute a query addSkillXPQuery: %s", err)
		}
		return nil, err
	}

	return withLevel(skill), nil
}

// upsertSkill adds a delta to a skill inside an existing transaction, creating the
// skill at that XP when the user does not have it yet.
func (postgresql *PostgreSQL) upsertSkill(ctx context.Context, tx *sql.Tx, ownerID int64, name string, delta int) (*models.Skill, error) {
	skill := &models.Skill{}

	err := tx.QueryRowContext(ctx, upsertSkillQuery, name, delta, ownerID).
		Scan(&skill.ID, &skill.Name, &skill.XP, &skill.CreatedBy, &skill.CreatedAt)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query upsertSkillQuery: %s", err)
		return nil, err
	}

	return withLevel(skill), nil
}
