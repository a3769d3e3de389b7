// Package storage provides primitives for connecting to and interacting with data storage systems.
// It defines the Storage interface along with a PostgreSQL implementation that manages users, quests,
// skills, shop items, and the per-day completion ledgers backing the daily reset logic.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"shadow_system/internal/models"
	"shadow_system/internal/pkg/logger"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Sentinel errors surfaced by transactional operations. Constraint violations
// (duplicate usernames, duplicate skills, duplicate penalty completions) propagate
// as pg errors and are mapped by the HTTP layer.
var (
	// ErrNotOwner indicates the caller does not own the document being mutated.
	ErrNotOwner = errors.New("storage: not the owner of this resource")
	// ErrAlreadyCompleted indicates a one-shot quest was completed earlier.
	ErrAlreadyCompleted = errors.New("storage: quest is already completed")
	// ErrAlreadyFinishedToday indicates the daily batch was already submitted for the current day.
	ErrAlreadyFinishedToday = errors.New("storage: daily quests already completed for today")
	// ErrNotEnoughCoins indicates the user's balance does not cover an item's cost.
	ErrNotEnoughCoins = errors.New("not enough coins to buy this item")
	// ErrItemUsed indicates an inventory item was consumed earlier.
	ErrItemUsed = errors.New("storage: item has already been used")
)

// Storage defines the methods required for data storage operations.
type Storage interface {
	// Close closes the database connection.
	Close()

	// Authentication methods.
	CheckUser(ctx context.Context, user *models.User) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)

	// User profile methods.
	GetUser(ctx context.Context, userID int64) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int64, totalXp, coins *int) (*models.User, error)
	ListTitles(ctx context.Context, userID int64) ([]models.Title, error)
	DeleteTitle(ctx context.Context, userID int64, name string) error

	// Inventory methods.
	ListInventory(ctx context.Context, userID int64) ([]models.InventoryItem, error)
	PurchaseItem(ctx context.Context, userID, itemID int64) (*models.PurchaseResult, error)
	UseInventoryItem(ctx context.Context, userID, itemID int64) (*models.InventoryItem, error)
	DeleteInventoryItem(ctx context.Context, userID, itemID int64) (*models.InventoryItem, error)

	// Daily completion ledger methods. The day parameter is an ISO YYYY-MM-DD key.
	GetDailyStatus(ctx context.Context, userID int64, day string) (*models.DailyStatus, error)
	ToggleDailyQuest(ctx context.Context, userID int64, day string, questID int64) (*models.DailyStatus, bool, error)
	CompleteDailyBatch(ctx context.Context, userID int64, day string, questIDs []int64, totalXP, totalCoins int, skillXP map[string]int) (*models.DailySummary, error)

	// Daily quest methods.
	ListDailyQuests(ctx context.Context, ownerID int64) ([]models.DailyQuest, error)
	CreateDailyQuest(ctx context.Context, quest *models.DailyQuest) (*models.DailyQuest, error)
	UpdateDailyQuest(ctx context.Context, questID, ownerID int64, req models.UpdateQuestRequest) (*models.DailyQuest, error)
	DeleteDailyQuest(ctx context.Context, questID, ownerID int64) (*models.DailyQuest, error)

	// Dungeon quest methods.
	ListDungeonQuests(ctx context.Context, ownerID int64) ([]models.DungeonQuest, error)
	CreateDungeonQuest(ctx context.Context, quest *models.DungeonQuest) (*models.DungeonQuest, error)
	UpdateDungeonQuest(ctx context.Context, questID, ownerID int64, req models.UpdateQuestRequest) (*models.DungeonQuest, error)
	DeleteDungeonQuest(ctx context.Context, questID, ownerID int64) (*models.DungeonQuest, error)
	CompleteDungeonQuest(ctx context.Context, userID, questID int64) (*models.DungeonCompletion, error)

	// Penalty quest methods.
	ListPenaltyQuests(ctx context.Context, ownerID int64, day string) ([]models.PenaltyQuest, error)
	CreatePenaltyQuest(ctx context.Context, quest *models.PenaltyQuest) (*models.PenaltyQuest, error)
	DeletePenaltyQuest(ctx context.Context, questID, ownerID int64) (*models.PenaltyQuest, error)
	AcceptPenaltyQuest(ctx context.Context, userID, questID int64, day string) (*models.PenaltyCompletion, error)
	CleanupPenaltyCompletions(ctx context.Context, before string) (int64, error)

	// Profile statistics.
	GetQuestStats(ctx context.Context, userID int64) (map[string]models.QuestStats, error)

	// Skill methods.
	ListSkills(ctx context.Context, ownerID int64) ([]models.Skill, error)
	CreateSkill(ctx context.Context, skill *models.Skill) (*models.Skill, error)
	UpdateSkill(ctx context.Context, skillID, ownerID int64, xp int) (*models.Skill, error)
	DeleteSkill(ctx context.Context, skillID, ownerID int64) (*models.Skill, error)
	AddSkillXP(ctx context.Context, ownerID int64, name string, delta int) (*models.Skill, error)

	// Shop item methods.
	ListShopItems(ctx context.Context, userID int64, showAll bool) ([]models.ShopItem, error)
	CreateShopItem(ctx context.Context, item *models.ShopItem) (*models.ShopItem, error)
	UpdateShopItem(ctx context.Context, itemID, ownerID int64, req models.CreateShopItemRequest) (*models.ShopItem, error)
	DeactivateShopItem(ctx context.Context, itemID, ownerID int64) (*models.ShopItem, error)

	// Daily reward methods.
	ListDailyRewards(ctx context.Context, ownerID int64) ([]models.DailyReward, error)
	CreateDailyReward(ctx context.Context, reward *models.DailyReward) (*models.DailyReward, error)
	UpdateDailyReward(ctx context.Context, rewardID, ownerID int64, name, description string) (*models.DailyReward, error)
	DeleteDailyReward(ctx context.Context, rewardID, ownerID int64) (*models.DailyReward, error)
}

// schemaStatements is executed at startup. The penalty_completions primary key is
// the at-most-once-per-day enforcement for penalty quests; titles carry a per-user
// uniqueness constraint; skills are unique per owner, case-insensitive.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		coins INTEGER NOT NULL DEFAULT 100 CHECK (coins >= 0),
		total_xp INTEGER NOT NULL DEFAULT 0 CHECK (total_xp >= 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS titles (
		user_id BIGINT NOT NULL REFERENCES users(id),
		name TEXT NOT NULL,
		source TEXT NOT NULL,
		awarded_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (user_id, name)
	);`,
	`CREATE TABLE IF NOT EXISTS inventory_items (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		cost INTEGER NOT NULL,
		purchased_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		used BOOLEAN NOT NULL DEFAULT FALSE,
		used_at TIMESTAMPTZ
	);`,
	`CREATE TABLE IF NOT EXISTS daily_quests (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		xp INTEGER NOT NULL CHECK (xp >= 1),
		coins INTEGER NOT NULL CHECK (coins >= 1),
		skill TEXT NOT NULL,
		created_by BIGINT NOT NULL REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS dungeon_quests (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		xp INTEGER NOT NULL CHECK (xp >= 1),
		coins INTEGER NOT NULL CHECK (coins >= 1),
		skill TEXT NOT NULL,
		title TEXT NOT NULL,
		is_completed BOOLEAN NOT NULL DEFAULT FALSE,
		created_by BIGINT NOT NULL REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS penalty_quests (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		xp INTEGER NOT NULL CHECK (xp >= 1),
		skill TEXT NOT NULL,
		created_by BIGINT NOT NULL REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS penalty_completions (
		quest_id BIGINT NOT NULL REFERENCES penalty_quests(id) ON DELETE CASCADE,
		user_id BIGINT NOT NULL REFERENCES users(id),
		completed_date TEXT NOT NULL,
		completed_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (quest_id, user_id, completed_date)
	);`,
	`CREATE TABLE IF NOT EXISTS daily_completions (
		user_id BIGINT NOT NULL REFERENCES users(id),
		day TEXT NOT NULL,
		finished BOOLEAN NOT NULL DEFAULT FALSE,
		PRIMARY KEY (user_id, day)
	);`,
	`CREATE TABLE IF NOT EXISTS daily_completion_quests (
		user_id BIGINT NOT NULL REFERENCES users(id),
		day TEXT NOT NULL,
		quest_id BIGINT NOT NULL,
		PRIMARY KEY (user_id, day, quest_id)
	);`,
	`CREATE TABLE IF NOT EXISTS skills (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		xp INTEGER NOT NULL DEFAULT 0 CHECK (xp >= 0),
		created_by BIGINT NOT NULL REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS unique_skill_per_user ON skills (created_by, LOWER(name));`,
	`CREATE TABLE IF NOT EXISTS shop_items (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		cost INTEGER NOT NULL CHECK (cost >= 1),
		created_by BIGINT NOT NULL REFERENCES users(id),
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS daily_rewards (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		created_by BIGINT NOT NULL REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
}

// PostgreSQL implements the Storage interface using a PostgreSQL database.
type PostgreSQL struct {
	db  *sql.DB        // Connection to the database.
	log *logger.Logger // Logger for recording events and errors.
}

// NewPostgreSQL creates a new PostgreSQL instance with the provided connection string and logger.
// It opens the connection, pings the database to ensure connectivity, and bootstraps the schema.
func NewPostgreSQL(configDBString string, l *logger.Logger) (*PostgreSQL, error) {
	db, err := sql.Open("pgx", configDBString)
	if err != nil {
		l.Sugar().Errorf("Failed to open a database: %s", err)
		return &PostgreSQL{db: db, log: l}, err
	}

	const defaultTimeout = 10 * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		l.Sugar().Errorf("Database ping failed: %s", err)
		return &PostgreSQL{db: db, log: l}, err
	}

	postgresql := &PostgreSQL{db: db, log: l}
	if err := postgresql.bootstrap(ctx); err != nil {
		l.Sugar().Errorf("Schema bootstrap failed: %s", err)
		return postgresql, err
	}

	return postgresql, nil
}

// bootstrap creates the tables and indexes the application relies on.
func (postgresql *PostgreSQL) bootstrap(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := postgresql.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database connection if it is open.
func (postgresql *PostgreSQL) Close() {
	if postgresql.db != nil {
		postgresql.db.Close()
	}
}

// inTx runs fn inside a transaction and commits when fn succeeds.
func (postgresql *PostgreSQL) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := postgresql.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}
