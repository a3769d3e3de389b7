// Package app provides the core business logic for the shadow system: account
// registration and login, daily quest reset tracking, reward distribution, and the
// validation and ownership rules for quests, skills, shop items, and rewards.
// It integrates with the storage layer for data persistence and uses the auth package
// for token generation. Logging functionality is provided via the logger package.
package app

import (
	"context"
	"errors"
	"fmt"
	"shadow_system/internal/models"
	"shadow_system/internal/pkg/auth"
	"shadow_system/internal/pkg/logger"
	"shadow_system/internal/storage"
	"time"
)

// Predefined errors for invalid requests. ErrValidation wraps every field-level
// failure so the HTTP layer can map the whole family to a 400 response.
var (
	// ErrValidation indicates a missing or out-of-range request field.
	ErrValidation = errors.New("validation error")
	// ErrInvalidCredentials indicates an unknown username on login.
	ErrInvalidCredentials = errors.New("app: invalid username or password")
	// ErrNoQuestsSelected indicates a daily batch submission with no quest ids.
	ErrNoQuestsSelected = errors.New("app: no completed quests provided")
)

// User level rank and skill level divisors.
const (
	xpPerRank       = 250
	xpPerSkillLevel = 100
)

// DayKey returns the calendar-day ledger key for t in server-local time,
// formatted as ISO YYYY-MM-DD. The reset instant is midnight server time;
// every "today" comparison in the system goes through this single producer.
func DayKey(t time.Time) string {
	return t.Local().Format("2006-01-02")
}

// Rank derives the user's level from total XP: floor(totalXp / 250).
func Rank(totalXp int) int {
	return totalXp / xpPerRank
}

// SkillLevel derives a skill's level from its XP: floor(xp / 100).
func SkillLevel(xp int) int {
	return xp / xpPerSkillLevel
}

// App encapsulates the application logic and dependencies required to process requests.
// It interacts with the storage layer and uses a logger for error and activity logging.
type App struct {
	db  storage.Storage // Database storage layer for persistent data operations.
	log *logger.Logger  // Logger for logging application events and errors.
}

// NewApp creates and returns a new instance of App with the provided storage and logger dependencies.
func NewApp(db storage.Storage, log *logger.Logger) *App {
	return &App{db: db, log: log}
}

// startingCoins is the balance every new account begins with.
const startingCoins = 100

// ProcessRegister validates the credentials and creates a new account with the default
// starting balance, returning a bearer token. A taken username propagates as a unique
// violation from the storage layer.
func (app *App) ProcessRegister(ctx context.Context, req models.AuthRequest) (string, error) {
	if req.Username == "" || req.Password == "" {
		return "", fmt.Errorf("%w: username and password are required", ErrValidation)
	}
	if len(req.Username) < 3 || len(req.Username) > 30 {
		return "", fmt.Errorf("%w: username must be between 3 and 30 characters", ErrValidation)
	}
	if len(req.Password) < 6 {
		return "", fmt.Errorf("%w: password must be at least 6 characters long", ErrValidation)
	}

	user := &models.User{
		Username: req.Username,
		Password: req.Password,
		Coins:    startingCoins,
	}

	user, err := app.db.CreateUser(ctx, user)
	if err != nil {
		return "", err
	}

	return auth.GenerateToken(user.ID)
}

// ProcessLogin verifies the credentials and returns a bearer token. Unknown usernames
// fail with ErrInvalidCredentials; wrong passwords propagate the bcrypt mismatch.
func (app *App) ProcessLogin(ctx context.Context, req models.AuthRequest) (string, error) {
	if req.Username == "" || req.Password == "" {
		return "", fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	user := &models.User{
		Username: req.Username,
		Password: req.Password,
	}

	user, err := app.db.CheckUser(ctx, user)
	if err != nil {
		return "", err
	}
	if user.ID == 0 {
		return "", ErrInvalidCredentials
	}

	return auth.GenerateToken(user.ID)
}

// ProcessProfile assembles the aggregated profile view: account totals, derived level,
// earned titles, threshold-based achievements, and quest statistics.
func (app *App) ProcessProfile(ctx context.Context, userID int64) (*models.Profile, error) {
	user, err := app.db.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	titles, err := app.db.ListTitles(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats, err := app.db.GetQuestStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	skills, err := app.db.ListSkills(ctx, userID)
	if err != nil {
		return nil, err
	}

	skillsUsed := 0
	for _, skill := range skills {
		if skill.XP > 0 {
			skillsUsed++
		}
	}

	return &models.Profile{
		Name:         user.Username,
		XP:           user.TotalXp,
		Coins:        user.Coins,
		Level:        Rank(user.TotalXp),
		Achievements: achievements(user.TotalXp, stats, skillsUsed),
		Titles:       titles,
		QuestStats:   stats,
	}, nil
}

// achievements derives the threshold-based achievement names from account totals
// and quest statistics.
func achievements(totalXp int, stats map[string]models.QuestStats, skillsUsed int) []string {
	earned := make([]string, 0)
	add := func(condition bool, name string) {
		if condition {
			earned = append(earned, name)
		}
	}

	dailyDone := stats["dailyQuests"].Completed
	dungeonDone := stats["dungeonQuests"].Completed
	level := Rank(totalXp)

	add(dailyDone >= 10, "Daily Warrior")
	add(dailyDone >= 50, "Routine Master")
	add(dungeonDone >= 5, "Dungeon Slayer")
	add(dungeonDone >= 20, "Dungeon Master")
	add(level >= 50, "Elite Hunter")
	add(level >= 80, "Shadow Legion")
	add(totalXp >= 10000, "XP Collector")
	add(dailyDone+dungeonDone >= 100, "Quest Master")
	add(dailyDone+dungeonDone >= 250, "Legendary Achiever")
	add(skillsUsed >= 5, "Versatile Hunter")
	add(skillsUsed >= 10, "Master of All")

	return earned
}

// ProcessUpdateProfile overrides totals from editor mode. Values must be non-negative.
func (app *App) ProcessUpdateProfile(ctx context.Context, userID int64, req models.UpdateProfileRequest) (*models.User, error) {
	if req.TotalXp != nil && *req.TotalXp < 0 {
		return nil, fmt.Errorf("%w: total XP must be a non-negative number", ErrValidation)
	}
	if req.Coins != nil && *req.Coins < 0 {
		return nil, fmt.Errorf("%w: coins must be a non-negative number", ErrValidation)
	}

	return app.db.UpdateProfile(ctx, userID, req.TotalXp, req.Coins)
}

// ProcessDeleteTitle removes a title from the user's titles by name.
func (app *App) ProcessDeleteTitle(ctx context.Context, userID int64, name string) error {
	if name == "" {
		return fmt.Errorf("%w: title name is required", ErrValidation)
	}
	return app.db.DeleteTitle(ctx, userID, name)
}

// ProcessInventory retrieves the user's purchased items.
func (app *App) ProcessInventory(ctx context.Context, userID int64) ([]models.InventoryItem, error) {
	return app.db.ListInventory(ctx, userID)
}

// ProcessPurchase buys a shop item for the user.
func (app *App) ProcessPurchase(ctx context.Context, userID int64, req models.PurchaseRequest) (*models.PurchaseResult, error) {
	if req.ItemID == 0 {
		return nil, fmt.Errorf("%w: item ID is required", ErrValidation)
	}
	return app.db.PurchaseItem(ctx, userID, req.ItemID)
}

// ProcessUseItem marks an inventory item as used.
func (app *App) ProcessUseItem(ctx context.Context, userID, itemID int64) (*models.InventoryItem, error) {
	return app.db.UseInventoryItem(ctx, userID, itemID)
}

// ProcessDeleteInventoryItem removes an item from the user's inventory.
func (app *App) ProcessDeleteInventoryItem(ctx context.Context, userID, itemID int64) (*models.InventoryItem, error) {
	return app.db.DeleteInventoryItem(ctx, userID, itemID)
}
