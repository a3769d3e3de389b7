// Package models defines the data structures used throughout the application.
// It includes the persistent entities (users, quests, skills, shop items) as well as
// request and response payloads for the HTTP API.
package models

import "time"

// Response is the generic envelope for successful API responses.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Count   int         `json:"count,omitempty"`
}

// ErrorResponse is the envelope for failed API responses.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// User represents an account in the system.
// The password field is write-only; it never appears in API responses.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	Coins    int    `json:"coins"`
	TotalXp  int    `json:"totalXp"`
}

// Title is a cosmetic achievement string granted to a user.
// Names are unique within a single user's title list.
type Title struct {
	Name      string    `json:"name"`
	Source    string    `json:"source"`
	AwardedAt time.Time `json:"awardedAt"`
}

// Title sources.
const (
	TitleSourceDailyQuest       = "daily_quest"
	TitleSourceDungeonQuest     = "dungeon_quest"
	TitleSourceLevelAchievement = "level_achievement"
)

// InventoryItem is a snapshot of a shop item at purchase time, owned by a user.
type InventoryItem struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Cost        int        `json:"cost"`
	PurchasedAt time.Time  `json:"purchasedAt"`
	Used        bool       `json:"used"`
	UsedAt      *time.Time `json:"usedAt,omitempty"`
}

// DailyQuest is a repeatable task that can be completed once per user per day.
// Completion state lives in the per-(user, day) ledger, not on the quest itself.
type DailyQuest struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	XP        int       `json:"xp"`
	Coins     int       `json:"coins"`
	Skill     string    `json:"skill"`
	CreatedBy int64     `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// DungeonQuest is a one-shot quest that additionally rewards a title.
// It carries a global completion flag: only one completion total, by any user.
type DungeonQuest struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	XP          int       `json:"xp"`
	Coins       int       `json:"coins"`
	Skill       string    `json:"skill"`
	Title       string    `json:"title"`
	IsCompleted bool      `json:"isCompleted"`
	CreatedBy   int64     `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PenaltyQuest awards XP only and may be completed once per user per day.
// IsCompletedToday and LastCompletedAt are derived for the requesting user.
type PenaltyQuest struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	XP               int        `json:"xp"`
	Skill            string     `json:"skill"`
	CreatedBy        int64      `json:"createdBy"`
	CreatedAt        time.Time  `json:"createdAt"`
	IsCompletedToday bool       `json:"isCompletedToday"`
	LastCompletedAt  *time.Time `json:"lastCompletedAt,omitempty"`
}

// Skill is a named progression track per user. Level is derived as xp/100 floored.
type Skill struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	XP        int       `json:"xp"`
	Level     int       `json:"level"`
	CreatedBy int64     `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// ShopItem is a purchasable item. Deleting an item only deactivates it so that
// past purchases keep their reference data.
type ShopItem struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Cost        int       `json:"cost"`
	CreatedBy   int64     `json:"createdBy"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DailyReward is a user-defined reward note shown alongside daily quests.
type DailyReward struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedBy   int64     `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DailyStatus describes the state of a user's daily quest ledger for one calendar day.
type DailyStatus struct {
	CompletedQuests []int64 `json:"completedQuests"`
	FinishedToday   bool    `json:"finishedToday"`
	LastResetDate   string  `json:"lastResetDate"`
	CurrentDate     string  `json:"currentDate"`
}

// ToggleResult is returned after flipping a daily quest's completion mark.
type ToggleResult struct {
	QuestID     int64        `json:"questId"`
	IsCompleted bool         `json:"isCompleted"`
	Status      *DailyStatus `json:"status"`
}

// DailySummary is returned after a successful daily batch completion.
type DailySummary struct {
	TotalXP        int            `json:"totalXP"`
	Coins          int            `json:"coins"`
	SkillXP        map[string]int `json:"skillXP"`
	AddedXP        int            `json:"addedXP"`
	AddedCoins     int            `json:"addedCoins"`
	CompletionDate string         `json:"completionDate"`
}

// SkillProgress reports the state of a skill after crediting quest XP to it.
type SkillProgress struct {
	Skill string `json:"skill"`
	NewXp int    `json:"newXp"`
	Level int    `json:"level"`
}

// DungeonCompletion is returned after completing a dungeon quest.
type DungeonCompletion struct {
	Quest          *DungeonQuest  `json:"quest"`
	UpdatedProfile *ProfileUpdate `json:"updatedProfile"`
}

// ProfileUpdate carries the user totals after a dungeon completion.
type ProfileUpdate struct {
	TotalXp       int            `json:"totalXp"`
	Coins         int            `json:"coins"`
	NewTitle      string         `json:"newTitle"`
	SkillProgress *SkillProgress `json:"skillProgress"`
}

// PenaltyCompletion is returned after accepting a penalty quest.
type PenaltyCompletion struct {
	Quest          *PenaltyQuest `json:"quest"`
	XPAwarded      int           `json:"xpAwarded"`
	TotalXP        int           `json:"totalXP"`
	Level          int           `json:"level"`
	CompletedToday bool          `json:"completedToday"`
	NextAvailable  string        `json:"nextAvailable"`
}

// QuestStats summarizes quest counts per quest type for the profile view.
type QuestStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

// Profile aggregates account state, derived achievements, and quest statistics.
type Profile struct {
	Name         string                `json:"name"`
	XP           int                   `json:"xp"`
	Coins        int                   `json:"coins"`
	Level        int                   `json:"level"`
	Achievements []string              `json:"achievements"`
	Titles       []Title               `json:"titles"`
	QuestStats   map[string]QuestStats `json:"questStats"`
}

// PurchaseResult is returned after a successful shop purchase.
type PurchaseResult struct {
	RemainingCoins int            `json:"remainingCoins"`
	PurchasedItem  *InventoryItem `json:"purchasedItem"`
}
