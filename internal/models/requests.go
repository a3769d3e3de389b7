package models

// AuthRequest represents the register and login request payload.
type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse represents the authentication response payload.
type AuthResponse struct {
	Token string `json:"token"`
}

// CreateQuestRequest carries the fields for creating daily and dungeon quests.
// Title is only used by dungeon quests.
type CreateQuestRequest struct {
	Name  string `json:"name"`
	XP    int    `json:"xp"`
	Coins int    `json:"coins"`
	Skill string `json:"skill"`
	Title string `json:"title"`
}

// UpdateQuestRequest carries the mutable fields of a quest.
type UpdateQuestRequest struct {
	Name  *string `json:"name"`
	XP    *int    `json:"xp"`
	Coins *int    `json:"coins"`
	Skill *string `json:"skill"`
	Title *string `json:"title"`
}

// CreatePenaltyQuestRequest carries the fields for creating a penalty quest.
type CreatePenaltyQuestRequest struct {
	Name  string `json:"name"`
	XP    int    `json:"xp"`
	Skill string `json:"skill"`
}

// CreateSkillRequest carries the fields for creating a skill.
type CreateSkillRequest struct {
	Name string `json:"name"`
	XP   int    `json:"xp"`
}

// UpdateSkillRequest carries the replacement XP value for a skill.
type UpdateSkillRequest struct {
	XP *int `json:"xp"`
}

// SkillBatchRequest maps skill names to XP deltas for batch updates.
type SkillBatchRequest struct {
	SkillXPUpdates map[string]int `json:"skillXPUpdates"`
}

// CreateShopItemRequest carries the fields for creating a shop item.
type CreateShopItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Cost        int    `json:"cost"`
}

// CreateRewardRequest carries the fields for creating a daily reward.
type CreateRewardRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// PurchaseRequest identifies the shop item to purchase.
type PurchaseRequest struct {
	ItemID int64 `json:"itemId"`
}

// ToggleQuestRequest identifies the daily quest whose completion mark to flip.
type ToggleQuestRequest struct {
	QuestID int64 `json:"questId"`
}

// CompleteDailyQuestsRequest carries the daily batch submitted by the client:
// the set of completed quest ids and the aggregated rewards to credit.
type CompleteDailyQuestsRequest struct {
	CompletedQuestIDs []int64        `json:"completedQuestIds"`
	TotalXP           int            `json:"totalXP"`
	TotalCoins        int            `json:"totalCoins"`
	SkillXPUpdates    map[string]int `json:"skillXPUpdates"`
}

// UpdateProfileRequest carries the editor-mode profile overrides.
type UpdateProfileRequest struct {
	TotalXp *int `json:"totalXp"`
	Coins   *int `json:"coins"`
}
