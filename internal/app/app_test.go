package app

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shadow_system/internal/models"
	"shadow_system/internal/pkg/logger"
	"shadow_system/internal/storage/mocks"
)

func newTestApp(t *testing.T) (*App, *mocks.MockStorage) {
	t.Helper()

	l, err := logger.CreateLogger("info")
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockDB := mocks.NewMockStorage(ctrl)
	return NewApp(mockDB, l), mockDB
}

func TestDayKey(t *testing.T) {
	day := time.Date(2025, time.March, 7, 23, 59, 59, 0, time.Local)
	assert.Equal(t, "2025-03-07", DayKey(day))

	nextDay := day.Add(time.Second)
	assert.Equal(t, "2025-03-08", DayKey(nextDay))
	assert.NotEqual(t, DayKey(day), DayKey(nextDay))
}

func TestRank(t *testing.T) {
	testCases := []struct {
		totalXp  int
		expected int
	}{
		{totalXp: 0, expected: 0},
		{totalXp: 249, expected: 0},
		{totalXp: 250, expected: 1},
		{totalXp: 12500, expected: 50},
		{totalXp: 20000, expected: 80},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, Rank(tc.totalXp), "totalXp=%d", tc.totalXp)
	}
}

func TestSkillLevel(t *testing.T) {
	assert.Equal(t, 0, SkillLevel(0))
	assert.Equal(t, 0, SkillLevel(99))
	assert.Equal(t, 1, SkillLevel(100))
	assert.Equal(t, 7, SkillLevel(750))
}

func TestAchievements(t *testing.T) {
	testCases := []struct {
		name       string
		totalXp    int
		daily      int
		dungeon    int
		skillsUsed int
		expected   []string
	}{
		{
			name:     "fresh account",
			expected: []string{},
		},
		{
			name:     "daily warrior only",
			daily:    10,
			expected: []string{"Daily Warrior"},
		},
		{
			name:     "dungeon thresholds stack",
			dungeon:  20,
			expected: []string{"Dungeon Slayer", "Dungeon Master"},
		},
		{
			name:     "level and xp achievements",
			totalXp:  20000,
			expected: []string{"Elite Hunter", "Shadow Legion", "XP Collector"},
		},
		{
			name:     "quest master counts both quest types",
			daily:    60,
			dungeon:  40,
			expected: []string{"Daily Warrior", "Routine Master", "Dungeon Slayer", "Dungeon Master", "Quest Master"},
		},
		{
			name:       "versatile hunter",
			skillsUsed: 5,
			expected:   []string{"Versatile Hunter"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stats := map[string]models.QuestStats{
				"dailyQuests":   {Completed: tc.daily},
				"dungeonQuests": {Completed: tc.dungeon},
			}
			assert.Equal(t, tc.expected, achievements(tc.totalXp, stats, tc.skillsUsed))
		})
	}
}

func TestProcessRegister_Validation(t *testing.T) {
	appInstance, _ := newTestApp(t)

	testCases := []struct {
		name     string
		username string
		password string
	}{
		{name: "empty credentials", username: "", password: ""},
		{name: "username too short", username: "ab", password: "password"},
		{name: "username too long", username: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", password: "password"},
		{name: "password too short", username: "hunter", password: "12345"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := appInstance.ProcessRegister(context.Background(), models.AuthRequest{
				Username: tc.username,
				Password: tc.password,
			})
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestProcessRegister_StartingCoins(t *testing.T) {
	appInstance, mockDB := newTestApp(t)

	mockDB.EXPECT().CreateUser(gomock.Any(), gomock.AssignableToTypeOf(&models.User{})).
		DoAndReturn(func(ctx context.Context, user *models.User) (*models.User, error) {
			assert.Equal(t, 100, user.Coins)
			return &models.User{ID: 7, Username: user.Username, Coins: user.Coins}, nil
		})

	token, err := appInstance.ProcessRegister(context.Background(), models.AuthRequest{
		Username: "hunter",
		Password: "password",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestProcessLogin_UnknownUser(t *testing.T) {
	appInstance, mockDB := newTestApp(t)

	mockDB.EXPECT().CheckUser(gomock.Any(), gomock.AssignableToTypeOf(&models.User{})).
		DoAndReturn(func(ctx context.Context, user *models.User) (*models.User, error) {
			return &models.User{ID: 0, Username: user.Username}, nil
		})

	_, err := appInstance.ProcessLogin(context.Background(), models.AuthRequest{
		Username: "ghost",
		Password: "password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestProcessCompleteDailyQuests_Validation(t *testing.T) {
	appInstance, _ := newTestApp(t)

	testCases := []struct {
		name        string
		request     models.CompleteDailyQuestsRequest
		expectedErr error
	}{
		{
			name:        "no quests selected",
			request:     models.CompleteDailyQuestsRequest{TotalXP: 10, TotalCoins: 5},
			expectedErr: ErrNoQuestsSelected,
		},
		{
			name:        "missing xp reward",
			request:     models.CompleteDailyQuestsRequest{CompletedQuestIDs: []int64{1}, TotalCoins: 5},
			expectedErr: ErrValidation,
		},
		{
			name:        "missing coin reward",
			request:     models.CompleteDailyQuestsRequest{CompletedQuestIDs: []int64{1}, TotalXP: 10},
			expectedErr: ErrValidation,
		},
		{
			name: "negative skill delta",
			request: models.CompleteDailyQuestsRequest{
				CompletedQuestIDs: []int64{1},
				TotalXP:           10,
				TotalCoins:        5,
				SkillXPUpdates:    map[string]int{"strength": -5},
			},
			expectedErr: ErrValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := appInstance.ProcessCompleteDailyQuests(context.Background(), 1, tc.request)
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func TestProcessAcceptPenaltyQuest_NextAvailable(t *testing.T) {
	appInstance, mockDB := newTestApp(t)

	mockDB.EXPECT().AcceptPenaltyQuest(gomock.Any(), int64(1), int64(3), DayKey(time.Now())).
		Return(&models.PenaltyCompletion{XPAwarded: 40, TotalXP: 540, CompletedToday: true}, nil)

	completion, err := appInstance.ProcessAcceptPenaltyQuest(context.Background(), 1, 3)
	require.NoError(t, err)
	assert.Equal(t, "Tomorrow at 12:00 AM", completion.NextAvailable)
	assert.Equal(t, Rank(540), completion.Level)
	assert.True(t, completion.CompletedToday)
}

func TestProcessCreateQuest_Validation(t *testing.T) {
	appInstance, _ := newTestApp(t)

	testCases := []struct {
		name    string
		request models.CreateQuestRequest
	}{
		{name: "name too short", request: models.CreateQuestRequest{Name: "ab", XP: 10, Coins: 5, Skill: "strength"}},
		{name: "xp out of range", request: models.CreateQuestRequest{Name: "morning run", XP: 10001, Coins: 5, Skill: "strength"}},
		{name: "coins out of range", request: models.CreateQuestRequest{Name: "morning run", XP: 10, Coins: 0, Skill: "strength"}},
		{name: "missing skill", request: models.CreateQuestRequest{Name: "morning run", XP: 10, Coins: 5}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := appInstance.ProcessCreateDailyQuest(context.Background(), 1, tc.request)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	// Dungeon quests additionally require a title reward.
	_, err := appInstance.ProcessCreateDungeonQuest(context.Background(), 1, models.CreateQuestRequest{
		Name: "clear the gate", XP: 100, Coins: 50, Skill: "strength",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestProcessSkillBatch(t *testing.T) {
	appInstance, mockDB := newTestApp(t)

	mockDB.EXPECT().AddSkillXP(gomock.Any(), int64(1), "strength", 30).
		Return(&models.Skill{ID: 1, Name: "Strength", XP: 130, Level: 1, CreatedBy: 1}, nil)

	updated, failures, err := appInstance.ProcessSkillBatch(context.Background(), 1, models.SkillBatchRequest{
		SkillXPUpdates: map[string]int{"strength": 30},
	})
	require.NoError(t, err)
	assert.Len(t, updated, 1)
	assert.Empty(t, failures)
	assert.Equal(t, 130, updated[0].XP)

	_, _, err = appInstance.ProcessSkillBatch(context.Background(), 1, models.SkillBatchRequest{})
	assert.ErrorIs(t, err, ErrValidation)
}
