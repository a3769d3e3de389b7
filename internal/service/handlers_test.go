package service

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/jackc/pgerrcode"
	pgx_pgconn "github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"shadow_system/internal/app"
	"shadow_system/internal/config"
	"shadow_system/internal/models"
	"shadow_system/internal/pkg/auth"
	"shadow_system/internal/pkg/logger"
	"shadow_system/internal/storage"
	"shadow_system/internal/storage/mocks"
)

func newTestServer(t *testing.T) (*httptest.Server, *mocks.MockStorage) {
	t.Helper()

	l, err := logger.CreateLogger(config.LogLevel)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockDB := mocks.NewMockStorage(ctrl)
	appInstance := app.NewApp(mockDB, l)
	service := NewService(appInstance, config.ServerRunAddress, l)

	testServer := httptest.NewServer(service.NewRouter())
	t.Cleanup(testServer.Close)

	return testServer, mockDB
}

func testRequest(t *testing.T, ts *httptest.Server, method, path string, requestBody []byte, token string) (*http.Response, string) {
	req, err := http.NewRequest(method, ts.URL+path, bytes.NewBuffer(requestBody))
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(body)
}

func TestRegisterHandler_Gomock(t *testing.T) {
	testServer, mockDB := newTestServer(t)

	type expectedData struct {
		expectedStatusCode int
		expectedBody       string
	}

	testCases := []struct {
		name        string
		requestBody []byte
		setupMock   func()
		expected    expectedData
	}{
		{
			name:        "Invalid JSON",
			requestBody: []byte("some body"),
			setupMock:   func() {},
			expected: expectedData{
				expectedStatusCode: http.StatusBadRequest,
				expectedBody:       "{\"success\":false,\"message\":\"invalid character 's' looking for beginning of value\"}\n",
			},
		},
		{
			name:        "Username too short",
			requestBody: []byte(`{"username": "ab", "password": "password"}`),
			setupMock:   func() {},
			expected: expectedData{
				expectedStatusCode: http.StatusBadRequest,
				expectedBody:       "{\"success\":false,\"message\":\"validation error: username must be between 3 and 30 characters\"}\n",
			},
		},
		{
			name:        "Password too short",
			requestBody: []byte(`{"username": "hunter", "password": "12345"}`),
			setupMock:   func() {},
			expected: expectedData{
				expectedStatusCode: http.StatusBadRequest,
				expectedBody:       "{\"success\":false,\"message\":\"validation error: password must be at least 6 characters long\"}\n",
			},
		},
		{
			name:        "Username taken (unique violation)",
			requestBody: []byte(`{"username": "existing_hunter", "password": "password"}`),
			setupMock: func() {
				mockDB.EXPECT().CreateUser(gomock.Any(), gomock.AssignableToTypeOf(&models.User{})).
					Return(nil, &pgx_pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_username_key"})
			},
			expected: expectedData{
				expectedStatusCode: http.StatusBadRequest,
				expectedBody:       "{\"success\":false,\"message\":\"username already taken\"}\n",
			},
		},
		{
			name:        "Successful registration",
			requestBody: []byte(`{"username": "new_hunter", "password": "password"}`),
			setupMock: func() {
				mockDB.EXPECT().CreateUser(gomock.Any(), gomock.AssignableToTypeOf(&models.User{})).
					Return(&models.User{ID: 42, Username: "new_hunter", Coins: 100}, nil)
			},
			expected: expectedData{
				expectedStatusCode: http.StatusCreated,
				expectedBody:       "",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()
			resp, body := testRequest(t, testServer, http.MethodPost, "/api/auth/register", tc.requestBody, "")
			assert.Equal(t, tc.expected.expectedStatusCode, resp.StatusCode)
			assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

			if tc.expected.expectedStatusCode == http.StatusCreated {
				var envelope struct {
					Success bool                `json:"success"`
					Data    models.AuthResponse `json:"data"`
				}
				require.NoError(t, json.Unmarshal([]byte(body), &envelope))
				assert.True(t, envelope.Success)
				assert.NotEmpty(t, envelope.Data.Token, "token should not be empty")
			} else {
				assert.Equal(t, tc.expected.expectedBody, body)
			}
		})
	}
}

func TestLoginHandler_Gomock(t *testing.T) {
	testServer, mockDB := newTestServer(t)

	type expectedData struct {
		expectedStatusCode int
		expectedBody       string
	}

	testCases := []struct {
		name        string
		requestBody []byte
		setupMock   func()
		expected    expectedData
	}{
		{
			name:        "Unknown username",
			requestBody: []byte(`{"username": "ghost", "password": "password"}`),
			setupMock: func() {
				mockDB.EXPECT().CheckUser(gomock.Any(), gomock.AssignableToTypeOf(&models.User{})).
					Return(&models.User{ID: 0, Username: "ghost"}, nil)
			},
			expected: expectedData{
				expectedStatusCode: http.StatusUnauthorized,
				expectedBody:       "{\"success\":false,\"message\":\"invalid username or password\"}\n",
			},
		},
		{
			name:        "Incorrect password",
			requestBody: []byte(`{"username": "hunter", "password": "wrongpass"}`),
			setupMock: func() {
				mockDB.EXPECT().CheckUser(gomock.Any(), gomock.AssignableToTypeOf(&models.User{})).
					Return(&models.User{ID: 1, Username: "hunter"}, bcrypt.ErrMismatchedHashAndPassword)
			},
			expected: expectedData{
				expectedStatusCode: http.StatusUnauthorized,
				expectedBody:       "{\"success\":false,\"message\":\"invalid username or password\"}\n",
			},
		},
		{
			name:        "Successful login",
			requestBody: []byte(`{"username": "hunter", "password": "password"}`),
			setupMock: func() {
				mockDB.EXPECT().CheckUser(gomock.Any(), gomock.AssignableToTypeOf(&models.User{})).
					Return(&models.User{ID: 1, Username: "hunter"}, nil)
			},
			expected: expectedData{
				expectedStatusCode: http.StatusOK,
				expectedBody:       "",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()
			resp, body := testRequest(t, testServer, http.MethodPost, "/api/auth/login", tc.requestBody, "")
			assert.Equal(t, tc.expected.expectedStatusCode, resp.StatusCode)

			if tc.expected.expectedStatusCode == http.StatusOK {
				var envelope struct {
					Success bool                `json:"success"`
					Data    models.AuthResponse `json:"data"`
				}
				require.NoError(t, json.Unmarshal([]byte(body), &envelope))
				assert.NotEmpty(t, envelope.Data.Token, "token should not be empty")
			} else {
				assert.Equal(t, tc.expected.expectedBody, body)
			}
		})
	}
}

func TestCompleteDailyQuestsHandler_Gomock(t *testing.T) {
	testServer, mockDB := newTestServer(t)

	token, err := auth.GenerateToken(1)
	require.NoError(t, err)

	type expectedData struct {
		expectedStatusCode int
		expectedBody       string
	}

	testCases := []struct {
		name        string
		token       string
		requestBody []byte
		setupMock   func()
		expected    expectedData
	}{
		{
			name:        "Unauthorized - no token",
			token:       "",
			requestBody: []byte(`{}`),
			setupMock:   func() {},
			expected: expectedData{
				expectedStatusCode: http.StatusUnauthorized,
				expectedBody:       "{\"success\":false,\"message\":\"missing auth header\"}\n",
			},
		},
		{
			name:        "No quests selected",
			token:       token,
			requestBody: []byte(`{"completedQuestIds": [], "totalXP": 10, "totalCoins": 5}`),
			setupMock:   func() {},
			expected: expectedData{
				expectedStatusCode: http.StatusBadRequest,
				expectedBody:       "{\"success\":false,\"message\":\"no completed quests provided\"}\n",
			},
		},
		{
			name:        "Missing reward data",
			token:       token,
			requestBody: []byte(`{"completedQuestIds": [1, 2]}`),
			setupMock:   func() {},
			expected: expectedData{
				expectedStatusCode: http.StatusBadRequest,
				expectedBody:       "{\"success\":false,\"message\":\"validation error: missing reward data\"}\n",
			},
		},
		{
			name:        "Already finished today",
			token:       token,
			requestBody: []byte(`{"completedQuestIds": [1, 2], "totalXP": 30, "totalCoins": 15}`),
			setupMock: func() {
				mockDB.EXPECT().CompleteDailyBatch(gomock.Any(), int64(1), gomock.Any(), []int64{1, 2}, 30, 15, gomock.Any()).
					Return(nil, storage.ErrAlreadyFinishedToday)
			},
			expected: expectedData{
				expectedStatusCode: http.StatusBadRequest,
				expectedBody:       "{\"success\":false,\"message\":\"daily quests already completed for today\"}\n",
			},
		},
		{
			name:        "Successful completion",
			token:       token,
			requestBody: []byte(`{"completedQuestIds": [1, 2], "totalXP": 30, "totalCoins": 15, "skillXPUpdates": {"strength": 30}}`),
			setupMock: func() {
				mockDB.EXPECT().CompleteDailyBatch(gomock.Any(), int64(1), gomock.Any(), []int64{1, 2}, 30, 15, map[string]int{"strength": 30}).
					Return(&models.DailySummary{TotalXP: 130, Coins: 115, AddedXP: 30, AddedCoins: 15, SkillXP: map[string]int{"strength": 30}}, nil)
			},
			expected: expectedData{
				expectedStatusCode: http.StatusOK,
				expectedBody:       "",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()
			resp, body := testRequest(t, testServer, http.MethodPost, "/api/user/complete-daily-quests", tc.requestBody, tc.token)
			assert.Equal(t, tc.expected.expectedStatusCode, resp.StatusCode)

			if tc.expected.expectedStatusCode == http.StatusOK {
				var envelope struct {
					Success bool                `json:"success"`
					Data    models.DailySummary `json:"data"`
				}
				require.NoError(t, json.Unmarshal([]byte(body), &envelope))
				assert.True(t, envelope.Success)
				assert.Equal(t, 130, envelope.Data.TotalXP)
				assert.Equal(t, 30, envelope.Data.AddedXP)
			} else {
				assert.Equal(t, tc.expected.expectedBody, body)
			}
		})
	}
}

func TestToggleQuestHandler_Gomock(t *testing.T) {
	testServer, mockDB := newTestServer(t)

	token, err := auth.GenerateToken(1)
	require.NoError(t, err)

	type expectedData struct {
		expectedStatusCode int
		expectedBody       string
	}

	testCases := []struct {
		name        string
		requestBody []byte
		setupMock   func()
		expected    expectedData
	}{
		{
			name:        "Missing quest id",
			requestBody: []byte(`{}`),
			setupMock:   func() {},
			expected: expectedData{
				expectedStatusCode: http.StatusBadRequest,
				expectedBody:       "{\"success\":false,\"message\":\"validation error: quest ID is required\"}\n",
			},
		},
		{
			name:        "Quest not found",
			requestBody: []byte(`{"questId": 99}`),
			setupMock: func() {
				mockDB.EXPECT().ToggleDailyQuest(gomock.Any(), int64(1), gomock.Any(), int64(99)).
					Return(nil, false, sql.ErrNoRows)
			},
			expected: expectedData{
				expectedStatusCode: http.StatusNotFound,
				expectedBody:       "{\"success\":false,\"message\":\"quest not found\"}\n",
			},
		},
		{
			name:        "Day already finished",
			requestBody: []byte(`{"questId": 5}`),
			setupMock: func() {
				mockDB.EXPECT().ToggleDailyQuest(gomock.Any(), int64(1), gomock.Any(), int64(5)).
					Return(nil, false, storage.ErrAlreadyFinishedToday)
			},
			expected: expectedData{
				expectedStatusCode: http.StatusBadRequest,
				expectedBody:       "{\"success\":false,\"message\":\"daily quests already completed for today\"}\n",
			},
		},
		{
			name:        "Quest marked",
			requestBody: []byte(`{"questId": 5}`),
			setupMock: func() {
				mockDB.EXPECT().ToggleDailyQuest(gomock.Any(), int64(1), gomock.Any(), int64(5)).
					Return(&models.DailyStatus{CompletedQuests: []int64{5}}, true, nil)
			},
			expected: expectedData{
				expectedStatusCode: http.StatusOK,
				expectedBody:       "",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()
			resp, body := testRequest(t, testServer, http.MethodPost, "/api/user/toggle-quest-completion", tc.requestBody, token)
			assert.Equal(t, tc.expected.expectedStatusCode, resp.StatusCode)

			if tc.expected.expectedStatusCode == http.StatusOK {
				var envelope struct {
					Success bool                `json:"success"`
					Message string              `json:"message"`
					Data    models.ToggleResult `json:"data"`
				}
				require.NoError(t, json.Unmarshal([]byte(body), &envelope))
				assert.Equal(t, "quest marked as completed", envelope.Message)
				assert.Equal(t, int64(5), envelope.Data.QuestID)
				assert.True(t, envelope.Data.IsCompleted)
				assert.Equal(t, []int64{5}, envelope.Data.Status.CompletedQuests)
			} else {
				assert.Equal(t, tc.expected.expectedBody, body)
			}
		})
	}
}

func TestCompleteDungeonQuestHandler_Gomock(t *testing.T) {
	testServer, mockDB := newTestServer(t)

	token, err := auth.GenerateToken(1)
	require.NoError(t, err)

	type expectedData struct {
		expectedStatusCode int
		expectedBody       string
	}

	testCases := []struct {
		name      string
		path      string
		setupMock func()
		expected  expectedData
	}{
		{
			name: "Quest not found",
			path: "/api/dungeon-quests/99/complete",
			setupMock: func() {
				mockDB.EXPECT().CompleteDungeonQuest(gomock.Any(), int64(1), int64(99)).
					Return(nil, sql.ErrNoRows)
			},
			expected: expectedData{
				expectedStatusCode: http.StatusNotFound,
				expectedBody:       "{\"success\":false,\"message\":\"resource not found\"}\n",
			},
		},
		{
			name: "Already completed",
			path: "/api/dungeon-quests/7/complete",
			setupMock: func() {
				mockDB.EXPECT().CompleteDungeonQuest(gomock.Any(), int64(1), int64(7)).
					Return(nil, storage.ErrAlreadyCompleted)
			},
			expected: expectedData{
				expectedStatusCode: http.StatusBadRequest,
				expectedBody:       "{\"success\":false,\"message\":\"this quest has already been completed\"}\n",
			},
		},
		{
			name: "Successful completion",
			path: "/api/dungeon-quests/7/complete",
			setupMock: func() {
				mockDB.EXPECT().CompleteDungeonQuest(gomock.Any(), int64(1), int64(7)).
					Return(&models.DungeonCompletion{
						Quest: &models.DungeonQuest{ID: 7, Name: "Clear the red gate", Title: "Gatekeeper", IsCompleted: true},
						UpdatedProfile: &models.ProfileUpdate{
							TotalXp:  600,
							Coins:    250,
							NewTitle: "Gatekeeper",
						},
					}, nil)
			},
			expected: expectedData{
				expectedStatusCode: http.StatusOK,
				expectedBody:       "",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()
			resp, body := testRequest(t, testServer, http.MethodPatch, tc.path, nil, token)
			assert.Equal(t, tc.expected.expectedStatusCode, resp.StatusCode)

			if tc.expected.expectedStatusCode == http.StatusOK {
				var envelope struct {
					Success bool                     `json:"success"`
					Data    models.DungeonCompletion `json:"data"`
				}
				require.NoError(t, json.Unmarshal([]byte(body), &envelope))
				assert.True(t, envelope.Data.Quest.IsCompleted)
				assert.Equal(t, "Gatekeeper", envelope.Data.UpdatedProfile.NewTitle)
			} else {
				assert.Equal(t, tc.expected.expectedBody, body)
			}
		})
	}
}

func TestAcceptPenaltyQuestHandler_Gomock(t *testing.T) {
	testServer, mockDB := newTestServer(t)

	token, err := auth.GenerateToken(1)
	require.NoError(t, err)

	type expectedData struct {
		expectedStatusCode int
		expectedBody       string
	}

	testCases := []struct {
		name      string
		path      string
		setupMock func()
		expected  expectedData
	}{
		{
			name: "Not the owner",
			path: "/api/penalty-quests/3/accept",
			setupMock: func() {
				mockDB.EXPECT().AcceptPenaltyQuest(gomock.Any(), int64(1), int64(3), gomock.Any()).
					Return(nil, storage.ErrNotOwner)
			},
			expected: expectedData{
				expectedStatusCode: http.StatusForbidden,
				expectedBody:       "{\"success\":false,\"message\":\"you can only modify your own resources\"}\n",
			},
		},
		{
			name: "Already completed today (ledger violation)",
			path: "/api/penalty-quests/3/accept",
			setupMock: func() {
				mockDB.EXPECT().AcceptPenaltyQuest(gomock.Any(), int64(1), int64(3), gomock.Any()).
					Return(nil, &pgx_pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "penalty_completions_pkey"})
			},
			expected: expectedData{
				expectedStatusCode: http.StatusBadRequest,
				expectedBody:       "{\"success\":false,\"message\":\"penalty quest already completed today\"}\n",
			},
		},
		{
			name: "Successful acceptance",
			path: "/api/penalty-quests/3/accept",
			setupMock: func() {
				mockDB.EXPECT().AcceptPenaltyQuest(gomock.Any(), int64(1), int64(3), gomock.Any()).
					Return(&models.PenaltyCompletion{XPAwarded: 40, TotalXP: 540, CompletedToday: true}, nil)
			},
			expected: expectedData{
				expectedStatusCode: http.StatusOK,
				expectedBody:       "",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()
			resp, body := testRequest(t, testServer, http.MethodPatch, tc.path, nil, token)
			assert.Equal(t, tc.expected.expectedStatusCode, resp.StatusCode)

			if tc.expected.expectedStatusCode == http.StatusOK {
				var envelope struct {
					Success bool                     `json:"success"`
					Data    models.PenaltyCompletion `json:"data"`
				}
				require.NoError(t, json.Unmarshal([]byte(body), &envelope))
				assert.True(t, envelope.Data.CompletedToday)
				assert.Equal(t, 2, envelope.Data.Level)
				assert.Equal(t, "Tomorrow at 12:00 AM", envelope.Data.NextAvailable)
			} else {
				assert.Equal(t, tc.expected.expectedBody, body)
			}
		})
	}
}

func TestPurchaseHandler_Gomock(t *testing.T) {
	testServer, mockDB := newTestServer(t)

	token, err := auth.GenerateToken(1)
	require.NoError(t, err)

	type expectedData struct {
		expectedStatusCode int
		expectedBody       string
	}

	testCases := []struct {
		name        string
		requestBody []byte
		setupMock   func()
		expected    expectedData
	}{
		{
			name:        "Missing item id",
			requestBody: []byte(`{}`),
			setupMock:   func() {},
			expected: expectedData{
				expectedStatusCode: http.StatusBadRequest,
				expectedBody:       "{\"success\":false,\"message\":\"validation error: item ID is required\"}\n",
			},
		},
		{
			name:        "Not enough coins",
			requestBody: []byte(`{"itemId": 4}`),
			setupMock: func() {
				mockDB.EXPECT().PurchaseItem(gomock.Any(), int64(1), int64(4)).
					Return(nil, storage.ErrNotEnoughCoins)
			},
			expected: expectedData{
				expectedStatusCode: http.StatusBadRequest,
				expectedBody:       "{\"success\":false,\"message\":\"not enough coins to buy this item\"}\n",
			},
		},
		{
			name:        "Successful purchase",
			requestBody: []byte(`{"itemId": 4}`),
			setupMock: func() {
				mockDB.EXPECT().PurchaseItem(gomock.Any(), int64(1), int64(4)).
					Return(&models.PurchaseResult{
						RemainingCoins: 60,
						PurchasedItem:  &models.InventoryItem{ID: 10, Name: "Coffee break", Cost: 40},
					}, nil)
			},
			expected: expectedData{
				expectedStatusCode: http.StatusOK,
				expectedBody:       "",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()
			resp, body := testRequest(t, testServer, http.MethodPost, "/api/user/purchase", tc.requestBody, token)
			assert.Equal(t, tc.expected.expectedStatusCode, resp.StatusCode)

			if tc.expected.expectedStatusCode == http.StatusOK {
				var envelope struct {
					Success bool                  `json:"success"`
					Data    models.PurchaseResult `json:"data"`
				}
				require.NoError(t, json.Unmarshal([]byte(body), &envelope))
				assert.Equal(t, 60, envelope.Data.RemainingCoins)
				assert.Equal(t, "Coffee break", envelope.Data.PurchasedItem.Name)
			} else {
				assert.Equal(t, tc.expected.expectedBody, body)
			}
		})
	}
}

func TestCreateSkillHandler_Gomock(t *testing.T) {
	testServer, mockDB := newTestServer(t)

	token, err := auth.GenerateToken(1)
	require.NoError(t, err)

	type expectedData struct {
		expectedStatusCode int
		expectedBody       string
	}

	testCases := []struct {
		name        string
		requestBody []byte
		setupMock   func()
		expected    expectedData
	}{
		{
			name:        "Name too short",
			requestBody: []byte(`{"name": "a"}`),
			setupMock:   func() {},
			expected: expectedData{
				expectedStatusCode: http.StatusBadRequest,
				expectedBody:       "{\"success\":false,\"message\":\"validation error: skill name must be between 2 and 50 characters\"}\n",
			},
		},
		{
			name:        "Duplicate name (unique violation)",
			requestBody: []byte(`{"name": "Strength"}`),
			setupMock: func() {
				mockDB.EXPECT().CreateSkill(gomock.Any(), gomock.AssignableToTypeOf(&models.Skill{})).
					Return(nil, &pgx_pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "unique_skill_per_user"})
			},
			expected: expectedData{
				expectedStatusCode: http.StatusBadRequest,
				expectedBody:       "{\"success\":false,\"message\":\"You already have a skill with this name\"}\n",
			},
		},
		{
			name:        "Successful creation",
			requestBody: []byte(`{"name": "Strength", "xp": 50}`),
			setupMock: func() {
				mockDB.EXPECT().CreateSkill(gomock.Any(), gomock.AssignableToTypeOf(&models.Skill{})).
					Return(&models.Skill{ID: 1, Name: "Strength", XP: 50, CreatedBy: 1}, nil)
			},
			expected: expectedData{
				expectedStatusCode: http.StatusCreated,
				expectedBody:       "",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()
			resp, body := testRequest(t, testServer, http.MethodPost, "/api/skills", tc.requestBody, token)
			assert.Equal(t, tc.expected.expectedStatusCode, resp.StatusCode)

			if tc.expected.expectedStatusCode == http.StatusCreated {
				var envelope struct {
					Success bool         `json:"success"`
					Data    models.Skill `json:"data"`
				}
				require.NoError(t, json.Unmarshal([]byte(body), &envelope))
				assert.Equal(t, "Strength", envelope.Data.Name)
			} else {
				assert.Equal(t, tc.expected.expectedBody, body)
			}
		})
	}
}

func TestDeleteTitleHandler_Gomock(t *testing.T) {
	testServer, mockDB := newTestServer(t)

	token, err := auth.GenerateToken(1)
	require.NoError(t, err)

	mockDB.EXPECT().DeleteTitle(gomock.Any(), int64(1), "Gatekeeper").Return(sql.ErrNoRows)

	resp, body := testRequest(t, testServer, http.MethodDelete, "/api/user/titles/Gatekeeper", nil, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "{\"success\":false,\"message\":\"resource not found\"}\n", body)

	mockDB.EXPECT().DeleteTitle(gomock.Any(), int64(1), "Gatekeeper").Return(nil)

	resp, _ = testRequest(t, testServer, http.MethodDelete, "/api/user/titles/Gatekeeper", nil, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
