package integrations

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"shadow_system/internal/app"
	"shadow_system/internal/models"
	"shadow_system/internal/pkg/logger"
	"shadow_system/internal/service"
	"shadow_system/internal/storage"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/suite"
)

var testDatabaseURI string

func init() {
	if err := godotenv.Load("../integration/.env"); err != nil {
		log.Println("No .env file found, using default values")
	}

	testDatabaseURI = os.Getenv("TEST_DATABASE_URI")
}

type IntegrationTestSuite struct {
	suite.Suite
	server *httptest.Server
	client *http.Client
	db     *storage.PostgreSQL
}

func (s *IntegrationTestSuite) SetupSuite() {

	var l *logger.Logger
	var err error
	if l, err = logger.CreateLogger("info"); err != nil {
		log.Fatal("Failed to create logger:", err)
	}

	s.db, err = storage.NewPostgreSQL(testDatabaseURI, l)
	s.Require().NoError(err, "Error connecting to test database")

	appInstance := app.NewApp(s.db, l)
	serviceInstance := service.NewService(appInstance, "localhost:8081", l)

	s.server = httptest.NewServer(serviceInstance.NewRouter())
	s.client = s.server.Client()
}

func (s *IntegrationTestSuite) TearDownSuite() {
	s.server.Close()
	s.db.Close()
}

// register creates a fresh account with a unique username and returns its token.
func (s *IntegrationTestSuite) register(prefix string) string {
	authReq := models.AuthRequest{
		Username: fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano()),
		Password: "password",
	}
	reqBody, err := json.Marshal(authReq)
	s.Require().NoError(err, "Error marshaling registration request")

	resp, err := s.client.Post(s.server.URL+"/api/auth/register", "application/json", bytes.NewBuffer(reqBody))
	s.Require().NoError(err, "Error sending registration request")
	s.Require().Equal(http.StatusCreated, resp.StatusCode, "Expected status 201 for registration")

	var envelope struct {
		Success bool                `json:"success"`
		Data    models.AuthResponse `json:"data"`
	}
	err = json.NewDecoder(resp.Body).Decode(&envelope)
	resp.Body.Close()
	s.Require().NoError(err, "Error decoding registration response")
	s.Require().NotEmpty(envelope.Data.Token, "Token should not be empty")

	return envelope.Data.Token
}

// do sends an authenticated JSON request and decodes the response envelope into target.
func (s *IntegrationTestSuite) do(method, path, token string, payload interface{}, expectedStatus int, target interface{}) {
	var body *bytes.Buffer
	if payload != nil {
		reqBody, err := json.Marshal(payload)
		s.Require().NoError(err, "Error marshaling request payload")
		body = bytes.NewBuffer(reqBody)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, s.server.URL+path, body)
	s.Require().NoError(err, "Error creating request")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.client.Do(req)
	s.Require().NoError(err, "Error executing request")
	defer resp.Body.Close()
	s.Require().Equal(expectedStatus, resp.StatusCode, "Unexpected status for %s %s", method, path)

	if target != nil {
		err = json.NewDecoder(resp.Body).Decode(target)
		s.Require().NoError(err, "Error decoding response body")
	}
}

func (s *IntegrationTestSuite) TestDailyQuestFlow() {
	token := s.register("daily_hunter")

	var created struct {
		Data models.DailyQuest `json:"data"`
	}
	s.do("POST", "/api/daily-quests", token, models.CreateQuestRequest{
		Name: "Morning run", XP: 50, Coins: 20, Skill: "Endurance",
	}, http.StatusCreated, &created)
	s.Require().NotZero(created.Data.ID, "Created quest should have an id")

	s.do("POST", "/api/skills", token, models.CreateSkillRequest{Name: "Endurance"}, http.StatusCreated, nil)

	var status struct {
		Data models.DailyStatus `json:"data"`
	}
	s.do("GET", "/api/user/daily-quest-status", token, nil, http.StatusOK, &status)
	s.Require().False(status.Data.FinishedToday, "Fresh day should not be finished")

	var toggled struct {
		Data models.ToggleResult `json:"data"`
	}
	s.do("POST", "/api/user/toggle-quest-completion", token, models.ToggleQuestRequest{QuestID: created.Data.ID}, http.StatusOK, &toggled)
	s.Require().True(toggled.Data.IsCompleted, "Toggled quest should be marked")
	s.Require().Equal(created.Data.ID, toggled.Data.QuestID)
	s.Require().Contains(toggled.Data.Status.CompletedQuests, created.Data.ID)

	var summary struct {
		Data models.DailySummary `json:"data"`
	}
	s.do("POST", "/api/user/complete-daily-quests", token, models.CompleteDailyQuestsRequest{
		CompletedQuestIDs: []int64{created.Data.ID},
		TotalXP:           50,
		TotalCoins:        20,
		SkillXPUpdates:    map[string]int{"Endurance": 50},
	}, http.StatusOK, &summary)
	s.Require().Equal(50, summary.Data.AddedXP, "Batch should credit the submitted XP")
	s.Require().Equal(50, summary.Data.SkillXP["Endurance"], "Skill XP should reflect the credited delta")

	// A second submission on the same day is rejected.
	s.do("POST", "/api/user/complete-daily-quests", token, models.CompleteDailyQuestsRequest{
		CompletedQuestIDs: []int64{created.Data.ID},
		TotalXP:           50,
		TotalCoins:        20,
	}, http.StatusBadRequest, nil)

	var profile struct {
		Data models.Profile `json:"data"`
	}
	s.do("GET", "/api/user/profile", token, nil, http.StatusOK, &profile)
	s.Require().Equal(50, profile.Data.XP, "Profile XP should include the daily batch")
	s.Require().Equal(120, profile.Data.Coins, "Profile coins should include the starting balance plus rewards")
}

func (s *IntegrationTestSuite) TestDungeonQuestCompletedOnce() {
	token := s.register("dungeon_hunter")

	var created struct {
		Data models.DungeonQuest `json:"data"`
	}
	s.do("POST", "/api/dungeon-quests", token, models.CreateQuestRequest{
		Name: "Clear the red gate", XP: 500, Coins: 200, Skill: "Strength", Title: "Gatekeeper",
	}, http.StatusCreated, &created)

	var completion struct {
		Data models.DungeonCompletion `json:"data"`
	}
	s.do("PATCH", fmt.Sprintf("/api/dungeon-quests/%d/complete", created.Data.ID), token, nil, http.StatusOK, &completion)
	s.Require().True(completion.Data.Quest.IsCompleted, "Quest should be completed")
	s.Require().Equal("Gatekeeper", completion.Data.UpdatedProfile.NewTitle, "Completion should award the quest title")

	// Completing the same quest again is rejected.
	s.do("PATCH", fmt.Sprintf("/api/dungeon-quests/%d/complete", created.Data.ID), token, nil, http.StatusBadRequest, nil)
}

func (s *IntegrationTestSuite) TestPenaltyQuestOncePerDay() {
	token := s.register("penalty_hunter")

	var created struct {
		Data models.PenaltyQuest `json:"data"`
	}
	s.do("POST", "/api/penalty-quests", token, models.CreatePenaltyQuestRequest{
		Name: "100 push-ups", XP: 40, Skill: "Strength",
	}, http.StatusCreated, &created)

	var completion struct {
		Data models.PenaltyCompletion `json:"data"`
	}
	s.do("PATCH", fmt.Sprintf("/api/penalty-quests/%d/accept", created.Data.ID), token, nil, http.StatusOK, &completion)
	s.Require().Equal(40, completion.Data.XPAwarded, "Acceptance should credit the quest XP")
	s.Require().True(completion.Data.CompletedToday, "Acceptance should mark the quest for today")

	// A second acceptance on the same day is rejected by the ledger and the
	// rejected attempt credits nothing.
	s.do("PATCH", fmt.Sprintf("/api/penalty-quests/%d/accept", created.Data.ID), token, nil, http.StatusBadRequest, nil)

	var profile struct {
		Data models.Profile `json:"data"`
	}
	s.do("GET", "/api/user/profile", token, nil, http.StatusOK, &profile)
	s.Require().Equal(40, profile.Data.XP, "Quest XP should be credited exactly once per day")

	var listed struct {
		Data []models.PenaltyQuest `json:"data"`
	}
	s.do("GET", "/api/penalty-quests", token, nil, http.StatusOK, &listed)
	s.Require().Len(listed.Data, 1)
	s.Require().True(listed.Data[0].IsCompletedToday, "Listing should derive the completed-today flag")
}

func (s *IntegrationTestSuite) TestShopPurchaseFlow() {
	token := s.register("shop_hunter")

	var created struct {
		Data models.ShopItem `json:"data"`
	}
	s.do("POST", "/api/shop", token, models.CreateShopItemRequest{
		Name: "Coffee break", Description: "Thirty minutes off", Cost: 40,
	}, http.StatusCreated, &created)

	var purchase struct {
		Data models.PurchaseResult `json:"data"`
	}
	s.do("POST", "/api/user/purchase", token, models.PurchaseRequest{ItemID: created.Data.ID}, http.StatusOK, &purchase)
	s.Require().Equal(60, purchase.Data.RemainingCoins, "Purchase should debit the starting balance")

	var inventory struct {
		Data []models.InventoryItem `json:"data"`
	}
	s.do("GET", "/api/user/inventory", token, nil, http.StatusOK, &inventory)
	s.Require().Len(inventory.Data, 1)
	s.Require().Equal("Coffee break", inventory.Data[0].Name)

	itemID := inventory.Data[0].ID
	s.do("PATCH", fmt.Sprintf("/api/user/inventory/%d/use", itemID), token, nil, http.StatusOK, nil)

	// An item cannot be used twice.
	s.do("PATCH", fmt.Sprintf("/api/user/inventory/%d/use", itemID), token, nil, http.StatusBadRequest, nil)

	// An expensive item exceeds the remaining balance.
	var expensive struct {
		Data models.ShopItem `json:"data"`
	}
	s.do("POST", "/api/shop", token, models.CreateShopItemRequest{
		Name: "Weekend trip", Description: "Two days away", Cost: 5000,
	}, http.StatusCreated, &expensive)
	s.do("POST", "/api/user/purchase", token, models.PurchaseRequest{ItemID: expensive.Data.ID}, http.StatusBadRequest, nil)
}

func (s *IntegrationTestSuite) TestSkillNamesUniquePerOwner() {
	tokenA := s.register("skill_hunter_a")
	tokenB := s.register("skill_hunter_b")

	s.do("POST", "/api/skills", tokenA, models.CreateSkillRequest{Name: "Strength"}, http.StatusCreated, nil)

	// A duplicate for the same owner is rejected regardless of casing.
	s.do("POST", "/api/skills", tokenA, models.CreateSkillRequest{Name: "strength"}, http.StatusBadRequest, nil)

	// Another user may take the same name.
	var created struct {
		Data models.Skill `json:"data"`
	}
	s.do("POST", "/api/skills", tokenB, models.CreateSkillRequest{Name: "Strength"}, http.StatusCreated, &created)
	s.Require().Equal("Strength", created.Data.Name)
}

func TestIntegrationTestSuite(t *testing.T) {
	if testDatabaseURI == "" {
		t.Skip("TEST_DATABASE_URI is not set; skipping integration tests")
	}
	suite.Run(t, new(IntegrationTestSuite))
}
