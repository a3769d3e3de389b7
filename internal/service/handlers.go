// Package service contains HTTP handler implementations for the Shadow System API endpoints.
// It orchestrates request parsing, calls the underlying business logic in the app package,
// handles errors (including database-specific errors), and writes appropriate HTTP responses.
package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"shadow_system/internal/app"
	"shadow_system/internal/models"
	"shadow_system/internal/pkg/auth"
	"shadow_system/internal/pkg/logger"
	"shadow_system/internal/storage"

	"github.com/go-chi/chi/v5"
	pgconn "github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	pgx_pgconn "github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

const requestTimeout = 10 * time.Second

// handlers aggregates dependencies needed by HTTP handlers,
// including the application business logic and logger.
type handlers struct {
	app *app.App
	log *logger.Logger
}

// newHandlers initializes a new handlers instance with the provided app and logger dependencies.
func newHandlers(app *app.App, l *logger.Logger) *handlers {
	return &handlers{app: app, log: l}
}

// decodeBody reads and unmarshals a JSON request body into target.
func decodeBody(req *http.Request, target interface{}) error {
	requestBody, err := io.ReadAll(req.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(requestBody, target)
}

// contextUserID extracts the authenticated user's ID placed into the request
// context by the JWT middleware.
func contextUserID(req *http.Request) (int64, bool) {
	userID, ok := req.Context().Value(auth.ContextUserID).(int64)
	return userID, ok && userID != 0
}

// pathID parses the {id} URL parameter as an int64 identifier.
func pathID(req *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
}

func writeErrorResponse(res http.ResponseWriter, errorInfo string, statusCode int) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(statusCode)
	json.NewEncoder(res).Encode(models.ErrorResponse{Success: false, Message: errorInfo})
}

// writeResponse marshals a success envelope and writes it with the given status code.
func writeResponse(res http.ResponseWriter, statusCode int, response models.Response) {
	result, err := json.Marshal(response)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
		return
	}

	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(statusCode)
	res.Write(result)
}

// handleError translates application and database errors into HTTP responses.
// Constraint violations are matched by constraint name so that each uniqueness
// rule produces a specific client-facing message.
func handleError(res http.ResponseWriter, err error) {
	var pgError *pgconn.PgError
	var pgxError *pgx_pgconn.PgError

	constraint := ""
	if errors.As(err, &pgxError) && pgxError.Code == pgerrcode.UniqueViolation {
		constraint = pgxError.ConstraintName
	} else if errors.As(err, &pgError) && pgError.Code == pgerrcode.UniqueViolation {
		constraint = pgError.ConstraintName
	}
	if constraint != "" {
		switch constraint {
		case "users_username_key":
			writeErrorResponse(res, "username already taken", http.StatusBadRequest)
		case "unique_skill_per_user":
			writeErrorResponse(res, "You already have a skill with this name", http.StatusBadRequest)
		case "penalty_completions_pkey":
			writeErrorResponse(res, "penalty quest already completed today", http.StatusBadRequest)
		default:
			writeErrorResponse(res, "resource already exists", http.StatusBadRequest)
		}
		return
	}

	switch {
	case errors.Is(err, app.ErrValidation):
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
	case errors.Is(err, app.ErrNoQuestsSelected):
		writeErrorResponse(res, "no completed quests provided", http.StatusBadRequest)
	case errors.Is(err, app.ErrInvalidCredentials), errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		writeErrorResponse(res, "invalid username or password", http.StatusUnauthorized)
	case errors.Is(err, storage.ErrNotOwner):
		writeErrorResponse(res, "you can only modify your own resources", http.StatusForbidden)
	case errors.Is(err, storage.ErrAlreadyCompleted):
		writeErrorResponse(res, "this quest has already been completed", http.StatusBadRequest)
	case errors.Is(err, storage.ErrAlreadyFinishedToday):
		writeErrorResponse(res, "daily quests already completed for today", http.StatusBadRequest)
	case errors.Is(err, storage.ErrNotEnoughCoins), errors.Is(err, storage.ErrItemUsed):
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
	case errors.Is(err, sql.ErrNoRows):
		writeErrorResponse(res, "resource not found", http.StatusNotFound)
	default:
		writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
	}
}

// registerHandler creates a new user account and returns a signed token.
func (handlers *handlers) registerHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	var authRequest models.AuthRequest
	if err := decodeBody(req, &authRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	token, err := handlers.app.ProcessRegister(ctx, authRequest)
	if err != nil {
		handleError(res, err)
		return
	}

	writeResponse(res, http.StatusCreated, models.Response{
		Success: true,
		Message: "user registered successfully",
		Data:    models.AuthResponse{Token: token},
	})
}

// loginHandler verifies the provided credentials and returns a signed token.
func (handlers *handlers) loginHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	var authRequest models.AuthRequest
	if err := decodeBody(req, &authRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	token, err := handlers.app.ProcessLogin(ctx, authRequest)
	if err != nil {
		handleError(res, err)
		return
	}

	writeResponse(res, http.StatusOK, models.Response{
		Success: true,
		Data:    models.AuthResponse{Token: token},
	})
}

// profileHandler returns the authenticated user's profile with derived level,
// titles, quest statistics, skills and achievements.
func (handlers *handlers) profileHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := contextUserID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	profile, err := handlers.app.ProcessProfile(ctx, userID)
	if err != nil {
		handleError(res, err)
		return
	}

	writeResponse(res, http.StatusOK, models.Response{Success: true, Data: profile})
}

// updateProfileHandler overrides the user's XP and coin balances.
func (handlers *handlers) updateProfileHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := contextUserID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	var updateRequest models.UpdateProfileRequest
	if err := decodeBody(req, &updateRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := handlers.app.ProcessUpdateProfile(ctx, userID, updateRequest)
	if err != nil {
		handleError(res, err)
		return
	}

	writeResponse(res, http.StatusOK, models.Response{
		Success: true,
		Message: "profile updated successfully",
		Data:    user,
	})
}

// deleteTitleHandler removes one of the user's earned titles.
func (handlers *handlers) deleteTitleHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := contextUserID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	name := chi.URLParam(req, "name")
	if err := handlers.app.ProcessDeleteTitle(ctx, userID, name); err != nil {
		handleError(res, err)
		return
	}

	writeResponse(res, http.StatusOK, models.Response{Success: true, Message: "title removed successfully"})
}

// inventoryHandler lists the user's purchased items.
func (handlers *handlers) inventoryHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := contextUserID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	items, err := handlers.app.ProcessInventory(ctx, userID)
	if err != nil {
		handleError(res, err)
		return
	}

	writeResponse(res, http.StatusOK, models.Response{Success: true, Data: items, Count: len(items)})
}

// purchaseHandler buys a shop item, debiting the user's coins and adding the
// item to the inventory in one transaction.
func (handlers *handlers) purchaseHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := contextUserID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	var purchaseRequest models.PurchaseRequest
	if err := decodeBody(req, &purchaseRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := handlers.app.ProcessPurchase(ctx, userID, purchaseRequest)
	if err != nil {
		handleError(res, err)
		return
	}

	writeResponse(res, http.StatusOK, models.Response{
		Success: true,
		Message: "item purchased successfully",
		Data:    result,
	})
}

// useItemHandler marks an inventory item as used.
func (handlers *handlers) useItemHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := contextUserID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	itemID, err := pathID(req)
	if err != nil {
		writeErrorResponse(res, "invalid item id", http.StatusBadRequest)
		return
	}

	item, err := handlers.app.ProcessUseItem(ctx, userID, itemID)
	if err != nil {
		handleError(res, err)
		return
	}

	writeResponse(res, http.StatusOK, models.Response{
		Success: true,
		Message: "item used successfully",
		Data:    item,
	})
}

// deleteInventoryItemHandler removes an item from the user's inventory.
func (handlers *handlers) deleteInventoryItemHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := contextUserID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	itemID, err := pathID(req)
	if err != nil {
		writeErrorResponse(res, "invalid item id", http.StatusBadRequest)
		return
	}

	item, err := handlers.app.ProcessDeleteInventoryItem(ctx, userID, itemID)
	if err != nil {
		handleError(res, err)
		return
	}

	writeResponse(res, http.StatusOK, models.Response{
		Success: true,
		Message: "item removed from inventory",
		Data:    item,
	})
}

// dailyStatusHandler reports which daily quests are marked for today and
// whether the day has been finished.
func (handlers *handlers) dailyStatusHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := contextUserID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	status, err := handlers.app.ProcessDailyStatus(ctx, userID)
	if err != nil {
		handleError(res, err)
		return
	}

	writeResponse(res, http.StatusOK, models.Response{Success: true, Data: status})
}

// toggleQuestHandler flips today's completion mark of a daily quest.
func (handlers *handlers) toggleQuestHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := contextUserID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	var toggleRequest models.ToggleQuestRequest
	if err := decodeBody(req, &toggleRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	status, completed, err := handlers.app.ProcessToggleQuest(ctx, userID, toggleRequest)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeErrorResponse(res, "quest not found", http.StatusNotFound)
			return
		}
		handleError(res, err)
		return
	}

	message := "quest unmarked"
	if completed {
		message = "quest marked as completed"
	}
	result := models.ToggleResult{QuestID: toggleRequest.QuestID, IsCompleted: completed, Status: status}
	writeResponse(res, http.StatusOK, models.Response{Success: true, Message: message, Data: result})
}

// completeDailyQuestsHandler finishes the day: credits the aggregated XP and
// coin rewards, applies skill XP updates and locks the day until the next reset.
func (handlers *handlers) completeDailyQuestsHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := contextUserID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	var completeRequest models.CompleteDailyQuestsRequest
	if err := decodeBody(req, &completeRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	summary, err := handlers.app.ProcessCompleteDailyQuests(ctx, userID, completeRequest)
	if err != nil {
		handleError(res, err)
		return
	}

	writeResponse(res, http.StatusOK, models.Response{
		Success: true,
		Message: "daily quests completed",
		Data:    summary,
	})
}
