package service

import (
	"context"
	"net/http"

	"shadow_system/internal/models"
)

// listDailyQuestsHandler lists the user's daily quests.
func (handlers *handlers) listDailyQuestsHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := contextUserID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	quests, err := handlers.app.ProcessListDailyQuests(ctx, userID)
	if err != nil {
		handleError(res, err)
		return
	}

	writeResponse(res, http.StatusOK, models.Response{Success: true, Data: quests, Count: len(quests)})
}

// createDailyQuestHandler creates a daily quest owned by the user.
func (handlers *handlers) createDailyQuestHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := contextUserID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	var createRequest models.CreateQuestRequest
	if err := decodeBody(req, &createRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	quest, err := handlers.app.ProcessCreateDailyQuest(ctx, userID, createRequest)
	if err != nil {
		handleError(res, err)
		return
	}

	writeResponse(res, http.StatusCreated, models.Response{
		Success: true,
		Message: "daily quest created",
		Data:    quest,
	})
}

// updateDailyQuestHandler updates the provided fields of the user's daily quest.
func (handlers *handlers) updateDailyQuestHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := contextUserID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	questID, err := pathID(req)
	if err != nil {
		writeErrorResponse(res, "invalid quest id", http.StatusBadRequest)
		return
	}

	var updateRequest models.UpdateQuestRequest
	if err := decodeBody(req, &updateRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	quest, err := handlers.app.ProcessUpdateDailyQuest(ctx, userID, questID, updateRequest)
	if err != nil {
		handleError(res, err)
		return
	}

	writeResponse(res, http.StatusOK, models.Response{
		Success: true,
		Message: "daily quest updated",
		Data:    quest,
	})
}

// deleteDailyQuestHandler removes the user's daily quest.
func (handlers *handlers) deleteDailyQuestHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := contextUserID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	questID, err := pathID(req)
	if err != nil {
		writeErrorResponse(res, "invalid quest id", http.StatusBadRequest)
		return
	}

	quest, err := handlers.app.ProcessDeleteDailyQuest(ctx, userID, questID)
	if err != nil {
		handleError(res, err)
		return
	}

	writeResponse(res, http.StatusOK, models.Response{
		Success: true,
		Message: "daily quest deleted",
		Data:    quest,
	})
}

// listDungeonQuestsHandler lists the user's dungeon quests.
func (handlers *handlers) listDungeonQuestsHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := contextUserID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	quests, err := handlers.app.ProcessListDungeonQuests(ctx, userID)
	if err != nil {
		handleError(res, err)
		return
	}

	writeResponse(res, http.StatusOK, models.Response{Success: true, Data: quests, Count: len(quests)})
}

// createDungeonQuestHandler creates a dungeon quest owned by the user.
func (handlers *handlers) createDungeonQuestHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := contextUserID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	var createRequest models.CreateQuestRequest
	if err := decodeBody(req, &createRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	quest, err := handlers.app.ProcessCreateDungeonQuest(ctx, userID, createRequest)
	if err != nil {
		handleError(res, err)
		return
	}

	writeResponse(res, http.StatusCreated, models.Response{
		Success: true,
		Message: "dungeon quest created",
		Data:    quest,
	})
}

// updateDungeonQuestHandler updates the provided fields of the user's dungeon quest.
func (handlers *handlers) updateDungeonQuestHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := contextUserID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	questID, err := pathID(req)
	if err != nil {
		writeErrorResponse(res, "invalid quest id", http.StatusBadRequest)
		return
	}

	var updateRequest models.UpdateQuestRequest
	if err := decodeBody(req, &updateRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	quest, err := handlers.app.ProcessUpdateDungeonQuest(ctx, userID, questID, updateRequest)
	if err != nil {
		handleError(res, err)
		return
	}

	writeResponse(res, http.StatusOK, models.Response{
		Success: true,
		Message: "dungeon quest updated",
		Data:    quest,
	})
}

// deleteDungeonQuestHandler removes the user's dungeon quest.
func (handlers *handlers) deleteDungeonQuestHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := contextUserID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	questID, err := pathID(req)
	if err != nil {
		writeErrorResponse(res, "invalid quest id", http.StatusBadRequest)
		return
	}

	quest, err := handlers.app.ProcessDeleteDungeonQuest(ctx, userID, questID)
	if err != nil {
		handleError(res, err)
		return
	}

	writeResponse(res, http.StatusOK, models.Response{
		Success: true,
		Message: "dungeon quest deleted",
		Data:    quest,
	})
}

// completeDungeonQuestHandler completes a dungeon quest once, credits its XP
// and coin rewards to the caller and awards the quest's title.
func (handlers *handlers) completeDungeonQuestHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := contextUserID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	questID, err := pathID(req)
	if err != nil {
		writeErrorResponse(res, "invalid quest id", http.StatusBadRequest)
		return
	}

	completion, err := handlers.app.ProcessCompleteDungeonQuest(ctx, userID, questID)
	if err != nil {
		handleError(res, err)
		return
	}

	writeResponse(res, http.StatusOK, models.Response{
		Success: true,
		Message: "dungeon quest completed",
		Data:    completion,
	})
}

// listPenaltyQuestsHandler lists the user's penalty quests with the
// completed-today flag derived from the completion ledger.
func (handlers *handlers) listPenaltyQuestsHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := contextUserID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	quests, err := handlers.app.ProcessListPenaltyQuests(ctx, userID)
	if err != nil {
		handleError(res, err)
		return
	}

	writeResponse(res, http.StatusOK, models.Response{Success: true, Data: quests, Count: len(quests)})
}

// createPenaltyQuestHandler creates a penalty quest owned by the user.
func (handlers *handlers) createPenaltyQuestHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := contextUserID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	var createRequest models.CreatePenaltyQuestRequest
	if err := decodeBody(req, &createRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	quest, err := handlers.app.ProcessCreatePenaltyQuest(ctx, userID, createRequest)
	if err != nil {
		handleError(res, err)
		return
	}

	writeResponse(res, http.StatusCreated, models.Response{
		Success: true,
		Message: "penalty quest created",
		Data:    quest,
	})
}

// deletePenaltyQuestHandler removes the user's penalty quest and its ledger entries.
func (handlers *handlers) deletePenaltyQuestHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := contextUserID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	questID, err := pathID(req)
	if err != nil {
		writeErrorResponse(res, "invalid quest id", http.StatusBadRequest)
		return
	}

	quest, err := handlers.app.ProcessDeletePenaltyQuest(ctx, userID, questID)
	if err != nil {
		handleError(res, err)
		return
	}

	writeResponse(res, http.StatusOK, models.Response{
		Success: true,
		Message: "penalty quest deleted",
		Data:    quest,
	})
}

// acceptPenaltyQuestHandler accepts a penalty quest for today, crediting its
// XP reward. A second acceptance on the same day is rejected by the ledger.
func (handlers *handlers) acceptPenaltyQuestHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := contextUserID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	questID, err := pathID(req)
	if err != nil {
		writeErrorResponse(res, "invalid quest id", http.StatusBadRequest)
		return
	}

	completion, err := handlers.app.ProcessAcceptPenaltyQuest(ctx, userID, questID)
	if err != nil {
		handleError(res, err)
		return
	}

	writeResponse(res, http.StatusOK, models.Response{
		Success: true,
		Message: "penalty quest completed",
		Data:    completion,
	})
}

// penaltyCleanupHandler prunes penalty completion ledger entries older than today.
func (handlers *handlers) penaltyCleanupHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	if _, ok := contextUserID(req); !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	removed, err := handlers.app.ProcessPenaltyCleanup(ctx)
	if err != nil {
		handleError(res, err)
		return
	}

	writeResponse(res, http.StatusOK, models.Response{
		Success: true,
		Message: "cleanup completed",
		Data:    map[string]int64{"removed": removed},
	})
}
