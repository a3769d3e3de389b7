package service

import (
	"context"
	"net/http"

	"shadow_system/internal/models"
)

// listShopItemsHandler lists active shop items. Without the showAll query
// parameter only the caller's own items are returned.
func (handlers *handlers) listShopItemsHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := contextUserID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	showAll := req.URL.Query().Get("showAll") == "true"
	items, err := handlers.app.ProcessListShopItems(ctx, userID, showAll)
	if err != nil {
		handleError(res, err)
		return
	}

	writeResponse(res, http.StatusOK, models.Response{Success: true, Data: items, Count: len(items)})
}

// createShopItemHandler creates a shop item owned by the user.
func (handlers *handlers) createShopItemHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := contextUserID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	var createRequest models.CreateShopItemRequest
	if err := decodeBody(req, &createRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := handlers.app.ProcessCreateShopItem(ctx, userID, createRequest)
	if err != nil {
		handleError(res, err)
		return
	}

	writeResponse(res, http.StatusCreated, models.Response{
		Success: true,
		Message: "shop item created",
		Data:    item,
	})
}

// updateShopItemHandler replaces the fields of the user's shop item.
func (handlers *handlers) updateShopItemHandler(res http.ResponseWriter, req *http.Request) {
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

	var updateRequest models.CreateShopItemRequest
	if err := decodeBody(req, &updateRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := handlers.app.ProcessUpdateShopItem(ctx, userID, itemID, updateRequest)
	if err != nil {
		handleError(res, err)
		return
	}

	writeResponse(res, http.StatusOK, models.Response{
		Success: true,
		Message: "shop item updated",
		Data:    item,
	})
}

// deleteShopItemHandler deactivates the user's shop item. The row is kept so
// that existing inventory entries remain resolvable.
func (handlers *handlers) deleteShopItemHandler(res http.ResponseWriter, req *http.Request) {
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

	item, err := handlers.app.ProcessDeleteShopItem(ctx, userID, itemID)
	if err != nil {
		handleError(res, err)
		return
	}

	writeResponse(res, http.StatusOK, models.Response{
		Success: true,
		Message: "shop item removed",
		Data:    item,
	})
}

// listDailyRewardsHandler lists the user's daily rewards.
func (handlers *handlers) listDailyRewardsHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := contextUserID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	rewards, err := handlers.app.ProcessListDailyRewards(ctx, userID)
	if err != nil {
		handleError(res, err)
		return
	}

	writeResponse(res, http.StatusOK, models.Response{Success: true, Data: rewards, Count: len(rewards)})
}

// createDailyRewardHandler creates a daily reward owned by the user.
func (handlers *handlers) createDailyRewardHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := contextUserID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	var createRequest models.CreateRewardRequest
	if err := decodeBody(req, &createRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	reward, err := handlers.app.ProcessCreateDailyReward(ctx, userID, createRequest)
	if err != nil {
		handleError(res, err)
		return
	}

	writeResponse(res, http.StatusCreated, models.Response{
		Success: true,
		Message: "daily reward created",
		Data:    reward,
	})
}

// updateDailyRewardHandler replaces the fields of the user's daily reward.
func (handlers *handlers) updateDailyRewardHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := contextUserID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	rewardID, err := pathID(req)
	if err != nil {
		writeErrorResponse(res, "invalid reward id", http.StatusBadRequest)
		return
	}

	var updateRequest models.CreateRewardRequest
	if err := decodeBody(req, &updateRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	reward, err := handlers.app.ProcessUpdateDailyReward(ctx, userID, rewardID, updateRequest)
	if err != nil {
		handleError(res, err)
		return
	}

	writeResponse(res, http.StatusOK, models.Response{
		Success: true,
		Message: "daily reward updated",
		Data:    reward,
	})
}

// deleteDailyRewardHandler removes the user's daily reward.
func (handlers *handlers) deleteDailyRewardHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := contextUserID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	rewardID, err := pathID(req)
	if err != nil {
		writeErrorResponse(res, "invalid reward id", http.StatusBadRequest)
		return
	}

	reward, err := handlers.app.ProcessDeleteDailyReward(ctx, userID, rewardID)
	if err != nil {
		handleError(res, err)
		return
	}

	writeResponse(res, http.StatusOK, models.Response{
		Success: true,
		Message: "daily reward deleted",
		Data:    reward,
	})
}
