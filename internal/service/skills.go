package service

import (
	"context"
	"net/http"

	"shadow_system/internal/models"
)

// listSkillsHandler lists the user's skills with derived levels.
func (handlers *handlers) listSkillsHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := contextUserID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	skills, err := handlers.app.ProcessListSkills(ctx, userID)
	if err != nil {
		handleError(res, err)
		return
	}

	writeResponse(res, http.StatusOK, models.Response{Success: true, Data: skills, Count: len(skills)})
}

// createSkillHandler creates a skill owned by the user.
func (handlers *handlers) createSkillHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := contextUserID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	var createRequest models.CreateSkillRequest
	if err := decodeBody(req, &createRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	skill, err := handlers.app.ProcessCreateSkill(ctx, userID, createRequest)
	if err != nil {
		handleError(res, err)
		return
	}

	writeResponse(res, http.StatusCreated, models.Response{
		Success: true,
		Message: "skill created",
		Data:    skill,
	})
}

// updateSkillHandler replaces the XP value of the user's skill.
func (handlers *handlers) updateSkillHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := contextUserID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	skillID, err := pathID(req)
	if err != nil {
		writeErrorResponse(res, "invalid skill id", http.StatusBadRequest)
		return
	}

	var updateRequest models.UpdateSkillRequest
	if err := decodeBody(req, &updateRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	skill, err := handlers.app.ProcessUpdateSkill(ctx, userID, skillID, updateRequest)
	if err != nil {
		handleError(res, err)
		return
	}

	writeResponse(res, http.StatusOK, models.Response{
		Success: true,
		Message: "skill updated",
		Data:    skill,
	})
}

// deleteSkillHandler removes the user's skill.
func (handlers *handlers) deleteSkillHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := contextUserID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	skillID, err := pathID(req)
	if err != nil {
		writeErrorResponse(res, "invalid skill id", http.StatusBadRequest)
		return
	}

	skill, err := handlers.app.ProcessDeleteSkill(ctx, userID, skillID)
	if err != nil {
		handleError(res, err)
		return
	}

	writeResponse(res, http.StatusOK, models.Response{
		Success: true,
		Message: "skill deleted",
		Data:    skill,
	})
}

// skillBatchHandler adds XP deltas to multiple skills by name. Skills that do
// not exist are reported without failing the whole batch.
func (handlers *handlers) skillBatchHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	userID, ok := contextUserID(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	var batchRequest models.SkillBatchRequest
	if err := decodeBody(req, &batchRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	updated, failures, err := handlers.app.ProcessSkillBatch(ctx, userID, batchRequest)
	if err != nil {
		handleError(res, err)
		return
	}

	message := "skills updated"
	if len(failures) > 0 {
		message = "skills updated with errors"
	}
	writeResponse(res, http.StatusOK, models.Response{
		Success: true,
		Message: message,
		Data: map[string]interface{}{
			"updatedSkills": updated,
			"errors":        failures,
		},
		Count: len(updated),
	})
}
