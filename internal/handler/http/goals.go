package http

import (
	"encoding/json"
	"net/http"

	"github.com/apereira/controle-gastos/internal/logger"
	"github.com/apereira/controle-gastos/internal/utils"
	"github.com/apereira/controle-gastos/models"
)

const msgGoalFieldsRequired = "Campos 'user_id', 'ano', 'mes' e 'valor' são obrigatórios"

func (h *Handler) upsertGoal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.UpsertGoalRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		h.respondValidationError(w, r, msgGoalFieldsRequired)
		return
	}
	if req.UserID == nil || req.Ano == nil || req.Mes == nil || req.Valor == nil {
		h.respondValidationError(w, r, msgGoalFieldsRequired)
		return
	}

	goal := models.Goal{
		UserID: *req.UserID,
		Ano:    *req.Ano,
		Mes:    *req.Mes,
		Valor:  *req.Valor,
	}

	savedGoal, created, err := h.services.GoalService.UpsertGoal(ctx, goal)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	message := "Meta atualizada com sucesso!"
	statusCode := http.StatusOK
	if created {
		message = "Meta criada com sucesso!"
		statusCode = http.StatusCreated
	}

	log.Debug().Int64("user_id", savedGoal.UserID).Int("ano", savedGoal.Ano).Int("mes", savedGoal.Mes).Bool("created", created).Msg("goal saved")

	utils.WriteJSON(w, models.GoalResponse{Message: message, Meta: savedGoal}, statusCode)
}

func (h *Handler) listGoals(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.userIDFromQuery(w, r)
	if !ok {
		return
	}

	goals, err := h.services.GoalService.ListGoals(ctx, userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	summaries := make([]models.GoalSummary, 0, len(goals))
	for _, goal := range goals {
		summaries = append(summaries, goal.Summary())
	}

	utils.WriteJSON(w, models.GoalListResponse{Metas: summaries}, http.StatusOK)
}

func (h *Handler) getGoal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ano, mes, ok := h.periodFromPath(w, r)
	if !ok {
		return
	}

	userID, ok := h.userIDFromQuery(w, r)
	if !ok {
		return
	}

	goal, err := h.services.GoalService.GetGoal(ctx, userID, ano, mes)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.GoalResponse{Meta: goal}, http.StatusOK)
}
