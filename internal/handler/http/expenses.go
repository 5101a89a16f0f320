package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/apereira/controle-gastos/internal/logger"
	"github.com/apereira/controle-gastos/internal/utils"
	"github.com/apereira/controle-gastos/models"
	"github.com/go-chi/chi/v5"
)

const (
	msgExpenseFieldsRequired = "Campos 'user_id', 'descricao', 'valor' e 'data' são obrigatórios"
	msgUserIDFieldRequired   = "Campo 'user_id' obrigatório"
	msgUserIDParamRequired   = "Query param 'user_id' é obrigatório"
	msgInvalidIDParam        = "Parâmetro 'id' inválido"
	msgInvalidPeriodParams   = "Parâmetros 'ano' e 'mes' devem ser numéricos"
)

func (h *Handler) createExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateExpenseRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		h.respondValidationError(w, r, msgExpenseFieldsRequired)
		return
	}
	if req.UserID == nil || !provided(req.Descricao) || req.Valor == nil || !provided(req.Data) {
		h.respondValidationError(w, r, msgExpenseFieldsRequired)
		return
	}

	expense := models.Expense{
		UserID:    *req.UserID,
		Descricao: *req.Descricao,
		Valor:     *req.Valor,
		Data:      *req.Data,
	}

	createdExpense, err := h.services.ExpenseService.AddExpense(ctx, expense)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Debug().Int64("id", createdExpense.ID).Msg("expense created")

	utils.WriteJSON(w, models.ExpenseResponse{
		Message: "Despesa adicionada com sucesso!",
		Despesa: createdExpense,
	}, http.StatusCreated)
}

func (h *Handler) listExpenses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.userIDFromQuery(w, r)
	if !ok {
		return
	}

	expenses, err := h.services.ExpenseService.ListExpenses(ctx, userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ExpenseListResponse{Despesas: expenses}, http.StatusOK)
}

func (h *Handler) updateExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	expenseID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.respondValidationError(w, r, msgInvalidIDParam)
		return
	}

	var req models.UpdateExpenseRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		h.respondValidationError(w, r, msgUserIDFieldRequired)
		return
	}
	if req.UserID == nil {
		h.respondValidationError(w, r, msgUserIDFieldRequired)
		return
	}

	update := models.ExpenseUpdate{
		ID:        expenseID,
		UserID:    *req.UserID,
		Descricao: req.Descricao,
		Valor:     req.Valor,
	}

	updatedExpense, err := h.services.ExpenseService.UpdateExpense(ctx, update)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Debug().Int64("id", updatedExpense.ID).Msg("expense updated")

	utils.WriteJSON(w, models.ExpenseResponse{
		Message: "Despesa modificada com sucesso!",
		Despesa: updatedExpense,
	}, http.StatusOK)
}

func (h *Handler) deleteExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	expenseID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.respondValidationError(w, r, msgInvalidIDParam)
		return
	}

	userID, ok := h.userIDFromQuery(w, r)
	if !ok {
		return
	}

	if err := h.services.ExpenseService.RemoveExpense(ctx, expenseID, userID); err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Debug().Int64("id", expenseID).Msg("expense removed")

	utils.WriteJSON(w, models.MessageResponse{Message: "Despesa removida com sucesso!"}, http.StatusOK)
}

func (h *Handler) listMonthExpenses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// the {id} wildcard carries the ano on this route
	ano, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.respondValidationError(w, r, msgInvalidPeriodParams)
		return
	}

	mes, err := strconv.Atoi(chi.URLParam(r, "mes"))
	if err != nil {
		h.respondValidationError(w, r, msgInvalidPeriodParams)
		return
	}

	userID, ok := h.userIDFromQuery(w, r)
	if !ok {
		return
	}

	expenses, total, err := h.services.ExpenseService.ListExpensesForMonth(ctx, userID, ano, mes)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MonthExpensesResponse{Despesas: expenses, Total: total}, http.StatusOK)
}

// userIDFromQuery extracts the mandatory user_id query parameter. On failure
// it writes the 400 envelope itself and reports ok=false.
func (h *Handler) userIDFromQuery(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.URL.Query().Get("user_id")
	if raw == "" {
		h.respondValidationError(w, r, msgUserIDParamRequired)
		return 0, false
	}

	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.respondValidationError(w, r, msgUserIDParamRequired)
		return 0, false
	}

	return userID, true
}

// periodFromPath extracts the {ano} and {mes} route parameters.
func (h *Handler) periodFromPath(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	ano, err := strconv.Atoi(chi.URLParam(r, "ano"))
	if err != nil {
		h.respondValidationError(w, r, msgInvalidPeriodParams)
		return 0, 0, false
	}

	mes, err := strconv.Atoi(chi.URLParam(r, "mes"))
	if err != nil {
		h.respondValidationError(w, r, msgInvalidPeriodParams)
		return 0, 0, false
	}

	return ano, mes, true
}
