package http

import (
	"errors"
	"net/http"

	"github.com/apereira/controle-gastos/internal/logger"
	"github.com/apereira/controle-gastos/internal/service"
	"github.com/apereira/controle-gastos/internal/store"
	"github.com/apereira/controle-gastos/internal/utils"
	"github.com/apereira/controle-gastos/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidDate:         http.StatusBadRequest,
	service.ErrInvalidMonth:        http.StatusBadRequest,
	service.ErrInvalidYear:         http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,

	store.ErrIdentityTaken:   http.StatusBadRequest,
	store.ErrNoUserWasFound:  http.StatusNotFound,
	store.ErrExpenseNotFound: http.StatusNotFound,
	store.ErrGoalNotFound:    http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

// errorMessageMap holds the user-facing "erro" strings of the API contract.
// Errors not listed here fall back to the generic database error message.
var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided: "Dados inválidos",
	service.ErrInvalidDate:         "Valor deve ser numérico e data no formato YYYY-MM-DD",
	service.ErrInvalidMonth:        "Mês deve estar entre 1 e 12",
	service.ErrInvalidYear:         "Ano inválido",
	service.ErrInvalidCredentials:  "Usuário ou senha inválidos",

	store.ErrIdentityTaken:   "E-mail ou CPF já cadastrado",
	store.ErrNoUserWasFound:  "Usuário não encontrado",
	store.ErrExpenseNotFound: "Despesa não encontrada",
	store.ErrGoalNotFound:    "Meta não encontrada",
}

const defaultErrorMessage = "Erro no banco de dados"

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return defaultErrorMessage
}

// respondError logs err and writes the matching "erro" envelope and status.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Err(err).Msg("request failed")
	utils.WriteJSON(w, models.ErrorResponse{Erro: messageFromError(err)}, statusFromError(err))
}

// respondValidationError writes a 400 "erro" envelope with an
// endpoint-specific message for malformed or incomplete input.
func (h *Handler) respondValidationError(w http.ResponseWriter, r *http.Request, message string) {
	logger.FromRequest(r).Warn().Str("erro", message).Msg("invalid request")
	utils.WriteJSON(w, models.ErrorResponse{Erro: message}, http.StatusBadRequest)
}
