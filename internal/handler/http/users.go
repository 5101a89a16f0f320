package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/apereira/controle-gastos/internal/logger"
	"github.com/apereira/controle-gastos/internal/utils"
	"github.com/apereira/controle-gastos/models"
)

const (
	msgRegisterFieldsRequired = "Campos 'nome', 'email', 'cpf' e 'senha' são obrigatórios"
	msgLoginFieldsRequired    = "Campos 'identificador' e 'senha' são obrigatórios"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		h.respondValidationError(w, r, msgRegisterFieldsRequired)
		return
	}
	if !provided(req.Nome) || !provided(req.Email) || !provided(req.CPF) || !provided(req.Senha) {
		h.respondValidationError(w, r, msgRegisterFieldsRequired)
		return
	}

	user := models.User{
		Nome:  *req.Nome,
		Email: *req.Email,
		CPF:   *req.CPF,
		Senha: *req.Senha,
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Debug().Int64("id", registeredUser.ID).Msg("user successfully registered")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.UserResponse{
		Message: "Usuário cadastrado com sucesso!",
		User:    registeredUser,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		h.respondValidationError(w, r, msgLoginFieldsRequired)
		return
	}
	if !provided(req.Identificador) || !provided(req.Senha) {
		h.respondValidationError(w, r, msgLoginFieldsRequired)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, *req.Identificador, *req.Senha)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.ID).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.UserResponse{
		Message: "Login OK",
		User:    foundUser,
	}, http.StatusOK)
}

// provided reports whether a required string field is present and non-empty.
func provided(s *string) bool {
	return s != nil && *s != ""
}
