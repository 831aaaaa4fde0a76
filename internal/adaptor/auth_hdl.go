package adaptor

import (
	"net/http"

	"book-my-property/internal/dto/request"
	"book-my-property/internal/dto/response"
	"book-my-property/internal/usecase"
	"book-my-property/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.log, err, "register")
		return
	}

	if !result.Success {
		h.writeFailure(w, result)
		return
	}

	utils.ResponseCreated(w, "Registration successful", result)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.log, err, "login")
		return
	}

	if !result.Success {
		h.writeFailure(w, result)
		return
	}

	utils.ResponseSuccess(w, "Login successful", result)
}

func (h *AuthHandler) writeFailure(w http.ResponseWriter, result *response.AuthResult) {
	code := http.StatusUnauthorized
	switch result.Reason {
	case usecase.ReasonEmailTaken:
		code = http.StatusConflict
	case usecase.ReasonAccountInactive:
		code = http.StatusForbidden
	}
	utils.ResponseJSON(w, code, false, result.Reason, result, nil)
}
