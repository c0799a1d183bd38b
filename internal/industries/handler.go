package industries

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/aldenhart/biztime/internal/platform/httpx"
)

// Handler wires the industry endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

// MountRoutes registers industry routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Post("/{code}", h.associate)
}

type createRequest struct {
	Code     string `json:"code" validate:"required"`
	Industry string `json:"industry" validate:"required"`
}

type associateRequest struct {
	CompCode string `json:"comp_code" validate:"required"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	industries, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list industries failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"industries": industries})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: malformed JSON body", httpx.ErrValidation))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: code and industry are required", httpx.ErrValidation))
		return
	}

	created, err := h.service.Create(r.Context(), req.Code, req.Industry)
	if err != nil {
		h.logger.Error("create industry failed", slog.Any("error", err), slog.String("code", req.Code))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"industry": created})
}

func (h *Handler) associate(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var req associateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: malformed JSON body", httpx.ErrValidation))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: comp_code is required", httpx.ErrValidation))
		return
	}

	if err := h.service.Associate(r.Context(), req.CompCode, code); err != nil {
		h.logger.Error("associate industry failed", slog.Any("error", err),
			slog.String("industry", code), slog.String("comp_code", req.CompCode))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"status": "associated"})
}
