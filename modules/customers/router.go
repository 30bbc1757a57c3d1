package customers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nordcrm/nordcrm/core"
	"github.com/nordcrm/nordcrm/pkg/guard"
	"github.com/nordcrm/nordcrm/pkg/logger"
)

// Handler exposes customer CRUD over the authorized tenant database.
// It must be mounted behind guard.Middleware; handlers read the tenant
// database out of the request context and never pick one themselves.
type Handler struct {
	svc *Service
	log *slog.Logger
}

// NewHandler creates a Handler around the given service.
func NewHandler(svc *Service, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Handler{svc: svc, log: log}
}

// Handle mounts the customer routes.
func (h *Handler) Handle() http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{customerID}", h.get)
	r.Put("/{customerID}", h.update)
	r.Delete("/{customerID}", h.delete)
	return r
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	authorized, ok := guard.FromContext(r.Context())
	if !ok {
		core.Error(w, core.ErrUnauthorized)
		return
	}

	var limit int64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			core.Error(w, core.ErrBadRequest.WithDetail("limit must be a non-negative integer"))
			return
		}
		limit = parsed
	}

	customers, err := h.svc.List(r.Context(), authorized.DB, limit)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	core.JSON(w, http.StatusOK, customers)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	authorized, ok := guard.FromContext(r.Context())
	if !ok {
		core.Error(w, core.ErrUnauthorized)
		return
	}

	var in CustomerInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		core.Error(w, core.ErrBadRequest.WithDetail("invalid JSON body"))
		return
	}

	customer, err := h.svc.Create(r.Context(), authorized.DB, in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	core.JSON(w, http.StatusCreated, customer)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	authorized, ok := guard.FromContext(r.Context())
	if !ok {
		core.Error(w, core.ErrUnauthorized)
		return
	}

	customer, err := h.svc.Get(r.Context(), authorized.DB, chi.URLParam(r, "customerID"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	core.JSON(w, http.StatusOK, customer)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	authorized, ok := guard.FromContext(r.Context())
	if !ok {
		core.Error(w, core.ErrUnauthorized)
		return
	}

	var in CustomerInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		core.Error(w, core.ErrBadRequest.WithDetail("invalid JSON body"))
		return
	}

	customer, err := h.svc.Update(r.Context(), authorized.DB, chi.URLParam(r, "customerID"), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	core.JSON(w, http.StatusOK, customer)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	authorized, ok := guard.FromContext(r.Context())
	if !ok {
		core.Error(w, core.ErrUnauthorized)
		return
	}

	if err := h.svc.Delete(r.Context(), authorized.DB, chi.URLParam(r, "customerID")); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	var verr core.ValidationError
	switch {
	case errors.Is(err, ErrCustomerNotFound):
		core.Error(w, core.ErrNotFound.WithDetail("customer not found"))
	case errors.As(err, &verr):
		core.Error(w, err)
	case errors.Is(err, ErrInvalidID):
		core.Error(w, core.ErrUnprocessableEntity.WithDetail("customer id must be a UUID"))
	default:
		h.log.ErrorContext(r.Context(), "customer operation failed", logger.Error(err))
		core.Error(w, core.ErrInternalServerError)
	}
}
