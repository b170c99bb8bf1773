package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/rl1809/weaselparts/internal/core/domain"
	"github.com/rl1809/weaselparts/internal/core/service"
)

type HTTPHandler struct {
	inventory *service.InventoryService
	logger    *zap.Logger
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type TransferResponse struct {
	Success           bool   `json:"success"`
	Message           string `json:"message"`
	PreviousCabinetID *int64 `json:"previous_cabinet_id"`
	NewCabinetID      *int64 `json:"new_cabinet_id"`
}

func NewHTTPHandler(inventory *service.InventoryService, logger *zap.Logger) *HTTPHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPHandler{inventory: inventory, logger: logger.With(zap.String("component", "http"))}
}

// Router registers every route on a new gorilla/mux router.
func (h *HTTPHandler) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(h.requestID, h.logRequests)

	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/cabinets", h.ListCabinets).Methods(http.MethodGet)
	api.HandleFunc("/cabinets", h.CreateCabinet).Methods(http.MethodPost)
	api.HandleFunc("/cabinets/{id:[0-9]+}", h.UpdateCabinet).Methods(http.MethodPut)
	api.HandleFunc("/cabinets/{id:[0-9]+}", h.DeleteCabinet).Methods(http.MethodDelete)
	api.HandleFunc("/cabinets/{id:[0-9]+}/contents", h.CabinetContents).Methods(http.MethodGet)

	api.HandleFunc("/components", h.ListComponents).Methods(http.MethodGet)
	api.HandleFunc("/components/search", h.SearchComponents).Methods(http.MethodGet)
	api.HandleFunc("/components", h.CreateComponent).Methods(http.MethodPost)
	api.HandleFunc("/components/{barcode}", h.GetComponent).Methods(http.MethodGet)
	api.HandleFunc("/components/{barcode}", h.UpdateComponent).Methods(http.MethodPut)
	api.HandleFunc("/components/{barcode}", h.DeleteComponent).Methods(http.MethodDelete)
	api.HandleFunc("/components/{barcode}/store/{cabinetID:[0-9]+}", h.StoreComponent).Methods(http.MethodPost)
	api.HandleFunc("/components/{barcode}/remove", h.RemoveComponent).Methods(http.MethodPost)
	api.HandleFunc("/components/{barcode}/activities", h.ListActivities).Methods(http.MethodGet)
	api.HandleFunc("/components/{barcode}/activities", h.CreateActivity).Methods(http.MethodPost)

	api.HandleFunc("/activities/{id:[0-9]+}", h.UpdateActivity).Methods(http.MethodPut)
	api.HandleFunc("/activities/{id:[0-9]+}", h.DeleteActivity).Methods(http.MethodDelete)

	api.HandleFunc("/statistics", h.Statistics).Methods(http.MethodGet)
	return r
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HTTPHandler) ListCabinets(w http.ResponseWriter, r *http.Request) {
	cabinets, err := h.inventory.ListCabinets(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(cabinets))
}

func (h *HTTPHandler) CreateCabinet(w http.ResponseWriter, r *http.Request) {
	var req domain.Cabinet
	if !decode(w, r, &req) {
		return
	}
	c, err := h.inventory.CreateCabinet(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *HTTPHandler) UpdateCabinet(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")
	var req domain.Cabinet
	if !decode(w, r, &req) {
		return
	}
	c, err := h.inventory.UpdateCabinet(r.Context(), id, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *HTTPHandler) DeleteCabinet(w http.ResponseWriter, r *http.Request) {
	if err := h.inventory.DeleteCabinet(r.Context(), pathID(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) CabinetContents(w http.ResponseWriter, r *http.Request) {
	components, err := h.inventory.CabinetContents(r.Context(), pathID(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(components))
}

func (h *HTTPHandler) ListComponents(w http.ResponseWriter, r *http.Request) {
	components, err := h.inventory.ListComponents(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(components))
}

func (h *HTTPHandler) SearchComponents(w http.ResponseWriter, r *http.Request) {
	components, err := h.inventory.SearchComponents(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(components))
}

func (h *HTTPHandler) GetComponent(w http.ResponseWriter, r *http.Request) {
	c, err := h.inventory.GetComponent(r.Context(), mux.Vars(r)["barcode"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *HTTPHandler) CreateComponent(w http.ResponseWriter, r *http.Request) {
	var req domain.Component
	if !decode(w, r, &req) {
		return
	}
	c, err := h.inventory.CreateComponent(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *HTTPHandler) UpdateComponent(w http.ResponseWriter, r *http.Request) {
	var req domain.Component
	if !decode(w, r, &req) {
		return
	}
	c, err := h.inventory.UpdateComponent(r.Context(), mux.Vars(r)["barcode"], req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *HTTPHandler) DeleteComponent(w http.ResponseWriter, r *http.Request) {
	if err := h.inventory.DeleteComponent(r.Context(), mux.Vars(r)["barcode"]); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) StoreComponent(w http.ResponseWriter, r *http.Request) {
	tr, err := h.inventory.StoreComponent(r.Context(), mux.Vars(r)["barcode"], pathID(r, "cabinetID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, TransferResponse{
		Success:           true,
		Message:           "component stored",
		PreviousCabinetID: tr.PreviousCabinetID,
		NewCabinetID:      tr.NewCabinetID,
	})
}

func (h *HTTPHandler) RemoveComponent(w http.ResponseWriter, r *http.Request) {
	tr, err := h.inventory.RemoveComponent(r.Context(), mux.Vars(r)["barcode"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, TransferResponse{
		Success:           true,
		Message:           "component removed",
		PreviousCabinetID: tr.PreviousCabinetID,
	})
}

func (h *HTTPHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	acts, err := h.inventory.ListActivities(r.Context(), mux.Vars(r)["barcode"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(acts))
}

func (h *HTTPHandler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var req domain.ActivityRecord
	if !decode(w, r, &req) {
		return
	}
	a, err := h.inventory.CreateActivity(r.Context(), mux.Vars(r)["barcode"], req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

func (h *HTTPHandler) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	var req domain.ActivityRecord
	if !decode(w, r, &req) {
		return
	}
	a, err := h.inventory.UpdateActivity(r.Context(), pathID(r, "id"), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *HTTPHandler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	if err := h.inventory.DeleteActivity(r.Context(), pathID(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	st, err := h.inventory.Statistics(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h *HTTPHandler) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (h *HTTPHandler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		h.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", w.Header().Get("X-Request-ID")))
	})
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, domain.ErrComponentNotFound),
		errors.Is(err, domain.ErrCabinetNotFound),
		errors.Is(err, domain.ErrActivityNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, domain.ErrInvalidBarcode), errors.Is(err, domain.ErrInvalidInput):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, domain.ErrDuplicateBarcode),
		errors.Is(err, domain.ErrDuplicateCabinet),
		errors.Is(err, service.ErrConcurrentUpdate):
		status = http.StatusConflict
		message = err.Error()
	default:
		h.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
	writeJSON(w, status, ErrorResponse{Error: message})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return false
	}
	return true
}

// pathID reads a numeric path variable; the route pattern guarantees digits.
func pathID(r *http.Request, name string) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	return id
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
