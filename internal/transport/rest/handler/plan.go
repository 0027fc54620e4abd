package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"leadlens/internal/service"
	"leadlens/internal/transport/rest/middleware"
)

// PlanHandler handles development-plan endpoints
type PlanHandler struct {
	plannerSvc *service.PlannerService
}

// NewPlanHandler creates a new plan handler
func NewPlanHandler(plannerSvc *service.PlannerService) *PlanHandler {
	return &PlanHandler{plannerSvc: plannerSvc}
}

type generatePlanRequest struct {
	AssessmentID string `json:"assessmentId"`
}

// Generate handles POST /v1/plans/generate
func (h *PlanHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.AssessmentID == "" {
		writeError(w, http.StatusBadRequest, "assessmentId is required")
		return
	}

	userID := middleware.GetUserID(r.Context())
	plan, err := h.plannerSvc.Generate(r.Context(), userID, req.AssessmentID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, plan)
}

// List handles GET /v1/plans
func (h *PlanHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	plans, err := h.plannerSvc.ListForUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"plans": plans})
}

// Get handles GET /v1/plans/{planId}
func (h *PlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	planID := mux.Vars(r)["planId"]
	userID := middleware.GetUserID(r.Context())

	plan, err := h.plannerSvc.Get(r.Context(), userID, planID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if plan == nil {
		writeError(w, http.StatusNotFound, "plan not found")
		return
	}

	writeJSON(w, http.StatusOK, plan)
}
