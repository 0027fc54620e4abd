package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"leadlens/internal/dataset"
	"leadlens/internal/model"
	"leadlens/internal/service"
	"leadlens/internal/transport/rest/middleware"
)

// AssessmentHandler handles classification, question, and flow endpoints
type AssessmentHandler struct {
	assessmentSvc *service.AssessmentService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(assessmentSvc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentSvc: assessmentSvc}
}

// DemographicQuestions handles GET /v1/assessment/questions/demographic
func (h *AssessmentHandler) DemographicQuestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"questions": dataset.DemographicQuestions(),
	})
}

// LevelOneQuestions handles GET /v1/assessment/questions/level-one/{level}
func (h *AssessmentHandler) LevelOneQuestions(w http.ResponseWriter, r *http.Request) {
	level := mux.Vars(r)["level"]

	groups, err := h.assessmentSvc.LevelOneByLevel(r.Context(), level)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"level":     level,
		"questions": groups,
	})
}

// LevelTwoQuestions handles GET /v1/assessment/questions/level-two?capability=&level=
func (h *AssessmentHandler) LevelTwoQuestions(w http.ResponseWriter, r *http.Request) {
	capability := r.URL.Query().Get("capability")
	level := r.URL.Query().Get("level")
	if capability == "" || level == "" {
		writeError(w, http.StatusBadRequest, "capability and level query parameters are required")
		return
	}

	themes, err := h.assessmentSvc.LevelTwoThemes(r.Context(), capability, level)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"capability": capability,
		"level":      level,
		"themes":     themes,
	})
}

// Classify handles POST /v1/assessment/classify
func (h *AssessmentHandler) Classify(w http.ResponseWriter, r *http.Request) {
	var input model.DemographicInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	level, profile, err := h.assessmentSvc.Classify(r.Context(), &input)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"responsibilityLevel": level,
		"demographics":        profile,
	})
}

// Start handles POST /v1/assessment/start
func (h *AssessmentHandler) Start(w http.ResponseWriter, r *http.Request) {
	var input model.DemographicInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := middleware.GetUserID(r.Context())
	resp, err := h.assessmentSvc.Start(r.Context(), userID, &input)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

type answerRequest struct {
	AssessmentID string `json:"assessmentId"`
	service.AnswerRequest
}

// Answer handles POST /v1/assessment/response
func (h *AssessmentHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.AssessmentID == "" {
		writeError(w, http.StatusBadRequest, "assessmentId is required")
		return
	}

	userID := middleware.GetUserID(r.Context())
	resp, err := h.assessmentSvc.Answer(r.Context(), userID, req.AssessmentID, &req.AnswerRequest)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /v1/assessment/{assessmentId}
func (h *AssessmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	assessmentID := mux.Vars(r)["assessmentId"]
	userID := middleware.GetUserID(r.Context())

	resp, err := h.assessmentSvc.Get(r.Context(), userID, assessmentID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
