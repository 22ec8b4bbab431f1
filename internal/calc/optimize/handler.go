package optimize

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"Tendon/internal/auth"
	"Tendon/internal/calc/compare"
	"Tendon/internal/calc/cost"
	"Tendon/internal/calc/loads"
	"Tendon/internal/repo"
)

type Handler struct {
	Service *Service
}

type CalcInput struct {
	BayLengthFt         float64         `json:"bay_length_ft"`
	BayWidthFt          float64         `json:"bay_width_ft"`
	SuperimposedDeadPsf float64         `json:"superimposed_dead_psf"`
	Occupancy           string          `json:"occupancy"`
	Cost                cost.Parameters `json:"cost"`
}

// Calc runs the engine on request-body inputs without touching the
// store.
func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input CalcInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := compare.ComputeOptimization(r.Context(), input.BayLengthFt, input.BayWidthFt,
		input.Cost, loads.Occupancy(input.Occupancy), input.SuperimposedDeadPsf)
	if err != nil {
		http.Error(w, "Calculation error: "+err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// Run executes optimize(projectId): fetch, compute, persist.
func (h *Handler) Run(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	projectID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid project id", http.StatusBadRequest)
		return
	}

	res, err := h.Service.Optimize(r.Context(), projectID, userID)
	if err != nil {
		http.Error(w, "Optimization error: "+err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	var p repo.Project
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if p.BayLengthFt <= 0 || p.BayWidthFt <= 0 {
		http.Error(w, "Bay dimensions required", http.StatusBadRequest)
		return
	}
	if err := p.CostParams.Validate(); err != nil {
		http.Error(w, "Invalid cost parameters: "+err.Error(), http.StatusBadRequest)
		return
	}
	p.UserID = userID

	id, err := h.Service.Repo.CreateProject(r.Context(), &p)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]int{"id": id})
}

func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	projectID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid project id", http.StatusBadRequest)
		return
	}
	p, err := h.Service.Repo.GetProject(r.Context(), projectID, userID)
	if err != nil {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	list, err := h.Service.Repo.ListProjects(r.Context(), userID)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}
