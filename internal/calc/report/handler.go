package report

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/phpdave11/gofpdf"

	"Tendon/internal/auth"
	"Tendon/internal/calc/compare"
	"Tendon/internal/calc/search"
	"Tendon/internal/repo"
)

type Handler struct {
	Repo repo.Repository
}

// Generate renders the stored optimization results for a project as
// a PDF summary: winning design plus the span comparison table.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
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
	p, err := h.Repo.GetProject(r.Context(), projectID, userID)
	if err != nil {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}
	if p.Results == nil {
		http.Error(w, "Project has no optimization results yet", http.StatusConflict)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Post-Tensioned Floor Optimization")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", p.Name))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Bay: %.1f x %.1f ft, occupancy %s", p.BayLengthFt, p.BayWidthFt, p.Occupancy))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	if p.Results.Optimal == compare.NoSystem {
		pdf.Cell(0, 8, "No constructible system for this bay")
		pdf.Ln(10)
	} else {
		pdf.Cell(0, 8, fmt.Sprintf("Optimal system: %s", p.Results.Optimal))
		pdf.Ln(10)
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, res := range []*search.Result{p.Results.FlatPlate, p.Results.OneWayBeam, p.Results.TwoWayBeam} {
		writeSystem(pdf, res)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Unit cost by span ($/sf)")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(22, 6, "Span ft")
	pdf.Cell(28, 6, "Flat plate")
	pdf.Cell(28, 6, "One-way")
	pdf.Cell(28, 6, "Two-way")
	pdf.Ln(6)
	for _, row := range p.Results.Comparisons {
		pdf.Cell(22, 5, fmt.Sprintf("%.0f", row.SpanFt))
		pdf.Cell(28, 5, cellCost(row.FlatPlate))
		pdf.Cell(28, 5, cellCost(row.OneWayBeam))
		pdf.Cell(28, 5, cellCost(row.TwoWayBeam))
		pdf.Ln(5)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"optimization.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

func writeSystem(pdf *gofpdf.Fpdf, res *search.Result) {
	if res == nil {
		return
	}
	line := fmt.Sprintf("%s: f'c %.0f psi, h %.1f in", res.System, res.Fc, res.ThicknessIn)
	if res.BeamWidthIn > 0 {
		line += fmt.Sprintf(", beam %.0fx%.0f in", res.BeamWidthIn, res.BeamDepthIn)
	}
	line += fmt.Sprintf(", Pe %.0f lb, e %.2f in, $%.2f/sf", res.EffectiveForceLb, res.EccentricityIn, res.Cost.UnitPerFt2)
	pdf.Cell(0, 6, line)
	pdf.Ln(6)
}

func cellCost(v float64) string {
	if v >= compare.InfeasibleUnitCost {
		return "-"
	}
	return fmt.Sprintf("%.2f", v)
}
