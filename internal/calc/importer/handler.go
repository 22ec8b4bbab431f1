package importer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"Tendon/internal/calc/cost"
)

type Handler struct{}

type CostTableImportResult struct {
	Count  int             `json:"count"`
	Params cost.Parameters `json:"params"`
}

// CostTable parses an uploaded XLSX of slab cost rows into validated
// cost parameters. Expected columns: thickness_in, cost_per_ft2;
// optional single-value rows for formwork, beam form, strand and
// mild steel unit costs keyed by name in column A.
func (h *Handler) CostTable(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var params cost.Parameters
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 2 || row[0] == "" {
			continue
		}
		if named, value, ok := parseNamedRow(row); ok {
			switch named {
			case "formwork":
				params.FormworkPerFt2 = value
			case "beam_form":
				params.BeamFormPerFt3 = value
			case "strand":
				params.StrandCostPerLb = value
			case "mild_steel":
				params.MildSteelPerLb = value
			}
			continue
		}
		pt, err := parseTableRow(row)
		if err != nil {
			continue
		}
		params.SlabTable = append(params.SlabTable, pt)
	}

	if err := params.Validate(); err != nil {
		http.Error(w, "Invalid cost table: "+err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(CostTableImportResult{
		Count:  len(params.SlabTable),
		Params: params,
	})
}

func parseNamedRow(row []string) (name string, value float64, ok bool) {
	name = strings.ToLower(strings.TrimSpace(row[0]))
	switch name {
	case "formwork", "beam_form", "strand", "mild_steel":
	default:
		return "", 0, false
	}
	v, err := toFloat(row[1])
	if err != nil {
		return "", 0, false
	}
	return name, v, true
}

func parseTableRow(row []string) (cost.TablePoint, error) {
	if len(row) < 2 {
		return cost.TablePoint{}, fmt.Errorf("bad row")
	}
	h, err := toFloat(row[0])
	if err != nil {
		return cost.TablePoint{}, err
	}
	c, err := toFloat(row[1])
	if err != nil {
		return cost.TablePoint{}, err
	}
	return cost.TablePoint{ThicknessIn: h, CostPerFt2: c}, nil
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
