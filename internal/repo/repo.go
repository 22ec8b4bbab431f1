package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"Tendon/internal/calc/compare"
	"Tendon/internal/calc/cost"
)

type Profile struct {
	ID          int    `json:"id"`
	Login       string `json:"login"`
	Email       string `json:"email"`
	Description string `json:"description"`
}

// Project is the stored optimization input plus, once computed, the
// results snapshot. Soil and seismic metadata are recorded with the
// project but never consumed by the search.
type Project struct {
	ID                  int              `json:"id"`
	UserID              int              `json:"user_id"`
	Name                string           `json:"name"`
	BayLengthFt         float64          `json:"bay_length_ft"`
	BayWidthFt          float64          `json:"bay_width_ft"`
	BeamDepthIn         float64          `json:"beam_depth_in"` // advisory only
	Occupancy           string           `json:"occupancy"`
	SuperimposedDeadPsf float64          `json:"superimposed_dead_psf"`
	SiteClass           string           `json:"site_class"`
	SpectralAccelSds    float64          `json:"sds"`
	CostParams          cost.Parameters  `json:"cost_params"`
	Results             *compare.Results `json:"results,omitempty"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetBylogin(ctx context.Context, login string) (int, string, error)
	GetProfileByID(ctx context.Context, id int) (Profile, error)
	UpdateProfile(ctx context.Context, id int, login, description string) (Profile, error)

	CreateProject(ctx context.Context, p *Project) (int, error)
	GetProject(ctx context.Context, id, userID int) (*Project, error)
	ListProjects(ctx context.Context, userID int) ([]Project, error)
	UpdateResults(ctx context.Context, id, userID int, res *compare.Results) error
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresDB(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetBylogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresRepository) GetProfileByID(ctx context.Context, id int) (Profile, error) {
	var p Profile
	query := "SELECT id, login, email, COALESCE(description, '') FROM users WHERE id=$1"
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Login, &p.Email, &p.Description)
	return p, err
}

func (r *PostgresRepository) UpdateProfile(ctx context.Context, id int, login, description string) (Profile, error) {
	query := `UPDATE users SET login=COALESCE(NULLIF($2,''), login), description=$3
		WHERE id=$1 RETURNING id, login, email, COALESCE(description, '')`
	var p Profile
	err := r.db.QueryRowContext(ctx, query, id, login, description).Scan(&p.ID, &p.Login, &p.Email, &p.Description)
	return p, err
}

func (r *PostgresRepository) CreateProject(ctx context.Context, p *Project) (int, error) {
	costJSON, err := json.Marshal(p.CostParams)
	if err != nil {
		return 0, fmt.Errorf("marshal cost params: %w", err)
	}
	query := `INSERT INTO projects
		(user_id, name, bay_length_ft, bay_width_ft, beam_depth_in, occupancy,
		 superimposed_psf, site_class, sds, cost_params, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,now()) RETURNING id`
	var id int
	err = r.db.QueryRowContext(ctx, query,
		p.UserID, p.Name, p.BayLengthFt, p.BayWidthFt, p.BeamDepthIn, p.Occupancy,
		p.SuperimposedDeadPsf, p.SiteClass, p.SpectralAccelSds, costJSON).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetProject(ctx context.Context, id, userID int) (*Project, error) {
	query := `SELECT id, user_id, name, bay_length_ft, bay_width_ft, beam_depth_in,
		occupancy, superimposed_psf, site_class, sds, cost_params, results, updated_at
		FROM projects WHERE id=$1 AND user_id=$2`
	var p Project
	var costJSON []byte
	var resultsJSON []byte
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&p.ID, &p.UserID, &p.Name, &p.BayLengthFt, &p.BayWidthFt, &p.BeamDepthIn,
		&p.Occupancy, &p.SuperimposedDeadPsf, &p.SiteClass, &p.SpectralAccelSds,
		&costJSON, &resultsJSON, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(costJSON, &p.CostParams); err != nil {
		return nil, fmt.Errorf("unmarshal cost params: %w", err)
	}
	if len(resultsJSON) > 0 {
		p.Results = &compare.Results{}
		if err := json.Unmarshal(resultsJSON, p.Results); err != nil {
			return nil, fmt.Errorf("unmarshal results: %w", err)
		}
	}
	return &p, nil
}

func (r *PostgresRepository) ListProjects(ctx context.Context, userID int) ([]Project, error) {
	query := `SELECT id, user_id, name, bay_length_ft, bay_width_ft, occupancy, updated_at
		FROM projects WHERE user_id=$1 ORDER BY updated_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Project
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.BayLengthFt, &p.BayWidthFt,
			&p.Occupancy, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) UpdateResults(ctx context.Context, id, userID int, res *compare.Results) error {
	resultsJSON, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	query := "UPDATE projects SET results=$3, updated_at=now() WHERE id=$1 AND user_id=$2"
	tag, err := r.db.ExecContext(ctx, query, id, userID, resultsJSON)
	if err != nil {
		return err
	}
	n, err := tag.RowsAffected()
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return err
}
