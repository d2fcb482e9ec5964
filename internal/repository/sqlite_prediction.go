package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexanderramin/educare/internal/db"
	"github.com/alexanderramin/educare/internal/domain"
)

// SQLitePredictionRepo implements PredictionRepo using a SQLite database.
type SQLitePredictionRepo struct {
	db db.DBTX
}

func NewSQLitePredictionRepo(conn db.DBTX) *SQLitePredictionRepo {
	return &SQLitePredictionRepo{db: conn}
}

func (r *SQLitePredictionRepo) Create(ctx context.Context, p *domain.Prediction) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding prediction: %w", err)
	}

	query := `INSERT INTO predictions (id, schema, outcome, outcome_label, confidence, source,
		raw_score, persona_id, persona_name, risk_level, risk_count, result_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		p.ID,
		string(p.Schema),
		string(p.Outcome.Outcome),
		p.Outcome.Label,
		p.Outcome.Confidence,
		string(p.Outcome.Source),
		p.RawScore,
		p.Persona.ID,
		p.Persona.Name,
		string(p.Risk.Level),
		p.Risk.Count,
		string(body),
		formatTime(p.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting prediction: %w", err)
	}
	return nil
}

func (r *SQLitePredictionRepo) CreateInput(ctx context.Context, predictionID string, input domain.RawInput) error {
	payload, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("encoding prediction input: %w", err)
	}
	query := `INSERT INTO prediction_inputs (prediction_id, schema, payload_json) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, predictionID, string(input.Schema()), string(payload)); err != nil {
		return fmt.Errorf("inserting prediction input: %w", err)
	}
	return nil
}

func (r *SQLitePredictionRepo) GetByID(ctx context.Context, id string) (*domain.Prediction, error) {
	var body string
	err := r.db.QueryRowContext(ctx, `SELECT result_json FROM predictions WHERE id = ?`, id).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("prediction %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("loading prediction: %w", err)
	}

	var p domain.Prediction
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		return nil, fmt.Errorf("decoding prediction %s: %w", id, err)
	}
	return &p, nil
}

func (r *SQLitePredictionRepo) GetInput(ctx context.Context, predictionID string) (domain.RawInput, error) {
	var schema, payload string
	err := r.db.QueryRowContext(ctx,
		`SELECT schema, payload_json FROM prediction_inputs WHERE prediction_id = ?`, predictionID,
	).Scan(&schema, &payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("input of prediction %s: %w", predictionID, ErrNotFound)
		}
		return nil, fmt.Errorf("loading prediction input: %w", err)
	}

	var input domain.RawInput
	switch domain.Schema(schema) {
	case domain.SchemaAcademic:
		input = &domain.AcademicRecord{}
	case domain.SchemaLearner:
		input = &domain.LearnerRecord{}
	default:
		return nil, fmt.Errorf("prediction input has unknown schema %q", schema)
	}
	if err := json.Unmarshal([]byte(payload), input); err != nil {
		return nil, fmt.Errorf("decoding prediction input: %w", err)
	}
	return input, nil
}

// ListRecent returns up to limit summaries, newest first. An empty schema
// matches both; limit <= 0 means no limit.
func (r *SQLitePredictionRepo) ListRecent(ctx context.Context, schema domain.Schema, limit int) ([]domain.PredictionSummary, error) {
	query := `SELECT id, schema, outcome, outcome_label, confidence, source, raw_score,
		persona_id, persona_name, risk_level, risk_count, created_at
		FROM predictions
		WHERE (? = '' OR schema = ?)
		ORDER BY created_at DESC, id
		LIMIT ?`
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx, query, string(schema), string(schema), limit)
	if err != nil {
		return nil, fmt.Errorf("listing predictions: %w", err)
	}
	defer rows.Close()

	var out []domain.PredictionSummary
	for rows.Next() {
		var s domain.PredictionSummary
		var createdAt string
		err := rows.Scan(
			&s.ID, &s.Schema, &s.Outcome, &s.OutcomeLabel, &s.Confidence, &s.Source, &s.RawScore,
			&s.PersonaID, &s.PersonaName, &s.RiskLevel, &s.RiskCount, &createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning prediction row: %w", err)
		}
		if s.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at of %s: %w", s.ID, err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating predictions: %w", err)
	}
	return out, nil
}

func (r *SQLitePredictionRepo) FindIDsByPrefix(ctx context.Context, prefix string, limit int) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id FROM predictions WHERE substr(id, 1, length(?)) = ? ORDER BY id LIMIT ?`,
		prefix, prefix, limit)
	if err != nil {
		return nil, fmt.Errorf("finding predictions by prefix: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning prediction id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *SQLitePredictionRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM predictions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting prediction: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting prediction: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("prediction %s: %w", id, ErrNotFound)
	}
	return nil
}
