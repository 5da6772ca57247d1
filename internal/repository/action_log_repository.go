package repository

import (
	"context"
	"database/sql"

	"github.com/akylbek/payment-system/psp-connector/internal/models"
)

const defaultListLimit = 50

type ActionLogRepository struct {
	db *sql.DB
}

func NewActionLogRepository(db *sql.DB) *ActionLogRepository {
	return &ActionLogRepository{db: db}
}

func (r *ActionLogRepository) InitDB() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS connector_actions (
			id BIGSERIAL PRIMARY KEY,
			payment_id VARCHAR(255) NOT NULL,
			source VARCHAR(20) NOT NULL,
			action VARCHAR(50) NOT NULL,
			message TEXT,
			instructions JSONB NOT NULL DEFAULT '[]',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_connector_actions_payment ON connector_actions(payment_id, created_at DESC)`,
	}

	for _, query := range queries {
		if _, err := r.db.Exec(query); err != nil {
			return err
		}
	}

	return nil
}

// RecordAction appends rec and fills in its id and creation time.
func (r *ActionLogRepository) RecordAction(ctx context.Context, rec *models.ActionRecord) error {
	instructions := rec.Instructions
	if len(instructions) == 0 {
		instructions = []byte("[]")
	}
	return r.db.QueryRowContext(ctx, `
		INSERT INTO connector_actions (payment_id, source, action, message, instructions)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, rec.PaymentID, rec.Source, rec.Action, rec.Message, string(instructions)).Scan(&rec.ID, &rec.CreatedAt)
}

// ListByPaymentID returns the newest records first.
func (r *ActionLogRepository) ListByPaymentID(ctx context.Context, paymentID string, limit int) ([]models.ActionRecord, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, payment_id, source, action, COALESCE(message, ''), instructions, created_at
		FROM connector_actions WHERE payment_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`, paymentID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.ActionRecord{}
	for rows.Next() {
		var rec models.ActionRecord
		var instructions []byte
		if err := rows.Scan(&rec.ID, &rec.PaymentID, &rec.Source, &rec.Action, &rec.Message, &instructions, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.Instructions = instructions
		records = append(records, rec)
	}
	return records, rows.Err()
}
