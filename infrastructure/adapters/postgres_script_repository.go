package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abdulwahabthakur/AI-Podcast-Generator/application/ports/outbound"
	"github.com/abdulwahabthakur/AI-Podcast-Generator/domain"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresScriptRepository struct {
	logger outbound.LoggerPort
	db     *pgxpool.Pool
}

func NewPostgresScriptRepository(db *pgxpool.Pool, logger outbound.LoggerPort) outbound.ScriptRepositoryPort {
	return &postgresScriptRepository{
		logger: logger,
		db:     db,
	}
}

func (r *postgresScriptRepository) Insert(ctx context.Context, record domain.ScriptRecord) error {
	scriptData, err := json.Marshal(record.ScriptData)
	if err != nil {
		return fmt.Errorf("failed to marshal script data: %w", err)
	}

	query := `
        INSERT INTO podcast_scripts (id, owner_id, topic, duration_minutes, style, script_data)
        VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = r.db.Exec(ctx, query,
		record.ID,
		record.OwnerID,
		record.Topic,
		record.DurationMinutes,
		record.Style,
		scriptData,
	)
	if err != nil {
		return fmt.Errorf("failed to insert script %s: %w", record.ID, err)
	}
	return nil
}

func (r *postgresScriptRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.ScriptSummary, error) {
	query := `
        SELECT id, topic, duration_minutes, style, created_at, updated_at
        FROM podcast_scripts
        WHERE owner_id = $1
        ORDER BY created_at DESC`

	summaries := []domain.ScriptSummary{}
	if err := pgxscan.Select(ctx, r.db, &summaries, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to list scripts for owner %s: %w", ownerID, err)
	}
	return summaries, nil
}

func (r *postgresScriptRepository) GetByID(ctx context.Context, ownerID string, id string) (domain.ScriptRecord, error) {
	query := `
        SELECT id, owner_id, topic, duration_minutes, style, script_data, created_at, updated_at
        FROM podcast_scripts
        WHERE id = $1 AND owner_id = $2`

	var row struct {
		domain.ScriptRecord
		RawScriptData []byte `db:"script_data"`
	}
	if err := pgxscan.Get(ctx, r.db, &row, query, id, ownerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ScriptRecord{}, outbound.ErrScriptNotFound
		}
		return domain.ScriptRecord{}, fmt.Errorf("failed to fetch script %s: %w", id, err)
	}

	record := row.ScriptRecord
	if len(row.RawScriptData) > 0 {
		if err := json.Unmarshal(row.RawScriptData, &record.ScriptData); err != nil {
			return domain.ScriptRecord{}, fmt.Errorf("failed to unmarshal script data for %s: %w", id, err)
		}
	}
	return record, nil
}

func (r *postgresScriptRepository) DeleteByID(ctx context.Context, ownerID string, id string) error {
	query := `DELETE FROM podcast_scripts WHERE id = $1 AND owner_id = $2`

	tag, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete script %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return outbound.ErrScriptNotFound
	}
	return nil
}
