package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"pharmadist/internal/domain"
	"pharmadist/internal/port"
)

type hsnRepo struct {
	db *sqlx.DB
}

// NewHSNRepo creates a new PostgreSQL-backed HSNRepository.
func NewHSNRepo(db *sqlx.DB) port.HSNRepository {
	return &hsnRepo{db: db}
}

func (r *hsnRepo) List(ctx context.Context) ([]domain.HSNMaster, error) {
	var entries []domain.HSNMaster
	err := r.db.SelectContext(ctx, &entries,
		`SELECT hsn_code, description, gst_rate, category, created_at
		 FROM hsn_master
		 ORDER BY hsn_code`)
	if err != nil {
		return nil, fmt.Errorf("hsnRepo.List: %w", err)
	}
	return entries, nil
}

func (r *hsnRepo) GetByCode(ctx context.Context, code string) (*domain.HSNMaster, error) {
	var entry domain.HSNMaster
	err := r.db.GetContext(ctx, &entry,
		`SELECT hsn_code, description, gst_rate, category, created_at
		 FROM hsn_master WHERE hsn_code = $1`, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("hsnRepo.GetByCode: %w", err)
	}
	return &entry, nil
}

func (r *hsnRepo) InsertMissing(ctx context.Context, entries []domain.HSNMaster) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("hsnRepo.InsertMissing: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	inserted := 0
	for i := range entries {
		e := &entries[i]
		res, err := tx.ExecContext(ctx,
			`INSERT INTO hsn_master (hsn_code, description, gst_rate, category)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (hsn_code) DO NOTHING`,
			e.HSNCode, e.Description, e.GSTRate, e.Category)
		if err != nil {
			return 0, fmt.Errorf("hsnRepo.InsertMissing: %s: %w", e.HSNCode, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("hsnRepo.InsertMissing: rows affected: %w", err)
		}
		inserted += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("hsnRepo.InsertMissing: commit: %w", err)
	}
	return inserted, nil
}
