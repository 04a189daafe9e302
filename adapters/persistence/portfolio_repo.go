package persistence

import (
	"context"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hanntran/folio-forge/internal/domain/portfolio"
	"github.com/hanntran/folio-forge/pkg/apperror"
	"github.com/hanntran/folio-forge/pkg/logger"
)

type postgresPortfolioRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresPortfolioRepo(db *pgxpool.Pool, logger logger.Logger) portfolio.Repository {
	return &postgresPortfolioRepo{db: db, logger: logger}
}

var psqlPortfolio = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func scanRecord(row pgx.Row, shareID string) (*portfolio.Record, error) {
	rec := &portfolio.Record{}
	var profileBytes []byte

	err := row.Scan(
		&rec.ShareID, &profileBytes, &rec.ProfilePictureURL,
		&rec.SelectedTheme, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("portfolio", shareID)
		}
		return nil, apperror.NewStorage("failed to scan portfolio row", err)
	}

	if err := json.Unmarshal(profileBytes, &rec.Profile); err != nil {
		return nil, apperror.NewStorage("failed to unmarshal portfolio_data", err)
	}
	return rec, nil
}

func (r *postgresPortfolioRepo) Save(ctx context.Context, rec *portfolio.Record) error {
	profileBytes, err := json.Marshal(rec.Profile)
	if err != nil {
		return apperror.NewStorage("failed to marshal portfolio_data", err)
	}

	query := `
		INSERT INTO portfolios (share_id, portfolio_data, profile_picture_url, selected_theme, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = r.db.Exec(ctx, query,
		rec.ShareID, profileBytes, rec.ProfilePictureURL,
		rec.SelectedTheme, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return apperror.NewStorage("failed to insert portfolio", err)
	}
	return nil
}

func (r *postgresPortfolioRepo) FindByID(ctx context.Context, shareID uuid.UUID) (*portfolio.Record, error) {
	query := `
		SELECT share_id, portfolio_data, profile_picture_url, selected_theme, created_at, updated_at
		FROM portfolios
		WHERE share_id = $1
	`
	return scanRecord(r.db.QueryRow(ctx, query, shareID), shareID.String())
}

func (r *postgresPortfolioRepo) Update(ctx context.Context, rec *portfolio.Record) error {
	profileBytes, err := json.Marshal(rec.Profile)
	if err != nil {
		return apperror.NewStorage("failed to marshal portfolio_data", err)
	}

	query := `
		UPDATE portfolios
		SET portfolio_data = $2, profile_picture_url = $3, selected_theme = $4, updated_at = $5
		WHERE share_id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		rec.ShareID, profileBytes, rec.ProfilePictureURL,
		rec.SelectedTheme, rec.UpdatedAt,
	)
	if err != nil {
		return apperror.NewStorage("failed to update portfolio", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("portfolio", rec.ShareID.String())
	}
	return nil
}

func (r *postgresPortfolioRepo) ListRecent(ctx context.Context, limit int) ([]*portfolio.Record, error) {
	query, args, err := psqlPortfolio.
		Select("share_id", "portfolio_data", "profile_picture_url", "selected_theme", "created_at", "updated_at").
		From("portfolios").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, apperror.NewStorage("failed to build list query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewStorage("failed to list portfolios", err)
	}
	defer rows.Close()

	records := make([]*portfolio.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows, "")
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewStorage("error iterating portfolio rows", err)
	}
	return records, nil
}
