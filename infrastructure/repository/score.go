package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/profile-health-api/infrastructure/database/postgres"
	"github.com/vfg2006/profile-health-api/internal/domain"
)

const scoresTable = "score_breakdowns"

type ScoreRepository interface {
	Get(ctx context.Context, businessID string) (*domain.ScoreBreakdown, error)
	Save(ctx context.Context, businessID string, breakdown *domain.ScoreBreakdown) error
}

type scoreRepository struct {
	conn *postgres.Connection
}

func NewScoreRepository(conn *postgres.Connection) ScoreRepository {
	return &scoreRepository{conn: conn}
}

func (r *scoreRepository) Get(ctx context.Context, businessID string) (*domain.ScoreBreakdown, error) {
	scoreSQL, scoreArgs, err := squirrel.
		Select("data").
		From(scoresTable).
		Where(squirrel.Eq{"business_id": businessID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	var data []byte
	if err := r.conn.QueryRowContext(ctx, scoreSQL, scoreArgs...).Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao ler o score")
	}

	breakdown := &domain.ScoreBreakdown{}
	if err := json.Unmarshal(data, breakdown); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar o score")
	}

	return breakdown, nil
}

func (r *scoreRepository) Save(ctx context.Context, businessID string, breakdown *domain.ScoreBreakdown) error {
	data, err := json.Marshal(breakdown)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar o score")
	}

	sqlQuery, args, err := squirrel.StatementBuilder.
		Insert(scoresTable).
		Columns("business_id", "data", "computed_at").
		Values(businessID, data, breakdown.ComputedAt).
		Suffix(`
			ON CONFLICT (business_id) DO UPDATE SET
				data = EXCLUDED.data,
				computed_at = EXCLUDED.computed_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		return errors.Wrap(err, "erro ao persistir o score")
	}

	return nil
}
