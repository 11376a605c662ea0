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

const snapshotsTable = "profile_snapshots"

// SnapshotRepository é a colaboração de armazenamento do sync: um repositório
// chave-valor de snapshots por negócio. O snapshot é a verdade durável; o
// score é uma visão derivada e recomputável.
type SnapshotRepository interface {
	Get(ctx context.Context, businessID string) (*domain.ProfileSnapshot, error)
	Save(ctx context.Context, businessID string, snapshot *domain.ProfileSnapshot) error
}

type snapshotRepository struct {
	conn *postgres.Connection
}

func NewSnapshotRepository(conn *postgres.Connection) SnapshotRepository {
	return &snapshotRepository{conn: conn}
}

func (r *snapshotRepository) Get(ctx context.Context, businessID string) (*domain.ProfileSnapshot, error) {
	snapshotSQL, snapshotArgs, err := squirrel.
		Select("data").
		From(snapshotsTable).
		Where(squirrel.Eq{"business_id": businessID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	var data []byte
	if err := r.conn.QueryRowContext(ctx, snapshotSQL, snapshotArgs...).Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao ler o snapshot")
	}

	snapshot := &domain.ProfileSnapshot{}
	if err := json.Unmarshal(data, snapshot); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar o snapshot")
	}

	return snapshot, nil
}

// Save substitui integralmente o snapshot anterior do negócio — nunca há
// merge entre sincronizações
func (r *snapshotRepository) Save(ctx context.Context, businessID string, snapshot *domain.ProfileSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar o snapshot")
	}

	sqlQuery, args, err := squirrel.StatementBuilder.
		Insert(snapshotsTable).
		Columns("business_id", "data", "synced_at").
		Values(businessID, data, snapshot.SyncedAt).
		Suffix(`
			ON CONFLICT (business_id) DO UPDATE SET
				data = EXCLUDED.data,
				synced_at = EXCLUDED.synced_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		return errors.Wrap(err, "erro ao persistir o snapshot")
	}

	return nil
}
