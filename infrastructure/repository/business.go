package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/profile-health-api/infrastructure/database/postgres"
	"github.com/vfg2006/profile-health-api/internal/domain"
)

const businessesTable = "businesses"

type BusinessRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Business, error)
	List(ctx context.Context, availableStatus []domain.BusinessStatus) ([]*domain.Business, error)
	Save(ctx context.Context, business *domain.Business) error
	Update(ctx context.Context, req *domain.UpdateBusinessRequest) error
	LinkAccount(ctx context.Context, businessID, accountID string) error
	UnlinkAccount(ctx context.Context, accountID string) error
}

type businessRepository struct {
	conn *postgres.Connection
}

func NewBusinessRepository(conn *postgres.Connection) BusinessRepository {
	return &businessRepository{conn: conn}
}

const businessColumns = "id, name, place_id, status, account_id, external_account_id, external_location_id, created_at, updated_at"

func (r *businessRepository) GetByID(ctx context.Context, id string) (*domain.Business, error) {
	businessSQL, businessArgs, err := squirrel.
		Select(businessColumns).
		From(businessesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	row := r.conn.QueryRowContext(ctx, businessSQL, businessArgs...)

	business, err := deserializeBusiness(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return business, nil
}

func (r *businessRepository) List(ctx context.Context, availableStatus []domain.BusinessStatus) ([]*domain.Business, error) {
	queryBuilder := squirrel.
		Select(businessColumns).
		From(businessesTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(availableStatus) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": availableStatus})
	}

	businessSQL, businessArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, businessSQL, businessArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	businesses := make([]*domain.Business, 0)

	for rows.Next() {
		business, err := deserializeBusiness(rows.Scan)
		if err != nil {
			return nil, err
		}
		businesses = append(businesses, business)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro ao iterar sobre os resultados")
	}

	return businesses, nil
}

func deserializeBusiness(scan func(dest ...any) error) (*domain.Business, error) {
	business := &domain.Business{}
	var placeID, accountID sql.NullString

	if err := scan(
		&business.ID,
		&business.Name,
		&placeID,
		&business.Status,
		&accountID,
		&business.Location.AccountID,
		&business.Location.LocationID,
		&business.CreatedAt,
		&business.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, errors.Wrap(err, "erro ao deserializar o negócio")
	}

	if placeID.Valid {
		business.PlaceID = &placeID.String
	}
	if accountID.Valid {
		business.AccountID = &accountID.String
	}

	return business, nil
}

func (r *businessRepository) Save(ctx context.Context, business *domain.Business) error {
	query := squirrel.StatementBuilder.
		Insert(businessesTable).
		Columns("id", "name", "place_id", "status", "account_id", "external_account_id", "external_location_id").
		Values(
			business.ID,
			business.Name,
			business.PlaceID,
			business.Status,
			business.AccountID,
			business.Location.AccountID,
			business.Location.LocationID,
		).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				place_id = EXCLUDED.place_id,
				status = EXCLUDED.status,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return errors.Wrapf(err, "erro de banco (code: %s)", pqErr.Code)
		}
		return errors.Wrap(err, "erro ao executar a query")
	}

	return nil
}

func (r *businessRepository) Update(ctx context.Context, req *domain.UpdateBusinessRequest) error {
	if req.ID == "" {
		return errors.New("ID é obrigatório")
	}

	queryBuilder := squirrel.
		Update(businessesTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": req.ID}).
		PlaceholderFormat(squirrel.Dollar)

	if req.Name != nil {
		queryBuilder = queryBuilder.Set("name", *req.Name)
	}
	if req.PlaceID != nil {
		queryBuilder = queryBuilder.Set("place_id", *req.PlaceID)
	}
	if req.Status != nil {
		queryBuilder = queryBuilder.Set("status", *req.Status)
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	result, err := r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return errors.Wrap(err, "erro ao executar a query")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "erro ao verificar linhas afetadas")
	}

	if rowsAffected == 0 {
		return errors.New("negócio não encontrado")
	}

	return nil
}

// LinkAccount vincula o negócio a uma conta conectada
func (r *businessRepository) LinkAccount(ctx context.Context, businessID, accountID string) error {
	sqlQuery, args, err := squirrel.
		Update(businessesTable).
		Set("account_id", accountID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": businessID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		return errors.Wrap(err, "erro ao executar a query")
	}

	return nil
}

// UnlinkAccount desvincula a conta de todos os negócios no desconectar
func (r *businessRepository) UnlinkAccount(ctx context.Context, accountID string) error {
	sqlQuery, args, err := squirrel.
		Update(businessesTable).
		Set("account_id", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"account_id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		return errors.Wrap(err, "erro ao executar a query")
	}

	return nil
}
