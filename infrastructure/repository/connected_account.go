package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/profile-health-api/infrastructure/database/postgres"
	"github.com/vfg2006/profile-health-api/internal/domain"
)

const connectedAccountsTable = "connected_accounts"

// ErrStaleAccountVersion indica que a linha da conta foi atualizada por outra
// escrita entre a leitura e a tentativa de atualização
var ErrStaleAccountVersion = errors.New("versão da conta desatualizada")

type ConnectedAccountRepository interface {
	GetByID(ctx context.Context, id string) (*domain.ConnectedAccount, error)
	GetByEmail(ctx context.Context, email string) (*domain.ConnectedAccount, error)
	Save(ctx context.Context, account *domain.ConnectedAccount) error
	UpdateCredentials(ctx context.Context, id, accessToken string, expiresAt time.Time, version int64) error
	UpdateAccountName(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
}

type connectedAccountRepository struct {
	conn *postgres.Connection
}

func NewConnectedAccountRepository(conn *postgres.Connection) ConnectedAccountRepository {
	return &connectedAccountRepository{conn: conn}
}

const accountColumns = "id, email, access_token, refresh_token, token_expires_at, account_name, location_id, version, created_at, updated_at"

func (r *connectedAccountRepository) GetByID(ctx context.Context, id string) (*domain.ConnectedAccount, error) {
	return r.getAccount(ctx, squirrel.Eq{"id": id})
}

func (r *connectedAccountRepository) GetByEmail(ctx context.Context, email string) (*domain.ConnectedAccount, error) {
	return r.getAccount(ctx, squirrel.Eq{"email": email})
}

func (r *connectedAccountRepository) getAccount(ctx context.Context, whereClause map[string]interface{}) (*domain.ConnectedAccount, error) {
	accountSQL, accountArgs, err := squirrel.
		Select(accountColumns).
		From(connectedAccountsTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	row := r.conn.QueryRowContext(ctx, accountSQL, accountArgs...)

	acc := &domain.ConnectedAccount{}
	var accountName, locationID sql.NullString

	if err := row.Scan(
		&acc.ID,
		&acc.Email,
		&acc.AccessToken,
		&acc.RefreshToken,
		&acc.TokenExpiresAt,
		&accountName,
		&locationID,
		&acc.Version,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao deserializar a conta")
	}

	acc.AccountName = accountName.String
	acc.LocationID = locationID.String

	return acc, nil
}

// Save insere ou atualiza a conta conectada. O conflito por email cobre o
// caso de o usuário refazer o fluxo de autorização: o novo par de credenciais
// substitui o antigo e a versão avança.
func (r *connectedAccountRepository) Save(ctx context.Context, account *domain.ConnectedAccount) error {
	query := squirrel.StatementBuilder.
		Insert(connectedAccountsTable).
		Columns("id", "email", "access_token", "refresh_token", "token_expires_at", "account_name", "location_id", "version").
		Values(
			account.ID,
			account.Email,
			account.AccessToken,
			account.RefreshToken,
			account.TokenExpiresAt,
			nullableString(account.AccountName),
			nullableString(account.LocationID),
			account.Version,
		).
		Suffix(`
			ON CONFLICT (email) DO UPDATE SET
				access_token = EXCLUDED.access_token,
				refresh_token = EXCLUDED.refresh_token,
				token_expires_at = EXCLUDED.token_expires_at,
				version = connected_accounts.version + 1,
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

// UpdateCredentials sobrescreve o access token e a expiração de forma durável
// e atômica com o registro da conta. A cláusula de versão implementa a
// concorrência otimista: se outra escrita chegou antes, nada é sobrescrito.
func (r *connectedAccountRepository) UpdateCredentials(ctx context.Context, id, accessToken string, expiresAt time.Time, version int64) error {
	sqlQuery, args, err := squirrel.
		Update(connectedAccountsTable).
		Set("access_token", accessToken).
		Set("token_expires_at", expiresAt).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "version": version}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	result, err := r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return errors.Wrapf(err, "erro de banco (code: %s)", pqErr.Code)
		}
		return errors.Wrap(err, "erro ao executar a query")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "erro ao verificar linhas afetadas")
	}

	if rowsAffected == 0 {
		return ErrStaleAccountVersion
	}

	return nil
}

// UpdateAccountName cacheia permanentemente o nome externo resolvido da conta
func (r *connectedAccountRepository) UpdateAccountName(ctx context.Context, id, name string) error {
	sqlQuery, args, err := squirrel.
		Update(connectedAccountsTable).
		Set("account_name", name).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
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

// Delete remove a conta no desconectar explícito
func (r *connectedAccountRepository) Delete(ctx context.Context, id string) error {
	sqlQuery, args, err := squirrel.
		Delete(connectedAccountsTable).
		Where(squirrel.Eq{"id": id}).
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

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
