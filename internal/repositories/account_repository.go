package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sponsortrack/internal/models"
)

const accountColumns = "id, organization_id, name, contact_email, contact_phone, created_at, updated_at"

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func scanAccount(row interface{ Scan(...any) error }) (*models.Account, error) {
	var a models.Account
	err := row.Scan(&a.ID, &a.OrganizationID, &a.Name, &a.ContactEmail, &a.ContactPhone, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepository) query(ctx context.Context, q string, args ...interface{}) ([]*models.Account, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	res := []*models.Account{}
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		res = append(res, a)
	}
	return res, rows.Err()
}

func (r *AccountRepository) List(ctx context.Context) ([]*models.Account, error) {
	return r.query(ctx, "SELECT "+accountColumns+" FROM accounts ORDER BY id")
}

func (r *AccountRepository) ListByOrganization(ctx context.Context, organizationID int) ([]*models.Account, error) {
	return r.query(ctx, "SELECT "+accountColumns+" FROM accounts WHERE organization_id = $1 ORDER BY id", organizationID)
}

func (r *AccountRepository) GetByID(ctx context.Context, id int) (*models.Account, error) {
	a, err := scanAccount(r.db.QueryRowContext(ctx, "SELECT "+accountColumns+" FROM accounts WHERE id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	return a, nil
}

func (r *AccountRepository) Create(ctx context.Context, account *models.Account) error {
	const q = `
                INSERT INTO accounts (organization_id, name, contact_email, contact_phone)
                VALUES ($1, $2, $3, $4)
                RETURNING ` + accountColumns
	created, err := scanAccount(r.db.QueryRowContext(ctx, q,
		account.OrganizationID,
		account.Name,
		account.ContactEmail,
		account.ContactPhone,
	))
	if err != nil {
		return classify("create account", err)
	}
	*account = *created
	return nil
}

func (r *AccountRepository) Update(ctx context.Context, id int, patch models.AccountPatch) (*models.Account, error) {
	var b patchBuilder
	if patch.OrganizationID != nil {
		b.set("organization_id", *patch.OrganizationID)
	}
	if patch.Name != nil {
		b.set("name", *patch.Name)
	}
	if patch.ContactEmail != nil {
		b.set("contact_email", *patch.ContactEmail)
	}
	if patch.ContactPhone != nil {
		b.set("contact_phone", *patch.ContactPhone)
	}
	if b.empty() {
		return r.GetByID(ctx, id)
	}

	q, args := b.query("accounts", id, accountColumns)
	a, err := scanAccount(r.db.QueryRowContext(ctx, q, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, classify("update account", err)
	}
	return a, nil
}

func (r *AccountRepository) Delete(ctx context.Context, id int) (bool, error) {
	return deleteByID(ctx, r.db, "accounts", id)
}
