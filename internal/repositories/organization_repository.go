package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sponsortrack/internal/models"
)

const organizationColumns = "id, name, created_at, updated_at"

type OrganizationRepository struct {
	db *sql.DB
}

func NewOrganizationRepository(db *sql.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

func scanOrganization(row interface{ Scan(...any) error }) (*models.Organization, error) {
	var o models.Organization
	if err := row.Scan(&o.ID, &o.Name, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrganizationRepository) List(ctx context.Context) ([]*models.Organization, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+organizationColumns+" FROM organizations ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	defer rows.Close()

	res := []*models.Organization{}
	for rows.Next() {
		o, err := scanOrganization(rows)
		if err != nil {
			return nil, fmt.Errorf("scan organization: %w", err)
		}
		res = append(res, o)
	}
	return res, rows.Err()
}

func (r *OrganizationRepository) GetByID(ctx context.Context, id int) (*models.Organization, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+organizationColumns+" FROM organizations WHERE id = $1", id)
	o, err := scanOrganization(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get organization: %w", err)
	}
	return o, nil
}

func (r *OrganizationRepository) Create(ctx context.Context, org *models.Organization) error {
	const q = `
                INSERT INTO organizations (name)
                VALUES ($1)
                RETURNING ` + organizationColumns
	created, err := scanOrganization(r.db.QueryRowContext(ctx, q, org.Name))
	if err != nil {
		return classify("create organization", err)
	}
	*org = *created
	return nil
}

// Update меняет только переданные поля; пустой patch возвращает текущую запись.
func (r *OrganizationRepository) Update(ctx context.Context, id int, patch models.OrganizationPatch) (*models.Organization, error) {
	var b patchBuilder
	if patch.Name != nil {
		b.set("name", *patch.Name)
	}
	if b.empty() {
		return r.GetByID(ctx, id)
	}

	q, args := b.query("organizations", id, organizationColumns)
	o, err := scanOrganization(r.db.QueryRowContext(ctx, q, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, classify("update organization", err)
	}
	return o, nil
}

func (r *OrganizationRepository) Delete(ctx context.Context, id int) (bool, error) {
	return deleteByID(ctx, r.db, "organizations", id)
}

func deleteByID(ctx context.Context, db *sql.DB, table string, id int) (bool, error) {
	result, err := db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", table), id)
	if err != nil {
		return false, classify("delete from "+table, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("check delete from %s: %w", table, err)
	}
	return affected > 0, nil
}
