package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sponsortrack/internal/models"
)

// даты отдаём строками YYYY-MM-DD, как их хранит и ждёт клиент
const dealColumns = `deals.id, deals.account_id,
        to_char(deals.start_date, 'YYYY-MM-DD'), to_char(deals.end_date, 'YYYY-MM-DD'),
        deals.value, deals.status, deals.created_at, deals.updated_at`

type DealRepository struct {
	db *sql.DB
}

func NewDealRepository(db *sql.DB) *DealRepository {
	return &DealRepository{db: db}
}

func scanDeal(row interface{ Scan(...any) error }) (*models.Deal, error) {
	var d models.Deal
	err := row.Scan(&d.ID, &d.AccountID, &d.StartDate, &d.EndDate, &d.Value, &d.Status, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DealRepository) query(ctx context.Context, q string, args ...interface{}) ([]models.Deal, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("список сделок: %w", err)
	}
	defer rows.Close()

	deals := []models.Deal{}
	for rows.Next() {
		d, err := scanDeal(rows)
		if err != nil {
			return nil, fmt.Errorf("чтение сделки: %w", err)
		}
		deals = append(deals, *d)
	}
	return deals, rows.Err()
}

func (r *DealRepository) List(ctx context.Context) ([]models.Deal, error) {
	return r.query(ctx, "SELECT "+dealColumns+" FROM deals ORDER BY deals.id")
}

func (r *DealRepository) ListByAccount(ctx context.Context, accountID int) ([]models.Deal, error) {
	return r.query(ctx, "SELECT "+dealColumns+" FROM deals WHERE deals.account_id = $1 ORDER BY deals.id", accountID)
}

func (r *DealRepository) ListByOrganization(ctx context.Context, organizationID int) ([]models.Deal, error) {
	const q = `
        SELECT ` + dealColumns + `
        FROM deals
        JOIN accounts ON deals.account_id = accounts.id
        WHERE accounts.organization_id = $1
        ORDER BY deals.id`
	return r.query(ctx, q, organizationID)
}

func (r *DealRepository) ListByStatus(ctx context.Context, status models.DealStatus) ([]models.Deal, error) {
	return r.query(ctx, "SELECT "+dealColumns+" FROM deals WHERE deals.status = $1 ORDER BY deals.id", status)
}

func (r *DealRepository) GetByID(ctx context.Context, id int) (*models.Deal, error) {
	d, err := scanDeal(r.db.QueryRowContext(ctx, "SELECT "+dealColumns+" FROM deals WHERE deals.id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("получение сделки по id: %w", err)
	}
	return d, nil
}

// Create заполняет deal значениями из RETURNING (id, даты, created_at).
func (r *DealRepository) Create(ctx context.Context, deal *models.Deal) error {
	const q = `
        INSERT INTO deals (account_id, start_date, end_date, value, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + dealColumns
	created, err := scanDeal(r.db.QueryRowContext(ctx, q,
		deal.AccountID,
		deal.StartDate,
		deal.EndDate,
		deal.Value,
		deal.Status,
	))
	if err != nil {
		return classify("создание сделки", err)
	}
	*deal = *created
	return nil
}

func (r *DealRepository) Update(ctx context.Context, id int, patch models.DealPatch) (*models.Deal, error) {
	var b patchBuilder
	if patch.AccountID != nil {
		b.set("account_id", *patch.AccountID)
	}
	if patch.StartDate != nil {
		b.set("start_date", *patch.StartDate)
	}
	if patch.EndDate != nil {
		b.set("end_date", *patch.EndDate)
	}
	if patch.Value != nil {
		b.set("value", *patch.Value)
	}
	if patch.Status != nil {
		b.set("status", *patch.Status)
	}
	if b.empty() {
		return r.GetByID(ctx, id)
	}

	q, args := b.query("deals", id, dealColumns)
	d, err := scanDeal(r.db.QueryRowContext(ctx, q, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, classify("обновление сделки", err)
	}
	return d, nil
}

func (r *DealRepository) Delete(ctx context.Context, id int) (bool, error) {
	return deleteByID(ctx, r.db, "deals", id)
}

// CountDeals нужен seed, чтобы не заполнять базу повторно.
func (r *DealRepository) CountDeals(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM deals").Scan(&count)
	return count, err
}
