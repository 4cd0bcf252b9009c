package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gstbill/internal/domain"
	"gstbill/internal/port"
)

type bankDetailRepo struct {
	db *sqlx.DB
}

// NewBankDetailRepo creates a new PostgreSQL-backed BankDetailRepository.
func NewBankDetailRepo(db *sqlx.DB) port.BankDetailRepository {
	return &bankDetailRepo{db: db}
}

func (r *bankDetailRepo) Create(ctx context.Context, detail *domain.BankDetail) error {
	detail.ID = uuid.New()
	now := time.Now().UTC()
	detail.CreatedAt = now
	detail.UpdatedAt = now

	query := `INSERT INTO bank_details (id, company_id, bank_name, account_name, account_number,
		branch, ifsc_code, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		detail.ID, detail.CompanyID, detail.BankName, detail.AccountName,
		detail.AccountNumber, detail.Branch, detail.IFSCCode, detail.IsActive,
		detail.CreatedAt, detail.UpdatedAt)
	if err != nil {
		return fmt.Errorf("bankDetailRepo.Create: %w", err)
	}
	return nil
}

func (r *bankDetailRepo) GetByID(ctx context.Context, companyID, detailID uuid.UUID) (*domain.BankDetail, error) {
	var detail domain.BankDetail
	err := r.db.GetContext(ctx, &detail,
		"SELECT * FROM bank_details WHERE id = $1 AND company_id = $2", detailID, companyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("bankDetailRepo.GetByID: %w", err)
	}
	return &detail, nil
}

func (r *bankDetailRepo) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.BankDetail, error) {
	var details []domain.BankDetail
	err := r.db.SelectContext(ctx, &details,
		"SELECT * FROM bank_details WHERE company_id = $1 ORDER BY created_at ASC", companyID)
	if err != nil {
		return nil, fmt.Errorf("bankDetailRepo.ListByCompany: %w", err)
	}
	return details, nil
}

func (r *bankDetailRepo) Update(ctx context.Context, detail *domain.BankDetail) error {
	detail.UpdatedAt = time.Now().UTC()
	query := `UPDATE bank_details SET bank_name = $1, account_name = $2, account_number = $3,
		branch = $4, ifsc_code = $5, is_active = $6, updated_at = $7
		WHERE id = $8 AND company_id = $9`
	result, err := r.db.ExecContext(ctx, query,
		detail.BankName, detail.AccountName, detail.AccountNumber, detail.Branch,
		detail.IFSCCode, detail.IsActive, detail.UpdatedAt, detail.ID, detail.CompanyID)
	if err != nil {
		return fmt.Errorf("bankDetailRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *bankDetailRepo) Delete(ctx context.Context, companyID, detailID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM bank_details WHERE id = $1 AND company_id = $2", detailID, companyID)
	if err != nil {
		return fmt.Errorf("bankDetailRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
