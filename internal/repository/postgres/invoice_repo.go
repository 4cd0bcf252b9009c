package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gstbill/internal/domain"
	"gstbill/internal/port"
)

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

const invoiceInsert = `INSERT INTO invoices (id, company_id, invoice_number, invoice_date,
	transport_mode, vehicle_no, date_of_supply, place_of_supply, order_number,
	tax_on_reverse_charge, gr_lr_no, eway_bill_no,
	billed_to_name, billed_to_address, billed_to_gstin, billed_to_state, billed_to_code,
	shipped_to_name, shipped_to_address, shipped_to_gstin, shipped_to_state, shipped_to_code,
	cgst_rate, sgst_rate, igst_rate,
	bank_name, bank_account_name, bank_account_number, bank_ifsc_code,
	terms_and_conditions, status, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
	$18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32, $33)`

const itemInsert = `INSERT INTO invoice_items (id, invoice_id, description, hsn_code, uom,
	quantity, unit_price, position)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

func (r *invoiceRepo) Create(ctx context.Context, invoice *domain.Invoice, items []domain.InvoiceItem) error {
	invoice.ID = uuid.New()
	now := time.Now().UTC()
	invoice.CreatedAt = now
	invoice.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Create: begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, invoiceInsert,
		invoice.ID, invoice.CompanyID, invoice.InvoiceNumber, invoice.InvoiceDate,
		invoice.TransportMode, invoice.VehicleNo, invoice.DateOfSupply, invoice.PlaceOfSupply,
		invoice.OrderNumber, invoice.TaxOnReverseCharge, invoice.GRLRNo, invoice.EWayBillNo,
		invoice.BilledToName, invoice.BilledToAddress, invoice.BilledToGSTIN,
		invoice.BilledToState, invoice.BilledToCode,
		invoice.ShippedToName, invoice.ShippedToAddress, invoice.ShippedToGSTIN,
		invoice.ShippedToState, invoice.ShippedToCode,
		invoice.CGSTRate, invoice.SGSTRate, invoice.IGSTRate,
		invoice.BankName, invoice.BankAccountName, invoice.BankAccountNumber, invoice.BankIFSCCode,
		invoice.TermsAndConditions, invoice.Status, invoice.CreatedAt, invoice.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateInvoiceNumber
		}
		return fmt.Errorf("invoiceRepo.Create: %w", err)
	}

	if err := insertItems(ctx, tx, invoice.ID, items); err != nil {
		return fmt.Errorf("invoiceRepo.Create: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("invoiceRepo.Create: commit: %w", err)
	}
	return nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, companyID, invoiceID uuid.UUID) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := r.db.GetContext(ctx, &invoice,
		"SELECT * FROM invoices WHERE id = $1 AND company_id = $2", invoiceID, companyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetByID: %w", err)
	}
	return &invoice, nil
}

func (r *invoiceRepo) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := r.db.SelectContext(ctx, &invoices,
		"SELECT * FROM invoices WHERE company_id = $1 ORDER BY created_at DESC", companyID)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.ListByCompany: %w", err)
	}
	return invoices, nil
}

func (r *invoiceRepo) ListItems(ctx context.Context, invoiceID uuid.UUID) ([]domain.InvoiceItem, error) {
	var items []domain.InvoiceItem
	err := r.db.SelectContext(ctx, &items,
		"SELECT * FROM invoice_items WHERE invoice_id = $1 ORDER BY position ASC", invoiceID)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.ListItems: %w", err)
	}
	return items, nil
}

func (r *invoiceRepo) ListNumbers(ctx context.Context, companyID uuid.UUID) ([]string, error) {
	var numbers []string
	err := r.db.SelectContext(ctx, &numbers,
		"SELECT invoice_number FROM invoices WHERE company_id = $1", companyID)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.ListNumbers: %w", err)
	}
	return numbers, nil
}

// Update rewrites the invoice row and replaces its line items. The invoice
// number is excluded from the SET clause; it is immutable after creation.
func (r *invoiceRepo) Update(ctx context.Context, invoice *domain.Invoice, items []domain.InvoiceItem) error {
	invoice.UpdatedAt = time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Update: begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE invoices SET invoice_date = $1, transport_mode = $2, vehicle_no = $3,
		date_of_supply = $4, place_of_supply = $5, order_number = $6,
		tax_on_reverse_charge = $7, gr_lr_no = $8, eway_bill_no = $9,
		billed_to_name = $10, billed_to_address = $11, billed_to_gstin = $12,
		billed_to_state = $13, billed_to_code = $14,
		shipped_to_name = $15, shipped_to_address = $16, shipped_to_gstin = $17,
		shipped_to_state = $18, shipped_to_code = $19,
		cgst_rate = $20, sgst_rate = $21, igst_rate = $22,
		bank_name = $23, bank_account_name = $24, bank_account_number = $25, bank_ifsc_code = $26,
		terms_and_conditions = $27, status = $28, updated_at = $29
		WHERE id = $30 AND company_id = $31`
	result, err := tx.ExecContext(ctx, query,
		invoice.InvoiceDate, invoice.TransportMode, invoice.VehicleNo,
		invoice.DateOfSupply, invoice.PlaceOfSupply, invoice.OrderNumber,
		invoice.TaxOnReverseCharge, invoice.GRLRNo, invoice.EWayBillNo,
		invoice.BilledToName, invoice.BilledToAddress, invoice.BilledToGSTIN,
		invoice.BilledToState, invoice.BilledToCode,
		invoice.ShippedToName, invoice.ShippedToAddress, invoice.ShippedToGSTIN,
		invoice.ShippedToState, invoice.ShippedToCode,
		invoice.CGSTRate, invoice.SGSTRate, invoice.IGSTRate,
		invoice.BankName, invoice.BankAccountName, invoice.BankAccountNumber, invoice.BankIFSCCode,
		invoice.TermsAndConditions, invoice.Status, invoice.UpdatedAt,
		invoice.ID, invoice.CompanyID)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}

	_, err = tx.ExecContext(ctx, "DELETE FROM invoice_items WHERE invoice_id = $1", invoice.ID)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Update: clear items: %w", err)
	}
	if err := insertItems(ctx, tx, invoice.ID, items); err != nil {
		return fmt.Errorf("invoiceRepo.Update: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("invoiceRepo.Update: commit: %w", err)
	}
	return nil
}

func insertItems(ctx context.Context, tx *sqlx.Tx, invoiceID uuid.UUID, items []domain.InvoiceItem) error {
	for i := range items {
		items[i].ID = uuid.New()
		items[i].InvoiceID = invoiceID
		items[i].Position = i
		_, err := tx.ExecContext(ctx, itemInsert,
			items[i].ID, items[i].InvoiceID, items[i].Description, items[i].HSNCode,
			items[i].UOM, items[i].Quantity, items[i].UnitPrice, items[i].Position)
		if err != nil {
			return fmt.Errorf("insert item %d: %w", i, err)
		}
	}
	return nil
}
