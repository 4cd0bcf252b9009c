package domain

import (
	"time"

	"github.com/google/uuid"
)

// Company is the issuing business profile. Every other entity is scoped to a
// company, enforced at the data layer. JSON field names follow the API wire
// format consumed by the web client.
type Company struct {
	ID            uuid.UUID `db:"id" json:"id"`
	Name          string    `db:"name" json:"companyName"`
	Address       string    `db:"address" json:"companyAddress"`
	GSTIN         string    `db:"gstin" json:"gstinNo"`
	PAN           string    `db:"pan" json:"panNumber"`
	State         string    `db:"state" json:"state"`
	StateCode     string    `db:"state_code" json:"code"`
	InvoicePrefix string    `db:"invoice_prefix" json:"invoicePrefix"`
	LogoKey       string    `db:"logo_key" json:"companyLogoUrl"`
	StampKey      string    `db:"stamp_key" json:"companyStampUrl"`
	SignatureKey  string    `db:"signature_key" json:"signatureUrl"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `db:"updated_at" json:"updatedAt"`
}

// User is an authenticated operator belonging to a company.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	CompanyID    uuid.UUID `db:"company_id" json:"companyId"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	IsActive     bool      `db:"is_active" json:"isActive"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// Client is a billed party saved for reuse across invoices.
type Client struct {
	ID        uuid.UUID `db:"id" json:"id"`
	CompanyID uuid.UUID `db:"company_id" json:"-"`
	Name      string    `db:"name" json:"clientName"`
	Address   string    `db:"address" json:"clientAddress"`
	GSTIN     string    `db:"gstin" json:"gstinNo"`
	State     string    `db:"state" json:"state"`
	StateCode string    `db:"state_code" json:"code"`
	Email     string    `db:"email" json:"email"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Product is a catalog entry used to autofill invoice line items.
type Product struct {
	ID        uuid.UUID `db:"id" json:"id"`
	CompanyID uuid.UUID `db:"company_id" json:"-"`
	Name      string    `db:"name" json:"productName"`
	HSNCode   string    `db:"hsn_code" json:"hsnCode"`
	UOM       string    `db:"uom" json:"uom"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// BankDetail is a payee bank account printed on invoices.
type BankDetail struct {
	ID            uuid.UUID `db:"id" json:"id"`
	CompanyID     uuid.UUID `db:"company_id" json:"-"`
	BankName      string    `db:"bank_name" json:"bankName"`
	AccountName   string    `db:"account_name" json:"accountName"`
	AccountNumber string    `db:"account_number" json:"accountNumber"`
	Branch        string    `db:"branch" json:"bankBranch"`
	IFSCCode      string    `db:"ifsc_code" json:"ifscCode"`
	IsActive      bool      `db:"is_active" json:"active"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `db:"updated_at" json:"updatedAt"`
}

// Invoice is a committed tax invoice. The invoice number is frozen at
// creation and never changes afterwards. Billed-to, shipped-to, and bank
// fields are stored as snapshots so later edits to the source records do not
// rewrite issued invoices. Amounts are not stored; they are recomputed from
// the line items and rates on every read.
type Invoice struct {
	ID                 uuid.UUID     `db:"id" json:"id"`
	CompanyID          uuid.UUID     `db:"company_id" json:"-"`
	InvoiceNumber      string        `db:"invoice_number" json:"invoiceNumber"`
	InvoiceDate        string        `db:"invoice_date" json:"invoiceDate"`
	TransportMode      string        `db:"transport_mode" json:"transportMode"`
	VehicleNo          string        `db:"vehicle_no" json:"vehicleNo"`
	DateOfSupply       string        `db:"date_of_supply" json:"dateOfSupply"`
	PlaceOfSupply      string        `db:"place_of_supply" json:"placeOfSupply"`
	OrderNumber        string        `db:"order_number" json:"orderNumber"`
	TaxOnReverseCharge bool          `db:"tax_on_reverse_charge" json:"taxOnReverseCharge"`
	GRLRNo             string        `db:"gr_lr_no" json:"grLrNo"`
	EWayBillNo         string        `db:"eway_bill_no" json:"ewayBillNo"`
	BilledToName       string        `db:"billed_to_name" json:"billedToName"`
	BilledToAddress    string        `db:"billed_to_address" json:"billedToAddress"`
	BilledToGSTIN      string        `db:"billed_to_gstin" json:"billedToGstin"`
	BilledToState      string        `db:"billed_to_state" json:"billedToState"`
	BilledToCode       string        `db:"billed_to_code" json:"billedToCode"`
	ShippedToName      string        `db:"shipped_to_name" json:"shippedToName"`
	ShippedToAddress   string        `db:"shipped_to_address" json:"shippedToAddress"`
	ShippedToGSTIN     string        `db:"shipped_to_gstin" json:"shippedToGstin"`
	ShippedToState     string        `db:"shipped_to_state" json:"shippedToState"`
	ShippedToCode      string        `db:"shipped_to_code" json:"shippedToCode"`
	CGSTRate           float64       `db:"cgst_rate" json:"cgstRate"`
	SGSTRate           float64       `db:"sgst_rate" json:"sgstRate"`
	IGSTRate           float64       `db:"igst_rate" json:"igstRate"`
	BankName           string        `db:"bank_name" json:"selectedBankName"`
	BankAccountName    string        `db:"bank_account_name" json:"selectedAccountName"`
	BankAccountNumber  string        `db:"bank_account_number" json:"selectedAccountNumber"`
	BankIFSCCode       string        `db:"bank_ifsc_code" json:"selectedIfscCode"`
	TermsAndConditions string        `db:"terms_and_conditions" json:"termsAndConditions"`
	Status             InvoiceStatus `db:"status" json:"status"`
	CreatedAt          time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt          time.Time     `db:"updated_at" json:"updatedAt"`
}

// InvoiceItem is one line of an invoice. Quantity and rate default to zero
// when the client submits malformed numeric input.
type InvoiceItem struct {
	ID          uuid.UUID `db:"id" json:"id"`
	InvoiceID   uuid.UUID `db:"invoice_id" json:"-"`
	Description string    `db:"description" json:"description"`
	HSNCode     string    `db:"hsn_code" json:"hsnCode"`
	UOM         string    `db:"uom" json:"uom"`
	Quantity    float64   `db:"quantity" json:"quantity"`
	UnitPrice   float64   `db:"unit_price" json:"rate"`
	Position    int       `db:"position" json:"-"`
}
