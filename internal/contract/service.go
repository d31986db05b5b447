package contract

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"bcstudio-server/internal/common/database"
	"bcstudio-server/internal/common/errors"
	"bcstudio-server/internal/common/logger"
	"bcstudio-server/internal/common/metrics"
	"bcstudio-server/internal/entitlement"
	"bcstudio-server/internal/models"
)

// FallbackAlerter is notified whenever a contract document is rendered
// with an unrecognized payment type. Alerts are best effort.
type FallbackAlerter interface {
	AlertPaymentFallback(ctx context.Context, contractID string, paymentType models.PaymentType)
}

// Service owns the pro-gated contract feature: creation, listing and
// document rendering.
type Service struct {
	db      *database.PostgresClient
	alerter FallbackAlerter
	logger  logger.Logger
}

// NewService creates a contract service. alerter may be nil.
func NewService(db *database.PostgresClient, alerter FallbackAlerter, log logger.Logger) *Service {
	return &Service{db: db, alerter: alerter, logger: log}
}

// CreateInput carries the subscriber-provided contract fields.
type CreateInput struct {
	ClientName         string             `json:"client_name"`
	ClientCPFCNPJ      string             `json:"client_cpf_cnpj,omitempty"`
	ClientAddress      string             `json:"client_address,omitempty"`
	ClientCity         string             `json:"client_city,omitempty"`
	ClientState        string             `json:"client_state,omitempty"`
	ServiceType        string             `json:"service_type"`
	ServiceDescription string             `json:"service_description"`
	Value              float64            `json:"value"`
	PaymentType        models.PaymentType `json:"payment_type"`
	Installments       int                `json:"installments"`
	EntryValue         float64            `json:"entry_value"`
	PaymentTerms       string             `json:"payment_terms,omitempty"`
	StartDate          time.Time          `json:"start_date"`
	DeliveryDays       int                `json:"delivery_days"`
	MaterialsDays      int                `json:"materials_days"`
	MaintenanceDays    int                `json:"maintenance_days"`
	ExcludedServices   []string           `json:"excluded_services,omitempty"`
	Witness1           string             `json:"witness_1,omitempty"`
	Witness2           string             `json:"witness_2,omitempty"`
}

func (s *Service) requirePro(owner *models.Profile) error {
	if entitlement.IsLocked(owner.Plan, models.PlanPro) {
		return errors.NewPlanRequiredError(string(owner.Plan), string(models.PlanPro))
	}
	return nil
}

// Create stores a new contract. Contracts are write-once; edits mean
// issuing a new contract. An unrecognized payment type is accepted and
// logged; rendering falls back to the entry+balance wording.
func (s *Service) Create(ctx context.Context, owner *models.Profile, in CreateInput) (*models.Contract, error) {
	if err := s.requirePro(owner); err != nil {
		return nil, err
	}
	if in.ClientName == "" || in.ServiceType == "" || in.ServiceDescription == "" {
		return nil, errors.NewValidationError("Dados incompletos", "client_name, service_type and service_description are required")
	}
	if in.Value <= 0 {
		return nil, errors.NewValidationError("Valor do contrato deve ser maior que zero", fmt.Sprintf("value: %v", in.Value))
	}
	if in.StartDate.IsZero() {
		return nil, errors.NewValidationError("Data de início é obrigatória", "start_date: zero")
	}
	if !in.PaymentType.Known() {
		s.logger.Warn("contract created with unrecognized payment type", map[string]interface{}{
			"payment_type": string(in.PaymentType),
		})
	}

	c := &models.Contract{
		ID:                 uuid.NewString(),
		OwnerID:            owner.ID,
		ClientName:         in.ClientName,
		ClientCPFCNPJ:      in.ClientCPFCNPJ,
		ClientAddress:      in.ClientAddress,
		ClientCity:         in.ClientCity,
		ClientState:        in.ClientState,
		ServiceType:        in.ServiceType,
		ServiceDescription: in.ServiceDescription,
		Value:              in.Value,
		PaymentType:        in.PaymentType,
		Installments:       in.Installments,
		EntryValue:         in.EntryValue,
		PaymentTerms:       in.PaymentTerms,
		StartDate:          in.StartDate,
		DeliveryDays:       in.DeliveryDays,
		MaterialsDays:      in.MaterialsDays,
		MaintenanceDays:    in.MaintenanceDays,
		ExcludedServices:   in.ExcludedServices,
		Witness1:           in.Witness1,
		Witness2:           in.Witness2,
		CreatedAt:          time.Now().UTC(),
	}

	_, err := s.db.Exec(ctx,
		`INSERT INTO contracts (id, owner_id, client_name, client_cpf_cnpj, client_address, client_city, client_state,
		 service_type, service_description, value, payment_type, installments, entry_value, payment_terms,
		 start_date, delivery_days, materials_days, maintenance_days, excluded_services, witness_1, witness_2, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`,
		c.ID, c.OwnerID, c.ClientName, c.ClientCPFCNPJ, c.ClientAddress, c.ClientCity, c.ClientState,
		c.ServiceType, c.ServiceDescription, c.Value, c.PaymentType, c.Installments, c.EntryValue, c.PaymentTerms,
		c.StartDate, c.DeliveryDays, c.MaterialsDays, c.MaintenanceDays, pq.Array(c.ExcludedServices), c.Witness1, c.Witness2, c.CreatedAt)
	if err != nil {
		return nil, errors.NewDatabaseError(err)
	}

	s.logger.Info("contract created", map[string]interface{}{
		"contract_id":  c.ID,
		"payment_type": string(c.PaymentType),
	})
	return c, nil
}

// ListByOwner returns the owner's contracts, newest first.
func (s *Service) ListByOwner(ctx context.Context, owner *models.Profile) ([]models.Contract, error) {
	if err := s.requirePro(owner); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx, selectContract+` WHERE owner_id = $1 ORDER BY created_at DESC`, owner.ID)
	if err != nil {
		return nil, errors.NewDatabaseError(err)
	}
	defer rows.Close()

	contracts := []models.Contract{}
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, errors.NewDatabaseError(err)
		}
		contracts = append(contracts, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDatabaseError(err)
	}
	return contracts, nil
}

// GetByID returns one contract scoped to its owner.
func (s *Service) GetByID(ctx context.Context, owner *models.Profile, id string) (*models.Contract, error) {
	if err := s.requirePro(owner); err != nil {
		return nil, err
	}

	row := s.db.QueryRow(ctx, selectContract+` WHERE id = $1 AND owner_id = $2`, id, owner.ID)
	c, err := scanContract(row)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError("contract")
	}
	if err != nil {
		return nil, errors.NewDatabaseError(err)
	}
	return c, nil
}

// Document renders the contract as plain text using the owner's business
// profile. A missing profile renders with blank placeholders rather than
// failing.
func (s *Service) Document(ctx context.Context, owner *models.Profile, id string) (string, error) {
	c, err := s.GetByID(ctx, owner, id)
	if err != nil {
		return "", err
	}

	wd, err := s.wdProfile(ctx, owner.ID)
	if err != nil {
		return "", err
	}

	text, fallback := Render(c, wd)
	if fallback {
		metrics.ContractPaymentFallbackTotal.Inc()
		s.logger.Warn("payment type fell back to entry+balance clause", map[string]interface{}{
			"contract_id":  c.ID,
			"payment_type": string(c.PaymentType),
		})
		if s.alerter != nil {
			s.alerter.AlertPaymentFallback(ctx, c.ID, c.PaymentType)
		}
	}
	return text, nil
}

func (s *Service) wdProfile(ctx context.Context, ownerID string) (*models.WdProfile, error) {
	var wd models.WdProfile
	err := s.db.QueryRow(ctx,
		`SELECT id, owner_id, name, cpf_cnpj, address, city, state, phone, email
		 FROM wd_profiles WHERE owner_id = $1`, ownerID).
		Scan(&wd.ID, &wd.OwnerID, &wd.Name, &wd.CPFCNPJ, &wd.Address, &wd.City, &wd.State, &wd.Phone, &wd.Email)
	if err == sql.ErrNoRows {
		return &models.WdProfile{OwnerID: ownerID}, nil
	}
	if err != nil {
		return nil, errors.NewDatabaseError(err)
	}
	return &wd, nil
}

const selectContract = `SELECT id, owner_id, client_name, client_cpf_cnpj, client_address, client_city, client_state,
 service_type, service_description, value, payment_type, installments, entry_value, payment_terms,
 start_date, delivery_days, materials_days, maintenance_days, excluded_services, witness_1, witness_2, created_at
 FROM contracts`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanContract(row rowScanner) (*models.Contract, error) {
	var c models.Contract
	err := row.Scan(&c.ID, &c.OwnerID, &c.ClientName, &c.ClientCPFCNPJ, &c.ClientAddress, &c.ClientCity, &c.ClientState,
		&c.ServiceType, &c.ServiceDescription, &c.Value, &c.PaymentType, &c.Installments, &c.EntryValue, &c.PaymentTerms,
		&c.StartDate, &c.DeliveryDays, &c.MaterialsDays, &c.MaintenanceDays, pq.Array(&c.ExcludedServices), &c.Witness1, &c.Witness2, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
