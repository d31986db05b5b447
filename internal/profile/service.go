// Package profile manages the subscriber account view and the designer's
// business identity (wd profile) used on contract documents.
package profile

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"bcstudio-server/internal/common/database"
	"bcstudio-server/internal/common/errors"
	"bcstudio-server/internal/common/logger"
	"bcstudio-server/internal/common/validation"
	"bcstudio-server/internal/models"
)

// Service reads and updates profile data.
type Service struct {
	db     *database.PostgresClient
	logger logger.Logger
}

// NewService creates a profile service.
func NewService(db *database.PostgresClient, log logger.Logger) *Service {
	return &Service{db: db, logger: log}
}

// View is the authenticated account overview: the subscriber profile plus
// the business identity when one exists.
type View struct {
	Profile   *models.Profile   `json:"profile"`
	WdProfile *models.WdProfile `json:"wd_profile,omitempty"`
}

// Get returns the account view for the authenticated subscriber.
func (s *Service) Get(ctx context.Context, owner *models.Profile) (*View, error) {
	var wd models.WdProfile
	err := s.db.QueryRow(ctx,
		`SELECT id, owner_id, name, cpf_cnpj, address, city, state, phone, email
		 FROM wd_profiles WHERE owner_id = $1`, owner.ID).
		Scan(&wd.ID, &wd.OwnerID, &wd.Name, &wd.CPFCNPJ, &wd.Address, &wd.City, &wd.State, &wd.Phone, &wd.Email)
	if err == sql.ErrNoRows {
		return &View{Profile: owner}, nil
	}
	if err != nil {
		return nil, errors.NewDatabaseError(err)
	}
	return &View{Profile: owner, WdProfile: &wd}, nil
}

// ContactByID resolves a subscriber's email and business phone.
// Notification paths use it when they only hold the owner id; the phone
// comes from the wd profile and may be empty.
func (s *Service) ContactByID(ctx context.Context, userID string) (email, phone string, err error) {
	err = s.db.QueryRow(ctx,
		`SELECT p.email, COALESCE(w.phone, '')
		 FROM profiles p
		 LEFT JOIN wd_profiles w ON w.owner_id = p.id
		 WHERE p.id = $1`, userID).Scan(&email, &phone)
	if err == sql.ErrNoRows {
		return "", "", errors.NewNotFoundError("profile")
	}
	if err != nil {
		return "", "", errors.NewDatabaseError(err)
	}
	return email, phone, nil
}

// WdInput carries the business identity fields.
type WdInput struct {
	Name    string `json:"name"`
	CPFCNPJ string `json:"cpf_cnpj,omitempty"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

// UpsertWd creates or replaces the owner's business identity.
func (s *Service) UpsertWd(ctx context.Context, ownerID string, in WdInput) (*models.WdProfile, error) {
	if in.Name == "" {
		return nil, errors.NewValidationError("Nome é obrigatório", "name: empty")
	}
	if in.Email != "" && !validation.ValidateEmail(in.Email) {
		return nil, errors.NewValidationError("E-mail inválido", "email: "+in.Email)
	}
	if in.Phone != "" && !validation.ValidatePhone(in.Phone) {
		return nil, errors.NewValidationError("Telefone inválido", "phone: "+in.Phone)
	}

	wd := &models.WdProfile{
		ID:      uuid.NewString(),
		OwnerID: ownerID,
		Name:    in.Name,
		CPFCNPJ: in.CPFCNPJ,
		Address: in.Address,
		City:    in.City,
		State:   in.State,
		Phone:   in.Phone,
		Email:   in.Email,
	}

	err := s.db.QueryRow(ctx,
		`INSERT INTO wd_profiles (id, owner_id, name, cpf_cnpj, address, city, state, phone, email)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (owner_id) DO UPDATE SET
		   name = EXCLUDED.name, cpf_cnpj = EXCLUDED.cpf_cnpj, address = EXCLUDED.address,
		   city = EXCLUDED.city, state = EXCLUDED.state, phone = EXCLUDED.phone, email = EXCLUDED.email
		 RETURNING id`,
		wd.ID, wd.OwnerID, wd.Name, wd.CPFCNPJ, wd.Address, wd.City, wd.State, wd.Phone, wd.Email).
		Scan(&wd.ID)
	if err != nil {
		return nil, errors.NewDatabaseError(err)
	}

	s.logger.Info("wd profile saved", map[string]interface{}{"owner_id": ownerID})
	return wd, nil
}
