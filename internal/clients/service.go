// Package clients manages the designer's end-client records. Every
// operation is scoped by owner id.
package clients

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"bcstudio-server/internal/common/database"
	"bcstudio-server/internal/common/errors"
	"bcstudio-server/internal/common/logger"
	"bcstudio-server/internal/common/validation"
	"bcstudio-server/internal/models"
)

// Service is the owner-scoped client CRUD.
type Service struct {
	db     *database.PostgresClient
	logger logger.Logger
}

// NewService creates a client service.
func NewService(db *database.PostgresClient, log logger.Logger) *Service {
	return &Service{db: db, logger: log}
}

// Input carries the mutable client fields.
type Input struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

func (in Input) validate() error {
	if in.Name == "" {
		return errors.NewValidationError("Nome do cliente é obrigatório", "name: empty")
	}
	if in.Email != "" && !validation.ValidateEmail(in.Email) {
		return errors.NewValidationError("E-mail inválido", "email: "+in.Email)
	}
	return nil
}

// Create inserts a new client for the owner.
func (s *Service) Create(ctx context.Context, ownerID string, in Input) (*models.Client, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	c := &models.Client{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Company:   in.Company,
		Notes:     in.Notes,
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.db.Exec(ctx,
		`INSERT INTO clients (id, owner_id, name, email, phone, company, notes, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.OwnerID, c.Name, c.Email, c.Phone, c.Company, c.Notes, c.CreatedAt)
	if err != nil {
		return nil, errors.NewDatabaseError(err)
	}
	return c, nil
}

// ListByOwner returns the owner's clients ordered by name.
func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]models.Client, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, owner_id, name, email, phone, company, notes, created_at
		 FROM clients WHERE owner_id = $1 ORDER BY name ASC`, ownerID)
	if err != nil {
		return nil, errors.NewDatabaseError(err)
	}
	defer rows.Close()

	list := []models.Client{}
	for rows.Next() {
		var c models.Client
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.Notes, &c.CreatedAt); err != nil {
			return nil, errors.NewDatabaseError(err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDatabaseError(err)
	}
	return list, nil
}

// GetByID returns one client scoped to its owner.
func (s *Service) GetByID(ctx context.Context, ownerID, id string) (*models.Client, error) {
	var c models.Client
	err := s.db.QueryRow(ctx,
		`SELECT id, owner_id, name, email, phone, company, notes, created_at
		 FROM clients WHERE id = $1 AND owner_id = $2`, id, ownerID).
		Scan(&c.ID, &c.OwnerID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.Notes, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError("client")
	}
	if err != nil {
		return nil, errors.NewDatabaseError(err)
	}
	return &c, nil
}

// Update overwrites the mutable fields of an owner's client.
func (s *Service) Update(ctx context.Context, ownerID, id string, in Input) (*models.Client, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	res, err := s.db.Exec(ctx,
		`UPDATE clients SET name = $1, email = $2, phone = $3, company = $4, notes = $5
		 WHERE id = $6 AND owner_id = $7`,
		in.Name, in.Email, in.Phone, in.Company, in.Notes, id, ownerID)
	if err != nil {
		return nil, errors.NewDatabaseError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, errors.NewDatabaseError(err)
	}
	if affected == 0 {
		return nil, errors.NewNotFoundError("client")
	}
	return s.GetByID(ctx, ownerID, id)
}

// Delete removes an owner's client. Briefings and copies keep their
// client_id as a dangling reference; history is never rewritten.
func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	res, err := s.db.Exec(ctx,
		`DELETE FROM clients WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return errors.NewDatabaseError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.NewDatabaseError(err)
	}
	if affected == 0 {
		return errors.NewNotFoundError("client")
	}
	return nil
}
