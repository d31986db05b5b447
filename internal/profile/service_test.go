package profile

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bcstudio-server/internal/common/database"
	"bcstudio-server/internal/common/errors"
	"bcstudio-server/internal/common/logger"
	"bcstudio-server/internal/models"
)

func newProfileService(t *testing.T) (*Service, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewService(&database.PostgresClient{DB: db}, logger.NewNoOpLogger()), mock
}

func TestGetWithoutWdProfile(t *testing.T) {
	svc, mock := newProfileService(t)

	mock.ExpectQuery("SELECT (.+) FROM wd_profiles").
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	view, err := svc.Get(context.Background(), &models.Profile{ID: "u-1", Plan: models.PlanFree})
	require.NoError(t, err)
	assert.Equal(t, "u-1", view.Profile.ID)
	assert.Nil(t, view.WdProfile)
}

func TestGetWithWdProfile(t *testing.T) {
	svc, mock := newProfileService(t)

	mock.ExpectQuery("SELECT (.+) FROM wd_profiles").
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "name", "cpf_cnpj", "address", "city", "state", "phone", "email"}).
			AddRow("wd-1", "u-1", "João Designer", "", "", "São Paulo", "SP", "", ""))

	view, err := svc.Get(context.Background(), &models.Profile{ID: "u-1"})
	require.NoError(t, err)
	require.NotNil(t, view.WdProfile)
	assert.Equal(t, "João Designer", view.WdProfile.Name)
}

func TestContactByID(t *testing.T) {
	svc, mock := newProfileService(t)

	mock.ExpectQuery("SELECT p.email, COALESCE").
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"email", "phone"}).
			AddRow("joao@example.com", "+5511999999999"))

	email, phone, err := svc.ContactByID(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, "joao@example.com", email)
	assert.Equal(t, "+5511999999999", phone)
}

func TestContactByIDUnknownUser(t *testing.T) {
	svc, mock := newProfileService(t)

	mock.ExpectQuery("SELECT p.email, COALESCE").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"email", "phone"}))

	_, _, err := svc.ContactByID(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeNotFound))
}

func TestUpsertWdValidation(t *testing.T) {
	svc, _ := newProfileService(t)

	_, err := svc.UpsertWd(context.Background(), "u-1", WdInput{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeValidationFailed))

	_, err = svc.UpsertWd(context.Background(), "u-1", WdInput{Name: "João", Email: "bad"})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeValidationFailed))
}

func TestUpsertWdSaves(t *testing.T) {
	svc, mock := newProfileService(t)

	mock.ExpectQuery("INSERT INTO wd_profiles").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("wd-1"))

	wd, err := svc.UpsertWd(context.Background(), "u-1", WdInput{Name: "João Designer", City: "São Paulo", State: "SP"})
	require.NoError(t, err)
	assert.Equal(t, "wd-1", wd.ID)
	assert.Equal(t, "u-1", wd.OwnerID)
}
