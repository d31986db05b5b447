package clients

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bcstudio-server/internal/common/database"
	"bcstudio-server/internal/common/errors"
	"bcstudio-server/internal/common/logger"
)

func newClientService(t *testing.T) (*Service, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewService(&database.PostgresClient{DB: db}, logger.NewNoOpLogger()), mock
}

func clientColumns() []string {
	return []string{"id", "owner_id", "name", "email", "phone", "company", "notes", "created_at"}
}

func TestCreateValidatesInput(t *testing.T) {
	svc, _ := newClientService(t)

	_, err := svc.Create(context.Background(), "owner-1", Input{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeValidationFailed))

	_, err = svc.Create(context.Background(), "owner-1", Input{Name: "Maria", Email: "not-an-email"})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeValidationFailed))
}

func TestCreateInsertsClient(t *testing.T) {
	svc, mock := newClientService(t)

	mock.ExpectExec("INSERT INTO clients").
		WithArgs(sqlmock.AnyArg(), "owner-1", "Maria Souza", "maria@example.com", "", "", "", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	c, err := svc.Create(context.Background(), "owner-1", Input{Name: "Maria Souza", Email: "maria@example.com"})
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "owner-1", c.OwnerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByOwnerScopes(t *testing.T) {
	svc, mock := newClientService(t)

	mock.ExpectQuery("SELECT (.+) FROM clients WHERE owner_id").
		WithArgs("owner-1").
		WillReturnRows(sqlmock.NewRows(clientColumns()).
			AddRow("c-1", "owner-1", "Ana", "", "", "", "", time.Now()).
			AddRow("c-2", "owner-1", "Bruno", "", "", "", "", time.Now()))

	list, err := svc.ListByOwner(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestGetByIDNotFoundForOtherOwner(t *testing.T) {
	svc, mock := newClientService(t)

	mock.ExpectQuery("SELECT (.+) FROM clients WHERE id").
		WithArgs("c-1", "owner-2").
		WillReturnRows(sqlmock.NewRows(clientColumns()))

	_, err := svc.GetByID(context.Background(), "owner-2", "c-1")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeNotFound))
}

func TestUpdateUnknownClient(t *testing.T) {
	svc, mock := newClientService(t)

	mock.ExpectExec("UPDATE clients SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := svc.Update(context.Background(), "owner-1", "ghost", Input{Name: "Maria"})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeNotFound))
}

func TestDeleteClient(t *testing.T) {
	svc, mock := newClientService(t)

	mock.ExpectExec("DELETE FROM clients").
		WithArgs("c-1", "owner-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, svc.Delete(context.Background(), "owner-1", "c-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
