package auth

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bcstudio-server/internal/common/database"
	"bcstudio-server/internal/common/errors"
	"bcstudio-server/internal/common/logger"
)

func profileColumns() []string {
	return []string{"id", "email", "full_name", "plan", "role", "created_at", "updated_at"}
}

func TestAuthenticateEmptyToken(t *testing.T) {
	svc := NewService(nil, nil, logger.NewNoOpLogger())

	_, err := svc.Authenticate(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeUnauthorized))
}

func TestAuthenticateUnknownToken(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	svc := NewService(&database.PostgresClient{DB: db}, nil, logger.NewNoOpLogger())

	mock.ExpectQuery("SELECT (.+) FROM sessions").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(profileColumns()))

	_, err = svc.Authenticate(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeUnauthorized))
}

func TestAuthenticateResolvesAndCaches(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	svc := NewService(&database.PostgresClient{DB: db}, &database.RedisClient{Client: rdb}, logger.NewNoOpLogger())

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM sessions").
		WithArgs("tok-1").
		WillReturnRows(sqlmock.NewRows(profileColumns()).
			AddRow("u-1", "ana@example.com", "Ana Lima", "pro", "subscriber", now, now))

	profile, err := svc.Authenticate(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", profile.ID)
	assert.Equal(t, "pro", string(profile.Plan))

	// second call must come from the cache, no further DB expectations
	cached, err := svc.Authenticate(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, profile.ID, cached.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvalidateDropsCachedSession(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	svc := NewService(&database.PostgresClient{DB: db}, &database.RedisClient{Client: rdb}, logger.NewNoOpLogger())

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM sessions").
		WithArgs("tok-1").
		WillReturnRows(sqlmock.NewRows(profileColumns()).
			AddRow("u-1", "ana@example.com", "Ana Lima", "basic", "subscriber", now, now))

	_, err = svc.Authenticate(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.True(t, mr.Exists("session:tok-1"))

	svc.Invalidate(context.Background(), "tok-1")
	assert.False(t, mr.Exists("session:tok-1"))
}
