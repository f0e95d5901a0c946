package repository

import (
	"context"
	"database/sql"
	"testing"

	"inhaler-monitor/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupUsersRepo(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *UsersRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewUsersRepository(db, zap.NewNop())

	return db, mock, repo
}

func TestUpsertByPhone_ReturnsUserID(t *testing.T) {
	db, mock, repo := setupUsersRepo(t)
	defer db.Close()

	user := &domain.User{
		Name:                  "Asha",
		Age:                   29,
		Gender:                "female",
		Phone:                 "9876543210",
		MedicalHistory:        sql.NullString{String: "mild asthma", Valid: true},
		EmergencyContactName:  "Ravi",
		EmergencyContactPhone: "9123456780",
	}

	rows := sqlmock.NewRows([]string{"user_id"}).AddRow(int64(7))
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Asha", 29, "female", "9876543210", user.MedicalHistory, "Ravi", "9123456780").
		WillReturnRows(rows)

	userID, err := repo.UpsertByPhone(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertByPhone_SamePhoneKeepsSingleRow(t *testing.T) {
	db, mock, repo := setupUsersRepo(t)
	defer db.Close()

	// 同一手机号再次提交：ON CONFLICT 更新后仍返回同一 user_id
	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(7)))
	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(7)))

	first, err := repo.UpsertByPhone(context.Background(), &domain.User{Name: "Asha", Phone: "9876543210"})
	require.NoError(t, err)
	second, err := repo.UpsertByPhone(context.Background(), &domain.User{Name: "Asha K", Phone: "9876543210"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUser_Success(t *testing.T) {
	db, mock, repo := setupUsersRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"user_id", "name", "age", "gender", "phone",
		"medical_history", "emergency_contact_name", "emergency_contact_phone",
	}).AddRow(int64(7), "Asha", 29, "female", "9876543210", "mild asthma", "Ravi", "9123456780")

	mock.ExpectQuery(`SELECT`).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	user, err := repo.GetUser(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
	assert.Equal(t, "Asha", user.Name)
	assert.Equal(t, "9876543210", user.Phone)
	assert.True(t, user.MedicalHistory.Valid)
	assert.Equal(t, "mild asthma", user.MedicalHistory.String)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUser_NotFound(t *testing.T) {
	db, mock, repo := setupUsersRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	user, err := repo.GetUser(context.Background(), 99)

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
