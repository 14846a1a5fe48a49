package user_test

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/muhammadheryan/home-service/constant"
	"github.com/muhammadheryan/home-service/model"
	userrepo "github.com/muhammadheryan/home-service/repository/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userSchema = `CREATE TABLE user (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    name          TEXT NOT NULL,
    email         TEXT NOT NULL UNIQUE,
    role          TEXT NOT NULL DEFAULT 'admin',
    password_hash TEXT NOT NULL,
    created_at    DATETIME NOT NULL,
    updated_at    DATETIME NULL
)`

func TestSQL_CreateAndGet(t *testing.T) {
	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	_, err = db.Exec(userSchema)
	require.NoError(t, err)

	repo := userrepo.NewUserRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.UserEntity{
		Name:         "Admin",
		Email:        "admin@example.com",
		Role:         constant.RoleAdmin,
		PasswordHash: "hash",
		CreatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), created.ID)

	got, err := repo.Get(ctx, &model.UserFilter{Email: "admin@example.com"})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, constant.RoleAdmin, got.Role)
	assert.Nil(t, got.UpdatedAt)

	got, err = repo.Get(ctx, &model.UserFilter{ID: 42})
	require.NoError(t, err)
	assert.Nil(t, got)
}
