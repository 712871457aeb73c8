package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/noteagent/noteagent/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	err = database.AutoMigrate(&models.User{}, &models.Workspace{}, &models.Note{})
	require.NoError(t, err)

	return New(database, 50, 200)
}

func registerUser(t *testing.T, s *Store, email string) (*models.User, *models.Workspace) {
	t.Helper()

	user, err := s.Register(context.Background(), email, "secret123")
	require.NoError(t, err)

	workspaces, err := s.ListWorkspaces(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, workspaces, 1)

	return user, &workspaces[0]
}
