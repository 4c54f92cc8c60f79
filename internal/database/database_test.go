package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/wallabag2karakeep/internal/entities"
)

func TestNewDatabase(t *testing.T) {
	t.Run("creates file and migrates", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "history.db")

		db, err := NewDatabase(dbPath)
		require.NoError(t, err)
		defer db.Close()

		assert.FileExists(t, dbPath)
		assert.True(t, db.DB.Migrator().HasTable(&entities.ConversionRun{}))
		assert.NoError(t, db.Ping())
	})

	t.Run("in memory", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		require.NoError(t, err)
		defer db.Close()

		assert.True(t, db.DB.Migrator().HasTable("conversion_runs"))
	})

	t.Run("reopening keeps data", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "history.db")

		db, err := NewDatabase(dbPath)
		require.NoError(t, err)
		require.NoError(t, db.DB.Create(&entities.ConversionRun{RunID: "abc", Status: entities.RunStatusSuccess}).Error)
		require.NoError(t, db.Close())

		db, err = NewDatabase(dbPath)
		require.NoError(t, err)
		defer db.Close()

		var count int64
		require.NoError(t, db.DB.Model(&entities.ConversionRun{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})
}
