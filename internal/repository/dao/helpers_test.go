package dao

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vietanh2810/cake-api/internal/db"
)

func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := db.OpenSQLite(filepath.Join(t.TempDir(), "cakes.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close(conn)
	})

	require.NoError(t, InitTables(conn))

	return conn
}

// resetTables drops and recreates every table, which also restarts the id
// sequences.
func resetTables(conn *gorm.DB) error {
	if err := conn.Migrator().DropTable(&Cake{}); err != nil {
		return err
	}

	return InitTables(conn)
}

func newCake(name, flavor string, price float64) Cake {
	return Cake{
		Name:        name,
		Description: name + " description",
		Flavor:      flavor,
		Price:       price,
		IsAvailable: true,
	}
}

func ptr[T any](v T) *T {
	return &v
}
