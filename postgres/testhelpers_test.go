package postgres

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newSqlmockClient returns a Client whose GORM handle runs against sqlmock,
// for exercising query-building paths without a server.
func newSqlmockClient(t *testing.T) (*Client, sqlmock.Sqlmock) {
	t.Helper()

	db, mk, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gdb, err := gorm.Open(gormpg.New(gormpg.Config{Conn: db}), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	require.NoError(t, err)

	return &Client{db: gdb, sqlDB: db}, mk
}
