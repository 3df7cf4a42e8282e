// Package mock provides test doubles for the integration test suite.
package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Db wraps a shared in-memory SQLite database used by every scenario.
type Db struct {
	DbConn *gorm.DB
	models []interface{}
}

var (
	dbInstance *Db
	dbOnce     sync.Once
)

// NewDb returns the singleton test database, creating and migrating it on
// first use. A single connection keeps the shared in-memory database alive
// for the lifetime of the test run.
func NewDb(models ...interface{}) *Db {
	dbOnce.Do(func() {
		conn, err := sql.Open("sqlite", "file::memory:?cache=shared")
		if err != nil {
			panic(fmt.Sprintf("failed to open test database: %v", err))
		}
		conn.SetMaxOpenConns(1)

		gormDB, err := gorm.Open(sqlite.Dialector{Conn: conn}, &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			panic(fmt.Sprintf("failed to initialize gorm: %v", err))
		}

		if err := gormDB.AutoMigrate(models...); err != nil {
			panic(fmt.Sprintf("failed to migrate test database: %v", err))
		}

		dbInstance = &Db{
			DbConn: gormDB,
			models: models,
		}
	})
	return dbInstance
}

// Reset deletes every row from every migrated table so each scenario starts
// from a clean slate. Soft-deleted rows are removed as well.
func (d *Db) Reset() error {
	for _, m := range d.models {
		session := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped()
		if err := session.Delete(m).Error; err != nil {
			return fmt.Errorf("failed to reset table: %w", err)
		}
	}
	return nil
}
