package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Samuel-Loga/Personal-Website/metal/env"
)

type Connection struct {
	driverName string
	driver     *gorm.DB
	env        *env.Environment
}

func MakeConnection(env *env.Environment) (*Connection, error) {
	dbEnv := env.DB
	driver, err := gorm.Open(postgres.Open(dbEnv.GetDSN()), &gorm.Config{})

	if err != nil {
		return nil, err
	}

	return &Connection{
		driver:     driver,
		driverName: dbEnv.DriverName,
		env:        env,
	}, nil
}

// NewConnectionFromGorm wraps an already-open gorm handle. Tests use it to
// run the repositories against sqlite.
func NewConnectionFromGorm(driver *gorm.DB) *Connection {
	return &Connection{
		driver:     driver,
		driverName: driver.Name(),
	}
}

func (c *Connection) Close() bool {
	sqlDB, err := c.driver.DB()
	if err != nil {
		slog.Error("There was an error closing the db: " + err.Error())

		return false
	}

	if err = sqlDB.Close(); err != nil {
		slog.Error("There was an error closing the db: " + err.Error())

		return false
	}

	return true
}

func (c *Connection) Ping() error {
	var driver *sql.DB

	slog.Info("Database ping started", "separator", "---------")

	conn, err := c.driver.DB()
	if err != nil {
		slog.Error("Error retrieving the db driver", "error", err.Error())

		return err
	}

	driver = conn
	slog.Info("Database driver acquired", "type", fmt.Sprintf("%T", driver))

	if err = driver.Ping(); err != nil {
		slog.Error("Error pinging the db driver", "error", err.Error())

		return err
	}

	slog.Info("Database driver is healthy", "stats", driver.Stats())
	slog.Info("Database ping completed", "separator", "---------")

	return nil
}

func (c *Connection) Sql() *gorm.DB {
	return c.driver
}

func (c *Connection) GetSession() *gorm.Session {
	return &gorm.Session{QueryFields: true}
}

func (c *Connection) Transaction(callback func(db *gorm.DB) error) error {
	return c.driver.Transaction(callback)
}
