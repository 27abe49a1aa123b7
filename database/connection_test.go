package database_test

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Samuel-Loga/Personal-Website/database"
)

func newMockConnection(t *testing.T) (*database.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("could not create sqlmock: %v", err)
	}

	driver, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	if err != nil {
		t.Fatalf("could not open gorm over sqlmock: %v", err)
	}

	return database.NewConnectionFromGorm(driver), mock
}

func TestConnectionPing(t *testing.T) {
	conn, mock := newMockConnection(t)

	mock.ExpectPing()

	if err := conn.Ping(); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestConnectionPingSurfacesDriverFailure(t *testing.T) {
	conn, mock := newMockConnection(t)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	if err := conn.Ping(); err == nil {
		t.Fatal("expected the driver failure to surface")
	}
}

func TestConnectionTransactionCommits(t *testing.T) {
	conn, mock := newMockConnection(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := conn.Transaction(func(db *gorm.DB) error {
		return nil
	})
	if err != nil {
		t.Fatalf("Transaction failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestConnectionTransactionRollsBackOnError(t *testing.T) {
	conn, mock := newMockConnection(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("tally update failed")

	err := conn.Transaction(func(db *gorm.DB) error {
		return boom
	})

	if !errors.Is(err, boom) {
		t.Fatalf("expected the callback error to surface, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestConnectionClose(t *testing.T) {
	conn, mock := newMockConnection(t)

	mock.ExpectClose()

	if ok := conn.Close(); !ok {
		t.Fatal("expected Close to succeed")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestConnectionGetSessionQueriesNamedFields(t *testing.T) {
	conn, _ := newMockConnection(t)

	if session := conn.GetSession(); !session.QueryFields {
		t.Fatal("expected sessions to select named fields")
	}
}
