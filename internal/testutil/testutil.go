package testutil

import (
	"database/sql"
	"io"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// DbMock opens gorm on top of sqlmock for storage tests.
func DbMock(t *testing.T) (*sql.DB, *gorm.DB, sqlmock.Sqlmock) {
	sqldb, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}

	gormdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqldb,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}

	return sqldb, gormdb, mock
}

// Logger discards output.
func Logger() *logrus.Entry {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return logrus.NewEntry(log)
}

func UintPtr(v uint) *uint {
	return &v
}

func FloatPtr(v float64) *float64 {
	return &v
}

// ColumnSize reads the size gorm declares for a model field.
func ColumnSize(t *testing.T, model interface{}, field string) int {
	t.Helper()

	parsed, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		t.Fatal(err)
	}

	f := parsed.LookUpField(field)
	if f == nil {
		t.Fatalf("field %s not found", field)
	}
	return f.Size
}
