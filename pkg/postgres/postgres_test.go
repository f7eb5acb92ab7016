package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigDSN(t *testing.T) {
	cfg := Config{
		Host:     "db",
		Port:     "5432",
		Username: "star",
		Password: "burger",
		DBName:   "foodcart",
		SSLMode:  "disable",
		TimeZone: "Europe/Moscow",
	}

	assert.Equal(t,
		"host=db user=star password=burger dbname=foodcart port=5432 sslmode=disable TimeZone=Europe/Moscow",
		cfg.DSN())
}
