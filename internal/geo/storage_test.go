package geo

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mserebryaakov/foodcart-service/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const insertPlaceSQL = `INSERT INTO "geo_places" .+ ON CONFLICT \("address"\) DO NOTHING RETURNING "id"`

func TestCreatePlace(t *testing.T) {
	sqlDB, db, mock := testutil.DbMock(t)
	defer sqlDB.Close()
	storage := NewStorage(db)

	mock.ExpectBegin()
	mock.ExpectQuery(insertPlaceSQL).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	created, err := storage.CreatePlace(context.Background(), &GeoPlace{
		Address: "Москва",
		Lon:     testutil.FloatPtr(37.6),
		Lat:     testutil.FloatPtr(55.7),
		SavedAt: time.Now(),
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePlaceAlreadyStored(t *testing.T) {
	sqlDB, db, mock := testutil.DbMock(t)
	defer sqlDB.Close()
	storage := NewStorage(db)

	mock.ExpectBegin()
	mock.ExpectQuery(insertPlaceSQL).WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectCommit()

	created, err := storage.CreatePlace(context.Background(), &GeoPlace{Address: "Москва", SavedAt: time.Now()})
	require.NoError(t, err)
	assert.False(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPlaces(t *testing.T) {
	sqlDB, db, mock := testutil.DbMock(t)
	defer sqlDB.Close()
	storage := NewStorage(db)

	rows := sqlmock.NewRows([]string{"id", "address", "lon", "lat", "saved_at"}).
		AddRow(1, "Москва", 37.6, 55.7, time.Now()).
		AddRow(2, "Тверь", nil, nil, time.Now())
	mock.ExpectQuery(`SELECT \* FROM "geo_places" WHERE address IN \(\$1,\$2\)`).WillReturnRows(rows)

	places, err := storage.GetPlaces(context.Background(), []string{"Москва", "Тверь"})
	require.NoError(t, err)
	require.Len(t, places, 2)
	assert.Equal(t, &Coordinate{Lon: 37.6, Lat: 55.7}, places[0].Coordinate())
	assert.Nil(t, places[1].Coordinate())
	assert.NoError(t, mock.ExpectationsWereMet())
}
