package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"

	"pouringat.com/PouringAt/pkg/model"
)

type GeocodeCacheTestSuite struct {
	RepositorySuite
}

func TestGeocodeCacheTestSuite(t *testing.T) {
	suite.Run(t, new(GeocodeCacheTestSuite))
}

func (suite *GeocodeCacheTestSuite) TestGetCachedCoordinate_Hit() {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	suite.mock.ExpectQuery(`^SELECT \* FROM "geocode_cache" WHERE \(?address = \$1 AND expires_at > \$2\)?`).
		WithArgs("ne1 4st", now, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "address", "latitude", "longitude"}).
			AddRow(uint(1), "ne1 4st", 54.97, -1.61))

	coordinate, err := suite.repository.GetCachedCoordinate(context.Background(), "ne1 4st", now)
	suite.Require().NoError(err)
	suite.Equal(&model.Coordinate{Latitude: 54.97, Longitude: -1.61}, coordinate)
}

func (suite *GeocodeCacheTestSuite) TestGetCachedCoordinate_Miss() {
	suite.mock.ExpectQuery(`^SELECT \* FROM "geocode_cache"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	coordinate, err := suite.repository.GetCachedCoordinate(context.Background(), "ne1 4st", time.Now())
	suite.Require().NoError(err)
	suite.Nil(coordinate)
}

func (suite *GeocodeCacheTestSuite) TestSaveCachedCoordinate_Upserts() {
	expires := time.Date(2026, 11, 1, 12, 0, 0, 0, time.UTC)

	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^INSERT INTO "geocode_cache" (.+) ON CONFLICT \("address"\) DO UPDATE SET "latitude"="excluded"."latitude","longitude"="excluded"."longitude","expires_at"="excluded"."expires_at"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uint(1)))
	suite.mock.ExpectCommit()

	err := suite.repository.SaveCachedCoordinate(context.Background(), "ne1 4st", model.Coordinate{Latitude: 54.97, Longitude: -1.61}, expires)
	suite.Require().NoError(err)
}
