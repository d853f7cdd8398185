package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"

	"pouringat.com/PouringAt/pkg/model"
)

type BeverageTestSuite struct {
	RepositorySuite
}

func TestBeverageTestSuite(t *testing.T) {
	suite.Run(t, new(BeverageTestSuite))
}

func (suite *BeverageTestSuite) TestUpsertBrewery_CreatesBrewery() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "breweries" ("created_at","updated_at","deleted_at","name","url","location","external_id","external_source") VALUES ($1,$2,$3,$4,$5,$6,$7,$8) ON CONFLICT DO NOTHING RETURNING "id"`)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), "Wylam", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uint(7)))
	suite.mock.ExpectCommit()

	brewery, created, err := suite.repository.UpsertBrewery(context.Background(), "Wylam")
	suite.Require().NoError(err)
	suite.True(created)
	suite.Equal(uint(7), brewery.ID)
	suite.Equal("Wylam", brewery.Name)
}

func (suite *BeverageTestSuite) TestUpsertBrewery_ReturnsExistingBrewery() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^INSERT INTO "breweries" (.+) ON CONFLICT DO NOTHING`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	suite.mock.ExpectCommit()
	suite.mock.ExpectQuery(`^SELECT \* FROM "breweries" WHERE name = \$1`).
		WithArgs("Wylam", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "url"}).AddRow(uint(3), "Wylam", "https://wylambrewery.co.uk"))

	brewery, created, err := suite.repository.UpsertBrewery(context.Background(), "Wylam")
	suite.Require().NoError(err)
	suite.False(created)
	suite.Equal(uint(3), brewery.ID)
	suite.Equal(pointy.String("https://wylambrewery.co.uk"), brewery.URL)
}

func (suite *BeverageTestSuite) TestUpdateBreweryMetadata_UpdatesSelectedColumns() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`^UPDATE "breweries" SET .*"url"=.*"location"=.*"external_id"=.*"external_source"=`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	brewery := model.Brewery{
		Name:           "Wylam",
		URL:            pointy.String("https://wylambrewery.co.uk"),
		Location:       pointy.String("Newcastle upon Tyne, England"),
		ExternalID:     pointy.Uint64(1234),
		ExternalSource: pointy.String("untappd-web"),
	}
	brewery.ID = 3

	suite.Require().NoError(suite.repository.UpdateBreweryMetadata(context.Background(), brewery))
}

func (suite *BeverageTestSuite) TestUpsertBeverage_CreatesBeverage() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^INSERT INTO "beverages" (.+) ON CONFLICT \("name","brewery_id"\) DO NOTHING RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uint(11)))
	suite.mock.ExpectCommit()

	brewery := &model.Brewery{Name: "Wylam"}
	brewery.ID = 3

	beverage, err := suite.repository.UpsertBeverage(context.Background(), model.Beverage{
		Name: "Jakehead", Style: "IPA", ABV: 6.3, BreweryID: 3, Brewery: brewery,
	})
	suite.Require().NoError(err)
	suite.Equal(uint(11), beverage.ID)
	suite.Same(brewery, beverage.Brewery)
}

func (suite *BeverageTestSuite) TestUpsertBeverage_KeepsExistingBeverage() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^INSERT INTO "beverages" (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	suite.mock.ExpectCommit()
	suite.mock.ExpectQuery(`^SELECT \* FROM "beverages" WHERE \(name = \$1 AND brewery_id = \$2\)`).
		WithArgs("Jakehead", 3, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "style", "abv", "brewery_id"}).
			AddRow(uint(11), "Jakehead", "West Coast IPA", 6.3, uint(3)))

	beverage, err := suite.repository.UpsertBeverage(context.Background(), model.Beverage{
		Name: "Jakehead", Style: "IPA", ABV: 6.5, BreweryID: 3,
	})
	suite.Require().NoError(err)
	suite.Equal(uint(11), beverage.ID)
	suite.Equal("West Coast IPA", beverage.Style)
	suite.InDelta(6.3, beverage.ABV, 0.01)
}
