package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	pgx "github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type CustomerRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    CustomerRepository
	context context.Context
}

func (suite *CustomerRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewCustomerRepo(mock)
	suite.context = context.Background()
}

func (suite *CustomerRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestCustomerRepoTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerRepoTestSuite))
}

func (suite *CustomerRepoTestSuite) TestList_OrderedByName() {
	suite.mock.ExpectQuery(`
		SELECT id, name, email, image_url
		FROM customers
		ORDER BY name ASC
	`).WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "image_url"}).
		AddRow(uuid.New(), "Acme Corp", "billing@acme.test", "/customers/acme.png").
		AddRow(uuid.New(), "Globex", "ap@globex.test", "/customers/globex.png"))

	customers, err := suite.repo.List(suite.context)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), customers, 2)
	assert.Equal(suite.T(), "Acme Corp", customers[0].Name)
}

func (suite *CustomerRepoTestSuite) TestGetByID_NotFound() {
	id := uuid.New()

	suite.mock.ExpectQuery(`
		SELECT id, name, email, image_url
		FROM customers
		WHERE id = \$1
	`).WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	customer, err := suite.repo.GetByID(suite.context, id)
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), customer)
}
