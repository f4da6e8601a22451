package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	pgx "github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type InvoiceRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    InvoiceRepository
	context context.Context
}

func (suite *InvoiceRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewInvoiceRepo(mock)
	suite.context = context.Background()
}

func (suite *InvoiceRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestInvoiceRepoTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceRepoTestSuite))
}

func (suite *InvoiceRepoTestSuite) TestCreate_Success() {
	customerID := uuid.New().String()

	suite.mock.ExpectExec(`
		INSERT INTO invoices \(customer_id, amount, status\)
		VALUES \(\$1, \$2, \$3\)
	`).WithArgs(customerID, int64(1999), "pending").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.Create(suite.context, customerID, 1999, "pending")
	assert.NoError(suite.T(), err)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *InvoiceRepoTestSuite) TestCreate_ConstraintViolation() {
	customerID := uuid.New().String()

	suite.mock.ExpectExec(`
		INSERT INTO invoices \(customer_id, amount, status\)
		VALUES \(\$1, \$2, \$3\)
	`).WithArgs(customerID, int64(1999), "pending").
		WillReturnError(errors.New("foreign key violation"))

	err := suite.repo.Create(suite.context, customerID, 1999, "pending")
	assert.Error(suite.T(), err)
}

func (suite *InvoiceRepoTestSuite) TestUpdate_ReportsAffectedRows() {
	id := uuid.New().String()
	customerID := uuid.New().String()

	suite.mock.ExpectExec(`
		UPDATE invoices
		SET customer_id = \$1, amount = \$2, status = \$3
		WHERE id = \$4
	`).WithArgs(customerID, int64(500), "paid", id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	rows, err := suite.repo.Update(suite.context, id, customerID, 500, "paid")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), rows)
}

func (suite *InvoiceRepoTestSuite) TestUpdate_NoMatchingRow() {
	id := uuid.New().String()
	customerID := uuid.New().String()

	suite.mock.ExpectExec(`
		UPDATE invoices
		SET customer_id = \$1, amount = \$2, status = \$3
		WHERE id = \$4
	`).WithArgs(customerID, int64(500), "paid", id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	rows, err := suite.repo.Update(suite.context, id, customerID, 500, "paid")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(0), rows)
}

func (suite *InvoiceRepoTestSuite) TestDelete_Success() {
	id := uuid.New().String()

	suite.mock.ExpectExec(`DELETE FROM invoices WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	rows, err := suite.repo.Delete(suite.context, id)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), rows)
}

func (suite *InvoiceRepoTestSuite) TestDelete_NoMatchingRow() {
	id := uuid.New().String()

	suite.mock.ExpectExec(`DELETE FROM invoices WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	rows, err := suite.repo.Delete(suite.context, id)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(0), rows)
}

func (suite *InvoiceRepoTestSuite) TestGetByID_Found() {
	id := uuid.New()
	customerID := uuid.New()
	date := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	suite.mock.ExpectQuery(`
		SELECT id, customer_id, amount, status, date
		FROM invoices
		WHERE id = \$1
	`).WithArgs(id.String()).
		WillReturnRows(pgxmock.NewRows([]string{"id", "customer_id", "amount", "status", "date"}).
			AddRow(id, customerID, int64(1999), "pending", date))

	invoice, err := suite.repo.GetByID(suite.context, id.String())
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), invoice)
	assert.Equal(suite.T(), id, invoice.ID)
	assert.Equal(suite.T(), int64(1999), invoice.Amount)
	assert.Equal(suite.T(), "pending", invoice.Status)
}

func (suite *InvoiceRepoTestSuite) TestGetByID_NotFound() {
	id := uuid.New().String()

	suite.mock.ExpectQuery(`
		SELECT id, customer_id, amount, status, date
		FROM invoices
		WHERE id = \$1
	`).WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	invoice, err := suite.repo.GetByID(suite.context, id)
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), invoice)
}

func (suite *InvoiceRepoTestSuite) TestList_Success() {
	date := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	suite.mock.ExpectQuery(`
		SELECT id, customer_id, amount, status, date
		FROM invoices
		ORDER BY date DESC
		LIMIT \$1 OFFSET \$2
	`).WithArgs(50, 0).
		WillReturnRows(pgxmock.NewRows([]string{"id", "customer_id", "amount", "status", "date"}).
			AddRow(uuid.New(), uuid.New(), int64(1999), "pending", date).
			AddRow(uuid.New(), uuid.New(), int64(500), "paid", date))

	invoices, err := suite.repo.List(suite.context, 50, 0)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), invoices, 2)
}
