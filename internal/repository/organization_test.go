//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"promptwatch-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// OrganizationRepositoryTestSuite tests the OrganizationRepository
type OrganizationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *OrganizationRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

func (suite *OrganizationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

func (suite *OrganizationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *OrganizationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *OrganizationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new organization
func (suite *OrganizationRepositoryTestSuite) TestCreate() {
	org := suite.factories.Organization.Create()

	err := suite.repo.Create(suite.ctx, org)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, org.ID)
	suite.NotZero(org.CreatedAt)
	suite.NotZero(org.UpdatedAt)
}

// TestCreateDuplicateName tests the unique index on name
func (suite *OrganizationRepositoryTestSuite) TestCreateDuplicateName() {
	org1 := suite.factories.Organization.WithName("acme")
	org1.Domain = "one.com"
	suite.NoError(suite.repo.Create(suite.ctx, org1))

	org2 := suite.factories.Organization.WithName("acme")
	org2.Domain = "two.com"

	err := suite.repo.Create(suite.ctx, org2)

	suite.Error(err)
}

// TestGetByID tests retrieving an organization by ID
func (suite *OrganizationRepositoryTestSuite) TestGetByID() {
	org := suite.factories.Organization.Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, org))

	retrieved, err := suite.repo.GetByID(suite.ctx, org.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(org.ID, retrieved.ID)
	suite.Equal(org.Name, retrieved.Name)
	suite.Equal(org.Domain, retrieved.Domain)
}

// TestGetByIDNotFound tests retrieving a non-existent organization
func (suite *OrganizationRepositoryTestSuite) TestGetByIDNotFound() {
	org, err := suite.repo.GetByID(suite.ctx, uuid.New())

	suite.Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(org)
}

// TestGetByName tests retrieving an organization by name
func (suite *OrganizationRepositoryTestSuite) TestGetByName() {
	org := suite.factories.Organization.WithName("lookup-org")
	suite.Require().NoError(suite.repo.Create(suite.ctx, org))

	retrieved, err := suite.repo.GetByName(suite.ctx, "lookup-org")

	suite.NoError(err)
	suite.Equal(org.ID, retrieved.ID)
}

// TestGetByDomain tests retrieving an organization by domain
func (suite *OrganizationRepositoryTestSuite) TestGetByDomain() {
	org := suite.factories.Organization.WithDomain("lookup.com")
	suite.Require().NoError(suite.repo.Create(suite.ctx, org))

	retrieved, err := suite.repo.GetByDomain(suite.ctx, "lookup.com")

	suite.NoError(err)
	suite.Equal(org.ID, retrieved.ID)
}

func TestOrganizationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationRepositoryTestSuite))
}
