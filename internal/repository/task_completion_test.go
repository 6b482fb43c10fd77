//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"
	"time"

	"growth-roadmap-backend/internal/database/models"
	apperrors "growth-roadmap-backend/internal/errors"
	"growth-roadmap-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TaskCompletionRepositoryTestSuite tests the task, ledger and key result repositories together
type TaskCompletionRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TaskCompletionRepository
	taskRepo      *TaskRepository
	krRepo        *KeyResultRepository
	orgRepo       *OrganizationRepository
	factories     *testutils.FactorySet
	ctx           context.Context
	org           *models.Organization
}

func (suite *TaskCompletionRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	db := suite.baseTestSuite.DB
	suite.repo = NewTaskCompletionRepository(db)
	suite.taskRepo = NewTaskRepository(db)
	suite.krRepo = NewKeyResultRepository(db)
	suite.orgRepo = NewOrganizationRepository(db)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

func (suite *TaskCompletionRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *TaskCompletionRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.org = suite.factories.Organization.Create()
	suite.Require().NoError(suite.orgRepo.Create(suite.ctx, suite.org))
}

func (suite *TaskCompletionRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TaskCompletionRepositoryTestSuite) createTask(phase int) *models.Task {
	task := suite.factories.Task.Create(suite.org.ID, phase)
	suite.Require().NoError(suite.taskRepo.Create(suite.ctx, task))
	return task
}

func (suite *TaskCompletionRepositoryTestSuite) createCompletion(c *models.TaskCompletion) *models.TaskCompletion {
	suite.Require().NoError(suite.repo.Create(suite.ctx, c))
	return c
}

// TestCountValidatedByPhase tests only validated user completions count, once per task
func (suite *TaskCompletionRepositoryTestSuite) TestCountValidatedByPhase() {
	t1 := suite.createTask(1)
	t2 := suite.createTask(1)
	t3 := suite.createTask(1)
	other := suite.createTask(2)

	suite.createCompletion(suite.factories.TaskCompletion.Validated(t1, "alice"))
	suite.createCompletion(suite.factories.TaskCompletion.Validated(t1, "bob"))
	suite.createCompletion(suite.factories.TaskCompletion.Validated(t2, "alice"))
	suite.createCompletion(suite.factories.TaskCompletion.Create(t3, "alice"))
	suite.createCompletion(suite.factories.TaskCompletion.Validated(other, "alice"))

	count, err := suite.repo.CountValidatedByPhase(suite.ctx, suite.org.ID, 1)
	suite.NoError(err)
	suite.Equal(int64(2), count)

	total, err := suite.taskRepo.CountByPhase(suite.ctx, suite.org.ID, 1)
	suite.NoError(err)
	suite.Equal(int64(3), total)
}

// TestCountValidatedIgnoresValidationWithoutUserCompletion tests both flags are required
func (suite *TaskCompletionRepositoryTestSuite) TestCountValidatedIgnoresValidationWithoutUserCompletion() {
	task := suite.createTask(1)
	c := suite.factories.TaskCompletion.Validated(task, "alice")
	c.CompletedByUser = false
	suite.createCompletion(c)

	count, err := suite.repo.CountValidatedByPhase(suite.ctx, suite.org.ID, 1)

	suite.NoError(err)
	suite.Zero(count)
}

// TestValidatedTaskIDs tests the distinct set of validated tasks
func (suite *TaskCompletionRepositoryTestSuite) TestValidatedTaskIDs() {
	t1 := suite.createTask(1)
	t2 := suite.createTask(2)
	suite.createCompletion(suite.factories.TaskCompletion.Validated(t1, "alice"))
	suite.createCompletion(suite.factories.TaskCompletion.Validated(t1, "bob"))
	suite.createCompletion(suite.factories.TaskCompletion.Create(t2, "alice"))

	ids, err := suite.repo.ValidatedTaskIDs(suite.ctx, suite.org.ID)

	suite.NoError(err)
	suite.Equal([]uuid.UUID{t1.ID}, ids)
}

// TestDuplicateCompletion tests one completion per task and user
func (suite *TaskCompletionRepositoryTestSuite) TestDuplicateCompletion() {
	task := suite.createTask(1)
	suite.createCompletion(suite.factories.TaskCompletion.Create(task, "alice"))

	err := suite.repo.Create(suite.ctx, suite.factories.TaskCompletion.Create(task, "alice"))

	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestListCompletionsFilters tests ledger filters
func (suite *TaskCompletionRepositoryTestSuite) TestListCompletionsFilters() {
	t1 := suite.createTask(1)
	t2 := suite.createTask(2)
	suite.createCompletion(suite.factories.TaskCompletion.Validated(t1, "alice"))
	suite.createCompletion(suite.factories.TaskCompletion.Create(t2, "alice"))

	all, err := suite.repo.ListCompletions(suite.ctx, suite.org.ID, CompletionFilter{})
	suite.NoError(err)
	suite.Len(all, 2)

	phase := 2
	byPhase, err := suite.repo.ListCompletions(suite.ctx, suite.org.ID, CompletionFilter{Phase: &phase})
	suite.NoError(err)
	suite.Require().Len(byPhase, 1)
	suite.Equal(t2.ID, byPhase[0].TaskID)
	suite.Require().NotNil(byPhase[0].Task)
	suite.Equal(t2.Title, byPhase[0].Task.Title)

	pending, err := suite.repo.ListCompletions(suite.ctx, suite.org.ID, CompletionFilter{UnvalidatedOnly: true})
	suite.NoError(err)
	suite.Len(pending, 1)

	validated, err := suite.repo.ListCompletions(suite.ctx, suite.org.ID, CompletionFilter{ValidatedOnly: true})
	suite.NoError(err)
	suite.Require().Len(validated, 1)
	suite.Equal(t1.ID, validated[0].TaskID)
}

// TestValidateAppliesKeyResultIncrement tests validation moves the linked key result
func (suite *TaskCompletionRepositoryTestSuite) TestValidateAppliesKeyResultIncrement() {
	kr := suite.factories.KeyResult.Create(suite.org.ID)
	kr.CurrentValue = 10
	suite.Require().NoError(suite.krRepo.Create(suite.ctx, kr))

	task := suite.factories.Task.WithKeyResult(suite.org.ID, 1, kr.ID, 2.5)
	suite.Require().NoError(suite.taskRepo.Create(suite.ctx, task))
	completion := suite.createCompletion(suite.factories.TaskCompletion.Create(task, "alice"))

	at := time.Now().UTC().Truncate(time.Second)
	validated, err := suite.repo.Validate(suite.ctx, completion.ID, "leader-1", at)

	suite.Require().NoError(err)
	suite.True(validated.ValidatedByLeader)
	suite.Equal("leader-1", validated.ValidatedBy)
	suite.Require().NotNil(validated.Task)
	suite.Equal(task.ID, validated.Task.ID)

	stored, err := suite.krRepo.GetByID(suite.ctx, kr.ID)
	suite.Require().NoError(err)
	suite.Equal(12.5, stored.CurrentValue)
}

// TestValidateTwice tests a completion is validated at most once
func (suite *TaskCompletionRepositoryTestSuite) TestValidateTwice() {
	kr := suite.factories.KeyResult.Create(suite.org.ID)
	suite.Require().NoError(suite.krRepo.Create(suite.ctx, kr))
	task := suite.factories.Task.WithKeyResult(suite.org.ID, 1, kr.ID, 1)
	suite.Require().NoError(suite.taskRepo.Create(suite.ctx, task))
	completion := suite.createCompletion(suite.factories.TaskCompletion.Create(task, "alice"))

	_, err := suite.repo.Validate(suite.ctx, completion.ID, "leader-1", time.Now())
	suite.Require().NoError(err)
	_, err = suite.repo.Validate(suite.ctx, completion.ID, "leader-1", time.Now())

	suite.ErrorIs(err, apperrors.ErrCompletionAlreadyValid)
	stored, err := suite.krRepo.GetByID(suite.ctx, kr.ID)
	suite.Require().NoError(err)
	suite.Equal(1.0, stored.CurrentValue)
}

// TestValidateNotFound tests validating a missing completion
func (suite *TaskCompletionRepositoryTestSuite) TestValidateNotFound() {
	_, err := suite.repo.Validate(suite.ctx, uuid.New(), "leader-1", time.Now())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestKeyResults tests key result lookups and updates
func (suite *TaskCompletionRepositoryTestSuite) TestKeyResults() {
	kr1 := suite.factories.KeyResult.Create(suite.org.ID)
	kr2 := suite.factories.KeyResult.Create(suite.org.ID)
	suite.Require().NoError(suite.krRepo.Create(suite.ctx, kr1))
	suite.Require().NoError(suite.krRepo.Create(suite.ctx, kr2))

	count, err := suite.krRepo.CountByOrganization(suite.ctx, suite.org.ID)
	suite.NoError(err)
	suite.Equal(int64(2), count)

	list, err := suite.krRepo.ListByIDs(suite.ctx, []uuid.UUID{kr1.ID, uuid.New()})
	suite.NoError(err)
	suite.Len(list, 1)

	empty, err := suite.krRepo.ListByIDs(suite.ctx, nil)
	suite.NoError(err)
	suite.Empty(empty)

	suite.NoError(suite.krRepo.UpdateCurrent(suite.ctx, kr2.ID, 33))
	stored, err := suite.krRepo.GetByID(suite.ctx, kr2.ID)
	suite.Require().NoError(err)
	suite.Equal(33.0, stored.CurrentValue)

	suite.Equal(gorm.ErrRecordNotFound, suite.krRepo.UpdateCurrent(suite.ctx, uuid.New(), 1))
}

func TestTaskCompletionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TaskCompletionRepositoryTestSuite))
}
