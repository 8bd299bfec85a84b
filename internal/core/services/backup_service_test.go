package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/AbdulmosenAlmuzaini/malek/internal/core/services"
	"github.com/AbdulmosenAlmuzaini/malek/internal/platform/config"
)

// --- Mock BackupRepository ---

type MockBackupRepository struct {
	mock.Mock
}

func (m *MockBackupRepository) ExportAll(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// --- Mock BackupSender ---

type MockBackupSender struct {
	mock.Mock
}

func (m *MockBackupSender) SendBackup(to, subject, body, filename string, attachment []byte) error {
	args := m.Called(to, subject, body, filename, attachment)
	return args.Error(0)
}

// --- Test Suite ---

type BackupServiceTestSuite struct {
	suite.Suite
	mockRepo   *MockBackupRepository
	mockSender *MockBackupSender
}

func (suite *BackupServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockBackupRepository)
	suite.mockSender = new(MockBackupSender)
}

func (suite *BackupServiceTestSuite) newService(cfg *config.Config) *services.BackupService {
	return services.NewBackupService(suite.mockRepo, suite.mockSender, cfg)
}

func (suite *BackupServiceTestSuite) TestRunBackup_SendsSnapshotToConfiguredRecipient() {
	snapshot := []byte(`{"users": []}`)
	suite.mockRepo.On("ExportAll", mock.Anything).Return(snapshot, nil).Once()
	suite.mockSender.On("SendBackup",
		"archive@example.com",
		mock.MatchedBy(func(subject string) bool { return len(subject) > 0 }),
		mock.Anything,
		mock.MatchedBy(func(filename string) bool { return filename != "" }),
		snapshot,
	).Return(nil).Once()

	svc := suite.newService(&config.Config{
		SMTPUser:    "smtp-user@example.com",
		SMTPPass:    "pass",
		BackupEmail: "archive@example.com",
	})

	err := svc.RunBackup(context.Background())

	suite.Require().NoError(err)
	suite.mockSender.AssertExpectations(suite.T())
}

func (suite *BackupServiceTestSuite) TestRunBackup_RecipientDefaultsToSMTPUser() {
	snapshot := []byte(`{}`)
	suite.mockRepo.On("ExportAll", mock.Anything).Return(snapshot, nil).Once()
	suite.mockSender.On("SendBackup",
		"smtp-user@example.com", mock.Anything, mock.Anything, mock.Anything, snapshot,
	).Return(nil).Once()

	svc := suite.newService(&config.Config{SMTPUser: "smtp-user@example.com", SMTPPass: "pass"})

	suite.Require().NoError(svc.RunBackup(context.Background()))
	suite.mockSender.AssertExpectations(suite.T())
}

func (suite *BackupServiceTestSuite) TestRunBackup_MissingCredentialsFails() {
	svc := suite.newService(&config.Config{})

	err := svc.RunBackup(context.Background())

	suite.Error(err)
	suite.mockRepo.AssertNotCalled(suite.T(), "ExportAll")
	suite.mockSender.AssertNotCalled(suite.T(), "SendBackup")
}

func (suite *BackupServiceTestSuite) TestRunBackup_ExportFailureDoesNotSend() {
	suite.mockRepo.On("ExportAll", mock.Anything).Return(nil, context.DeadlineExceeded).Once()

	svc := suite.newService(&config.Config{SMTPUser: "u", SMTPPass: "p"})

	err := svc.RunBackup(context.Background())

	suite.Error(err)
	suite.mockSender.AssertNotCalled(suite.T(), "SendBackup")
}

func TestBackupService(t *testing.T) {
	suite.Run(t, new(BackupServiceTestSuite))
}
