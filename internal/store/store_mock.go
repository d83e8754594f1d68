package store

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/worthyretail/xray/internal/contract"
	"github.com/worthyretail/xray/schema"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetSubmissionStore implements the StoreManager interface.
func (m *MockStoreManager) GetSubmissionStore() contract.SubmissionStore {
	ret := m.Called()
	s, _ := ret.Get(0).(contract.SubmissionStore)
	return s
}

// MockSubmissionStore is a mock implementation of SubmissionStore for testing.
type MockSubmissionStore struct {
	mock.Mock
}

var _ contract.SubmissionStore = &MockSubmissionStore{} // Compile-time check

// RecordSubmission implements the SubmissionStore interface.
func (m *MockSubmissionStore) RecordSubmission(ctx context.Context, sub schema.Submission) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

// ListSubmissions implements the SubmissionStore interface.
func (m *MockSubmissionStore) ListSubmissions(ctx context.Context, teamCode string) ([]schema.Submission, error) {
	args := m.Called(ctx, teamCode)
	subs, _ := args.Get(0).([]schema.Submission)
	return subs, args.Error(1)
}

// GetStatus implements the SubmissionStore interface.
func (m *MockSubmissionStore) GetStatus() (schema.StoreStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.StoreStatus), args.Error(1)
}

// Close implements the SubmissionStore interface.
func (m *MockSubmissionStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
