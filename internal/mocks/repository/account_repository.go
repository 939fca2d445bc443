// Package repository contains testify mocks for the domain repository interfaces.
package repository

import (
	"context"

	"doorman/internal/domain/entity"
	domainrepo "doorman/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// testingT is the subset of *testing.T the mock constructors need.
type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockAccountRepository is a testify mock for repository.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

// NewMockAccountRepository creates the mock and registers expectation
// assertion as test cleanup.
func NewMockAccountRepository(t testingT) *MockAccountRepository {
	m := &MockAccountRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	args := m.Called(ctx, email)

	account, _ := args.Get(0).(*entity.Account)

	return account, args.Error(1)
}

func (m *MockAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)

	return args.Error(0)
}

// MockTransactionManager is a testify mock for repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

// NewMockTransactionManager creates the mock and registers expectation
// assertion as test cleanup.
func NewMockTransactionManager(t testingT) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(domainrepo.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)

	return args.Error(0)
}

// MockRepositoryFactory is a testify mock for repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

// NewMockRepositoryFactory creates the mock and registers expectation
// assertion as test cleanup.
func NewMockRepositoryFactory(t testingT) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRepositoryFactory) AccountRepo() domainrepo.AccountRepository {
	args := m.Called()

	repo, _ := args.Get(0).(domainrepo.AccountRepository)

	return repo
}

// FakeTransactionManager runs the callback against a fixed repository with no
// real transaction, for tests that only care about the repository calls.
type FakeTransactionManager struct {
	Repo domainrepo.AccountRepository
}

func (f *FakeTransactionManager) Execute(_ context.Context, fn func(domainrepo.RepositoryFactory) error) error {
	return fn(fakeFactory{repo: f.Repo})
}

type fakeFactory struct {
	repo domainrepo.AccountRepository
}

func (f fakeFactory) AccountRepo() domainrepo.AccountRepository {
	return f.repo
}
