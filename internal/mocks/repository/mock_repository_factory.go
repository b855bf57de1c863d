package repository

import (
	repository "bikeroute/internal/domain/repository"

	mock "github.com/stretchr/testify/mock"
)

// MockRepositoryFactory is a mock type for the RepositoryFactory type
type MockRepositoryFactory struct {
	mock.Mock
}

type MockRepositoryFactory_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRepositoryFactory) EXPECT() *MockRepositoryFactory_Expecter {
	return &MockRepositoryFactory_Expecter{mock: &_m.Mock}
}

// NewRouteRepository provides a mock function with given fields:
func (_m *MockRepositoryFactory) NewRouteRepository() repository.RouteRepository {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for NewRouteRepository")
	}

	var r0 repository.RouteRepository
	if rf, ok := ret.Get(0).(func() repository.RouteRepository); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(repository.RouteRepository)
		}
	}

	return r0
}

// MockRepositoryFactory_NewRouteRepository_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'NewRouteRepository'
type MockRepositoryFactory_NewRouteRepository_Call struct {
	*mock.Call
}

// NewRouteRepository is a helper method to define mock.On call
func (_e *MockRepositoryFactory_Expecter) NewRouteRepository() *MockRepositoryFactory_NewRouteRepository_Call {
	return &MockRepositoryFactory_NewRouteRepository_Call{Call: _e.mock.On("NewRouteRepository")}
}

func (_c *MockRepositoryFactory_NewRouteRepository_Call) Run(run func()) *MockRepositoryFactory_NewRouteRepository_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockRepositoryFactory_NewRouteRepository_Call) Return(_a0 repository.RouteRepository) *MockRepositoryFactory_NewRouteRepository_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRepositoryFactory_NewRouteRepository_Call) RunAndReturn(run func() repository.RouteRepository) *MockRepositoryFactory_NewRouteRepository_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockRepositoryFactory creates a new instance of MockRepositoryFactory. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockRepositoryFactory(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepositoryFactory {
	mock := &MockRepositoryFactory{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
