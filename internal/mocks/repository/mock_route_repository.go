package repository

import (
	context "context"

	entity "bikeroute/internal/domain/entity"

	uuid "github.com/google/uuid"

	mock "github.com/stretchr/testify/mock"
)

// MockRouteRepository is a mock type for the RouteRepository type
type MockRouteRepository struct {
	mock.Mock
}

type MockRouteRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRouteRepository) EXPECT() *MockRouteRepository_Expecter {
	return &MockRouteRepository_Expecter{mock: &_m.Mock}
}

// CreateRoute provides a mock function with given fields: ctx, route
func (_m *MockRouteRepository) CreateRoute(ctx context.Context, route *entity.SavedRoute) error {
	ret := _m.Called(ctx, route)

	if len(ret) == 0 {
		panic("no return value specified for CreateRoute")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.SavedRoute) error); ok {
		r0 = rf(ctx, route)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockRouteRepository_CreateRoute_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateRoute'
type MockRouteRepository_CreateRoute_Call struct {
	*mock.Call
}

// CreateRoute is a helper method to define mock.On call
func (_e *MockRouteRepository_Expecter) CreateRoute(ctx any, route any) *MockRouteRepository_CreateRoute_Call {
	return &MockRouteRepository_CreateRoute_Call{Call: _e.mock.On("CreateRoute", ctx, route)}
}

func (_c *MockRouteRepository_CreateRoute_Call) Run(run func(ctx context.Context, route *entity.SavedRoute)) *MockRouteRepository_CreateRoute_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.SavedRoute))
	})
	return _c
}

func (_c *MockRouteRepository_CreateRoute_Call) Return(_a0 error) *MockRouteRepository_CreateRoute_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRouteRepository_CreateRoute_Call) RunAndReturn(run func(context.Context, *entity.SavedRoute) error) *MockRouteRepository_CreateRoute_Call {
	_c.Call.Return(run)
	return _c
}

// FindRouteByID provides a mock function with given fields: ctx, id
func (_m *MockRouteRepository) FindRouteByID(ctx context.Context, id uuid.UUID) (*entity.SavedRoute, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for FindRouteByID")
	}

	var r0 *entity.SavedRoute
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (*entity.SavedRoute, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *entity.SavedRoute); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.SavedRoute)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockRouteRepository_FindRouteByID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindRouteByID'
type MockRouteRepository_FindRouteByID_Call struct {
	*mock.Call
}

// FindRouteByID is a helper method to define mock.On call
func (_e *MockRouteRepository_Expecter) FindRouteByID(ctx any, id any) *MockRouteRepository_FindRouteByID_Call {
	return &MockRouteRepository_FindRouteByID_Call{Call: _e.mock.On("FindRouteByID", ctx, id)}
}

func (_c *MockRouteRepository_FindRouteByID_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockRouteRepository_FindRouteByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockRouteRepository_FindRouteByID_Call) Return(_a0 *entity.SavedRoute, _a1 error) *MockRouteRepository_FindRouteByID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockRouteRepository_FindRouteByID_Call) RunAndReturn(run func(context.Context, uuid.UUID) (*entity.SavedRoute, error)) *MockRouteRepository_FindRouteByID_Call {
	_c.Call.Return(run)
	return _c
}

// ListRoutes provides a mock function with given fields: ctx, limit, offset
func (_m *MockRouteRepository) ListRoutes(ctx context.Context, limit int, offset int) ([]*entity.SavedRoute, error) {
	ret := _m.Called(ctx, limit, offset)

	if len(ret) == 0 {
		panic("no return value specified for ListRoutes")
	}

	var r0 []*entity.SavedRoute
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int, int) ([]*entity.SavedRoute, error)); ok {
		return rf(ctx, limit, offset)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int, int) []*entity.SavedRoute); ok {
		r0 = rf(ctx, limit, offset)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.SavedRoute)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int, int) error); ok {
		r1 = rf(ctx, limit, offset)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockRouteRepository_ListRoutes_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListRoutes'
type MockRouteRepository_ListRoutes_Call struct {
	*mock.Call
}

// ListRoutes is a helper method to define mock.On call
func (_e *MockRouteRepository_Expecter) ListRoutes(ctx any, limit any, offset any) *MockRouteRepository_ListRoutes_Call {
	return &MockRouteRepository_ListRoutes_Call{Call: _e.mock.On("ListRoutes", ctx, limit, offset)}
}

func (_c *MockRouteRepository_ListRoutes_Call) Run(run func(ctx context.Context, limit int, offset int)) *MockRouteRepository_ListRoutes_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int), args[2].(int))
	})
	return _c
}

func (_c *MockRouteRepository_ListRoutes_Call) Return(_a0 []*entity.SavedRoute, _a1 error) *MockRouteRepository_ListRoutes_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockRouteRepository_ListRoutes_Call) RunAndReturn(run func(context.Context, int, int) ([]*entity.SavedRoute, error)) *MockRouteRepository_ListRoutes_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockRouteRepository creates a new instance of MockRouteRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockRouteRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRouteRepository {
	mock := &MockRouteRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
