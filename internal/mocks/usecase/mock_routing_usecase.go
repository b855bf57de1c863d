package usecase

import (
	context "context"

	entity "bikeroute/internal/domain/entity"

	usecase "bikeroute/internal/usecase"

	mock "github.com/stretchr/testify/mock"
)

// MockRoutingUsecase is a mock type for the RoutingUsecase type
type MockRoutingUsecase struct {
	mock.Mock
}

type MockRoutingUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRoutingUsecase) EXPECT() *MockRoutingUsecase_Expecter {
	return &MockRoutingUsecase_Expecter{mock: &_m.Mock}
}

// GetRoute provides a mock function with given fields: ctx, waypoints, opts
func (_m *MockRoutingUsecase) GetRoute(ctx context.Context, waypoints []entity.Waypoint, opts usecase.RouteOptions) (*entity.RoutingResult, error) {
	ret := _m.Called(ctx, waypoints, opts)

	if len(ret) == 0 {
		panic("no return value specified for GetRoute")
	}

	var r0 *entity.RoutingResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, []entity.Waypoint, usecase.RouteOptions) (*entity.RoutingResult, error)); ok {
		return rf(ctx, waypoints, opts)
	}
	if rf, ok := ret.Get(0).(func(context.Context, []entity.Waypoint, usecase.RouteOptions) *entity.RoutingResult); ok {
		r0 = rf(ctx, waypoints, opts)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.RoutingResult)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, []entity.Waypoint, usecase.RouteOptions) error); ok {
		r1 = rf(ctx, waypoints, opts)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockRoutingUsecase_GetRoute_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetRoute'
type MockRoutingUsecase_GetRoute_Call struct {
	*mock.Call
}

// GetRoute is a helper method to define mock.On call
func (_e *MockRoutingUsecase_Expecter) GetRoute(ctx any, waypoints any, opts any) *MockRoutingUsecase_GetRoute_Call {
	return &MockRoutingUsecase_GetRoute_Call{Call: _e.mock.On("GetRoute", ctx, waypoints, opts)}
}

func (_c *MockRoutingUsecase_GetRoute_Call) Run(run func(ctx context.Context, waypoints []entity.Waypoint, opts usecase.RouteOptions)) *MockRoutingUsecase_GetRoute_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].([]entity.Waypoint), args[2].(usecase.RouteOptions))
	})
	return _c
}

func (_c *MockRoutingUsecase_GetRoute_Call) Return(_a0 *entity.RoutingResult, _a1 error) *MockRoutingUsecase_GetRoute_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockRoutingUsecase_GetRoute_Call) RunAndReturn(run func(context.Context, []entity.Waypoint, usecase.RouteOptions) (*entity.RoutingResult, error)) *MockRoutingUsecase_GetRoute_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockRoutingUsecase creates a new instance of MockRoutingUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockRoutingUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRoutingUsecase {
	mock := &MockRoutingUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
