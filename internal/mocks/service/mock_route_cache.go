package service

import (
	context "context"

	entity "bikeroute/internal/domain/entity"

	time "time"

	mock "github.com/stretchr/testify/mock"
)

// MockRouteCache is a mock type for the RouteCache type
type MockRouteCache struct {
	mock.Mock
}

type MockRouteCache_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRouteCache) EXPECT() *MockRouteCache_Expecter {
	return &MockRouteCache_Expecter{mock: &_m.Mock}
}

// Get provides a mock function with given fields: ctx, key
func (_m *MockRouteCache) Get(ctx context.Context, key string) (*entity.RoutingResult, error) {
	ret := _m.Called(ctx, key)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	var r0 *entity.RoutingResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.RoutingResult, error)); ok {
		return rf(ctx, key)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *entity.RoutingResult); ok {
		r0 = rf(ctx, key)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.RoutingResult)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, key)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockRouteCache_Get_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Get'
type MockRouteCache_Get_Call struct {
	*mock.Call
}

// Get is a helper method to define mock.On call
func (_e *MockRouteCache_Expecter) Get(ctx any, key any) *MockRouteCache_Get_Call {
	return &MockRouteCache_Get_Call{Call: _e.mock.On("Get", ctx, key)}
}

func (_c *MockRouteCache_Get_Call) Run(run func(ctx context.Context, key string)) *MockRouteCache_Get_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockRouteCache_Get_Call) Return(_a0 *entity.RoutingResult, _a1 error) *MockRouteCache_Get_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockRouteCache_Get_Call) RunAndReturn(run func(context.Context, string) (*entity.RoutingResult, error)) *MockRouteCache_Get_Call {
	_c.Call.Return(run)
	return _c
}

// Set provides a mock function with given fields: ctx, key, result, ttl
func (_m *MockRouteCache) Set(ctx context.Context, key string, result *entity.RoutingResult, ttl time.Duration) error {
	ret := _m.Called(ctx, key, result, ttl)

	if len(ret) == 0 {
		panic("no return value specified for Set")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, *entity.RoutingResult, time.Duration) error); ok {
		r0 = rf(ctx, key, result, ttl)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockRouteCache_Set_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Set'
type MockRouteCache_Set_Call struct {
	*mock.Call
}

// Set is a helper method to define mock.On call
func (_e *MockRouteCache_Expecter) Set(ctx any, key any, result any, ttl any) *MockRouteCache_Set_Call {
	return &MockRouteCache_Set_Call{Call: _e.mock.On("Set", ctx, key, result, ttl)}
}

func (_c *MockRouteCache_Set_Call) Run(run func(ctx context.Context, key string, result *entity.RoutingResult, ttl time.Duration)) *MockRouteCache_Set_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(*entity.RoutingResult), args[3].(time.Duration))
	})
	return _c
}

func (_c *MockRouteCache_Set_Call) Return(_a0 error) *MockRouteCache_Set_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRouteCache_Set_Call) RunAndReturn(run func(context.Context, string, *entity.RoutingResult, time.Duration) error) *MockRouteCache_Set_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockRouteCache creates a new instance of MockRouteCache. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockRouteCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRouteCache {
	mock := &MockRouteCache{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
