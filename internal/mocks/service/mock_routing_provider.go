package service

import (
	context "context"

	entity "bikeroute/internal/domain/entity"

	orb "github.com/paulmach/orb"

	service "bikeroute/internal/domain/service"

	mock "github.com/stretchr/testify/mock"
)

// MockRoutingProvider is a mock type for the RoutingProvider type
type MockRoutingProvider struct {
	mock.Mock
}

type MockRoutingProvider_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRoutingProvider) EXPECT() *MockRoutingProvider_Expecter {
	return &MockRoutingProvider_Expecter{mock: &_m.Mock}
}

// Name provides a mock function with given fields:
func (_m *MockRoutingProvider) Name() string {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Name")
	}

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(string)
	}

	return r0
}

// MockRoutingProvider_Name_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Name'
type MockRoutingProvider_Name_Call struct {
	*mock.Call
}

// Name is a helper method to define mock.On call
func (_e *MockRoutingProvider_Expecter) Name() *MockRoutingProvider_Name_Call {
	return &MockRoutingProvider_Name_Call{Call: _e.mock.On("Name")}
}

func (_c *MockRoutingProvider_Name_Call) Run(run func()) *MockRoutingProvider_Name_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockRoutingProvider_Name_Call) Return(_a0 string) *MockRoutingProvider_Name_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRoutingProvider_Name_Call) RunAndReturn(run func() string) *MockRoutingProvider_Name_Call {
	_c.Call.Return(run)
	return _c
}

// Enabled provides a mock function with given fields:
func (_m *MockRoutingProvider) Enabled() bool {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Enabled")
	}

	var r0 bool
	if rf, ok := ret.Get(0).(func() bool); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(bool)
	}

	return r0
}

// MockRoutingProvider_Enabled_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Enabled'
type MockRoutingProvider_Enabled_Call struct {
	*mock.Call
}

// Enabled is a helper method to define mock.On call
func (_e *MockRoutingProvider_Expecter) Enabled() *MockRoutingProvider_Enabled_Call {
	return &MockRoutingProvider_Enabled_Call{Call: _e.mock.On("Enabled")}
}

func (_c *MockRoutingProvider_Enabled_Call) Run(run func()) *MockRoutingProvider_Enabled_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockRoutingProvider_Enabled_Call) Return(_a0 bool) *MockRoutingProvider_Enabled_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRoutingProvider_Enabled_Call) RunAndReturn(run func() bool) *MockRoutingProvider_Enabled_Call {
	_c.Call.Return(run)
	return _c
}

// Route provides a mock function with given fields: ctx, points, profile
func (_m *MockRoutingProvider) Route(ctx context.Context, points []orb.Point, profile entity.Profile) (*service.ProviderRoute, error) {
	ret := _m.Called(ctx, points, profile)

	if len(ret) == 0 {
		panic("no return value specified for Route")
	}

	var r0 *service.ProviderRoute
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, []orb.Point, entity.Profile) (*service.ProviderRoute, error)); ok {
		return rf(ctx, points, profile)
	}
	if rf, ok := ret.Get(0).(func(context.Context, []orb.Point, entity.Profile) *service.ProviderRoute); ok {
		r0 = rf(ctx, points, profile)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*service.ProviderRoute)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, []orb.Point, entity.Profile) error); ok {
		r1 = rf(ctx, points, profile)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockRoutingProvider_Route_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Route'
type MockRoutingProvider_Route_Call struct {
	*mock.Call
}

// Route is a helper method to define mock.On call
func (_e *MockRoutingProvider_Expecter) Route(ctx any, points any, profile any) *MockRoutingProvider_Route_Call {
	return &MockRoutingProvider_Route_Call{Call: _e.mock.On("Route", ctx, points, profile)}
}

func (_c *MockRoutingProvider_Route_Call) Run(run func(ctx context.Context, points []orb.Point, profile entity.Profile)) *MockRoutingProvider_Route_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].([]orb.Point), args[2].(entity.Profile))
	})
	return _c
}

func (_c *MockRoutingProvider_Route_Call) Return(_a0 *service.ProviderRoute, _a1 error) *MockRoutingProvider_Route_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockRoutingProvider_Route_Call) RunAndReturn(run func(context.Context, []orb.Point, entity.Profile) (*service.ProviderRoute, error)) *MockRoutingProvider_Route_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockRoutingProvider creates a new instance of MockRoutingProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockRoutingProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRoutingProvider {
	mock := &MockRoutingProvider{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
