package usecase

import (
	context "context"

	entity "bikeroute/internal/domain/entity"

	usecase "bikeroute/internal/usecase"

	uuid "github.com/google/uuid"

	mock "github.com/stretchr/testify/mock"
)

// MockPlannerUsecase is a mock type for the PlannerUsecase type
type MockPlannerUsecase struct {
	mock.Mock
}

type MockPlannerUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPlannerUsecase) EXPECT() *MockPlannerUsecase_Expecter {
	return &MockPlannerUsecase_Expecter{mock: &_m.Mock}
}

// Propose provides a mock function with given fields: ctx, input
func (_m *MockPlannerUsecase) Propose(ctx context.Context, input *usecase.ProposeInput) (*entity.Proposal, error) {
	ret := _m.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for Propose")
	}

	var r0 *entity.Proposal
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.ProposeInput) (*entity.Proposal, error)); ok {
		return rf(ctx, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.ProposeInput) *entity.Proposal); ok {
		r0 = rf(ctx, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Proposal)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *usecase.ProposeInput) error); ok {
		r1 = rf(ctx, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockPlannerUsecase_Propose_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Propose'
type MockPlannerUsecase_Propose_Call struct {
	*mock.Call
}

// Propose is a helper method to define mock.On call
func (_e *MockPlannerUsecase_Expecter) Propose(ctx any, input any) *MockPlannerUsecase_Propose_Call {
	return &MockPlannerUsecase_Propose_Call{Call: _e.mock.On("Propose", ctx, input)}
}

func (_c *MockPlannerUsecase_Propose_Call) Run(run func(ctx context.Context, input *usecase.ProposeInput)) *MockPlannerUsecase_Propose_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*usecase.ProposeInput))
	})
	return _c
}

func (_c *MockPlannerUsecase_Propose_Call) Return(_a0 *entity.Proposal, _a1 error) *MockPlannerUsecase_Propose_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockPlannerUsecase_Propose_Call) RunAndReturn(run func(context.Context, *usecase.ProposeInput) (*entity.Proposal, error)) *MockPlannerUsecase_Propose_Call {
	_c.Call.Return(run)
	return _c
}

// Commit provides a mock function with given fields: ctx, input
func (_m *MockPlannerUsecase) Commit(ctx context.Context, input *usecase.SaveRouteInput) (*entity.SavedRoute, error) {
	ret := _m.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for Commit")
	}

	var r0 *entity.SavedRoute
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.SaveRouteInput) (*entity.SavedRoute, error)); ok {
		return rf(ctx, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.SaveRouteInput) *entity.SavedRoute); ok {
		r0 = rf(ctx, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.SavedRoute)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *usecase.SaveRouteInput) error); ok {
		r1 = rf(ctx, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockPlannerUsecase_Commit_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Commit'
type MockPlannerUsecase_Commit_Call struct {
	*mock.Call
}

// Commit is a helper method to define mock.On call
func (_e *MockPlannerUsecase_Expecter) Commit(ctx any, input any) *MockPlannerUsecase_Commit_Call {
	return &MockPlannerUsecase_Commit_Call{Call: _e.mock.On("Commit", ctx, input)}
}

func (_c *MockPlannerUsecase_Commit_Call) Run(run func(ctx context.Context, input *usecase.SaveRouteInput)) *MockPlannerUsecase_Commit_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*usecase.SaveRouteInput))
	})
	return _c
}

func (_c *MockPlannerUsecase_Commit_Call) Return(_a0 *entity.SavedRoute, _a1 error) *MockPlannerUsecase_Commit_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockPlannerUsecase_Commit_Call) RunAndReturn(run func(context.Context, *usecase.SaveRouteInput) (*entity.SavedRoute, error)) *MockPlannerUsecase_Commit_Call {
	_c.Call.Return(run)
	return _c
}

// GetRoute provides a mock function with given fields: ctx, id
func (_m *MockPlannerUsecase) GetRoute(ctx context.Context, id uuid.UUID) (*entity.SavedRoute, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for GetRoute")
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

// MockPlannerUsecase_GetRoute_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetRoute'
type MockPlannerUsecase_GetRoute_Call struct {
	*mock.Call
}

// GetRoute is a helper method to define mock.On call
func (_e *MockPlannerUsecase_Expecter) GetRoute(ctx any, id any) *MockPlannerUsecase_GetRoute_Call {
	return &MockPlannerUsecase_GetRoute_Call{Call: _e.mock.On("GetRoute", ctx, id)}
}

func (_c *MockPlannerUsecase_GetRoute_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockPlannerUsecase_GetRoute_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockPlannerUsecase_GetRoute_Call) Return(_a0 *entity.SavedRoute, _a1 error) *MockPlannerUsecase_GetRoute_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockPlannerUsecase_GetRoute_Call) RunAndReturn(run func(context.Context, uuid.UUID) (*entity.SavedRoute, error)) *MockPlannerUsecase_GetRoute_Call {
	_c.Call.Return(run)
	return _c
}

// ListRoutes provides a mock function with given fields: ctx, limit, offset
func (_m *MockPlannerUsecase) ListRoutes(ctx context.Context, limit int, offset int) ([]*entity.SavedRoute, error) {
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

// MockPlannerUsecase_ListRoutes_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListRoutes'
type MockPlannerUsecase_ListRoutes_Call struct {
	*mock.Call
}

// ListRoutes is a helper method to define mock.On call
func (_e *MockPlannerUsecase_Expecter) ListRoutes(ctx any, limit any, offset any) *MockPlannerUsecase_ListRoutes_Call {
	return &MockPlannerUsecase_ListRoutes_Call{Call: _e.mock.On("ListRoutes", ctx, limit, offset)}
}

func (_c *MockPlannerUsecase_ListRoutes_Call) Run(run func(ctx context.Context, limit int, offset int)) *MockPlannerUsecase_ListRoutes_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int), args[2].(int))
	})
	return _c
}

func (_c *MockPlannerUsecase_ListRoutes_Call) Return(_a0 []*entity.SavedRoute, _a1 error) *MockPlannerUsecase_ListRoutes_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockPlannerUsecase_ListRoutes_Call) RunAndReturn(run func(context.Context, int, int) ([]*entity.SavedRoute, error)) *MockPlannerUsecase_ListRoutes_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockPlannerUsecase creates a new instance of MockPlannerUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockPlannerUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPlannerUsecase {
	mock := &MockPlannerUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
