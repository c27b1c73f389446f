package wallet

import (
	"context"

	"github.com/gabapcia/walletfeed/internal/network"

	"github.com/stretchr/testify/mock"
)

// ProviderMock is a mock type for the Provider type
type ProviderMock struct {
	mock.Mock
}

type ProviderMock_Expecter struct {
	mock *mock.Mock
}

func (_m *ProviderMock) EXPECT() *ProviderMock_Expecter {
	return &ProviderMock_Expecter{mock: &_m.Mock}
}

// RequestAccounts provides a mock function with given fields: ctx
func (_m *ProviderMock) RequestAccounts(ctx context.Context) ([]string, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for RequestAccounts")
	}

	if rf, ok := ret.Get(0).(func(context.Context) ([]string, error)); ok {
		return rf(ctx)
	}

	var r0 []string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]string)
	}

	return r0, ret.Error(1)
}

// ProviderMock_RequestAccounts_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'RequestAccounts'
type ProviderMock_RequestAccounts_Call struct {
	*mock.Call
}

// RequestAccounts is a helper method to define mock.On call
//   - ctx context.Context
func (_e *ProviderMock_Expecter) RequestAccounts(ctx interface{}) *ProviderMock_RequestAccounts_Call {
	return &ProviderMock_RequestAccounts_Call{Call: _e.mock.On("RequestAccounts", ctx)}
}

func (_c *ProviderMock_RequestAccounts_Call) Return(_a0 []string, _a1 error) *ProviderMock_RequestAccounts_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// ChainID provides a mock function with given fields: ctx
func (_m *ProviderMock) ChainID(ctx context.Context) (int64, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for ChainID")
	}

	if rf, ok := ret.Get(0).(func(context.Context) (int64, error)); ok {
		return rf(ctx)
	}

	return ret.Get(0).(int64), ret.Error(1)
}

// ProviderMock_ChainID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ChainID'
type ProviderMock_ChainID_Call struct {
	*mock.Call
}

// ChainID is a helper method to define mock.On call
//   - ctx context.Context
func (_e *ProviderMock_Expecter) ChainID(ctx interface{}) *ProviderMock_ChainID_Call {
	return &ProviderMock_ChainID_Call{Call: _e.mock.On("ChainID", ctx)}
}

func (_c *ProviderMock_ChainID_Call) Return(_a0 int64, _a1 error) *ProviderMock_ChainID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// SwitchChain provides a mock function with given fields: ctx, chainID
func (_m *ProviderMock) SwitchChain(ctx context.Context, chainID int64) error {
	ret := _m.Called(ctx, chainID)

	if len(ret) == 0 {
		panic("no return value specified for SwitchChain")
	}

	if rf, ok := ret.Get(0).(func(context.Context, int64) error); ok {
		return rf(ctx, chainID)
	}

	return ret.Error(0)
}

// ProviderMock_SwitchChain_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SwitchChain'
type ProviderMock_SwitchChain_Call struct {
	*mock.Call
}

// SwitchChain is a helper method to define mock.On call
//   - ctx context.Context
//   - chainID int64
func (_e *ProviderMock_Expecter) SwitchChain(ctx interface{}, chainID interface{}) *ProviderMock_SwitchChain_Call {
	return &ProviderMock_SwitchChain_Call{Call: _e.mock.On("SwitchChain", ctx, chainID)}
}

func (_c *ProviderMock_SwitchChain_Call) Return(_a0 error) *ProviderMock_SwitchChain_Call {
	_c.Call.Return(_a0)
	return _c
}

// Subscribe provides a mock function with given fields: ctx
func (_m *ProviderMock) Subscribe(ctx context.Context) (<-chan ProviderEvent, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Subscribe")
	}

	if rf, ok := ret.Get(0).(func(context.Context) (<-chan ProviderEvent, error)); ok {
		return rf(ctx)
	}

	var r0 <-chan ProviderEvent
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(<-chan ProviderEvent)
	}

	return r0, ret.Error(1)
}

// ProviderMock_Subscribe_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Subscribe'
type ProviderMock_Subscribe_Call struct {
	*mock.Call
}

// Subscribe is a helper method to define mock.On call
//   - ctx context.Context
func (_e *ProviderMock_Expecter) Subscribe(ctx interface{}) *ProviderMock_Subscribe_Call {
	return &ProviderMock_Subscribe_Call{Call: _e.mock.On("Subscribe", ctx)}
}

func (_c *ProviderMock_Subscribe_Call) Return(_a0 <-chan ProviderEvent, _a1 error) *ProviderMock_Subscribe_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// NewProviderMock creates a new instance of ProviderMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewProviderMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *ProviderMock {
	m := &ProviderMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// PreferenceStorageMock is a mock type for the PreferenceStorage type
type PreferenceStorageMock struct {
	mock.Mock
}

type PreferenceStorageMock_Expecter struct {
	mock *mock.Mock
}

func (_m *PreferenceStorageMock) EXPECT() *PreferenceStorageMock_Expecter {
	return &PreferenceStorageMock_Expecter{mock: &_m.Mock}
}

// SaveNetwork provides a mock function with given fields: ctx, n
func (_m *PreferenceStorageMock) SaveNetwork(ctx context.Context, n network.Network) error {
	ret := _m.Called(ctx, n)

	if len(ret) == 0 {
		panic("no return value specified for SaveNetwork")
	}

	return ret.Error(0)
}

// PreferenceStorageMock_SaveNetwork_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SaveNetwork'
type PreferenceStorageMock_SaveNetwork_Call struct {
	*mock.Call
}

// SaveNetwork is a helper method to define mock.On call
//   - ctx context.Context
//   - n network.Network
func (_e *PreferenceStorageMock_Expecter) SaveNetwork(ctx interface{}, n interface{}) *PreferenceStorageMock_SaveNetwork_Call {
	return &PreferenceStorageMock_SaveNetwork_Call{Call: _e.mock.On("SaveNetwork", ctx, n)}
}

func (_c *PreferenceStorageMock_SaveNetwork_Call) Return(_a0 error) *PreferenceStorageMock_SaveNetwork_Call {
	_c.Call.Return(_a0)
	return _c
}

// LoadNetwork provides a mock function with given fields: ctx
func (_m *PreferenceStorageMock) LoadNetwork(ctx context.Context) (network.Network, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for LoadNetwork")
	}

	return ret.Get(0).(network.Network), ret.Error(1)
}

// PreferenceStorageMock_LoadNetwork_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'LoadNetwork'
type PreferenceStorageMock_LoadNetwork_Call struct {
	*mock.Call
}

// LoadNetwork is a helper method to define mock.On call
//   - ctx context.Context
func (_e *PreferenceStorageMock_Expecter) LoadNetwork(ctx interface{}) *PreferenceStorageMock_LoadNetwork_Call {
	return &PreferenceStorageMock_LoadNetwork_Call{Call: _e.mock.On("LoadNetwork", ctx)}
}

func (_c *PreferenceStorageMock_LoadNetwork_Call) Return(_a0 network.Network, _a1 error) *PreferenceStorageMock_LoadNetwork_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// NewPreferenceStorageMock creates a new instance of PreferenceStorageMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewPreferenceStorageMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *PreferenceStorageMock {
	m := &PreferenceStorageMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
