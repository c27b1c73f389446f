package cli

import (
	"context"

	"github.com/gabapcia/walletfeed/internal/network"
	"github.com/gabapcia/walletfeed/internal/txhistory"
	"github.com/gabapcia/walletfeed/internal/wallet"

	"github.com/stretchr/testify/mock"
)

// HistoryServiceMock is a mock type for the txhistory.Service type
type HistoryServiceMock struct {
	mock.Mock
}

type HistoryServiceMock_Expecter struct {
	mock *mock.Mock
}

func (_m *HistoryServiceMock) EXPECT() *HistoryServiceMock_Expecter {
	return &HistoryServiceMock_Expecter{mock: &_m.Mock}
}

// FetchTransactionHistory provides a mock function with given fields: ctx, address, n
func (_m *HistoryServiceMock) FetchTransactionHistory(ctx context.Context, address string, n network.Network) ([]txhistory.Transaction, error) {
	ret := _m.Called(ctx, address, n)

	if len(ret) == 0 {
		panic("no return value specified for FetchTransactionHistory")
	}

	var r0 []txhistory.Transaction
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]txhistory.Transaction)
	}

	return r0, ret.Error(1)
}

// HistoryServiceMock_FetchTransactionHistory_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FetchTransactionHistory'
type HistoryServiceMock_FetchTransactionHistory_Call struct {
	*mock.Call
}

// FetchTransactionHistory is a helper method to define mock.On call
//   - ctx context.Context
//   - address string
//   - n network.Network
func (_e *HistoryServiceMock_Expecter) FetchTransactionHistory(ctx interface{}, address interface{}, n interface{}) *HistoryServiceMock_FetchTransactionHistory_Call {
	return &HistoryServiceMock_FetchTransactionHistory_Call{Call: _e.mock.On("FetchTransactionHistory", ctx, address, n)}
}

func (_c *HistoryServiceMock_FetchTransactionHistory_Call) Return(_a0 []txhistory.Transaction, _a1 error) *HistoryServiceMock_FetchTransactionHistory_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// State provides a mock function with no fields
func (_m *HistoryServiceMock) State() txhistory.State {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for State")
	}

	return ret.Get(0).(txhistory.State)
}

// HistoryServiceMock_State_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'State'
type HistoryServiceMock_State_Call struct {
	*mock.Call
}

// State is a helper method to define mock.On call
func (_e *HistoryServiceMock_Expecter) State() *HistoryServiceMock_State_Call {
	return &HistoryServiceMock_State_Call{Call: _e.mock.On("State")}
}

func (_c *HistoryServiceMock_State_Call) Return(_a0 txhistory.State) *HistoryServiceMock_State_Call {
	_c.Call.Return(_a0)
	return _c
}

// ClearTransactions provides a mock function with no fields
func (_m *HistoryServiceMock) ClearTransactions() {
	_m.Called()
}

// HistoryServiceMock_ClearTransactions_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ClearTransactions'
type HistoryServiceMock_ClearTransactions_Call struct {
	*mock.Call
}

// ClearTransactions is a helper method to define mock.On call
func (_e *HistoryServiceMock_Expecter) ClearTransactions() *HistoryServiceMock_ClearTransactions_Call {
	return &HistoryServiceMock_ClearTransactions_Call{Call: _e.mock.On("ClearTransactions")}
}

func (_c *HistoryServiceMock_ClearTransactions_Call) Return() *HistoryServiceMock_ClearTransactions_Call {
	_c.Call.Return()
	return _c
}

// ClearCache provides a mock function with no fields
func (_m *HistoryServiceMock) ClearCache() {
	_m.Called()
}

// HistoryServiceMock_ClearCache_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ClearCache'
type HistoryServiceMock_ClearCache_Call struct {
	*mock.Call
}

// ClearCache is a helper method to define mock.On call
func (_e *HistoryServiceMock_Expecter) ClearCache() *HistoryServiceMock_ClearCache_Call {
	return &HistoryServiceMock_ClearCache_Call{Call: _e.mock.On("ClearCache")}
}

func (_c *HistoryServiceMock_ClearCache_Call) Return() *HistoryServiceMock_ClearCache_Call {
	_c.Call.Return()
	return _c
}

// NewHistoryServiceMock creates a new instance of HistoryServiceMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewHistoryServiceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *HistoryServiceMock {
	m := &HistoryServiceMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// WalletServiceMock is a mock type for the wallet.Service type
type WalletServiceMock struct {
	mock.Mock
}

type WalletServiceMock_Expecter struct {
	mock *mock.Mock
}

func (_m *WalletServiceMock) EXPECT() *WalletServiceMock_Expecter {
	return &WalletServiceMock_Expecter{mock: &_m.Mock}
}

// Restore provides a mock function with given fields: ctx
func (_m *WalletServiceMock) Restore(ctx context.Context) (wallet.Session, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Restore")
	}

	return ret.Get(0).(wallet.Session), ret.Error(1)
}

// WalletServiceMock_Restore_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Restore'
type WalletServiceMock_Restore_Call struct {
	*mock.Call
}

// Restore is a helper method to define mock.On call
//   - ctx context.Context
func (_e *WalletServiceMock_Expecter) Restore(ctx interface{}) *WalletServiceMock_Restore_Call {
	return &WalletServiceMock_Restore_Call{Call: _e.mock.On("Restore", ctx)}
}

func (_c *WalletServiceMock_Restore_Call) Return(_a0 wallet.Session, _a1 error) *WalletServiceMock_Restore_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// Session provides a mock function with no fields
func (_m *WalletServiceMock) Session() wallet.Session {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Session")
	}

	return ret.Get(0).(wallet.Session)
}

// WalletServiceMock_Session_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Session'
type WalletServiceMock_Session_Call struct {
	*mock.Call
}

// Session is a helper method to define mock.On call
func (_e *WalletServiceMock_Expecter) Session() *WalletServiceMock_Session_Call {
	return &WalletServiceMock_Session_Call{Call: _e.mock.On("Session")}
}

func (_c *WalletServiceMock_Session_Call) Return(_a0 wallet.Session) *WalletServiceMock_Session_Call {
	_c.Call.Return(_a0)
	return _c
}

// Connect provides a mock function with given fields: ctx
func (_m *WalletServiceMock) Connect(ctx context.Context) (wallet.Session, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Connect")
	}

	return ret.Get(0).(wallet.Session), ret.Error(1)
}

// WalletServiceMock_Connect_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Connect'
type WalletServiceMock_Connect_Call struct {
	*mock.Call
}

// Connect is a helper method to define mock.On call
//   - ctx context.Context
func (_e *WalletServiceMock_Expecter) Connect(ctx interface{}) *WalletServiceMock_Connect_Call {
	return &WalletServiceMock_Connect_Call{Call: _e.mock.On("Connect", ctx)}
}

func (_c *WalletServiceMock_Connect_Call) Return(_a0 wallet.Session, _a1 error) *WalletServiceMock_Connect_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// SelectNetwork provides a mock function with given fields: ctx, n
func (_m *WalletServiceMock) SelectNetwork(ctx context.Context, n network.Network) (wallet.Session, error) {
	ret := _m.Called(ctx, n)

	if len(ret) == 0 {
		panic("no return value specified for SelectNetwork")
	}

	return ret.Get(0).(wallet.Session), ret.Error(1)
}

// WalletServiceMock_SelectNetwork_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SelectNetwork'
type WalletServiceMock_SelectNetwork_Call struct {
	*mock.Call
}

// SelectNetwork is a helper method to define mock.On call
//   - ctx context.Context
//   - n network.Network
func (_e *WalletServiceMock_Expecter) SelectNetwork(ctx interface{}, n interface{}) *WalletServiceMock_SelectNetwork_Call {
	return &WalletServiceMock_SelectNetwork_Call{Call: _e.mock.On("SelectNetwork", ctx, n)}
}

func (_c *WalletServiceMock_SelectNetwork_Call) Return(_a0 wallet.Session, _a1 error) *WalletServiceMock_SelectNetwork_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// Disconnect provides a mock function with no fields
func (_m *WalletServiceMock) Disconnect() wallet.Session {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Disconnect")
	}

	return ret.Get(0).(wallet.Session)
}

// Watch provides a mock function with given fields: ctx, onChange
func (_m *WalletServiceMock) Watch(ctx context.Context, onChange func(wallet.Session)) error {
	ret := _m.Called(ctx, onChange)

	if len(ret) == 0 {
		panic("no return value specified for Watch")
	}

	if rf, ok := ret.Get(0).(func(context.Context, func(wallet.Session)) error); ok {
		return rf(ctx, onChange)
	}

	return ret.Error(0)
}

// WalletServiceMock_Watch_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Watch'
type WalletServiceMock_Watch_Call struct {
	*mock.Call
}

// Watch is a helper method to define mock.On call
//   - ctx context.Context
//   - onChange func(wallet.Session)
func (_e *WalletServiceMock_Expecter) Watch(ctx interface{}, onChange interface{}) *WalletServiceMock_Watch_Call {
	return &WalletServiceMock_Watch_Call{Call: _e.mock.On("Watch", ctx, onChange)}
}

func (_c *WalletServiceMock_Watch_Call) RunAndReturn(run func(context.Context, func(wallet.Session)) error) *WalletServiceMock_Watch_Call {
	_c.Call.Return(run)
	return _c
}

// NewWalletServiceMock creates a new instance of WalletServiceMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewWalletServiceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *WalletServiceMock {
	m := &WalletServiceMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
