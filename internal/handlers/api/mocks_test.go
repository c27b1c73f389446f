package api

import (
	"context"

	"github.com/gabapcia/walletfeed/internal/network"
	"github.com/gabapcia/walletfeed/internal/txhistory"

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
