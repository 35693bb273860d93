// Package mocks provides testify mocks for the adapter interfaces.
package mocks

import (
	"os"

	"github.com/stretchr/testify/mock"

	"namespacer.dev/pkg/namespacer/internal/adapter"
	m "namespacer.dev/pkg/namespacer/internal/model"
)

// MockSourceFSAdapter is a mock of adapter.SourceFSAdapter.
type MockSourceFSAdapter struct {
	mock.Mock
}

// NewMockSourceFSAdapter creates a MockSourceFSAdapter whose expectations are
// asserted when the test finishes.
func NewMockSourceFSAdapter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSourceFSAdapter {
	mocked := &MockSourceFSAdapter{}
	mocked.Test(t)

	t.Cleanup(func() { mocked.AssertExpectations(t) })

	return mocked
}

// Walk implements adapter.SourceFSAdapter.
func (_m *MockSourceFSAdapter) Walk(root m.Path, fn adapter.FilepathWalkFunc) error {
	ret := _m.Called(root, fn)
	return ret.Error(0)
}

// ReadFile implements adapter.SourceFSAdapter.
func (_m *MockSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	ret := _m.Called(path)

	var data []byte
	if v := ret.Get(0); v != nil {
		data = v.([]byte)
	}

	return data, ret.Error(1)
}

// WriteFile implements adapter.SourceFSAdapter.
func (_m *MockSourceFSAdapter) WriteFile(path m.Path, content []byte) error {
	ret := _m.Called(path, content)
	return ret.Error(0)
}

// FileInfo implements adapter.SourceFSAdapter.
func (_m *MockSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	ret := _m.Called(path)

	var info os.FileInfo
	if v := ret.Get(0); v != nil {
		info = v.(os.FileInfo)
	}

	return info, ret.Error(1)
}

// RelPath implements adapter.SourceFSAdapter.
func (_m *MockSourceFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	ret := _m.Called(base, target)
	return ret.Get(0).(m.Path), ret.Error(1)
}

// JoinPath implements adapter.SourceFSAdapter.
func (_m *MockSourceFSAdapter) JoinPath(elem ...string) m.Path {
	ret := _m.Called(elem)
	return ret.Get(0).(m.Path)
}

// MockSymbolMapStore is a mock of adapter.SymbolMapStore.
type MockSymbolMapStore struct {
	mock.Mock
}

// NewMockSymbolMapStore creates a MockSymbolMapStore whose expectations are
// asserted when the test finishes.
func NewMockSymbolMapStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSymbolMapStore {
	mocked := &MockSymbolMapStore{}
	mocked.Test(t)

	t.Cleanup(func() { mocked.AssertExpectations(t) })

	return mocked
}

// SaveSymbolMap implements adapter.SymbolMapStore.
func (_m *MockSymbolMapStore) SaveSymbolMap(path m.Path, symbols m.SymbolMap) error {
	ret := _m.Called(path, symbols)
	return ret.Error(0)
}

// LoadSymbolMap implements adapter.SymbolMapStore.
func (_m *MockSymbolMapStore) LoadSymbolMap(path m.Path) (m.SymbolMap, error) {
	ret := _m.Called(path)

	var symbols m.SymbolMap
	if v := ret.Get(0); v != nil {
		symbols = v.(m.SymbolMap)
	}

	return symbols, ret.Error(1)
}

var (
	_ adapter.SourceFSAdapter = (*MockSourceFSAdapter)(nil)
	_ adapter.SymbolMapStore  = (*MockSymbolMapStore)(nil)
)
