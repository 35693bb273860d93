// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"namespacer.dev/pkg/namespacer/internal/domain"
	m "namespacer.dev/pkg/namespacer/internal/model"
)

// MockWorkflow is a mock of domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

// NewMockWorkflow creates a MockWorkflow whose expectations are asserted when
// the test finishes.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	mocked := &MockWorkflow{}
	mocked.Test(t)

	t.Cleanup(func() { mocked.AssertExpectations(t) })

	return mocked
}

// GenerateMap implements domain.Workflow.
func (_m *MockWorkflow) GenerateMap(ctx context.Context, args domain.GenerateMapArgs) (m.SymbolMapResult, error) {
	ret := _m.Called(ctx, args)

	var result m.SymbolMapResult
	if v := ret.Get(0); v != nil {
		result = v.(m.SymbolMapResult)
	}

	return result, ret.Error(1)
}

// Rewrite implements domain.Workflow.
func (_m *MockWorkflow) Rewrite(ctx context.Context, args domain.RewriteArgs) (m.RewriteReport, error) {
	ret := _m.Called(ctx, args)

	var report m.RewriteReport
	if v := ret.Get(0); v != nil {
		report = v.(m.RewriteReport)
	}

	return report, ret.Error(1)
}

// CheckLegacy implements domain.Workflow.
func (_m *MockWorkflow) CheckLegacy(ctx context.Context, args domain.CheckLegacyArgs) ([]m.Violation, error) {
	ret := _m.Called(ctx, args)

	var violations []m.Violation
	if v := ret.Get(0); v != nil {
		violations = v.([]m.Violation)
	}

	return violations, ret.Error(1)
}

// CheckExports implements domain.Workflow.
func (_m *MockWorkflow) CheckExports(ctx context.Context, args domain.CheckExportsArgs) ([]m.ExportProblem, error) {
	ret := _m.Called(ctx, args)

	var problems []m.ExportProblem
	if v := ret.Get(0); v != nil {
		problems = v.([]m.ExportProblem)
	}

	return problems, ret.Error(1)
}

var _ domain.Workflow = (*MockWorkflow)(nil)
