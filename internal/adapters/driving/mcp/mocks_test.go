package mcp

import (
	"context"

	"github.com/custodia-labs/netwiz-cli/internal/core/domain"
)

// mockValidationService is a mock implementation of driven.ValidationService.
type mockValidationService struct {
	result *domain.ValidationResult
	err    error

	validatedText string
}

func (m *mockValidationService) ValidateText(_ context.Context, rawText string) (*domain.ValidationResult, error) {
	m.validatedText = rawText
	return m.result, m.err
}

func (m *mockValidationService) ValidateNetlist(_ context.Context, _ *domain.Netlist) (*domain.ValidationResult, error) {
	return m.result, m.err
}

func (m *mockValidationService) Ping(_ context.Context) error {
	return m.err
}

// mockParser is a mock implementation of driven.NetlistParser.
type mockParser struct {
	netlist *domain.Netlist
	err     error
}

func (m *mockParser) Parse(_ string) (*domain.Netlist, error) {
	return m.netlist, m.err
}

// mockGraphService is a mock implementation of driving.GraphService.
type mockGraphService struct {
	graph domain.Graph
}

func (m *mockGraphService) Derive(_ *domain.Netlist) domain.Graph {
	return m.graph
}

// mockSubmissionService is a mock implementation of driving.SubmissionService.
type mockSubmissionService struct {
	submissions []domain.NetlistSubmission
	submission  *domain.NetlistSubmission
	err         error
}

func (m *mockSubmissionService) Record(_ context.Context, rawText, _ string, _ *domain.Netlist, _ *domain.ValidationResult) (*domain.NetlistSubmission, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.NetlistSubmission{ID: "sub-1", RawText: rawText}, nil
}

func (m *mockSubmissionService) Get(_ context.Context, _ string) (*domain.NetlistSubmission, error) {
	return m.submission, m.err
}

func (m *mockSubmissionService) List(_ context.Context, _ int) ([]domain.NetlistSubmission, error) {
	return m.submissions, m.err
}

func (m *mockSubmissionService) Delete(_ context.Context, _ string) error {
	return m.err
}

func validPorts() *Ports {
	return &Ports{
		Validation: &mockValidationService{},
		Parser:     &mockParser{},
		Graph:      &mockGraphService{},
	}
}
