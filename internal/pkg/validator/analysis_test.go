package validator

import (
	"errors"
	"strings"
	"testing"

	"github.com/avkozlov/analyzer-backend/internal/config"
	"github.com/avkozlov/analyzer-backend/internal/entity"
)

func TestValidateAnalyze(t *testing.T) {
	v := New(config.LimitsConfig{MaxProblemLength: 100})

	tests := []struct {
		name     string
		req      entity.AnalyzeRequest
		expected error
	}{
		{
			name: "valid request",
			req:  entity.AnalyzeRequest{Problem: "Two Sum"},
		},
		{
			name:     "empty problem",
			req:      entity.AnalyzeRequest{},
			expected: entity.ErrMissingField,
		},
		{
			name:     "whitespace problem",
			req:      entity.AnalyzeRequest{Problem: "   \n"},
			expected: entity.ErrMissingField,
		},
		{
			name:     "problem over the limit",
			req:      entity.AnalyzeRequest{Problem: strings.Repeat("x", 101)},
			expected: entity.ErrProblemTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateAnalyze(&tt.req)
			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestValidateSolution(t *testing.T) {
	v := New(config.LimitsConfig{MaxProblemLength: 100})

	tests := []struct {
		name     string
		req      entity.SolutionRequest
		expected error
	}{
		{
			name: "valid content",
			req:  entity.SolutionRequest{Content: "Reverse a singly linked list."},
		},
		{
			name: "valid legacy problem field",
			req:  entity.SolutionRequest{Problem: "Reverse a singly linked list."},
		},
		{
			name:     "empty request",
			req:      entity.SolutionRequest{},
			expected: entity.ErrMissingField,
		},
		{
			name:     "too short",
			req:      entity.SolutionRequest{Content: "short"},
			expected: entity.ErrProblemTooShort,
		},
		{
			name:     "over the limit",
			req:      entity.SolutionRequest{Content: strings.Repeat("x", 101)},
			expected: entity.ErrProblemTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateSolution(&tt.req)
			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
		})
	}
}
