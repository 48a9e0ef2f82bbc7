// internal/workers/guidance/calculate-roi/handler_test.go
package calculateroi

import (
	"context"
	"testing"

	"guidance-workers/internal/catalog"
	"guidance-workers/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestHandler(t testing.TB) *Handler {
	return NewHandler(&Config{
		DefaultAnnualSalary: 500000,
		DefaultWorkingYears: 40,
	}, catalog.NewStatic(), logger.NewTestLogger(t))
}

// ==========================
// Core Calculation Tests
// ==========================

func TestHandler_Execute_KnownFigures(t *testing.T) {
	handler := createTestHandler(t)

	// ₹15 LPA upper bound yields an expected salary of 1,500,000.
	output, err := handler.Execute(context.Background(), &Input{
		TotalCost:    500000,
		SalaryRange:  "₹5-15 LPA",
		WorkingYears: 40,
	})

	require.NoError(t, err)
	assert.Equal(t, 500000.0, output.TotalInvestment)
	assert.Equal(t, 1500000.0, output.ExpectedSalary)
	assert.InDelta(t, 0.333, output.YearsToRecover, 0.001)
	assert.Equal(t, 60000000.0, output.LifetimeEarnings)
	assert.InDelta(t, 11900, output.ROIPercent, 0.01)
	assert.Equal(t, 125000.0, output.MonthlyIncome)
	assert.Equal(t, BandExcellent, output.Band)
	assert.False(t, output.SalaryDefaulted)
}

func TestHandler_Execute_Deterministic(t *testing.T) {
	handler := createTestHandler(t)
	input := &Input{TotalCost: 800000, SalaryRange: "₹8-25 LPA", WorkingYears: 35}

	first, err := handler.Execute(context.Background(), input)
	require.NoError(t, err)
	second, err := handler.Execute(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestHandler_Execute_DefaultWorkingYears(t *testing.T) {
	handler := createTestHandler(t)

	output, err := handler.Execute(context.Background(), &Input{
		TotalCost:   500000,
		SalaryRange: "₹5-15 LPA",
	})

	require.NoError(t, err)
	assert.Equal(t, 60000000.0, output.LifetimeEarnings)
}

// ==========================
// Salary Resolution Tests
// ==========================

func TestHandler_Execute_CatalogCrossReference(t *testing.T) {
	handler := createTestHandler(t)

	// Software Engineer carries ₹8-25 LPA in the catalog.
	output, err := handler.Execute(context.Background(), &Input{
		TotalCost:           1000000,
		RecommendationLabel: "Engineering & Technology",
		CareerTitle:         "Software Engineer",
		WorkingYears:        30,
	})

	require.NoError(t, err)
	assert.Equal(t, 2500000.0, output.ExpectedSalary)
	assert.False(t, output.SalaryDefaulted)
}

func TestHandler_Execute_UnknownCareerUsesDefaultSalary(t *testing.T) {
	handler := createTestHandler(t)

	output, err := handler.Execute(context.Background(), &Input{
		TotalCost:           400000,
		RecommendationLabel: "Engineering & Technology",
		CareerTitle:         "Astronaut",
	})

	require.NoError(t, err)
	assert.Equal(t, 500000.0, output.ExpectedSalary)
	assert.True(t, output.SalaryDefaulted)
}

func TestHandler_Execute_UnparseableSalaryUsesDefault(t *testing.T) {
	handler := createTestHandler(t)

	output, err := handler.Execute(context.Background(), &Input{
		TotalCost:   400000,
		SalaryRange: "competitive",
	})

	require.NoError(t, err)
	assert.Equal(t, 500000.0, output.ExpectedSalary)
	assert.True(t, output.SalaryDefaulted)
}

// ==========================
// Validation Tests
// ==========================

func TestHandler_Execute_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input Input
	}{
		{name: "zero cost", input: Input{TotalCost: 0, SalaryRange: "₹5-15 LPA"}},
		{name: "negative cost", input: Input{TotalCost: -100, SalaryRange: "₹5-15 LPA"}},
	}

	handler := createTestHandler(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := handler.Execute(context.Background(), &tt.input)
			assert.Error(t, err)
			assert.Nil(t, output)
		})
	}
}

// ==========================
// Band Classification Tests
// ==========================

func TestClassifyROI(t *testing.T) {
	tests := []struct {
		roiPercent float64
		expected   string
	}{
		{roiPercent: 11900, expected: BandExcellent},
		{roiPercent: 501, expected: BandExcellent},
		{roiPercent: 500, expected: BandGood},
		{roiPercent: 201, expected: BandGood},
		{roiPercent: 200, expected: BandAverage},
		{roiPercent: 101, expected: BandAverage},
		{roiPercent: 100, expected: BandPoor},
		{roiPercent: -50, expected: BandPoor},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, classifyROI(tt.roiPercent), "roiPercent=%v", tt.roiPercent)
	}
}

// ==========================
// Salary Parsing Tests
// ==========================

func TestParseSalaryRange(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		low     float64
		high    float64
		wantErr bool
	}{
		{name: "standard format", raw: "₹8-25 LPA", low: 8, high: 25},
		{name: "no currency symbol", raw: "5-12 LPA", low: 5, high: 12},
		{name: "fractional bounds", raw: "₹3.5-7.5 LPA", low: 3.5, high: 7.5},
		{name: "surrounding whitespace", raw: "  ₹6-15 LPA  ", low: 6, high: 15},
		{name: "lowercase unit", raw: "₹4-10 lpa", low: 4, high: 10},
		{name: "empty", raw: "", wantErr: true},
		{name: "prose", raw: "competitive salary", wantErr: true},
		{name: "single value", raw: "₹12 LPA", wantErr: true},
		{name: "inverted range", raw: "₹25-8 LPA", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			low, high, err := ParseSalaryRange(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.low, low)
			assert.Equal(t, tt.high, high)
		})
	}
}

func TestAnnualSalaryFromRange(t *testing.T) {
	salary, err := AnnualSalaryFromRange("₹8-25 LPA")
	require.NoError(t, err)
	assert.Equal(t, 2500000.0, salary)

	_, err = AnnualSalaryFromRange("unknown")
	assert.Error(t, err)
}

// ==========================
// Benchmark
// ==========================

func BenchmarkHandler_Execute(b *testing.B) {
	handler := createTestHandler(b)
	input := &Input{TotalCost: 500000, SalaryRange: "₹5-15 LPA", WorkingYears: 40}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := handler.Execute(context.Background(), input); err != nil {
			b.Fatal(err)
		}
	}
}
