package v1_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	v1 "github.com/centsible/backend/internal/controllers/v1"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestGoal(t *testing.T, g v1.GoalEditable, expectedStatus ...int) v1.GoalResponse {
	if g.Name == "" {
		g.Name = uuid.NewString()
	}

	if g.TargetAmount.IsZero() {
		g.TargetAmount = decimal.NewFromInt(10000)
	}

	if g.DueDate.IsZero() {
		g.DueDate = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.GoalEditable{g}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/goals", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.GoalCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.GoalResponse{}
}

// TestGoalsProgress verifies that the returned progress is computed
// from the current and target amounts.
func (suite *TestSuiteStandard) TestGoalsProgress() {
	tests := []struct {
		name     string
		target   decimal.Decimal
		current  decimal.Decimal
		progress decimal.Decimal
	}{
		{"Quarter done", decimal.NewFromInt(10000), decimal.NewFromInt(2500), decimal.NewFromInt(25)},
		{"Nothing saved", decimal.NewFromInt(10000), decimal.Zero, decimal.Zero},
		{"Rounded", decimal.NewFromInt(3), decimal.NewFromInt(1), decimal.RequireFromString("33.33")},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			g := createTestGoal(t, v1.GoalEditable{
				TargetAmount:  tt.target,
				CurrentAmount: tt.current,
			})

			assert.True(t, g.Data.Progress.Equal(tt.progress), "progress is %s, should be %s", g.Data.Progress, tt.progress)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsOptions() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No goal with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Goal exists", createTestGoal(suite.T(), v1.GoalEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/goals", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsGetSingle() {
	g := createTestGoal(suite.T(), v1.GoalEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing goal", g.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET No goal with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/goals/%s", tt.id), "")

			var goal v1.GoalResponse
			test.DecodeResponse(t, &r, &goal)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestGoalsMilestones verifies that milestones are stored and returned.
func (suite *TestSuiteStandard) TestGoalsMilestones() {
	g := createTestGoal(suite.T(), v1.GoalEditable{
		Name: "New car",
		Milestones: []models.Milestone{
			{Name: "Down payment", Amount: decimal.NewFromInt(2000)},
			{Name: "Half way", Amount: decimal.NewFromInt(5000)},
		},
	})

	r := test.Request(suite.T(), http.MethodGet, g.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var goal v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &goal)

	require.Len(suite.T(), goal.Data.Milestones, 2)
	assert.Equal(suite.T(), "Down payment", goal.Data.Milestones[0].Name)
}

func (suite *TestSuiteStandard) TestGoalsUpdate() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{
		Name:          "Emergency fund",
		TargetAmount:  decimal.NewFromInt(5000),
		CurrentAmount: decimal.NewFromInt(1000),
	})

	r := test.Request(suite.T(), http.MethodPatch, goal.Data.Links.Self, map[string]any{
		"currentAmount": "2500",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var g v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &g)

	assert.True(suite.T(), g.Data.CurrentAmount.Equal(decimal.NewFromInt(2500)))
	assert.True(suite.T(), g.Data.Progress.Equal(decimal.NewFromInt(50)), "progress is %s, should be 50", g.Data.Progress)
}

func (suite *TestSuiteStandard) TestGoalsDelete() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Success", "", http.StatusNoContent},
		{"Non-existing goal", uuid.New().String(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				g := createTestGoal(t, v1.GoalEditable{})
				tt.id = g.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/goals/%s", tt.id), "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestGoalsGetSorted verifies that goals are sorted by due date, closest first.
func (suite *TestSuiteStandard) TestGoalsGetSorted() {
	g1 := createTestGoal(suite.T(), v1.GoalEditable{
		Name:    "Due last",
		DueDate: time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	g2 := createTestGoal(suite.T(), v1.GoalEditable{
		Name:    "Due first",
		DueDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/goals", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var goals v1.GoalListResponse
	test.DecodeResponse(suite.T(), &r, &goals)

	require.Len(suite.T(), goals.Data, 2, "Goal list has wrong length")

	assert.Equal(suite.T(), g2.Data.Name, goals.Data[0].Name)
	assert.Equal(suite.T(), g1.Data.Name, goals.Data[1].Name)
}
