package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/discovery-dashboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/discovery-dashboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/discovery-dashboard/internal/domain"
	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/completion"
	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/discovery"
	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/progress"
	"github.com/jsamuelsen11/discovery-dashboard/internal/ports"
	"github.com/jsamuelsen11/discovery-dashboard/mocks"
)

func newDiscoveryHandler(t *testing.T) (*handlers.DiscoveryHandler, *mocks.MockDiscoveryService) {
	t.Helper()
	svc := mocks.NewMockDiscoveryService(t)
	return handlers.NewDiscoveryHandler(svc), svc
}

// --- ListProjects ---

func TestListProjects_Success(t *testing.T) {
	t.Parallel()
	h, svc := newDiscoveryHandler(t)

	unloaded := ports.ProjectCompletion{
		Project:    discovery.Project{ID: 2, Name: "Globex-2"},
		Completion: completion.DefaultResult(),
		Err:        domain.ErrUnavailable,
	}
	svc.EXPECT().ListProjects(mock.Anything).Return([]ports.ProjectCompletion{validCompletion(), unloaded}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	h.ListProjects(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ProjectListResponse](t, rec)
	if resp.Count != 2 || resp.Failed != 1 {
		t.Errorf("Count/Failed = %d/%d, want 2/1", resp.Count, resp.Failed)
	}
	if resp.Projects[0].Completion.Percentage != 77 {
		t.Errorf("Percentage = %d, want 77", resp.Projects[0].Completion.Percentage)
	}
	if resp.Projects[1].Completion.Status != "unknown" {
		t.Errorf("Projects[1].Status = %q, want unknown", resp.Projects[1].Completion.Status)
	}
}

func TestListProjects_PolicyOverrides(t *testing.T) {
	t.Parallel()
	h, svc := newDiscoveryHandler(t)

	// One option per override parameter.
	svc.EXPECT().ListProjects(mock.Anything, mock.Anything, mock.Anything).
		Return([]ports.ProjectCompletion{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects?partial_weight=0.5&completed_threshold=90", nil)
	h.ListProjects(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestListProjects_MalformedOverride(t *testing.T) {
	t.Parallel()
	h, _ := newDiscoveryHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects?partial_weight=lots", nil)
	h.ListProjects(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 1 || resp.Errors[0].Location != "query.partial_weight" {
		t.Errorf("Errors = %+v, want query.partial_weight", resp.Errors)
	}
}

func TestListProjects_ServiceError(t *testing.T) {
	t.Parallel()
	h, svc := newDiscoveryHandler(t)

	svc.EXPECT().ListProjects(mock.Anything).Return(nil, domain.ErrUnavailable)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	h.ListProjects(rec, req)

	requireStatus(t, rec, http.StatusBadGateway)
}

// --- Summary ---

func TestSummary_Success(t *testing.T) {
	t.Parallel()
	h, svc := newDiscoveryHandler(t)

	svc.EXPECT().Summary(mock.Anything).Return(&completion.Summary{
		TotalProjects:          3,
		AverageCompletion:      58,
		CompletedProjects:      1,
		ActiveProjects:         1,
		PendingProjects:        1,
		TotalQuestions:         40,
		TotalAnswered:          25,
		OrganizationEfficiency: 63,
	}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/summary", nil)
	h.Summary(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.SummaryResponse](t, rec)
	if resp.TotalProjects != 3 || resp.OrganizationEfficiency != 63 {
		t.Errorf("got %+v", resp)
	}
}

// --- GetCompletion ---

func TestGetCompletion_Success(t *testing.T) {
	t.Parallel()
	h, svc := newDiscoveryHandler(t)

	pc := validCompletion()
	svc.EXPECT().GetProjectCompletion(mock.Anything, int64(1)).Return(&pc, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/1/completion", nil)
	req = withChiParams(req, map[string]string{"id": "1"})
	h.GetCompletion(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ProjectResponse](t, rec)
	if resp.Completion.Status != "active" || resp.Completion.StatusColor != "blue" {
		t.Errorf("Status = %q/%q, want active/blue", resp.Completion.Status, resp.Completion.StatusColor)
	}
	if resp.Completion.Description == "" {
		t.Error("Description is empty")
	}
	if !strings.Contains(resp.Completion.Breakdown, "Weighted Score: 15.4/20") {
		t.Errorf("Breakdown = %q", resp.Completion.Breakdown)
	}
}

func TestGetCompletion_InvalidID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		id   string
	}{
		{"not a number", "abc"},
		{"zero", "0"},
		{"negative", "-4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, _ := newDiscoveryHandler(t)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/"+tt.id+"/completion", nil)
			req = withChiParams(req, map[string]string{"id": tt.id})
			h.GetCompletion(rec, req)

			requireStatus(t, rec, http.StatusBadRequest)
			resp := decodeJSON[dto.ErrorResponse](t, rec)
			if len(resp.Errors) != 1 || resp.Errors[0].Location != "path.id" {
				t.Errorf("Errors = %+v, want path.id", resp.Errors)
			}
		})
	}
}

func TestGetCompletion_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newDiscoveryHandler(t)

	svc.EXPECT().GetProjectCompletion(mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/99/completion", nil)
	req = withChiParams(req, map[string]string{"id": "99"})
	h.GetCompletion(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

func TestGetCompletion_InvalidPolicy(t *testing.T) {
	t.Parallel()
	h, svc := newDiscoveryHandler(t)

	svc.EXPECT().GetProjectCompletion(mock.Anything, int64(1), mock.Anything).
		Return(nil, &domain.ValidationError{Fields: map[string]string{"partial_weight": "must be between 0 and 1, got 2"}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/1/completion?partial_weight=2", nil)
	req = withChiParams(req, map[string]string{"id": "1"})
	h.GetCompletion(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- GetStatus ---

func TestGetStatus_Success(t *testing.T) {
	t.Parallel()
	h, svc := newDiscoveryHandler(t)

	svc.EXPECT().GetDiscoveryStatus(mock.Anything, int64(3)).Return(&discovery.Status{
		ProjectID:       3,
		TotalQuestions:  10,
		QuestionStatus:  map[discovery.QuestionStatus]int{discovery.QuestionAnswered: 10},
		TranscriptCount: 2,
	}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/3/status", nil)
	req = withChiParams(req, map[string]string{"id": "3"})
	h.GetStatus(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.StatusResponse](t, rec)
	if resp.QuestionStatus["answered"] != 10 {
		t.Errorf("QuestionStatus = %v", resp.QuestionStatus)
	}
}

// --- ListQuestions ---

func TestListQuestions_WithFilter(t *testing.T) {
	t.Parallel()
	h, svc := newDiscoveryHandler(t)

	filter := discovery.QuestionFilter{Status: discovery.QuestionPartiallyAnswered}
	svc.EXPECT().ListQuestions(mock.Anything, int64(1), filter).Return([]discovery.Question{
		{ID: 5, ProjectID: 1, Text: "Who owns the data model?", Status: discovery.QuestionPartiallyAnswered},
	}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/1/questions?status=partially_answered", nil)
	req = withChiParams(req, map[string]string{"id": "1"})
	h.ListQuestions(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.QuestionListResponse](t, rec)
	if resp.Count != 1 || resp.Questions[0].Question != "Who owns the data model?" {
		t.Errorf("got %+v", resp)
	}
}

func TestListQuestions_InvalidStatus(t *testing.T) {
	t.Parallel()
	h, _ := newDiscoveryHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/1/questions?status=closed", nil)
	req = withChiParams(req, map[string]string{"id": "1"})
	h.ListQuestions(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- GenerateQuestions ---

func TestGenerateQuestions_Success(t *testing.T) {
	t.Parallel()
	h, svc := newDiscoveryHandler(t)

	svc.EXPECT().GenerateQuestions(mock.Anything, int64(2)).Return(&discovery.GenerationResult{
		ProjectID:             2,
		ProjectName:           "Acme-2",
		InitialQuestionsCount: 2,
		Questions:             []discovery.Question{{ID: 1}, {ID: 2}},
	}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects/2/questions/generate", nil)
	req = withChiParams(req, map[string]string{"id": "2"})
	h.GenerateQuestions(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.GenerationResponse](t, rec)
	if resp.InitialQuestionsCount != 2 || len(resp.Questions) != 2 {
		t.Errorf("got %+v", resp)
	}
}

func TestGenerateQuestions_BackendError(t *testing.T) {
	t.Parallel()
	h, svc := newDiscoveryHandler(t)

	svc.EXPECT().GenerateQuestions(mock.Anything, int64(2)).Return(nil, domain.ErrUnavailable)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects/2/questions/generate", nil)
	req = withChiParams(req, map[string]string{"id": "2"})
	h.GenerateQuestions(rec, req)

	requireStatus(t, rec, http.StatusBadGateway)
}

// --- ProcessTranscript ---

func TestProcessTranscript_Success(t *testing.T) {
	t.Parallel()
	h, svc := newDiscoveryHandler(t)

	want := &discovery.Transcript{ProjectID: 4, Text: "SSO goes through Okta."}
	svc.EXPECT().ProcessTranscript(mock.Anything, want).Return(&discovery.TranscriptResult{
		AnswersFound:      1,
		FollowupQuestions: []discovery.Question{{ID: 9, Text: "Which Okta tenant?"}},
	}, nil)

	body := jsonBody(t, dto.TranscriptRequest{TranscriptText: "SSO goes through Okta."})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects/4/transcripts", body)
	req.Header.Set("Content-Type", "application/json")
	req = withChiParams(req, map[string]string{"id": "4"})
	h.ProcessTranscript(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TranscriptResultResponse](t, rec)
	if resp.AnswersFound != 1 || resp.FollowupQuestionsCount != 1 {
		t.Errorf("got %+v", resp)
	}
}

func TestProcessTranscript_ValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"invalid JSON", `{"transcript_text":`},
		{"missing text", `{}`},
		{"blank text", `{"transcript_text":"   "}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, _ := newDiscoveryHandler(t)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/projects/4/transcripts", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req = withChiParams(req, map[string]string{"id": "4"})
			h.ProcessTranscript(rec, req)

			requireStatus(t, rec, http.StatusBadRequest)
		})
	}
}

// --- GetReport ---

func TestGetReport_Success(t *testing.T) {
	t.Parallel()
	h, svc := newDiscoveryHandler(t)

	report := &discovery.Report{
		Project:   discovery.Project{ID: 8, Name: "Initech-8"},
		Questions: progress.Breakdown{Total: 10, Answered: 7, PartiallyAnswered: 2, Unanswered: 1},
	}
	result := completion.DefaultPolicy().Calculate(report.Progress())
	svc.EXPECT().GetReport(mock.Anything, int64(8)).Return(&ports.ProjectReport{Report: report, Completion: result}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/8/report", nil)
	req = withChiParams(req, map[string]string{"id": "8"})
	h.GetReport(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ReportResponse](t, rec)
	if resp.Project.Name != "Initech-8" || resp.Project.Completion.Percentage != 82 {
		t.Errorf("Project = %+v", resp.Project)
	}
	if resp.Questions.Total != 10 {
		t.Errorf("Questions.Total = %d, want 10", resp.Questions.Total)
	}
}

func TestGetReport_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newDiscoveryHandler(t)

	svc.EXPECT().GetReport(mock.Anything, int64(8)).Return(nil, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/8/report", nil)
	req = withChiParams(req, map[string]string{"id": "8"})
	h.GetReport(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}
