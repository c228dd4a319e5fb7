// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/completion"
	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/discovery"
	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/progress"
	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/settings"
	"github.com/jsamuelsen11/discovery-dashboard/internal/ports"
)

// CompletionDetailsResponse carries the weighted components of a score.
type CompletionDetailsResponse struct {
	AnsweredWeight float64 `json:"answered_weight"`
	PartialWeight  float64 `json:"partial_weight"`
	TotalWeight    float64 `json:"total_weight"`
}

// CompletionResponse represents a computed completion in HTTP responses.
type CompletionResponse struct {
	Percentage        int                       `json:"percentage"`
	TotalQuestions    int                       `json:"total_questions"`
	AnsweredQuestions int                       `json:"answered_questions"`
	PartiallyAnswered int                       `json:"partially_answered"`
	Unanswered        int                       `json:"unanswered"`
	Status            string                    `json:"status"`
	StatusColor       string                    `json:"status_color"`
	ProgressColor     string                    `json:"progress_color"`
	WeightedScore     float64                   `json:"weighted_score"`
	Details           CompletionDetailsResponse `json:"details"`
	Description       string                    `json:"description,omitempty"`
	Breakdown         string                    `json:"breakdown,omitempty"`
}

// ToCompletionResponse converts a completion result to an HTTP response DTO.
func ToCompletionResponse(r completion.Result) CompletionResponse {
	return CompletionResponse{
		Percentage:        r.Percentage,
		TotalQuestions:    r.TotalQuestions,
		AnsweredQuestions: r.AnsweredQuestions,
		PartiallyAnswered: r.PartiallyAnswered,
		Unanswered:        r.Unanswered,
		Status:            r.Status.String(),
		StatusColor:       string(r.StatusColor),
		ProgressColor:     string(r.ProgressColor),
		WeightedScore:     r.WeightedScore,
		Details: CompletionDetailsResponse{
			AnsweredWeight: r.Details.AnsweredWeight,
			PartialWeight:  r.Details.PartialWeight,
			TotalWeight:    r.Details.TotalWeight,
		},
	}
}

// ToDescribedCompletionResponse is ToCompletionResponse plus the human
// description and the multi-line breakdown text.
func ToDescribedCompletionResponse(r completion.Result) CompletionResponse {
	resp := ToCompletionResponse(r)
	resp.Description = completion.Describe(r)
	resp.Breakdown = completion.DetailedBreakdown(r)
	return resp
}

// PolicyResponse represents a scoring policy in HTTP responses.
type PolicyResponse struct {
	AnsweredWeight      float64 `json:"answered_weight"`
	PartialWeight       float64 `json:"partial_weight"`
	CompletedThreshold  int     `json:"completed_threshold"`
	ActiveHighThreshold int     `json:"active_high_threshold"`
	ActiveLowThreshold  int     `json:"active_low_threshold"`
}

// ToPolicyResponse converts a policy to an HTTP response DTO.
func ToPolicyResponse(p completion.Policy) PolicyResponse {
	return PolicyResponse{
		AnsweredWeight:      p.AnsweredWeight,
		PartialWeight:       p.PartialWeight,
		CompletedThreshold:  p.CompletedThreshold,
		ActiveHighThreshold: p.ActiveHighThreshold,
		ActiveLowThreshold:  p.ActiveLowThreshold,
	}
}

// ProjectResponse represents a project and its completion in HTTP responses.
// Error is set when Loaded is false.
type ProjectResponse struct {
	ID         int64              `json:"id"`
	Name       string             `json:"name,omitempty"`
	CreatedAt  string             `json:"created_at,omitempty"`
	Completion CompletionResponse `json:"completion"`
	Loaded     bool               `json:"loaded"`
	Error      string             `json:"error,omitempty"`
}

// ProjectListResponse represents a list of projects in HTTP responses.
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Count    int               `json:"count"`
	Failed   int               `json:"failed"`
}

// ToProjectResponse converts a project completion to an HTTP response DTO.
func ToProjectResponse(pc *ports.ProjectCompletion) ProjectResponse {
	resp := ProjectResponse{
		ID:         pc.Project.ID,
		Name:       pc.Project.Name,
		Completion: ToCompletionResponse(pc.Completion),
		Loaded:     pc.Loaded,
	}
	if !pc.Project.CreatedAt.IsZero() {
		resp.CreatedAt = pc.Project.CreatedAt.Format(time.RFC3339)
	}
	if pc.Err != nil {
		resp.Error = pc.Err.Error()
	}
	return resp
}

// ToProjectListResponse converts a project listing to an HTTP list response DTO.
func ToProjectListResponse(projects []ports.ProjectCompletion) ProjectListResponse {
	items := make([]ProjectResponse, len(projects))
	failed := 0
	for i := range projects {
		items[i] = ToProjectResponse(&projects[i])
		if !projects[i].Loaded {
			failed++
		}
	}
	return ProjectListResponse{
		Projects: items,
		Count:    len(items),
		Failed:   failed,
	}
}

// SummaryResponse represents organization statistics in HTTP responses.
type SummaryResponse struct {
	TotalProjects          int `json:"total_projects"`
	AverageCompletion      int `json:"average_completion"`
	CompletedProjects      int `json:"completed_projects"`
	ActiveProjects         int `json:"active_projects"`
	PendingProjects        int `json:"pending_projects"`
	TotalQuestions         int `json:"total_questions"`
	TotalAnswered          int `json:"total_answered"`
	OrganizationEfficiency int `json:"organization_efficiency"`
}

// ToSummaryResponse converts a summary to an HTTP response DTO.
func ToSummaryResponse(s *completion.Summary) SummaryResponse {
	return SummaryResponse{
		TotalProjects:          s.TotalProjects,
		AverageCompletion:      s.AverageCompletion,
		CompletedProjects:      s.CompletedProjects,
		ActiveProjects:         s.ActiveProjects,
		PendingProjects:        s.PendingProjects,
		TotalQuestions:         s.TotalQuestions,
		TotalAnswered:          s.TotalAnswered,
		OrganizationEfficiency: s.OrganizationEfficiency,
	}
}

// StatusResponse represents the backend's discovery status.
type StatusResponse struct {
	ProjectID         int64          `json:"project_id"`
	TotalQuestions    int            `json:"total_questions"`
	QuestionStatus    map[string]int `json:"question_status"`
	TranscriptCount   int            `json:"transcript_count"`
	DiscoveryComplete bool           `json:"discovery_complete"`
}

// ToStatusResponse converts a discovery status to an HTTP response DTO.
func ToStatusResponse(s *discovery.Status) StatusResponse {
	counts := make(map[string]int, len(s.QuestionStatus))
	for k, v := range s.QuestionStatus {
		counts[k.String()] = v
	}
	return StatusResponse{
		ProjectID:         s.ProjectID,
		TotalQuestions:    s.TotalQuestions,
		QuestionStatus:    counts,
		TranscriptCount:   s.TranscriptCount,
		DiscoveryComplete: s.DiscoveryComplete,
	}
}

// AnswerResponse represents an extracted answer.
type AnswerResponse struct {
	AnswerText string  `json:"answer_text"`
	Confidence float64 `json:"confidence"`
}

// QuestionResponse represents a discovery question in HTTP responses.
type QuestionResponse struct {
	ID               int64           `json:"id"`
	ProjectID        int64           `json:"project_id"`
	ParentQuestionID *int64          `json:"parent_question_id,omitempty"`
	Question         string          `json:"question"`
	Context          string          `json:"context,omitempty"`
	Source           string          `json:"source,omitempty"`
	Priority         int             `json:"priority"`
	Status           string          `json:"status"`
	Answer           *AnswerResponse `json:"answer,omitempty"`
}

// QuestionListResponse represents a list of questions in HTTP responses.
type QuestionListResponse struct {
	Questions []QuestionResponse `json:"questions"`
	Count     int                `json:"count"`
}

// ToQuestionResponse converts a question to an HTTP response DTO.
func ToQuestionResponse(q *discovery.Question) QuestionResponse {
	resp := QuestionResponse{
		ID:               q.ID,
		ProjectID:        q.ProjectID,
		ParentQuestionID: q.ParentID,
		Question:         q.Text,
		Context:          q.Context,
		Source:           q.Source,
		Priority:         q.Priority,
		Status:           q.Status.String(),
	}
	if q.Answer != nil {
		resp.Answer = &AnswerResponse{AnswerText: q.Answer.Text, Confidence: q.Answer.Confidence}
	}
	return resp
}

// ToQuestionResponses converts a slice of questions. The result is never nil.
func ToQuestionResponses(questions []discovery.Question) []QuestionResponse {
	items := make([]QuestionResponse, len(questions))
	for i := range questions {
		items[i] = ToQuestionResponse(&questions[i])
	}
	return items
}

// ToQuestionListResponse converts a slice of questions to a list response.
func ToQuestionListResponse(questions []discovery.Question) QuestionListResponse {
	items := ToQuestionResponses(questions)
	return QuestionListResponse{Questions: items, Count: len(items)}
}

// GenerationResponse represents the outcome of question generation.
type GenerationResponse struct {
	ProjectID             int64              `json:"project_id"`
	ProjectName           string             `json:"project_name"`
	InitialQuestionsCount int                `json:"initial_questions_count"`
	Questions             []QuestionResponse `json:"questions"`
}

// ToGenerationResponse converts a generation result to an HTTP response DTO.
func ToGenerationResponse(g *discovery.GenerationResult) GenerationResponse {
	return GenerationResponse{
		ProjectID:             g.ProjectID,
		ProjectName:           g.ProjectName,
		InitialQuestionsCount: g.InitialQuestionsCount,
		Questions:             ToQuestionResponses(g.Questions),
	}
}

// TranscriptResultResponse represents the outcome of transcript processing.
type TranscriptResultResponse struct {
	AnswersFound           int                `json:"answers_found"`
	FollowupQuestionsCount int                `json:"followup_questions_count"`
	FollowupQuestions      []QuestionResponse `json:"followup_questions"`
	DiscoveryStatus        *StatusResponse    `json:"discovery_status,omitempty"`
}

// ToTranscriptResultResponse converts a transcript result to an HTTP response DTO.
func ToTranscriptResultResponse(r *discovery.TranscriptResult) TranscriptResultResponse {
	resp := TranscriptResultResponse{
		AnswersFound:           r.AnswersFound,
		FollowupQuestionsCount: len(r.FollowupQuestions),
		FollowupQuestions:      ToQuestionResponses(r.FollowupQuestions),
	}
	if r.Status != nil {
		s := ToStatusResponse(r.Status)
		resp.DiscoveryStatus = &s
	}
	return resp
}

// BreakdownResponse represents question counts by status.
type BreakdownResponse struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
}

// ToBreakdownResponse converts a progress breakdown.
func ToBreakdownResponse(b progress.Breakdown) BreakdownResponse {
	return BreakdownResponse{
		Total: b.Total,
		ByStatus: map[string]int{
			discovery.QuestionAnswered.String():          b.Answered,
			discovery.QuestionPartiallyAnswered.String(): b.PartiallyAnswered,
			discovery.QuestionUnanswered.String():        b.Unanswered,
		},
	}
}

// SOWSummaryResponse represents the statement of work summary.
type SOWSummaryResponse struct {
	SectionsCount     int `json:"sections_count"`
	RequirementsCount int `json:"requirements_count"`
	InScopeItems      int `json:"in_scope_items"`
	OutOfScopeItems   int `json:"out_of_scope_items"`
	UnclearItems      int `json:"unclear_items"`
}

// TranscriptResponse represents a submitted transcript.
type TranscriptResponse struct {
	ID          int64  `json:"id"`
	MeetingDate string `json:"meeting_date,omitempty"`
	Processed   bool   `json:"processed"`
	Length      int    `json:"length"`
}

// NewInformationResponse represents a topic no question covers yet.
type NewInformationResponse struct {
	ID           int64  `json:"id"`
	TranscriptID *int64 `json:"transcript_id,omitempty"`
	Topic        string `json:"topic"`
	Excerpt      string `json:"excerpt,omitempty"`
	Impact       string `json:"impact,omitempty"`
	Priority     int    `json:"priority"`
	Status       string `json:"status,omitempty"`
}

// ReportResponse represents a discovery report with its completion.
type ReportResponse struct {
	Project         ProjectResponse          `json:"project"`
	DiscoveryStatus *StatusResponse          `json:"discovery_status,omitempty"`
	SOWSummary      SOWSummaryResponse       `json:"sow_summary"`
	Questions       BreakdownResponse        `json:"questions"`
	QuestionList    []QuestionResponse       `json:"question_list"`
	Transcripts     []TranscriptResponse     `json:"transcripts"`
	NewInformation  []NewInformationResponse `json:"new_information"`
}

// ToReportResponse converts a scored report to an HTTP response DTO. The
// completion is nested in the project entry.
func ToReportResponse(pr *ports.ProjectReport) ReportResponse {
	r := pr.Report
	resp := ReportResponse{
		Project: ToProjectResponse(&ports.ProjectCompletion{
			Project:    r.Project,
			Completion: pr.Completion,
			Loaded:     true,
		}),
		SOWSummary: SOWSummaryResponse{
			SectionsCount:     r.SOW.SectionsCount,
			RequirementsCount: r.SOW.RequirementsCount,
			InScopeItems:      r.SOW.InScopeItems,
			OutOfScopeItems:   r.SOW.OutOfScopeItems,
			UnclearItems:      r.SOW.UnclearItems,
		},
		Questions:      ToBreakdownResponse(r.Questions),
		QuestionList:   ToQuestionResponses(r.QuestionList),
		Transcripts:    make([]TranscriptResponse, len(r.Transcripts)),
		NewInformation: make([]NewInformationResponse, len(r.NewInformation)),
	}
	resp.Project.Completion = ToDescribedCompletionResponse(pr.Completion)

	if r.Status != nil {
		s := ToStatusResponse(r.Status)
		resp.DiscoveryStatus = &s
	}
	for i, t := range r.Transcripts {
		resp.Transcripts[i] = TranscriptResponse{
			ID:          t.ID,
			MeetingDate: t.MeetingDate,
			Processed:   t.Processed,
			Length:      len(t.Text),
		}
	}
	for i, n := range r.NewInformation {
		resp.NewInformation[i] = NewInformationResponse{
			ID:           n.ID,
			TranscriptID: n.TranscriptID,
			Topic:        n.Topic,
			Excerpt:      n.Excerpt,
			Impact:       n.Impact,
			Priority:     n.Priority,
			Status:       n.Status,
		}
	}
	return resp
}

// ValidationResponse lists the problems found in a progress payload.
type ValidationResponse struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// EvaluationResponse represents the outcome of scoring a raw payload.
type EvaluationResponse struct {
	Completion CompletionResponse `json:"completion"`
	Policy     PolicyResponse     `json:"policy"`
	Validation ValidationResponse `json:"validation"`
}

// ToEvaluationResponse converts an evaluation to an HTTP response DTO.
func ToEvaluationResponse(e *ports.Evaluation) EvaluationResponse {
	return EvaluationResponse{
		Completion: ToDescribedCompletionResponse(e.Completion),
		Policy:     ToPolicyResponse(e.Policy),
		Validation: ValidationResponse{
			Valid:    e.Validation.Valid(),
			Errors:   nonNil(e.Validation.Errors),
			Warnings: nonNil(e.Validation.Warnings),
		},
	}
}

// CompletionOverridesResponse lists the stored overrides. Unset fields are
// omitted.
type CompletionOverridesResponse struct {
	AnsweredWeight      *float64 `json:"answered_weight,omitempty"`
	PartialWeight       *float64 `json:"partial_weight,omitempty"`
	CompletedThreshold  *int     `json:"completed_threshold,omitempty"`
	ActiveHighThreshold *int     `json:"active_high_threshold,omitempty"`
	ActiveLowThreshold  *int     `json:"active_low_threshold,omitempty"`
}

// SettingsResponse represents the dashboard settings.
type SettingsResponse struct {
	Theme      string                      `json:"theme"`
	Completion CompletionOverridesResponse `json:"completion"`
	UpdatedAt  string                      `json:"updated_at,omitempty"`
}

// ToSettingsResponse converts settings to an HTTP response DTO.
func ToSettingsResponse(s settings.Settings) SettingsResponse {
	resp := SettingsResponse{
		Theme: s.Theme.String(),
		Completion: CompletionOverridesResponse{
			AnsweredWeight:      s.Completion.AnsweredWeight,
			PartialWeight:       s.Completion.PartialWeight,
			CompletedThreshold:  s.Completion.CompletedThreshold,
			ActiveHighThreshold: s.Completion.ActiveHighThreshold,
			ActiveLowThreshold:  s.Completion.ActiveLowThreshold,
		},
	}
	if !s.UpdatedAt.IsZero() {
		resp.UpdatedAt = s.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// HealthResponse represents a liveness or readiness result. Checks maps each
// component to "ok" or its failure message.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
