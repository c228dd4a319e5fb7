// Package project implements the Anti-Corruption Layer translators for the
// discovery backend's project listing, status and report resources.
package project

import (
	"encoding/json"

	"github.com/jsamuelsen11/discovery-dashboard/internal/adapters/clients/acl/question"
)

// ProjectListResponseDTO matches the list_projects response. The backend
// lists names only and reports internal failures as status "warning" with an
// error string and an empty list.
type ProjectListResponseDTO struct {
	Status   string   `json:"status"`
	Projects []string `json:"projects"`
	Error    string   `json:"error,omitempty"`
}

// StatusResponseDTO matches the discovery_status response.
type StatusResponseDTO struct {
	Status          string              `json:"status"`
	Message         string              `json:"message,omitempty"`
	DiscoveryStatus *question.StatusDTO `json:"discovery_status"`
}

// ProjectDTO matches the project object inside a report.
type ProjectDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

// SOWSummaryDTO matches the report's statement-of-work summary.
type SOWSummaryDTO struct {
	SectionsCount     int `json:"sections_count"`
	RequirementsCount int `json:"requirements_count"`
	InScopeItems      int `json:"in_scope_items"`
	OutOfScopeItems   int `json:"out_of_scope_items"`
	UnclearItems      int `json:"unclear_items"`
}

// ReportQuestionsDTO matches the report's question block: counts by status
// plus the questions grouped by status.
type ReportQuestionsDTO struct {
	Total    int                               `json:"total"`
	ByStatus map[string]int                    `json:"by_status"`
	Details  map[string][]question.QuestionDTO `json:"details"`
}

// TranscriptDTO matches a transcript row inside a report.
type TranscriptDTO struct {
	ID             int64    `json:"id"`
	MeetingDate    string   `json:"meeting_date"`
	TranscriptText string   `json:"transcript_text"`
	Processed      FlexBool `json:"processed"`
}

// ReportTranscriptsDTO matches the report's transcript block.
type ReportTranscriptsDTO struct {
	Count   int             `json:"count"`
	Details []TranscriptDTO `json:"details"`
}

// NewInformationDTO matches a new_information row inside a report.
type NewInformationDTO struct {
	ID                int64  `json:"id"`
	TranscriptID      *int64 `json:"transcript_id"`
	Topic             string `json:"topic"`
	TranscriptExcerpt string `json:"transcript_excerpt"`
	Impact            string `json:"impact"`
	Priority          int    `json:"priority"`
	Status            string `json:"status"`
}

// ReportDTO matches the discovery_report response.
type ReportDTO struct {
	Status          string               `json:"status"`
	Message         string               `json:"message,omitempty"`
	Project         ProjectDTO           `json:"project"`
	DiscoveryStatus *question.StatusDTO  `json:"discovery_status"`
	SOWSummary      SOWSummaryDTO        `json:"sow_summary"`
	Questions       ReportQuestionsDTO   `json:"questions"`
	Transcripts     ReportTranscriptsDTO `json:"transcripts"`
	NewInformation  []NewInformationDTO  `json:"new_information"`
}

// FlexBool decodes a boolean that the backend stores as 0/1.
type FlexBool bool

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexBool) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = FlexBool(b)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = n != 0
		return nil
	}

	*f = false
	return nil
}
