// Package progress implements the Anti-Corruption Layer translators for the
// discovery backend's project progress payload.
package progress

// ByStatusDTO matches the backend's per-status question counts. Missing
// keys decode as zero.
type ByStatusDTO struct {
	Answered          int `json:"answered"`
	PartiallyAnswered int `json:"partially_answered"`
	Unanswered        int `json:"unanswered"`
}

// QuestionsDTO matches the backend's question block.
type QuestionsDTO struct {
	Total    int         `json:"total"`
	ByStatus ByStatusDTO `json:"by_status"`
}

// TranscriptsDTO matches the backend's transcript block.
type TranscriptsDTO struct {
	Count int `json:"count"`
}

// ProgressDTO matches the project_progress response. Status and Message are
// only set on the backend's {"status":"error"} envelope.
type ProgressDTO struct {
	Status            string          `json:"status,omitempty"`
	Message           string          `json:"message,omitempty"`
	ProjectID         int64           `json:"project_id,omitempty"`
	Questions         *QuestionsDTO   `json:"questions"`
	Transcripts       *TranscriptsDTO `json:"transcripts,omitempty"`
	DiscoveryComplete bool            `json:"discovery_complete,omitempty"`
}
