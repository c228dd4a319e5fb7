// Package question implements the Anti-Corruption Layer translators for the
// discovery backend's question, generation and transcript resources.
package question

import (
	"encoding/json"
	"strconv"
)

// AnswerDTO matches the backend's latest answer attached to a question.
type AnswerDTO struct {
	ID           int64   `json:"id"`
	QuestionID   int64   `json:"question_id"`
	TranscriptID int64   `json:"transcript_id"`
	AnswerText   string  `json:"answer_text"`
	Confidence   float64 `json:"confidence"`
	MeetingDate  string  `json:"meeting_date"`
}

// QuestionDTO matches a backend question row. Generated and follow-up
// questions arrive before they are stored, so ID and Status may be absent.
type QuestionDTO struct {
	ID               int64      `json:"id"`
	ProjectID        int64      `json:"project_id"`
	ParentQuestionID *int64     `json:"parent_question_id"`
	Question         string     `json:"question"`
	Context          string     `json:"context"`
	Source           string     `json:"source"`
	Priority         FlexInt    `json:"priority"`
	Status           string     `json:"status"`
	Answer           *AnswerDTO `json:"answer,omitempty"`
}

// QuestionListResponseDTO matches the get_questions response.
type QuestionListResponseDTO struct {
	Status    string        `json:"status"`
	Message   string        `json:"message,omitempty"`
	Questions []QuestionDTO `json:"questions"`
}

// GenerateRequestDTO matches the generate_questions_by_id request body.
type GenerateRequestDTO struct {
	ProjectID int64 `json:"project_id"`
}

// GeneratedQuestionsDTO wraps the generator output, which nests the list.
type GeneratedQuestionsDTO struct {
	Questions []QuestionDTO `json:"questions"`
}

// GenerateResponseDTO matches the generate_questions_by_id response.
type GenerateResponseDTO struct {
	Status                string                 `json:"status"`
	Message               string                 `json:"message,omitempty"`
	ProjectID             int64                  `json:"project_id"`
	ProjectName           string                 `json:"project_name"`
	InitialQuestionsCount int                    `json:"initial_questions_count"`
	Questions             *GeneratedQuestionsDTO `json:"questions,omitempty"`
}

// TranscriptRequestDTO matches the process_transcript request body.
type TranscriptRequestDTO struct {
	ProjectID      int64  `json:"project_id"`
	TranscriptText string `json:"transcript_text"`
}

// StatusDTO matches the backend's discovery status object.
type StatusDTO struct {
	ProjectID         int64          `json:"project_id"`
	TotalQuestions    int            `json:"total_questions"`
	QuestionStatus    map[string]int `json:"question_status"`
	TranscriptCount   int            `json:"transcript_count"`
	DiscoveryComplete bool           `json:"discovery_complete"`
}

// TranscriptResponseDTO matches the process_transcript response.
type TranscriptResponseDTO struct {
	Status                 string        `json:"status"`
	Message                string        `json:"message,omitempty"`
	TranscriptProcessed    bool          `json:"transcript_processed"`
	AnswersFound           int           `json:"answers_found"`
	FollowupQuestionsCount int           `json:"followup_questions_count"`
	FollowupQuestions      []QuestionDTO `json:"followup_questions"`
	DiscoveryStatus        *StatusDTO    `json:"discovery_status,omitempty"`
}

// FlexInt decodes an integer that the backend sometimes sends as a string
// (model-generated priorities). Values that are neither decode as zero.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		if v, err := n.Int64(); err == nil {
			*f = FlexInt(v)
			return nil
		}
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if v, err := strconv.Atoi(s); err == nil {
			*f = FlexInt(v)
			return nil
		}
	}

	*f = 0
	return nil
}
