package question

import (
	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/discovery"
)

// ToDomainQuestion converts a backend QuestionDTO to a domain Question.
// Questions without a status are new and therefore unanswered.
func ToDomainQuestion(dto *QuestionDTO) discovery.Question {
	status := discovery.QuestionStatus(dto.Status)
	if dto.Status == "" {
		status = discovery.QuestionUnanswered
	}

	q := discovery.Question{
		ID:        dto.ID,
		ProjectID: dto.ProjectID,
		ParentID:  dto.ParentQuestionID,
		Text:      dto.Question,
		Context:   dto.Context,
		Source:    dto.Source,
		Priority:  int(dto.Priority),
		Status:    status,
	}
	if dto.Answer != nil {
		q.Answer = &discovery.Answer{
			Text:       dto.Answer.AnswerText,
			Confidence: dto.Answer.Confidence,
		}
	}
	return q
}

// ToDomainQuestions converts a slice of backend questions.
func ToDomainQuestions(dtos []QuestionDTO) []discovery.Question {
	questions := make([]discovery.Question, len(dtos))
	for i := range dtos {
		questions[i] = ToDomainQuestion(&dtos[i])
	}
	return questions
}

// ToDomainStatus converts a backend StatusDTO to a domain Status. Unknown
// status keys are kept so that TotalQuestions stays explainable.
func ToDomainStatus(dto *StatusDTO) *discovery.Status {
	if dto == nil {
		return nil
	}

	counts := make(map[discovery.QuestionStatus]int, len(dto.QuestionStatus))
	for k, v := range dto.QuestionStatus {
		counts[discovery.QuestionStatus(k)] = v
	}
	return &discovery.Status{
		ProjectID:         dto.ProjectID,
		TotalQuestions:    dto.TotalQuestions,
		QuestionStatus:    counts,
		TranscriptCount:   dto.TranscriptCount,
		DiscoveryComplete: dto.DiscoveryComplete,
	}
}

// ToDomainGeneration converts a generate_questions_by_id response.
func ToDomainGeneration(dto *GenerateResponseDTO) *discovery.GenerationResult {
	result := &discovery.GenerationResult{
		ProjectID:             dto.ProjectID,
		ProjectName:           dto.ProjectName,
		InitialQuestionsCount: dto.InitialQuestionsCount,
	}
	if dto.Questions != nil {
		result.Questions = ToDomainQuestions(dto.Questions.Questions)
		for i := range result.Questions {
			if result.Questions[i].ProjectID == 0 {
				result.Questions[i].ProjectID = dto.ProjectID
			}
		}
	}
	return result
}

// ToTranscriptRequest converts a domain Transcript to the request body.
func ToTranscriptRequest(t *discovery.Transcript) TranscriptRequestDTO {
	return TranscriptRequestDTO{
		ProjectID:      t.ProjectID,
		TranscriptText: t.Text,
	}
}

// ToDomainTranscriptResult converts a process_transcript response.
func ToDomainTranscriptResult(dto *TranscriptResponseDTO) *discovery.TranscriptResult {
	return &discovery.TranscriptResult{
		AnswersFound:      dto.AnswersFound,
		FollowupQuestions: ToDomainQuestions(dto.FollowupQuestions),
		Status:            ToDomainStatus(dto.DiscoveryStatus),
	}
}
