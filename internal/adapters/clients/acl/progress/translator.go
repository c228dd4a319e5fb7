package progress

import (
	progressdomain "github.com/jsamuelsen11/discovery-dashboard/internal/domain/progress"
)

// ToDomainReport converts a backend ProgressDTO to a domain Report. The
// projectID argument is used when the payload does not name its project.
// A missing question block yields a report with nil Questions.
func ToDomainReport(dto *ProgressDTO, projectID int64) *progressdomain.Report {
	if dto == nil {
		return nil
	}

	report := &progressdomain.Report{
		ProjectID:         projectID,
		DiscoveryComplete: dto.DiscoveryComplete,
	}
	if dto.ProjectID != 0 {
		report.ProjectID = dto.ProjectID
	}
	if dto.Transcripts != nil {
		report.TranscriptCount = dto.Transcripts.Count
	}
	if dto.Questions != nil {
		report.Questions = &progressdomain.Breakdown{
			Total:             dto.Questions.Total,
			Answered:          dto.Questions.ByStatus.Answered,
			PartiallyAnswered: dto.Questions.ByStatus.PartiallyAnswered,
			Unanswered:        dto.Questions.ByStatus.Unanswered,
		}
	}
	return report
}

// FromDomainReport converts a domain Report back to the wire shape. Used by
// tools that emit progress payloads.
func FromDomainReport(r *progressdomain.Report) ProgressDTO {
	dto := ProgressDTO{
		ProjectID:         r.ProjectID,
		DiscoveryComplete: r.DiscoveryComplete,
	}
	if r.TranscriptCount > 0 {
		dto.Transcripts = &TranscriptsDTO{Count: r.TranscriptCount}
	}
	if r.Questions != nil {
		dto.Questions = &QuestionsDTO{
			Total: r.Questions.Total,
			ByStatus: ByStatusDTO{
				Answered:          r.Questions.Answered,
				PartiallyAnswered: r.Questions.PartiallyAnswered,
				Unanswered:        r.Questions.Unanswered,
			},
		}
	}
	return dto
}
