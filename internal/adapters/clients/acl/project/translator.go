package project

import (
	"sort"
	"strings"
	"time"

	"github.com/jsamuelsen11/discovery-dashboard/internal/adapters/clients/acl/question"
	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/discovery"
	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/progress"
)

// timestampLayouts are the formats the backend emits for created_at:
// RFC 3339 and the database default "YYYY-MM-DD HH:MM:SS".
var timestampLayouts = []string{time.RFC3339, "2006-01-02 15:04:05"}

func parseTimestamp(s string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// ToDomainProjects converts the list_projects names to domain Projects.
// Blank names are skipped; positions count only the names that remain.
func ToDomainProjects(dto ProjectListResponseDTO) []discovery.Project {
	projects := make([]discovery.Project, 0, len(dto.Projects))
	for _, name := range dto.Projects {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		projects = append(projects, discovery.ProjectFromName(name, len(projects)+1))
	}
	return projects
}

// ToDomainReport converts a discovery_report response to a domain Report.
// Grouped question details are flattened in status order.
func ToDomainReport(dto *ReportDTO) *discovery.Report {
	report := &discovery.Report{
		Project: discovery.Project{
			ID:        dto.Project.ID,
			Name:      dto.Project.Name,
			CreatedAt: parseTimestamp(dto.Project.CreatedAt),
		},
		Status: question.ToDomainStatus(dto.DiscoveryStatus),
		SOW: discovery.SOWSummary{
			SectionsCount:     dto.SOWSummary.SectionsCount,
			RequirementsCount: dto.SOWSummary.RequirementsCount,
			InScopeItems:      dto.SOWSummary.InScopeItems,
			OutOfScopeItems:   dto.SOWSummary.OutOfScopeItems,
			UnclearItems:      dto.SOWSummary.UnclearItems,
		},
		Questions: progress.Breakdown{
			Total:             dto.Questions.Total,
			Answered:          dto.Questions.ByStatus[string(discovery.QuestionAnswered)],
			PartiallyAnswered: dto.Questions.ByStatus[string(discovery.QuestionPartiallyAnswered)],
			Unanswered:        dto.Questions.ByStatus[string(discovery.QuestionUnanswered)],
		},
	}

	statuses := make([]string, 0, len(dto.Questions.Details))
	for s := range dto.Questions.Details {
		statuses = append(statuses, s)
	}
	sort.Strings(statuses)
	for _, s := range statuses {
		report.QuestionList = append(report.QuestionList, question.ToDomainQuestions(dto.Questions.Details[s])...)
	}

	report.Transcripts = make([]discovery.TranscriptInfo, len(dto.Transcripts.Details))
	for i, t := range dto.Transcripts.Details {
		report.Transcripts[i] = discovery.TranscriptInfo{
			ID:          t.ID,
			MeetingDate: t.MeetingDate,
			Text:        t.TranscriptText,
			Processed:   bool(t.Processed),
		}
	}

	report.NewInformation = make([]discovery.NewInformation, len(dto.NewInformation))
	for i, n := range dto.NewInformation {
		report.NewInformation[i] = discovery.NewInformation{
			ID:           n.ID,
			TranscriptID: n.TranscriptID,
			Topic:        n.Topic,
			Excerpt:      n.TranscriptExcerpt,
			Impact:       n.Impact,
			Priority:     n.Priority,
			Status:       n.Status,
		}
	}
	return report
}
