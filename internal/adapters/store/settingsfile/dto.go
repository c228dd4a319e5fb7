package settingsfile

import (
	"time"

	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/settings"
)

// fileDTO is the on-disk YAML layout.
type fileDTO struct {
	Theme      string        `yaml:"theme"`
	Completion completionDTO `yaml:"completion,omitempty"`
	UpdatedAt  time.Time     `yaml:"updated_at,omitempty"`
}

// completionDTO holds the scoring overrides. Absent keys keep the default.
type completionDTO struct {
	AnsweredWeight      *float64 `yaml:"answered_weight,omitempty"`
	PartialWeight       *float64 `yaml:"partial_weight,omitempty"`
	CompletedThreshold  *int     `yaml:"completed_threshold,omitempty"`
	ActiveHighThreshold *int     `yaml:"active_high_threshold,omitempty"`
	ActiveLowThreshold  *int     `yaml:"active_low_threshold,omitempty"`
}

func toFile(s settings.Settings) fileDTO {
	return fileDTO{
		Theme: s.Theme.String(),
		Completion: completionDTO{
			AnsweredWeight:      s.Completion.AnsweredWeight,
			PartialWeight:       s.Completion.PartialWeight,
			CompletedThreshold:  s.Completion.CompletedThreshold,
			ActiveHighThreshold: s.Completion.ActiveHighThreshold,
			ActiveLowThreshold:  s.Completion.ActiveLowThreshold,
		},
		UpdatedAt: s.UpdatedAt,
	}
}

func fromFile(dto fileDTO) settings.Settings {
	return settings.Settings{
		Theme: settings.Theme(dto.Theme),
		Completion: settings.CompletionOverrides{
			AnsweredWeight:      dto.Completion.AnsweredWeight,
			PartialWeight:       dto.Completion.PartialWeight,
			CompletedThreshold:  dto.Completion.CompletedThreshold,
			ActiveHighThreshold: dto.Completion.ActiveHighThreshold,
			ActiveLowThreshold:  dto.Completion.ActiveLowThreshold,
		},
		UpdatedAt: dto.UpdatedAt,
	}
}
