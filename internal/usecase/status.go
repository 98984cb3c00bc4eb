package usecase

import (
	"strings"

	"github.com/neuproject/sports-calendar/internal/domain/match"
)

// mapProviderStatus folds a provider status string into the internal
// tri-state. Every unknown value lands on scheduled so postponed or odd
// states never surface as live or complete.
func mapProviderStatus(source Source, raw string) match.Status {
	raw = strings.TrimSpace(raw)

	switch source {
	case SourceFootballData:
		switch raw {
		case "FINISHED":
			return match.StatusFinished
		case "IN_PLAY":
			return match.StatusOngoing
		}
	case SourcePandaScore:
		switch raw {
		case "finished":
			return match.StatusFinished
		case "running":
			return match.StatusOngoing
		}
	case SourceKBO:
		switch raw {
		case "RESULT":
			return match.StatusFinished
		case "RUN":
			return match.StatusOngoing
		}
	case SourceESPN:
		switch raw {
		case "STATUS_FINAL":
			return match.StatusFinished
		case "STATUS_IN_PROGRESS":
			return match.StatusOngoing
		}
	}

	return match.StatusScheduled
}
