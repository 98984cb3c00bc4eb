package usecase

import (
	"testing"

	"github.com/neuproject/sports-calendar/internal/domain/match"
)

func TestMapProviderStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		source Source
		raw    string
		want   match.Status
	}{
		{"football finished", SourceFootballData, "FINISHED", match.StatusFinished},
		{"football in play", SourceFootballData, "IN_PLAY", match.StatusOngoing},
		{"football timed", SourceFootballData, "TIMED", match.StatusScheduled},
		{"football postponed", SourceFootballData, "POSTPONED", match.StatusScheduled},
		{"pandascore finished", SourcePandaScore, "finished", match.StatusFinished},
		{"pandascore running", SourcePandaScore, "running", match.StatusOngoing},
		{"pandascore not started", SourcePandaScore, "not_started", match.StatusScheduled},
		{"kbo result", SourceKBO, "RESULT", match.StatusFinished},
		{"kbo run", SourceKBO, "RUN", match.StatusOngoing},
		{"kbo before", SourceKBO, "BEFORE", match.StatusScheduled},
		{"espn final", SourceESPN, "STATUS_FINAL", match.StatusFinished},
		{"espn in progress", SourceESPN, "STATUS_IN_PROGRESS", match.StatusOngoing},
		{"espn scheduled", SourceESPN, "STATUS_SCHEDULED", match.StatusScheduled},
		{"whitespace trimmed", SourceKBO, "  RESULT  ", match.StatusFinished},
		{"empty", SourceESPN, "", match.StatusScheduled},
		{"vocabulary does not cross sources", SourceFootballData, "finished", match.StatusScheduled},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := mapProviderStatus(tc.source, tc.raw)
			if got != tc.want {
				t.Fatalf("mapProviderStatus(%s, %q) = %q, want %q", tc.source, tc.raw, got, tc.want)
			}
		})
	}
}
