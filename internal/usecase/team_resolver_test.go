package usecase

import (
	"context"
	"testing"

	"github.com/neuproject/sports-calendar/internal/domain/team"
	"github.com/neuproject/sports-calendar/internal/infrastructure/repository/memory"
	"github.com/neuproject/sports-calendar/internal/platform/logging"
)

func newResolverFixture() *TeamResolver {
	teams := []team.Team{
		{ID: "tm_arsenal", LeagueID: "lg_epl", Name: "Arsenal", ExternalAPIID: "FB_57"},
		{ID: "tm_tottenham", LeagueID: "lg_epl", Name: "Tottenham", ExternalAPIID: "FB_73"},
		{ID: "tm_liverpool", LeagueID: "lg_epl", Name: "Liverpool", ExternalAPIID: "FB_64"},
		{ID: "tm_bayern", LeagueID: "lg_bundesliga", Name: "Bayern München", ExternalAPIID: "FB_5"},
		{ID: "tm_samsung", LeagueID: "lg_kbo", Name: "삼성 라이온즈", ExternalAPIID: "KBO_SS"},
		{ID: "tm_kiwoom", LeagueID: "lg_kbo", Name: "키움 히어로즈", ExternalAPIID: "KBO_WO"},
		{ID: "tm_t1", LeagueID: "lg_lck", Name: "T1"},
	}
	return NewTeamResolver(memory.NewTeamRepository(teams), logging.NewNop())
}

func TestResolveByExternalRef(t *testing.T) {
	t.Parallel()

	resolver := newResolverFixture()

	got, err := resolver.Resolve(context.Background(), "lg_epl", "some renamed club", "FB_57")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "tm_arsenal" {
		t.Fatalf("got %q, want tm_arsenal", got)
	}
}

func TestResolveExternalRefBeatsExactName(t *testing.T) {
	t.Parallel()

	resolver := newResolverFixture()

	// The ref points at Arsenal even though the name is an exact hit on
	// another row.
	got, err := resolver.Resolve(context.Background(), "lg_epl", "Liverpool", "FB_57")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "tm_arsenal" {
		t.Fatalf("got %q, want tm_arsenal", got)
	}
}

func TestResolveByExactName(t *testing.T) {
	t.Parallel()

	resolver := newResolverFixture()

	got, err := resolver.Resolve(context.Background(), "lg_epl", "Arsenal", "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "tm_arsenal" {
		t.Fatalf("got %q, want tm_arsenal", got)
	}
}

func TestResolveByCaseFold(t *testing.T) {
	t.Parallel()

	resolver := newResolverFixture()

	got, err := resolver.Resolve(context.Background(), "lg_epl", "LIVERPOOL", "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "tm_liverpool" {
		t.Fatalf("got %q, want tm_liverpool", got)
	}
}

func TestResolveByAffixStrip(t *testing.T) {
	t.Parallel()

	resolver := newResolverFixture()

	got, err := resolver.Resolve(context.Background(), "lg_epl", "Tottenham Hotspur", "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "tm_tottenham" {
		t.Fatalf("got %q, want tm_tottenham", got)
	}
}

func TestResolveByKBOAlias(t *testing.T) {
	t.Parallel()

	resolver := newResolverFixture()

	cases := []struct {
		name string
		want string
	}{
		{"삼성 라이온즈", "tm_samsung"},
		{"Samsung Lions", "tm_samsung"},
		{"키움 히어로즈 2군", "tm_kiwoom"},
		{"히어로즈", "tm_kiwoom"},
	}
	for _, tc := range cases {
		got, err := resolver.Resolve(context.Background(), "lg_kbo", tc.name, "")
		if err != nil {
			t.Fatalf("Resolve(%q): %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("Resolve(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestResolveFuzzyDiacritics(t *testing.T) {
	t.Parallel()

	resolver := newResolverFixture()

	got, err := resolver.Resolve(context.Background(), "lg_bundesliga", "Bayern Munchen", "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "tm_bayern" {
		t.Fatalf("got %q, want tm_bayern", got)
	}
}

func TestResolveMissReturnsEmpty(t *testing.T) {
	t.Parallel()

	resolver := newResolverFixture()

	got, err := resolver.Resolve(context.Background(), "lg_epl", "Nonexistent Rovers", "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "" {
		t.Fatalf("got %q, want empty", got)
	}
}

func TestResolveScopedToLeague(t *testing.T) {
	t.Parallel()

	resolver := newResolverFixture()

	// Arsenal exists, but not in this league, and there is no external ref
	// to bridge the gap.
	got, err := resolver.Resolve(context.Background(), "lg_bundesliga", "Arsenal", "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "" {
		t.Fatalf("got %q, want empty", got)
	}
}

func TestSimplifyTeamName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"Bayern München", "bayernmunchen"},
		{"FC Bayern", "fcbayern"},
		{"삼성 라이온즈", "삼성라이온즈"},
		{"Gen.G", "geng"},
		{"  ", ""},
		{"...", ""},
	}
	for _, tc := range cases {
		if got := simplifyTeamName(tc.in); got != tc.want {
			t.Fatalf("simplifyTeamName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStripClubAffixes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"Tottenham Hotspur", "Tottenham"},
		{"Manchester United", "Manchester"},
		{"FC Barcelona", "Barcelona"},
		{"Real Madrid", "Madrid"},
		{"Arsenal", "Arsenal"},
	}
	for _, tc := range cases {
		if got := stripClubAffixes(tc.in); got != tc.want {
			t.Fatalf("stripClubAffixes(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
