package usecase

import (
	"context"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/neuproject/sports-calendar/internal/domain/team"
	"github.com/neuproject/sports-calendar/internal/platform/logging"
)

// clubAffixRegex strips generic club prefixes and suffixes so "Tottenham
// Hotspur FC" can still hit a row stored as "Tottenham".
var clubAffixRegex = regexp.MustCompile(`(?i)\s(FC|United|Utd|CF|AC|RC|SC|AS|Real|City|Hotspur)$|^(FC|Real)\s`)

// kboAliases maps broadcaster team spellings onto the stable short codes the
// teams were seeded with. Exact alias match wins; a substring pass catches
// sponsored variants like "키움 히어로즈 2군". Longer aliases sit first so the
// substring pass prefers the most specific entry.
var kboAliases = []struct {
	Alias string
	Code  string
}{
	{"삼성 라이온즈", "SS"},
	{"NC 다이노스", "NC"},
	{"LG 트윈스", "LG"},
	{"KT 위즈", "KT"},
	{"SSG 랜더스", "SK"},
	{"키움 히어로즈", "WO"},
	{"한화 이글스", "HH"},
	{"롯데 자이언츠", "LT"},
	{"두산 베어스", "OB"},
	{"KIA 타이거즈", "HT"},
	{"히어로즈", "WO"},
	{"Samsung", "SS"},
	{"삼성", "SS"},
	{"SSG", "SK"},
	{"키움", "WO"},
	{"한화", "HH"},
	{"롯데", "LT"},
	{"두산", "OB"},
	{"KIA", "HT"},
	{"기아", "HT"},
	{"NC", "NC"},
	{"LG", "LG"},
	{"KT", "KT"},
	{"SK", "SK"},
}

// TeamResolver maps a provider team name onto a stored team through a fixed
// cascade of increasingly loose strategies. A miss is not an error: the match
// is kept with the name only and the assignment stays empty.
type TeamResolver struct {
	teams  team.Repository
	logger *logging.Logger
}

func NewTeamResolver(teams team.Repository, logger *logging.Logger) *TeamResolver {
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamResolver{
		teams:  teams,
		logger: logger,
	}
}

// Resolve returns the stored team id for a provider team, or "" when no
// strategy produced a confident match.
func (r *TeamResolver) Resolve(ctx context.Context, leagueID, name, externalRef string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil
	}

	if externalRef != "" {
		found, ok, err := r.teams.GetByExternalID(ctx, externalRef)
		if err != nil {
			return "", err
		}
		if ok {
			return found.ID, nil
		}
	}

	if code := kboAliasCode(name); code != "" {
		found, ok, err := r.teams.GetByLeagueAndExternalID(ctx, leagueID, "KBO_"+code)
		if err != nil {
			return "", err
		}
		if ok {
			return found.ID, nil
		}
	}

	found, ok, err := r.teams.GetByExactName(ctx, leagueID, name)
	if err != nil {
		return "", err
	}
	if ok {
		return found.ID, nil
	}

	found, ok, err = r.teams.GetByNameFold(ctx, leagueID, name)
	if err != nil {
		return "", err
	}
	if ok {
		return found.ID, nil
	}

	if stripped := stripClubAffixes(name); stripped != "" && stripped != name {
		found, ok, err = r.teams.GetByNameContains(ctx, leagueID, stripped)
		if err != nil {
			return "", err
		}
		if ok {
			return found.ID, nil
		}
	}

	fuzzyID, err := r.resolveFuzzy(ctx, leagueID, name)
	if err != nil {
		return "", err
	}
	if fuzzyID != "" {
		return fuzzyID, nil
	}

	r.logger.DebugContext(ctx, "team name did not resolve", "league_id", leagueID, "team_name", name)
	return "", nil
}

func (r *TeamResolver) resolveFuzzy(ctx context.Context, leagueID, name string) (string, error) {
	simplified := simplifyTeamName(name)
	if simplified == "" {
		return "", nil
	}

	candidates, err := r.teams.ListByLeague(ctx, leagueID)
	if err != nil {
		return "", err
	}
	for _, candidate := range candidates {
		other := simplifyTeamName(candidate.Name)
		if other == "" {
			continue
		}
		if strings.Contains(simplified, other) || strings.Contains(other, simplified) {
			return candidate.ID, nil
		}
	}

	return "", nil
}

func kboAliasCode(name string) string {
	for _, entry := range kboAliases {
		if name == entry.Alias {
			return entry.Code
		}
	}
	for _, entry := range kboAliases {
		if strings.Contains(name, entry.Alias) {
			return entry.Code
		}
	}
	return ""
}

func stripClubAffixes(name string) string {
	return strings.TrimSpace(clubAffixRegex.ReplaceAllString(name, ""))
}

// simplifyTeamName lowers a name to a comparison key: diacritics removed,
// everything but Latin letters, digits and Hangul syllables dropped. The text
// is recomposed after mark stripping so Hangul survives the round trip.
func simplifyTeamName(name string) string {
	decomposed := norm.NFD.String(name)
	stripped := make([]rune, 0, len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		stripped = append(stripped, r)
	}
	recomposed := norm.NFC.String(string(stripped))

	var b strings.Builder
	for _, r := range recomposed {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(unicode.ToLower(r))
		case r >= 0xAC00 && r <= 0xD7A3:
			b.WriteRune(r)
		}
	}
	return b.String()
}
