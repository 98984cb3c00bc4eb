package memory

import (
	"github.com/neuproject/sports-calendar/internal/domain/league"
	"github.com/neuproject/sports-calendar/internal/domain/team"
)

// SeedLeagues returns the static league catalog. Names must contain the
// hints the provider clients emit ("EPL", "Bundesliga", "LCK", "KBO", sport
// codes) or synced fixtures will not land anywhere.
func SeedLeagues() []league.League {
	return []league.League{
		{ID: "lg_epl", Name: "EPL", Category: league.CategorySoccer},
		{ID: "lg_bundesliga", Name: "Bundesliga", Category: league.CategorySoccer},
		{ID: "lg_laliga", Name: "La Liga", Category: league.CategorySoccer},
		{ID: "lg_seriea", Name: "Serie A", Category: league.CategorySoccer},
		{ID: "lg_lck", Name: "LCK", Category: league.CategoryEsports},
		{ID: "lg_kbo", Name: "KBO", Category: league.CategoryBaseball},
		{ID: "lg_nfl", Name: "NFL", Category: league.CategoryFootball},
		{ID: "lg_nhl", Name: "NHL", Category: league.CategoryHockey},
		{ID: "lg_nba", Name: "NBA", Category: league.CategoryBasketball},
		{ID: "lg_mlb", Name: "MLB", Category: league.CategoryBaseball},
		{ID: "lg_f1", Name: "F1", Category: league.CategoryMotorsport},
	}
}

// SeedTeams returns the followable team catalog with provider references
// where the provider hands out stable ids.
func SeedTeams() []team.Team {
	return []team.Team{
		// EPL
		{ID: "tm_arsenal", LeagueID: "lg_epl", Name: "Arsenal", ExternalAPIID: "FB_57", PrimaryColor: "#EF0107"},
		{ID: "tm_chelsea", LeagueID: "lg_epl", Name: "Chelsea", ExternalAPIID: "FB_61", PrimaryColor: "#034694"},
		{ID: "tm_liverpool", LeagueID: "lg_epl", Name: "Liverpool", ExternalAPIID: "FB_64", PrimaryColor: "#C8102E"},
		{ID: "tm_mancity", LeagueID: "lg_epl", Name: "Manchester City", ExternalAPIID: "FB_65", PrimaryColor: "#6CABDD"},
		{ID: "tm_manutd", LeagueID: "lg_epl", Name: "Manchester United", ExternalAPIID: "FB_66", PrimaryColor: "#DA291C"},
		{ID: "tm_tottenham", LeagueID: "lg_epl", Name: "Tottenham", ExternalAPIID: "FB_73", PrimaryColor: "#132257"},

		// Bundesliga
		{ID: "tm_bayern", LeagueID: "lg_bundesliga", Name: "Bayern München", ExternalAPIID: "FB_5", PrimaryColor: "#DC052D"},
		{ID: "tm_dortmund", LeagueID: "lg_bundesliga", Name: "Borussia Dortmund", ExternalAPIID: "FB_4", PrimaryColor: "#FDE100"},
		{ID: "tm_leverkusen", LeagueID: "lg_bundesliga", Name: "Bayer Leverkusen", ExternalAPIID: "FB_3", PrimaryColor: "#E32221"},
		{ID: "tm_leipzig", LeagueID: "lg_bundesliga", Name: "RB Leipzig", ExternalAPIID: "FB_721", PrimaryColor: "#DD0741"},

		// La Liga
		{ID: "tm_realmadrid", LeagueID: "lg_laliga", Name: "Real Madrid", ExternalAPIID: "FB_86", PrimaryColor: "#FEBE10"},
		{ID: "tm_barcelona", LeagueID: "lg_laliga", Name: "Barcelona", ExternalAPIID: "FB_81", PrimaryColor: "#A50044"},
		{ID: "tm_atletico", LeagueID: "lg_laliga", Name: "Atlético Madrid", ExternalAPIID: "FB_78", PrimaryColor: "#CB3524"},

		// Serie A
		{ID: "tm_juventus", LeagueID: "lg_seriea", Name: "Juventus", ExternalAPIID: "FB_109", PrimaryColor: "#000000"},
		{ID: "tm_inter", LeagueID: "lg_seriea", Name: "Inter", ExternalAPIID: "FB_108", PrimaryColor: "#0068A8"},
		{ID: "tm_milan", LeagueID: "lg_seriea", Name: "Milan", ExternalAPIID: "FB_98", PrimaryColor: "#FB090B"},
		{ID: "tm_napoli", LeagueID: "lg_seriea", Name: "Napoli", ExternalAPIID: "FB_113", PrimaryColor: "#12A0D7"},

		// LCK: pandascore opponent ids are not stable across splits, so
		// these resolve by name.
		{ID: "tm_t1", LeagueID: "lg_lck", Name: "T1", PrimaryColor: "#E2012D"},
		{ID: "tm_geng", LeagueID: "lg_lck", Name: "Gen.G", PrimaryColor: "#AA8B56"},
		{ID: "tm_hle", LeagueID: "lg_lck", Name: "Hanwha Life Esports", PrimaryColor: "#F07C22"},
		{ID: "tm_dplus", LeagueID: "lg_lck", Name: "Dplus KIA", PrimaryColor: "#0EA5A5"},
		{ID: "tm_ktrolster", LeagueID: "lg_lck", Name: "KT Rolster", PrimaryColor: "#FF0A07"},
		{ID: "tm_drx", LeagueID: "lg_lck", Name: "DRX", PrimaryColor: "#1203FF"},

		// KBO: the alias resolver turns broadcaster names into these codes.
		{ID: "tm_kbo_ss", LeagueID: "lg_kbo", Name: "삼성 라이온즈", ExternalAPIID: "KBO_SS", PrimaryColor: "#074CA1"},
		{ID: "tm_kbo_nc", LeagueID: "lg_kbo", Name: "NC 다이노스", ExternalAPIID: "KBO_NC", PrimaryColor: "#315288"},
		{ID: "tm_kbo_lg", LeagueID: "lg_kbo", Name: "LG 트윈스", ExternalAPIID: "KBO_LG", PrimaryColor: "#C30452"},
		{ID: "tm_kbo_kt", LeagueID: "lg_kbo", Name: "KT 위즈", ExternalAPIID: "KBO_KT", PrimaryColor: "#000000"},
		{ID: "tm_kbo_sk", LeagueID: "lg_kbo", Name: "SSG 랜더스", ExternalAPIID: "KBO_SK", PrimaryColor: "#CE0E2D"},
		{ID: "tm_kbo_wo", LeagueID: "lg_kbo", Name: "키움 히어로즈", ExternalAPIID: "KBO_WO", PrimaryColor: "#570514"},
		{ID: "tm_kbo_hh", LeagueID: "lg_kbo", Name: "한화 이글스", ExternalAPIID: "KBO_HH", PrimaryColor: "#FF6600"},
		{ID: "tm_kbo_lt", LeagueID: "lg_kbo", Name: "롯데 자이언츠", ExternalAPIID: "KBO_LT", PrimaryColor: "#041E42"},
		{ID: "tm_kbo_ob", LeagueID: "lg_kbo", Name: "두산 베어스", ExternalAPIID: "KBO_OB", PrimaryColor: "#131230"},
		{ID: "tm_kbo_ht", LeagueID: "lg_kbo", Name: "KIA 타이거즈", ExternalAPIID: "KBO_HT", PrimaryColor: "#EA0029"},

		// NFL
		{ID: "tm_chiefs", LeagueID: "lg_nfl", Name: "Kansas City Chiefs", ExternalAPIID: "ESPN_NFL_12", PrimaryColor: "#E31837"},
		{ID: "tm_eagles", LeagueID: "lg_nfl", Name: "Philadelphia Eagles", ExternalAPIID: "ESPN_NFL_21", PrimaryColor: "#004C54"},
		{ID: "tm_49ers", LeagueID: "lg_nfl", Name: "San Francisco 49ers", ExternalAPIID: "ESPN_NFL_25", PrimaryColor: "#AA0000"},
		{ID: "tm_bills", LeagueID: "lg_nfl", Name: "Buffalo Bills", ExternalAPIID: "ESPN_NFL_2", PrimaryColor: "#00338D"},

		// NHL
		{ID: "tm_oilers", LeagueID: "lg_nhl", Name: "Edmonton Oilers", ExternalAPIID: "ESPN_NHL_6", PrimaryColor: "#041E42"},
		{ID: "tm_panthers", LeagueID: "lg_nhl", Name: "Florida Panthers", ExternalAPIID: "ESPN_NHL_26", PrimaryColor: "#C8102E"},
		{ID: "tm_rangers", LeagueID: "lg_nhl", Name: "New York Rangers", ExternalAPIID: "ESPN_NHL_13", PrimaryColor: "#0038A8"},

		// NBA
		{ID: "tm_celtics", LeagueID: "lg_nba", Name: "Boston Celtics", ExternalAPIID: "ESPN_NBA_2", PrimaryColor: "#007A33"},
		{ID: "tm_lakers", LeagueID: "lg_nba", Name: "Los Angeles Lakers", ExternalAPIID: "ESPN_NBA_13", PrimaryColor: "#552583"},
		{ID: "tm_warriors", LeagueID: "lg_nba", Name: "Golden State Warriors", ExternalAPIID: "ESPN_NBA_9", PrimaryColor: "#1D428A"},
		{ID: "tm_nuggets", LeagueID: "lg_nba", Name: "Denver Nuggets", ExternalAPIID: "ESPN_NBA_7", PrimaryColor: "#0E2240"},

		// MLB
		{ID: "tm_dodgers", LeagueID: "lg_mlb", Name: "Los Angeles Dodgers", ExternalAPIID: "ESPN_MLB_19", PrimaryColor: "#005A9C"},
		{ID: "tm_yankees", LeagueID: "lg_mlb", Name: "New York Yankees", ExternalAPIID: "ESPN_MLB_10", PrimaryColor: "#003087"},
		{ID: "tm_braves", LeagueID: "lg_mlb", Name: "Atlanta Braves", ExternalAPIID: "ESPN_MLB_15", PrimaryColor: "#CE1141"},

		// F1 constructors: race rows carry no team link; following any of
		// these pulls the event rows for the league into the calendar.
		{ID: "tm_redbull", LeagueID: "lg_f1", Name: "Red Bull Racing", PrimaryColor: "#3671C6"},
		{ID: "tm_ferrari", LeagueID: "lg_f1", Name: "Ferrari", PrimaryColor: "#E8002D"},
		{ID: "tm_mercedes", LeagueID: "lg_f1", Name: "Mercedes", PrimaryColor: "#27F4D2"},
		{ID: "tm_mclaren", LeagueID: "lg_f1", Name: "McLaren", PrimaryColor: "#FF8000"},
	}
}
