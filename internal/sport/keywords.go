package sport

import (
	"sort"
	"strings"
)

// Sport classification strings persisted on cards.
const (
	Baseball   = "Baseball"
	Basketball = "Basketball"
	Football   = "Football"
	Hockey     = "Hockey"
	Soccer     = "Soccer"
)

// keywordTable maps well-known league, team and player substrings to a
// sport. It is the preferred source: no external dependency, instantaneous.
var keywordTable = map[string]string{
	// Leagues
	"mlb": Baseball, "nba": Basketball, "nfl": Football, "nhl": Hockey,
	"wnba": Basketball, "mls": Soccer, "premier league": Soccer,
	"uefa": Soccer, "fifa": Soccer, "ufl": Football,

	// MLB teams
	"yankees": Baseball, "dodgers": Baseball, "braves": Baseball,
	"pirates": Baseball, "orioles": Baseball, "red sox": Baseball,
	"mets": Baseball, "cubs": Baseball, "padres": Baseball,
	"mariners": Baseball, "guardians": Baseball, "astros": Baseball,
	"phillies": Baseball, "royals": Baseball, "rays": Baseball,
	"marlins": Baseball, "brewers": Baseball, "diamondbacks": Baseball,
	"white sox": Baseball, "blue jays": Baseball,

	// NBA teams
	"lakers": Basketball, "celtics": Basketball, "warriors": Basketball,
	"knicks": Basketball, "bucks": Basketball, "suns": Basketball,
	"mavericks": Basketball, "nuggets": Basketball, "clippers": Basketball,
	"grizzlies": Basketball, "pelicans": Basketball, "thunder": Basketball,
	"spurs": Basketball, "raptors": Basketball, "cavaliers": Basketball,
	"timberwolves": Basketball, "76ers": Basketball,

	// NFL teams
	"chiefs": Football, "bills": Football, "bengals": Football,
	"ravens": Football, "steelers": Football, "texans": Football,
	"jaguars": Football, "broncos": Football, "chargers": Football,
	"cowboys": Football, "packers": Football, "vikings": Football,
	"seahawks": Football, "49ers": Football, "dolphins": Football,
	"patriots": Football, "buccaneers": Football, "commanders": Football,

	// NHL teams
	"maple leafs": Hockey, "canadiens": Hockey, "bruins": Hockey,
	"blackhawks": Hockey, "red wings": Hockey, "oilers": Hockey,
	"canucks": Hockey, "penguins": Hockey, "capitals": Hockey,
	"avalanche": Hockey, "golden knights": Hockey, "kraken": Hockey,
	"sabres": Hockey, "islanders": Hockey, "flyers": Hockey,
	"predators": Hockey, "blue jackets": Hockey,

	// Players sellers lead with often enough to shortcut the API
	"mike trout": Baseball, "shohei ohtani": Baseball,
	"aaron judge": Baseball, "paul skenes": Baseball, "babe ruth": Baseball,
	"mickey mantle": Baseball, "derek jeter": Baseball,
	"juan soto": Baseball, "ronald acuna": Baseball,
	"bobby witt": Baseball, "elly de la cruz": Baseball,
	"lebron james": Basketball, "michael jordan": Basketball,
	"kobe bryant": Basketball, "stephen curry": Basketball,
	"luka doncic": Basketball, "victor wembanyama": Basketball,
	"ja morant": Basketball, "giannis": Basketball,
	"anthony edwards": Basketball, "shai gilgeous-alexander": Basketball,
	"patrick mahomes": Football, "tom brady": Football,
	"josh allen": Football, "joe burrow": Football,
	"justin jefferson": Football, "caleb williams": Football,
	"jayden daniels": Football, "c.j. stroud": Football,
	"j.j. mccarthy": Football,
	"connor mcdavid": Hockey, "wayne gretzky": Hockey,
	"sidney crosby": Hockey, "connor bedard": Hockey,
	"auston matthews": Hockey,
	"lionel messi": Soccer, "cristiano ronaldo": Soccer,
	"kylian mbappe": Soccer,
}

// leagueToSport maps a league identifier from the player-search API to a
// sport classification.
var leagueToSport = map[string]string{
	"mlb":                             Baseball,
	"major league baseball":           Baseball,
	"nba":                             Basketball,
	"national basketball association": Basketball,
	"nfl":                             Football,
	"national football league":        Football,
	"nhl":                             Hockey,
	"national hockey league":          Hockey,
	"mls":                             Soccer,
	"english premier league":          Soccer,
	"la liga":                         Soccer,
	"serie a":                         Soccer,
	"bundesliga":                      Soccer,
	"ligue 1":                         Soccer,
}

// sorted keyword list, longest first, so lookups are deterministic no
// matter what overlapping keywords the table grows.
var orderedKeywords = func() []string {
	keys := make([]string, 0, len(keywordTable))
	for k := range keywordTable {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()

// FromKeywords resolves a sport from the title alone via the curated
// keyword table. Empty string means no hit.
func FromKeywords(title string) string {
	lower := strings.ToLower(title)
	for _, k := range orderedKeywords {
		if strings.Contains(lower, k) {
			return keywordTable[k]
		}
	}
	return ""
}

// SportForLeague maps an API league identifier to a sport classification.
func SportForLeague(league string) string {
	return leagueToSport[strings.ToLower(strings.TrimSpace(league))]
}
