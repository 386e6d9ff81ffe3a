package terms

// Static seed tables. The learning step layers observed variants on top of
// these; they are never mutated.

func seedSets() []SetEntry {
	return []SetEntry{
		// Bowman
		{Canonical: "Bowman Chrome Draft", Brand: "Bowman", Surfaces: []string{"Bowman Chrome Draft 1st"}},
		{Canonical: "Bowman Chrome Prospects", Brand: "Bowman"},
		{Canonical: "Bowman Chrome Sapphire", Brand: "Bowman"},
		{Canonical: "Bowman Chrome", Brand: "Bowman"},
		{Canonical: "Bowman Draft", Brand: "Bowman"},
		{Canonical: "Bowman Sterling", Brand: "Bowman"},
		{Canonical: "Bowman's Best", Brand: "Bowman", Surfaces: []string{"Bowmans Best"}},
		{Canonical: "Bowman Inception", Brand: "Bowman"},
		{Canonical: "Bowman University", Brand: "Bowman"},
		{Canonical: "Bowman", Brand: "Bowman"},

		// Topps
		{Canonical: "Topps Stadium Club Chrome", Brand: "Topps"},
		{Canonical: "Topps Stadium Club", Brand: "Topps", Surfaces: []string{"Stadium Club"}},
		{Canonical: "Topps Chrome Update", Brand: "Topps"},
		{Canonical: "Topps Chrome", Brand: "Topps"},
		{Canonical: "Topps Update", Brand: "Topps"},
		{Canonical: "Topps Heritage", Brand: "Topps"},
		{Canonical: "Topps Finest", Brand: "Topps", Surfaces: []string{"Finest"}},
		{Canonical: "Topps Archives", Brand: "Topps"},
		{Canonical: "Topps Gallery", Brand: "Topps"},
		{Canonical: "Topps Fire", Brand: "Topps"},
		{Canonical: "Topps Big League", Brand: "Topps"},
		{Canonical: "Topps Cosmic Chrome", Brand: "Topps"},
		{Canonical: "Topps", Brand: "Topps"},

		// Panini
		{Canonical: "Panini Prizm Draft Picks", Brand: "Panini"},
		{Canonical: "Panini National Treasures", Brand: "Panini", Surfaces: []string{"National Treasures"}},
		{Canonical: "Panini Donruss Optic", Brand: "Panini", Surfaces: []string{"Donruss Optic", "Optic"}},
		{Canonical: "Panini Donruss", Brand: "Panini", Surfaces: []string{"Donruss"}},
		{Canonical: "Panini Contenders", Brand: "Panini", Surfaces: []string{"Contenders"}},
		{Canonical: "Panini Immaculate", Brand: "Panini", Surfaces: []string{"Immaculate"}},
		{Canonical: "Panini Obsidian", Brand: "Panini", Surfaces: []string{"Obsidian"}},
		{Canonical: "Panini Chronicles", Brand: "Panini", Surfaces: []string{"Chronicles"}},
		{Canonical: "Panini Absolute", Brand: "Panini"},
		{Canonical: "Panini Phoenix", Brand: "Panini"},
		{Canonical: "Panini Select", Brand: "Panini", Surfaces: []string{"Select"}},
		{Canonical: "Panini Mosaic", Brand: "Panini", Surfaces: []string{"Mosaic"}},
		{Canonical: "Panini Prizm", Brand: "Panini"},
		{Canonical: "Panini Score", Brand: "Panini", Surfaces: []string{"Score Football"}},
		{Canonical: "Panini", Brand: "Panini"},

		// Upper Deck
		{Canonical: "Upper Deck Young Guns", Brand: "Upper Deck"},
		{Canonical: "Upper Deck Series 1", Brand: "Upper Deck"},
		{Canonical: "Upper Deck Series 2", Brand: "Upper Deck"},
		{Canonical: "SP Authentic", Brand: "Upper Deck"},
		{Canonical: "Upper Deck", Brand: "Upper Deck"},

		// Other manufacturers
		{Canonical: "Leaf Metal", Brand: "Leaf"},
		{Canonical: "Leaf", Brand: "Leaf"},
		{Canonical: "Donruss Elite", Brand: "Panini"},
		{Canonical: "Fleer", Brand: "Fleer"},
	}
}

func seedCardTypes() []string {
	return []string{
		"Base",
		// Finishes
		"Refractor", "X-Fractor", "Superfractor", "Prizm", "Wave", "Shimmer",
		"Mojo", "Holo", "Ice", "Cracked Ice", "Disco", "Hyper", "Velocity",
		"Scope", "Pulsar", "Lazer", "Atomic", "Reactive", "Genesis",
		"Fast Break", "No Huddle", "Stained Glass", "Color Blast", "Kaboom",
		"Downtown", "Lunar Glow", "Helmet Heroes", "Snakeskin", "Tie-Dye",
		"Zebra", "Tiger", "Dragon Scale", "Raywave", "Mini Diamond",
		// Colors
		"Gold", "Silver", "Red", "Blue", "Green", "Orange", "Purple", "Pink",
		"Black", "White", "Aqua", "Teal", "Emerald", "Ruby", "Sepia", "Camo",
		"Neon Green", "Rose Gold", "Sky Blue", "Navy",
		// Common compounds worth seeding outright
		"Gold Refractor", "Silver Prizm", "Silver Wave Prizm", "Red Wave",
		"Blue Refractor", "Green Refractor", "Purple Refractor",
	}
}

func seedTeams() []string {
	return []string{
		// MLB
		"Pirates", "Yankees", "Dodgers", "Braves", "Angels", "Orioles",
		"Red Sox", "Mets", "Cubs", "Padres", "Mariners", "Guardians",
		"Astros", "Rangers", "Phillies", "Royals", "Twins", "Rays",
		"Marlins", "Brewers", "Reds", "Tigers", "Nationals", "Rockies",
		"Diamondbacks", "White Sox", "Blue Jays", "Athletics", "Cardinals",
		// NBA
		"Lakers", "Celtics", "Warriors", "Bulls", "Knicks", "Nets", "Heat",
		"Bucks", "Suns", "Mavericks", "Nuggets", "Clippers", "Grizzlies",
		"Pelicans", "Thunder", "Spurs", "Kings", "Rockets", "Raptors",
		"Jazz", "Hawks", "Hornets", "Magic", "Pistons", "Pacers",
		"Cavaliers", "Timberwolves", "Trail Blazers", "Wizards", "76ers",
		// NFL
		"Chiefs", "Bills", "Bengals", "Ravens", "Steelers", "Browns",
		"Texans", "Colts", "Jaguars", "Titans", "Broncos", "Raiders",
		"Chargers", "Cowboys", "Eagles", "Commanders", "Packers", "Vikings",
		"Bears", "Lions", "Saints", "Buccaneers", "Falcons", "Panthers",
		"Seahawks", "49ers", "Rams", "Dolphins", "Patriots", "Jets",
		// NHL
		"Maple Leafs", "Canadiens", "Bruins", "Blackhawks", "Red Wings",
		"Oilers", "Flames", "Canucks", "Penguins", "Capitals", "Lightning",
		"Avalanche", "Golden Knights", "Kraken", "Sabres", "Senators",
		"Devils", "Islanders", "Flyers", "Predators", "Blues", "Wild",
		"Stars", "Ducks", "Sharks", "Coyotes", "Hurricanes", "Blue Jackets",
		// Cities and regions
		"New York", "Los Angeles", "Boston", "Chicago", "Dallas", "Denver",
		"Miami", "Atlanta", "Houston", "Philadelphia", "Phoenix", "Seattle",
		"Detroit", "Cleveland", "Pittsburgh", "Baltimore", "Toronto",
		"Milwaukee", "Minnesota", "Tampa Bay", "San Francisco", "San Diego",
		"Kansas City", "St Louis", "Oklahoma City", "New Orleans",
		"Las Vegas", "Washington", "Memphis", "Portland", "Sacramento",
		"Charlotte", "Orlando", "Indiana", "Utah", "Brooklyn",
		"Golden State", "Green Bay", "Buffalo", "Cincinnati", "Nashville",
		"Columbus", "Edmonton", "Calgary", "Vancouver", "Montreal",
		"Ottawa", "Winnipeg", "Anaheim", "Arizona", "Colorado", "Florida",
		"Texas", "California",
	}
}

func seedGrading() []string {
	return []string{
		"PSA 10", "PSA 9", "PSA 8", "PSA", "BGS", "SGC", "CGC", "CSG",
		"HGA", "Beckett", "Gem Mint", "Gem MT", "Gem", "Mint", "NM-MT",
		"Near Mint", "NM", "Pop", "Low Pop", "Graded", "Slab", "Slabbed",
		"Cert", "Pristine", "Black Label", "Perfect 10", "Grade",
	}
}

func seedMarketing() []string {
	return []string{
		// Flag words, stripped before name shapes run
		"Rookie Card", "Rookie", "RC", "Auto", "Autograph", "Autographed",
		"Signature", "On Card", "Sticker Auto", "1st", "Debut",
		"Young Guns",
		// Marketing noise
		"Premium", "Box Set", "Logo", "Patch", "Relic", "Jersey", "SSP",
		"SP", "Case Hit", "Invest", "Investment", "Hot", "Rare", "Sharp",
		"Centered", "High Grade", "MVP", "HOF", "Goat", "Lot", "Qty",
		"Card", "Trading Card", "Mystery Box", "Item", "Free Shipping",
		"Ships Fast", "Look", "Wow", "Beauty", "Prospect", "Prospects",
		"Draft", "Variation", "Parallel", "Insert", "Numbered", "Serial",
	}
}
