package models

// TeamSeed is a team's identity used when a fresh ladder is created.
type TeamSeed struct {
	Name  string
	Emoji string
}

// DefaultTeams is the 18-team league in initial ladder order.
var DefaultTeams = []TeamSeed{
	{"Brisbane Lions", "🦁"},
	{"Gold Coast Suns", "☀️"},
	{"Sydney Swans", "🦢"},
	{"Hawthorn", "🦅"},
	{"Fremantle", "⚓"},
	{"Geelong", "🐱"},
	{"Adelaide", "🦔"},
	{"St Kilda", "⭐"},
	{"Western Bulldogs", "🐾"},
	{"Collingwood", "🎵"},
	{"GWS Giants", "🦊"},
	{"Carlton", "💙"},
	{"Port Adelaide", "⚡"},
	{"Melbourne", "🔴"},
	{"Essendon", "🔥"},
	{"North Melbourne", "🦘"},
	{"Richmond", "🐯"},
	{"West Coast", "🌊"},
}

// DefaultFixtures returns the season's schedule keyed by round. The map is
// rebuilt on every call so callers may mutate their copy freely.
func DefaultFixtures() map[string][]Fixture {
	return map[string][]Fixture{
		"1": {
			{"Sydney Swans", "Carlton"},
			{"Gold Coast Suns", "Geelong"},
			{"GWS Giants", "Hawthorn"},
			{"Brisbane Lions", "Western Bulldogs"},
			{"St Kilda", "Collingwood"},
		},
		"2": {
			{"Carlton", "Richmond"},
			{"Essendon", "Hawthorn"},
			{"Western Bulldogs", "GWS Giants"},
			{"Geelong", "Fremantle"},
			{"Sydney Swans", "Brisbane Lions"},
			{"Collingwood", "Adelaide"},
			{"North Melbourne", "Port Adelaide"},
			{"Melbourne", "St Kilda"},
			{"Gold Coast Suns", "West Coast"},
		},
		"3": {
			{"Hawthorn", "Sydney Swans"},
			{"Adelaide", "Western Bulldogs"},
			{"Richmond", "Gold Coast Suns"},
			{"GWS Giants", "St Kilda"},
			{"Fremantle", "Melbourne"},
			{"Port Adelaide", "Essendon"},
			{"West Coast", "North Melbourne"},
		},
		"4": {
			{"Geelong", "Adelaide"},
			{"Collingwood", "GWS Giants"},
			{"St Kilda", "Brisbane Lions"},
			{"Fremantle", "Richmond"},
			{"Essendon", "North Melbourne"},
			{"Port Adelaide", "West Coast"},
			{"Carlton", "Melbourne"},
		},
		"5": {
			{"Brisbane Lions", "Collingwood"},
			{"North Melbourne", "Carlton"},
			{"Adelaide", "Fremantle"},
			{"Richmond", "Port Adelaide"},
			{"West Coast", "Sydney Swans"},
			{"Melbourne", "Gold Coast Suns"},
			{"Western Bulldogs", "Essendon"},
			{"Hawthorn", "Geelong"},
		},
		"6": {
			{"Adelaide", "Carlton"},
			{"Collingwood", "Fremantle"},
			{"North Melbourne", "Brisbane Lions"},
			{"Essendon", "Melbourne"},
			{"Sydney Swans", "Gold Coast Suns"},
			{"Hawthorn", "Western Bulldogs"},
			{"Geelong", "West Coast"},
			{"GWS Giants", "Richmond"},
			{"Port Adelaide", "St Kilda"},
		},
		"7": {
			{"Carlton", "Collingwood"},
			{"Geelong", "Western Bulldogs"},
			{"Sydney Swans", "GWS Giants"},
			{"Gold Coast Suns", "Essendon"},
			{"Hawthorn", "Port Adelaide"},
			{"Adelaide", "St Kilda"},
			{"North Melbourne", "Richmond"},
			{"Melbourne", "Brisbane Lions"},
			{"West Coast", "Fremantle"},
		},
		"8": {
			{"Western Bulldogs", "Sydney Swans"},
			{"Richmond", "Melbourne"},
			{"Hawthorn", "Gold Coast Suns"},
			{"Essendon", "Collingwood"},
			{"Port Adelaide", "Geelong"},
			{"Fremantle", "Carlton"},
			{"St Kilda", "West Coast"},
			{"Brisbane Lions", "Adelaide"},
			{"GWS Giants", "North Melbourne"},
		},
		"9": {
			{"Collingwood", "Hawthorn"},
			{"Western Bulldogs", "Fremantle"},
			{"Adelaide", "Port Adelaide"},
			{"Essendon", "Brisbane Lions"},
			{"West Coast", "Richmond"},
			{"Geelong", "North Melbourne"},
			{"Carlton", "St Kilda"},
			{"Sydney Swans", "Melbourne"},
			{"Gold Coast Suns", "GWS Giants"},
		},
		"10": {
			{"Fremantle", "Hawthorn"},
			{"Brisbane Lions", "Carlton"},
			{"Port Adelaide", "Western Bulldogs"},
			{"North Melbourne", "Sydney Swans"},
			{"GWS Giants", "Essendon"},
			{"Gold Coast Suns", "St Kilda"},
			{"Geelong", "Collingwood"},
			{"Melbourne", "West Coast"},
			{"Richmond", "Adelaide"},
		},
	}
}
