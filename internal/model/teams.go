package model

// teamFullNames maps franchise abbreviations to the full names used in the
// source data's opposition column. The bowling side is recorded abbreviated,
// the batting side in full, so team queries need both forms.
var teamFullNames = map[string]string{
	"CSK":  "Chennai Super Kings",
	"RCB":  "Royal Chal Bengaluru",
	"PBKS": "Punjab Kings",
	"DC":   "Delhi Capitals",
	"SRH":  "Sunrisers Hyderabad",
	"KKR":  "Kolkata Knight Riders",
	"LSG":  "Lucknow Super Giants",
	"RR":   "Rajasthan Royals",
	"MI":   "Mumbai Indians",
	"GT":   "Gujarat Titans",
}

var teamAbbrevs = func() map[string]string {
	m := make(map[string]string, len(teamFullNames))
	for abbrev, full := range teamFullNames {
		m[full] = abbrev
	}
	return m
}()

// TeamFullName resolves a team name (either form) to the full form.
// Unknown names pass through unchanged.
func TeamFullName(name string) string {
	if full, ok := teamFullNames[name]; ok {
		return full
	}
	return name
}

// TeamAbbrev resolves a team name (either form) to the abbreviated form.
// Unknown names pass through unchanged.
func TeamAbbrev(name string) string {
	if abbrev, ok := teamAbbrevs[name]; ok {
		return abbrev
	}
	return name
}
