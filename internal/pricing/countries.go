package pricing

// East African Community member states.
var eacCountries = map[string]struct{}{
	"BI": {}, // Burundi
	"RW": {}, // Rwanda
	"TZ": {}, // Tanzania
	"UG": {}, // Uganda
	"KE": {}, // Kenya
	"SS": {}, // South Sudan
}

var africanCountries = map[string]struct{}{
	"DZ": {}, "AO": {}, "BJ": {}, "BW": {}, "BF": {}, "BI": {},
	"CV": {}, "CM": {}, "CF": {}, "TD": {}, "KM": {}, "CD": {},
	"CG": {}, "CI": {}, "DJ": {}, "EG": {}, "GQ": {}, "ER": {},
	"SZ": {}, "ET": {}, "GA": {}, "GM": {}, "GH": {}, "GN": {},
	"GW": {}, "KE": {}, "LS": {}, "LR": {}, "LY": {}, "MG": {},
	"MW": {}, "ML": {}, "MR": {}, "MU": {}, "MA": {}, "MZ": {},
	"NA": {}, "NE": {}, "NG": {}, "RW": {}, "ST": {}, "SN": {},
	"SC": {}, "SL": {}, "SO": {}, "ZA": {}, "SS": {}, "SD": {},
	"TZ": {}, "TG": {}, "TN": {}, "UG": {}, "ZM": {}, "ZW": {},
}

// InEAC reports whether code is an EAC member. Matching is exact and
// case-sensitive.
func InEAC(code string) bool {
	_, ok := eacCountries[code]
	return ok
}

// InAfrica reports whether code is an African country, EAC included.
func InAfrica(code string) bool {
	_, ok := africanCountries[code]
	return ok
}
