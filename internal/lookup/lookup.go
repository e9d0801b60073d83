// Package lookup holds the fixed vocabularies the field generators sample from.
package lookup

// LevelTypes name a floor within a building.
var LevelTypes = []string{
	"floor", "level", "storey", "basement", "ground floor", "mezzanine",
	"lower ground floor", "upper floor", "lobby", "podium",
}

// FlatTypes name a unit within a building.
var FlatTypes = []string{
	"flat", "apartment", "unit", "suite", "studio", "maisonette", "penthouse",
	"room", "office", "shop", "store", "workshop", "annex", "bedsit",
}

// Abbreviated is a word together with its common short form.
type Abbreviated struct {
	Full  string
	Short string
}

// StreetTypes are the thoroughfare types appended to UK street names.
var StreetTypes = []Abbreviated{
	{"Road", "Rd"},
	{"Street", "St"},
	{"Lane", "Ln"},
	{"Avenue", "Ave"},
	{"Drive", "Dr"},
	{"Close", "Cl"},
	{"Court", "Ct"},
	{"Place", "Pl"},
	{"Way", "Wy"},
	{"Crescent", "Cres"},
	{"Gardens", "Gdns"},
	{"Terrace", "Terr"},
	{"Grove", "Gr"},
	{"Square", "Sq"},
	{"Park", "Pk"},
	{"Hill", "Hl"},
	{"Mews", "Mws"},
	{"Row", "Rw"},
	{"Walk", "Wlk"},
	{"Parade", "Pde"},
}

// StreetSuffixes are the directional and positional qualifiers of a street.
var StreetSuffixes = []Abbreviated{
	{"North", "N"},
	{"South", "S"},
	{"East", "E"},
	{"West", "W"},
	{"Upper", "Upr"},
	{"Lower", "Lwr"},
	{"Central", "Ctrl"},
	{"Great", "Gt"},
	{"Little", "Lt"},
}

// Ordinal returns the English ordinal suffix for n, e.g. "st" for 1 and "th" for 11.
func Ordinal(n int) string {
	if n < 0 {
		n = -n
	}
	switch n % 100 {
	case 11, 12, 13:
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

// Letters returns the first n uppercase letters of the alphabet.
func Letters(n int) []string {
	if n > 26 {
		n = 26
	}
	out := make([]string, n)
	for i := range out {
		out[i] = string(rune('A' + i))
	}
	return out
}
