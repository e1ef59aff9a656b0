package normalize

// Abbreviation, transliteration, and alias tables for Indian address
// text. Keys are matched as whole words, longest first, with an
// optional trailing period.

// EnglishAbbreviations maps common English shorthand to its expansion.
var EnglishAbbreviations = map[string]string{
	// Directional
	"n":  "north",
	"s":  "south",
	"e":  "east",
	"w":  "west",
	"ne": "northeast",
	"nw": "northwest",
	"se": "southeast",
	"sw": "southwest",

	// Road types
	"rd":   "road",
	"st":   "street",
	"ln":   "lane",
	"ave":  "avenue",
	"blvd": "boulevard",
	"hwy":  "highway",
	"nh":   "national highway",
	"sh":   "state highway",

	// Building types
	"bldg": "building",
	"blk":  "block",
	"flr":  "floor",
	"fl":   "floor",
	"apt":  "apartment",
	"appt": "apartment",
	"flt":  "flat",
	"hse":  "house",
	"hno":  "house number",
	"h.no": "house number",

	// Positional
	"nr":   "near",
	"opp":  "opposite",
	"adj":  "adjacent",
	"bhnd": "behind",
	"b/h":  "behind",
	"bh":   "behind",
	"nxt":  "next to",

	// Areas
	"sec":    "sector",
	"ph":     "phase",
	"extn":   "extension",
	"ext":    "extension",
	"plt":    "plot",
	"dist":   "district",
	"div":    "division",
	"tq":     "taluk",
	"mandal": "mandal",

	// Post-related
	"po":  "post office",
	"p.o": "post office",
	"ps":  "police station",
	"p.s": "police station",
	"pin": "pincode",

	// Common shortcuts
	"mkt":  "market",
	"stn":  "station",
	"rly":  "railway",
	"hosp": "hospital",
	"govt": "government",
	"pvt":  "private",
	"ltd":  "limited",
	"ind":  "industrial",
	"indl": "industrial",
	"comm": "commercial",
	"res":  "residential",
	"soc":  "society",
	"chs":  "cooperative housing society",
	"chsl": "cooperative housing society limited",
}

// Transliterations maps Hindi and regional terms found in addresses to
// their English equivalents.
var Transliterations = map[string]string{
	// Street/Lane types
	"gali":  "lane",
	"gully": "lane",
	"marg":  "road",
	"path":  "road",
	"sadak": "road",
	"rasta": "road",

	// Area types
	"mohalla": "locality",
	"mohala":  "locality",
	"para":    "locality",
	"nagar":   "colony",
	"puram":   "colony",
	"puri":    "colony",
	"wadi":    "colony",
	"wada":    "colony",
	"peth":    "area",
	"pet":     "area",
	"bagh":    "garden area",
	"vihar":   "residential area",
	"kunj":    "residential area",

	// Landmarks
	"chowk":  "square",
	"chawk":  "square",
	"chauk":  "square",
	"tiraha": "three-way junction",
	"morh":   "turn",
	"mod":    "turn",
	"pul":    "bridge",
	"pull":   "bridge",
	"maidan": "ground",
	"kund":   "pond area",
	"talaab": "lake area",
	"talab":  "lake area",

	// Building types
	"bhavan": "building",
	"bhawan": "building",
	"sadan":  "building",
	"ghar":   "house",
	"kothi":  "bungalow",
	"haveli": "mansion",
	"dukan":  "shop",

	// Religious
	"mandir":    "temple",
	"masjid":    "mosque",
	"gurudwara": "gurudwara",
	"dargah":    "dargah",

	// Commercial
	"bazaar": "market",
	"bazar":  "market",
	"mandi":  "market",
	"haat":   "market",

	// Directions (Hindi)
	"uttar":   "north",
	"dakshin": "south",
	"purv":    "east",
	"paschim": "west",
}

// CityAliases maps former and informal city names to current official
// names.
var CityAliases = map[string]string{
	"bombay":      "mumbai",
	"madras":      "chennai",
	"calcutta":    "kolkata",
	"bangalore":   "bengaluru",
	"trivandrum":  "thiruvananthapuram",
	"baroda":      "vadodara",
	"cochin":      "kochi",
	"poona":       "pune",
	"shimoga":     "shivamogga",
	"belgaum":     "belagavi",
	"mysore":      "mysuru",
	"mangalore":   "mangaluru",
	"vizag":       "visakhapatnam",
	"pondicherry": "puducherry",
	"banaras":     "varanasi",
	"benares":     "varanasi",
	"allahabad":   "prayagraj",
	"gurgaon":     "gurugram",
}

// StateInfo describes one state for detection purposes.
type StateInfo struct {
	Name    string
	Aliases []string
	Capital string
}

// IndianStates maps state codes to names and common aliases.
var IndianStates = map[string]StateInfo{
	"MH": {Name: "Maharashtra", Aliases: []string{"mh", "maha", "maharashtra"}, Capital: "Mumbai"},
	"DL": {Name: "Delhi", Aliases: []string{"dl", "delhi", "new delhi", "ncr"}, Capital: "New Delhi"},
	"KA": {Name: "Karnataka", Aliases: []string{"ka", "karnataka", "ktk"}, Capital: "Bengaluru"},
	"TN": {Name: "Tamil Nadu", Aliases: []string{"tn", "tamilnadu", "tamil nadu"}, Capital: "Chennai"},
	"UP": {Name: "Uttar Pradesh", Aliases: []string{"up", "uttar pradesh"}, Capital: "Lucknow"},
	"GJ": {Name: "Gujarat", Aliases: []string{"gj", "gujarat", "guj"}, Capital: "Gandhinagar"},
	"RJ": {Name: "Rajasthan", Aliases: []string{"rj", "rajasthan", "raj"}, Capital: "Jaipur"},
	"WB": {Name: "West Bengal", Aliases: []string{"wb", "west bengal", "bengal"}, Capital: "Kolkata"},
	"AP": {Name: "Andhra Pradesh", Aliases: []string{"ap", "andhra", "andhra pradesh"}, Capital: "Amaravati"},
	"TS": {Name: "Telangana", Aliases: []string{"ts", "telangana", "tg"}, Capital: "Hyderabad"},
	"KL": {Name: "Kerala", Aliases: []string{"kl", "kerala"}, Capital: "Thiruvananthapuram"},
	"MP": {Name: "Madhya Pradesh", Aliases: []string{"mp", "madhya pradesh"}, Capital: "Bhopal"},
	"BR": {Name: "Bihar", Aliases: []string{"br", "bihar"}, Capital: "Patna"},
	"PB": {Name: "Punjab", Aliases: []string{"pb", "punjab"}, Capital: "Chandigarh"},
	"HR": {Name: "Haryana", Aliases: []string{"hr", "haryana"}, Capital: "Chandigarh"},
	"OR": {Name: "Odisha", Aliases: []string{"or", "odisha", "orissa"}, Capital: "Bhubaneswar"},
	"AS": {Name: "Assam", Aliases: []string{"as", "assam"}, Capital: "Dispur"},
	"JH": {Name: "Jharkhand", Aliases: []string{"jh", "jharkhand"}, Capital: "Ranchi"},
	"CG": {Name: "Chhattisgarh", Aliases: []string{"cg", "chhattisgarh"}, Capital: "Raipur"},
	"UK": {Name: "Uttarakhand", Aliases: []string{"uk", "uttarakhand", "uttaranchal"}, Capital: "Dehradun"},
	"HP": {Name: "Himachal Pradesh", Aliases: []string{"hp", "himachal", "himachal pradesh"}, Capital: "Shimla"},
	"GA": {Name: "Goa", Aliases: []string{"ga", "goa"}, Capital: "Panaji"},
}

// MajorCities lists cities detected during component extraction, in
// lowercase canonical form. Multi-word names must come before their
// substrings would match elsewhere, so "navi mumbai" precedes "mumbai".
var MajorCities = []string{
	"navi mumbai", "mumbai", "delhi", "bengaluru", "chennai", "kolkata",
	"hyderabad", "pune", "ahmedabad", "surat", "jaipur",
	"lucknow", "kanpur", "nagpur", "indore", "thane",
	"bhopal", "visakhapatnam", "patna", "vadodara", "ghaziabad",
	"ludhiana", "agra", "nashik", "faridabad", "meerut",
	"rajkot", "varanasi", "srinagar", "aurangabad", "dhanbad",
	"amritsar", "noida", "gurugram", "guwahati",
}

// SpellingDictionary holds correctly spelled address vocabulary used
// as the fuzzy correction target set.
var SpellingDictionary = []string{
	"road", "street", "lane", "nagar", "colony", "market", "hospital",
	"temple", "mosque", "church", "school", "college", "station",
	"railway", "metro", "airport", "bridge", "flyover", "signal",
	"square", "circle", "garden", "park", "building", "apartment",
	"floor", "block", "sector", "phase", "society", "complex",
	"tower", "plaza", "mall", "bazaar", "chowk", "crossing",
	"junction", "opposite", "near", "behind", "beside", "adjacent",
	"north", "south", "east", "west", "main", "old", "new",
	"first", "second", "third", "fourth", "fifth",
	"municipal", "corporation", "office", "court", "police",
	"post", "bank", "hotel", "lodge", "restaurant", "shop",
	"store", "showroom", "petrol", "pump", "bus", "stand", "stop",
}

// MisspellingMap maps frequent address misspellings directly to the
// correct form, checked before any fuzzy correction.
var MisspellingMap = map[string]string{
	"raod":     "road",
	"stret":    "street",
	"streat":   "street",
	"lain":     "lane",
	"naagr":    "nagar",
	"nagaar":   "nagar",
	"colny":    "colony",
	"colonny":  "colony",
	"markt":    "market",
	"hosptal":  "hospital",
	"hospitl":  "hospital",
	"templ":    "temple",
	"templa":   "temple",
	"scool":    "school",
	"schol":    "school",
	"staion":   "station",
	"staton":   "station",
	"railwy":   "railway",
	"bridg":    "bridge",
	"sqare":    "square",
	"squar":    "square",
	"gardne":   "garden",
	"gardn":    "garden",
	"bildng":   "building",
	"bilding":  "building",
	"apartmnt": "apartment",
	"socity":   "society",
	"opposit":  "opposite",
	"opsite":   "opposite",
	"behnd":    "behind",
	"behid":    "behind",
	"nrth":     "north",
	"soth":     "south",
	"esat":     "east",
	"wset":     "west",
}
