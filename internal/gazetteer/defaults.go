package gazetteer

// DefaultLandmarks is the built-in seed set used when no landmarks
// file or database is configured. Coordinates are verified storefront
// or gate positions, not parcel centroids.
var DefaultLandmarks = []Landmark{
	// Indore
	{Name: "Hanuman Mandir", Aliases: []string{"bajrang mandir"}, Category: "religious", City: "indore", Lat: 22.7515, Lng: 75.8930, Pincode: "452010"},
	{Name: "Rajwada Palace", Aliases: []string{"rajwada"}, Category: "monument", City: "indore", Lat: 22.7196, Lng: 75.8577, Pincode: "452002"},
	{Name: "Sharma Tea Stall", Aliases: []string{"sharma chai"}, Category: "commercial", City: "indore", Lat: 22.7230, Lng: 75.8700, Pincode: "452001"},
	{Name: "Central Mall", Category: "commercial", City: "indore", Lat: 22.7180, Lng: 75.8550, Pincode: "452001"},
	{Name: "Treasure Island Mall", Aliases: []string{"ti mall"}, Category: "commercial", City: "indore", Lat: 22.7220, Lng: 75.8780, Pincode: "452001"},
	{Name: "Lalbagh Palace", Category: "monument", City: "indore", Lat: 22.7127, Lng: 75.8486, Pincode: "452006"},
	{Name: "Sarafa Bazaar", Aliases: []string{"sarafa market"}, Category: "commercial", City: "indore", Lat: 22.7172, Lng: 75.8573, Pincode: "452002"},
	{Name: "Khajrana Ganesh Temple", Aliases: []string{"khajrana mandir"}, Category: "religious", City: "indore", Lat: 22.7340, Lng: 75.9090, Pincode: "452016"},
	{Name: "Apollo DB Mall", Category: "commercial", City: "indore", Lat: 22.7530, Lng: 75.8890, Pincode: "452010"},
	{Name: "Annapurna Temple", Aliases: []string{"annapurna mandir"}, Category: "religious", City: "indore", Lat: 22.6980, Lng: 75.8700, Pincode: "452009"},
	{Name: "Gandhi Hall", Aliases: []string{"town hall", "clock tower"}, Category: "government", City: "indore", Lat: 22.7200, Lng: 75.8620, Pincode: "452007"},
	{Name: "Geeta Bhawan", Aliases: []string{"gita bhawan"}, Category: "religious", City: "indore", Lat: 22.7410, Lng: 75.8670, Pincode: "452001"},

	// Mumbai
	{Name: "Shiv Mandir", Aliases: []string{"shiva temple"}, Category: "religious", City: "mumbai", Lat: 19.1150, Lng: 72.8710, Pincode: "400069"},
	{Name: "Sai Baba Temple", Aliases: []string{"sai mandir"}, Category: "religious", City: "mumbai", Lat: 19.1090, Lng: 72.8650, Pincode: "400069"},
	{Name: "Andheri Metro Station", Aliases: []string{"andheri metro"}, Category: "transport", City: "mumbai", Lat: 19.1197, Lng: 72.8464, Pincode: "400058"},
	{Name: "Andheri Railway Station", Aliases: []string{"andheri station"}, Category: "transport", City: "mumbai", Lat: 19.1187, Lng: 72.8442, Pincode: "400058"},
	{Name: "Infiniti Mall", Aliases: []string{"infinity mall"}, Category: "commercial", City: "mumbai", Lat: 19.1410, Lng: 72.8340, Pincode: "400053"},
	{Name: "Cooper Hospital", Category: "health", City: "mumbai", Lat: 19.1050, Lng: 72.8370, Pincode: "400056"},
	{Name: "Siddhivinayak Temple", Category: "religious", City: "mumbai", Lat: 19.0170, Lng: 72.8300, Pincode: "400025"},
	{Name: "Gateway of India", Category: "monument", City: "mumbai", Lat: 18.9220, Lng: 72.8347, Pincode: "400001"},
	{Name: "Chhatrapati Shivaji Terminus", Aliases: []string{"cst", "vt station"}, Category: "transport", City: "mumbai", Lat: 18.9398, Lng: 72.8355, Pincode: "400001"},
	{Name: "Phoenix Marketcity", Aliases: []string{"phoenix mall"}, Category: "commercial", City: "mumbai", Lat: 19.0863, Lng: 72.8891, Pincode: "400070"},

	// Delhi
	{Name: "India Gate", Category: "monument", City: "delhi", Lat: 28.6129, Lng: 77.2295, Pincode: "110001"},
	{Name: "Red Fort", Aliases: []string{"lal qila"}, Category: "monument", City: "delhi", Lat: 28.6562, Lng: 77.2410, Pincode: "110006"},
	{Name: "Lotus Temple", Category: "religious", City: "delhi", Lat: 28.5535, Lng: 77.2588, Pincode: "110019"},
	{Name: "AIIMS Hospital", Aliases: []string{"aiims"}, Category: "health", City: "delhi", Lat: 28.5672, Lng: 77.2100, Pincode: "110029"},
	{Name: "Rajiv Chowk Metro Station", Aliases: []string{"rajiv chowk"}, Category: "transport", City: "delhi", Lat: 28.6328, Lng: 77.2197, Pincode: "110001"},
	{Name: "Select Citywalk Mall", Aliases: []string{"select citywalk"}, Category: "commercial", City: "delhi", Lat: 28.5286, Lng: 77.2195, Pincode: "110017"},

	// Bangalore
	{Name: "ISKCON Temple", Category: "religious", City: "bangalore", Lat: 13.0098, Lng: 77.5510, Pincode: "560010"},
	{Name: "Majestic Bus Stand", Aliases: []string{"majestic", "kempegowda bus station"}, Category: "transport", City: "bangalore", Lat: 12.9774, Lng: 77.5721, Pincode: "560009"},
	{Name: "Forum Mall Koramangala", Aliases: []string{"forum mall"}, Category: "commercial", City: "bangalore", Lat: 12.9347, Lng: 77.6113, Pincode: "560095"},
	{Name: "Manipal Hospital", Category: "health", City: "bangalore", Lat: 12.9592, Lng: 77.6488, Pincode: "560017"},

	// Hyderabad
	{Name: "Charminar", Category: "monument", City: "hyderabad", Lat: 17.3616, Lng: 78.4747, Pincode: "500002"},
	{Name: "Birla Mandir", Category: "religious", City: "hyderabad", Lat: 17.4062, Lng: 78.4691, Pincode: "500004"},

	// Pune
	{Name: "Dagdusheth Ganpati Temple", Aliases: []string{"dagdusheth mandir"}, Category: "religious", City: "pune", Lat: 18.5164, Lng: 73.8560, Pincode: "411002"},
	{Name: "Shaniwar Wada", Category: "monument", City: "pune", Lat: 18.5195, Lng: 73.8553, Pincode: "411030"},
}

// DefaultLocalityAliases maps informal locality spellings to their
// standardized names, keyed by lowercase city then lowercase variant.
var DefaultLocalityAliases = map[string]map[string]string{
	"indore": {
		"vn":                  "Vijay Nagar",
		"vijaynagar":          "Vijay Nagar",
		"mg rd":               "MG Road",
		"mahatma gandhi road": "MG Road",
		"rnt":                 "RNT Marg",
		"ring road":           "AB Road",
		"bypass":              "Bypass Road",
		"scheme 54":           "Scheme No. 54",
		"scheme54":            "Scheme No. 54",
		"scheme 78":           "Scheme No. 78",
		"bhanwar kuan":        "Bhanwarkuan",
		"bhanwarkua":          "Bhanwarkuan",
	},
	"mumbai": {
		"andheri e":    "Andheri East",
		"andheri w":    "Andheri West",
		"jb nagar":     "J B Nagar",
		"marol naka":   "Marol",
		"seven bungla": "Seven Bungalows",
	},
}
