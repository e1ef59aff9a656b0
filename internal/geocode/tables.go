package geocode

// Coord is a latitude/longitude pair in decimal degrees.
type Coord struct {
	Lat float64
	Lng float64
}

// MajorCityCoords holds rough city center coordinates for fallback
// geocoding.
var MajorCityCoords = map[string]Coord{
	"mumbai":             {19.0760, 72.8777},
	"delhi":              {28.6139, 77.2090},
	"new delhi":          {28.6139, 77.2090},
	"bengaluru":          {12.9716, 77.5946},
	"bangalore":          {12.9716, 77.5946},
	"chennai":            {13.0827, 80.2707},
	"kolkata":            {22.5726, 88.3639},
	"hyderabad":          {17.3850, 78.4867},
	"pune":               {18.5204, 73.8567},
	"ahmedabad":          {23.0225, 72.5714},
	"surat":              {21.1702, 72.8311},
	"jaipur":             {26.9124, 75.7873},
	"lucknow":            {26.8467, 80.9462},
	"kanpur":             {26.4499, 80.3319},
	"nagpur":             {21.1458, 79.0882},
	"indore":             {22.7196, 75.8577},
	"thane":              {19.2183, 72.9781},
	"bhopal":             {23.2599, 77.4126},
	"visakhapatnam":      {17.6868, 83.2185},
	"patna":              {25.5941, 85.1376},
	"vadodara":           {22.3072, 73.1812},
	"ghaziabad":          {28.6692, 77.4538},
	"ludhiana":           {30.9010, 75.8573},
	"agra":               {27.1767, 78.0081},
	"nashik":             {19.9975, 73.7898},
	"varanasi":           {25.3176, 82.9739},
	"chandigarh":         {30.7333, 76.7794},
	"gurugram":           {28.4595, 77.0266},
	"gurgaon":            {28.4595, 77.0266},
	"noida":              {28.5355, 77.3910},
	"coimbatore":         {11.0168, 76.9558},
	"kochi":              {9.9312, 76.2673},
	"thiruvananthapuram": {8.5241, 76.9366},
	"mysuru":             {12.2958, 76.6394},
	"mysore":             {12.2958, 76.6394},
	"mangaluru":          {12.9141, 74.8560},
	"mangalore":          {12.9141, 74.8560},
	"vijayawada":         {16.5062, 80.6480},
	"jodhpur":            {26.2389, 73.0243},
	"udaipur":            {24.5854, 73.7125},
	"amritsar":           {31.6340, 74.8723},
	"guwahati":           {26.1445, 91.7362},
	"bhubaneswar":        {20.2961, 85.8245},
	"ranchi":             {23.3441, 85.3096},
	"dehradun":           {30.3165, 78.0322},
	"shimla":             {31.1048, 77.1734},
}

// StateCentroids holds centroid coordinates keyed by state code.
var StateCentroids = map[string]Coord{
	"MH": {19.6633, 75.3003},
	"DL": {28.6139, 77.2090},
	"KA": {15.3173, 75.7139},
	"TN": {11.1271, 78.6569},
	"UP": {27.1303, 80.8597},
	"GJ": {22.2587, 71.1924},
	"RJ": {27.0238, 74.2179},
	"WB": {22.9868, 87.8550},
	"AP": {15.9129, 79.7400},
	"TS": {18.1124, 79.0193},
	"KL": {10.8505, 76.2711},
	"MP": {23.4733, 77.9479},
	"BR": {25.0961, 85.3131},
	"PB": {31.1471, 75.3412},
	"HR": {29.0588, 76.0856},
	"OR": {20.9517, 85.0985},
	"JH": {23.6102, 85.2799},
	"CG": {21.2787, 81.8661},
	"UK": {30.0668, 79.0193},
	"HP": {31.1048, 77.1734},
	"AS": {26.2006, 92.9376},
	"GA": {15.2993, 74.1240},
}

// DefaultPincodeCentroids is the built-in pincode centroid seed. A
// production deployment replaces this with a full centroid file via
// WithPincodeCentroids.
var DefaultPincodeCentroids = map[string]Coord{
	"400001": {18.9398, 72.8354},
	"400028": {19.0178, 72.8478},
	"400069": {19.1136, 72.8697},
	"110001": {28.6358, 77.2245},
	"110020": {28.5672, 77.2100},
	"560001": {12.9767, 77.5713},
	"560034": {12.9352, 77.6245},
	"600001": {13.0878, 80.2785},
	"500001": {17.3850, 78.4867},
	"700001": {22.5726, 88.3639},
	"411001": {18.5204, 73.8567},
}
