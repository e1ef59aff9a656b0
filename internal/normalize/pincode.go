package normalize

import (
	"regexp"
	"strings"
)

var (
	pincodeRe     = regexp.MustCompile(`\b[1-9]\d{5}\b`)
	pincodeSepRe  = regexp.MustCompile(`\b([1-9]\d{2})[\s\-]?(\d{3})\b`)
	pincodeJunkRe = regexp.MustCompile(`[\s\-]`)
)

// ValidPincode reports whether the string is a syntactically valid
// Indian pincode: six digits, first digit 1-9. Embedded spaces or
// hyphens are stripped before checking. Existence is not verified.
func ValidPincode(pincode string) bool {
	cleaned := pincodeJunkRe.ReplaceAllString(pincode, "")
	if len(cleaned) != 6 {
		return false
	}
	if cleaned[0] < '1' || cleaned[0] > '9' {
		return false
	}
	for i := 1; i < 6; i++ {
		if cleaned[i] < '0' || cleaned[i] > '9' {
			return false
		}
	}
	return true
}

// ExtractPincode returns the first valid pincode found in the text, or
// "" when none is present. Handles plain ("400069"), hyphenated
// ("400-069"), and labelled ("pin: 400069") forms.
func ExtractPincode(text string) string {
	if m := pincodeRe.FindString(text); m != "" && ValidPincode(m) {
		return m
	}
	if m := pincodeSepRe.FindStringSubmatch(text); m != nil {
		joined := m[1] + m[2]
		if ValidPincode(joined) {
			return joined
		}
	}
	return ""
}

// PincodeRegion returns the postal circle name for the pincode's first
// digit, or "" for an invalid pincode.
func PincodeRegion(pincode string) string {
	if !ValidPincode(pincode) {
		return ""
	}
	cleaned := pincodeJunkRe.ReplaceAllString(pincode, "")

	switch cleaned[0] {
	case '1':
		return "Northern"
	case '2':
		return "Uttar Pradesh"
	case '3':
		return "Western"
	case '4':
		return "Western-Central"
	case '5', '6':
		return "Southern"
	case '7', '8':
		return "Eastern"
	case '9':
		return "APO/FPO"
	}
	return ""
}

// RegionCities maps a pincode's first digit to the major cities served
// by that postal circle. Used for pincode/city consistency checks.
var RegionCities = map[byte][]string{
	'1': {"delhi", "chandigarh", "jaipur", "gurugram", "noida", "ludhiana", "amritsar", "srinagar"},
	'2': {"lucknow", "kanpur", "agra", "varanasi", "meerut", "ghaziabad"},
	'3': {"ahmedabad", "surat", "vadodara", "rajkot", "jaipur"},
	'4': {"mumbai", "pune", "nagpur", "thane", "nashik", "navi mumbai", "aurangabad", "bhopal", "indore"},
	'5': {"hyderabad", "bengaluru", "visakhapatnam"},
	'6': {"chennai", "kochi", "thiruvananthapuram", "coimbatore", "madurai"},
	'7': {"kolkata", "guwahati", "bhubaneswar"},
	'8': {"patna", "ranchi", "dhanbad"},
}

// PincodeCityConsistent reports whether the city plausibly belongs to
// the pincode's postal circle. Unknown cities or invalid pincodes
// return false.
func PincodeCityConsistent(pincode, city string) bool {
	if !ValidPincode(pincode) || city == "" {
		return false
	}
	cleaned := pincodeJunkRe.ReplaceAllString(pincode, "")

	cityLower := strings.ToLower(strings.TrimSpace(city))
	for _, c := range RegionCities[cleaned[0]] {
		if c == cityLower {
			return true
		}
	}
	return false
}
