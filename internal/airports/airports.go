package airports

import "strings"

// City is one airport entry with its IATA code.
type City struct {
	Name     string `json:"name"`
	IATA     string `json:"iata"`
	FullName string `json:"full_name"`
	Airport  string `json:"airport"`
	State    string `json:"state"`
}

var nigerianCities = []City{
	{"Lagos", "LOS", "Lagos (LOS)", "Murtala Muhammed International Airport", "Lagos State"},
	{"Abuja", "ABV", "Abuja (ABV)", "Nnamdi Azikiwe International Airport", "Federal Capital Territory"},
	{"Port Harcourt", "PHC", "Port Harcourt (PHC)", "Port Harcourt International Airport", "Rivers State"},
	{"Owerri", "QOW", "Owerri (QOW)", "Sam Mbakwe Airport", "Imo State"},
	{"Enugu", "ENU", "Enugu (ENU)", "Akanu Ibiam International Airport", "Enugu State"},
	{"Asaba", "ABB", "Asaba (ABB)", "Asaba International Airport", "Delta State"},
	{"Kano", "KAN", "Kano (KAN)", "Mallam Aminu Kano International Airport", "Kano State"},
	{"Calabar", "CBQ", "Calabar (CBQ)", "Margaret Ekpo International Airport", "Cross River State"},
}

func NigerianCities() []City {
	out := make([]City, len(nigerianCities))
	copy(out, nigerianCities)
	return out
}

func IsNigerian(code string) bool {
	code = strings.ToUpper(code)
	for _, c := range nigerianCities {
		if c.IATA == code {
			return true
		}
	}
	return false
}

// ByIATA looks up a Nigerian city by airport code.
func ByIATA(code string) (City, bool) {
	code = strings.ToUpper(code)
	for _, c := range nigerianCities {
		if c.IATA == code {
			return c, true
		}
	}
	return City{}, false
}

// Search matches cities by name, code, airport or state. Keywords
// shorter than two characters return nothing.
func Search(keyword string) []City {
	if len(keyword) < 2 {
		return nil
	}
	term := strings.ToLower(keyword)

	var results []City
	for _, c := range nigerianCities {
		if strings.Contains(strings.ToLower(c.Name), term) ||
			strings.Contains(strings.ToLower(c.IATA), term) ||
			strings.Contains(strings.ToLower(c.FullName), term) ||
			strings.Contains(strings.ToLower(c.Airport), term) ||
			strings.Contains(strings.ToLower(c.State), term) {
			results = append(results, c)
		}
	}
	return results
}

// ExtractCode pulls the IATA code out of a "Lagos (LOS)" style label;
// bare codes pass through unchanged.
func ExtractCode(location string) string {
	open := strings.LastIndex(location, "(")
	close := strings.LastIndex(location, ")")
	if open >= 0 && close > open+1 {
		code := location[open+1 : close]
		if len(code) == 3 {
			return strings.ToUpper(code)
		}
	}
	return strings.ToUpper(strings.TrimSpace(location))
}

// PreferSkyscanner reports whether a route touches Nigeria, where
// Skyscanner historically had better coverage than Amadeus.
func PreferSkyscanner(origin, destination string) bool {
	return IsNigerian(origin) || IsNigerian(destination)
}
