package country

// canonicalISO3 is the vocabulary of present-day country names the normalizer
// may emit, keyed to their ISO 3166-1 alpha-3 codes. Names are common English
// short names; map renderers join on the ISO code, not the name.
//
//nolint:gochecknoglobals // Static lookup table
var canonicalISO3 = map[string]string{
	"Afghanistan": "AFG", "Albania": "ALB", "Algeria": "DZA", "Angola": "AGO",
	"Argentina": "ARG", "Armenia": "ARM", "Australia": "AUS", "Austria": "AUT",
	"Azerbaijan": "AZE", "Bahamas": "BHS", "Bangladesh": "BGD", "Barbados": "BRB",
	"Belarus": "BLR", "Belgium": "BEL", "Belize": "BLZ", "Benin": "BEN",
	"Bhutan": "BTN", "Bolivia": "BOL", "Bosnia and Herzegovina": "BIH", "Botswana": "BWA",
	"Brazil": "BRA", "Brunei": "BRN", "Bulgaria": "BGR", "Burkina Faso": "BFA",
	"Burundi": "BDI", "Cambodia": "KHM", "Cameroon": "CMR", "Canada": "CAN",
	"Central African Republic": "CAF", "Chad": "TCD", "Chile": "CHL", "China": "CHN",
	"Colombia": "COL", "Costa Rica": "CRI", "Croatia": "HRV", "Cuba": "CUB",
	"Cyprus": "CYP", "Czech Republic": "CZE", "Democratic Republic of the Congo": "COD", "Denmark": "DNK",
	"Dominican Republic": "DOM", "Ecuador": "ECU", "Egypt": "EGY", "El Salvador": "SLV",
	"Eritrea": "ERI", "Estonia": "EST", "Ethiopia": "ETH", "Fiji": "FJI",
	"Finland": "FIN", "France": "FRA", "Gabon": "GAB", "Gambia": "GMB",
	"Georgia": "GEO", "Germany": "DEU", "Ghana": "GHA", "Greece": "GRC",
	"Guatemala": "GTM", "Guinea": "GIN", "Guyana": "GUY", "Haiti": "HTI",
	"Honduras": "HND", "Hungary": "HUN", "Iceland": "ISL", "India": "IND",
	"Indonesia": "IDN", "Iran": "IRN", "Iraq": "IRQ", "Ireland": "IRL",
	"Israel": "ISR", "Italy": "ITA", "Ivory Coast": "CIV", "Jamaica": "JAM",
	"Japan": "JPN", "Jordan": "JOR", "Kazakhstan": "KAZ", "Kenya": "KEN",
	"Kosovo": "XKX", "Kuwait": "KWT", "Kyrgyzstan": "KGZ", "Laos": "LAO",
	"Latvia": "LVA", "Lebanon": "LBN", "Lesotho": "LSO", "Liberia": "LBR",
	"Libya": "LBY", "Lithuania": "LTU", "Luxembourg": "LUX", "Madagascar": "MDG",
	"Malawi": "MWI", "Malaysia": "MYS", "Mali": "MLI", "Malta": "MLT",
	"Mauritania": "MRT", "Mauritius": "MUS", "Mexico": "MEX", "Moldova": "MDA",
	"Monaco": "MCO", "Mongolia": "MNG", "Montenegro": "MNE", "Morocco": "MAR",
	"Mozambique": "MOZ", "Myanmar": "MMR", "Namibia": "NAM", "Nepal": "NPL",
	"Netherlands": "NLD", "New Zealand": "NZL", "Nicaragua": "NIC", "Niger": "NER",
	"Nigeria": "NGA", "North Korea": "PRK", "North Macedonia": "MKD", "Norway": "NOR",
	"Oman": "OMN", "Pakistan": "PAK", "Palestine": "PSE", "Panama": "PAN",
	"Papua New Guinea": "PNG", "Paraguay": "PRY", "Peru": "PER", "Philippines": "PHL",
	"Poland": "POL", "Portugal": "PRT", "Qatar": "QAT", "Republic of the Congo": "COG",
	"Romania": "ROU", "Russia": "RUS", "Rwanda": "RWA", "Saint Lucia": "LCA",
	"Saudi Arabia": "SAU", "Senegal": "SEN", "Serbia": "SRB", "Sierra Leone": "SLE",
	"Singapore": "SGP", "Slovakia": "SVK", "Slovenia": "SVN", "Somalia": "SOM",
	"South Africa": "ZAF", "South Korea": "KOR", "South Sudan": "SSD", "Spain": "ESP",
	"Sri Lanka": "LKA", "Sudan": "SDN", "Suriname": "SUR", "Sweden": "SWE",
	"Switzerland": "CHE", "Syria": "SYR", "Taiwan": "TWN", "Tajikistan": "TJK",
	"Tanzania": "TZA", "Thailand": "THA", "Togo": "TGO", "Trinidad and Tobago": "TTO",
	"Tunisia": "TUN", "Turkey": "TUR", "Turkmenistan": "TKM", "Uganda": "UGA",
	"Ukraine": "UKR", "United Arab Emirates": "ARE", "United Kingdom": "GBR", "United States of America": "USA",
	"Uruguay": "URY", "Uzbekistan": "UZB", "Venezuela": "VEN", "Vietnam": "VNM",
	"Yemen": "YEM", "Zambia": "ZMB", "Zimbabwe": "ZWE",
}

// IsCanonical reports whether name is part of the canonical vocabulary.
func IsCanonical(name string) bool {
	_, ok := canonicalISO3[name]
	return ok
}

// ISO3 returns the ISO 3166-1 alpha-3 code for a canonical country name.
func ISO3(name string) (string, bool) {
	code, ok := canonicalISO3[name]
	return code, ok
}

// CanonicalNames returns the canonical vocabulary in no particular order.
func CanonicalNames() []string {
	out := make([]string, 0, len(canonicalISO3))
	for name := range canonicalISO3 {
		out = append(out, name)
	}
	return out
}
