package country

// aliases maps historical, colonial, constituent and colloquial nationality
// labels to one canonical present-day country. Keys are matched exactly and
// case-sensitively. Every value must be a canonical name and no key may be one.
//
//nolint:gochecknoglobals // Static lookup table
var aliases = map[string]string{
	// United Kingdom and its constituent and predecessor states
	"England":                                              "United Kingdom",
	"Scotland":                                             "United Kingdom",
	"Wales":                                                "United Kingdom",
	"Northern Ireland":                                     "United Kingdom",
	"Great Britain":                                        "United Kingdom",
	"Kingdom of Great Britain":                             "United Kingdom",
	"Kingdom of England":                                   "United Kingdom",
	"Kingdom of Scotland":                                  "United Kingdom",
	"Kingdom of Great Britain and Ireland":                 "United Kingdom",
	"United Kingdom of Great Britain and Ireland":          "United Kingdom",
	"United Kingdom of Great Britain and Northern Ireland": "United Kingdom",
	"UK":                                                   "United Kingdom",

	// United States
	"United States": "United States of America",
	"USA":           "United States of America",
	"U.S.":          "United States of America",
	"US":            "United States of America",
	"U.S.A.":        "United States of America",

	// Russia and the Soviet Union
	"Soviet Union":                                 "Russia",
	"USSR":                                         "Russia",
	"Russian Empire":                               "Russia",
	"Tsardom of Russia":                            "Russia",
	"Russian Soviet Federative Socialist Republic": "Russia",
	"Russian Federation":                           "Russia",
	"Ukrainian Soviet Socialist Republic":          "Ukraine",
	"Byelorussian Soviet Socialist Republic":       "Belarus",

	// Central Europe
	"Czechoslovakia":                 "Czech Republic",
	"Czechia":                        "Czech Republic",
	"German Empire":                  "Germany",
	"East Germany":                   "Germany",
	"West Germany":                   "Germany",
	"Weimar Republic":                "Germany",
	"Nazi Germany":                   "Germany",
	"Kingdom of Prussia":             "Germany",
	"Kingdom of Bavaria":             "Germany",
	"Kingdom of Saxony":              "Germany",
	"Kingdom of Württemberg":         "Germany",
	"Holy Roman Empire":              "Germany",
	"Austria-Hungary":                "Austria",
	"Austrian Empire":                "Austria",
	"Archduchy of Austria":           "Austria",
	"Kingdom of Hungary":             "Hungary",
	"Hungarian People's Republic":    "Hungary",
	"Polish People's Republic":       "Poland",
	"Second Polish Republic":         "Poland",
	"Congress Poland":                "Poland",
	"Kingdom of Poland":              "Poland",
	"Polish–Lithuanian Commonwealth": "Poland",

	// Balkans. Yugoslavia resolves to Serbia as the designated successor state.
	"Yugoslavia":                               "Serbia",
	"Kingdom of Yugoslavia":                    "Serbia",
	"Socialist Federal Republic of Yugoslavia": "Serbia",
	"Federal Republic of Yugoslavia":           "Serbia",
	"Serbia and Montenegro":                    "Serbia",
	"Kingdom of Serbia":                        "Serbia",
	"Kingdom of Greece":                        "Greece",
	"Kingdom of Romania":                       "Romania",
	"Socialist Republic of Romania":            "Romania",
	"Kingdom of Bulgaria":                      "Bulgaria",
	"People's Republic of Bulgaria":            "Bulgaria",
	"Ottoman Empire":                           "Turkey",
	"Republic of Turkey":                       "Turkey",
	"Türkiye":                                  "Turkey",

	// Western Europe
	"Republic of Ireland":         "Ireland",
	"Irish Free State":            "Ireland",
	"Kingdom of Ireland":          "Ireland",
	"Kingdom of the Netherlands":  "Netherlands",
	"Dutch Republic":              "Netherlands",
	"Kingdom of France":           "France",
	"French Third Republic":       "France",
	"First French Empire":         "France",
	"Second French Empire":        "France",
	"Kingdom of Italy":            "Italy",
	"Kingdom of Sardinia":         "Italy",
	"Kingdom of the Two Sicilies": "Italy",
	"Republic of Venice":          "Italy",
	"Papal States":                "Italy",
	"Kingdom of Portugal":         "Portugal",
	"Kingdom of Spain":            "Spain",
	"Spanish Empire":              "Spain",
	"Kingdom of Denmark":          "Denmark",
	"Denmark–Norway":              "Denmark",
	"Kingdom of Norway":           "Norway",
	"Sweden–Norway":               "Sweden",
	"Grand Duchy of Finland":      "Finland",

	// Asia
	"People's Republic of China":            "China",
	"Qing dynasty":                          "China",
	"Republic of China (1912–1949)":         "China",
	"Hong Kong":                             "China",
	"British Hong Kong":                     "China",
	"Republic of China":                     "Taiwan",
	"Empire of Japan":                       "Japan",
	"Republic of Korea":                     "South Korea",
	"Korean Empire":                         "South Korea",
	"Democratic People's Republic of Korea": "North Korea",
	"British Raj":                           "India",
	"Dominion of India":                     "India",
	"Dominion of Pakistan":                  "Pakistan",
	"Ceylon":                                "Sri Lanka",
	"Dominion of Ceylon":                    "Sri Lanka",
	"Burma":                                 "Myanmar",
	"Siam":                                  "Thailand",
	"Persia":                                "Iran",
	"Qajar Iran":                            "Iran",
	"Imperial State of Iran":                "Iran",
	"Mandatory Palestine":                   "Israel",
	"State of Palestine":                    "Palestine",
	"Viet Nam":                              "Vietnam",
	"South Vietnam":                         "Vietnam",

	// Americas and Oceania
	"Dominion of Canada":        "Canada",
	"Province of Canada":        "Canada",
	"Dominion of Newfoundland":  "Canada",
	"United Mexican States":     "Mexico",
	"Empire of Brazil":          "Brazil",
	"Colony of Jamaica":         "Jamaica",
	"Dominion of New Zealand":   "New Zealand",
	"Colony of New Zealand":     "New Zealand",
	"Commonwealth of Australia": "Australia",

	// Africa
	"Union of South Africa":              "South Africa",
	"Kingdom of Egypt":                   "Egypt",
	"Rhodesia":                           "Zimbabwe",
	"Southern Rhodesia":                  "Zimbabwe",
	"Northern Rhodesia":                  "Zambia",
	"Gold Coast":                         "Ghana",
	"Zaire":                              "Democratic Republic of the Congo",
	"Belgian Congo":                      "Democratic Republic of the Congo",
	"Côte d'Ivoire":                      "Ivory Coast",
	"Tanganyika":                         "Tanzania",
	"Ethiopian Empire":                   "Ethiopia",
	"Colony and Protectorate of Nigeria": "Nigeria",
}
