package wikidata

import (
	"fmt"
	"strings"
)

// citizenshipQuery selects the English label of the country of citizenship
// (P27) of a human (P31 = Q5) whose English label is exactly name.
func citizenshipQuery(name string) string {
	return fmt.Sprintf(`SELECT ?countryLabel WHERE {
  ?person wdt:P31 wd:Q5;
          rdfs:label "%s"@en;
          wdt:P27 ?country.
  SERVICE wikibase:label { bd:serviceParam wikibase:language "en". }
} LIMIT 1`, escapeLiteral(name))
}

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// escapeLiteral escapes s for use inside a double-quoted SPARQL string.
func escapeLiteral(s string) string {
	return literalEscaper.Replace(s)
}

// SPARQL 1.1 JSON results, reduced to the one variable we select.
type sparqlResponse struct {
	Results struct {
		Bindings []struct {
			CountryLabel struct {
				Type  string `json:"type"`
				Value string `json:"value"`
			} `json:"countryLabel"`
		} `json:"bindings"`
	} `json:"results"`
}
