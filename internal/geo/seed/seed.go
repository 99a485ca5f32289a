/*
Package seed implements the hierarchy builder: idempotent construction of a
country and its province → district → city tree from a flat input feed.

The builder writes strictly top-down so every parent_id references an
already-persisted row. The country is created once, keyed by ISO code.
Divisions are upserted on (country_id, parent, level, name), so re-running
the builder against a populated store updates rows in place instead of
duplicating them.
*/
package seed

// Row is one record of the flat Nepal local-level feed. Wards is nil for
// records that describe a district without local-level detail; only rows
// with a ward count produce a city node.
type Row struct {
	LocalLevelFullCode string `json:"locallevel_fullcode"`
	CountryCode        string `json:"country_code"`
	ProvinceCode       string `json:"province_code"`
	DistrictCode       string `json:"district_code"`
	DistrictName       string `json:"district_name"`
	LocalLevelCode     string `json:"locallevel_code"`
	Name               string `json:"name"`
	NameNative         string `json:"name_native"`
	Type               string `json:"type"`
	Wards              *int   `json:"wards"`
}

// province is one entry of the static province table. The feed identifies
// provinces by a bare digit; names and ISO 3166-2 codes are fixed.
type province struct {
	Name string
	Code string
}

var provinces = map[string]province{
	"1": {Name: "koshi", Code: "NP-P1"},
	"2": {Name: "madhesh", Code: "NP-P2"},
	"3": {Name: "bagmati", Code: "NP-P3"},
	"4": {Name: "gandaki", Code: "NP-P4"},
	"5": {Name: "lumbini", Code: "NP-P5"},
	"6": {Name: "karnali", Code: "NP-P6"},
	"7": {Name: "sudurpashchim", Code: "NP-P7"},
}

// nepal is the country row the builder ensures before writing divisions.
var nepal = Country{
	Name:      "nepal",
	NameLocal: "नेपाल",
	ISOCode:   "NP",
	Icon:      "🇳🇵",
	Structure: "province>district>city>ward",
	Continent: "asia",
	Timezone:  "Asia/Kathmandu",
}

// Stats summarizes one builder run.
type Stats struct {
	Provinces int
	Districts int
	Cities    int
	Skipped   int
}
