package geo

import (
	"fmt"
	"strings"
)

// isoAlpha2 maps lower-cased English country names to ISO 3166-1 alpha-2
// codes. Common short names and the official variants geocoders return are
// both listed.
var isoAlpha2 = map[string]string{
	"afghanistan": "AF", "albania": "AL", "algeria": "DZ",
	"argentina": "AR", "armenia": "AM", "australia": "AU",
	"austria": "AT", "azerbaijan": "AZ", "bangladesh": "BD",
	"belarus": "BY", "belgium": "BE", "bolivia": "BO",
	"bosnia and herzegovina": "BA", "brazil": "BR", "bulgaria": "BG",
	"cambodia": "KH", "cameroon": "CM", "canada": "CA", "chad": "TD",
	"chile": "CL", "china": "CN", "colombia": "CO",
	"costa rica": "CR", "croatia": "HR", "cuba": "CU", "cyprus": "CY",
	"czech republic": "CZ", "czechia": "CZ",
	"democratic republic of the congo": "CD", "denmark": "DK",
	"dominican republic": "DO", "ecuador": "EC", "egypt": "EG",
	"el salvador": "SV", "eritrea": "ER", "estonia": "EE",
	"ethiopia": "ET", "finland": "FI", "france": "FR", "georgia": "GE",
	"germany": "DE", "ghana": "GH", "greece": "GR", "guatemala": "GT",
	"haiti": "HT", "honduras": "HN", "hungary": "HU", "iceland": "IS",
	"india": "IN", "indonesia": "ID", "iran": "IR", "iraq": "IQ",
	"ireland": "IE", "israel": "IL", "italy": "IT", "ivory coast": "CI",
	"jamaica": "JM", "japan": "JP", "jordan": "JO", "kazakhstan": "KZ",
	"kenya": "KE", "kuwait": "KW", "kyrgyzstan": "KG", "laos": "LA",
	"latvia": "LV", "lebanon": "LB", "liberia": "LR", "libya": "LY",
	"lithuania": "LT", "luxembourg": "LU", "madagascar": "MG",
	"malaysia": "MY", "mali": "ML", "malta": "MT", "mexico": "MX",
	"moldova": "MD", "mongolia": "MN", "montenegro": "ME",
	"morocco": "MA", "mozambique": "MZ", "myanmar": "MM",
	"nepal": "NP", "netherlands": "NL", "the netherlands": "NL",
	"new zealand": "NZ", "nicaragua": "NI", "niger": "NE",
	"nigeria": "NG", "north korea": "KP", "north macedonia": "MK",
	"norway": "NO", "oman": "OM", "pakistan": "PK", "palestine": "PS",
	"panama": "PA", "paraguay": "PY", "peru": "PE",
	"philippines": "PH", "the philippines": "PH", "poland": "PL",
	"portugal": "PT", "qatar": "QA", "romania": "RO", "russia": "RU",
	"russian federation": "RU", "rwanda": "RW", "saudi arabia": "SA",
	"senegal": "SN", "serbia": "RS", "sierra leone": "SL",
	"singapore": "SG", "slovakia": "SK", "slovenia": "SI",
	"somalia": "SO", "south africa": "ZA", "south korea": "KR",
	"republic of korea": "KR", "south sudan": "SS", "spain": "ES",
	"sri lanka": "LK", "sudan": "SD", "sweden": "SE",
	"switzerland": "CH", "syria": "SY", "taiwan": "TW",
	"tajikistan": "TJ", "tanzania": "TZ", "thailand": "TH",
	"tunisia": "TN", "turkey": "TR", "türkiye": "TR",
	"turkmenistan": "TM", "uganda": "UG", "ukraine": "UA",
	"united arab emirates": "AE", "united kingdom": "GB",
	"great britain": "GB", "united states": "US",
	"united states of america": "US", "uruguay": "UY",
	"uzbekistan": "UZ", "venezuela": "VE", "vietnam": "VN",
	"yemen": "YE", "zambia": "ZM", "zimbabwe": "ZW",
}

// CountryCode converts an English country name to its ISO 3166-1 alpha-2
// code. Matching is case-insensitive.
func CountryCode(name string) (string, error) {
	if code, ok := isoAlpha2[strings.ToLower(strings.TrimSpace(name))]; ok {
		return code, nil
	}
	return "", fmt.Errorf("no ISO code for country %q", name)
}
