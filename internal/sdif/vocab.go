package sdif

// LSC is a Local Swimming Committee code (SDIF LSC Code 002). The value is
// the two-letter interchange code itself; only codes in the table are valid.
type LSC string

var lscNames = map[LSC]string{
	"AD": "Adirondack",
	"AK": "Alaska",
	"AM": "Allegheny Mountain",
	"AR": "Arkansas",
	"AZ": "Arizona",
	"BD": "Border",
	"CA": "Southern California",
	"CC": "Central California",
	"CO": "Colorado",
	"CT": "Connecticut",
	"FG": "Florida Gold Coast",
	"FL": "Florida",
	"GA": "Georgia",
	"GU": "Gulf",
	"HI": "Hawaii",
	"IA": "Iowa",
	"IE": "Inland Empire",
	"IL": "Illinois",
	"IN": "Indiana",
	"KY": "Kentucky",
	"LA": "Louisiana",
	"LE": "Lake Erie",
	"MA": "Middle Atlantic",
	"MD": "Maryland",
	"ME": "Maine",
	"MI": "Michigan",
	"MN": "Minnesota",
	"MR": "Metropolitan",
	"MS": "Mississippi",
	"MT": "Montana",
	"MV": "Missouri Valley",
	"MW": "Midwestern",
	"NC": "North Carolina",
	"ND": "North Dakota",
	"NE": "New England",
	"NI": "Niagara",
	"NJ": "New Jersey",
	"NM": "New Mexico",
	"NT": "North Texas",
	"OH": "Ohio",
	"OK": "Oklahoma",
	"OR": "Oregon",
	"OZ": "Ozark",
	"PC": "Pacific",
	"PN": "Pacific Northwest",
	"PV": "Potomac Valley",
	"SC": "South Carolina",
	"SD": "South Dakota",
	"SE": "Southeastern",
	"SI": "San Diego Imperial",
	"SN": "Sierra Nevada",
	"SR": "Snake River",
	"ST": "South Texas",
	"UT": "Utah",
	"VA": "Virginia",
	"WI": "Wisconsin",
	"WT": "West Texas",
	"WV": "West Virginia",
	"WY": "Wyoming",
}

// ParseLSC looks up an LSC by its two-letter interchange code.
func ParseLSC(code string) (LSC, bool) {
	lsc := LSC(code)
	_, ok := lscNames[lsc]
	return lsc, ok
}

// Name returns the LSC's full name.
func (l LSC) Name() string { return lscNames[l] }

func (l LSC) String() string { return string(l) }

// Country is a country or citizenship code (SDIF COUNTRY Code 004 plus the
// Dual/Foreign citizenship distinctions of CITIZEN Code 009).
type Country string

var countryNames = map[Country]string{
	"AFG": "Afghanistan", "AHO": "Dutch West Indies", "ALB": "Albania",
	"ALG": "Algeria", "AND": "Andorra", "ANG": "Angola", "ANT": "Antigua",
	"ARG": "Argentina", "ARM": "Armenia", "ARU": "Aruba",
	"ASA": "American Samoa", "AUS": "Australia", "AUT": "Austria",
	"AZE": "Azerbaijan", "BAH": "Bahamas", "BAN": "Bangladesh",
	"BAR": "Barbados", "BEL": "Belgium", "BEN": "Benin", "BER": "Bermuda",
	"BHU": "Bhutan", "BIZ": "Belize", "BLS": "Belarus", "BOL": "Bolivia",
	"BOT": "Botswana", "BRA": "Brazil", "BRN": "Bahrain", "BRU": "Brunei",
	"BUL": "Bulgaria", "BUR": "Burkina Faso",
	"CAF": "Central African Republic", "CAN": "Canada",
	"CAY": "Cayman Islands", "CGO": "Congo", "CHA": "Chad", "CHI": "Chile",
	"CHN": "China", "CIV": "Ivory Coast", "CMR": "Cameroon",
	"COK": "Cook Islands", "COL": "Columbia", "COM": "Dominican Republic",
	"CRC": "Costa Rica", "CRO": "Croatia", "CUB": "Cuba", "CYP": "Cyprus",
	"DEN": "Denmark", "DJI": "Djibouti", "ECU": "Ecuador", "EGY": "Egypt",
	"ESA": "El Salvador", "ESP": "Spain", "EST": "Estonia",
	"ETH": "Ethiopia", "FIJ": "Fiji", "FIN": "Finland", "FRA": "France",
	"GAB": "Gabon", "GAM": "Gambia", "GBR": "Great Britain",
	"GER": "Germany", "GEO": "Georgia", "GHA": "Ghana", "GRE": "Greece",
	"GRN": "Grenada", "GUA": "Guatemala", "GUI": "Guinea", "GUM": "Guam",
	"GUY": "Guyana", "HAI": "Haiti", "HKG": "Hong Kong", "HON": "Honduras",
	"HUN": "Hungary", "INA": "Indonesia", "IND": "India", "IRL": "Ireland",
	"IRI": "Iran", "IRQ": "Iraq", "ISL": "Iceland", "ISR": "Israel",
	"ISV": "Virgin Islands", "ITA": "Italy",
	"IVB": "British Virgin Islands", "JAM": "Jamaica", "JOR": "Jordan",
	"JPN": "Japan", "KEN": "Kenya", "KGZ": "Kyrghyzstan",
	"KOR": "South Korea", "KSA": "Saudi Arabia", "KUW": "Kuwait",
	"KZK": "Kazakhstan", "LAO": "Laos", "LAT": "Latvia", "LBA": "Libya",
	"LBR": "Liberia", "LES": "Lesotho", "LIB": "Lebanon",
	"LIE": "Liechtenstein", "LIT": "Lithuania", "LUX": "Luxembourg",
	"MAD": "Madagascar", "MAS": "Malaysia", "MAR": "Morocco",
	"MAW": "Malawi", "MDV": "Maldives", "MEX": "Mexico", "MGL": "Mongolia",
	"MLD": "Moldova", "MLI": "Mali", "MLT": "Malta", "MON": "Monaco",
	"MOZ": "Mozambique", "MRI": "Mauritius", "MTN": "Mauritania",
	"MYA": "Myanmar", "NAM": "Namibia", "NCA": "Nicaragua",
	"NED": "Netherlands", "NEP": "Nepal", "NIG": "Niger",
	"NGR": "Nigeria", "NOR": "Norway", "NZL": "New Zealand", "OMA": "Oman",
	"PAK": "Pakistan", "PAN": "Panama", "PAR": "Paraguay", "PER": "Peru",
	"PHI": "Philippines", "PNG": "Papua New Guinea", "POL": "Poland",
	"POR": "Portugal", "PRK": "North Korea", "PUR": "Puerto Rico",
	"QAT": "Qatar", "ROM": "Romania", "RSA": "South Africa",
	"RUS": "Russia", "RWA": "Rwanda", "SAM": "Western Samoa",
	"SEN": "Senegal", "SEY": "Seychelles", "SIN": "Singapore",
	"SLE": "Sierra Leone", "SLO": "Slovenia", "SMR": "San Marino",
	"SOL": "Solomon Islands", "SOM": "Somalia", "SRI": "Sri Lanka",
	"SUD": "Sudan", "SUI": "Switzerland", "SUR": "Surinam",
	"SWE": "Sweden", "SWZ": "Swaziland", "TAN": "Tanzania",
	"TCH": "Czechoslovakia", "TGA": "Tonga", "THA": "Thailand",
	"TJK": "Tadjikistan", "TOG": "Togo", "TPE": "Taiwan",
	"TRI": "Trinidad Tobago", "TUN": "Tunisia", "TUR": "Turkey",
	"UAE": "United Arab Emirates", "UGA": "Uganda", "UKR": "Ukraine",
	"URU": "Uruguay", "USA": "United States", "VAN": "Vanuatu",
	"VEN": "Venezuela", "VIE": "Vietnam", "VIN": "Saint Vincent",
	"YEM": "Yemen", "YUG": "Yugoslavia", "ZAI": "Zaire", "ZAM": "Zambia",
	"ZIM": "Zimbabwe", "2AL": "Dual", "FGN": "Foreign",
}

// ParseCountry looks up a country by its three-character interchange code.
func ParseCountry(code string) (Country, bool) {
	c := Country(code)
	_, ok := countryNames[c]
	return c, ok
}

// Name returns the country's full name.
func (c Country) Name() string { return countryNames[c] }

func (c Country) String() string { return string(c) }

// State is a USPS state abbreviation.
type State string

var stateNames = map[State]string{
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas",
	"CA": "California", "CO": "Colorado", "CT": "Connecticut",
	"DE": "Delaware", "DC": "District of Columbia", "FL": "Florida",
	"GA": "Georgia", "HI": "Hawaii", "ID": "Idaho", "IL": "Illinois",
	"IN": "Indiana", "IA": "Iowa", "KS": "Kansas", "KY": "Kentucky",
	"LA": "Louisiana", "ME": "Maine", "MD": "Maryland",
	"MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota",
	"MS": "Mississippi", "MO": "Missouri", "MT": "Montana",
	"NE": "Nebraska", "NV": "Nevada", "NH": "New Hampshire",
	"NJ": "New Jersey", "NM": "New Mexico", "NY": "New York",
	"NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio",
	"OK": "Oklahoma", "OR": "Oregon", "PA": "Pennsylvania",
	"PR": "Puerto Rico", "RI": "Rhode Island", "SC": "South Carolina",
	"SD": "South Dakota", "TN": "Tennessee", "TX": "Texas", "UT": "Utah",
	"VT": "Vermont", "VA": "Virginia", "WA": "Washington",
	"WV": "West Virginia", "WI": "Wisconsin", "WY": "Wyoming",
}

// ParseState looks up a state by its USPS abbreviation.
func ParseState(code string) (State, bool) {
	s := State(code)
	_, ok := stateNames[s]
	return s, ok
}

// Name returns the state's full name.
func (s State) Name() string { return stateNames[s] }

func (s State) String() string { return string(s) }
