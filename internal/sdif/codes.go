// Package sdif defines the closed code vocabularies of the USA Swimming
// Standard Interchange Format along with the event catalog built from them.
// Lookups by interchange code fail softly (ok=false) so ingestion can null
// out fields carrying unknown codes instead of aborting.
package sdif

// Organization corresponds to SDIF ORG Code 001.
type Organization int

const (
	OrgUSASwimming Organization = iota
	OrgMasters
	OrgNCAA
	OrgNCAADivI
	OrgNCAADivII
	OrgNCAADivIII
	OrgYMCA
	OrgFINA
	OrgHighSchool
)

var orgCodes = map[string]Organization{
	"1": OrgUSASwimming,
	"2": OrgMasters,
	"3": OrgNCAA,
	"4": OrgNCAADivI,
	"5": OrgNCAADivII,
	"6": OrgNCAADivIII,
	"7": OrgYMCA,
	"8": OrgFINA,
	"9": OrgHighSchool,
}

var orgNames = [...]string{
	"USA Swimming",
	"Masters",
	"NCAA",
	"NCAA Div I",
	"NCAA Div II",
	"NCAA Div III",
	"YMCA",
	"FINA",
	"High School",
}

// ParseOrganization looks up an organization by interchange code.
func ParseOrganization(code string) (Organization, bool) {
	org, ok := orgCodes[code]
	return org, ok
}

func (o Organization) String() string {
	if o < 0 || int(o) >= len(orgNames) {
		return "Unknown"
	}
	return orgNames[o]
}

// MeetType corresponds to SDIF MEET Code 005. The zero value means the
// field was not reported.
type MeetType int

const (
	MeetTypeUnknown MeetType = iota
	MeetInvitational
	MeetRegional
	MeetLSCChampionship
	MeetZone
	MeetZoneChampionship
	MeetNationalChampionship
	MeetJuniors
	MeetSeniors
	MeetDual
	MeetTimeTrials
	MeetInternational
	MeetOpen
	MeetLeague
)

var meetTypeCodes = map[string]MeetType{
	"1": MeetInvitational,
	"2": MeetRegional,
	"3": MeetLSCChampionship,
	"4": MeetZone,
	"5": MeetZoneChampionship,
	"6": MeetNationalChampionship,
	"7": MeetJuniors,
	"8": MeetSeniors,
	"9": MeetDual,
	"0": MeetTimeTrials,
	"A": MeetInternational,
	"B": MeetOpen,
	"C": MeetLeague,
}

var meetTypeNames = [...]string{
	"Unknown",
	"Invitational",
	"Regional",
	"LSC Championship",
	"Zone",
	"Zone Championship",
	"National Championship",
	"Juniors",
	"Seniors",
	"Dual",
	"Time Trials",
	"International",
	"Open",
	"League",
}

// ParseMeetType looks up a meet type by interchange code.
func ParseMeetType(code string) (MeetType, bool) {
	mt, ok := meetTypeCodes[code]
	return mt, ok
}

func (m MeetType) String() string {
	if m <= 0 || int(m) >= len(meetTypeNames) {
		return "Unknown"
	}
	return meetTypeNames[m]
}

// Region corresponds to SDIF REGION Code 007. The zero value means the
// field was not reported.
type Region int

const (
	RegionUnknown Region = iota
	Region1
	Region2
	Region3
	Region4
	Region5
	Region6
	Region7
	Region8
	Region9
	Region10
	Region11
	Region12
	Region13
	Region14
)

var regionCodes = map[string]Region{
	"1": Region1, "2": Region2, "3": Region3, "4": Region4, "5": Region5,
	"6": Region6, "7": Region7, "8": Region8, "9": Region9, "A": Region10,
	"B": Region11, "C": Region12, "D": Region13, "E": Region14,
}

// ParseRegion looks up a region by interchange code.
func ParseRegion(code string) (Region, bool) {
	r, ok := regionCodes[code]
	return r, ok
}

// Sex corresponds to SDIF SEX Code 010 and EVENT SEX Code 011.
type Sex int

const (
	Male Sex = iota
	Female
	Mixed
)

var sexCodes = map[string]Sex{"M": Male, "F": Female, "X": Mixed}

// ParseSex looks up a sex by interchange code.
func ParseSex(code string) (Sex, bool) {
	s, ok := sexCodes[code]
	return s, ok
}

// String returns the single-letter interchange code ("M", "F", "X"). This is
// also the column suffix used in time-standard tables.
func (s Sex) String() string {
	switch s {
	case Male:
		return "M"
	case Female:
		return "F"
	case Mixed:
		return "X"
	}
	return "?"
}

// Name returns the spelled-out form ("Male", "Female", "Mixed").
func (s Sex) Name() string {
	switch s {
	case Male:
		return "Male"
	case Female:
		return "Female"
	case Mixed:
		return "Mixed"
	}
	return "Unknown"
}

// Stroke corresponds to SDIF STROKE Code 012.
type Stroke int

const (
	Freestyle Stroke = iota
	Backstroke
	Breaststroke
	Butterfly
	IndividualMedley
	FreestyleRelay
	MedleyRelay
)

var strokeCodes = map[string]Stroke{
	"1": Freestyle,
	"2": Backstroke,
	"3": Breaststroke,
	"4": Butterfly,
	"5": IndividualMedley,
	"6": FreestyleRelay,
	"7": MedleyRelay,
}

// ParseStroke looks up a stroke by interchange code.
func ParseStroke(code string) (Stroke, bool) {
	s, ok := strokeCodes[code]
	return s, ok
}

func (s Stroke) String() string {
	switch s {
	case Freestyle:
		return "Free"
	case Backstroke:
		return "Back"
	case Breaststroke:
		return "Breast"
	case Butterfly:
		return "Fly"
	case IndividualMedley:
		return "IM"
	case FreestyleRelay:
		return "Free Relay"
	case MedleyRelay:
		return "Medley Relay"
	}
	return "Unknown"
}

// Short returns the abbreviated form used as the stroke part of
// time-standard row labels.
func (s Stroke) Short() string {
	switch s {
	case Freestyle:
		return "FR"
	case Backstroke:
		return "BK"
	case Breaststroke:
		return "BR"
	case Butterfly:
		return "FL"
	case IndividualMedley:
		return "IM"
	case FreestyleRelay:
		return "FR Relay"
	case MedleyRelay:
		return "IM Relay"
	}
	return "??"
}

// IsRelay reports whether the stroke is one of the relay kinds.
func (s Stroke) IsRelay() bool {
	return s == FreestyleRelay || s == MedleyRelay
}

// Course corresponds to SDIF COURSE Code 013. The interchange format writes
// courses both as digits and as letters; ParseCourse accepts either. The
// zero value means the field was not reported.
type Course int

const (
	CourseUnknown Course = iota
	SCM
	SCY
	LCM
)

var courseCodes = map[string]Course{
	"1": SCM, "2": SCY, "3": LCM,
	"S": SCM, "Y": SCY, "L": LCM,
}

// ParseCourse looks up a course by numeric or alphabetic interchange code.
func ParseCourse(code string) (Course, bool) {
	c, ok := courseCodes[code]
	return c, ok
}

func (c Course) String() string {
	switch c {
	case SCM:
		return "SCM"
	case SCY:
		return "SCY"
	case LCM:
		return "LCM"
	}
	return "Unknown"
}

// Short returns the single-letter course code.
func (c Course) Short() string {
	switch c {
	case SCM:
		return "S"
	case SCY:
		return "Y"
	case LCM:
		return "L"
	}
	return "?"
}

// EventTimeClass corresponds to SDIF EVENT TIME CLASS Code 014. The zero
// value means the field was not reported.
type EventTimeClass int

const (
	TimeClassUnknown EventTimeClass = iota
	TimeClassNoLowerLimit
	TimeClassNoUpperLimit
	TimeClassNovice
	TimeClassB
	TimeClassBB
	TimeClassA
	TimeClassAA
	TimeClassAAA
	TimeClassAAAA
	TimeClassJunior
	TimeClassSenior
)

var eventTimeClassCodes = map[string]EventTimeClass{
	"U": TimeClassNoLowerLimit,
	"O": TimeClassNoUpperLimit,
	"1": TimeClassNovice,
	"2": TimeClassB,
	"P": TimeClassBB,
	"3": TimeClassA,
	"4": TimeClassAA,
	"5": TimeClassAAA,
	"6": TimeClassAAAA,
	"J": TimeClassJunior,
	"S": TimeClassSenior,
}

// ParseEventTimeClass looks up an event time class by interchange code.
func ParseEventTimeClass(code string) (EventTimeClass, bool) {
	tc, ok := eventTimeClassCodes[code]
	return tc, ok
}

// AttachStatus corresponds to SDIF ATTACH Code 016.
type AttachStatus int

const (
	Attached AttachStatus = iota
	Unattached
)

var attachCodes = map[string]AttachStatus{"A": Attached, "U": Unattached}

// ParseAttachStatus looks up an attachment status by interchange code.
func ParseAttachStatus(code string) (AttachStatus, bool) {
	a, ok := attachCodes[code]
	return a, ok
}

// Session corresponds to SDIF PRELIMS/FINALS Code 019. Ordinal order is
// Prelims < Finals < SwimOffs, matching the code table's declaration order.
type Session int

const (
	Prelims Session = iota
	Finals
	SwimOffs
)

var sessionCodes = map[string]Session{"P": Prelims, "F": Finals, "S": SwimOffs}

// ParseSession looks up a session by interchange code.
func ParseSession(code string) (Session, bool) {
	s, ok := sessionCodes[code]
	return s, ok
}

func (s Session) String() string {
	switch s {
	case Prelims:
		return "P"
	case Finals:
		return "F"
	case SwimOffs:
		return "S"
	}
	return "?"
}

// Name returns the spelled-out session name.
func (s Session) Name() string {
	switch s {
	case Prelims:
		return "Prelims"
	case Finals:
		return "Finals"
	case SwimOffs:
		return "Swim-offs"
	}
	return "Unknown"
}
