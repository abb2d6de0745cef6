package sdif

// AgeGroup is an inclusive age range used to partition time-standard tables.
type AgeGroup struct {
	Label string
	Min   int
	Max   int
}

// Contains reports whether age falls inside the group.
func (g AgeGroup) Contains(age int) bool {
	return age >= g.Min && age <= g.Max
}

func (g AgeGroup) String() string { return g.Label }

// The age-group vocabulary used by the time-standard families.
var (
	Age8Under   = AgeGroup{Label: "8U", Min: 0, Max: 8}
	Age10Under  = AgeGroup{Label: "10U", Min: 0, Max: 10}
	Age9To10    = AgeGroup{Label: "9-10", Min: 9, Max: 10}
	Age11       = AgeGroup{Label: "11", Min: 11, Max: 11}
	Age12       = AgeGroup{Label: "12", Min: 12, Max: 12}
	Age13       = AgeGroup{Label: "13", Min: 13, Max: 13}
	Age14       = AgeGroup{Label: "14", Min: 14, Max: 14}
	Age11To12   = AgeGroup{Label: "11-12", Min: 11, Max: 12}
	Age13To14   = AgeGroup{Label: "13-14", Min: 13, Max: 14}
	Age15To16   = AgeGroup{Label: "15-16", Min: 15, Max: 16}
	Age17To18   = AgeGroup{Label: "17-18", Min: 17, Max: 18}
	Age18Under  = AgeGroup{Label: "18U", Min: 0, Max: 18}
	Age19Over   = AgeGroup{Label: "19O", Min: 19, Max: 99}
	AgeSenior   = AgeGroup{Label: "Senior", Min: 15, Max: 99}
)
