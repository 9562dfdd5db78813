// Package dashboard holds the figures shown on the landing page. They are
// fixed sample values; nothing is computed.
package dashboard

// Stat is one summary card.
type Stat struct {
	Title   string // display-table key
	Value   int
	Trend   string
	TrendUp bool
	Icon    string
}

// Severity of an activity entry.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
)

type Activity struct {
	Message  string
	Time     string
	Severity Severity
}

type ScheduleItem struct {
	Time  string
	Event string
}

// Summary is everything the dashboard page renders.
type Summary struct {
	Stats      []Stat
	Activities []Activity
	Schedule   []ScheduleItem
}

// Load returns the dashboard figures.
func Load() Summary {
	return Summary{
		Stats: []Stat{
			{Title: "totalResidents", Value: 124, Trend: "+2 this week", TrendUp: true, Icon: "users"},
			{Title: "activeAlerts", Value: 3, Trend: "-1 from yesterday", TrendUp: true, Icon: "alert"},
			{Title: "staffOnDuty", Value: 28, Trend: "2 shifts active", TrendUp: true, Icon: "heart"},
			{Title: "upcomingAppointments", Value: 16, Trend: "Next in 30 min", TrendUp: false, Icon: "calendar"},
		},
		Activities: []Activity{
			{Message: "Medication reminder sent to Room 205", Time: "2 minutes ago", Severity: SeverityInfo},
			{Message: "Mrs. Johnson completed physical therapy", Time: "15 minutes ago", Severity: SeveritySuccess},
			{Message: "Fall detection alert - Room 312 (Resolved)", Time: "1 hour ago", Severity: SeverityWarning},
			{Message: "New resident admission: Mr. Smith", Time: "2 hours ago", Severity: SeverityInfo},
			{Message: "Lunch service completed - Wing A", Time: "3 hours ago", Severity: SeveritySuccess},
		},
		Schedule: []ScheduleItem{
			{Time: "09:00", Event: "Morning medication round"},
			{Time: "10:30", Event: "Group activity - Music therapy"},
			{Time: "12:00", Event: "Lunch service begins"},
			{Time: "14:00", Event: "Doctor visits - Wing B"},
			{Time: "16:00", Event: "Afternoon tea and social hour"},
			{Time: "18:30", Event: "Dinner service begins"},
		},
	}
}
