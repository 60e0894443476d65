package valueobjects

import "strings"

// About is the structured description block of an airline. Every section is
// optional markdown.
type About struct {
	Location string
	Overview string
	Network  string
	Fleet    string
	Alliance string
	Support  string
}

func (a About) IsEmpty() bool {
	return a == About{}
}

// Sections returns the non-empty sections keyed by name.
func (a About) Sections() map[string]string {
	out := make(map[string]string, 6)
	for k, v := range map[string]string{
		"location": a.Location,
		"overview": a.Overview,
		"network":  a.Network,
		"fleet":    a.Fleet,
		"alliance": a.Alliance,
		"support":  a.Support,
	} {
		if strings.TrimSpace(v) != "" {
			out[k] = v
		}
	}
	return out
}
