package types

import (
	"encoding/json"
	"strings"
)

// EducationLevel is an ordered education attainment scale. The numeric
// order is load-bearing: gap scoring compares levels arithmetically.
type EducationLevel int

// Education levels, lowest to highest.
const (
	EducationUnknown EducationLevel = iota
	EducationHighSchool
	EducationDiploma
	EducationBachelors
	EducationMasters
	EducationPhD
)

var educationNames = map[EducationLevel]string{
	EducationUnknown:    "unknown",
	EducationHighSchool: "high_school",
	EducationDiploma:    "diploma",
	EducationBachelors:  "bachelors",
	EducationMasters:    "masters",
	EducationPhD:        "phd",
}

// String returns the canonical lowercase name for the level.
func (l EducationLevel) String() string {
	if name, ok := educationNames[l]; ok {
		return name
	}
	return "unknown"
}

// ParseEducationLevel maps a level name to its EducationLevel.
// Unrecognized names map to EducationUnknown.
func ParseEducationLevel(name string) EducationLevel {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for level, n := range educationNames {
		if n == normalized {
			return level
		}
	}
	return EducationUnknown
}

// MarshalJSON serializes the level as its canonical name so evaluation
// details stay readable in stored records.
func (l EducationLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON accepts either a level name or a bare integer.
func (l *EducationLevel) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*l = ParseEducationLevel(name)
		return nil
	}

	var value int
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	if value < int(EducationUnknown) || value > int(EducationPhD) {
		*l = EducationUnknown
		return nil
	}
	*l = EducationLevel(value)
	return nil
}
