package models

import (
	"gorm.io/datatypes"

	"mediping-server/internal/schedule"
)

// Medication represents one tracked medication schedule for a user. The
// dose-time list is stored filtered (no blanks, no duplicates), and Logs
// holds the nested date -> time -> status map exactly as the schedule
// package produces it.
type Medication struct {
	BaseModel
	UserID      string                           `gorm:"size:36;index;not null" json:"userId"`
	Name        string                           `gorm:"size:255;not null" json:"name"`
	Dosage      string                           `gorm:"size:100" json:"dosage"`
	Frequency   schedule.Frequency               `gorm:"size:20" json:"frequency"`
	TimesPerDay int                              `json:"timesPerDay"`
	Times       datatypes.JSONSlice[string]      `json:"times"`
	StartDate   string                           `gorm:"size:10" json:"startDate"`
	EndDate     string                           `gorm:"size:10" json:"endDate"`
	Logs        datatypes.JSONType[schedule.Log] `json:"logs"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// Log returns the stored dose log, never nil.
func (m *Medication) Log() schedule.Log {
	log := m.Logs.Data()
	if log == nil {
		log = schedule.Log{}
	}
	return log
}

// DoseTimes returns the configured dose-time list as a plain slice.
func (m *Medication) DoseTimes() []string {
	return []string(m.Times)
}
