package gorm

import (
	"time"

	"airfield-ops/towerlog/internal/constants"
)

// Pilot is a certificated airman record keyed by certificate number
type Pilot struct {
	ID                int64                      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CertificateNumber string                     `gorm:"column:certificate_number;type:varchar(20);not null;uniqueIndex" json:"certificate_number"`
	FirstName         string                     `gorm:"column:first_name;type:varchar(100)" json:"first_name"`
	LastName          string                     `gorm:"column:last_name;type:varchar(100)" json:"last_name"`
	CertificateType   constants.PilotCertificate `gorm:"column:certificate_type;type:varchar(20)" json:"certificate_type"`
	Ratings           *string                    `gorm:"column:ratings;type:text" json:"ratings"`
	MedicalClass      *string                    `gorm:"column:medical_class;type:varchar(20)" json:"medical_class"`
	MedicalExpiry     *time.Time                 `gorm:"column:medical_expiry" json:"medical_expiry"`
	TotalFlightHours  float64                    `gorm:"column:total_flight_hours;default:0" json:"total_flight_hours"`

	Email *string `gorm:"column:email;type:varchar(200)" json:"email"`
	Phone *string `gorm:"column:phone;type:varchar(20)" json:"phone"`
	City  *string `gorm:"column:city;type:varchar(100)" json:"city"`
	State *string `gorm:"column:state;type:varchar(2)" json:"state"`

	IsActive bool `gorm:"column:is_active;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Pilot) TableName() string {
	return "pilots"
}
