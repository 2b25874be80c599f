package gorm

import "time"

// Airport is an FAA facility record for a regional or municipal field
type Airport struct {
	ID            int64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ICAOCode      string   `gorm:"column:icao_code;type:varchar(4);not null;uniqueIndex" json:"icao_code"`
	FAACode       *string  `gorm:"column:faa_code;type:varchar(4);index" json:"faa_code"`
	Name          string   `gorm:"column:name;type:varchar(200);not null" json:"name"`
	City          string   `gorm:"column:city;type:varchar(100)" json:"city"`
	State         string   `gorm:"column:state;type:varchar(2)" json:"state"`
	County        *string  `gorm:"column:county;type:varchar(100)" json:"county"`
	Latitude      float64  `gorm:"column:latitude;not null" json:"latitude"`
	Longitude     float64  `gorm:"column:longitude;not null" json:"longitude"`
	ElevationFt   *int     `gorm:"column:elevation_ft" json:"elevation_ft"`
	AirportType   string   `gorm:"column:airport_type;type:varchar(50)" json:"airport_type"`
	Ownership     *string  `gorm:"column:ownership;type:varchar(50)" json:"ownership"`
	Runways       *string  `gorm:"column:runways;type:text" json:"runways"`
	FuelTypes     *string  `gorm:"column:fuel_types;type:varchar(100)" json:"fuel_types"`
	HasTower      bool     `gorm:"column:has_tower;default:false" json:"has_tower"`
	CTAFFrequency *string  `gorm:"column:ctaf_frequency;type:varchar(20)" json:"ctaf_frequency"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Airport) TableName() string {
	return "airports"
}
