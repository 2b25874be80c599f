package gorm

import (
	"time"

	"airfield-ops/towerlog/internal/constants"
)

// Aircraft is a registry record keyed by tail number
type Aircraft struct {
	ID            int64                      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	TailNumber    string                     `gorm:"column:tail_number;type:varchar(10);not null;uniqueIndex" json:"tail_number"`
	Manufacturer  string                     `gorm:"column:manufacturer;type:varchar(100)" json:"manufacturer"`
	Model         string                     `gorm:"column:model;type:varchar(100)" json:"model"`
	YearBuilt     *int                       `gorm:"column:year_built" json:"year_built"`
	Category      constants.AircraftCategory `gorm:"column:category;type:varchar(20)" json:"category"`
	EngineType    *string                    `gorm:"column:engine_type;type:varchar(50)" json:"engine_type"`
	NumEngines    int                        `gorm:"column:num_engines;default:1" json:"num_engines"`
	MaxPassengers *int                       `gorm:"column:max_passengers" json:"max_passengers"`

	OwnerName    string  `gorm:"column:owner_name;type:varchar(200)" json:"owner_name"`
	OwnerAddress *string `gorm:"column:owner_address;type:text" json:"owner_address"`
	OwnerCity    *string `gorm:"column:owner_city;type:varchar(100)" json:"owner_city"`
	OwnerState   *string `gorm:"column:owner_state;type:varchar(2)" json:"owner_state"`

	IsActive bool `gorm:"column:is_active;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Aircraft) TableName() string {
	return "aircraft"
}
