package gorm

import (
	"time"

	"airfield-ops/towerlog/internal/constants"
)

// Flight is a single logged operation (takeoff, landing, touch and go) at an
// airport, tied to one aircraft and one pilot-in-command.
type Flight struct {
	ID         int64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	AirportID  int64 `gorm:"column:airport_id;not null;index" json:"airport_id"`
	AircraftID int64 `gorm:"column:aircraft_id;not null;index" json:"aircraft_id"`
	PICID      int64 `gorm:"column:pic_id;not null;index" json:"pic_id"`

	FlightType constants.FlightType `gorm:"column:flight_type;type:varchar(20)" json:"flight_type"`
	Operation  string               `gorm:"column:operation;type:varchar(20)" json:"operation"`
	Runway     *string              `gorm:"column:runway;type:varchar(10)" json:"runway"`

	ScheduledTime *time.Time `gorm:"column:scheduled_time" json:"scheduled_time"`
	ActualTime    time.Time  `gorm:"column:actual_time;index" json:"actual_time"`

	// Free-text ICAO codes, not FK-enforced
	OriginAirport      *string `gorm:"column:origin_airport;type:varchar(4)" json:"origin_airport"`
	DestinationAirport *string `gorm:"column:destination_airport;type:varchar(4)" json:"destination_airport"`

	Passengers     int      `gorm:"column:passengers;default:0" json:"passengers"`
	CargoWeightLbs *float64 `gorm:"column:cargo_weight_lbs" json:"cargo_weight_lbs"`
	FuelGallons    *float64 `gorm:"column:fuel_gallons" json:"fuel_gallons"`

	Remarks    *string `gorm:"column:remarks;type:text" json:"remarks"`
	SquawkCode *string `gorm:"column:squawk_code;type:varchar(4)" json:"squawk_code"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Flight) TableName() string {
	return "flights"
}
