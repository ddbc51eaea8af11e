package model

import (
	"time"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
type AddressModel struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Street    string    `gorm:"type:varchar(255);not null;default:''"`
	City      string    `gorm:"type:varchar(255);not null;default:''"`
	State     string    `gorm:"type:varchar(255);not null;default:''"`
	Country   string    `gorm:"type:varchar(255);not null;default:''"`
	Latitude  float64   `gorm:"not null;check:chk_addresses_latitude,latitude >= -90 AND latitude <= 90"`
	Longitude float64   `gorm:"not null;check:chk_addresses_longitude,longitude >= -180 AND longitude <= 180"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
