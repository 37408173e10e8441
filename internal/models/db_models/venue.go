package db_models

import "github.com/lib/pq"

type Venue struct {
	BaseModel
	ID       int            `gorm:"primaryKey;autoIncrement:false"`
	Name     string         `gorm:"not null"`
	Types    pq.StringArray `gorm:"type:text[]"`
	Tags     pq.StringArray `gorm:"type:text[]"`
	Location string
	Rating   float64
}
