package db_models

type Event struct {
	BaseModel
	ID           int    `gorm:"primaryKey;autoIncrement:false"`
	EventName    string `gorm:"not null"`
	IsoDate      string `gorm:"size:10;index"` // YYYY-MM-DD
	StartTime    string `gorm:"size:5"`        // HH:MM
	VenueID      *int
	LocationName string
	Category     string
}
