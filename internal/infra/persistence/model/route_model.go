package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PointData is the JSON shape of a start or end point column.
type PointData struct {
	ID      string  `json:"id,omitempty"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
}

// SavedRouteModel is the GORM-specific struct for the 'saved_routes' table.
type SavedRouteModel struct {
	ID                   uuid.UUID                     `gorm:"type:uuid;primary_key"`
	Name                 string                        `gorm:"type:varchar(100);not null"`
	Color                string                        `gorm:"type:char(7);not null"`
	StartPoint           datatypes.JSONType[PointData] `gorm:"type:jsonb;not null"`
	EndPoint             datatypes.JSON                `gorm:"type:jsonb"`
	RoundTrip            bool                          `gorm:"not null;default:false"`
	TotalDistanceMiles   float64                       `gorm:"not null"`
	EstimatedTimeMinutes int                           `gorm:"not null"`
	Profile              string                        `gorm:"type:varchar(20);not null"`
	Stops                []*RouteStopModel             `gorm:"foreignKey:RouteID;constraint:OnDelete:CASCADE"`
	CreatedAt            time.Time                     `gorm:"index"`
	UpdatedAt            time.Time
	DeletedAt            gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (SavedRouteModel) TableName() string {
	return "saved_routes"
}

// RouteStopModel is one ordered stop of a saved route.
type RouteStopModel struct {
	RouteID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position int       `gorm:"primaryKey"`
	StopID   string    `gorm:"type:varchar(100);not null"`
	Lat      float64   `gorm:"not null"`
	Lng      float64   `gorm:"not null"`
	Address  string    `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (RouteStopModel) TableName() string {
	return "saved_route_stops"
}
