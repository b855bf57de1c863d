package entity

// OptimizeRequest is the input to stop ordering. When RoundTrip is set the
// tour returns to Start and End is ignored.
type OptimizeRequest struct {
	Start     Waypoint   `json:"start"`
	End       *Waypoint  `json:"end,omitempty"`
	RoundTrip bool       `json:"roundTrip"`
	Stops     []Waypoint `json:"stops"`
}

// OptimizationResult reports a proposed stop order against the original one.
type OptimizationResult struct {
	OptimizedOrder               []string           `json:"optimizedOrder"`
	TotalDistanceMiles           float64            `json:"totalDistanceMiles"`
	OriginalDistanceMiles        float64            `json:"originalDistanceMiles"`
	DistanceSavingsMiles         float64            `json:"distanceSavingsMiles"`
	DistanceSavingsPercent       float64            `json:"distanceSavingsPercent"`
	EstimatedTimeMinutes         int                `json:"estimatedTimeMinutes"`
	OriginalEstimatedTimeMinutes int                `json:"originalEstimatedTimeMinutes"`
	TimeSavingsMinutes           int                `json:"timeSavingsMinutes"`
	DistanceFromStartMiles       map[string]float64 `json:"distanceFromStartMiles"`
	Improved                     bool               `json:"improved"`
}
