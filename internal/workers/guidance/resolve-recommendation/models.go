// internal/workers/guidance/resolve-recommendation/models.go
package resolverecommendation

import "guidance-workers/internal/models"

type Input struct {
	// Label is the recommendation label to resolve, e.g.
	// "Engineering & Technology".
	Label string `json:"label"`
}

type Output struct {
	Label string `json:"label"`
	// Matched is false when the label had no dedicated record and the
	// default detail was served.
	Matched bool                `json:"matched"`
	Detail  models.CareerDetail `json:"detail"`
}
