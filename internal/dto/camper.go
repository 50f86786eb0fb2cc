package dto

// ── camper requests ──

// CreateCamperRequest POST /campers. Fields are pointers so a missing value
// reaches the validation layer instead of defaulting to zero.
type CreateCamperRequest struct {
	Name *string `json:"name"`
	Age  *int    `json:"age"`
}

// UpdateCamperRequest PATCH /campers/:id. Only keys present in the body are
// applied.
type UpdateCamperRequest struct {
	Name Optional[string] `json:"name"`
	Age  Optional[int]    `json:"age"`
}

// ── camper responses ──

// CamperSummary a camper without its signups.
type CamperSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// CamperDetail a camper with its signups. The nested signups carry no
// camper of their own.
type CamperDetail struct {
	ID      uint           `json:"id"`
	Name    string         `json:"name"`
	Age     int            `json:"age"`
	Signups []CamperSignup `json:"signups"`
}

// CamperSignup a signup as seen from its camper.
type CamperSignup struct {
	ID         uint             `json:"id"`
	Time       int              `json:"time"`
	CamperID   uint             `json:"camper_id"`
	ActivityID uint             `json:"activity_id"`
	Activity   ActivityResponse `json:"activity"`
}
