package dto

// CreateSignupRequest POST /signups
type CreateSignupRequest struct {
	Time       *int  `json:"time"`
	CamperID   *uint `json:"camper_id"`
	ActivityID *uint `json:"activity_id"`
}

// SignupResponse a signup with both parents in summary form.
type SignupResponse struct {
	ID         uint             `json:"id"`
	Time       int              `json:"time"`
	CamperID   uint             `json:"camper_id"`
	ActivityID uint             `json:"activity_id"`
	Camper     CamperSummary    `json:"camper"`
	Activity   ActivityResponse `json:"activity"`
}
