package dto

// ActivityResponse an activity without its signups.
type ActivityResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Difficulty int    `json:"difficulty"`
}
