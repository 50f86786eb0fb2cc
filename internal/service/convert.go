package service

import (
	"camping-fun/server/internal/dto"
	"camping-fun/server/internal/model"
)

func toCamperSummary(c *model.Camper) dto.CamperSummary {
	return dto.CamperSummary{ID: c.ID, Name: c.Name, Age: c.Age}
}

// toCamperDetail expects c.Signups (and each signup's Activity) to be loaded.
func toCamperDetail(c *model.Camper) *dto.CamperDetail {
	signups := make([]dto.CamperSignup, 0, len(c.Signups))
	for i := range c.Signups {
		su := &c.Signups[i]
		item := dto.CamperSignup{
			ID:         su.ID,
			Time:       su.Time,
			CamperID:   su.CamperID,
			ActivityID: su.ActivityID,
		}
		if su.Activity != nil {
			item.Activity = toActivityResponse(su.Activity)
		}
		signups = append(signups, item)
	}
	return &dto.CamperDetail{
		ID:      c.ID,
		Name:    c.Name,
		Age:     c.Age,
		Signups: signups,
	}
}

func toActivityResponse(a *model.Activity) dto.ActivityResponse {
	return dto.ActivityResponse{ID: a.ID, Name: a.Name, Difficulty: a.Difficulty}
}

// toSignupResponse expects s.Camper and s.Activity to be loaded.
func toSignupResponse(s *model.Signup) *dto.SignupResponse {
	resp := &dto.SignupResponse{
		ID:         s.ID,
		Time:       s.Time,
		CamperID:   s.CamperID,
		ActivityID: s.ActivityID,
	}
	if s.Camper != nil {
		resp.Camper = toCamperSummary(s.Camper)
	}
	if s.Activity != nil {
		resp.Activity = toActivityResponse(s.Activity)
	}
	return resp
}
