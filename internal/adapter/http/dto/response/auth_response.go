package response

import "workshop_jobs/internal/usecase"

type ProfileResponse struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	Role       string  `json:"role"`
	WorkshopID *string `json:"workshop_id"`
}

type SessionResponse struct {
	Token     string          `json:"token"`
	TokenType string          `json:"token_type"`
	User      ProfileResponse `json:"user"`
}

func FromProfile(p usecase.Profile) ProfileResponse {
	out := ProfileResponse{
		ID:    p.ID,
		Email: p.Email,
		Name:  p.Name,
		Phone: p.Phone,
		Role:  p.Role.String(),
	}
	if p.WorkshopID != "" {
		id := p.WorkshopID
		out.WorkshopID = &id
	}
	return out
}

func FromSession(s usecase.Session) SessionResponse {
	return SessionResponse{Token: s.Token, TokenType: "bearer", User: FromProfile(s.Profile)}
}
