package domain

import (
	"fmt"
	"strings"
)

// UserProfile is created once during onboarding. Its presence gates
// whether compliance analysis runs at all.
type UserProfile struct {
	Nationality     string   `json:"nationality"`
	CurrentLocation string   `json:"currentLocation"`
	TravelGoals     []string `json:"travelGoals"`
}

func (p *UserProfile) Validate() error {
	if strings.TrimSpace(p.Nationality) == "" {
		return fmt.Errorf("nationality is required")
	}
	if strings.TrimSpace(p.CurrentLocation) == "" {
		return fmt.Errorf("current location is required")
	}
	return nil
}
