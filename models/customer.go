package models

import (
	"strings"
	"time"
)

type LeadStatus string

const (
	LeadHot  LeadStatus = "HOT"
	LeadWarm LeadStatus = "WARM"
	LeadCold LeadStatus = "COLD"
	LeadNew  LeadStatus = "NEW"
)

// ParseLeadStatus validates external text (model output, import rows,
// request bodies) against the closed set.
func ParseLeadStatus(s string) (LeadStatus, bool) {
	switch LeadStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case LeadHot:
		return LeadHot, true
	case LeadWarm:
		return LeadWarm, true
	case LeadCold:
		return LeadCold, true
	case LeadNew:
		return LeadNew, true
	}
	return "", false
}

type Customer struct {
	ID            string     `json:"id"`
	BusinessID    string     `json:"business_id"`
	Name          string     `json:"name"`
	PhoneNumber   string     `json:"phone_number"`
	Tags          []string   `json:"tags"`
	LeadStatus    LeadStatus `json:"lead_status"`
	Notes         string     `json:"notes"`
	CreatedAt     time.Time  `json:"created_at"`
	LastMessageAt time.Time  `json:"last_message_at"`
}

// CustomerPatch carries a partial update; nil fields are left untouched.
type CustomerPatch struct {
	Name        *string     `json:"name"`
	PhoneNumber *string     `json:"phone_number"`
	Tags        *[]string   `json:"tags"`
	LeadStatus  *LeadStatus `json:"lead_status"`
	Notes       *string     `json:"notes"`
}

// LeadClassification is the structured result of the lead scoring call.
type LeadClassification struct {
	Status    LeadStatus `json:"status"`
	Reasoning string     `json:"reasoning"`
}
