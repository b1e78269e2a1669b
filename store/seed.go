package store

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Priest98/whatsapp-CRM/models"
)

// NewSeeded builds a store for the demo tenant with the stock customers,
// conversation history, knowledge articles and login accounts.
func NewSeeded() *Store {
	s := New("b1")
	s.seed()
	return s
}

func (s *Store) seed() {
	now := s.now()

	s.customers = []models.Customer{
		{
			ID:            "1",
			BusinessID:    s.businessID,
			Name:          "Alice Johnson",
			PhoneNumber:   "+1 555-0102",
			Tags:          []string{"interest_in_premium", "returning"},
			LeadStatus:    models.LeadWarm,
			Notes:         "Inquired about annual billing discounts last week.",
			CreatedAt:     now.Add(-5 * 24 * time.Hour),
			LastMessageAt: now.Add(-1 * time.Hour),
		},
		{
			ID:            "2",
			BusinessID:    s.businessID,
			Name:          "Bob Smith",
			PhoneNumber:   "+1 555-0103",
			Tags:          []string{"cold_outreach"},
			LeadStatus:    models.LeadCold,
			Notes:         "Not interested right now, follow up in 6 months.",
			CreatedAt:     now.Add(-20 * 24 * time.Hour),
			LastMessageAt: now.Add(-2 * 24 * time.Hour),
		},
		{
			ID:            "3",
			BusinessID:    s.businessID,
			Name:          "Charlie Davis",
			PhoneNumber:   "+1 555-0104",
			Tags:          []string{"urgent", "high_budget"},
			LeadStatus:    models.LeadHot,
			Notes:         "Ready to sign contract as soon as pricing is confirmed.",
			CreatedAt:     now.Add(-1 * time.Hour),
			LastMessageAt: now,
		},
	}

	s.messages = []models.Message{
		{
			ID:          "m1",
			BusinessID:  s.businessID,
			CustomerID:  "1",
			Direction:   models.DirectionIncoming,
			Content:     "Hi, I saw your premium plan. Does it include multiple user accounts?",
			MessageType: models.MessageText,
			Timestamp:   now.Add(-2 * time.Hour),
		},
		{
			ID:          "m2",
			BusinessID:  s.businessID,
			CustomerID:  "1",
			Direction:   models.DirectionOutgoing,
			Content:     "Hello Alice! Yes, the Premium plan includes up to 5 staff accounts.",
			MessageType: models.MessageText,
			Timestamp:   now.Add(-90 * time.Minute),
		},
		{
			ID:          "m3",
			BusinessID:  s.businessID,
			CustomerID:  "3",
			Direction:   models.DirectionIncoming,
			Content:     "I'm ready to move forward. Can you send me the final quote for the enterprise package?",
			MessageType: models.MessageText,
			Timestamp:   now.Add(-30 * time.Minute),
		},
	}

	s.knowledge = []models.KnowledgeBaseItem{
		{
			ID:         "k1",
			BusinessID: s.businessID,
			Title:      "Premium Plan Details",
			Content:    "Our Premium plan costs $49/mo and includes unlimited customers, 5 staff accounts, and priority support.",
			Category:   models.CategoryPricing,
			CreatedAt:  now,
		},
		{
			ID:         "k2",
			BusinessID: s.businessID,
			Title:      "Refund Policy",
			Content:    "We offer a full 14-day money back guarantee if you are not satisfied with the product.",
			Category:   models.CategoryPolicy,
			CreatedAt:  now,
		},
	}

	s.users = []models.User{
		{
			ID:           "u1",
			BusinessID:   s.businessID,
			Name:         "John Doe",
			Email:        "demo@salesagent.ai",
			PasswordHash: hashPassword("password"),
			Role:         models.RoleOwner,
			CreatedAt:    now,
		},
		{
			ID:           "u2",
			BusinessID:   s.businessID,
			Name:         "Jane Smith",
			Email:        "staff@salesagent.ai",
			PasswordHash: hashPassword("password"),
			Role:         models.RoleStaff,
			CreatedAt:    now,
		},
	}
}

func hashPassword(pw string) string {
	h, _ := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(h)
}
