package store

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Priest98/whatsapp-CRM/models"
)

var (
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidLeadStatus  = errors.New("invalid lead status")
)

// Store owns all application state: customers, messages, knowledge base
// items and the fixed user table. Every read/derive/mutate goes through a
// method; there is no package-level mutable state.
type Store struct {
	mu         sync.RWMutex
	businessID string
	customers  []models.Customer
	messages   []models.Message
	knowledge  []models.KnowledgeBaseItem
	users      []models.User

	now func() time.Time
}

func New(businessID string) *Store {
	return &Store{
		businessID: businessID,
		now:        time.Now,
	}
}

// Conversation is one inbox row: a customer plus their latest message.
type Conversation struct {
	Customer    models.Customer `json:"customer"`
	LastMessage *models.Message `json:"last_message,omitempty"`
}

func (s *Store) BusinessID() string { return s.businessID }

// Customers returns all customers sorted by last_message_at descending.
// The sort is stable so customers with equal timestamps keep seed order.
func (s *Store) Customers() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Customer, len(s.customers))
	copy(out, s.customers)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastMessageAt.After(out[j].LastMessageAt)
	})
	return out
}

func (s *Store) Customer(id string) (models.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.customers {
		if c.ID == id {
			return c, true
		}
	}
	return models.Customer{}, false
}

// Inbox derives the conversation list: customers in most-recent-first
// order, each paired with their latest message for the preview line.
func (s *Store) Inbox() []Conversation {
	customers := s.Customers()
	out := make([]Conversation, 0, len(customers))
	for _, c := range customers {
		conv := Conversation{Customer: c}
		if m, ok := s.LastMessage(c.ID); ok {
			msg := m
			conv.LastMessage = &msg
		}
		out = append(out, conv)
	}
	return out
}

// SendMessage appends an OUTGOING text message for the customer and moves
// their last_message_at forward to the message timestamp.
func (s *Store) SendMessage(customerID, content string) (models.Message, error) {
	return s.appendMessage(customerID, models.DirectionOutgoing, content)
}

// RecordIncoming resolves a customer by phone number and appends an
// INCOMING text message, the inbound-webhook counterpart of SendMessage.
func (s *Store) RecordIncoming(phoneNumber, content string) (models.Message, error) {
	s.mu.RLock()
	customerID := ""
	for _, c := range s.customers {
		if c.PhoneNumber == phoneNumber {
			customerID = c.ID
			break
		}
	}
	s.mu.RUnlock()
	if customerID == "" {
		return models.Message{}, ErrCustomerNotFound
	}
	return s.appendMessage(customerID, models.DirectionIncoming, content)
}

func (s *Store) appendMessage(customerID string, dir models.MessageDirection, content string) (models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i := range s.customers {
		if s.customers[i].ID == customerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Message{}, ErrCustomerNotFound
	}
	msg := models.Message{
		ID:          uuid.NewString(),
		BusinessID:  s.businessID,
		CustomerID:  customerID,
		Direction:   dir,
		Content:     content,
		MessageType: models.MessageText,
		Timestamp:   s.now(),
	}
	s.messages = append(s.messages, msg)
	// last_message_at never moves backwards
	if msg.Timestamp.After(s.customers[idx].LastMessageAt) {
		s.customers[idx].LastMessageAt = msg.Timestamp
	}
	return msg, nil
}

// UpdateCustomer merges the patch into the matching customer; nil patch
// fields are left untouched.
func (s *Store) UpdateCustomer(id string, patch models.CustomerPatch) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].ID != id {
			continue
		}
		c := &s.customers[i]
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.PhoneNumber != nil {
			c.PhoneNumber = *patch.PhoneNumber
		}
		if patch.Tags != nil {
			c.Tags = append([]string(nil), (*patch.Tags)...)
		}
		if patch.LeadStatus != nil {
			status, ok := models.ParseLeadStatus(string(*patch.LeadStatus))
			if !ok {
				return models.Customer{}, ErrInvalidLeadStatus
			}
			c.LeadStatus = status
		}
		if patch.Notes != nil {
			c.Notes = *patch.Notes
		}
		return *c, nil
	}
	return models.Customer{}, ErrCustomerNotFound
}

// Thread returns the customer's messages in timestamp-ascending order.
func (s *Store) Thread(customerID string) []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Message{}
	for _, m := range s.messages {
		if m.CustomerID == customerID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

// LastMessage returns the maximum-timestamp message for the customer.
func (s *Store) LastMessage(customerID string) (models.Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var last models.Message
	found := false
	for _, m := range s.messages {
		if m.CustomerID != customerID {
			continue
		}
		if !found || m.Timestamp.After(last.Timestamp) {
			last = m
			found = true
		}
	}
	return last, found
}

func (s *Store) KnowledgeBase() []models.KnowledgeBaseItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.KnowledgeBaseItem, len(s.knowledge))
	copy(out, s.knowledge)
	return out
}

func (s *Store) AddKnowledgeItem(title, content string, category models.KnowledgeCategory) models.KnowledgeBaseItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	item := models.KnowledgeBaseItem{
		ID:         uuid.NewString(),
		BusinessID: s.businessID,
		Title:      title,
		Content:    content,
		Category:   category,
		CreatedAt:  s.now(),
	}
	s.knowledge = append(s.knowledge, item)
	return item
}

func (s *Store) AddCustomer(c models.Customer) models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.BusinessID = s.businessID
	if c.CreatedAt.IsZero() {
		c.CreatedAt = s.now()
	}
	if c.LeadStatus == "" {
		c.LeadStatus = models.LeadNew
	}
	s.customers = append(s.customers, c)
	return c
}

func (s *Store) UserByEmail(email string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *Store) UserByID(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// Authenticate checks email/password against the fixed user table.
func (s *Store) Authenticate(email, password string) (models.User, error) {
	u, ok := s.UserByEmail(email)
	if !ok {
		return models.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return u, nil
}
