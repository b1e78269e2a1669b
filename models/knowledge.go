package models

import (
	"strings"
	"time"
)

type KnowledgeCategory string

const (
	CategoryFAQ     KnowledgeCategory = "FAQ"
	CategoryPricing KnowledgeCategory = "PRICING"
	CategoryPolicy  KnowledgeCategory = "POLICY"
)

func ParseKnowledgeCategory(s string) (KnowledgeCategory, bool) {
	switch KnowledgeCategory(strings.ToUpper(strings.TrimSpace(s))) {
	case CategoryFAQ:
		return CategoryFAQ, true
	case CategoryPricing:
		return CategoryPricing, true
	case CategoryPolicy:
		return CategoryPolicy, true
	}
	return "", false
}

// KnowledgeBaseItem is a static fact/policy snippet fed to the AI assist
// client as grounding context.
type KnowledgeBaseItem struct {
	ID         string            `json:"id"`
	BusinessID string            `json:"business_id"`
	Title      string            `json:"title"`
	Content    string            `json:"content"`
	Category   KnowledgeCategory `json:"category"`
	CreatedAt  time.Time         `json:"created_at"`
}
