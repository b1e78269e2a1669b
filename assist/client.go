package assist

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Priest98/whatsapp-CRM/models"
)

// Fixed fallback values. The client is a total function over the model
// boundary: real failures are logged here and callers always get a usable
// value back, never an error.
const (
	replyFallback      = "Unable to generate AI reply at this moment."
	replyEmpty         = "I'm sorry, I couldn't generate a response."
	classifyFallback   = "Analysis failed."
	noReasoning        = "No reasoning provided."
	noHistory          = "No conversation history."
	summaryFallback    = "Could not summarize."
	summaryUnavailable = "Summary unavailable."
)

// Client drafts replies, scores leads and summarizes conversations against
// a text-generation backend. Model output is treated as untrusted text.
type Client struct {
	gen          Generator
	businessName string
	summaries    *lru.Cache[string, string]
}

func New(gen Generator, businessName string) *Client {
	cache, _ := lru.New[string, string](256)
	return &Client{gen: gen, businessName: businessName, summaries: cache}
}

// GenerateReply drafts a suggested WhatsApp reply grounded on the
// knowledge base and conversation history.
func (c *Client) GenerateReply(ctx context.Context, msgs []models.Message, kb []models.KnowledgeBaseItem) string {
	prompt := buildReplyPrompt(msgs, kb, c.businessName)
	out, err := c.gen.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("assist: reply generation failed: %v", err)
		return replyFallback
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return replyEmpty
	}
	return out
}

// ClassifyLead scores the conversation into HOT/WARM/COLD. The status is
// validated against the closed enum; anything unparseable resolves to COLD
// so a lead is never left without a status.
func (c *Client) ClassifyLead(ctx context.Context, msgs []models.Message) models.LeadClassification {
	cold := models.LeadClassification{Status: models.LeadCold, Reasoning: classifyFallback}

	raw, err := c.gen.GenerateJSON(ctx, buildClassifyPrompt(msgs), classificationSchema())
	if err != nil {
		log.Printf("assist: classify failed: %v", err)
		return cold
	}
	var parsed struct {
		Status    string `json:"status"`
		Reasoning string `json:"reasoning"`
	}
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &parsed); err != nil {
		log.Printf("assist: classify returned malformed JSON: %v", err)
		return cold
	}
	status, ok := models.ParseLeadStatus(parsed.Status)
	if !ok {
		log.Printf("assist: classify returned out-of-enum status %q", parsed.Status)
		return cold
	}
	reasoning := strings.TrimSpace(parsed.Reasoning)
	if reasoning == "" {
		reasoning = noReasoning
	}
	return models.LeadClassification{Status: status, Reasoning: reasoning}
}

// SummarizeConversation produces a short executive summary of the thread.
// An empty thread short-circuits without an external call, and summaries
// are cached per customer until a new message lands.
func (c *Client) SummarizeConversation(ctx context.Context, customerID string, msgs []models.Message) string {
	if len(msgs) == 0 {
		return noHistory
	}
	key := customerID + "/" + msgs[len(msgs)-1].ID
	if cached, ok := c.summaries.Get(key); ok {
		return cached
	}
	out, err := c.gen.GenerateText(ctx, buildSummaryPrompt(msgs))
	if err != nil {
		log.Printf("assist: summarize failed: %v", err)
		return summaryFallback
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return summaryUnavailable
	}
	c.summaries.Add(key, out)
	return out
}

// stripCodeFence removes a markdown ```json fence if the model wrapped its
// output in one despite JSON mode.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
