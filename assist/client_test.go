package assist

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Priest98/whatsapp-CRM/models"
)

type stubGenerator struct {
	textOut   string
	textErr   error
	jsonOut   string
	jsonErr   error
	textCalls int
	jsonCalls int
}

func (s *stubGenerator) GenerateText(_ context.Context, _ string) (string, error) {
	s.textCalls++
	return s.textOut, s.textErr
}

func (s *stubGenerator) GenerateJSON(_ context.Context, _ string, _ *genai.Schema) (string, error) {
	s.jsonCalls++
	return s.jsonOut, s.jsonErr
}

func sampleThread() []models.Message {
	return []models.Message{
		{ID: "m1", CustomerID: "1", Direction: models.DirectionIncoming, Content: "Does the premium plan include support?", Timestamp: time.Now().Add(-time.Hour)},
		{ID: "m2", CustomerID: "1", Direction: models.DirectionOutgoing, Content: "Yes, priority support is included.", Timestamp: time.Now()},
	}
}

func sampleKB() []models.KnowledgeBaseItem {
	return []models.KnowledgeBaseItem{
		{Title: "Premium Plan Details", Content: "Costs $49/mo.", Category: models.CategoryPricing},
	}
}

func TestGenerateReplySuccess(t *testing.T) {
	gen := &stubGenerator{textOut: "  Yes! Priority support included. Ready for the link? 🚀  "}
	c := New(gen, "Tesla Motors (Mock)")

	reply := c.GenerateReply(context.Background(), sampleThread(), sampleKB())
	assert.Equal(t, "Yes! Priority support included. Ready for the link? 🚀", reply)
	assert.NotEmpty(t, reply)
}

func TestGenerateReplyTransportFailure(t *testing.T) {
	gen := &stubGenerator{textErr: errors.New("connection refused")}
	c := New(gen, "Tesla Motors (Mock)")

	reply := c.GenerateReply(context.Background(), sampleThread(), sampleKB())
	assert.Equal(t, "Unable to generate AI reply at this moment.", reply)
}

func TestGenerateReplyEmptyOutput(t *testing.T) {
	gen := &stubGenerator{textOut: "   "}
	c := New(gen, "Tesla Motors (Mock)")

	reply := c.GenerateReply(context.Background(), sampleThread(), sampleKB())
	assert.Equal(t, "I'm sorry, I couldn't generate a response.", reply)
}

func TestClassifyLeadValidResult(t *testing.T) {
	gen := &stubGenerator{jsonOut: `{"status":"HOT","reasoning":"Asked for the final quote."}`}
	c := New(gen, "b")

	result := c.ClassifyLead(context.Background(), sampleThread())
	assert.Equal(t, models.LeadHot, result.Status)
	assert.Equal(t, "Asked for the final quote.", result.Reasoning)
}

func TestClassifyLeadFencedJSON(t *testing.T) {
	gen := &stubGenerator{jsonOut: "```json\n{\"status\":\"warm\",\"reasoning\":\"Interested.\"}\n```"}
	c := New(gen, "b")

	result := c.ClassifyLead(context.Background(), sampleThread())
	assert.Equal(t, models.LeadWarm, result.Status)
}

func TestClassifyLeadOutOfEnumStatus(t *testing.T) {
	gen := &stubGenerator{jsonOut: `{"status":"LUKEWARM","reasoning":"whatever"}`}
	c := New(gen, "b")

	result := c.ClassifyLead(context.Background(), sampleThread())
	assert.Equal(t, models.LeadCold, result.Status)
	assert.Equal(t, "Analysis failed.", result.Reasoning)
}

func TestClassifyLeadMalformedJSON(t *testing.T) {
	gen := &stubGenerator{jsonOut: `this is not json`}
	c := New(gen, "b")

	result := c.ClassifyLead(context.Background(), sampleThread())
	assert.Equal(t, models.LeadCold, result.Status)
	assert.Equal(t, "Analysis failed.", result.Reasoning)
}

func TestClassifyLeadTransportFailure(t *testing.T) {
	gen := &stubGenerator{jsonErr: errors.New("timeout")}
	c := New(gen, "b")

	result := c.ClassifyLead(context.Background(), sampleThread())
	assert.Equal(t, models.LeadCold, result.Status)
	assert.Equal(t, "Analysis failed.", result.Reasoning)
}

func TestClassifyLeadEmptyReasoning(t *testing.T) {
	gen := &stubGenerator{jsonOut: `{"status":"COLD","reasoning":""}`}
	c := New(gen, "b")

	result := c.ClassifyLead(context.Background(), sampleThread())
	assert.Equal(t, models.LeadCold, result.Status)
	assert.Equal(t, "No reasoning provided.", result.Reasoning)
}

func TestSummarizeEmptyThreadSkipsCall(t *testing.T) {
	gen := &stubGenerator{textOut: "should never be used"}
	c := New(gen, "b")

	out := c.SummarizeConversation(context.Background(), "1", nil)
	assert.Equal(t, "No conversation history.", out)
	assert.Zero(t, gen.textCalls)
}

func TestSummarizeSuccessAndCache(t *testing.T) {
	gen := &stubGenerator{textOut: "Customer wants enterprise quote; blocked on final pricing."}
	c := New(gen, "b")
	thread := sampleThread()

	out := c.SummarizeConversation(context.Background(), "1", thread)
	assert.Equal(t, "Customer wants enterprise quote; blocked on final pricing.", out)
	require.Equal(t, 1, gen.textCalls)

	// same newest message: served from cache
	again := c.SummarizeConversation(context.Background(), "1", thread)
	assert.Equal(t, out, again)
	assert.Equal(t, 1, gen.textCalls)

	// new message invalidates the key
	thread = append(thread, models.Message{ID: "m3", CustomerID: "1", Direction: models.DirectionIncoming, Content: "ok"})
	c.SummarizeConversation(context.Background(), "1", thread)
	assert.Equal(t, 2, gen.textCalls)
}

func TestSummarizeTransportFailure(t *testing.T) {
	gen := &stubGenerator{textErr: errors.New("boom")}
	c := New(gen, "b")

	out := c.SummarizeConversation(context.Background(), "1", sampleThread())
	assert.Equal(t, "Could not summarize.", out)
}

func TestSummarizeEmptyOutput(t *testing.T) {
	gen := &stubGenerator{textOut: ""}
	c := New(gen, "b")

	out := c.SummarizeConversation(context.Background(), "1", sampleThread())
	assert.Equal(t, "Summary unavailable.", out)
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence(`{"a":1}`))
}
