package assist

import (
	"fmt"
	"strings"

	"github.com/Priest98/whatsapp-CRM/models"
)

func conversationLines(msgs []models.Message) string {
	lines := make([]string, 0, len(msgs))
	for _, m := range msgs {
		lines = append(lines, fmt.Sprintf("%s: %s", m.Direction, m.Content))
	}
	return strings.Join(lines, "\n")
}

func knowledgeLines(kb []models.KnowledgeBaseItem) string {
	lines := make([]string, 0, len(kb))
	for _, item := range kb {
		lines = append(lines, fmt.Sprintf("[%s] %s: %s", item.Category, item.Title, item.Content))
	}
	return strings.Join(lines, "\n")
}

func buildReplyPrompt(msgs []models.Message, kb []models.KnowledgeBaseItem, businessName string) string {
	return fmt.Sprintf(`ACT AS: Elite WhatsApp Sales Closer for %q.
GOAL: Provide a helpful, high-intent response that moves the lead to the next stage.

FACTUAL DATA (KNOWLEDGE BASE):
%s

CURRENT CHAT HISTORY:
%s

MANDATORY CONSTRAINTS:
1. TONE: Human-like, professional yet enthusiastic. Use conversational WhatsApp language (avoid corporate speak).
2. LENGTH: ABSOLUTE MAXIMUM 150 characters. Be punchy and concise.
3. CALL TO ACTION: You MUST end the message with a clear question or a specific next step (e.g., "Ready for the link?", "What time works for a call?").
4. FORMATTING: Use 1 relevant emoji to keep it friendly.
5. UNCERTAINTY: If the Knowledge Base doesn't have the answer, say: "Great question! I'll have one of our specialists get back to you on that ASAP. Is there anything else I can help with?"

OUTPUT ONLY THE SUGGESTED WHATSAPP MESSAGE:`, businessName, knowledgeLines(kb), conversationLines(msgs))
}

func buildClassifyPrompt(msgs []models.Message) string {
	return fmt.Sprintf(`Analyze this WhatsApp conversation and classify the lead status for our CRM.

Statuses:
- HOT: Customer is ready to buy, asking for payment details, or highly urgent.
- WARM: Customer shows clear interest, asks specific questions, but hasn't committed yet.
- COLD: Customer is unresponsive, says "no thanks", or is just browsing with low intent.

Conversation:
%s

Output the result in JSON format with "status" and "reasoning" fields.`, conversationLines(msgs))
}

func buildSummaryPrompt(msgs []models.Message) string {
	return fmt.Sprintf(`Provide a highly concise (max 20 words) executive summary of this conversation for a sales lead manager.
Focus on customer intent and current blocker.

Conversation:
%s`, conversationLines(msgs))
}
