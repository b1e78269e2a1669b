package models

import (
	"strings"
	"time"
)

type MessageDirection string

const (
	DirectionIncoming MessageDirection = "INCOMING"
	DirectionOutgoing MessageDirection = "OUTGOING"
)

type MessageType string

const (
	MessageText  MessageType = "TEXT"
	MessageVoice MessageType = "VOICE"
)

func ParseMessageDirection(s string) (MessageDirection, bool) {
	switch MessageDirection(strings.ToUpper(strings.TrimSpace(s))) {
	case DirectionIncoming:
		return DirectionIncoming, true
	case DirectionOutgoing:
		return DirectionOutgoing, true
	}
	return "", false
}

func ParseMessageType(s string) (MessageType, bool) {
	switch MessageType(strings.ToUpper(strings.TrimSpace(s))) {
	case MessageText:
		return MessageText, true
	case MessageVoice:
		return MessageVoice, true
	}
	return "", false
}

// Message is immutable once created.
type Message struct {
	ID          string           `json:"id"`
	BusinessID  string           `json:"business_id"`
	CustomerID  string           `json:"customer_id"`
	Direction   MessageDirection `json:"direction"`
	Content     string           `json:"content"`
	MessageType MessageType      `json:"message_type"`
	Timestamp   time.Time        `json:"timestamp"`
}
