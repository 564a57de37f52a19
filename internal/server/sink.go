package server

import (
	"github.com/charmbracelet/log"

	"github.com/lox/inbetween/internal/game"
)

// roomSink adapts one room's event stream onto the WebSocket server. Events
// are marshalled immediately, so the room may release its lock as soon as
// the call returns.
type roomSink struct {
	server *Server
	logger *log.Logger
	code   string
}

func (s *roomSink) Broadcast(ev game.Event) {
	msg, err := NewMessage(MessageType(ev.EventType()), ev)
	if err != nil {
		s.logger.Error("Failed to encode room event", "room", s.code, "type", ev.EventType(), "error", err)
		return
	}
	s.server.BroadcastToRoom(s.code, msg)
}

func (s *roomSink) SendToPlayer(playerID string, ev game.Event) {
	msg, err := NewMessage(MessageType(ev.EventType()), ev)
	if err != nil {
		s.logger.Error("Failed to encode room event", "room", s.code, "type", ev.EventType(), "error", err)
		return
	}
	if err := s.server.SendToSession(playerID, msg); err != nil {
		s.logger.Debug("Dropping event for missing session", "room", s.code, "session", playerID)
	}
}
