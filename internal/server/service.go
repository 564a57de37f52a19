package server

import (
	"encoding/json"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/inbetween/internal/game"
)

// Service translates inbound client intents into turn engine calls. It does
// boundary validation only (malformed codes, bad buy-ins); turn-level
// authorization lives in the engine, where unauthorized actions are silent
// no-ops.
type Service struct {
	registry *game.Registry
	server   *Server
	logger   *log.Logger
}

// NewService creates the intent dispatcher
func NewService(registry *game.Registry, server *Server, logger *log.Logger) *Service {
	return &Service{
		registry: registry,
		server:   server,
		logger:   logger.WithPrefix("service"),
	}
}

// Dispatch routes one inbound message from a connection
func (s *Service) Dispatch(conn *Connection, msg *Message) {
	switch msg.Type {
	case MessageTypeCreateRoom:
		var data CreateRoomData
		if s.decode(conn, msg, &data) {
			s.handleCreateRoom(conn, data)
		}
	case MessageTypeJoinRoom:
		var data JoinRoomData
		if s.decode(conn, msg, &data) {
			s.handleJoinRoom(conn, data)
		}
	case MessageTypeSpectateRoom:
		var data SpectateRoomData
		if s.decode(conn, msg, &data) {
			s.handleSpectateRoom(conn, data)
		}
	case MessageTypeStartGame:
		if room, ok := s.room(conn); ok {
			room.StartGame(conn.ID())
		}
	case MessageTypeSetAnte:
		var data AmountData
		if s.decode(conn, msg, &data) {
			if room, ok := s.room(conn); ok {
				room.SetAnte(conn.ID(), data.AmountCents)
			}
		}
	case MessageTypeAdminAddToPot:
		var data AmountData
		if s.decode(conn, msg, &data) {
			if room, ok := s.room(conn); ok {
				room.AdminAddToPot(conn.ID(), data.AmountCents)
			}
		}
	case MessageTypeEndGameSplit:
		if room, ok := s.room(conn); ok {
			room.EndGameSplit(conn.ID())
		}
	case MessageTypeAceChoice:
		var data AceChoiceData
		if s.decode(conn, msg, &data) {
			if room, ok := s.room(conn); ok {
				room.AceChoice(conn.ID(), data.Choice)
			}
		}
	case MessageTypePlaceBet:
		var data AmountData
		if s.decode(conn, msg, &data) {
			if room, ok := s.room(conn); ok {
				room.PlaceBet(conn.ID(), data.AmountCents)
			}
		}
	case MessageTypePass:
		if room, ok := s.room(conn); ok {
			room.Pass(conn.ID())
		}
	case MessageTypePress67:
		if room, ok := s.room(conn); ok {
			room.PressChallenge(conn.ID())
		}
	case MessageTypeAddCredit:
		var data AmountData
		if s.decode(conn, msg, &data) {
			if room, ok := s.room(conn); ok {
				room.AddCredit(conn.ID(), data.AmountCents)
			}
		}
	case MessageTypeChat:
		var data ChatData
		if s.decode(conn, msg, &data) {
			if room, ok := s.room(conn); ok {
				room.Chat(conn.ID(), data.Message)
			}
		}
	default:
		s.logger.Debug("Unknown message type", "type", msg.Type, "session", conn.ID())
	}
}

// HandleDisconnect cleans a departing connection out of its room, deleting
// the room when it empties.
func (s *Service) HandleDisconnect(conn *Connection) {
	code := conn.Room()
	if code == "" {
		return
	}
	room, ok := s.registry.Get(code)
	if !ok {
		return
	}
	if room.Disconnect(conn.ID()) {
		s.registry.Delete(code)
	}
}

func (s *Service) handleCreateRoom(conn *Connection, data CreateRoomData) {
	if data.BuyInCents <= 0 {
		s.sendError(conn, userText(ErrInvalidBuyIn))
		return
	}

	room := s.registry.Create(func(code string) game.Sink {
		return &roomSink{server: s.server, logger: s.logger, code: code}
	})
	conn.SetRoom(room.Code)

	result := room.Join(conn.ID(), strings.TrimSpace(data.Name), data.BuyInCents)
	s.send(conn, MessageTypeRoomCreated, RoomCreatedData{
		Code:  room.Code,
		Name:  result.Name,
		State: room.Snapshot(),
	})
}

func (s *Service) handleJoinRoom(conn *Connection, data JoinRoomData) {
	room, ok := s.registry.Get(strings.ToUpper(strings.TrimSpace(data.Code)))
	if !ok {
		s.sendError(conn, userText(ErrRoomNotFound))
		return
	}
	if data.BuyInCents <= 0 {
		s.sendError(conn, userText(ErrInvalidBuyIn))
		return
	}

	conn.SetRoom(room.Code)
	result := room.Join(conn.ID(), strings.TrimSpace(data.Name), data.BuyInCents)

	role := RolePlayer
	if !result.Seated {
		role = RoleWaiting
	}
	s.send(conn, MessageTypeRoomJoined, RoomJoinedData{
		Code:  room.Code,
		Name:  result.Name,
		Role:  role,
		State: room.Snapshot(),
	})
}

func (s *Service) handleSpectateRoom(conn *Connection, data SpectateRoomData) {
	room, ok := s.registry.Get(strings.ToUpper(strings.TrimSpace(data.Code)))
	if !ok {
		s.sendError(conn, userText(ErrRoomNotFound))
		return
	}

	conn.SetRoom(room.Code)
	name := room.Spectate(conn.ID(), strings.TrimSpace(data.Name))
	s.send(conn, MessageTypeRoomJoined, RoomJoinedData{
		Code:  room.Code,
		Name:  name,
		Role:  RoleSpectator,
		State: room.Snapshot(),
	})
}

// room resolves the connection's current room; intents from sessions not in
// any room are dropped.
func (s *Service) room(conn *Connection) (*game.Room, bool) {
	code := conn.Room()
	if code == "" {
		return nil, false
	}
	return s.registry.Get(code)
}

func (s *Service) decode(conn *Connection, msg *Message, v interface{}) bool {
	if err := json.Unmarshal(msg.Data, v); err != nil {
		s.logger.Debug("Malformed message data", "type", msg.Type, "session", conn.ID(), "error", err)
		s.sendError(conn, userText(ErrMalformedData))
		return false
	}
	return true
}

func (s *Service) send(conn *Connection, t MessageType, data interface{}) {
	msg, err := NewMessage(t, data)
	if err != nil {
		s.logger.Error("Failed to encode response", "type", t, "error", err)
		return
	}
	_ = conn.SendMessage(msg)
}

func (s *Service) sendError(conn *Connection, text string) {
	s.send(conn, MessageTypeRoomError, RoomErrorData{Text: text})
}
