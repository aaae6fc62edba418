package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ChicagoDave/greenbuild/pkg/design"
)

const (
	sessionReadLimit  = 4096
	handshakeTimeout  = 10 * time.Second
	sessionWriteLimit = 10 * time.Second
)

// Session message types.
const (
	MsgSetOrientation   = "set_orientation"
	MsgSelectArchetype  = "select_archetype"
	MsgSetFloorArea     = "set_floor_area"
	MsgToggleTechnology = "toggle_technology"
	MsgToggleRenewable  = "toggle_renewable"
	MsgReset            = "reset"

	MsgSnapshot = "snapshot"
	MsgError    = "error"
)

// SessionRequest is a client mutation. Value carries degrees or m², ID
// carries a catalog ID.
type SessionRequest struct {
	Type  string  `json:"type"`
	Value float64 `json:"value,omitempty"`
	ID    string  `json:"id,omitempty"`
}

// SessionResponse is pushed after every mutation.
type SessionResponse struct {
	Type      string    `json:"type"`
	SessionID string    `json:"session_id"`
	Sequence  int       `json:"sequence"`
	Snapshot  *Snapshot `json:"snapshot,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// apply returns the configuration after one mutation.
func apply(c design.Configuration, req SessionRequest) (design.Configuration, error) {
	switch req.Type {
	case MsgSetOrientation:
		return c.WithOrientation(req.Value), nil
	case MsgSelectArchetype:
		return c.WithArchetype(req.ID), nil
	case MsgSetFloorArea:
		return c.WithFloorArea(req.Value), nil
	case MsgToggleTechnology:
		return c.ToggleTechnology(req.ID), nil
	case MsgToggleRenewable:
		return c.ToggleRenewable(req.ID), nil
	case MsgReset:
		return design.Default(), nil
	}
	return c, fmt.Errorf("unknown message type %q", req.Type)
}

func (s *Server) upgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:   4096,
		WriteBufferSize:  4096,
		HandshakeTimeout: handshakeTimeout,
		CheckOrigin:      s.checkOrigin,
	}
}

// checkOrigin accepts same-host requests, non-browser clients and the
// configured CORS origins.
func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || origin == "http://"+r.Host || origin == "https://"+r.Host {
		return true
	}
	allowed := s.config.CORS.AllowedOrigins
	return slices.Contains(allowed, "*") || slices.Contains(allowed, origin)
}

// handleSession runs one live design session. The configuration lives only
// as long as the connection.
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	up := s.upgrader()
	conn, err := up.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()
	conn.SetReadLimit(sessionReadLimit)

	id := uuid.NewString()
	log := s.logger.With().Str("session_id", id).Logger()
	s.recorder.SessionOpened()
	defer s.recorder.SessionClosed()
	log.Info().Msg("session opened")

	c := design.Default()
	seq := 0
	send := func(resp SessionResponse) error {
		resp.SessionID = id
		resp.Sequence = seq
		seq++
		data, err := json.Marshal(resp)
		if err != nil {
			return err
		}
		_ = conn.SetWriteDeadline(time.Now().Add(sessionWriteLimit))
		return conn.WriteMessage(websocket.TextMessage, data)
	}
	pushSnapshot := func() error {
		snap := s.snapshot(c, partAll)
		return send(SessionResponse{Type: MsgSnapshot, Snapshot: &snap})
	}

	if err := pushSnapshot(); err != nil {
		log.Debug().Err(err).Msg("initial snapshot failed")
		return
	}

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug().Err(err).Msg("websocket read error")
			}
			break
		}

		var req SessionRequest
		if err := json.Unmarshal(message, &req); err != nil {
			if err := send(SessionResponse{Type: MsgError, Error: "invalid message format"}); err != nil {
				break
			}
			continue
		}

		next, err := apply(c, req)
		if err != nil {
			if err := send(SessionResponse{Type: MsgError, Error: err.Error()}); err != nil {
				break
			}
			continue
		}
		c = next
		log.Debug().Str("type", req.Type).Msg("configuration updated")

		if err := pushSnapshot(); err != nil {
			break
		}
	}

	log.Info().Msg("session closed")
}
