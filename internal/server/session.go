package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"
	"github.com/janpfeifer/GoMemory/internal/game"
	"k8s.io/klog/v2"
)

// sendBufferSize is the number of outgoing messages a session queues before
// the engine waits for the writer.
const sendBufferSize = 32

// writeTimeout bounds every write to the client.
const writeTimeout = 5 * time.Second

// Session is one game played over one WebSocket connection.
// It owns its Engine: the game lives and dies with the connection.
type Session struct {
	ID     string
	Engine *game.Engine

	conn *websocket.Conn
	send chan game.WsMessage
	done chan struct{}
}

func newSession(id string, conn *websocket.Conn) *Session {
	return &Session{
		ID:   id,
		conn: conn,
		send: make(chan game.WsMessage, sendBufferSize),
		done: make(chan struct{}),
	}
}

// HandleWS upgrades the connection and runs a new game session on it until the
// client goes away.
func (s *ServerState) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		klog.Errorf("HandleWS: failed to accept websocket: %v", err)
		return
	}
	defer conn.CloseNow()

	id, err := uuid.NewV7()
	if err != nil {
		klog.Errorf("HandleWS: failed to create session ID: %v", err)
		conn.Close(websocket.StatusInternalError, "failed to create session")
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	session := newSession(id.String(), conn)
	session.Engine = game.NewEngine(s.Config.Game, session.pushState)
	s.addSession(session)
	klog.Infof("Session %s: started (%d live sessions)", session.ID, s.NumSessions())
	defer func() {
		close(session.done)
		session.Engine.Close()
		s.removeSession(session.ID)
		klog.Infof("Session %s: ended", session.ID)
	}()

	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		session.writeLoop(ctx)
	}()
	defer func() {
		cancel()
		<-writerDone
	}()

	session.pushState(session.Engine.State())
	session.readLoop(ctx)
}

// readLoop applies the client requests to the engine until the connection fails.
func (session *Session) readLoop(ctx context.Context) {
	for {
		var msg game.WsMessage
		if err := wsjson.Read(ctx, session.conn, &msg); err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure || ctx.Err() != nil {
				klog.V(1).Infof("Session %s: connection closed", session.ID)
			} else {
				klog.Warningf("Session %s: read error: %v", session.ID, err)
			}
			return
		}
		if err := session.handleMessage(msg); err != nil {
			klog.V(1).Infof("Session %s: %v", session.ID, err)
			session.pushError(err.Error())
		}
	}
}

func (session *Session) handleMessage(msg game.WsMessage) error {
	p, err := msg.Parse()
	if err != nil {
		return fmt.Errorf("invalid message: %w", err)
	}
	switch m := p.(type) {
	case *game.FlipMessage:
		session.Engine.RequestFlip(m.CardID)
	case *game.RestartMessage:
		session.Engine.Restart()
	default:
		return fmt.Errorf("unexpected message type %q from client", msg.Type)
	}
	return nil
}

// writeLoop sends the queued messages to the client, in order.
func (session *Session) writeLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-session.send:
			writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := wsjson.Write(writeCtx, session.conn, msg)
			cancel()
			if err != nil {
				klog.Warningf("Session %s: write error: %v", session.ID, err)
				session.conn.CloseNow()
				return
			}
		}
	}
}

// pushState is the engine's change listener: it queues the new view for the client.
func (session *Session) pushState(state game.GameState) {
	msg, err := game.NewWsMessage(game.MsgTypeState, game.StateMessage{
		SessionID: session.ID,
		Game:      state.View(),
	})
	if err != nil {
		klog.Errorf("Session %s: failed to create state message: %v", session.ID, err)
		return
	}
	session.queue(msg)
}

func (session *Session) pushError(message string) {
	msg, err := game.NewWsMessage(game.MsgTypeError, game.ErrorMessage{Message: message})
	if err != nil {
		klog.Errorf("Session %s: failed to create error message: %v", session.ID, err)
		return
	}
	session.queue(msg)
}

func (session *Session) queue(msg game.WsMessage) {
	select {
	case session.send <- msg:
	case <-session.done:
	}
}
