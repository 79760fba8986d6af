package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"swayn-kiosk/internal/app"
)

type WSHandler struct {
	service   *app.Service
	catalogID string
	logger    *slog.Logger
	upgrader  websocket.Upgrader
}

// NewWSHandler serves kiosk visits over websockets. catalogID is used when
// the client does not ask for one.
func NewWSHandler(service *app.Service, catalogID string, logger *slog.Logger) *WSHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WSHandler{
		service:   service,
		catalogID: catalogID,
		logger:    logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type answerPayload struct {
	Option int `json:"option"`
}

type namePayload struct {
	Name string `json:"name"`
}

type joinedPayload struct {
	VisitID string   `json:"visitId"`
	Preload []string `json:"preload"`
}

type cuePayload struct {
	Cue string `json:"cue"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades HTTP requests to websockets and runs one kiosk visit per connection.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	catalogID := r.URL.Query().Get("catalog")
	if catalogID == "" {
		catalogID = h.catalogID
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("ws upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	closeSignals := make(chan struct{})
	cues := newCueSink(closeSignals)

	visit, err := h.service.Open(r.Context(), catalogID, cues)
	if err != nil {
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}
	defer h.service.Close(visit.ID())

	updates, cancel, err := visit.Subscribe(r.Context())
	if err != nil {
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}
	defer cancel()

	send := make(chan outboundMessage[any], 16)
	writerDone := make(chan struct{})
	updatesDone := make(chan struct{})

	// Only the writer goroutine touches the connection for writes.
	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				h.logger.Debug("ws write error", "visit", visit.ID(), "error", err)
				return
			}
		}
	}()

	send <- outboundMessage[any]{Type: "joined", Payload: joinedPayload{VisitID: visit.ID(), Preload: visit.Preload()}}

	go func() {
		defer close(updatesDone)
		for {
			var msg outboundMessage[any]
			select {
			case update, ok := <-updates:
				if !ok {
					return
				}
				msg = outboundMessage[any]{Type: "snapshot", Payload: update}
			case cue := <-cues.ch:
				msg = outboundMessage[any]{Type: "cue", Payload: cuePayload{Cue: cue}}
			case <-closeSignals:
				return
			}
			select {
			case send <- msg:
			case <-closeSignals:
				return
			}
		}
	}()

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		if err := h.dispatch(r, visit, inbound); err != nil {
			send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
		}
	}

	close(closeSignals)
	<-updatesDone
	close(send)
	<-writerDone
}

// dispatch applies one inbound action on the visit's loop. State changes
// reach the client through the snapshot subscription.
func (h *WSHandler) dispatch(r *http.Request, visit *app.Visit, inbound inboundMessage) error {
	var action func(k *app.Kiosk) error
	switch inbound.Type {
	case "goToQuizIntro":
		action = ignore((*app.Kiosk).GoToQuizIntro)
	case "beginQuiz":
		action = ignore((*app.Kiosk).BeginQuiz)
	case "retryQuiz":
		action = ignore((*app.Kiosk).RetryQuiz)
	case "goHome":
		action = ignore((*app.Kiosk).GoHome)
	case "goToLocation":
		action = ignore((*app.Kiosk).GoToLocation)
	case "back":
		action = ignore((*app.Kiosk).GoBack)
	case "introNext":
		action = ignore((*app.Kiosk).IntroNext)
	case "introSkip":
		action = ignore((*app.Kiosk).IntroSkip)
	case "toggleMute":
		action = func(k *app.Kiosk) error { k.ToggleMute(); return nil }
	case "audioError":
		action = func(k *app.Kiosk) error { k.AudioFailed(); return nil }
	case "answer":
		var payload answerPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return errInvalidPayload
		}
		action = func(k *app.Kiosk) error {
			_, err := k.SubmitAnswer(payload.Option)
			return err
		}
	case "introName":
		var payload namePayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return errInvalidPayload
		}
		action = func(k *app.Kiosk) error { k.IntroSubmitName(payload.Name); return nil }
	default:
		return errUnsupported
	}

	var actionErr error
	if err := visit.Do(r.Context(), func(k *app.Kiosk) { actionErr = action(k) }); err != nil {
		return err
	}
	return actionErr
}

func ignore(fn func(*app.Kiosk) bool) func(*app.Kiosk) error {
	return func(k *app.Kiosk) error {
		fn(k)
		return nil
	}
}
