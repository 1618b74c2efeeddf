// Package httpapi exposes the dispatcher over HTTP for programmatic
// callers that are not the in-process agent.
package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hashgraph-labs/ledgerkit/pkg/ledger"
	"github.com/hashgraph-labs/ledgerkit/pkg/ledgerkit"
	"github.com/hashgraph-labs/ledgerkit/pkg/logging"
	"github.com/hashgraph-labs/ledgerkit/pkg/operr"
)

type Server struct {
	dispatcher *ledgerkit.Dispatcher
	echo       *echo.Echo
	logger     *slog.Logger
}

func NewServer(d *ledgerkit.Dispatcher, gatherer prometheus.Gatherer) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	s := &Server{
		dispatcher: d,
		echo:       e,
		logger:     logging.NewComponentLogger(slog.Default(), "httpapi"),
	}

	e.POST("/v1/call", s.handleCall)
	e.GET("/v1/operations", s.handleOperations)
	e.GET("/v1/backend", s.handleBackend)
	e.GET("/v1/topics/:id/stream", s.handleTopicStream)
	e.GET("/healthz", s.handleHealth)
	if gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}
	return s
}

func (s *Server) Start(addr string) error {
	s.logger.Info("http_listening", slog.String("addr", addr))
	return s.echo.Start(addr)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler { return s.echo }

type callRequest struct {
	Operation string         `json:"operation"`
	Arguments map[string]any `json:"arguments"`
}

type callResponse struct {
	Operation string         `json:"operation"`
	Mode      string         `json:"mode"`
	Summary   string         `json:"summary"`
	Fields    map[string]any `json:"fields,omitempty"`
}

type errorResponse struct {
	Kind    string         `json:"kind"`
	Message string         `json:"message"`
	Detail  map[string]any `json:"detail,omitempty"`
}

func (s *Server) handleCall(c echo.Context) error {
	var req callRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Kind:    string(operr.KindInvalidInput),
			Message: "malformed request body",
		})
	}
	if req.Operation == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Kind:    string(operr.KindInvalidInput),
			Message: "operation is required",
		})
	}

	res, cerr := s.dispatcher.Call(c.Request().Context(), req.Operation, req.Arguments)
	if cerr != nil {
		s.logger.Warn("call_failed",
			slog.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			slog.String("operation", req.Operation),
			slog.String("kind", string(cerr.Kind)))
		return c.JSON(statusFor(cerr.Kind), errorResponse{
			Kind:    string(cerr.Kind),
			Message: cerr.Error(),
			Detail:  cerr.Detail,
		})
	}
	return c.JSON(http.StatusOK, callResponse{
		Operation: res.Operation,
		Mode:      string(res.Mode),
		Summary:   res.Summary,
		Fields:    res.Fields,
	})
}

type operationInfo struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

func (s *Server) handleOperations(c echo.Context) error {
	entries := s.dispatcher.Registry().List()
	out := make([]operationInfo, len(entries))
	for i, e := range entries {
		out[i] = operationInfo{
			Name:        e.Name,
			Description: e.Description,
			Parameters:  e.Schema.JSONSchema(),
		}
	}
	return c.JSON(http.StatusOK, map[string]any{"operations": out})
}

func (s *Server) handleBackend(c echo.Context) error {
	b := s.dispatcher.Backend()
	resp := map[string]any{
		"mode":     string(b.Mode()),
		"operator": b.Operator().String(),
	}
	if b.Mode() == ledgerkit.ModeLive {
		resp["network"] = b.Network()
	} else {
		resp["reasons"] = b.Reasons()
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

// handleTopicStream upgrades to a websocket and relays topic messages
// as JSON frames until the subscription or the peer closes.
func (s *Server) handleTopicStream(c echo.Context) error {
	topicID, err := ledger.ParseEntityID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Kind:    string(operr.KindInvalidInput),
			Message: "malformed topic id",
		})
	}
	streamer, ok := s.dispatcher.Backend().Client().(ledger.TopicStreamer)
	if !ok {
		return c.JSON(http.StatusNotImplemented, errorResponse{
			Kind:    string(operr.KindBackendUnavailable),
			Message: "backend does not support topic streaming",
		})
	}
	stream, err := streamer.SubscribeTopic(c.Request().Context(), topicID)
	if err != nil {
		if errors.Is(err, ledger.ErrTopicNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{
				Kind:    string(operr.KindBackendRejected),
				Message: err.Error(),
			})
		}
		return c.JSON(http.StatusBadGateway, errorResponse{
			Kind:    string(operr.KindBackendUnavailable),
			Message: err.Error(),
		})
	}
	defer stream.Close()

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	// Drain reads so a peer disconnect is noticed even while the
	// topic is quiet.
	peerClosed := make(chan struct{})
	go func() {
		defer close(peerClosed)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case msg, ok := <-stream.Messages():
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return nil
			}
			frame := map[string]any{
				"sequence_number": msg.SequenceNumber,
				"message":         string(msg.Contents),
				"consensus_time":  msg.ConsensusTime.Format(time.RFC3339Nano),
			}
			if err := conn.WriteJSON(frame); err != nil {
				return nil
			}
		case <-peerClosed:
			return nil
		}
	}
}

func statusFor(kind operr.Kind) int {
	switch kind {
	case operr.KindUnknownOperation:
		return http.StatusNotFound
	case operr.KindInvalidInput:
		return http.StatusBadRequest
	case operr.KindBackendRejected:
		return http.StatusUnprocessableEntity
	case operr.KindTimeout:
		return http.StatusGatewayTimeout
	case operr.KindBackendUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
