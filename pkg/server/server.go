package server

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/campuslink/textguard/internal/logger"
	"github.com/campuslink/textguard/pkg/config"
	"github.com/campuslink/textguard/pkg/engine"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for text analysis requests.
type Server struct {
	engine  *engine.Engine
	config  *config.Config
	decoder *msgpack.Decoder
	encoder *msgpack.Encoder
	writer  *bufio.Writer
	log     *log.Logger

	requestCount int
}

// NewServer creates an analysis server using stdin/stdout for IPC.
func NewServer(eng *engine.Engine, cfg *config.Config) *Server {
	w := bufio.NewWriter(os.Stdout)
	return &Server{
		engine:  eng,
		config:  cfg,
		decoder: msgpack.NewDecoder(bufio.NewReader(os.Stdin)),
		encoder: msgpack.NewEncoder(w),
		writer:  w,
		log:     logger.New("ipc"),
	}
}

// Start begins listening for IPC requests. It returns nil on EOF, which is
// the client's way of shutting us down.
func (s *Server) Start() error {
	s.log.Debug("Starting server.")

	s.sendResponse(map[string]string{"status": "ready"})

	for {
		var request Request
		if err := s.decoder.Decode(&request); err != nil {
			if err == io.EOF {
				s.log.Debugf("Client closed stdin after %d requests", s.requestCount)
				return nil
			}
			s.log.Errorf("Decoding request: %v", err)
			s.sendError("", "Invalid msgpack request", 400)
			return err
		}
		s.requestCount++
		s.handleRequest(request)
	}
}

// handleRequest dispatches one decoded request.
func (s *Server) handleRequest(request Request) {
	if len(request.Title)+len(request.Text) > s.config.Server.MaxTextLen {
		s.sendError(request.ID, fmt.Sprintf("Payload exceeds maximum length of %d characters", s.config.Server.MaxTextLen), 413)
		s.log.Debugf("Oversized payload in request %s", request.ID)
		return
	}

	switch request.Op {
	case "analyze":
		s.handleAnalyze(request)
	case "scan":
		s.handleScan(request)
	case "censor":
		s.handleCensor(request)
	case "severity":
		s.handleSeverity(request)
	case "autocorrect":
		s.handleAutoCorrect(request)
	case "health":
		s.handleHealth(request)
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown op: %s", request.Op), 400)
	}
}

func (s *Server) handleAnalyze(request Request) {
	start := time.Now()
	rep := s.engine.CheckText(request.Title, request.Text)
	elapsed := time.Since(start)

	issues := make([]IssueMessage, len(rep.Issues))
	for i, is := range rep.Issues {
		issues[i] = IssueMessage{
			Category:   string(is.Category),
			Severity:   string(is.Severity),
			Word:       is.Word,
			Message:    is.Message,
			Suggestion: is.Suggestion,
			Language:   is.Language,
			Rule:       is.Rule,
		}
	}

	s.sendResponse(AnalyzeResponse{
		ID:           request.ID,
		Issues:       issues,
		QualityScore: rep.QualityScore,
		Status:       rep.Status,
		HasProfanity: rep.HasProfanity,
		Readability:  rep.Readability.Score,
		ReadLevel:    rep.Readability.Level,
		TimeTaken:    elapsed.Microseconds(),
	})
}

func (s *Server) handleScan(request Request) {
	start := time.Now()
	result := s.engine.ScanProfanity(request.Text)
	elapsed := time.Since(start)

	s.sendResponse(ScanResponse{
		ID:        request.ID,
		HasMatch:  result.HasMatch,
		Matches:   result.Matches,
		Language:  string(result.Language),
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) handleCensor(request Request) {
	start := time.Now()
	masked := s.engine.Censor(request.Text)
	elapsed := time.Since(start)

	s.sendResponse(CensorResponse{
		ID:        request.ID,
		Text:      masked,
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) handleSeverity(request Request) {
	start := time.Now()
	level := s.engine.Severity(request.Text)
	elapsed := time.Since(start)

	s.sendResponse(SeverityResponse{
		ID:        request.ID,
		Level:     string(level),
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) handleAutoCorrect(request Request) {
	start := time.Now()
	result := s.engine.AutoCorrect(request.Text)
	elapsed := time.Since(start)

	changes := make([]ChangeMessage, len(result.Changes))
	for i, c := range result.Changes {
		changes[i] = ChangeMessage{From: c.From, To: c.To, Type: c.Type}
	}

	s.sendResponse(AutoCorrectResponse{
		ID:         request.ID,
		Original:   result.Original,
		Corrected:  result.Corrected,
		HasChanges: result.HasChanges,
		Changes:    changes,
		TimeTaken:  elapsed.Microseconds(),
	})
}

func (s *Server) handleHealth(request Request) {
	response := HealthResponse{ID: request.ID, Status: "ok"}
	if s.config.Server.ReportStats {
		response.Stats = s.engine.Stats()
	}
	s.sendResponse(response)
}

// sendResponse encodes the given response as msgpack and flushes it, so the
// client never waits on a buffered reply.
func (s *Server) sendResponse(response interface{}) {
	if err := s.encoder.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
		return
	}
	if err := s.writer.Flush(); err != nil {
		s.log.Errorf("Flushing response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(ErrorResponse{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
