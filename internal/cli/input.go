// Package cli handles cmd line input for DBG and testing the analyzers
// without an IPC client attached.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/campuslink/textguard/pkg/config"
	"github.com/campuslink/textguard/pkg/engine"
	"github.com/charmbracelet/log"
)

// InputHandler processes user input from stdin, running one analyzer per
// line. Lines may start with a command prefix (analyze:, scan:, censor:,
// severity:, fix:); bare lines use the configured default command.
type InputHandler struct {
	engine       *engine.Engine
	defaultCmd   string
	maxTextLen   int
	showIssues   bool
	requestCount int
}

// NewInputHandler handles initialization of the InputHandler from config.
func NewInputHandler(eng *engine.Engine, cfg *config.Config) *InputHandler {
	return &InputHandler{
		engine:     eng,
		defaultCmd: cfg.CLI.DefaultCommand,
		maxTextLen: cfg.Server.MaxTextLen,
		showIssues: cfg.CLI.ShowIssues,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed input to handleInput() for processing.
// Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start() error {
	log.Print("TextGuard CLI")
	reader := bufio.NewReader(os.Stdin)
	log.Print("type text and press Enter to analyze it, or prefix with analyze:, scan:, censor:, severity:, fix: (Ctrl+C to exit):")

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		h.handleInput(line)
	}
}

// handleInput splits the optional command prefix off a line and runs the
// matching analyzer, logging the result.
func (h *InputHandler) handleInput(line string) {
	h.requestCount++

	cmd := h.defaultCmd
	text := line
	if before, after, found := strings.Cut(line, ":"); found {
		switch strings.ToLower(strings.TrimSpace(before)) {
		case "analyze", "scan", "censor", "severity", "fix":
			cmd = strings.ToLower(strings.TrimSpace(before))
			text = strings.TrimSpace(after)
		}
	}

	if text == "" {
		log.Error("Empty text after command prefix")
		return
	}
	if len(text) > h.maxTextLen {
		log.Errorf("Text too long: %d chars (max %d)", len(text), h.maxTextLen)
		return
	}

	start := time.Now()
	switch cmd {
	case "scan":
		h.runScan(text)
	case "censor":
		h.runCensor(text)
	case "severity":
		h.runSeverity(text)
	case "fix":
		h.runFix(text)
	default:
		h.runAnalyze(text)
	}
	log.Debugf("Took [ %v ] for request #%d", time.Since(start), h.requestCount)
}

func (h *InputHandler) runAnalyze(text string) {
	rep := h.engine.CheckText("", text)
	log.Printf("score: %d  status: %s  profanity: %v  readability: %.1f (%s)",
		rep.QualityScore, rep.Status, rep.HasProfanity, rep.Readability.Score, rep.Readability.Level)

	if !h.showIssues {
		return
	}
	if len(rep.Issues) == 0 {
		log.Print("no issues found")
		return
	}
	for i, is := range rep.Issues {
		detail := is.Message
		if is.Suggestion != "" {
			detail = fmt.Sprintf("%s -> %s", is.Message, is.Suggestion)
		}
		log.Printf("%2d. [%s/%s] %s", i+1, is.Category, is.Severity, detail)
	}
}

func (h *InputHandler) runScan(text string) {
	result := h.engine.ScanProfanity(text)
	if !result.HasMatch {
		log.Print("clean")
		return
	}
	log.Printf("profanity (%s): %s", result.Language, strings.Join(result.Matches, ", "))
}

func (h *InputHandler) runCensor(text string) {
	log.Printf("censored: %s", h.engine.Censor(text))
}

func (h *InputHandler) runSeverity(text string) {
	log.Printf("severity: %s", h.engine.Severity(text))
}

func (h *InputHandler) runFix(text string) {
	result := h.engine.AutoCorrect(text)
	if !result.HasChanges {
		log.Print("nothing to fix")
		return
	}
	log.Printf("fixed: %s", result.Corrected)
	for i, c := range result.Changes {
		log.Printf("%2d. %s: '%s' -> '%s'", i+1, c.Type, c.From, c.To)
	}
}
