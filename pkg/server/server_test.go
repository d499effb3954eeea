package server

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/campuslink/textguard/internal/logger"
	"github.com/campuslink/textguard/pkg/config"
	"github.com/campuslink/textguard/pkg/engine"
	"github.com/vmihailenco/msgpack/v5"
)

// newTestServer wires a server over in-memory buffers instead of
// stdin/stdout.
func newTestServer(cfg *config.Config, in *bytes.Buffer, out *bytes.Buffer) *Server {
	w := bufio.NewWriter(out)
	return &Server{
		engine:  engine.New(),
		config:  cfg,
		decoder: msgpack.NewDecoder(in),
		encoder: msgpack.NewEncoder(w),
		writer:  w,
		log:     logger.New("test"),
	}
}

func encodeRequests(t *testing.T, reqs ...Request) *bytes.Buffer {
	t.Helper()
	var in bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, r := range reqs {
		if err := enc.Encode(r); err != nil {
			t.Fatalf("encoding request: %v", err)
		}
	}
	return &in
}

// drainReady consumes the status:ready handshake the server emits first.
func drainReady(t *testing.T, dec *msgpack.Decoder) {
	t.Helper()
	var ready map[string]string
	if err := dec.Decode(&ready); err != nil {
		t.Fatalf("decoding ready handshake: %v", err)
	}
	if ready["status"] != "ready" {
		t.Fatalf("handshake = %v", ready)
	}
}

func TestServerOps(t *testing.T) {
	in := encodeRequests(t,
		Request{ID: "1", Op: "scan", Text: "free pizza sa friday"},
		Request{ID: "2", Op: "scan", Text: "putangina mo"},
		Request{ID: "3", Op: "censor", Text: "shit happens"},
		Request{ID: "4", Op: "severity", Text: "fuck this shit"},
		Request{ID: "5", Op: "autocorrect", Text: "teh dog should of gone"},
		Request{ID: "6", Op: "analyze", Title: "", Text: "Kelan ang exam po."},
		Request{ID: "7", Op: "health"},
	)
	var out bytes.Buffer
	srv := newTestServer(config.DefaultConfig(), in, &out)

	if err := srv.Start(); err != nil {
		t.Fatalf("Start returned %v", err)
	}

	dec := msgpack.NewDecoder(&out)
	drainReady(t, dec)

	var clean ScanResponse
	if err := dec.Decode(&clean); err != nil {
		t.Fatalf("decoding scan response: %v", err)
	}
	if clean.ID != "1" || clean.HasMatch || len(clean.Matches) != 0 {
		t.Errorf("clean scan = %+v", clean)
	}

	var dirty ScanResponse
	if err := dec.Decode(&dirty); err != nil {
		t.Fatalf("decoding scan response: %v", err)
	}
	if dirty.ID != "2" || !dirty.HasMatch || dirty.Language != "tagalog" {
		t.Errorf("dirty scan = %+v", dirty)
	}

	var censored CensorResponse
	if err := dec.Decode(&censored); err != nil {
		t.Fatalf("decoding censor response: %v", err)
	}
	if censored.Text != "**** happens" {
		t.Errorf("censor = %+v", censored)
	}

	var sev SeverityResponse
	if err := dec.Decode(&sev); err != nil {
		t.Fatalf("decoding severity response: %v", err)
	}
	if sev.Level != "moderate" {
		t.Errorf("severity = %+v", sev)
	}

	var fixed AutoCorrectResponse
	if err := dec.Decode(&fixed); err != nil {
		t.Fatalf("decoding autocorrect response: %v", err)
	}
	if fixed.Corrected != "the dog should have gone" || len(fixed.Changes) != 2 {
		t.Errorf("autocorrect = %+v", fixed)
	}

	var analyzed AnalyzeResponse
	if err := dec.Decode(&analyzed); err != nil {
		t.Fatalf("decoding analyze response: %v", err)
	}
	if analyzed.QualityScore != 90 || analyzed.Status != "review" || len(analyzed.Issues) != 1 {
		t.Errorf("analyze = %+v", analyzed)
	}

	var health HealthResponse
	if err := dec.Decode(&health); err != nil {
		t.Fatalf("decoding health response: %v", err)
	}
	if health.Status != "ok" || len(health.Stats) == 0 {
		t.Errorf("health = %+v", health)
	}
}

func TestServerRejectsOversizedPayload(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.MaxTextLen = 10

	in := encodeRequests(t, Request{ID: "big", Op: "scan", Text: "this text is clearly longer than ten characters"})
	var out bytes.Buffer
	srv := newTestServer(cfg, in, &out)

	if err := srv.Start(); err != nil {
		t.Fatalf("Start returned %v", err)
	}

	dec := msgpack.NewDecoder(&out)
	drainReady(t, dec)

	var errResp ErrorResponse
	if err := dec.Decode(&errResp); err != nil {
		t.Fatalf("decoding error response: %v", err)
	}
	if errResp.ID != "big" || errResp.Code != 413 {
		t.Errorf("error response = %+v", errResp)
	}
}

func TestServerUnknownOp(t *testing.T) {
	in := encodeRequests(t, Request{ID: "x", Op: "frobnicate"})
	var out bytes.Buffer
	srv := newTestServer(config.DefaultConfig(), in, &out)

	if err := srv.Start(); err != nil {
		t.Fatalf("Start returned %v", err)
	}

	dec := msgpack.NewDecoder(&out)
	drainReady(t, dec)

	var errResp ErrorResponse
	if err := dec.Decode(&errResp); err != nil {
		t.Fatalf("decoding error response: %v", err)
	}
	if errResp.Code != 400 {
		t.Errorf("error response = %+v", errResp)
	}
}

// Health respects the report_stats switch.
func TestHealthWithoutStats(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.ReportStats = false

	in := encodeRequests(t, Request{ID: "h", Op: "health"})
	var out bytes.Buffer
	srv := newTestServer(cfg, in, &out)

	if err := srv.Start(); err != nil {
		t.Fatalf("Start returned %v", err)
	}

	dec := msgpack.NewDecoder(&out)
	drainReady(t, dec)

	var health HealthResponse
	if err := dec.Decode(&health); err != nil {
		t.Fatalf("decoding health response: %v", err)
	}
	if health.Status != "ok" || len(health.Stats) != 0 {
		t.Errorf("health = %+v", health)
	}
}
