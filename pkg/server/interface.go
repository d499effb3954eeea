/*
Package server implements msgpack IPC for the text integrity engine.

The protocol is request/response over stdin/stdout: clients send structured
msgpack messages and read msgpack responses back. Each request carries an
ID, an op selector, and the text payload; responses echo the ID so clients
can multiplex.

Ops:

	analyze    - full quality analysis of a title/content pair
	scan       - profanity scan
	censor     - profanity masking
	severity   - profanity severity grade
	autocorrect- deterministic safe fixes
	health     - liveness check plus engine stats

A scan request looks like:

	{"id": "req_001", "op": "scan", "t": "free pizza sa friday"}

and comes back as:

	{"id": "req_001", "hit": false, "m": [], "lang": "", "t": 120}

Timing fields are microseconds. Malformed or oversized payloads produce an
error response, never a dropped connection.
*/
package server

// Request is the envelope every client message uses. Title is only
// meaningful for analyze; Text carries the payload for everything else.
type Request struct {
	ID    string `msgpack:"id"`
	Op    string `msgpack:"op"`
	Title string `msgpack:"title,omitempty"`
	Text  string `msgpack:"t,omitempty"`
}

// IssueMessage mirrors one report.Issue on the wire.
type IssueMessage struct {
	Category   string `msgpack:"cat"`
	Severity   string `msgpack:"sev"`
	Word       string `msgpack:"w,omitempty"`
	Message    string `msgpack:"msg"`
	Suggestion string `msgpack:"sug,omitempty"`
	Language   string `msgpack:"lang,omitempty"`
	Rule       string `msgpack:"rule,omitempty"`
}

// AnalyzeResponse answers an analyze op.
type AnalyzeResponse struct {
	ID           string         `msgpack:"id"`
	Issues       []IssueMessage `msgpack:"issues"`
	QualityScore int            `msgpack:"score"`
	Status       string         `msgpack:"status"`
	HasProfanity bool           `msgpack:"prof"`
	Readability  float64        `msgpack:"read"`
	ReadLevel    string         `msgpack:"read_level"`
	TimeTaken    int64          `msgpack:"t"`
}

// ScanResponse answers a scan op.
type ScanResponse struct {
	ID        string   `msgpack:"id"`
	HasMatch  bool     `msgpack:"hit"`
	Matches   []string `msgpack:"m"`
	Language  string   `msgpack:"lang"`
	TimeTaken int64    `msgpack:"t"`
}

// CensorResponse answers a censor op.
type CensorResponse struct {
	ID        string `msgpack:"id"`
	Text      string `msgpack:"text"`
	TimeTaken int64  `msgpack:"t"`
}

// SeverityResponse answers a severity op.
type SeverityResponse struct {
	ID        string `msgpack:"id"`
	Level     string `msgpack:"level"`
	TimeTaken int64  `msgpack:"t"`
}

// ChangeMessage mirrors one correct.Change on the wire.
type ChangeMessage struct {
	From string `msgpack:"from"`
	To   string `msgpack:"to"`
	Type string `msgpack:"type"`
}

// AutoCorrectResponse answers an autocorrect op.
type AutoCorrectResponse struct {
	ID         string          `msgpack:"id"`
	Original   string          `msgpack:"orig"`
	Corrected  string          `msgpack:"text"`
	HasChanges bool            `msgpack:"changed"`
	Changes    []ChangeMessage `msgpack:"changes"`
	TimeTaken  int64           `msgpack:"t"`
}

// HealthResponse answers a health op.
type HealthResponse struct {
	ID     string         `msgpack:"id"`
	Status string         `msgpack:"status"`
	Stats  map[string]int `msgpack:"stats,omitempty"`
}

// ErrorResponse holds basic error information for failed requests.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
