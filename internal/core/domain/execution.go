package domain

import "errors"

// CodeFile is a single source file submitted for execution.
type CodeFile struct {
	Name    string `json:"name,omitempty"`
	Content string `json:"content"`
}

// ExecutionRequest is the payload forwarded to the sandboxed runner.
type ExecutionRequest struct {
	Language string     `json:"language"`
	Version  string     `json:"version"`
	Files    []CodeFile `json:"files"`
}

// StageResult holds the output of one runner stage (compile or run).
type StageResult struct {
	Stdout string `json:"stdout"`
	Stderr string `json:"stderr"`
	Output string `json:"output"`
	Code   int    `json:"code"`
	Signal string `json:"signal,omitempty"`
}

// ExecutionResult is the runner's verdict, passed through to the client.
// Compile is present only for compiled languages.
type ExecutionResult struct {
	Language string       `json:"language"`
	Version  string       `json:"version"`
	Run      StageResult  `json:"run"`
	Compile  *StageResult `json:"compile,omitempty"`
}

var (
	// ErrRunnerRejected carries the runner's own error message (bad
	// language/version, payload too large, ...).
	ErrRunnerRejected = errors.New("runner rejected the execution request")
	// ErrRunnerUnavailable is returned when the runner cannot be reached
	// or times out.
	ErrRunnerUnavailable = errors.New("code runner unavailable")
)
