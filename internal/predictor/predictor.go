// Package predictor bridges prediction requests to the external Python model
// process over JSON on stdin/stdout.
//
// One process is spawned per logical request; there is no retry and no
// persistent worker. The three failure classes are kept distinct so handlers
// can report a specific sub-reason: the process failed to start, it exited
// non-zero, or it produced output we could not interpret.
package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// Sentinel failure classes.
var (
	ErrStart     = errors.New("predictor: failed to start process")
	ErrExit      = errors.New("predictor: process exited with failure")
	ErrBadOutput = errors.New("predictor: invalid response from process")
)

// Features is the model's input vector for one match. Field order matters to
// the model, not to this bridge; the Python side reindexes by name.
type Features struct {
	MatchID          string `json:"matchId,omitempty"`
	ChampionID       int    `json:"championId"`
	Kills            int    `json:"kills"`
	Deaths           int    `json:"deaths"`
	Assists          int    `json:"assists"`
	TotalDamageDealt int    `json:"totalDamageDealt"`
	TotalDamageTaken int    `json:"totalDamageTaken"`
	GoldEarned       int    `json:"goldEarned"`
}

// Prediction is the model's answer for one match.
type Prediction struct {
	MatchID    string  `json:"matchId,omitempty"`
	Placement  int     `json:"placement"`
	Confidence float64 `json:"confidence"`
}

// Bridge spawns the external predictor process.
type Bridge struct {
	python  string
	script  string
	timeout time.Duration
	logger  *slog.Logger
}

// NewBridge creates a bridge around the configured interpreter + script.
func NewBridge(python, script string, timeout time.Duration, logger *slog.Logger) *Bridge {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Bridge{python: python, script: script, timeout: timeout, logger: logger}
}

// singleResponse mirrors the script's single-prediction envelope.
type singleResponse struct {
	Success    bool    `json:"success"`
	Placement  int     `json:"placement"`
	Confidence float64 `json:"confidence"`
	Error      string  `json:"error"`
}

// batchResponse mirrors the script's --batch envelope.
type batchResponse struct {
	Success bool         `json:"success"`
	Results []Prediction `json:"results"`
	Error   string       `json:"error"`
}

// PredictWin runs one single-match prediction.
func (b *Bridge) PredictWin(ctx context.Context, features Features) (*Prediction, error) {
	out, err := b.run(ctx, features)
	if err != nil {
		return nil, err
	}

	var resp singleResponse
	if err := json.Unmarshal(out, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadOutput, err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("%w: %s", ErrBadOutput, resp.Error)
	}
	return &Prediction{Placement: resp.Placement, Confidence: resp.Confidence}, nil
}

// PredictPlacements runs one batch prediction over multiple matches.
func (b *Bridge) PredictPlacements(ctx context.Context, features []Features) ([]Prediction, error) {
	out, err := b.run(ctx, features, "--batch")
	if err != nil {
		return nil, err
	}

	var resp batchResponse
	if err := json.Unmarshal(out, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadOutput, err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("%w: %s", ErrBadOutput, resp.Error)
	}
	if resp.Results == nil {
		resp.Results = []Prediction{}
	}
	return resp.Results, nil
}

// run spawns the process, writes the JSON payload to stdin, closes it, and
// returns accumulated stdout after exit.
func (b *Bridge) run(ctx context.Context, payload interface{}, args ...string) ([]byte, error) {
	input, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: encode request: %v", ErrBadOutput, err)
	}

	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	cmdArgs := append([]string{b.script}, args...)
	cmd := exec.CommandContext(ctx, b.python, cmdArgs...)
	cmd.Stdin = bytes.NewReader(input)
	// Orphaned grandchildren can hold the stdout pipe open past the kill;
	// don't let Wait block on them.
	cmd.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStart, err)
	}

	if err := cmd.Wait(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("%w: timed out after %s", ErrExit, b.timeout)
		}
		b.logger.Error("predictor process failed",
			"error", err, "stderr", strings.TrimSpace(stderr.String()))
		return nil, fmt.Errorf("%w: %v", ErrExit, err)
	}

	return stdout.Bytes(), nil
}
