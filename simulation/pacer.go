package simulation

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// Prompts written by prompt pacers.
const (
	// StepPrompt is written before every prompt-paced step.
	StepPrompt = "Proceed? "
	// ContinuePrompt is written once per run, after the first frame.
	ContinuePrompt = "type to continue: "
)

// stopAnswer is the reply that ends a prompt-paced session.
const stopAnswer = "e"

// TimedPacer waits interval between steps. It returns false with no error
// once ctx is cancelled.
func TimedPacer(interval time.Duration) Pacer {
	return PacerFunc(func(ctx context.Context) (bool, error) {
		if interval <= 0 {
			return ctx.Err() == nil, nil
		}
		t := time.NewTimer(interval)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return false, nil
		case <-t.C:
			return true, nil
		}
	})
}

// PromptPacer asks before every step. Answering "e" (any case, surrounding
// space ignored) or closing the input stops; any other line proceeds.
type PromptPacer struct {
	in     *bufio.Reader
	out    io.Writer
	prompt string
}

// NewPromptPacer reads answers from in and writes prompt to out. Pacers that
// share an input should be handed the same *bufio.Reader, which is used as is.
func NewPromptPacer(in io.Reader, out io.Writer, prompt string) *PromptPacer {
	br, ok := in.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(in)
	}
	return &PromptPacer{in: br, out: out, prompt: prompt}
}

// Wait writes the prompt and blocks for one line of input. Cancellation is
// checked before prompting; a blocked read is not interrupted.
func (p *PromptPacer) Wait(ctx context.Context) (bool, error) {
	if ctx.Err() != nil {
		return false, nil
	}
	if _, err := io.WriteString(p.out, p.prompt); err != nil {
		return false, fmt.Errorf("simulation: write prompt: %w", err)
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("simulation: read answer: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		return false, nil
	}
	return !strings.EqualFold(strings.TrimSpace(line), stopAnswer), nil
}
