package main

import (
	"net/url"
	"time"

	"github.com/anacrolix/argseq"
	"github.com/anacrolix/argseq/check"
)

const (
	defaultModel    = "standard"
	defaultEndpoint = "https://api.example.com/v1"
)

// Validation for each of the tool's options. Each method turns the looked up
// option into its final value, applying defaults and environment fallback.
type modelCheck struct {
	argseq.Option
}

func newModelCheck(o argseq.Option) modelCheck {
	return modelCheck{o}
}

func (c modelCheck) model() (string, error) {
	return check.StringOr(c.Option, defaultModel, "MODELCFG_MODEL"), nil
}

func (c modelCheck) temperature() (float64, error) {
	return check.FloatRange(c.Option, 1, 0, 1, "MODELCFG_TEMPERATURE")
}

func (c modelCheck) topP() (float64, error) {
	return check.FloatRange(c.Option, 1, 0, 1)
}

func (c modelCheck) maxTokens() (uint64, error) {
	return check.UintRange(c.Option, 4096, 1, 200000)
}

func (c modelCheck) topK() (uint64, error) {
	return check.UintRange(c.Option, 0, 0, 500)
}

func (c modelCheck) contextWindow() (uint64, error) {
	return check.UintRange(c.Option, 200000, 1024, 1000000)
}

func (c modelCheck) flag() (bool, error) {
	return check.BoolOr(c.Option, false), nil
}

func (c modelCheck) stream() (bool, error) {
	return check.BoolOr(c.Option, false, "MODELCFG_STREAM"), nil
}

func (c modelCheck) outputFormat() (string, error) {
	return check.OneOf(c.Option, "text", "text", "json", "markdown")
}

func (c modelCheck) outputDir() (string, error) {
	return check.Path(c.Option, ".", false)
}

func (c modelCheck) existingFile() (string, error) {
	return check.Path(c.Option, "", true)
}

func (c modelCheck) file() (string, error) {
	return check.Path(c.Option, "", false)
}

// Optional. Without a key the configuration can still be inspected.
func (c modelCheck) apiKey() (string, error) {
	return check.StringOr(c.Option, "", "MODELCFG_API_KEY", "ANTHROPIC_API_KEY"), nil
}

func (c modelCheck) endpoint() (*url.URL, error) {
	if c.IsAbsent() {
		return url.Parse(defaultEndpoint)
	}
	u, err := check.URL(c.Option)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, argseq.InvalidValuef("option %q: scheme must be http or https, got %q", c.Name, u.Scheme)
	}
	return u, nil
}

func (c modelCheck) timeout() (time.Duration, error) {
	d, err := check.Duration(c.Option, time.Minute)
	if err == nil && d <= 0 {
		err = argseq.InvalidValuef("option %q must be positive", c.Name)
	}
	return d, err
}

func (c modelCheck) retryCount() (uint64, error) {
	return check.UintRange(c.Option, 3, 0, 10)
}

func (c modelCheck) logLevel() (string, error) {
	return check.OneOf(c.Option, "info", "debug", "info", "warn", "error")
}

func (c modelCheck) systemPrompt() (string, error) {
	return check.StringOr(c.Option, "", "MODELCFG_SYSTEM_PROMPT"), nil
}

func (c modelCheck) maxInputSize() (check.Bytes, error) {
	return check.BytesOr(c.Option, 10<<20)
}
