package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavanmanishd/slotarena/internal/config"
)

func stringSource(name, text string) source {
	return source{
		name: name,
		open: func() (io.ReadCloser, error) { return io.NopCloser(strings.NewReader(text)), nil },
	}
}

func testConfig(t *testing.T, args ...string) *config.Config {
	t.Helper()
	cfg, err := config.Load(args)
	require.NoError(t, err)
	return cfg
}

func TestRun(t *testing.T) {
	cfg := testConfig(t, "--workers", "1", "--top", "2", "--arena.capacity", "4")
	logger, hook := test.NewNullLogger()

	srcs := []source{
		stringSource("a.go", "x := x + 1\nreturn x\n"),
		stringSource("b.go", "return y\n"),
		stringSource("c.go", "x\n"),
	}

	r, err := run(context.Background(), cfg, srcs, logger)
	require.NoError(t, err)

	assert.Equal(t, 3, r.Files)
	assert.Equal(t, 4, r.Lines)
	assert.Equal(t, uint64(11), r.Tokens)
	// x : = + 1 return y
	assert.Equal(t, 7, r.Distinct)
	assert.Equal(t, r.Distinct, r.Refs, "every distinct text should map to one interned reference")
	assert.Equal(t, []TokenCount{{"x", 4}, {"return", 2}}, r.Top)

	// a.go has 8 tokens against 4 slots.
	assert.Equal(t, 1.0, r.PeakUtilization)
	assert.Equal(t, 4, r.Overflow)
	assert.Equal(t, uint64(11), r.Intern.Lookups())
	assert.Positive(t, r.SharedSlots)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "run finished", hook.LastEntry().Message)
}

func TestRunSourceError(t *testing.T) {
	cfg := testConfig(t)
	logger, _ := test.NewNullLogger()

	boom := errors.New("boom")
	srcs := []source{
		stringSource("ok.txt", "fine\n"),
		{name: "bad.txt", open: func() (io.ReadCloser, error) { return nil, boom }},
	}

	_, err := run(context.Background(), cfg, srcs, logger)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "bad.txt")
}

func TestRunCanceled(t *testing.T) {
	cfg := testConfig(t, "--workers", "1")
	logger, _ := test.NewNullLogger()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := run(ctx, cfg, []source{stringSource("big.txt", strings.Repeat("a b c\n", 4096))}, logger)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTopTokens(t *testing.T) {
	counts := map[string]int{"b": 2, "a": 2, "c": 5, "d": 1}
	assert.Equal(t, []TokenCount{{"c", 5}, {"a", 2}, {"b", 2}}, topTokens(counts, 3))
	assert.Empty(t, topTokens(counts, 0))
	assert.Len(t, topTokens(counts, 10), 4)
}

func TestReportPrint(t *testing.T) {
	r := &Report{Files: 1, Lines: 2, Tokens: 3, Top: []TokenCount{{"x", 3}}}
	var buf bytes.Buffer
	r.print(&buf)

	out := buf.String()
	assert.Contains(t, out, "files:            1")
	assert.Contains(t, out, "tokens:           3")
	assert.Contains(t, out, `"x"`)
}

func TestRunParallel(t *testing.T) {
	cfg := testConfig(t, "--workers", "4", "--arena.capacity", "16")
	logger, _ := test.NewNullLogger()

	var srcs []source
	for i := 0; i < 8; i++ {
		srcs = append(srcs, stringSource("f", strings.Repeat("alpha beta gamma\n", 100)))
	}

	r, err := run(context.Background(), cfg, srcs, logger)
	require.NoError(t, err)
	assert.Equal(t, 8, r.Files)
	assert.Equal(t, uint64(8*300), r.Tokens)
	assert.Equal(t, 3, r.Distinct)
	// Racing misses may publish more than one copy; content is what counts.
	assert.GreaterOrEqual(t, r.Refs, r.Distinct)
	assert.Equal(t, []TokenCount{{"alpha", 800}, {"beta", 800}, {"gamma", 800}}, r.Top)
}

func TestRunLogsTokensPerFile(t *testing.T) {
	cfg := testConfig(t, "--workers", "1", "--log.progress-interval", "0")
	logger, hook := test.NewNullLogger()

	srcs := []source{
		stringSource("a.txt", "one two three\n"),
		stringSource("b.txt", "four\n"),
	}

	_, err := run(context.Background(), cfg, srcs, logger)
	require.NoError(t, err)

	perFile := map[string]any{}
	for _, e := range hook.AllEntries() {
		if e.Message == "file tokenized" {
			perFile[e.Data["file"].(string)] = e.Data["tokens"]
		}
	}
	assert.Equal(t, map[string]any{"a.txt": 3, "b.txt": 1}, perFile)
}
