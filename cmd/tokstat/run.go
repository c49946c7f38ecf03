package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"unsafe"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/pavanmanishd/slotarena/intern"
	"github.com/pavanmanishd/slotarena/internal/config"
	"github.com/pavanmanishd/slotarena/internal/lexer"
	"github.com/pavanmanishd/slotarena/internal/logging"
)

const maxLineSize = 1 << 20

// source is one named input.
type source struct {
	name string
	open func() (io.ReadCloser, error)
}

// TokenCount is one row of the frequency table.
type TokenCount struct {
	Text  string
	Count int
}

// Report summarizes a run.
type Report struct {
	Files    int
	Lines    int
	Tokens   uint64
	Distinct int // distinct token texts
	Refs     int // distinct string references behind them

	Intern          intern.Stats
	SharedSlots     int
	PeakUtilization float64
	Overflow        int

	Top []TokenCount
}

// collector merges per-file results.
type collector struct {
	mu     sync.Mutex
	report Report
	counts map[string]int
	refs   map[*byte]struct{}
}

func (c *collector) addFile(lines int, counts map[string]int, refs map[*byte]struct{}, utilization float64, overflow int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.report.Files++
	c.report.Lines += lines
	for text, n := range counts {
		c.counts[text] += n
	}
	for p := range refs {
		c.refs[p] = struct{}{}
	}
	c.report.PeakUtilization = max(c.report.PeakUtilization, utilization)
	c.report.Overflow += overflow
}

// run tokenizes every source with cfg.Workers lexers sharing one intern table.
func run(ctx context.Context, cfg *config.Config, sources []source, logger log.FieldLogger) (*Report, error) {
	shared := intern.NewShared()

	lexers := make(chan *lexer.Lexer, cfg.Workers)
	all := make([]*lexer.Lexer, 0, cfg.Workers)
	for i := 0; i < cfg.Workers; i++ {
		lx, err := lexer.New(cfg.Arena.Capacity, intern.NewTable(shared))
		if err != nil {
			return nil, err
		}
		lexers <- lx
		all = append(all, lx)
	}

	c := &collector{
		counts: make(map[string]int),
		refs:   make(map[*byte]struct{}),
	}
	progress := logging.NewProgress(logger, cfg.Logging.ProgressInterval)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for _, src := range sources {
		g.Go(func() error {
			lx := <-lexers
			defer func() { lexers <- lx }()

			n, err := tokenizeSource(ctx, lx, src, c)
			if err != nil {
				return fmt.Errorf("%s: %w", src.name, err)
			}
			progress.Log(log.Fields{"file": src.name, "tokens": n}, "file tokenized")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r := c.report
	for _, lx := range all {
		st := lx.Stats()
		r.Tokens += st.Tokens
		r.Intern = r.Intern.Merge(st.Intern)
	}
	r.Distinct = len(c.counts)
	r.Refs = len(c.refs)
	r.SharedSlots = shared.Len()
	r.Top = topTokens(c.counts, cfg.Top)

	logger.WithFields(log.Fields{
		"files":     r.Files,
		"tokens":    r.Tokens,
		"distinct":  r.Distinct,
		"hit_ratio": fmt.Sprintf("%.3f", r.Intern.HitRatio()),
	}).Info("run finished")
	return &r, nil
}

// tokenizeSource feeds src through lx and returns the number of tokens it held.
func tokenizeSource(ctx context.Context, lx *lexer.Lexer, src source, c *collector) (int, error) {
	rc, err := src.open()
	if err != nil {
		return 0, err
	}
	defer rc.Close()

	// One file is one arena generation.
	defer lx.Reset()

	counts := make(map[string]int)
	refs := make(map[*byte]struct{})
	tokens := 0
	emit := func(tok *lexer.Token) {
		tokens++
		counts[tok.Text]++
		refs[unsafe.StringData(tok.Text)] = struct{}{}
	}

	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lines := 0
	for sc.Scan() {
		lines++
		if lines%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		lx.Tokenize(sc.Bytes(), lines, emit)
	}
	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("read failed: %w", err)
	}

	m := lx.Stats().Arena
	c.addFile(lines, counts, refs, m.Utilization, m.Overflow)
	return tokens, nil
}

// topTokens returns the n most frequent texts, ties broken alphabetically.
func topTokens(counts map[string]int, n int) []TokenCount {
	rows := make([]TokenCount, 0, len(counts))
	for text, count := range counts {
		rows = append(rows, TokenCount{Text: text, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Text < rows[j].Text
	})
	if len(rows) > n {
		rows = rows[:n]
	}
	return rows
}

// print writes r in a human readable form.
func (r *Report) print(w io.Writer) {
	fmt.Fprintf(w, "files:            %d\n", r.Files)
	fmt.Fprintf(w, "lines:            %d\n", r.Lines)
	fmt.Fprintf(w, "tokens:           %d\n", r.Tokens)
	fmt.Fprintf(w, "distinct texts:   %d\n", r.Distinct)
	fmt.Fprintf(w, "string refs:      %d\n", r.Refs)
	fmt.Fprintf(w, "intern hit ratio: %.3f (local %d, shared %d, miss %d, bypass %d, evict %d)\n",
		r.Intern.HitRatio(), r.Intern.LocalHits, r.Intern.SharedHits, r.Intern.Misses, r.Intern.Bypassed, r.Intern.Evictions)
	fmt.Fprintf(w, "shared slots:     %d\n", r.SharedSlots)
	fmt.Fprintf(w, "arena peak:       %.1f%% (overflow %d)\n", r.PeakUtilization*100, r.Overflow)
	for i, row := range r.Top {
		fmt.Fprintf(w, "%3d. %-24q %d\n", i+1, row.Text, row.Count)
	}
}
