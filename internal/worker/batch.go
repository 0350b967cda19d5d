package worker

import (
	"bufio"
	"context"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/ppiankov/contractlens/internal/model"
)

// Analyzer produces a report for one contract source (file path or URL)
type Analyzer interface {
	AnalyzeSource(ctx context.Context, source string) (*model.Report, error)
}

// AnalyzeJob analyzes one source
type AnalyzeJob struct {
	Index    int
	Source   string
	Analyzer Analyzer
	Limiter  *Limiter // Paces URL sources per host; nil disables pacing
}

func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	start := time.Now()
	result := &AnalyzeResult{Index: j.Index, Source: j.Source}

	if j.Limiter != nil && isRemote(j.Source) {
		if err := j.Limiter.Wait(ctx, j.Source); err != nil {
			result.Error = fmt.Errorf("rate limit: %w", err)
			return result
		}
	}

	report, err := j.Analyzer.AnalyzeSource(ctx, j.Source)
	result.Duration = time.Since(start)
	if err != nil {
		result.Error = err
		return result
	}
	result.Report = report
	return result
}

// AnalyzeResult is the outcome of one AnalyzeJob
type AnalyzeResult struct {
	Index    int
	Source   string
	Report   *model.Report
	Error    error
	Duration time.Duration
}

func (r *AnalyzeResult) GetError() error {
	return r.Error
}

// BatchProcessor analyzes many sources concurrently
type BatchProcessor struct {
	analyzer    Analyzer
	concurrency int
	limiter     *Limiter
}

// NewBatchProcessor creates a batch processor. A positive requestsPerSecond paces URL sources per host.
func NewBatchProcessor(analyzer Analyzer, concurrency int, requestsPerSecond float64, burst int) *BatchProcessor {
	b := &BatchProcessor{analyzer: analyzer, concurrency: concurrency}
	if requestsPerSecond > 0 {
		b.limiter = NewLimiter(requestsPerSecond, burst)
	}
	return b
}

// Process analyzes sources and returns results in input order
func (b *BatchProcessor) Process(ctx context.Context, sources []string) []*AnalyzeResult {
	if len(sources) == 0 {
		return []*AnalyzeResult{}
	}

	pool := NewPoolContext(ctx, b.concurrency)
	pool.Start()
	for i, source := range sources {
		pool.Submit(&AnalyzeJob{Index: i, Source: source, Analyzer: b.analyzer, Limiter: b.limiter})
	}

	results := pool.Wait()
	out := make([]*AnalyzeResult, 0, len(results))
	for _, r := range results {
		out = append(out, r.(*AnalyzeResult))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

// ProcessList reads sources from a list file and analyzes them
func (b *BatchProcessor) ProcessList(ctx context.Context, listPath string) ([]*AnalyzeResult, error) {
	sources, err := ReadSources(listPath)
	if err != nil {
		return nil, fmt.Errorf("read sources: %w", err)
	}
	return b.Process(ctx, sources), nil
}

// ProcessDir analyzes every file under dir whose extension is in exts
func (b *BatchProcessor) ProcessDir(ctx context.Context, dir string, exts []string) ([]*AnalyzeResult, error) {
	files, err := CollectFiles(dir, exts)
	if err != nil {
		return nil, err
	}
	return b.Process(ctx, files), nil
}

// ReadSources reads one path or URL per line, skipping blanks, comments and duplicates
func ReadSources(listPath string) ([]string, error) {
	file, err := os.Open(listPath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var sources []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || seen[line] {
			continue
		}
		seen[line] = true
		sources = append(sources, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}
	return sources, nil
}

// CollectFiles walks dir and returns matching regular files in lexical order.
// Extensions are compared case-insensitively and include the dot.
func CollectFiles(dir string, exts []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() && (len(exts) == 0 || slices.Contains(exts, strings.ToLower(filepath.Ext(path)))) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	return files, nil
}

func isRemote(source string) bool {
	u, err := url.Parse(source)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}
