package suite

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/npillmayer/chomsky/cyk"
	"github.com/npillmayer/chomsky/scanner"
)

// Result is the outcome of running a single test case.
type Result struct {
	Case
	Accepted bool
	Elapsed  time.Duration
}

// Passed returns true if the outcome matches the expectation.
func (r Result) Passed() bool {
	return r.Accepted == r.Expected
}

// Stats collects the results of a test suite run. Results are in the order of
// the test cases.
type Stats struct {
	Total   int
	Passed  int
	Failed  int
	Results []Result
}

// SuccessRate returns the percentage of passed test cases.
func (s *Stats) SuccessRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Passed) / float64(s.Total) * 100
}

// AverageTime returns the average recognition time per test case.
func (s *Stats) AverageTime() time.Duration {
	if len(s.Results) == 0 {
		return 0
	}
	var sum time.Duration
	for _, r := range s.Results {
		sum += r.Elapsed
	}
	return sum / time.Duration(len(s.Results))
}

// Failures returns the results of failed test cases.
func (s *Stats) Failures() []Result {
	var failed []Result
	for _, r := range s.Results {
		if !r.Passed() {
			failed = append(failed, r)
		}
	}
	return failed
}

// Tokenize splits a sentence into words.
type Tokenize func(sentence string) []string

type runner struct {
	workers  int
	tokenize Tokenize
}

// Option configures a test suite run.
type Option func(r *runner)

// Workers sets the number of concurrent workers. Values < 1 are ignored.
func Workers(n int) Option {
	return func(r *runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithTokenizer replaces the default tokenizer, which splits sentences at
// whitespace and lower-cases words.
func WithTokenizer(tokenize Tokenize) Option {
	return func(r *runner) {
		if tokenize != nil {
			r.tokenize = tokenize
		}
	}
}

func lowercaseWords(sentence string) []string {
	return scanner.Words(scanner.WordTokenizer(sentence, scanner.Lowercase(true)))
}

// Run recognizes the sentences of all test cases with ix and compares the
// outcome with the expectation. Test cases are distributed over a pool of
// workers, sharing the index.
func Run(ix *cyk.Index, cases []Case, opts ...Option) *Stats {
	r := &runner{workers: runtime.NumCPU(), tokenize: lowercaseWords}
	for _, opt := range opts {
		opt(r)
	}
	results := make([]Result, len(cases))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < r.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = r.run(ix, cases[i])
			}
		}()
	}
	for i := range cases {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	stats := &Stats{Total: len(cases), Results: results}
	for _, res := range results {
		if res.Passed() {
			stats.Passed++
		} else {
			stats.Failed++
			tracer().Debugf("FAIL line %d: '%s' expected %s", res.Line, res.Sentence, outcome(res.Expected))
		}
	}
	tracer().Infof("%d test cases, %d passed, %d failed", stats.Total, stats.Passed, stats.Failed)
	return stats
}

func (r *runner) run(ix *cyk.Index, c Case) Result {
	words := r.tokenize(c.Sentence)
	start := time.Now()
	accepted, _ := cyk.Recognize(ix, words)
	return Result{Case: c, Accepted: accepted, Elapsed: time.Since(start)}
}

// Export writes a plain text report of a test suite run.
func Export(w io.Writer, stats *Stats) error {
	rule := strings.Repeat("=", 70)
	var b strings.Builder
	fmt.Fprintf(&b, "%s\nCYK TEST RESULTS\n%s\n\n", rule, rule)
	fmt.Fprintf(&b, "Total:        %d\n", stats.Total)
	fmt.Fprintf(&b, "Passed:       %d\n", stats.Passed)
	fmt.Fprintf(&b, "Failed:       %d\n", stats.Failed)
	fmt.Fprintf(&b, "Success rate: %.1f%%\n", stats.SuccessRate())
	fmt.Fprintf(&b, "Average time: %.3f ms\n\n", ms(stats.AverageTime()))
	fmt.Fprintf(&b, "%s\nDETAILED RESULTS\n%s\n\n", rule, rule)
	fmt.Fprintf(&b, "%-40s %-10s %-10s %-8s %s\n", "Sentence", "Expected", "Actual", "Status", "Time(ms)")
	fmt.Fprintf(&b, "%s\n", strings.Repeat("-", 70))
	for _, r := range stats.Results {
		status := "PASS"
		if !r.Passed() {
			status = "FAIL"
		}
		fmt.Fprintf(&b, "%-40s %-10s %-10s %-8s %10.3f\n", r.Sentence,
			strings.ToUpper(outcome(r.Expected)), strings.ToUpper(outcome(r.Accepted)),
			status, ms(r.Elapsed))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
