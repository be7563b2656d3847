package scenarios

import (
	"fmt"
	"io"
	"time"
)

// Report collects the results of one suite run
type Report struct {
	BaseURL string
	Results []Result
}

// AllPassed reports whether every scenario passed. An empty report passes.
func (r Report) AllPassed() bool {
	return len(r.Failed()) == 0
}

// Failed returns the results that did not pass
func (r Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if !res.Passed {
			failed = append(failed, res)
		}
	}
	return failed
}

// Duration is the sum of all scenario durations
func (r Report) Duration() time.Duration {
	var total time.Duration
	for _, res := range r.Results {
		total += res.Duration
	}
	return total
}

// Write prints one line per scenario and a summary line
func (r Report) Write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Target: %s\n", r.BaseURL); err != nil {
		return err
	}
	for _, res := range r.Results {
		status := "PASS"
		if !res.Passed {
			status = "FAIL"
		}
		if _, err := fmt.Fprintf(w, "%s  %-14s %s\n", status, res.Name, res.Duration.Round(time.Millisecond)); err != nil {
			return err
		}
		if res.Err != nil {
			if _, err := fmt.Fprintf(w, "      %v\n", res.Err); err != nil {
				return err
			}
		}
		if res.Screenshot != "" {
			if _, err := fmt.Fprintf(w, "      screenshot: %s\n", res.Screenshot); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(w, "%d passed, %d failed in %s\n",
		len(r.Results)-len(r.Failed()), len(r.Failed()), r.Duration().Round(time.Millisecond))
	return err
}
