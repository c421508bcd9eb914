package main

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/jonlawlor/fdkeys"
	"github.com/jonlawlor/fdkeys/fdfile"
	"github.com/jonlawlor/fdkeys/report"
)

// job is one schema waiting for its candidate keys.
type job struct {
	index  int
	path   string
	schema *fdkeys.Schema
}

// analyze loads every file in paths and finds their candidate keys, with at
// most workers enumerations running at the same time.  All files are read
// before any enumeration starts, so that a malformed file stops the run
// without partial results.  Reports come back in the order of paths.
func analyze(paths []string, workers int, log zerolog.Logger) ([]*report.Report, error) {
	jobs := make([]job, len(paths))
	for i, path := range paths {
		s, err := fdfile.Load(path)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("file", path).Int("attributes", s.Heading().Degree()).
			Int("dependencies", s.Dependencies().Len()).Msg("file loaded")
		jobs[i] = job{i, path, s}
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	reports := make([]*report.Report, len(jobs))
	queue := make(chan job)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for j := range queue {
				flog := log.With().Str("file", j.path).Logger()
				r := report.New(j.path, j.schema, fdkeys.WithLogger(flog))
				flog.Info().Int("keys", len(r.Keys)).Str("elapsed", r.Elapsed).Msg("candidate keys found")
				// each index is written by exactly one worker
				reports[j.index] = r
			}
		}()
	}
	for _, j := range jobs {
		queue <- j
	}
	close(queue)
	wg.Wait()
	return reports, nil
}
