package lotbook

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/natefinch/atomic"
)

// Entity kinds, each with its own identifier counter.
const (
	kindCar          = "car"
	kindCustomer     = "customer"
	kindLoan         = "loan"
	kindPayment      = "payment"
	kindAmortization = "amortization"
)

var allKinds = []string{kindCar, kindCustomer, kindLoan, kindPayment, kindAmortization}

// sequences allocates monotonically increasing identifiers per entity
// kind. The counters live in a single key=value file; every allocation
// persists the whole file so disk and memory never diverge.
//
// All access is serialized under one mutex: two overlapping calls, for
// the same kind or different ones, must never observe or produce the
// same identifier. Counters are never reused, even after deletion.
// Overflow of int64 is not handled.
type sequences struct {
	mu   sync.Mutex
	path string
	next map[string]int64
}

// loadSequences reads the counter file, defaulting every known kind to
// 1 when the file or the key is absent. A malformed line is logged and
// skipped.
func loadSequences(path string) (*sequences, error) {
	s := &sequences{path: path, next: make(map[string]int64, len(allKinds))}
	for _, kind := range allKinds {
		s.next[kind] = 1
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			log.Printf("%s:%d: skipping malformed counter line %q", path, lineno, line)
			continue
		}
		n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			log.Printf("%s:%d: skipping invalid counter %q: %v", path, lineno, line, err)
			continue
		}
		s.next[strings.TrimSpace(key)] = n
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	return s, nil
}

// NextID returns the next identifier for the given kind and advances
// the counter. The full counter file is persisted before returning; a
// persist failure is logged, leaving the in-memory counter ahead of
// disk.
func (s *sequences) NextID(kind string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.next[kind]
	if id == 0 {
		id = 1
	}
	s.next[kind] = id + 1
	if err := s.save(); err != nil {
		log.Printf("could not persist counters, in-memory state is ahead of disk: %v", err)
	}
	return id
}

// save writes all counters, sorted by kind for a stable file. Callers
// hold the mutex.
func (s *sequences) save() error {
	kinds := make([]string, 0, len(s.next))
	for kind := range s.next {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)

	var b strings.Builder
	for _, kind := range kinds {
		fmt.Fprintf(&b, "%s=%d\n", kind, s.next[kind])
	}
	if err := atomic.WriteFile(s.path, strings.NewReader(b.String())); err != nil {
		return fmt.Errorf("could not write %q: %w", s.path, err)
	}
	return nil
}
