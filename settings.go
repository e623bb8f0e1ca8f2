package lotbook

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/natefinch/atomic"
)

// Well-known setting keys written by the bootstrapper. Keys are free
// strings; nothing stops callers from defining their own.
const (
	SettingCurrency      = "currency"
	SettingDefaultAPR    = "default.apr"
	SettingDefaultTerm   = "default.term.months"
	SettingPenaltyRate   = "default.penalty.rate"
	SettingPenaltyType   = "default.penalty.type"
	SettingGraceDays     = "default.grace.days"
	SettingSchemaVersion = "schema.version"
	SettingAppVersion    = "app.version"
)

// settingsStore is the flat key→string configuration map backed by a
// key=value file. There is no typed schema; values are strings the
// callers interpret.
type settingsStore struct {
	path   string
	values map[string]string
}

func loadSettings(path string) (*settingsStore, error) {
	s := &settingsStore{path: path, values: make(map[string]string)}

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
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			log.Printf("%s:%d: skipping malformed setting line %q", path, lineno, line)
			continue
		}
		s.values[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	return s, nil
}

func (s *settingsStore) get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *settingsStore) set(key, value string) {
	s.values[key] = value
	if err := s.save(); err != nil {
		log.Printf("save failed, in-memory state is ahead of disk: %v", err)
	}
}

func (s *settingsStore) all() map[string]string {
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// save rewrites the settings file, keys sorted for a stable diff.
func (s *settingsStore) save() error {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s=%s\n", k, s.values[k])
	}
	if err := atomic.WriteFile(s.path, strings.NewReader(b.String())); err != nil {
		return fmt.Errorf("could not write %q: %w", s.path, err)
	}
	return nil
}
