package lotbook

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/natefinch/atomic"
)

// table is the in-memory list plus backing file for one record type.
// Records stay in insertion order; an id index alongside the slice
// keeps lookups and joins cheap.
//
// A table is loaded once and rewritten wholesale on every mutation.
// The rewrite goes through a temp file and an atomic rename, so a
// crash mid-save leaves the previous file intact rather than a
// truncated one. Tables are not internally synchronized: the store
// assumes a single logical writer at a time.
type table[T any] struct {
	path   string
	id     func(T) int64
	encode func(T) string
	decode func(string) (T, error)

	records []T
	index   map[int64]int // id -> position in records
}

func newTable[T any](path string, id func(T) int64, encode func(T) string, decode func(string) (T, error)) *table[T] {
	return &table[T]{
		path:   path,
		id:     id,
		encode: encode,
		decode: decode,
		index:  make(map[int64]int),
	}
}

// load reads the backing file into memory. A missing file is an empty
// table. A line that fails to decode is logged and skipped, never
// fatal; the skipped count is reported so callers can tell "rows
// dropped as malformed" apart from a real I/O error.
func (t *table[T]) load() (skipped int, err error) {
	t.records = t.records[:0]
	clear(t.index)

	f, err := os.Open(t.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("could not open %q: %w", t.path, err)
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
		rec, err := t.decode(line)
		if err != nil {
			log.Printf("%s:%d: skipping malformed record: %v", t.path, lineno, err)
			skipped++
			continue
		}
		t.index[t.id(rec)] = len(t.records)
		t.records = append(t.records, rec)
	}
	if err := scanner.Err(); err != nil {
		return skipped, fmt.Errorf("could not read %q: %w", t.path, err)
	}
	return skipped, nil
}

// save rewrites the entire backing file from the in-memory list.
func (t *table[T]) save() error {
	var b strings.Builder
	for _, rec := range t.records {
		b.WriteString(t.encode(rec))
		b.WriteByte('\n')
	}
	if err := atomic.WriteFile(t.path, strings.NewReader(b.String())); err != nil {
		return fmt.Errorf("could not write %q: %w", t.path, err)
	}
	return nil
}

// saveLogged saves and reports failure through the log only. A failed
// save leaves the in-memory state ahead of disk; a later restart
// silently loses the unsaved change.
func (t *table[T]) saveLogged() {
	if err := t.save(); err != nil {
		log.Printf("save failed, in-memory state is ahead of disk: %v", err)
	}
}

// all returns a defensive copy of the records in insertion order.
func (t *table[T]) all() []T {
	out := make([]T, len(t.records))
	copy(out, t.records)
	return out
}

// get looks a record up by id.
func (t *table[T]) get(id int64) (T, bool) {
	if i, ok := t.index[id]; ok {
		return t.records[i], true
	}
	var zero T
	return zero, false
}

func (t *table[T]) len() int { return len(t.records) }

// append adds records to the list and rewrites the file once.
func (t *table[T]) append(recs ...T) {
	for _, rec := range recs {
		t.index[t.id(rec)] = len(t.records)
		t.records = append(t.records, rec)
	}
	t.saveLogged()
}

// replace swaps the record with the same id and rewrites the file.
// It reports whether a match was found.
func (t *table[T]) replace(rec T) bool {
	i, ok := t.index[t.id(rec)]
	if !ok {
		return false
	}
	t.records[i] = rec
	t.saveLogged()
	return true
}

// remove deletes the record with the given id. The file is rewritten
// only if something was actually removed.
func (t *table[T]) remove(id int64) bool {
	return t.removeIf(func(rec T) bool { return t.id(rec) == id }) > 0
}

// removeIf deletes every record matching the predicate and returns the
// count. A single rewrite covers the whole batch; nothing is written
// when no record matched.
func (t *table[T]) removeIf(match func(T) bool) int {
	kept := t.records[:0]
	removed := 0
	for _, rec := range t.records {
		if match(rec) {
			removed++
			continue
		}
		kept = append(kept, rec)
	}
	if removed == 0 {
		return 0
	}
	t.records = kept
	t.rebuildIndex()
	t.saveLogged()
	return removed
}

func (t *table[T]) rebuildIndex() {
	clear(t.index)
	for i, rec := range t.records {
		t.index[t.id(rec)] = i
	}
}
