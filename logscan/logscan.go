// Package logscan triages packet-capture CSV exports for SQL injection
// attempts against HTTP request URIs.
package logscan

import (
	"encoding/csv"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/contestkit/contestkit/logger"
)

// injection patterns are matched case-insensitively as substrings of the
// request URI
var patterns = []string{
	"union select",
	"or 1=1",
	"select",
	"update",
	"delete",
	"insert",
	"drop",
	"%27",
	"'",
	"--",
	"%23",
	"#",
	"exec xp_",
}

var methods = map[string]struct{}{
	"GET": {}, "POST": {}, "HEAD": {}, "PUT": {}, "DELETE": {}, "OPTIONS": {},
}

// ErrMissingColumn is returned when the CSV header lacks a required column.
var ErrMissingColumn = errors.New("logscan: missing column")

// Attempt is one flagged request, in capture order.
type Attempt struct {
	No          int
	Time        string
	Source      string
	Payload     string
	Fingerprint string // blake2b-256 hex of the payload
}

// Report summarizes the flagged attempts of one capture.
type Report struct {
	Attempts []Attempt
}

// IsInjection reports whether the URI matches any known injection pattern.
func IsInjection(uri string) bool {
	lower := strings.ToLower(uri)
	for _, pat := range patterns {
		if strings.Contains(lower, pat) {
			return true
		}
	}
	return false
}

// Scan reads a capture CSV with columns No., Time, Source and Info, flags
// HTTP request rows whose URI matches an injection pattern, and returns the
// attempts sorted by capture number.
func Scan(r io.Reader) (*Report, error) {
	log := logger.Logger()

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("logscan: read header: %w", err)
	}
	cols := map[string]int{}
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	idx := make([]int, 4)
	for i, name := range []string{"No.", "Time", "Source", "Info"} {
		j, ok := cols[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
		idx[i] = j
	}

	report := &Report{}
	rows := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("logscan: read row: %w", err)
		}
		rows++
		if len(rec) <= idx[3] {
			continue
		}
		info := rec[idx[3]]
		parts := strings.Fields(info)
		if len(parts) < 3 {
			continue
		}
		method, uri, proto := parts[0], parts[1], parts[2]
		if _, ok := methods[method]; !ok || !strings.HasPrefix(proto, "HTTP") {
			continue
		}
		if !IsInjection(uri) {
			continue
		}
		no, err := strconv.Atoi(strings.TrimSpace(rec[idx[0]]))
		if err != nil {
			log.Debug().Str("no", rec[idx[0]]).Msg("skipping row with bad capture number")
			continue
		}
		report.Attempts = append(report.Attempts, Attempt{
			No:          no,
			Time:        rec[idx[1]],
			Source:      rec[idx[2]],
			Payload:     uri,
			Fingerprint: fingerprint(uri),
		})
	}

	sort.Slice(report.Attempts, func(i, j int) bool {
		return report.Attempts[i].No < report.Attempts[j].No
	})
	log.Debug().
		Int("rows", rows).
		Int("flagged", len(report.Attempts)).
		Int("distinct", report.UniquePayloads()).
		Msg("scan complete")
	return report, nil
}

// AttackerIP is the source of the earliest flagged attempt, or "NULL".
func (r *Report) AttackerIP() string {
	if len(r.Attempts) == 0 {
		return "NULL"
	}
	return r.Attempts[0].Source
}

// Total is the number of flagged attempts.
func (r *Report) Total() int { return len(r.Attempts) }

// FirstPayload is the URI of the earliest flagged attempt, or "NULL".
func (r *Report) FirstPayload() string {
	if len(r.Attempts) == 0 {
		return "NULL"
	}
	return r.Attempts[0].Payload
}

// LastPayload is the URI of the latest flagged attempt, or "NULL".
func (r *Report) LastPayload() string {
	if len(r.Attempts) == 0 {
		return "NULL"
	}
	return r.Attempts[len(r.Attempts)-1].Payload
}

// ColonCount is the number of flagged payloads containing ":" or its hex
// encoding "0x3a".
func (r *Report) ColonCount() int {
	n := 0
	for _, a := range r.Attempts {
		if strings.Contains(a.Payload, ":") || strings.Contains(a.Payload, "0x3a") {
			n++
		}
	}
	return n
}

// UniquePayloads returns the number of distinct flagged payloads, compared
// by fingerprint.
func (r *Report) UniquePayloads() int {
	seen := make(map[string]struct{}, len(r.Attempts))
	for _, a := range r.Attempts {
		seen[a.Fingerprint] = struct{}{}
	}
	return len(seen)
}

// WriteAnswers writes the five-line answer block.
func (r *Report) WriteAnswers(w io.Writer) error {
	_, err := fmt.Fprintf(w, "1A: %s\n2A: %d\n3A: %s\n4A: %s\n5A: %d\n",
		r.AttackerIP(), r.Total(), r.FirstPayload(), r.LastPayload(), r.ColonCount())
	return err
}

func fingerprint(payload string) string {
	sum := blake2b.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}
