package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
)

// Entry is one decoded line of the JSON application log.
type Entry struct {
	Time   string
	Level  string
	Logger string
	Msg    string
	Fields map[string]string
	Raw    string // set when the line was not JSON
}

// reserved keys written by the zap production encoder.
var reserved = map[string]bool{
	"ts": true, "level": true, "logger": true, "msg": true, "caller": true, "stacktrace": true,
}

// Lines returns the last maxLines lines of the file at path; maxLines <= 0
// returns every line. A missing file is not an error.
func Lines(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
		if maxLines > 0 && len(lines) > maxLines {
			lines = lines[1:]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	return lines, nil
}

// Tail reads and decodes the last maxLines entries of the log at path.
func Tail(path string, maxLines int) ([]Entry, error) {
	lines, err := Lines(path, maxLines)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		entries = append(entries, Parse(line))
	}
	return entries, nil
}

// Parse decodes one log line. Lines that are not JSON objects come back with
// only Raw set.
func Parse(line string) Entry {
	if !gjson.Valid(line) {
		return Entry{Raw: line}
	}
	res := gjson.Parse(line)
	if !res.IsObject() {
		return Entry{Raw: line}
	}
	e := Entry{
		Time:   res.Get("ts").String(),
		Level:  strings.ToUpper(res.Get("level").String()),
		Logger: res.Get("logger").String(),
		Msg:    res.Get("msg").String(),
	}
	res.ForEach(func(key, value gjson.Result) bool {
		if reserved[key.String()] {
			return true
		}
		if e.Fields == nil {
			e.Fields = make(map[string]string)
		}
		e.Fields[key.String()] = value.String()
		return true
	})
	return e
}

// Format renders the entry as "time LEVEL logger: msg k=v ...". Fields are
// sorted by key.
func (e Entry) Format() string {
	if e.Raw != "" {
		return e.Raw
	}
	var b strings.Builder
	if e.Time != "" {
		b.WriteString(shortTime(e.Time))
		b.WriteByte(' ')
	}
	if e.Level != "" {
		fmt.Fprintf(&b, "%-5s ", e.Level)
	}
	if e.Logger != "" {
		b.WriteString(e.Logger)
		b.WriteString(": ")
	}
	b.WriteString(e.Msg)

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%s", k, e.Fields[k])
	}
	return b.String()
}

// shortTime keeps the clock part of an ISO8601 timestamp.
func shortTime(ts string) string {
	if i := strings.IndexByte(ts, 'T'); i >= 0 && len(ts) >= i+9 {
		return ts[i+1 : i+9]
	}
	return ts
}
