package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"time"
)

// Read returns at most maxLines from the end of the file at path. A maxLines of
// zero or less returns every line.
func Read(path string, maxLines int) ([]string, error) {
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

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Line is one decoded log record.
type Line struct {
	Time    time.Time
	Level   string
	Message string
	// Fields holds the remaining keys as sorted key=value pairs.
	Fields []string
	// Raw is set when the line was not a JSON record.
	Raw bool
}

// ParseLine decodes a JSON log record. Lines that are not JSON objects come
// back with Raw set and the whole text as the message.
func ParseLine(line string) Line {
	trimmed := strings.TrimSpace(line)
	var record map[string]any
	if !strings.HasPrefix(trimmed, "{") || json.Unmarshal([]byte(trimmed), &record) != nil {
		return Line{Message: line, Raw: true}
	}

	out := Line{
		Time:    parseTime(record["ts"]),
		Level:   strings.ToUpper(stringValue(record["level"])),
		Message: stringValue(record["msg"]),
	}
	for key, value := range record {
		switch key {
		case "ts", "level", "msg", "caller", "stacktrace":
			continue
		}
		out.Fields = append(out.Fields, key+"="+stringValue(value))
	}
	sort.Strings(out.Fields)
	return out
}

func parseTime(v any) time.Time {
	switch ts := v.(type) {
	case float64:
		sec, frac := math.Modf(ts)
		return time.Unix(int64(sec), int64(frac*1e9))
	case string:
		for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.000Z0700"} {
			if t, err := time.Parse(layout, ts); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}

func stringValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(b)
	}
}
