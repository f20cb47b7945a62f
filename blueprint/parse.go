package blueprint

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var linePattern = regexp.MustCompile(`^Blueprint (\d+): ` +
	`Each ore robot costs (\d+) ore\. ` +
	`Each clay robot costs (\d+) ore\. ` +
	`Each obsidian robot costs (\d+) ore and (\d+) clay\. ` +
	`Each geode robot costs (\d+) ore and (\d+) obsidian\.$`)

// ParseLine parses a single blueprint sentence. Surrounding whitespace is ignored.
func ParseLine(line string) (Blueprint, error) {
	line = strings.TrimSpace(line)
	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return Blueprint{}, fmt.Errorf("%w: %q", ErrPattern, line)
	}

	var nums [7]int
	for i := range nums {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			// only reachable on overflow; \d+ guarantees digits
			return Blueprint{}, fmt.Errorf("%w: %q: %v", ErrPattern, line, err)
		}
		nums[i] = n
	}

	return New(nums[0], nums[1], nums[2], nums[3], nums[4], nums[5], nums[6]), nil
}

// Parse reads blueprints from r, one per line, skipping blank lines.
// The first malformed line aborts parsing; the error names its line number.
func Parse(r io.Reader) ([]Blueprint, error) {
	var (
		out  []Blueprint
		seen = make(map[int]int)
		sc   = bufio.NewScanner(r)
		no   int
	)
	for sc.Scan() {
		no++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		bp, err := ParseLine(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", no, err)
		}
		if first, dup := seen[bp.ID]; dup {
			return nil, fmt.Errorf("line %d: %w: %d (first on line %d)", no, ErrDuplicateID, bp.ID, first)
		}
		seen[bp.ID] = no
		out = append(out, bp)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("blueprint: read input: %w", err)
	}

	return out, nil
}

// ParseString is Parse over an in-memory text.
func ParseString(s string) ([]Blueprint, error) {
	return Parse(strings.NewReader(s))
}
