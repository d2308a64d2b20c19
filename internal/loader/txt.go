package loader

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/KaramelBytes/quickeda-cli/internal/dataset"
)

type txtLoader struct{}

func (txtLoader) CanLoad(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".txt")
}

func (txtLoader) Load(path string, opt Options) (*dataset.Dataset, error) {
	delim := opt.Delimiter
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read txt: %w", err)
	}
	if delim == 0 {
		lines := opt.SniffLines
		if lines <= 0 {
			lines = 10
		}
		delim = DetectDelimiter(sampleLines(data, lines))
	}
	return readDelimited(bytes.NewReader(data), delim, opt)
}

var delimiterCandidates = []rune{'\t', ',', ';'}

// DetectDelimiter picks a delimiter for plain-text tabular data by
// sampling lines and scoring each candidate by how consistent the
// per-line field count is. A candidate only qualifies if it splits the
// sample into more than one field. Ties go to the candidate producing
// more fields, then to candidate order (tab, comma, semicolon). When no
// candidate qualifies the input is treated as a single column and the
// comma is returned.
func DetectDelimiter(lines []string) rune {
	best := rune(0)
	bestScore := 0.0
	bestFields := 0
	for _, cand := range delimiterCandidates {
		counts := make(map[int]int)
		for _, line := range lines {
			counts[strings.Count(line, string(cand))+1]++
		}
		// mode of the field-count distribution
		mode, modeFreq := 0, 0
		for fields, freq := range counts {
			if freq > modeFreq || (freq == modeFreq && fields > mode) {
				mode, modeFreq = fields, freq
			}
		}
		if mode < 2 {
			continue
		}
		score := float64(modeFreq) / float64(len(lines))
		if score > bestScore || (score == bestScore && mode > bestFields) {
			best, bestScore, bestFields = cand, score, mode
		}
	}
	if best == 0 {
		return ','
	}
	return best
}

func sampleLines(data []byte, n int) []string {
	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() && len(lines) < n {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
