package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectDelimiter(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  rune
	}{
		{
			name:  "tab separated",
			lines: []string{"a\tb\tc", "1\t2\t3", "4\t5\t6"},
			want:  '\t',
		},
		{
			name:  "comma separated",
			lines: []string{"a,b,c", "1,2,3", "4,5,6"},
			want:  ',',
		},
		{
			name:  "semicolon separated",
			lines: []string{"a;b", "1;2", "3;4"},
			want:  ';',
		},
		{
			name: "comma wins over noisy tab",
			// every line has 3 comma fields; tabs appear inconsistently
			lines: []string{"a,b,c", "1,2\t2,3", "4,5,6"},
			want:  ',',
		},
		{
			name:  "single column falls back to comma",
			lines: []string{"alpha", "beta", "gamma"},
			want:  ',',
		},
		{
			name:  "no lines falls back to comma",
			lines: nil,
			want:  ',',
		},
		{
			name: "tab preferred when equally consistent",
			// both tab and comma split every line into 2 fields;
			// candidate order breaks the tie
			lines: []string{"a\tb,c", "1\t2,3"},
			want:  '\t',
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectDelimiter(tt.lines))
		})
	}
}

func TestLoadTXTDetectsTabs(t *testing.T) {
	path := writeFile(t, "report.txt", "name\tscore\nalice\t10\nbob\t12\n")
	ds, err := LoadFile(path, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "score"}, ds.Columns())
	assert.Equal(t, 2, ds.NumRows())
}

func TestLoadTXTDetectsCommas(t *testing.T) {
	path := writeFile(t, "report.txt", "name,score\nalice,10\nbob,12\n")
	ds, err := LoadFile(path, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "score"}, ds.Columns())
	assert.Equal(t, 2, ds.NumRows())
}

func TestLoadTXTExplicitDelimiterWins(t *testing.T) {
	opt := DefaultOptions()
	opt.Delimiter = ';'
	path := writeFile(t, "report.txt", "a;b\n1;2\n")
	ds, err := LoadFile(path, opt)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ds.Columns())
}
