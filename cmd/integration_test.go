package cmd

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCmd executes the root command with args, resetting flag state that
// would otherwise stick between invocations.
func runCmd(t *testing.T, args ...string) error {
	t.Helper()
	anaOutputPath = ""
	anaDelimiter = ""
	anaSheetName = ""
	anaSheetIndex = 0
	anaQuiet = false
	insOutputPath = ""
	insDelimiter = ""
	insSheetName = ""
	insSheetIndex = 0
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestCLI_AnalyzeProducesPDF(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dataPath := filepath.Join(home, "sales.csv")
	content := "region,units\nnorth,10\nsouth,12\nnorth,10\n"
	if err := os.WriteFile(dataPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	out := filepath.Join(home, "report.pdf")
	if err := runCmd(t, "analyze", dataPath, "-o", out, "--quiet"); err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if len(b) < 4 || string(b[:4]) != "%PDF" {
		t.Fatalf("output is not a PDF")
	}
}

func TestCLI_AnalyzeShowsProgressByDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dataPath := filepath.Join(home, "sales.csv")
	content := "region,units\nnorth,10\nsouth,12\nnorth,10\n"
	if err := os.WriteFile(dataPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	// inspect registers its own flags; running it first must not mute
	// a later analyze run
	if err := runCmd(t, "inspect", dataPath, "-o", filepath.Join(home, "results.yaml")); err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
	if anaQuiet {
		t.Fatal("analyze --quiet default flipped by another command")
	}

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	oldStderr := os.Stderr
	os.Stderr = w
	runErr := runCmd(t, "analyze", dataPath, "-o", filepath.Join(home, "report.pdf"))
	w.Close()
	os.Stderr = oldStderr
	captured, _ := io.ReadAll(r)
	r.Close()

	if runErr != nil {
		t.Fatalf("analyze failed: %v", runErr)
	}
	for _, want := range []string{"[ 10%]", "[100%] Analysis complete!"} {
		if !strings.Contains(string(captured), want) {
			t.Fatalf("stderr missing %q:\n%s", want, captured)
		}
	}
}

func TestCLI_InspectWritesYAML(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dataPath := filepath.Join(home, "data.tsv")
	if err := os.WriteFile(dataPath, []byte("a\tb\n1\tx\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	out := filepath.Join(home, "results.yaml")
	if err := runCmd(t, "inspect", dataPath, "-o", out); err != nil {
		t.Fatalf("inspect failed: %v", err)
	}

	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("results not written: %v", err)
	}
	for _, want := range []string{"shape:", "columns:", "duplicate_rows:"} {
		if !strings.Contains(string(b), want) {
			t.Fatalf("results missing %q:\n%s", want, b)
		}
	}
}

func TestCLI_AnalyzeUnsupportedFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dataPath := filepath.Join(home, "data.bin")
	if err := os.WriteFile(dataPath, []byte{0x1}, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := runCmd(t, "analyze", dataPath, "--quiet"); err == nil {
		t.Fatal("expected an error for unsupported format")
	}
}
