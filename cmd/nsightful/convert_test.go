package nsightful

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwiater/nsightful/internal/ncu"
)

const testCSV = "Kernel Name,Section Name,Metric Name,Metric Unit,Metric Value,Rule Name,Rule Type,Rule Description,Estimated Speedup Type,Estimated Speedup\n" +
	"matmulKernel(float*),SpeedOfLight,Duration,ns,\"1,500\",,,,,\n" +
	"matmulKernel(float*),SpeedOfLight,,,,SOLBottleneck,OPT,Use more threads,,\n"

func writeTestCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestRunConvert_ToStdout(t *testing.T) {
	path := writeTestCSV(t, testCSV)

	var convErr error
	out := captureOutput(t, func() {
		convErr = runConvert(path, "", false)
	})
	if convErr != nil {
		t.Fatalf("runConvert: %v", convErr)
	}
	for _, want := range []string{
		"# matmulKernel",
		"## Speed Of Light",
		"| Duration | ns | 1,500 |",
		"🔧 **OPTIMIZATION**: Use more threads",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("stdout missing %q:\n%s", want, out)
		}
	}
}

func TestRunConvert_ToFile(t *testing.T) {
	path := writeTestCSV(t, testCSV)
	outPath := filepath.Join(t.TempDir(), "report.md")

	if err := runConvert(path, outPath, false); err != nil {
		t.Fatalf("runConvert: %v", err)
	}
	b, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.HasPrefix(string(b), "# matmulKernel\n") {
		t.Errorf("unexpected document start: %q", string(b))
	}
}

func TestRunConvert_MissingInputFile(t *testing.T) {
	if err := runConvert(filepath.Join(t.TempDir(), "nope.csv"), "", false); err == nil {
		t.Fatal("expected error for missing input file")
	}
}

func TestRunConvert_MalformedInputKeepsTypedError(t *testing.T) {
	path := writeTestCSV(t, "Not,A,Header\nx,y,z\n")

	err := runConvert(path, "", false)
	if err == nil {
		t.Fatal("expected error for malformed input")
	}
	var mfe *ncu.MissingFieldError
	if !errors.As(err, &mfe) {
		t.Fatalf("expected wrapped *ncu.MissingFieldError, got %T: %v", err, err)
	}
}

func TestRunConvert_FailureWritesNoOutputFile(t *testing.T) {
	path := writeTestCSV(t, "Not,A,Header\nx,y,z\n")
	outPath := filepath.Join(t.TempDir(), "report.md")

	if err := runConvert(path, outPath, false); err == nil {
		t.Fatal("expected error for malformed input")
	}
	if _, err := os.Stat(outPath); !os.IsNotExist(err) {
		t.Errorf("expected no output file on failure, stat err = %v", err)
	}
}

func TestListKernels_PrintsCounts(t *testing.T) {
	path := writeTestCSV(t, testCSV)

	var listErr error
	out := captureOutput(t, func() {
		listErr = listKernels(path)
	})
	if listErr != nil {
		t.Fatalf("listKernels: %v", listErr)
	}
	if !strings.Contains(out, "matmulKernel:") {
		t.Errorf("missing kernel heading:\n%s", out)
	}
	if !strings.Contains(out, "1 sections, 1 metrics, 1 rules") {
		t.Errorf("missing counts line:\n%s", out)
	}
}
