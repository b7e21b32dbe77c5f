package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/SavvyHex/econocode/interp"
	"github.com/SavvyHex/econocode/ir"
	"github.com/SavvyHex/econocode/report"
	"github.com/pterm/pterm"
)

const arithSrc = `# (3 + 4) * 2
t0 = const 3
t1 = const 4
t2 = add t0, t1 (I64)
t3 = const 2
t4 = mul t2, t3 (I64)
`

func TestMain(m *testing.M) {
	pterm.DisableColor()
	os.Exit(m.Run())
}

func writeFile(t *testing.T, name, src string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestBuildFile(t *testing.T) {
	path := writeFile(t, "arith.eir", arithSrc)

	buf := &bytes.Buffer{}
	rep := report.NewReporter(buf, report.LogLevelError)
	buildFile(rep, path, "", false)

	if !rep.ShouldProceed() {
		t.Fatalf("build failed: %s", buf.String())
	}

	out := buf.String()
	for _, want := range []string{"t4 = mul t2, t3 (I64)", "Total energy: 9"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestBuildFileWritesOutput(t *testing.T) {
	path := writeFile(t, "arith.eir", arithSrc)
	output := filepath.Join(filepath.Dir(path), "arith.txt")

	buf := &bytes.Buffer{}
	rep := report.NewReporter(buf, report.LogLevelError)
	buildFile(rep, path, output, false)

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasSuffix(string(data), "Total energy: 9\n") {
		t.Errorf("unexpected listing:\n%s", data)
	}
	if buf.Len() != 0 {
		t.Errorf("listing should not be displayed when written to a file: %q", buf.String())
	}
}

func TestLoadProgramErrors(t *testing.T) {
	cases := []struct {
		name, src, tag string
	}{
		{"parse", "t0 = const abc\n", "Parse Error"},
		{"validate", "jmp nowhere\n", "Validation Error"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			rep := report.NewReporter(buf, report.LogLevelError)

			if _, ok := loadProgram(rep, writeFile(t, "bad.eir", c.src)); ok {
				t.Fatal("expected loading to fail")
			}
			if !strings.Contains(buf.String(), c.tag) {
				t.Errorf("expected %q in %q", c.tag, buf.String())
			}
		})
	}

	rep := report.NewReporter(&bytes.Buffer{}, report.LogLevelError)
	if _, ok := loadProgram(rep, filepath.Join(t.TempDir(), "missing.eir")); ok {
		t.Error("expected a missing file to fail")
	}
}

func TestRunProgram(t *testing.T) {
	path := writeFile(t, "sum.eir", "a = read (I64)\nb = read (I64)\nt0 = add a, b (I64)\n")

	rep := report.NewReporter(&bytes.Buffer{}, report.LogLevelError)
	prog, ok := loadProgram(rep, path)
	if !ok {
		t.Fatal("load failed")
	}

	out := &bytes.Buffer{}
	input := interp.NewStreamInput(nil, strings.NewReader("20\n22\n"))
	value, ok := runProgram(rep, prog, input, interp.Options{}, out)

	if !ok || value != 42 {
		t.Fatalf("runProgram() = %d, %v", value, ok)
	}
	if out.String() != "Result: 42\n" {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestRunProgramReportsRuntimeErrors(t *testing.T) {
	path := writeFile(t, "div.eir", "a = const 1\nb = const 0\nc = div a, b (I64)\n")

	buf := &bytes.Buffer{}
	rep := report.NewReporter(buf, report.LogLevelError)
	prog, _ := loadProgram(rep, path)

	if _, ok := runProgram(rep, prog, interp.NewStreamInput(nil, strings.NewReader("")), interp.Options{}, &bytes.Buffer{}); ok {
		t.Fatal("expected a runtime error")
	}
	if !strings.Contains(buf.String(), "division by zero") {
		t.Errorf("error not reported: %q", buf.String())
	}
}

func TestGenerateLLVM(t *testing.T) {
	rep := report.NewReporter(&bytes.Buffer{}, report.LogLevelError)
	prog, ok := loadProgram(rep, writeFile(t, "arith.eir", arithSrc))
	if !ok {
		t.Fatal("load failed")
	}

	text, ok := generateLLVM(rep, "arith.eir", prog)
	if !ok {
		t.Fatal("generation failed")
	}
	if !strings.Contains(text, "define i64 @main()") {
		t.Errorf("unexpected module:\n%s", text)
	}
}

func TestWatchFile(t *testing.T) {
	path := writeFile(t, "watched.eir", arithSrc)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan struct{}, 8)
	done := make(chan error, 1)
	go func() {
		done <- watchFile(ctx, path, func() { changes <- struct{}{} })
	}()

	wait := func(what string) {
		select {
		case <-changes:
		case err := <-done:
			t.Fatalf("watcher stopped waiting for %s: %v", what, err)
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out waiting for %s", what)
		}
	}

	wait("the initial build")

	if err := os.WriteFile(path, []byte(arithSrc+"t5 = t4\n"), 0644); err != nil {
		t.Fatal(err)
	}
	wait("the rebuild")

	cancel()
	if err := <-done; err != nil {
		t.Errorf("watchFile() = %v", err)
	}
}

func TestBuildFileListsAtSilentLevel(t *testing.T) {
	path := writeFile(t, "arith.eir", arithSrc)

	buf := &bytes.Buffer{}
	buildFile(report.NewReporter(buf, report.LogLevelSilent), path, "", false)

	if !strings.Contains(buf.String(), "Total energy: 9") {
		t.Errorf("listing missing at the silent level: %q", buf.String())
	}
}

func TestRunProgramKeepsPromptsIntact(t *testing.T) {
	prog, err := ir.ParseString("a = read (I64)\nb = read (I64)\nt0 = add a, b (I64)\n")
	if err != nil {
		t.Fatal(err)
	}

	if !readsInput(prog) {
		t.Fatal("readsInput() = false for a program with reads")
	}

	// prompts and reporter output share a writer, as they share stdout in the
	// CLI
	buf := &bytes.Buffer{}
	rep := report.NewReporter(buf, report.LogLevelVerbose)
	input := interp.NewStreamInput(buf, strings.NewReader("20\n22\n"))

	out := &bytes.Buffer{}
	if value, ok := runProgram(rep, prog, input, interp.Options{}, out); !ok || value != 42 {
		t.Fatalf("runProgram() = %d, %v", value, ok)
	}

	text := buf.String()
	if !strings.HasPrefix(text, "Input a: Input b: ") {
		t.Errorf("prompts were interleaved with other output: %q", text)
	}
	if strings.Contains(text, "Running") {
		t.Errorf("spinner displayed while reading input: %q", text)
	}
}

func TestReadsInput(t *testing.T) {
	prog, err := ir.ParseString(arithSrc)
	if err != nil {
		t.Fatal(err)
	}

	if readsInput(prog) {
		t.Error("readsInput() = true for a program without reads")
	}
}
