package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// execute runs the root command with the given stdin and arguments and
// returns what it wrote to stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	var out bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)

	err := root.ExecuteContext(t.Context())
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestClusterTextFromStdin(t *testing.T) {
	out, err := execute(t, "0 1 10 11\n", "cluster")
	if err != nil {
		t.Fatalf("cluster: %v", err)
	}
	want := "0: 0\n1: 1\n2: 10\n3: 11\n4:  0 1\n5:  2 3\n6:  4 5\n"
	if out != want {
		t.Errorf("output =\n%s\nwant\n%s", out, want)
	}
}

func TestClusterLinkageFromFile(t *testing.T) {
	path := writeFile(t, "points.txt", "11\n10\n1\n0\n")
	out, err := execute(t, "", "cluster", "--format", "linkage", path)
	if err != nil {
		t.Fatalf("cluster: %v", err)
	}
	want := "3 2 1 2\n1 0 1 2\n4 5 10 4\n"
	if out != want {
		t.Errorf("output =\n%s\nwant\n%s", out, want)
	}
}

func TestClusterJSON(t *testing.T) {
	out, err := execute(t, "3 5", "cluster", "-f", "json")
	if err != nil {
		t.Fatalf("cluster: %v", err)
	}
	for _, s := range []string{`"root": 2`, `"merges": 1`, `"height": 2`} {
		if !strings.Contains(out, s) {
			t.Errorf("json output missing %s:\n%s", s, out)
		}
	}
}

func TestClusterDOT(t *testing.T) {
	out, err := execute(t, "0 1", "cluster", "-f", "dot")
	if err != nil {
		t.Fatalf("cluster: %v", err)
	}
	if !strings.HasPrefix(out, "digraph") || !strings.Contains(out, "n2 -> n0") {
		t.Errorf("unexpected dot output:\n%s", out)
	}
}

func TestClusterUnknownFormat(t *testing.T) {
	if _, err := execute(t, "0 1", "cluster", "-f", "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestClusterUnknownCenterRule(t *testing.T) {
	if _, err := execute(t, "0 1", "cluster", "--center", "median"); err == nil {
		t.Error("expected error for unknown center rule")
	}
}

func TestClusterInvalidInput(t *testing.T) {
	_, err := execute(t, "1 x 2", "cluster")
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "stdin") {
		t.Errorf("error %q should name the input", err)
	}

	out, err := execute(t, "1 x 2", "cluster", "--lenient")
	if err != nil {
		t.Fatalf("lenient cluster: %v", err)
	}
	if out != "0: 1\n" {
		t.Errorf("lenient output = %q, want %q", out, "0: 1\n")
	}
}

func TestClusterMissingFile(t *testing.T) {
	if _, err := execute(t, "", "cluster", filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected error for missing input file")
	}
}

func TestClusterEmptyInput(t *testing.T) {
	out, err := execute(t, "", "cluster")
	if err != nil {
		t.Fatalf("cluster: %v", err)
	}
	if out != "" {
		t.Errorf("output = %q, want empty", out)
	}
}

func TestCutByK(t *testing.T) {
	out, err := execute(t, "11 0 10 1", "cut", "--k", "2")
	if err != nil {
		t.Fatalf("cut: %v", err)
	}
	want := "0: 1\n1: 0\n2: 1\n3: 0\n"
	if out != want {
		t.Errorf("output =\n%s\nwant\n%s", out, want)
	}
}

func TestCutByHeight(t *testing.T) {
	out, err := execute(t, "0 1 10 11", "cut", "--height", "0.5")
	if err != nil {
		t.Fatalf("cut: %v", err)
	}
	want := "0: 0\n1: 1\n2: 2\n3: 3\n"
	if out != want {
		t.Errorf("output =\n%s\nwant\n%s", out, want)
	}
}

func TestCutFlags(t *testing.T) {
	if _, err := execute(t, "0 1", "cut"); err == nil {
		t.Error("expected error without --k or --height")
	}
	if _, err := execute(t, "0 1", "cut", "--k", "1", "--height", "2"); err == nil {
		t.Error("expected error with both --k and --height")
	}
	if _, err := execute(t, "0 1", "cut", "--k", "3"); err == nil {
		t.Error("expected error for k larger than the point count")
	}
}

func TestConfigSuppliesDefaults(t *testing.T) {
	cfg := writeFile(t, "slc.yaml", "format: linkage\n")

	out, err := execute(t, "0 1", "--config", cfg, "cluster")
	if err != nil {
		t.Fatalf("cluster: %v", err)
	}
	if out != "0 1 1 2\n" {
		t.Errorf("config format ignored, output = %q", out)
	}

	out, err = execute(t, "0 1", "--config", cfg, "cluster", "-f", "text")
	if err != nil {
		t.Fatalf("cluster: %v", err)
	}
	if out != "0: 0\n1: 1\n2:  0 1\n" {
		t.Errorf("flag should override config, output = %q", out)
	}
}

func TestBadConfigFails(t *testing.T) {
	cfg := writeFile(t, "slc.json", "{}")
	if _, err := execute(t, "0 1", "--config", cfg, "cluster"); err == nil {
		t.Error("expected error for unsupported config extension")
	}
}

func TestBench(t *testing.T) {
	out, err := execute(t, "", "bench", "--exp", "4", "--mode", "monotonic", "--repeat", "2")
	if err != nil {
		t.Fatalf("bench: %v", err)
	}
	for _, s := range []string{"points", "16", "monotonic", "merges", "15", "mean"} {
		if !strings.Contains(out, s) {
			t.Errorf("bench report missing %q:\n%s", s, out)
		}
	}
}

func TestBenchRejectsBadArguments(t *testing.T) {
	cases := [][]string{
		{"bench", "--exp", "-1"},
		{"bench", "--exp", "31"},
		{"bench", "--mode", "gaussian"},
		{"bench", "--repeat", "0"},
	}
	for _, args := range cases {
		if _, err := execute(t, "", args...); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}

func TestBenchFromTOMLConfig(t *testing.T) {
	cfg := writeFile(t, "slc.toml", "[bench]\nexponent = 3\nmode = \"monotonic\"\n")
	out, err := execute(t, "", "--config", cfg, "bench")
	if err != nil {
		t.Fatalf("bench: %v", err)
	}
	if !strings.Contains(out, "8") {
		t.Errorf("bench should use 2^3 points from config:\n%s", out)
	}
}
