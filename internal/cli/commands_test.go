package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/derian-c/MATH478-FinalProject/pkg/errors"
)

func TestMSTCommandJSON(t *testing.T) {
	out, err := runRoot(t, "mst", "-n", "5", "--seed", "3", "--json")
	if err != nil {
		t.Fatalf("mst: %v", err)
	}

	var rep mstReport
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatalf("decode report: %v\n%s", err, out)
	}
	if rep.Source != "random" || rep.Seed != 3 {
		t.Errorf("source = %q seed = %d, want random seed 3", rep.Source, rep.Seed)
	}
	if len(rep.Vertices) != 5 || len(rep.Edges) != 4 {
		t.Errorf("got %d vertices and %d edges, want 5 and 4", len(rep.Vertices), len(rep.Edges))
	}

	sum := 0.0
	for i, e := range rep.Edges {
		sum += e.Weight
		if i > 0 && e.Weight < rep.Edges[i-1].Weight {
			t.Errorf("edge %d weight %v below edge %d weight %v", i, e.Weight, i-1, rep.Edges[i-1].Weight)
		}
	}
	if diff := sum - rep.TotalWeight; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("total_weight = %v, edges sum to %v", rep.TotalWeight, sum)
	}
}

func TestMSTCommandSameSeedSameTree(t *testing.T) {
	a, err := runRoot(t, "mst", "-n", "12", "--seed", "42", "--json")
	if err != nil {
		t.Fatal(err)
	}
	b, err := runRoot(t, "mst", "-n", "12", "--seed", "42", "--json")
	if err != nil {
		t.Fatal(err)
	}

	var ra, rb mstReport
	if err := json.Unmarshal([]byte(a), &ra); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(b), &rb); err != nil {
		t.Fatal(err)
	}
	if ra.TotalWeight != rb.TotalWeight || len(ra.Edges) != len(rb.Edges) {
		t.Errorf("seed 42 produced different trees: %v vs %v", ra.TotalWeight, rb.TotalWeight)
	}
}

func TestMSTCommandTable(t *testing.T) {
	out, err := runRoot(t, "mst", "-n", "4", "--seed", "1")
	if err != nil {
		t.Fatalf("mst: %v", err)
	}
	for _, want := range []string{"Minimum spanning tree", "Edge", "Weight", "random, seed 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestMSTCommandSingleVertex(t *testing.T) {
	out, err := runRoot(t, "mst", "-n", "1", "--json")
	if err != nil {
		t.Fatalf("mst: %v", err)
	}
	if !strings.Contains(out, `"edges": []`) {
		t.Errorf("single vertex should report an empty edge list:\n%s", out)
	}
}

func TestMSTCommandMissingInput(t *testing.T) {
	_, err := runRoot(t, "mst", "-i", filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want FILE_NOT_FOUND", err)
	}
}

func TestPointsCommandStdout(t *testing.T) {
	out, err := runRoot(t, "points", "-n", "4", "--seed", "2")
	if err != nil {
		t.Fatalf("points: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), out)
	}
	for _, l := range lines {
		if strings.Count(l, ",") != 1 {
			t.Errorf("line %q is not an x,y pair", l)
		}
	}
}

func TestPointsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.txt")
	if _, err := runRoot(t, "points", "-n", "6", "--seed", "5", "-o", path); err != nil {
		t.Fatalf("points: %v", err)
	}

	out, err := runRoot(t, "mst", "-i", path, "--json")
	if err != nil {
		t.Fatalf("mst: %v", err)
	}
	var rep mstReport
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatal(err)
	}
	if rep.Source != "file" || len(rep.Vertices) != 6 || len(rep.Edges) != 5 {
		t.Errorf("got source %q with %d vertices and %d edges", rep.Source, len(rep.Vertices), len(rep.Edges))
	}
}

func TestExportCommand(t *testing.T) {
	base := filepath.Join(t.TempDir(), "tree")
	_, err := runRoot(t, "export", "-n", "5", "--seed", "8", "--format", "dot,html", "--no-cache", "-o", base)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	dotSrc, err := os.ReadFile(base + ".dot")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(dotSrc), "graph G {") {
		t.Errorf("dot output starts with %q", string(dotSrc)[:min(20, len(dotSrc))])
	}
	if got := strings.Count(string(dotSrc), " -- "); got != 4 {
		t.Errorf("finished tree has %d edges, want 4", got)
	}

	page, err := os.ReadFile(base + ".html")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(page), "echarts") {
		t.Error("html output does not load echarts")
	}
}

func TestExportCommandFrame(t *testing.T) {
	base := filepath.Join(t.TempDir(), "frame")
	_, err := runRoot(t, "export", "-n", "5", "--seed", "8", "-f", "2", "--frame", "3", "--format", "dot", "--no-cache", "-o", base)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	dotSrc, err := os.ReadFile(base + ".dot")
	if err != nil {
		t.Fatal(err)
	}
	// Three ticks at two frames per edge: one edge drawn, the second half way.
	if !strings.Contains(string(dotSrc), "tip [color=green]") {
		t.Error("partial edge missing")
	}
	if got := strings.Count(string(dotSrc), " -- "); got != 2 {
		t.Errorf("got %d edge lines, want 1 drawn plus the partial", got)
	}
}

func TestExportCommandBadFormat(t *testing.T) {
	_, err := runRoot(t, "export", "--format", "gif", "--no-cache")
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("err = %v, want INVALID_FORMAT", err)
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{"svg"}},
		{"svg", []string{"svg"}},
		{"SVG, png", []string{"svg", "png"}},
		{"dot,dot,html", []string{"dot", "html"}},
	}
	for _, tt := range tests {
		got, err := parseFormats(tt.in)
		if err != nil {
			t.Errorf("parseFormats(%q): %v", tt.in, err)
			continue
		}
		if strings.Join(got, ",") != strings.Join(tt.want, ",") {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOutputBase(t *testing.T) {
	tests := []struct {
		output  string
		formats []string
		want    string
	}{
		{"", []string{"svg"}, "kruskal"},
		{"tree", []string{"svg"}, "tree"},
		{"tree.svg", []string{"svg"}, "tree"},
		{"tree.svg", []string{"svg", "png"}, "tree.svg"},
		{"tree.png", []string{"svg"}, "tree.png"},
	}
	for _, tt := range tests {
		if got := outputBase(tt.output, tt.formats); got != tt.want {
			t.Errorf("outputBase(%q, %v) = %q, want %q", tt.output, tt.formats, got, tt.want)
		}
	}
}

func TestCompleteFormats(t *testing.T) {
	tests := []struct {
		toComplete string
		want       []string
	}{
		{"", []string{"dot", "svg", "png", "html"}},
		{"s", []string{"dot", "svg", "png", "html"}},
		{"svg,", []string{"svg,dot", "svg,png", "svg,html"}},
		{"svg,png,h", []string{"svg,png,dot", "svg,png,html"}},
	}
	for _, tt := range tests {
		got, _ := completeFormats(nil, nil, tt.toComplete)
		if strings.Join(got, " ") != strings.Join(tt.want, " ") {
			t.Errorf("completeFormats(%q) = %v, want %v", tt.toComplete, got, tt.want)
		}
	}
}

func TestCompletionCommand(t *testing.T) {
	out, err := runRoot(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion: %v", err)
	}
	if !strings.Contains(out, "kruskalviz") {
		t.Error("bash completion script does not mention the program")
	}
}
