package docs

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Fenced blocks of the topics that are executed by TestCodeBlocks.
//
// A "bash setup" block starts a new example in an empty folder, a "bash run"
// block runs prop commands, and the "console check" block that follows is
// their expected output.
const (
	setupBlock = "bash setup"
	runBlock   = "bash run"
	checkBlock = "console check"
)

func TestTopics(t *testing.T) {
	// Every topic listed in readme.md can be loaded, and every topic is
	// listed in readme.md.
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() failed: %v", err)
	}
	for _, topic := range all {
		if !slices.Contains(topicsInReadme, topic) {
			t.Errorf("topic %q is not listed in docs/readme.md", topic)
		}
	}
}

func TestGetTopics(t *testing.T) {
	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() failed: %v", err)
	}
	got, err := GetTopics("*")
	if err != nil {
		t.Fatalf("GetTopics(*) failed: %v", err)
	}
	for _, topic := range all {
		content, _ := GetTopic(topic)
		if !strings.Contains(got, content) {
			t.Errorf("GetTopics(*) is missing topic %q", topic)
		}
	}

	if _, err := GetTopics("mortgage", "no-such-topic"); err == nil {
		t.Error("GetTopics() with an unknown topic should fail")
	}
}

func TestTitles(t *testing.T) {
	// Every topic starts with a level 1 heading.
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			t.Fatal(err)
		}
		root := goldmark.DefaultParser().Parse(text.NewReader(content))
		h, ok := root.FirstChild().(*ast.Heading)
		if !ok || h.Level != 1 {
			t.Errorf("%s: should start with a level 1 heading", file)
		}
	}
}

func TestCodeBlocks(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	files = append(files, "../README.md")

	env := propEnv(t)
	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			s := session{env: env, dir: t.TempDir()}
			for _, b := range codeBlocks(t, file) {
				s.exec(t, b)
			}
		})
	}
}

// codeBlock is an executable fenced block of a topic.
type codeBlock struct {
	kind   string
	script string
	pos    string // file:line, for error messages
}

// propEnv builds the prop binary and returns the environment to run the
// examples with: prop in the PATH, reports printed as raw markdown and the
// default long-let assumptions.
func propEnv(t *testing.T) []string {
	t.Helper()
	dir := t.TempDir()
	build := exec.Command("go", "build", "-o", filepath.Join(dir, "prop"), "../prop/")
	if out, err := build.CombinedOutput(); err != nil {
		t.Fatalf("failed to build prop: %v\n%s", err, out)
	}

	return append(os.Environ(),
		fmt.Sprintf("PATH=%s%c%s", dir, os.PathListSeparator, os.Getenv("PATH")),
		"PROP_CURRENCY=GBP",
		"PROP_FORMAT=markdown",
		"PROP_MANAGEMENT_FEE=10",
		"PROP_MAINTENANCE=1",
		"PROP_INSURANCE=30",
		"PROP_VOID_MONTHS=4",
	)
}

// codeBlocks returns the executable blocks of a markdown file, in order.
func codeBlocks(t *testing.T, file string) []codeBlock {
	t.Helper()
	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read %s: %v", file, err)
	}

	var blocks []codeBlock
	root := goldmark.DefaultParser().Parse(text.NewReader(content))
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		kind := string(fcb.Info.Segment.Value(content))
		if kind != setupBlock && kind != runBlock && kind != checkBlock {
			return ast.WalkContinue, nil
		}

		var script strings.Builder
		for i := 0; i < fcb.Lines().Len(); i++ {
			seg := fcb.Lines().At(i)
			script.Write(seg.Value(content))
		}
		// goldmark has no line numbers, count them up to the info string.
		line := bytes.Count(content[:fcb.Info.Segment.Start], []byte("\n")) + 1
		blocks = append(blocks, codeBlock{
			kind:   kind,
			script: script.String(),
			pos:    fmt.Sprintf("%s:%d", file, line),
		})
		return ast.WalkContinue, nil
	})
	return blocks
}

// session runs the blocks of one topic, in the folder of the current
// example.
type session struct {
	env    []string
	dir    string
	output string // of the last run block
}

func (s *session) exec(t *testing.T, b codeBlock) {
	t.Helper()
	if b.kind == checkBlock {
		got, want := strings.TrimSpace(s.output), strings.TrimSpace(b.script)
		if got != want {
			t.Errorf("%s: output mismatch:\ngot:\n\n%s\n\nwant:\n\n%s\n\ngot :%q\nwant:%q", b.pos, got, want, got, want)
		}
		return
	}
	if b.kind == setupBlock {
		s.dir = t.TempDir()
	}

	cmd := exec.Command("bash", "-c", "set -e; "+b.script)
	cmd.Dir = s.dir
	cmd.Env = s.env
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("%s: %s failed: %v with output:\n%s", b.pos, b.kind, err, out)
	}
	if b.kind == runBlock {
		s.output = string(out)
	}
}
