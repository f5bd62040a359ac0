package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// readmeTopics extracts the topic names listed in readme.md.
func readmeTopics(t *testing.T) []string {
	t.Helper()
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	var topics []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topics = append(topics, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("failed to scan readme.md: %v", err)
	}
	return topics
}

// TestTopics keeps the documentation in sync with itself: every topic
// listed in readme.md must load, and every topic file must be listed.
func TestTopics(t *testing.T) {
	listed := readmeTopics(t)
	if len(listed) == 0 {
		t.Fatal("no topics found in readme.md")
	}

	for _, topic := range listed {
		content, err := GetTopic(topic)
		if err != nil {
			t.Errorf("topic %q is listed in readme.md but does not load: %v", topic, err)
			continue
		}
		if strings.TrimSpace(content) == "" {
			t.Errorf("topic %q is empty", topic)
		}
	}

	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range files {
		name := strings.TrimSuffix(f, ".md")
		if name == "readme" {
			continue
		}
		if !slices.Contains(listed, name) {
			t.Errorf("topic file %s is not listed in readme.md", f)
		}
	}
}

func TestGetAllTopics(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error = %v", err)
	}
	if slices.Contains(topics, "readme") {
		t.Errorf("GetAllTopics() lists readme, it should be excluded")
	}
	if !slices.IsSorted(topics) {
		t.Errorf("GetAllTopics() is not sorted: %v", topics)
	}

	all, err := GetTopic("*")
	if err != nil {
		t.Fatalf("GetTopic(\"*\") error = %v", err)
	}
	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			t.Fatalf("GetTopic(%q) error = %v", topic, err)
		}
		if !strings.Contains(all, content) {
			t.Errorf("GetTopic(\"*\") does not include topic %q", topic)
		}
	}
}

func TestGetTopic_Unknown(t *testing.T) {
	if _, err := GetTopic("nonexistent"); err == nil {
		t.Error("GetTopic(\"nonexistent\") did not fail")
	}
}

// TestTopicsStartWithHeading parses each topic as markdown and checks
// it opens with a level-1 heading, so the glamour rendering has a
// title to show.
func TestTopicsStartWithHeading(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error = %v", err)
	}
	md := goldmark.New()
	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			t.Fatalf("GetTopic(%q) error = %v", topic, err)
		}
		root := md.Parser().Parse(text.NewReader([]byte(content)))
		first := root.FirstChild()
		heading, ok := first.(*ast.Heading)
		if !ok || heading.Level != 1 {
			t.Errorf("topic %q does not start with a level-1 heading", topic)
		}
	}
}
