package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	perrors "github.com/docdraft/docdraft/internal/errors"
	"github.com/docdraft/docdraft/internal/i18n"
	"github.com/docdraft/docdraft/internal/session"
)

func TestWordDocument(t *testing.T) {
	const fragment = "<h1>Hello</h1><p>ภาษาไทย</p>"
	got := WordDocument(fragment)

	if !bytes.HasPrefix(got, []byte{0xEF, 0xBB, 0xBF}) {
		t.Fatalf("document must start with a UTF-8 BOM, got % x", got[:3])
	}
	body := string(got[3:])
	want := "<html xmlns:o='urn:schemas-microsoft-com:office:office' xmlns:w='urn:schemas-microsoft-com:office:word' " +
		"xmlns='http://www.w3.org/TR/REC-html40'><head><meta charset='utf-8'><title>Export HTML To Doc</title></head><body>" +
		fragment + "</body></html>"
	if body != want {
		t.Errorf("unexpected document:\n got: %s\nwant: %s", body, want)
	}
}

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML("# Title\n\n- one\n- two\n\n**bold**")
	if err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}
	for _, want := range []string{"<h1>Title</h1>", "<li>one</li>", "<strong>bold</strong>"} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered HTML missing %q:\n%s", want, html)
		}
	}
}

func TestWriteWordFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "doc.doc")

	written, err := WriteWordFile(path, "# Report")
	if err != nil {
		t.Fatalf("WriteWordFile() error = %v", err)
	}
	if written != path {
		t.Errorf("written = %q, want %q", written, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !bytes.Contains(data, []byte("<h1>Report</h1>")) {
		t.Errorf("exported file missing rendered heading")
	}
}

func TestWriteWordFile_DefaultName(t *testing.T) {
	t.Chdir(t.TempDir())

	written, err := WriteWordFile("", "text")
	if err != nil {
		t.Fatalf("WriteWordFile() error = %v", err)
	}
	if written != DefaultFilename {
		t.Errorf("written = %q, want %q", written, DefaultFilename)
	}
	if _, err := os.Stat(DefaultFilename); err != nil {
		t.Errorf("default file not created: %v", err)
	}
}

func TestWriteWordFile_EmptyDocument(t *testing.T) {
	_, err := WriteWordFile(filepath.Join(t.TempDir(), "x.doc"), "  ")
	if !perrors.Is(err, perrors.KindInvalid) {
		t.Errorf("expected KindInvalid, got %v", err)
	}
}

func TestSessionSnapshot(t *testing.T) {
	s := session.Session{
		ID:         7,
		Title:      "Launch plan",
		Preview:    "Just now",
		Language:   i18n.Thai,
		Transcript: []session.Message{{ID: "m1", Role: session.RoleUser, Text: "plan"}},
		Document:   "# Plan",
	}

	data, err := SessionSnapshot(s)
	if err != nil {
		t.Fatalf("SessionSnapshot() error = %v", err)
	}

	var got map[string]any
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("snapshot is not valid YAML: %v", err)
	}
	if got["title"] != "Launch plan" || got["language"] != "th" || got["document"] != "# Plan" {
		t.Errorf("unexpected snapshot: %v", got)
	}
	transcript, _ := got["transcript"].([]any)
	if len(transcript) != 1 {
		t.Errorf("expected 1 message in snapshot, got %d", len(transcript))
	}
}
