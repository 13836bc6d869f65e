// Package export turns documents into files: a Word-compatible HTML
// document for sharing and a YAML snapshot of a whole session.
package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"

	perrors "github.com/docdraft/docdraft/internal/errors"
	"github.com/docdraft/docdraft/internal/logger"
	"github.com/docdraft/docdraft/internal/session"
)

const (
	// DefaultFilename is used when the user does not choose a name.
	DefaultFilename = "Abdul_DocGen_Document.doc"
	// MIMEType is the content type of a Word document.
	MIMEType = "application/msword"
)

// utf8BOM makes Word detect the encoding of the HTML shell.
const utf8BOM = "\ufeff"

const (
	wordPrefix = "<html xmlns:o='urn:schemas-microsoft-com:office:office' " +
		"xmlns:w='urn:schemas-microsoft-com:office:word' " +
		"xmlns='http://www.w3.org/TR/REC-html40'>" +
		"<head><meta charset='utf-8'><title>Export HTML To Doc</title></head><body>"
	wordSuffix = "</body></html>"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// RenderHTML converts Markdown to an HTML fragment.
func RenderHTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", perrors.E(perrors.Op("export.RenderHTML"), perrors.KindExport, err)
	}
	return buf.String(), nil
}

// WordDocument wraps an HTML fragment in the minimal shell Word opens as a
// document. The fragment is inserted verbatim.
func WordDocument(fragment string) []byte {
	var b strings.Builder
	b.Grow(len(utf8BOM) + len(wordPrefix) + len(fragment) + len(wordSuffix))
	b.WriteString(utf8BOM)
	b.WriteString(wordPrefix)
	b.WriteString(fragment)
	b.WriteString(wordSuffix)
	return []byte(b.String())
}

// WordFromMarkdown renders src and wraps it as a Word document.
func WordFromMarkdown(src string) ([]byte, error) {
	fragment, err := RenderHTML(src)
	if err != nil {
		return nil, err
	}
	return WordDocument(fragment), nil
}

// WriteWordFile exports src to path. An empty path writes DefaultFilename in
// the working directory. The path actually written is returned.
func WriteWordFile(path, src string) (string, error) {
	if strings.TrimSpace(src) == "" {
		return "", perrors.E(perrors.Op("export.WriteWordFile"), perrors.KindInvalid, "no document to export")
	}
	if path == "" {
		path = DefaultFilename
	}

	data, err := WordFromMarkdown(src)
	if err != nil {
		return "", err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", perrors.ExportFailed(path, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", perrors.ExportFailed(path, err)
	}

	logger.WithComponent("export").Info("document exported", "path", path, "bytes", len(data))
	return path, nil
}

type snapshot struct {
	ID         int64             `yaml:"id,omitempty"`
	Title      string            `yaml:"title"`
	Preview    string            `yaml:"preview,omitempty"`
	Language   string            `yaml:"language"`
	Transcript []session.Message `yaml:"transcript,omitempty"`
	Document   string            `yaml:"document"`
}

// SessionSnapshot serializes a session as YAML.
func SessionSnapshot(s session.Session) ([]byte, error) {
	out, err := yaml.Marshal(snapshot{
		ID:         s.ID,
		Title:      s.Title,
		Preview:    s.Preview,
		Language:   s.Language.Code(),
		Transcript: s.Transcript,
		Document:   s.Document,
	})
	if err != nil {
		return nil, perrors.E(perrors.Op("export.SessionSnapshot"), perrors.KindExport, err)
	}
	return out, nil
}
