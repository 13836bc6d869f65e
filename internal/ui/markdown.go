package ui

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/x/ansi"
)

// Markdown patterns for inline formatting
var (
	boldPattern       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	underscoreItalic  = regexp.MustCompile(`(^|[^\w])_([^_]+)_([^\w]|$)`)
	starItalic        = regexp.MustCompile(`(^|[^*])\*([^*\s][^*]*)\*([^*]|$)`)
	inlineCodePattern = regexp.MustCompile("`([^`]+)`")
	linkPattern       = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	numberedPattern   = regexp.MustCompile(`^(\d{1,3})\. (.*)$`)
)

// codeStyleName is the chroma style used for fenced code blocks
const codeStyleName = "monokai"

// highlightCode applies syntax highlighting to code using chroma
func highlightCode(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(codeStyleName)
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}

	return buf.String()
}

// renderInlineMarkdown applies inline formatting (bold, italic, code, links) to a line
func renderInlineMarkdown(line string) string {
	// Protect code spans from other formatting
	type codeSpan struct {
		placeholder string
		rendered    string
	}
	var codeSpans []codeSpan

	line = inlineCodePattern.ReplaceAllStringFunc(line, func(match string) string {
		code := inlineCodePattern.FindStringSubmatch(match)[1]
		placeholder := fmt.Sprintf("\x00CODE%d\x00", len(codeSpans))
		codeSpans = append(codeSpans, codeSpan{
			placeholder: placeholder,
			rendered:    MarkdownInlineCodeStyle.Render(code),
		})
		return placeholder
	})

	line = boldPattern.ReplaceAllStringFunc(line, func(match string) string {
		return MarkdownBoldStyle.Render(boldPattern.FindStringSubmatch(match)[1])
	})

	// Underscores only at word boundaries so snake_case survives.
	line = underscoreItalic.ReplaceAllStringFunc(line, func(match string) string {
		sub := underscoreItalic.FindStringSubmatch(match)
		return sub[1] + MarkdownItalicStyle.Render(sub[2]) + sub[3]
	})

	line = starItalic.ReplaceAllStringFunc(line, func(match string) string {
		sub := starItalic.FindStringSubmatch(match)
		return sub[1] + MarkdownItalicStyle.Render(sub[2]) + sub[3]
	})

	line = linkPattern.ReplaceAllStringFunc(line, func(match string) string {
		parts := linkPattern.FindStringSubmatch(match)
		return MarkdownLinkStyle.Render(parts[1]) + " (" + MarkdownLinkStyle.Render(parts[2]) + ")"
	})

	for _, cs := range codeSpans {
		line = strings.Replace(line, cs.placeholder, cs.rendered, 1)
	}

	return line
}

// wrapText wraps text to the specified width, handling ANSI escape codes
// and wide characters
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	return ansi.Wrap(text, width, "")
}

// indentContinuation indents every line after the first
func indentContinuation(s, indent string) string {
	lines := strings.Split(s, "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = indent + lines[i]
	}
	return strings.Join(lines, "\n")
}

// renderMarkdownLine renders a single line with markdown formatting
func renderMarkdownLine(line string, width int) string {
	trimmed := strings.TrimSpace(line)

	// Headers don't wrap; they should be concise
	switch {
	case strings.HasPrefix(trimmed, "#### "):
		return MarkdownH4Style.Render(strings.TrimPrefix(trimmed, "#### "))
	case strings.HasPrefix(trimmed, "### "):
		return MarkdownH3Style.Render(strings.TrimPrefix(trimmed, "### "))
	case strings.HasPrefix(trimmed, "## "):
		return MarkdownH2Style.Render(strings.TrimPrefix(trimmed, "## "))
	case strings.HasPrefix(trimmed, "# "):
		return MarkdownH1Style.Render(strings.TrimPrefix(trimmed, "# "))
	}

	if trimmed == "---" || trimmed == "***" || trimmed == "___" {
		return MarkdownHRStyle.Render(strings.Repeat("─", max(min(width, 32), 1)))
	}

	if strings.HasPrefix(trimmed, "> ") {
		content := strings.TrimPrefix(trimmed, "> ")
		return MarkdownBlockquoteStyle.Render(wrapText(renderInlineMarkdown(content), width-4))
	}

	// Task list items
	if strings.HasPrefix(trimmed, "- [ ] ") || strings.HasPrefix(trimmed, "- [x] ") {
		box := "☐"
		if trimmed[3] == 'x' {
			box = "☑"
		}
		wrapped := wrapText(renderInlineMarkdown(trimmed[6:]), width-6)
		return "  " + MarkdownListBulletStyle.Render(box) + " " + indentContinuation(wrapped, "    ")
	}

	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
		bullet := MarkdownListBulletStyle.Render("•")
		wrapped := wrapText(renderInlineMarkdown(trimmed[2:]), width-6)
		return "  " + bullet + " " + indentContinuation(wrapped, "    ")
	}

	if m := numberedPattern.FindStringSubmatch(trimmed); m != nil {
		number := MarkdownListBulletStyle.Render(m[1] + ".")
		wrapped := wrapText(renderInlineMarkdown(m[2]), width-6)
		return "  " + number + " " + indentContinuation(wrapped, strings.Repeat(" ", len(m[1])+4))
	}

	return wrapText(renderInlineMarkdown(line), width)
}

// renderMarkdown renders markdown content for the terminal with
// syntax-highlighted code blocks
func renderMarkdown(content string, width int) string {
	if width <= 0 {
		width = DefaultWrapWidth
	}

	var result strings.Builder
	inCodeBlock := false
	codeBlockLang := ""
	var codeBlockContent strings.Builder

	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			if !inCodeBlock {
				inCodeBlock = true
				codeBlockLang = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "```"))
				codeBlockContent.Reset()
			} else {
				inCodeBlock = false
				if result.Len() > 0 {
					result.WriteString("\n")
				}
				result.WriteString(highlightCode(codeBlockContent.String(), codeBlockLang))
				result.WriteString("\n")
				codeBlockLang = ""
			}
			continue
		}

		if inCodeBlock {
			if codeBlockContent.Len() > 0 {
				codeBlockContent.WriteString("\n")
			}
			codeBlockContent.WriteString(line)
			continue
		}

		result.WriteString(renderMarkdownLine(line, width))
		result.WriteString("\n")
	}

	// An unterminated fence still shows its content
	if inCodeBlock {
		result.WriteString(highlightCode(codeBlockContent.String(), codeBlockLang))
	}

	return strings.TrimRight(result.String(), "\n")
}
