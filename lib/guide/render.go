// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package guide

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/tact-project/tact/lib/theme"
)

// The goldmark parser is configuration-immutable and safe to share;
// each Parse call builds its own state.
var (
	parserOnce sync.Once
	parser     goldmark.Markdown
)

func guideParser() goldmark.Markdown {
	parserOnce.Do(func() {
		parser = goldmark.New(goldmark.WithExtensions(extension.GFM))
	})
	return parser
}

// Render turns guide Markdown into styled terminal text wrapped to
// width. Single newlines inside paragraphs reflow as spaces, so
// hard-wrapped source reads well at any terminal size. Fenced code
// highlights with the palette's chroma style; the mono palette
// renders with no escape sequences at all.
func Render(source []byte, width int, palette theme.Theme) string {
	if len(source) == 0 {
		return ""
	}
	document := guideParser().Parser().Parse(text.NewReader(source))

	// Force the color profile instead of detecting: this output always
	// goes to a Bubble Tea view, and detection sees no TTY under tests.
	profile := termenv.ANSI256
	if palette.Mono {
		profile = termenv.Ascii
	}
	styles := lipgloss.NewRenderer(os.Stderr, termenv.WithProfile(profile))
	styles.SetColorProfile(profile)

	walker := &renderer{
		source:  source,
		palette: palette,
		width:   width,
		styles:  styles,
		// Start as if a blank line were already present, so the first
		// block does not open the document with empty lines.
		trailing: 2,
	}
	ast.Walk(document, walker.walk)
	return strings.TrimRight(walker.out.String(), "\n")
}

// renderer accumulates inline fragments per block and flushes them
// word-wrapped when the block closes. goldmark's own NodeRenderer
// streams fragment-by-fragment, which cannot wrap a paragraph as a
// unit; a plain ast.Walk with an inline buffer can.
type renderer struct {
	source  []byte
	palette theme.Theme
	width   int
	styles  *lipgloss.Renderer

	out    strings.Builder
	inline strings.Builder

	// Indentation for nested blocks. bullet, when set, replaces the
	// prefix on the next emitted line only.
	prefixes    []string
	prefixWidth int
	bullet      string

	// Nested emphasis tracking; counters rather than flags so
	// **a _b_ c** unwinds correctly.
	bold   int
	italic int
	struck int

	lists []listLevel

	// Trailing newline count of out, for blank-line collapsing.
	trailing int
}

type listLevel struct {
	ordered bool
	number  int
	tight   bool
}

func (walker *renderer) style() lipgloss.Style { return walker.styles.NewStyle() }

// contentWidth is the wrap width left of the current nesting, floored
// so deep nesting cannot push wrapping into single characters.
func (walker *renderer) contentWidth() int {
	width := walker.width - walker.prefixWidth
	if width < 10 {
		width = 10
	}
	return width
}

func (walker *renderer) pushPrefix(prefix string) {
	walker.prefixes = append(walker.prefixes, prefix)
	walker.prefixWidth += ansi.StringWidth(prefix)
}

func (walker *renderer) popPrefix() {
	if len(walker.prefixes) == 0 {
		return
	}
	top := walker.prefixes[len(walker.prefixes)-1]
	walker.prefixes = walker.prefixes[:len(walker.prefixes)-1]
	walker.prefixWidth -= ansi.StringWidth(top)
}

func (walker *renderer) prefix() string {
	return strings.Join(walker.prefixes, "")
}

// linePrefix returns the prefix for the next line, consuming the
// pending bullet when one is set.
func (walker *renderer) linePrefix() string {
	if walker.bullet != "" {
		bullet := walker.bullet
		walker.bullet = ""
		return bullet
	}
	return walker.prefix()
}

func (walker *renderer) write(s string) {
	if s == "" {
		return
	}
	walker.out.WriteString(s)

	count := 0
	for index := len(s) - 1; index >= 0 && s[index] == '\n'; index-- {
		count++
	}
	if count == len(s) {
		walker.trailing += count
	} else {
		walker.trailing = count
	}
}

func (walker *renderer) newline() {
	if walker.trailing < 1 {
		walker.write("\n")
	}
}

func (walker *renderer) blankLine() {
	for walker.trailing < 2 {
		walker.write("\n")
	}
}

// indent prepends the line prefix to every line, the pending bullet
// to the first.
func (walker *renderer) indent(content string) string {
	lines := strings.Split(content, "\n")
	for index, line := range lines {
		if index == 0 {
			lines[index] = walker.linePrefix() + line
		} else {
			lines[index] = walker.prefix() + line
		}
	}
	return strings.Join(lines, "\n")
}

// flushInline wraps and indents the accumulated inline content,
// resetting the buffer.
func (walker *renderer) flushInline() string {
	content := walker.inline.String()
	walker.inline.Reset()
	if content == "" {
		return ""
	}
	return walker.indent(ansi.Wrap(content, walker.contentWidth(), " ,.;-+|"))
}

// textStyle is the style for plain inline text under the current
// emphasis state.
func (walker *renderer) textStyle() lipgloss.Style {
	style := walker.style().Foreground(walker.palette.NormalText)
	if walker.bold > 0 {
		style = style.Bold(true)
	}
	if walker.italic > 0 {
		style = style.Italic(true)
	}
	if walker.struck > 0 {
		style = style.Strikethrough(true)
	}
	return style
}

// collectInline renders a node's children into a standalone string,
// preserving the surrounding inline state.
func (walker *renderer) collectInline(node ast.Node) string {
	saved := walker.inline.String()
	savedBold, savedItalic, savedStruck := walker.bold, walker.italic, walker.struck

	walker.inline.Reset()
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		ast.Walk(child, walker.walk)
	}
	collected := walker.inline.String()

	walker.inline.Reset()
	walker.inline.WriteString(saved)
	walker.bold, walker.italic, walker.struck = savedBold, savedItalic, savedStruck
	return collected
}

func (walker *renderer) walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node.Kind() {
	case ast.KindDocument:

	case ast.KindParagraph, ast.KindTextBlock:
		if entering {
			walker.inline.Reset()
		} else if flushed := walker.flushInline(); flushed != "" {
			walker.write(flushed)
			walker.newline()
			if !walker.inTightList() {
				walker.blankLine()
			}
		}

	case ast.KindHeading:
		if entering {
			walker.inline.Reset()
		} else {
			walker.heading(node.(*ast.Heading))
		}

	case ast.KindFencedCodeBlock:
		if entering {
			walker.fencedCode(node.(*ast.FencedCodeBlock))
			return ast.WalkSkipChildren, nil
		}

	case ast.KindCodeBlock:
		if entering {
			walker.plainCode(node.(*ast.CodeBlock))
			return ast.WalkSkipChildren, nil
		}

	case ast.KindBlockquote:
		if entering {
			walker.pushPrefix("│ ")
		} else {
			walker.popPrefix()
			walker.blankLine()
		}

	case ast.KindList:
		if entering {
			list := node.(*ast.List)
			start := 0
			if list.IsOrdered() {
				start = list.Start
			}
			walker.lists = append(walker.lists, listLevel{
				ordered: list.IsOrdered(),
				number:  start,
				tight:   list.IsTight,
			})
		} else {
			if len(walker.lists) > 0 {
				walker.lists = walker.lists[:len(walker.lists)-1]
			}
			if !walker.inTightList() {
				walker.blankLine()
			}
		}

	case ast.KindListItem:
		if entering {
			walker.enterItem()
		} else {
			walker.popPrefix()
			if walker.inTightList() {
				walker.newline()
			} else {
				walker.blankLine()
			}
		}

	case ast.KindThematicBreak:
		if entering {
			rule := walker.style().Foreground(walker.palette.BorderColor).
				Render(strings.Repeat("─", walker.contentWidth()))
			walker.blankLine()
			walker.write(walker.indent(rule))
			walker.newline()
			walker.blankLine()
		}

	case ast.KindText:
		if entering {
			textNode := node.(*ast.Text)
			walker.inline.WriteString(walker.textStyle().Render(string(textNode.Segment.Value(walker.source))))
			if textNode.SoftLineBreak() {
				// Soft breaks become spaces so the paragraph reflows.
				walker.inline.WriteString(" ")
			}
			if textNode.HardLineBreak() {
				walker.inline.WriteString("\n")
			}
		}

	case ast.KindString:
		if entering {
			walker.inline.WriteString(walker.textStyle().Render(string(node.(*ast.String).Value)))
		}

	case ast.KindEmphasis:
		step := 1
		if !entering {
			step = -1
		}
		if node.(*ast.Emphasis).Level >= 2 {
			walker.bold += step
		} else {
			walker.italic += step
		}

	case ast.KindCodeSpan:
		if entering {
			walker.codeSpan(node)
			return ast.WalkSkipChildren, nil
		}

	case ast.KindLink:
		if entering {
			walker.link(node.(*ast.Link))
			return ast.WalkSkipChildren, nil
		}

	case ast.KindAutoLink:
		if entering {
			url := string(node.(*ast.AutoLink).URL(walker.source))
			walker.inline.WriteString(walker.style().Foreground(walker.palette.FaintText).Render(url))
		}

	case ast.KindImage:
		if entering {
			walker.image(node.(*ast.Image))
			return ast.WalkSkipChildren, nil
		}

	case extast.KindStrikethrough:
		if entering {
			walker.struck++
		} else {
			walker.struck--
		}

	case extast.KindTable:
		if entering {
			walker.table(node.(*extast.Table))
			return ast.WalkSkipChildren, nil
		}

	case extast.KindTaskCheckBox:
		if entering {
			box := "[ ] "
			if node.(*extast.TaskCheckBox).IsChecked {
				box = "[x] "
			}
			walker.inline.WriteString(walker.textStyle().Render(box))
		}
	}

	return ast.WalkContinue, nil
}

func (walker *renderer) heading(heading *ast.Heading) {
	// Headings restyle their whole line, so inline styling collected
	// from the children is stripped first.
	content := ansi.Strip(walker.inline.String())
	walker.inline.Reset()
	if content == "" {
		return
	}

	style := walker.style().Bold(true).Foreground(walker.palette.NormalText)
	if heading.Level <= 2 {
		style = style.Foreground(walker.palette.HeaderForeground)
	}

	walker.blankLine()
	walker.write(walker.indent(ansi.Wrap(style.Render(content), walker.contentWidth(), " ,.;-+|")))
	walker.newline()
	walker.blankLine()
}

func (walker *renderer) enterItem() {
	if len(walker.lists) == 0 {
		return
	}
	level := &walker.lists[len(walker.lists)-1]

	bullet := "- "
	if level.ordered {
		bullet = strconv.Itoa(level.number) + ". "
		level.number++
	}

	// The bullet replaces the whole prefix on the item's first line;
	// continuation lines align under the text.
	walker.bullet = walker.prefix() + bullet
	walker.pushPrefix(strings.Repeat(" ", len(bullet)))
}

func (walker *renderer) fencedCode(node *ast.FencedCodeBlock) {
	language := string(node.Language(walker.source))
	code := walker.blockText(node.Lines())

	highlighted, ok := walker.highlight(code, language)
	if !ok {
		highlighted = walker.style().Foreground(walker.palette.FaintText).Render(code)
	}

	walker.blankLine()
	for _, line := range strings.Split(strings.TrimRight(highlighted, "\n"), "\n") {
		// Explicit newline so blank lines inside the block survive.
		walker.write(walker.linePrefix() + line + "\n")
	}
	walker.blankLine()
}

func (walker *renderer) plainCode(node *ast.CodeBlock) {
	faint := walker.style().Foreground(walker.palette.FaintText)
	walker.blankLine()
	for _, line := range strings.Split(strings.TrimRight(walker.blockText(node.Lines()), "\n"), "\n") {
		walker.write(walker.linePrefix() + faint.Render(line) + "\n")
	}
	walker.blankLine()
}

// highlight runs chroma over the code with the palette's style. The
// mono palette skips highlighting entirely; its output carries no
// escape sequences.
func (walker *renderer) highlight(code, language string) (string, bool) {
	if language == "" || walker.palette.Mono {
		return "", false
	}
	styleName := walker.palette.CodeStyle
	if styleName == "" {
		styleName = "monokai"
	}
	var highlighted strings.Builder
	if err := quick.Highlight(&highlighted, code, language, "terminal256", styleName); err != nil {
		return "", false
	}
	return highlighted.String(), true
}

func (walker *renderer) blockText(lines *text.Segments) string {
	var block strings.Builder
	for index := 0; index < lines.Len(); index++ {
		segment := lines.At(index)
		block.Write(segment.Value(walker.source))
	}
	return block.String()
}

func (walker *renderer) codeSpan(node ast.Node) {
	var code strings.Builder
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch typed := child.(type) {
		case *ast.Text:
			code.Write(typed.Segment.Value(walker.source))
		case *ast.String:
			code.Write(typed.Value)
		}
	}
	walker.inline.WriteString(walker.style().Foreground(walker.palette.FaintText).Render(code.String()))
}

func (walker *renderer) link(node *ast.Link) {
	walker.inline.WriteString(walker.collectInline(node))
	if url := string(node.Destination); url != "" {
		walker.inline.WriteString(" " + walker.style().Foreground(walker.palette.FaintText).Render("("+url+")"))
	}
}

func (walker *renderer) image(node *ast.Image) {
	faint := walker.style().Foreground(walker.palette.FaintText)
	walker.inline.WriteString(faint.Render("[" + walker.collectInline(node) + "]"))
	if url := string(node.Destination); url != "" {
		walker.inline.WriteString(" " + faint.Render("("+url+")"))
	}
}

func (walker *renderer) inTightList() bool {
	return len(walker.lists) > 0 && walker.lists[len(walker.lists)-1].tight
}

// table renders a GFM table with content-sized columns, shrinking
// proportionally when the available width cannot hold them.
func (walker *renderer) table(table *extast.Table) {
	var header []string
	var rows [][]string
	for child := table.FirstChild(); child != nil; child = child.NextSibling() {
		switch child.Kind() {
		case extast.KindTableHeader:
			header = walker.tableRow(child)
		case extast.KindTableRow:
			rows = append(rows, walker.tableRow(child))
		}
	}

	columns := len(header)
	if columns == 0 && len(rows) > 0 {
		columns = len(rows[0])
	}
	if columns == 0 {
		return
	}

	widths := make([]int, columns)
	measure := func(cells []string) {
		for index, cell := range cells {
			if index < columns {
				if width := lipgloss.Width(cell); width > widths[index] {
					widths[index] = width
				}
			}
		}
	}
	measure(header)
	for _, row := range rows {
		measure(row)
	}

	const separator = "  "
	total := len(separator) * (columns - 1)
	for _, width := range widths {
		total += width
	}
	if available := walker.contentWidth(); total > available {
		usable := available - len(separator)*(columns-1)
		if usable < columns*3 {
			usable = columns * 3
		}
		for index := range widths {
			widths[index] = widths[index] * usable / total
			if widths[index] < 3 {
				widths[index] = 3
			}
		}
	}

	walker.blankLine()
	if len(header) > 0 {
		bold := walker.style().Bold(true).Foreground(walker.palette.NormalText)
		walker.write(walker.linePrefix() + walker.formatRow(header, widths, table.Alignments, bold))
		walker.newline()

		dividers := make([]string, columns)
		for index, width := range widths {
			dividers[index] = strings.Repeat("─", width)
		}
		border := walker.style().Foreground(walker.palette.BorderColor)
		walker.write(walker.prefix() + border.Render(strings.Join(dividers, separator)))
		walker.newline()
	}
	for _, row := range rows {
		normal := walker.style().Foreground(walker.palette.NormalText)
		walker.write(walker.prefix() + walker.formatRow(row, widths, table.Alignments, normal))
		walker.newline()
	}
	walker.blankLine()
}

func (walker *renderer) tableRow(row ast.Node) []string {
	var cells []string
	for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
		if cell.Kind() == extast.KindTableCell {
			cells = append(cells, walker.collectInline(cell))
		}
	}
	return cells
}

func (walker *renderer) formatRow(cells []string, widths []int, alignments []extast.Alignment, base lipgloss.Style) string {
	parts := make([]string, len(widths))
	for index, width := range widths {
		var cell string
		if index < len(cells) {
			cell = cells[index]
		}
		if lipgloss.Width(cell) > width {
			cell = ansi.Truncate(cell, width, "…")
		}

		padding := width - lipgloss.Width(cell)
		if padding < 0 {
			padding = 0
		}
		var alignment extast.Alignment
		if index < len(alignments) {
			alignment = alignments[index]
		}
		switch alignment {
		case extast.AlignRight:
			cell = strings.Repeat(" ", padding) + cell
		case extast.AlignCenter:
			cell = strings.Repeat(" ", padding/2) + cell + strings.Repeat(" ", padding-padding/2)
		default:
			cell += strings.Repeat(" ", padding)
		}
		parts[index] = cell
	}
	return base.Render(strings.Join(parts, "  "))
}
