// Package print composes documents into fixed 66-row pages for
// monospace printing. It reuses the same word wrap and hanging-indent
// rules as the screen, so printed line breaks match what the editor
// shows.
package print

import (
	"strconv"
	"strings"

	"github.com/ljosa/pagemark/internal/wrap"
)

// Page geometry for continuous-form paper at 6 lines per inch: 66 rows
// per 11-inch page, with a 6-row margin at the top and bottom.
const (
	PageRows   = 66
	MarginRows = 6
	TextRows   = PageRows - 2*MarginRows

	// pageNumberRow sits inside the top margin.
	pageNumberRow = 3
)

// Font selects the character pitch, which fixes the page and text widths.
type Font int

const (
	// Pica is 10 characters per inch: 85 columns across the page.
	Pica Font = iota
	// Elite is 12 characters per inch: 102 columns across the page.
	Elite
)

// Columns returns the total page width in characters.
func (f Font) Columns() int {
	if f == Elite {
		return 102
	}
	return 85
}

// Margin returns the left margin width in characters.
func (f Font) Margin() int {
	if f == Elite {
		return 12
	}
	return 10
}

// TextWidth returns the wrap width between the margins.
func (f Font) TextWidth() int {
	return f.Columns() - 2*f.Margin()
}

// String returns the font name as used in settings files.
func (f Font) String() string {
	if f == Elite {
		return "elite"
	}
	return "pica"
}

// FontByName maps a settings value to a Font, defaulting to Pica.
func FontByName(name string) Font {
	if strings.EqualFold(name, "elite") {
		return Elite
	}
	return Pica
}

// Options control pagination.
type Options struct {
	Font        Font
	DoubleSpace bool
	PageNumbers bool
}

// Compose lays paragraphs out into 66-row pages and returns them as
// newline-joined text, one row per line. Every page is exactly PageRows
// rows, so continuous-form paper stays aligned without form feeds. The
// result ends with a newline.
func Compose(paragraphs []string, opts Options) string {
	width := opts.Font.TextWidth()
	margin := strings.Repeat(" ", opts.Font.Margin())

	var lines []string
	for _, para := range paragraphs {
		l := wrap.Wrap(para, width)
		indent := strings.Repeat(" ", l.Indent)
		for i, line := range l.Lines {
			if i == 0 {
				lines = append(lines, margin+line)
			} else {
				lines = append(lines, margin+indent+line)
			}
		}
	}

	perPage := TextRows
	step := 1
	if opts.DoubleSpace {
		perPage = (TextRows + 1) / 2
		step = 2
	}

	var out []string
	for page := 0; len(lines) > 0 || page == 0; page++ {
		n := len(lines)
		if n > perPage {
			n = perPage
		}
		out = append(out, renderPage(lines[:n], page+1, step, opts)...)
		lines = lines[n:]
	}
	return strings.Join(out, "\n") + "\n"
}

// renderPage produces exactly PageRows rows for one page. Text rows start
// after the top margin; with double spacing, content occupies every other
// text row.
func renderPage(lines []string, number, step int, opts Options) []string {
	rows := make([]string, PageRows)
	if opts.PageNumbers && number > 1 {
		rows[pageNumberRow] = centered(strconv.Itoa(number), opts.Font.Columns())
	}
	for i, line := range lines {
		rows[MarginRows+i*step] = line
	}
	return rows
}

func centered(s string, width int) string {
	pad := (width - len([]rune(s))) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + s
}
