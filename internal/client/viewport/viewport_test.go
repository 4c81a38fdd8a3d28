package viewport

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/docsync/internal/models"
)

func makeDoc(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = "line" + strconv.Itoa(i)
	}
	return strings.Join(lines, "\n")
}

func TestNew_Defaults(t *testing.T) {
	w := New(Options{})
	assert.Equal(t, DefaultThreshold, w.opts.Threshold)
	assert.Equal(t, DefaultPageSize, w.opts.PageSize)
	assert.Equal(t, DefaultInitialSize, w.opts.InitialSize)
}

func TestWindow_Reset(t *testing.T) {
	w := New(Options{})

	w.Reset(500)
	assert.Equal(t, models.ViewportRange{Start: 0, End: 100}, w.Range())

	w.Reset(30)
	assert.Equal(t, models.ViewportRange{Start: 0, End: 30}, w.Range())
}

func TestWindow_Scroll(t *testing.T) {
	tests := []struct {
		name     string
		start    models.ViewportRange
		ev       ScrollEvent
		lines    int
		expected models.ViewportRange
		changed  bool
	}{
		{
			name:     "near bottom extends end",
			start:    models.ViewportRange{Start: 0, End: 100},
			ev:       ScrollEvent{Offset: 1500, ViewportHeight: 400, ContentHeight: 2000},
			lines:    500,
			expected: models.ViewportRange{Start: 0, End: 150},
			changed:  true,
		},
		{
			name:     "end clamped to content",
			start:    models.ViewportRange{Start: 0, End: 100},
			ev:       ScrollEvent{Offset: 1500, ViewportHeight: 400, ContentHeight: 2000},
			lines:    120,
			expected: models.ViewportRange{Start: 0, End: 120},
			changed:  true,
		},
		{
			name:     "middle is a no-op",
			start:    models.ViewportRange{Start: 100, End: 200},
			ev:       ScrollEvent{Offset: 800, ViewportHeight: 400, ContentHeight: 2000},
			lines:    500,
			expected: models.ViewportRange{Start: 100, End: 200},
		},
		{
			name:     "near top moves start back",
			start:    models.ViewportRange{Start: 100, End: 200},
			ev:       ScrollEvent{Offset: 50, ViewportHeight: 400, ContentHeight: 2000},
			lines:    500,
			expected: models.ViewportRange{Start: 50, End: 200},
			changed:  true,
		},
		{
			name:     "start clamped at zero",
			start:    models.ViewportRange{Start: 20, End: 200},
			ev:       ScrollEvent{Offset: 0, ViewportHeight: 400, ContentHeight: 2000},
			lines:    500,
			expected: models.ViewportRange{Start: 0, End: 200},
			changed:  true,
		},
		{
			name:     "top with start zero is a no-op",
			start:    models.ViewportRange{Start: 0, End: 100},
			ev:       ScrollEvent{Offset: 0, ViewportHeight: 400, ContentHeight: 2000},
			lines:    500,
			expected: models.ViewportRange{Start: 0, End: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New(Options{})
			w.rng = tt.start
			w.lines = tt.lines

			changed := w.Scroll(tt.ev, tt.lines)

			assert.Equal(t, tt.changed, changed)
			assert.Equal(t, tt.expected, w.Range())
			assert.LessOrEqual(t, w.Range().End, tt.lines)
			assert.GreaterOrEqual(t, w.Range().Start, 0)
		})
	}
}

func TestWindow_SliceAndSplice(t *testing.T) {
	doc := makeDoc(300)
	w := New(Options{})
	w.Reset(LineCount(doc))

	visible := w.Slice(doc)
	require.Equal(t, 100, LineCount(visible))
	assert.True(t, strings.HasPrefix(visible, "line0\n"))
	assert.True(t, strings.HasSuffix(visible, "\nline99"))

	// редактор добавил строку в конец видимой части
	edited := visible + "\nnew"
	full := w.Splice(doc, edited)

	lines := SplitLines(full)
	require.Len(t, lines, 301)
	assert.Equal(t, "line99", lines[99])
	assert.Equal(t, "new", lines[100])
	assert.Equal(t, "line100", lines[101])
	assert.Equal(t, "line299", lines[300])
	assert.Equal(t, models.ViewportRange{Start: 0, End: 101}, w.Range())
}

func TestWindow_SpliceInMiddleWindow(t *testing.T) {
	doc := makeDoc(10)
	w := New(Options{InitialSize: 3})
	w.rng = models.ViewportRange{Start: 4, End: 6}
	w.lines = 10

	assert.Equal(t, "line4\nline5", w.Slice(doc))

	full := w.Splice(doc, "X")
	assert.Equal(t, "line0\nline1\nline2\nline3\nX\nline6\nline7\nline8\nline9", full)
	assert.Equal(t, models.ViewportRange{Start: 4, End: 5}, w.Range())
}

func TestWindow_FitsBeforeReset(t *testing.T) {
	w := New(Options{})

	full := w.Splice("", "hello\nworld")
	assert.Equal(t, "hello\nworld", full)

	assert.Equal(t, "hello\nworld", w.Slice(full))
}

func TestWindow_ContentShrank(t *testing.T) {
	w := New(Options{PageSize: 5})
	w.rng = models.ViewportRange{Start: 20, End: 30}
	w.lines = 40

	// удаленное изменение укоротило документ до 8 строк
	visible := w.Slice(makeDoc(8))

	r := w.Range()
	assert.Equal(t, 8, r.End)
	assert.Equal(t, 3, r.Start)
	assert.Equal(t, 5, LineCount(visible))
}

func TestLineCount(t *testing.T) {
	assert.Equal(t, 1, LineCount(""))
	assert.Equal(t, 1, LineCount("abc"))
	assert.Equal(t, 3, LineCount("a\nb\nc"))
	assert.Equal(t, 2, LineCount("a\n"))
}
