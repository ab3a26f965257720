package ui

import (
	"bytes"
	"fmt"
	"testing"

	"scrollpanel/internal/linebuf"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScrollPanel_DefaultName(t *testing.T) {
	p := NewScrollPanel(3)
	assert.Equal(t, "ScrollPanel_3", p.Name())
	assert.Equal(t, 3, p.Instance())
	assert.Equal(t, linebuf.DefaultCapacity, p.Buffer().Cap())

	named := NewScrollPanel(1, WithName("build"), WithCapacity(5))
	assert.Equal(t, "build", named.Name())
	assert.Equal(t, 5, named.Buffer().Cap())
}

func TestScrollPanel_OwnsItsBuffer(t *testing.T) {
	a := NewScrollPanel(1)
	b := NewScrollPanel(2)
	a.AddLine("only in a")
	assert.Equal(t, 1, a.Buffer().Len())
	assert.Equal(t, 0, b.Buffer().Len())
}

func TestScrollPanel_UpdateRoutesByTarget(t *testing.T) {
	p := NewScrollPanel(1)

	p.Update(AppendLineMsg{Target: "ScrollPanel_1", Text: "mine"})
	p.Update(AppendLineMsg{Target: "ScrollPanel_2", Text: "not mine"})
	p.Update(AppendLineMsg{Text: "everyone"})
	assert.Equal(t, []string{"mine", "everyone"}, p.Buffer().Lines())

	p.Update(ReplaceLastLineMsg{Target: "ScrollPanel_1", Text: "changed"})
	assert.Equal(t, []string{"mine", "changed"}, p.Buffer().Lines())

	p.Update(ClearMsg{Target: "ScrollPanel_2"})
	assert.Equal(t, 2, p.Buffer().Len())
	p.Update(ClearMsg{Target: "ScrollPanel_1"})
	assert.Equal(t, 0, p.Buffer().Len())
}

func TestScrollPanel_ReplaceOnEmptyIsLoggedAndIgnored(t *testing.T) {
	var logs bytes.Buffer
	p := NewScrollPanel(1, WithLogger(zerolog.New(&logs)))

	assert.ErrorIs(t, p.ChangeLastLine("x"), linebuf.ErrEmpty)

	_, cmd := p.Update(ReplaceLastLineMsg{Text: "x"})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, p.Buffer().Len())
	assert.Contains(t, logs.String(), "replace-last on empty panel ignored")
	assert.Contains(t, logs.String(), `"panel":"ScrollPanel_1"`)
}

func TestScrollPanel_ViewShowsNewestLines(t *testing.T) {
	p := NewScrollPanel(1, WithCapacity(10))
	p.SetSize(12, 5)
	for i := 1; i <= 6; i++ {
		p.AddLine(fmt.Sprintf("line %d", i))
	}

	lines := plainLines(p.View())
	require.Len(t, lines, 5)
	assert.Equal(t, "╭ ScrollP… ╮", lines[0])
	assert.Equal(t, "│ line 4   │", lines[1])
	assert.Equal(t, "│ line 5   │", lines[2])
	assert.Equal(t, "│ line 6   │", lines[3])
}

func TestScrollPanel_RefreshInvalidatesCache(t *testing.T) {
	p := NewScrollPanel(1, WithName("p"))
	p.SetSize(10, 4)
	first := p.View()
	assert.Equal(t, first, p.View(), "unchanged panel renders from cache")

	before := p.Refreshes()
	p.AddLine("new")
	assert.Equal(t, before+1, p.Refreshes())
	assert.NotEqual(t, first, p.View())

	require.NoError(t, p.ChangeLastLine("newer"))
	assert.Contains(t, plain(p.View()), "newer")
}

func TestScrollPanel_TooShortShowsNoLines(t *testing.T) {
	p := NewScrollPanel(1, WithName("p"))
	p.SetSize(10, 2)
	p.AddLine("hidden")
	lines := plainLines(p.View())
	require.Len(t, lines, 2)
	assert.NotContains(t, plain(p.View()), "hidden")
}

func TestStaticPanel_View(t *testing.T) {
	s := NewStaticPanel("Some text.\nNothing much.\n", "This is a title")
	s.SetSize(24, 4)
	assert.Equal(t, []string{
		"╭─ This is a title ────╮",
		"│ Some text.           │",
		"│ Nothing much.        │",
		"╰──────────────────────╯",
	}, plainLines(s.View()))
}

func TestStaticPanel_SetBackground(t *testing.T) {
	s := NewStaticPanel("x", "t")
	require.NoError(t, s.SetBackground("#FFFACD"))
	require.NoError(t, s.SetBackground(""))
	assert.Error(t, s.SetBackground("lemon"))
}

func TestScrollPanel_ResizeHookGetsTextArea(t *testing.T) {
	type area struct{ cols, rows int }
	var got []area
	p := NewScrollPanel(1, WithResizeHook(func(cols, rows int) {
		got = append(got, area{cols, rows})
	}))

	p.SetSize(40, 12)
	p.SetSize(40, 12)
	p.SetSize(20, 6)

	assert.Equal(t, []area{{36, 10}, {16, 4}}, got, "unchanged sizes are not reported")
}
