package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionAddPresets(t *testing.T) {
	list := &recList{}
	s := NewSession(&recSurface{}, WithListView(list))
	for i, a := range Actions() {
		got, err := s.Add(a.Name)
		require.NoError(t, err)
		assert.Equal(t, i, got)
	}
	assert.Equal(t, []string{"window", "taskbar", "shape", "logo"}, s.Stack.Names())
	assert.Len(t, list.refreshes, 4)
}

func TestSessionAddUnknown(t *testing.T) {
	s := NewSession(&recSurface{})
	i, err := s.Add("triangle")
	assert.ErrorIs(t, err, ErrUnknownAction)
	assert.Equal(t, -1, i)
	assert.Zero(t, s.Stack.Len())
}

func TestSessionSharesPalette(t *testing.T) {
	pal := NewPalette(nil)
	s := NewSession(&recSurface{}, WithPalette(pal))
	assert.Same(t, pal, s.Palette)

	require.NoError(t, s.SetColor("#00ff00"))
	assert.Equal(t, "#00ff00", s.Stack.Palette().Hex())
}

func TestSessionDragScenario(t *testing.T) {
	surf := &recSurface{}
	s := NewSession(surf)
	_, err := s.Stack.Append("box", square(nil), At(Pt(200, 200)))
	require.NoError(t, err)

	assert.False(t, s.PointerDown(Pt(50, 50)))
	require.NoError(t, s.PointerMove(Pt(60, 60)))

	assert.True(t, s.PointerDown(Pt(210, 215)))
	require.NoError(t, s.PointerMove(Pt(310, 320)))
	s.PointerUp()
	require.NoError(t, s.PointerMove(Pt(0, 0)))

	l, _ := s.Stack.Get(0)
	assert.Equal(t, Pt(300, 305), l.Pos)
	assert.Equal(t, R(300, 305, 100, 100), surf.frame[0].rect)
}
