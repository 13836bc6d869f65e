package layout

import "testing"

func TestNew_Defaults(t *testing.T) {
	s := New().State()
	if !s.NavVisible || !s.PreviewVisible {
		t.Error("both panes should be visible by default")
	}
	if s.PreviewWidthPercent != 45 {
		t.Errorf("PreviewWidthPercent = %v, want 45", s.PreviewWidthPercent)
	}
	if s.Resizing || s.FullscreenPreview || s.NarrowViewport {
		t.Errorf("unexpected flags set: %+v", s)
	}
}

func TestNewWithWidth_OutOfRange(t *testing.T) {
	if got := NewWithWidth(90).State().PreviewWidthPercent; got != 45 {
		t.Errorf("out-of-range width should fall back to 45, got %v", got)
	}
	if got := NewWithWidth(30).State().PreviewWidthPercent; got != 30 {
		t.Errorf("PreviewWidthPercent = %v, want 30", got)
	}
}

func TestSetViewport(t *testing.T) {
	tests := []struct {
		cols   int
		narrow bool
	}{
		{80, true},
		{95, true},
		{96, false},
		{200, false},
	}
	for _, tt := range tests {
		c := New()
		c.SetViewportColumns(tt.cols)
		if c.State().NarrowViewport != tt.narrow {
			t.Errorf("cols=%d: NarrowViewport = %v, want %v", tt.cols, c.State().NarrowViewport, tt.narrow)
		}
	}

	c := New()
	c.SetViewportPixels(767)
	if !c.State().NarrowViewport {
		t.Error("767px should be narrow")
	}
	c.SetViewportPixels(768)
	if c.State().NarrowViewport {
		t.Error("768px should not be narrow")
	}
}

// Scenario: container right edge 1000, width 1000.
func TestResizeDrag(t *testing.T) {
	c := New()
	if !c.BeginResize() {
		t.Fatal("BeginResize should succeed with preview visible")
	}

	steps := []struct {
		x       float64
		applied bool
		want    float64
	}{
		{600, true, 40},
		{100, false, 40}, // 90% is out of range
		{850, false, 40}, // 15% is out of range
		{800, true, 20},  // lower bound inclusive
		{200, true, 80},  // upper bound inclusive
	}
	for _, st := range steps {
		if got := c.Move(st.x, 1000, 1000); got != st.applied {
			t.Errorf("Move(%v) applied = %v, want %v", st.x, got, st.applied)
		}
		if got := c.State().PreviewWidthPercent; got != st.want {
			t.Errorf("after Move(%v) width = %v, want %v", st.x, got, st.want)
		}
	}

	c.EndResize()
	if c.State().Resizing {
		t.Error("EndResize should clear Resizing")
	}
	if c.Move(500, 1000, 1000) {
		t.Error("Move after EndResize must be ignored")
	}
	if c.State().PreviewWidthPercent != 80 {
		t.Errorf("width changed after EndResize: %v", c.State().PreviewWidthPercent)
	}
}

func TestMove_WithoutResize(t *testing.T) {
	c := New()
	if c.Move(600, 1000, 1000) {
		t.Error("Move without BeginResize must be ignored")
	}
	if c.State().PreviewWidthPercent != 45 {
		t.Error("width must not change")
	}
}

func TestBeginResize_Refused(t *testing.T) {
	tests := []struct {
		name  string
		setup func(c *Controller)
	}{
		{"preview hidden", func(c *Controller) { c.TogglePreview() }},
		{"fullscreen", func(c *Controller) { c.ToggleFullscreen() }},
		{"narrow", func(c *Controller) { c.SetViewportColumns(60) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			tt.setup(c)
			if c.BeginResize() {
				t.Error("BeginResize should be refused")
			}
			if c.State().Resizing {
				t.Error("Resizing must stay false")
			}
		})
	}
}

func TestToggles(t *testing.T) {
	c := New()

	c.ToggleNav()
	if c.State().NavVisible {
		t.Error("ToggleNav should hide nav")
	}
	c.ToggleNav()
	if !c.State().NavVisible {
		t.Error("ToggleNav should show nav")
	}

	c.ToggleFullscreen()
	if !c.State().FullscreenPreview {
		t.Fatal("ToggleFullscreen should enter fullscreen")
	}
	c.TogglePreview()
	s := c.State()
	if s.PreviewVisible || s.FullscreenPreview {
		t.Errorf("closing preview should also exit fullscreen: %+v", s)
	}

	c.ToggleFullscreen()
	if c.State().FullscreenPreview {
		t.Error("fullscreen requires a visible preview")
	}

	c.ShowPreview()
	if !c.State().PreviewVisible {
		t.Error("ShowPreview should show preview")
	}
}

func TestToggleFullscreen_EndsResize(t *testing.T) {
	c := New()
	c.BeginResize()
	c.ToggleFullscreen()
	if c.State().Resizing {
		t.Error("entering fullscreen should end the drag")
	}
}

func TestTogglePreview_EndsResize(t *testing.T) {
	c := New()
	c.BeginResize()
	c.TogglePreview()
	if c.State().Resizing {
		t.Error("closing the preview should end the drag")
	}
}

func TestDismissOverlays(t *testing.T) {
	wide := New()
	wide.DismissOverlays()
	if !wide.State().NavVisible || !wide.State().PreviewVisible {
		t.Error("DismissOverlays is a no-op on wide viewports")
	}

	narrow := New()
	narrow.SetViewportColumns(60)
	if !narrow.Overlay() {
		t.Error("expected overlay on narrow viewport with panes open")
	}
	narrow.DismissOverlays()
	s := narrow.State()
	if s.NavVisible || s.PreviewVisible {
		t.Errorf("DismissOverlays should close both panes: %+v", s)
	}
	if narrow.Overlay() {
		t.Error("no overlay expected after dismissal")
	}
}

func TestCloseNavIfNarrow(t *testing.T) {
	c := New()
	c.CloseNavIfNarrow()
	if !c.State().NavVisible {
		t.Error("nav should stay open on wide viewports")
	}
	c.SetViewportColumns(50)
	c.CloseNavIfNarrow()
	if c.State().NavVisible {
		t.Error("nav should close on narrow viewports")
	}
}

func TestNarrowOverlaysExclusive(t *testing.T) {
	tests := []struct {
		name         string
		cols         int
		setup        func(c *Controller)
		nav, preview bool
	}{
		{"nav replaces preview", 80, func(c *Controller) { c.ToggleNav(); c.ToggleNav() }, true, false},
		{"preview replaces nav", 80, func(c *Controller) { c.TogglePreview(); c.TogglePreview() }, false, true},
		{"show preview replaces nav", 80, func(c *Controller) { c.TogglePreview(); c.ShowPreview() }, false, true},
		{"wide keeps both", 200, func(c *Controller) { c.ToggleNav(); c.ToggleNav() }, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			c.SetViewportColumns(tt.cols)
			tt.setup(c)
			s := c.State()
			if s.NavVisible != tt.nav || s.PreviewVisible != tt.preview {
				t.Errorf("nav=%v preview=%v, want nav=%v preview=%v", s.NavVisible, s.PreviewVisible, tt.nav, tt.preview)
			}
		})
	}
}

func TestColumns(t *testing.T) {
	tests := []struct {
		name  string
		setup func(c *Controller)
		total int
		want  Columns
	}{
		{"default", func(c *Controller) {}, 200, Columns{Nav: 30, Chat: 80, Preview: 90}},
		{"nav hidden", func(c *Controller) { c.ToggleNav() }, 200, Columns{Chat: 110, Preview: 90}},
		{"preview hidden", func(c *Controller) { c.TogglePreview() }, 200, Columns{Nav: 30, Chat: 170}},
		{"fullscreen", func(c *Controller) { c.ToggleFullscreen() }, 200, Columns{Preview: 200}},
		{"narrow preview wins", func(c *Controller) { c.SetViewportColumns(80) }, 80, Columns{Preview: 80}},
		{"narrow nav", func(c *Controller) { c.SetViewportColumns(80); c.TogglePreview() }, 80, Columns{Nav: 80}},
		{"narrow chat", func(c *Controller) { c.SetViewportColumns(80); c.DismissOverlays() }, 80, Columns{Chat: 80}},
		{"zero", func(c *Controller) {}, 0, Columns{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			tt.setup(c)
			if got := c.Columns(tt.total); got != tt.want {
				t.Errorf("Columns(%d) = %+v, want %+v", tt.total, got, tt.want)
			}
		})
	}
}

func TestColumns_KeepsChatVisible(t *testing.T) {
	c := NewWithWidth(80)
	cols := c.Columns(100)
	if cols.Chat < 10 {
		t.Errorf("chat should keep at least 10 columns, got %+v", cols)
	}
	if cols.Nav+cols.Chat+cols.Preview != 100 {
		t.Errorf("columns should sum to total: %+v", cols)
	}
}

func TestNudge(t *testing.T) {
	c := New()
	if !c.Nudge(5) || c.State().PreviewWidthPercent != 50 {
		t.Errorf("Nudge(5) should grow to 50, got %v", c.State().PreviewWidthPercent)
	}
	if !c.Nudge(-30) || c.State().PreviewWidthPercent != 20 {
		t.Errorf("Nudge(-30) should shrink to 20, got %v", c.State().PreviewWidthPercent)
	}
	if c.Nudge(-5) {
		t.Error("Nudge below 20 must be ignored")
	}
	if c.State().PreviewWidthPercent != 20 {
		t.Error("ignored nudge must keep the last width")
	}

	c.ToggleFullscreen()
	if c.Nudge(5) {
		t.Error("Nudge must be refused in fullscreen")
	}
}
