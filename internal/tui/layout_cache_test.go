package tui

import "testing"

func TestBuildLayoutCache(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		want          LayoutCache
	}{
		{
			name:  "regular terminal",
			width: 120, height: 40,
			want: LayoutCache{
				Width: 120, Height: 40,
				SidebarW: 20, RulerY: 1,
				GridX: 20, GridY: 3, GridW: 100, GridH: 36,
				FooterY: 39,
			},
		},
		{
			name:  "narrow terminal uses minimum sidebar",
			width: 60, height: 10,
			want: LayoutCache{
				Width: 60, Height: 10,
				SidebarW: 14, RulerY: 1,
				GridX: 14, GridY: 3, GridW: 46, GridH: 6,
				FooterY: 9,
			},
		},
		{
			name:  "wide terminal caps sidebar",
			width: 300, height: 5,
			want: LayoutCache{
				Width: 300, Height: 5,
				SidebarW: 24, RulerY: 1,
				GridX: 24, GridY: 3, GridW: 276, GridH: 1,
				FooterY: 4,
			},
		},
		{
			name:  "too small",
			width: 8, height: 2,
			want: LayoutCache{
				Width: 8, Height: 2,
				SidebarW: 8, RulerY: 1,
				GridX: 8, GridY: 3, GridW: 0, GridH: 0,
				FooterY: 1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildLayoutCache(tt.width, tt.height); got != tt.want {
				t.Errorf("buildLayoutCache(%d, %d) =\n%+v\nwant\n%+v", tt.width, tt.height, got, tt.want)
			}
		})
	}
}

func TestLayoutCache_Regions(t *testing.T) {
	l := buildLayoutCache(120, 40)

	if !l.inGrid(20, 3) || !l.inGrid(119, 38) {
		t.Error("grid corners should be inside the grid")
	}
	if l.inGrid(19, 3) || l.inGrid(20, 2) || l.inGrid(20, 39) {
		t.Error("sidebar, ruler and footer are outside the grid")
	}
	if !l.inSidebar(0, 3) || l.inSidebar(20, 3) || l.inSidebar(0, 2) {
		t.Error("unexpected sidebar hit testing")
	}
}
