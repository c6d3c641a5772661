package theme

import (
	"testing"

	"palinview/internal/presenter"
)

func TestPalettesCoverEveryRole(t *testing.T) {
	for _, mode := range []string{"light", "dark"} {
		th := NewTheme(mode)
		if th.Mode != mode {
			t.Errorf("expected mode %q, got %q", mode, th.Mode)
		}
		for _, r := range []presenter.Role{presenter.RoleNeutral, presenter.RoleCelebrate, presenter.RoleMuted} {
			rp, ok := th.Palette.Roles[r]
			if !ok {
				t.Fatalf("%s: missing palette for %s", mode, r)
			}
			if rp.Letter.A == 0 || rp.Caption.A == 0 {
				t.Errorf("%s/%s: transparent text colors", mode, r)
			}
		}
	}
}

func TestUnknownModeFallsBackToLight(t *testing.T) {
	th := NewTheme("sepia")
	if th.Mode != "light" {
		t.Errorf("expected light, got %q", th.Mode)
	}
	if th.Palette.Role(presenter.Role(99)) != th.Palette.Roles[presenter.RoleNeutral] {
		t.Error("unknown role should use the neutral palette")
	}
}
