package desktop

import "testing"

func TestDetectFrom(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want Environment
	}{
		{"gnome", map[string]string{"XDG_CURRENT_DESKTOP": "GNOME"}, GNOME},
		{"ubuntu gnome list", map[string]string{"XDG_CURRENT_DESKTOP": "ubuntu:GNOME"}, GNOME},
		{"kde plasma", map[string]string{"XDG_CURRENT_DESKTOP": "KDE"}, KDE},
		{"xfce session", map[string]string{"DESKTOP_SESSION": "xfce"}, XFCE},
		{"cinnamon", map[string]string{"XDG_CURRENT_DESKTOP": "X-Cinnamon"}, Cinnamon},
		{"mate", map[string]string{"DESKTOP_SESSION": "mate"}, MATE},
		{"lxqt", map[string]string{"XDG_CURRENT_DESKTOP": "LXQt"}, LXQt},
		{"kde marker only", map[string]string{"KDE_FULL_SESSION": "true"}, KDE},
		{"gnome marker only", map[string]string{"GNOME_DESKTOP_SESSION_ID": "this-is-deprecated"}, GNOME},
		{"current desktop wins", map[string]string{"XDG_CURRENT_DESKTOP": "KDE", "DESKTOP_SESSION": "gnome"}, KDE},
		{"nothing set", map[string]string{}, Unknown},
		{"unrecognized", map[string]string{"XDG_CURRENT_DESKTOP": "weston"}, Unknown},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			getenv := func(key string) string { return c.env[key] }
			if got := DetectFrom(getenv); got != c.want {
				t.Fatalf("got %v want %v", got, c.want)
			}
		})
	}
}

func TestEnvironmentString(t *testing.T) {
	if GNOME.String() != "GNOME" {
		t.Fatalf("got %q", GNOME.String())
	}
	if Environment(99).String() != "unknown" {
		t.Fatalf("got %q", Environment(99).String())
	}
}
