package classify

import "testing"

func TestIsEvent(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"onClick", true},
		{"onclick", true},
		{"ONCLICK", true},
		{"OnLoad", true},
		{"onDblClick", true},
		{"onÉvent", true},
		{"on\u00d7", false},
		{"on\xc3", false},
		{"on", false},
		{"on1", false},
		{"on-click", false},
		{"class", false},
		{"id", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := Default.IsEvent(tt.key); got != tt.want {
				t.Errorf("IsEvent(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestEventName(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"onClick", "click"},
		{"onDblClick", "dblclick"},
		{"onclick", "click"},
		{"ONMOUSEDOWN", "mousedown"},
		{"on", ""},
	}

	for _, tt := range tests {
		if got := Default.EventName(tt.key); got != tt.want {
			t.Errorf("EventName(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestIsSVG(t *testing.T) {
	for _, tag := range []string{"svg", "circle", "path", "g", "linearGradient", "foreignObject"} {
		if !Default.IsSVG(tag) {
			t.Errorf("IsSVG(%q) = false, want true", tag)
		}
	}
	for _, tag := range []string{"div", "span", "a", "button", "Svg", ""} {
		if Default.IsSVG(tag) {
			t.Errorf("IsSVG(%q) = true, want false", tag)
		}
	}
}
