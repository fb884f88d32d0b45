package scene

import (
	"errors"
	"testing"
)

func float(v float64) *float64 { return &v }

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		field       string
		want        Selection
		wantErr     bool
		wantErrIs   error
		wantHeading *float64
		wantPitch   *float64
	}{
		{
			name:  "PanoOnly",
			field: "abc",
			want:  Selection{PanoID: "abc"},
		},
		{
			name:        "PanoAndHeading",
			field:       "abc,45.0",
			want:        Selection{PanoID: "abc"},
			wantHeading: float(45),
		},
		{
			name:        "Full",
			field:       "abc,45.0,10.0",
			want:        Selection{PanoID: "abc"},
			wantHeading: float(45),
			wantPitch:   float(10),
		},
		{
			name:        "NegativeComponents",
			field:       "abc,-90,-5.5",
			want:        Selection{PanoID: "abc"},
			wantHeading: float(-90),
			wantPitch:   float(-5.5),
		},
		{
			name:        "WhitespaceTolerated",
			field:       " abc , 45 , 10 ",
			want:        Selection{PanoID: "abc"},
			wantHeading: float(45),
			wantPitch:   float(10),
		},
		{
			name:      "EmptyField",
			field:     "",
			wantErr:   true,
			wantErrIs: ErrEmptyPano,
		},
		{
			name:    "BadHeading",
			field:   "abc,north",
			wantErr: true,
		},
		{
			name:    "BadPitch",
			field:   "abc,45.0,up",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.field)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) succeeded, want error", tt.field)
				}
				if tt.wantErrIs != nil && !errors.Is(err, tt.wantErrIs) {
					t.Errorf("Parse(%q) error = %v, want %v", tt.field, err, tt.wantErrIs)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.field, err)
			}
			if got.PanoID != tt.want.PanoID {
				t.Errorf("PanoID = %q, want %q", got.PanoID, tt.want.PanoID)
			}
			checkComponent(t, "heading", got.Heading, tt.wantHeading)
			checkComponent(t, "pitch", got.Pitch, tt.wantPitch)
		})
	}
}

func checkComponent(t *testing.T, name string, got, want *float64) {
	t.Helper()
	switch {
	case want == nil && got != nil:
		t.Errorf("%s = %v, want absent", name, *got)
	case want != nil && got == nil:
		t.Errorf("%s absent, want %v", name, *want)
	case want != nil && got != nil && *got != *want:
		t.Errorf("%s = %v, want %v", name, *got, *want)
	}
}

func TestPresetField(t *testing.T) {
	tests := []struct {
		name   string
		preset Preset
		want   string
	}{
		{
			name:   "PanoOnly",
			preset: Preset{Name: "home", PanoID: "abc"},
			want:   "abc",
		},
		{
			name:   "WithHeading",
			preset: Preset{Name: "home", PanoID: "abc", Heading: float(45)},
			want:   "abc,45",
		},
		{
			name:   "Full",
			preset: Preset{Name: "home", PanoID: "abc", Heading: float(45.5), Pitch: float(-10)},
			want:   "abc,45.5,-10",
		},
		{
			// A pitch without a heading cannot be placed positionally.
			name:   "PitchWithoutHeadingDropped",
			preset: Preset{Name: "home", PanoID: "abc", Pitch: float(-10)},
			want:   "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.preset.Field(); got != tt.want {
				t.Errorf("Field() = %q, want %q", got, tt.want)
			}
		})
	}
}
