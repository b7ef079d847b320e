package contact

import "testing"

func TestParsePhone(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        string
	}{
		{
			name:        "international number with spaces",
			description: "Bel me op +32 471 79 91 14 graag",
			want:        "+32471799114",
		},
		{
			name:        "local number",
			description: "Tel: 0471 79 91 14",
			want:        "0471799114",
		},
		{
			name:        "no number",
			description: "geen nummer hier",
			want:        "",
		},
		{
			name:        "too short to be a phone number",
			description: "code 12345",
			want:        "",
		},
		{
			name:        "empty description",
			description: "",
			want:        "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := Parse(tt.description)
			if info.Phone != tt.want {
				t.Errorf("Parse(%q).Phone = %q, want %q", tt.description, info.Phone, tt.want)
			}
		})
	}
}

func TestParseName(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        string
	}{
		{
			name:        "name before phone line",
			description: "Naam: Jan Peeters\nTel: 0471 79 91 14",
			want:        " Jan Peeters",
		},
		{
			name:        "name at end of text",
			description: "Afspraak bevestigd.\nNaam: An",
			want:        " An",
		},
		{
			name:        "no name label",
			description: "Bel me op +32 471 79 91 14",
			want:        "",
		},
		{
			name:        "label is case sensitive",
			description: "naam: Jan",
			want:        "",
		},
		{
			name:        "label without a name",
			description: "Naam: \n0471 79 91 14",
			want:        "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := Parse(tt.description)
			if info.Name != tt.want {
				t.Errorf("Parse(%q).Name = %q, want %q", tt.description, info.Name, tt.want)
			}
		})
	}
}
