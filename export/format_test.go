package export

import "testing"

func TestFormatFor(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		explicit string
		want     Format
		wantErr  bool
	}{
		{"pptx by extension", "out/deck.pptx", "", PPTX, false},
		{"pdf by extension", "out/deck.PDF", "", PDF, false},
		{"docx by extension", "handout.docx", "", DOCX, false},
		{"xlsx by extension", "log.xlsx", "", XLSX, false},
		{"unknown extension renders a deck", "deck.bin", "", PPTX, false},
		{"no extension renders a deck", "deck", "", PPTX, false},
		{"flag wins over extension", "deck.pptx", "pdf", PDF, false},
		{"flag with dot", "deck", ".docx", DOCX, false},
		{"unknown flag", "deck.pptx", "odp", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatFor(tt.path, tt.explicit)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatFor() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("FormatFor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsHandout(t *testing.T) {
	if PPTX.IsHandout() {
		t.Errorf("pptx is the deck, not a handout")
	}
	for _, f := range []Format{PDF, DOCX, XLSX} {
		if !f.IsHandout() {
			t.Errorf("%s should be a handout", f)
		}
	}
}
