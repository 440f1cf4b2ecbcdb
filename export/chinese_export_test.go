package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"statusdeck/deck"
)

// chineseOutline mirrors the handout of a deck rendered with --lang zh.
func chineseOutline() deck.Outline {
	run := func(s string, bold bool) deck.Run {
		return deck.Run{Text: s, Font: deck.Font{Size: 11, Bold: bold, Color: "#333333"}}
	}

	var progress deck.Section
	progress.Heading = "进度摘要"
	progress.AddParagraph(deck.Paragraph{Runs: []deck.Run{run("工时：120（可计费 100）", false)}})
	progress.AddParagraph(deck.Paragraph{Runs: []deck.Run{run("本期完成了", false), run("需求调研", true), run("。", false)}})

	var raidd deck.Section
	raidd.Heading = "风险、问题与关键决策"
	raidd.AddTable(deck.Table{
		Columns: []float64{1, 3, 1},
		Rows: [][]deck.Cell{
			{{Runs: []deck.Run{run("编号", true)}, Fill: "#810FFB"}, {Runs: []deck.Run{run("标题", true)}, Fill: "#810FFB"},
				{Runs: []deck.Run{run("状态", true)}, Fill: "#810FFB"}},
			{{Runs: []deck.Run{run("R-1", false)}}, {Runs: []deck.Run{run("供应商交付延期", false)}}, {Runs: []deck.Run{run("进行中", false)}}},
		},
	})

	return deck.Outline{
		Title:    "阿波罗项目",
		Subtitle: []string{"状态报告", "示例客户"},
		Accent:   "#810FFB",
		Sections: []deck.Section{progress, raidd},
	}
}

// TestChineseHandouts renders CJK text into every handout format.
func TestChineseHandouts(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []Format{PDF, DOCX, XLSX} {
		t.Run(string(f), func(t *testing.T) {
			path := filepath.Join(dir, "handout."+string(f))
			if err := WriteHandout(f, chineseOutline(), path, "statusdeck"); err != nil {
				t.Fatalf("WriteHandout failed: %v", err)
			}
			info, err := os.Stat(path)
			if err != nil || info.Size() == 0 {
				t.Fatalf("Expected a non-empty %s file, got %v", f, err)
			}
			t.Logf("%s handout: %d bytes", f, info.Size())
		})
	}
}

// TestChineseDeck checks CJK runs survive the pptx round trip.
func TestChineseDeck(t *testing.T) {
	b := NewGoPPTBackend("阿波罗项目", "statusdeck")
	s := b.NewSlide()
	s.AddTextBox(deck.Rect{X: 0.8, Y: 0.3, W: 10, H: 0.6},
		[]deck.Paragraph{{Runs: []deck.Run{{Text: "时间线与里程碑", Font: deck.Font{Size: 24, Bold: true}}}}},
		deck.TextBoxOptions{})
	s.AddTable(deck.Rect{X: 0.4, Y: 1.1, W: 12.4, H: 0.7}, *chineseOutline().Sections[1].Blocks[0].Table)

	data, err := b.Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Fatalf("Expected a zip container")
	}

	path := filepath.Join(t.TempDir(), "deck.pptx")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	slides, err := PreviewDeck(path)
	if err != nil {
		t.Fatalf("PreviewDeck failed: %v", err)
	}
	if slides[0].Title != "时间线与里程碑" {
		t.Errorf("Unexpected title %q", slides[0].Title)
	}
}
