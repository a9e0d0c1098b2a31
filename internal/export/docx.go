package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName  = "Times New Roman"
	fontSize  = 13
	titleSize = 16
	fontColor = "000000"
)

// Export renders lines as one paragraph each under a bold title
func (e *implDocx) Export(ctx context.Context, id string, lines []string) (string, error) {
	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return "", fmt.Errorf("create docx dir: %w", err)
	}
	outputPath := filepath.Join(e.dir, id+".docx")

	doc, err := godocx.NewDocument()
	if err != nil {
		return "", fmt.Errorf("new document: %w", err)
	}

	addRun(doc.AddParagraph(""), id, true, titleSize)
	for _, line := range lines {
		addRun(doc.AddParagraph(""), line, false, fontSize)
	}

	if err := doc.SaveTo(outputPath); err != nil {
		return "", fmt.Errorf("save %s: %w", outputPath, err)
	}

	e.logger.Debug(ctx, "Exported transcript: %s", outputPath)
	return outputPath, nil
}

func addRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color(fontColor)
	if bold {
		run.Bold(true)
	}
}
