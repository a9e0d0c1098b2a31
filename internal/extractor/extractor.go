package extractor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/subtitle-lines/internal/cleaner"
	"github.com/nguyentantai21042004/subtitle-lines/internal/document"
)

// ErrUnusableID marks a document id that cannot be used as a file name
var ErrUnusableID = errors.New("unusable document id")

// Extract parses docPath and appends its qualifying lines to outDir/<id>.
// With overwrite off an existing output is left alone and Skipped is set.
func (e *implExtractor) Extract(ctx context.Context, docPath, outDir string, overwrite bool) (Result, error) {
	doc, err := document.ParseFile(docPath)
	if err != nil {
		return Result{}, err
	}
	if doc.ID == "" || doc.ID != filepath.Base(doc.ID) || doc.ID == "." || doc.ID == ".." {
		return Result{}, fmt.Errorf("%s: %w: %q", docPath, ErrUnusableID, doc.ID)
	}

	res := Result{
		ID:         doc.ID,
		OutputPath: filepath.Join(outDir, doc.ID),
	}

	if _, err := os.Stat(res.OutputPath); err == nil {
		if !overwrite {
			e.logger.Debug(ctx, "Output exists, skipping %s", docPath)
			res.Skipped = true
			return res, nil
		}
		if err := os.Remove(res.OutputPath); err != nil {
			return res, fmt.Errorf("remove previous output: %w", err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return res, fmt.Errorf("stat output: %w", err)
	}

	e.logger.Info(ctx, "Processing %s...", docPath)

	out := &lazyAppender{path: res.OutputPath}
	defer out.Close()

	for _, s := range doc.Root.ChildrenByTag(utteranceTag) {
		res.Utterances++

		line := cleaner.Clean(utteranceText(s))
		if !cleaner.Qualifies(line) {
			continue
		}
		if err := out.WriteLine(line); err != nil {
			return res, fmt.Errorf("write %s: %w", res.OutputPath, err)
		}
		res.Lines = append(res.Lines, line)
	}

	if err := out.Close(); err != nil {
		return res, fmt.Errorf("close %s: %w", res.OutputPath, err)
	}
	return res, nil
}

// utteranceText joins every token under s with single spaces.
// Tokens without text contribute an empty string.
func utteranceText(s *document.Node) string {
	tokens := document.Collect(s, document.HasTag(tokenTag))
	parts := make([]string, len(tokens))
	for i, w := range tokens {
		parts[i] = w.Text
	}
	return strings.Join(parts, " ")
}

// lazyAppender opens its file in append mode on the first write, so a
// document without qualifying lines leaves no file behind.
type lazyAppender struct {
	path string
	f    *os.File
	w    *bufio.Writer
}

func (a *lazyAppender) WriteLine(line string) error {
	if a.f == nil {
		f, err := os.OpenFile(a.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		a.f = f
		a.w = bufio.NewWriter(f)
	}
	if _, err := a.w.WriteString(line); err != nil {
		return err
	}
	return a.w.WriteByte('\n')
}

func (a *lazyAppender) Close() error {
	if a.f == nil {
		return nil
	}
	f := a.f
	a.f = nil
	if err := a.w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
