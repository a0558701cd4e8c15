package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/yamldiff/yamldiff/pkg/console"
	"github.com/yamldiff/yamldiff/pkg/diff"
)

// MaxConcurrentComparisons bounds the worker pool used for directory
// comparison.
const MaxConcurrentComparisons = 8

type pairResult struct {
	relPath string
	status  string
	count   int
	err     error
}

// CompareDirs pairs YAML files under two directories by relative path and
// diffs every pair concurrently. Unpaired files count as differences. It
// reports whether any divergence was found.
func CompareDirs(leftDir, rightDir string, opts CompareOptions) (bool, error) {
	leftFiles, err := findYAMLFiles(leftDir)
	if err != nil {
		return false, err
	}
	rightFiles, err := findYAMLFiles(rightDir)
	if err != nil {
		return false, err
	}

	inLeft := toSet(leftFiles)
	inRight := toSet(rightFiles)
	ordered := make([]string, 0, len(inLeft)+len(inRight))
	for relPath := range inLeft {
		ordered = append(ordered, relPath)
	}
	for relPath := range inRight {
		if _, ok := inLeft[relPath]; !ok {
			ordered = append(ordered, relPath)
		}
	}
	sort.Strings(ordered)

	spin := console.NewSpinner(fmt.Sprintf("Comparing %d file pair(s)...", len(ordered)))
	spin.Start()

	// Results come back in submission order, so the summary stays sorted.
	p := pool.NewWithResults[pairResult]().WithMaxGoroutines(MaxConcurrentComparisons)
	for _, relPath := range ordered {
		relPath := relPath
		p.Go(func() pairResult {
			return comparePair(leftDir, rightDir, relPath, inLeft, inRight, opts)
		})
	}
	results := p.Wait()
	spin.Stop()

	rows := make([][]string, 0, len(results))
	var failures []pairResult
	total := 0
	found := false
	for _, r := range results {
		switch {
		case r.err != nil:
			failures = append(failures, r)
			rows = append(rows, []string{r.relPath, "error", "-"})
		case r.status == "different":
			found = true
			total += r.count
			rows = append(rows, []string{r.relPath, r.status, strconv.Itoa(r.count)})
		case r.status == "identical":
			rows = append(rows, []string{r.relPath, r.status, "0"})
		default:
			// only in left / only in right
			found = true
			rows = append(rows, []string{r.relPath, r.status, "-"})
		}
	}

	fmt.Print(console.RenderTable(console.TableConfig{
		Title:    fmt.Sprintf("Comparing %s with %s", leftDir, rightDir),
		Headers:  []string{"File", "Status", "Differences"},
		Rows:     rows,
		TotalRow: []string{"Total", "", strconv.Itoa(total)},
	}))

	for _, r := range failures {
		fmt.Fprintln(os.Stderr, FormatCompareError(r.err))
	}
	if len(failures) > 0 {
		return found, fmt.Errorf("%d file pair(s) failed to compare", len(failures))
	}
	return found, nil
}

func comparePair(leftDir, rightDir, relPath string, inLeft, inRight map[string]struct{}, opts CompareOptions) pairResult {
	if _, ok := inLeft[relPath]; !ok {
		return pairResult{relPath: relPath, status: "only in right"}
	}
	if _, ok := inRight[relPath]; !ok {
		return pairResult{relPath: relPath, status: "only in left"}
	}

	leftPath := filepath.Join(leftDir, relPath)
	rightPath := filepath.Join(rightDir, relPath)
	leftData, err := os.ReadFile(leftPath)
	if err != nil {
		return pairResult{relPath: relPath, err: err}
	}
	rightData, err := os.ReadFile(rightPath)
	if err != nil {
		return pairResult{relPath: relPath, err: err}
	}

	docsL, err := diff.Load(leftData, leftPath)
	if err != nil {
		return pairResult{relPath: relPath, err: err}
	}
	docsR, err := diff.Load(rightData, rightPath)
	if err != nil {
		return pairResult{relPath: relPath, err: err}
	}
	diffs, err := diff.Streams(docsL, docsR, opts.SkipHeader)
	if err != nil {
		return pairResult{relPath: relPath, err: err}
	}

	status := "identical"
	if len(diffs) > 0 {
		status = "different"
	}
	return pairResult{relPath: relPath, status: status, count: len(diffs)}
}

// findYAMLFiles returns the relative paths of all .yaml/.yml files under
// root.
func findYAMLFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
		default:
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	return files, nil
}

func toSet(paths []string) map[string]struct{} {
	set := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		set[p] = struct{}{}
	}
	return set
}
