package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/katalvlaran/weekplan/option"
)

// Sentinel errors.
var (
	// ErrUnknownCategory indicates a category the source has no data for.
	ErrUnknownCategory = errors.New("catalog: unknown category")

	// ErrBadName indicates a category or term that is not a plain identifier.
	ErrBadName = errors.New("catalog: invalid category or term name")
)

// Source fetches the candidate options of one category in one term.
// Implementations own transport, paging and retries.
type Source interface {
	Options(ctx context.Context, category, term string) ([]option.Option, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context, category, term string) ([]option.Option, error)

// Options calls f.
func (f SourceFunc) Options(ctx context.Context, category, term string) ([]option.Option, error) {
	return f(ctx, category, term)
}

// Key identifies one cached candidate list.
type Key struct {
	Category string
	Term     string
	Params   map[string]string // extra fetch parameters, e.g. venue
}

// String renders a stable form: "term/category" followed by sorted
// "?k=v&k=v" parameters when present.
func (k Key) String() string {
	var b strings.Builder
	b.WriteString(k.Term)
	b.WriteByte('/')
	b.WriteString(k.Category)
	if len(k.Params) == 0 {
		return b.String()
	}

	names := make([]string, 0, len(k.Params))
	for n := range k.Params {
		names = append(names, n)
	}
	slices.Sort(names)
	for i, n := range names {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(n)
		b.WriteByte('=')
		b.WriteString(k.Params[n])
	}

	return b.String()
}

var namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// DirSource reads registrar payloads from Root/<term>/<category>.json.
// Each file holds a JSON array of records or a {"data": [...]} page.
type DirSource struct {
	Root string
}

// Options decodes, validates and converts the category's file. Records of
// other categories in the file are skipped. A missing file returns
// ErrUnknownCategory.
func (d DirSource) Options(ctx context.Context, category, term string) ([]option.Option, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !namePattern.MatchString(category) || !namePattern.MatchString(term) {
		return nil, fmt.Errorf("%w: %q/%q", ErrBadName, term, category)
	}

	path := d.Path(category, term)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s in term %s", ErrUnknownCategory, category, term)
	}
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	records, err := option.DecodeRecords(path, data)
	if err != nil {
		return nil, err
	}
	records = slices.DeleteFunc(records, func(r option.Record) bool { return r.SubjectCourse != category })

	return option.Convert(records)
}

// Path returns the file DirSource reads for category and term.
func (d DirSource) Path(category, term string) string {
	return filepath.Join(d.Root, term, category+".json")
}
