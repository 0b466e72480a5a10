// Package ratings supplies instructor ratings to the reporting layer.
//
// Ratings never influence which combinations exist; they only score and
// annotate them (see report.RatingKey). The lookup is an injected
// collaborator with its own lifecycle. StaticLookup serves ratings loaded
// from a TOML file:
//
//	[[instructor]]
//	name = "Ada Lovelace"
//	rating = 4.6
//	count = 38
//	difficulty = 3.2
//	would_take_again = 91
package ratings

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/weekplan/filter"
	"github.com/katalvlaran/weekplan/option"
)

// ErrDuplicate indicates one instructor listed twice in a ratings file.
var ErrDuplicate = errors.New("ratings: duplicate instructor")

// Rating summarizes the published reviews of one instructor.
type Rating struct {
	Instructor     string  `toml:"name"`
	Average        float64 `toml:"rating"`
	Count          int     `toml:"count"`
	Difficulty     float64 `toml:"difficulty"`
	WouldTakeAgain float64 `toml:"would_take_again"` // percent
}

// Lookup returns the ratings of an option's instructors. Instructors
// without ratings are omitted, so the result may be empty.
type Lookup interface {
	Ratings(ctx context.Context, o option.Option) ([]Rating, error)
}

// StaticLookup serves ratings from memory, keyed by normalized name.
type StaticLookup struct {
	byName map[string]Rating
}

// NewStaticLookup indexes rs by normalized instructor name.
func NewStaticLookup(rs []Rating) (*StaticLookup, error) {
	idx := make(map[string]Rating, len(rs))
	for _, r := range rs {
		k := filter.Normalize(r.Instructor)
		if _, dup := idx[k]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicate, r.Instructor)
		}
		idx[k] = r
	}

	return &StaticLookup{byName: idx}, nil
}

// Ratings implements Lookup.
func (l *StaticLookup) Ratings(ctx context.Context, o option.Option) ([]Rating, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []Rating
	for _, ins := range o.Instructors {
		if r, ok := l.byName[filter.Normalize(ins)]; ok {
			out = append(out, r)
		}
	}

	return out, nil
}

// Len returns the number of indexed instructors.
func (l *StaticLookup) Len() int { return len(l.byName) }

type file struct {
	Instructor []Rating `toml:"instructor"`
}

// Parse decodes a TOML ratings document.
func Parse(data []byte) (*StaticLookup, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("ratings: parse: %w", err)
	}

	return NewStaticLookup(f.Instructor)
}

// LoadFile reads and parses the TOML ratings file at path.
func LoadFile(path string) (*StaticLookup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ratings: %w", err)
	}

	return Parse(data)
}
