package planner

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/weekplan/filter"
	"github.com/katalvlaran/weekplan/option"
)

// ErrInvalidPlan indicates a plan file that does not parse or validate.
var ErrInvalidPlan = errors.New("planner: invalid plan")

// Sort names accepted in plans and on the command line.
const (
	SortNone    = ""
	SortSpan    = "span"
	SortTotal   = "total"
	SortBreaks  = "breaks"
	SortRating  = "rating"
	SortCredits = "credits"
)

var (
	coursePattern  = regexp.MustCompile(`^[A-Z]+\d+$`)
	sectionPattern = regexp.MustCompile(`^\d+$`)
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = validate.RegisterValidation("course", func(fl validator.FieldLevel) bool {
		return coursePattern.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("section", func(fl validator.FieldLevel) bool {
		return sectionPattern.MatchString(fl.Field().String())
	})
	// Only in-person and online sections survive the baseline, so only
	// those codes are worth ignoring. Case is free, spacing is not.
	_ = validate.RegisterValidation("method_code", func(fl validator.FieldLevel) bool {
		switch option.Method(strings.ToUpper(fl.Field().String())) {
		case option.InPerson, option.Online:
			return true
		default:
			return false
		}
	})
}

// Select forces one section of a course.
type Select struct {
	Course  string `toml:"course" validate:"required,course"`
	Section string `toml:"section" validate:"required,section"`
}

// Ignore excludes sections of a course.
type Ignore struct {
	Course           string   `toml:"course" validate:"required,course"`
	Sections         []string `toml:"sections" validate:"dive,section"`
	Instructors      []string `toml:"instructors" validate:"dive,required"`
	Method           string   `toml:"method" validate:"omitempty,method_code"`
	RequireAvailable *bool    `toml:"require_available"`
}

// Plan is one scheduling request, usually read from a TOML file:
//
//	term = "202436"
//	courses = ["CIS1057", "MATH1041"]
//	sort = "span"
//	max = 10
//
//	[[select]]
//	course = "CIS1057"
//	section = "001"
//
//	[[ignore]]
//	course = "MATH1041"
//	instructors = ["Alan Turing"]
//	require_available = true
type Plan struct {
	Term    string   `toml:"term" validate:"required,numeric"`
	Venue   string   `toml:"venue"`
	Courses []string `toml:"courses" validate:"required,min=1,unique,dive,course"`
	Sort    string   `toml:"sort" validate:"omitempty,oneof=span total breaks rating credits"`
	Reverse bool     `toml:"reverse"`
	Max     int      `toml:"max" validate:"gte=0"`
	Select  []Select `toml:"select" validate:"dive"`
	Ignore  []Ignore `toml:"ignore" validate:"dive"`
}

// Validate checks field rules and that every rule names a planned course.
func (p *Plan) Validate() error {
	if err := validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("%w: %v", ErrInvalidPlan, err)
		}
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			if fe.Param() != "" {
				msgs = append(msgs, fmt.Sprintf("%s: %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
			} else {
				msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Namespace(), fe.Tag()))
			}
		}
		return fmt.Errorf("%w: %s", ErrInvalidPlan, strings.Join(msgs, "; "))
	}

	planned := make(map[string]struct{}, len(p.Courses))
	for _, c := range p.Courses {
		planned[c] = struct{}{}
	}
	for _, s := range p.Select {
		if _, ok := planned[s.Course]; !ok {
			return fmt.Errorf("%w: select names unplanned course %s", ErrInvalidPlan, s.Course)
		}
	}
	for _, ig := range p.Ignore {
		if _, ok := planned[ig.Course]; !ok {
			return fmt.Errorf("%w: ignore names unplanned course %s", ErrInvalidPlan, ig.Course)
		}
	}

	return nil
}

// Selections converts the plan's select entries.
func (p *Plan) Selections() []filter.SelectionRule {
	out := make([]filter.SelectionRule, len(p.Select))
	for i, s := range p.Select {
		out[i] = filter.SelectionRule{Category: s.Course, ForcedID: s.Section}
	}

	return out
}

// Ignores converts the plan's ignore entries.
func (p *Plan) Ignores() []filter.IgnoreRule {
	out := make([]filter.IgnoreRule, len(p.Ignore))
	for i, ig := range p.Ignore {
		out[i] = filter.IgnoreRule{
			Category:            ig.Course,
			ExcludedIDs:         ig.Sections,
			ExcludedInstructors: ig.Instructors,
			Method:              option.Method(strings.ToUpper(ig.Method)),
			RequireAvailable:    ig.RequireAvailable,
		}
	}

	return out
}

// ParsePlan decodes and validates a TOML plan. Unknown keys are rejected.
func ParsePlan(data []byte) (*Plan, error) {
	var p Plan
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// LoadPlan reads and parses the plan at path.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("planner: %w", err)
	}

	return ParsePlan(data)
}
