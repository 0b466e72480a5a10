package option

import (
	"bytes"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"github.com/katalvlaran/weekplan/weektime"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonTagName)
	_ = validate.RegisterValidation("hhmm", validateHHMM)
	validate.RegisterStructValidation(validateMeetingTime, MeetingTimeRecord{})
}

// validateMeetingTime requires beginTime and endTime to be set together.
func validateMeetingTime(sl validator.StructLevel) {
	m := sl.Current().Interface().(MeetingTimeRecord)
	switch {
	case m.BeginTime == nil && m.EndTime != nil:
		sl.ReportError(m.BeginTime, "beginTime", "BeginTime", "required_with", "endTime")
	case m.BeginTime != nil && m.EndTime == nil:
		sl.ReportError(m.EndTime, "endTime", "EndTime", "required_with", "beginTime")
	}
}

// jsonTagName reports fields by their JSON name so errors match the payload.
func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}

	return name
}

// validateHHMM accepts four-digit "HHMM" clock strings with HH <= 24,
// MM <= 59 and MM == 00 when HH == 24.
func validateHHMM(fl validator.FieldLevel) bool {
	_, err := parseHHMM(fl.Field().String())

	return err == nil
}

func parseHHMM(s string) (Clock, error) {
	if len(s) != 4 {
		return Clock{}, fmt.Errorf("%w: clock %q is not HHMM", weektime.ErrRange, s)
	}
	h, err := strconv.Atoi(s[:2])
	if err != nil {
		return Clock{}, fmt.Errorf("%w: clock %q is not HHMM", weektime.ErrRange, s)
	}
	m, err := strconv.Atoi(s[2:])
	if err != nil {
		return Clock{}, fmt.Errorf("%w: clock %q is not HHMM", weektime.ErrRange, s)
	}
	if h < 0 || h > 24 || m < 0 || m > 59 || (h == 24 && m != 0) {
		return Clock{}, fmt.Errorf("%w: clock %q", weektime.ErrRange, s)
	}

	return Clock{Hour: h, Minute: m}, nil
}

// Record is the registrar's section payload. Field names follow the wire
// format; only the attributes the planner needs are declared, everything
// else in the payload is ignored on decode.
type Record struct {
	Term                  string          `json:"term" validate:"required"`
	CourseReferenceNumber string          `json:"courseReferenceNumber" validate:"required,numeric"`
	SequenceNumber        string          `json:"sequenceNumber" validate:"required"`
	SubjectCourse         string          `json:"subjectCourse" validate:"required,alphanum"`
	CourseTitle           string          `json:"courseTitle"`
	CampusDescription     string          `json:"campusDescription" validate:"required"`
	InstructionalMethod   string          `json:"instructionalMethod" validate:"required"`
	CreditHours           *float64        `json:"creditHours" validate:"omitempty,gte=0"`
	CreditHourLow         *float64        `json:"creditHourLow" validate:"omitempty,gte=0"`
	CreditHourHigh        *float64        `json:"creditHourHigh" validate:"omitempty,gte=0"`
	MaximumEnrollment     int             `json:"maximumEnrollment" validate:"gte=0"`
	SeatsAvailable        int             `json:"seatsAvailable"`
	WaitCapacity          int             `json:"waitCapacity" validate:"gte=0"`
	WaitAvailable         int             `json:"waitAvailable"`
	Faculty               []FacultyRecord `json:"faculty" validate:"dive"`
	MeetingsFaculty       []MeetingRecord `json:"meetingsFaculty" validate:"dive"`
}

// FacultyRecord is one instructor entry of a section payload.
type FacultyRecord struct {
	DisplayName      string `json:"displayName" validate:"required"`
	EmailAddress     string `json:"emailAddress" validate:"omitempty,email"`
	PrimaryIndicator bool   `json:"primaryIndicator"`
}

// MeetingRecord wraps the meeting time block of a section payload.
type MeetingRecord struct {
	MeetingTime MeetingTimeRecord `json:"meetingTime"`
}

// MeetingTimeRecord carries "HHMM" times and one boolean per weekday.
// Begin and end times are either both present or both absent.
type MeetingTimeRecord struct {
	BeginTime *string `json:"beginTime" validate:"omitempty,hhmm"`
	EndTime   *string `json:"endTime" validate:"omitempty,hhmm"`
	Building  string  `json:"building"`
	Room      string  `json:"room"`
	Sunday    bool    `json:"sunday"`
	Monday    bool    `json:"monday"`
	Tuesday   bool    `json:"tuesday"`
	Wednesday bool    `json:"wednesday"`
	Thursday  bool    `json:"thursday"`
	Friday    bool    `json:"friday"`
	Saturday  bool    `json:"saturday"`
}

// days lists the weekdays flagged on the meeting, in week order.
func (m MeetingTimeRecord) days() []weektime.Day {
	flags := [...]bool{m.Sunday, m.Monday, m.Tuesday, m.Wednesday, m.Thursday, m.Friday, m.Saturday}
	days := make([]weektime.Day, 0, len(flags))
	for i, on := range flags {
		if on {
			days = append(days, weektime.Day(i))
		}
	}

	return days
}

// Page is the paged envelope some registrar endpoints wrap records in.
type Page struct {
	Data       []Record `json:"data"`
	TotalCount int      `json:"totalCount"`
}

// DecodeRecords parses a payload that is either a JSON array of records or
// a Page envelope. Malformed JSON returns a *ValidationError.
func DecodeRecords(source string, data []byte) ([]Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var page Page
		if err := json.Unmarshal(trimmed, &page); err != nil {
			return nil, &ValidationError{Source: source, Err: err}
		}

		return page.Data, nil
	}

	var records []Record
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, &ValidationError{Source: source, Err: err}
	}

	return records, nil
}

// Validate checks the record against its declared rules.
func (r Record) Validate() error {
	if err := validate.Struct(r); err != nil {
		return newValidationError(r.identity(), err)
	}

	return nil
}

func (r Record) identity() string {
	if r.SubjectCourse == "" && r.CourseReferenceNumber == "" {
		return "record"
	}

	return fmt.Sprintf("%s crn %s", r.SubjectCourse, r.CourseReferenceNumber)
}

// Option validates r and converts it into the typed record. The schedule
// is not derived here; see Derive.
func (r Record) Option() (Option, error) {
	if err := r.Validate(); err != nil {
		return Option{}, err
	}

	o := Option{
		ID:       r.SequenceNumber,
		Ref:      r.CourseReferenceNumber,
		Category: r.SubjectCourse,
		Term:     r.Term,
		Title:    r.CourseTitle,
		Venue:    r.CampusDescription,
		Method:   Method(strings.ToUpper(strings.TrimSpace(r.InstructionalMethod))),
		Seats:    Capacity{Available: r.SeatsAvailable, Total: r.MaximumEnrollment},
		Waitlist: Capacity{Available: r.WaitAvailable, Total: r.WaitCapacity},
		Credits:  firstCredit(r.CreditHours, r.CreditHourLow, r.CreditHourHigh),
	}

	for _, f := range r.Faculty {
		o.Instructors = append(o.Instructors, strings.TrimSpace(f.DisplayName))
	}

	for _, mr := range r.MeetingsFaculty {
		mt := mr.MeetingTime
		m := Meeting{Days: mt.days()}
		if mt.BeginTime != nil && mt.EndTime != nil {
			// Already validated as hhmm.
			m.Begin, _ = parseHHMM(*mt.BeginTime)
			m.End, _ = parseHHMM(*mt.EndTime)
			m.Timed = true
		}
		o.Meetings = append(o.Meetings, m)
	}

	return o, nil
}

// firstCredit returns the first positive credit value, or 0.
func firstCredit(values ...*float64) float64 {
	for _, v := range values {
		if v != nil && *v > 0 {
			return *v
		}
	}

	return 0
}

// Convert validates and converts records, failing on the first invalid one.
func Convert(records []Record) ([]Option, error) {
	opts := make([]Option, 0, len(records))
	for _, r := range records {
		o, err := r.Option()
		if err != nil {
			return nil, err
		}
		opts = append(opts, o)
	}

	return opts, nil
}
