package dto

import (
	"strconv"
	"time"

	"anoa.com/casetrack/pkg/timeutil"
)

// WindowQuery carries the raw bounds; start/end are accepted as older spellings.
type WindowQuery struct {
	From  string `form:"from"`
	To    string `form:"to"`
	Start string `form:"start"`
	End   string `form:"end"`
	Group string `form:"group" binding:"omitempty,oneof=date"`
}

func (q WindowQuery) FromValue() string {
	if q.From != "" {
		return q.From
	}
	return q.Start
}

func (q WindowQuery) ToValue() string {
	if q.To != "" {
		return q.To
	}
	return q.End
}

type ParticipantExportQuery struct {
	IncludeInactive bool   `form:"include_inactive"`
	Q               string `form:"q"`
}

// Window is an inclusive [From, To] range in UTC.
type Window struct {
	From time.Time
	To   time.Time
}

type Summary struct {
	From         string `json:"from"`
	To           string `json:"to"`
	Participants int64  `json:"participants"`
	CaseNotes    int64  `json:"case_notes"`
	Services     int64  `json:"services"`
	Referrals    int64  `json:"referrals"`
	Employers    int64  `json:"employers"`
	Providers    int64  `json:"providers"`
}

var SummaryHeader = []string{"metric", "value"}

// CSVRecords renders the summary as metric,value pairs in JSON field order.
func (s Summary) CSVRecords() [][]string {
	count := func(n int64) string { return strconv.FormatInt(n, 10) }
	return [][]string{
		{"from", s.From},
		{"to", s.To},
		{"participants", count(s.Participants)},
		{"case_notes", count(s.CaseNotes)},
		{"services", count(s.Services)},
		{"referrals", count(s.Referrals)},
		{"employers", count(s.Employers)},
		{"providers", count(s.Providers)},
	}
}

type DateCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

var DateCountHeader = []string{"date", "count"}

func (r DateCount) CSVRecord() []string {
	return []string{r.Date, strconv.FormatInt(r.Count, 10)}
}

type TypeCount struct {
	ServiceType string `json:"service_type"`
	Count       int64  `json:"count"`
}

var TypeCountHeader = []string{"service_type", "count"}

func (r TypeCount) CSVRecord() []string {
	return []string{r.ServiceType, strconv.FormatInt(r.Count, 10)}
}

type TypeDateCount struct {
	ServiceType string `json:"service_type"`
	Date        string `json:"date"`
	Count       int64  `json:"count"`
}

var TypeDateCountHeader = []string{"service_type", "date", "count"}

func (r TypeDateCount) CSVRecord() []string {
	return []string{r.ServiceType, r.Date, strconv.FormatInt(r.Count, 10)}
}

type ReferralCount struct {
	OrgName *string `json:"org_name"`
	Kind    string  `json:"kind"`
	Status  string  `json:"status"`
	Count   int64   `json:"count"`
}

var ReferralCountHeader = []string{"org_name", "kind", "status", "count"}

func (r ReferralCount) CSVRecord() []string {
	return []string{str(r.OrgName), r.Kind, r.Status, strconv.FormatInt(r.Count, 10)}
}

type OutcomeCount struct {
	Kind   string  `json:"kind"`
	Status *string `json:"status"`
	Count  int64   `json:"count"`
}

var OutcomeCountHeader = []string{"kind", "status", "count"}

func (r OutcomeCount) CSVRecord() []string {
	return []string{r.Kind, str(r.Status), strconv.FormatInt(r.Count, 10)}
}

type ParticipantRow struct {
	ID        uint    `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	DOB       *string `json:"dob"`
	Race      *string `json:"race"`
	Address   *string `json:"address"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	IsActive  bool    `json:"is_active"`
	CreatedAt string  `json:"created_at"`
}

var ParticipantRowHeader = []string{
	"id", "first_name", "last_name", "dob", "race", "address", "email", "phone", "is_active", "created_at",
}

func (r ParticipantRow) CSVRecord() []string {
	return []string{
		uintStr(r.ID), r.FirstName, r.LastName, str(r.DOB), str(r.Race), str(r.Address),
		str(r.Email), str(r.Phone), strconv.FormatBool(r.IsActive), r.CreatedAt,
	}
}

type ServiceRow struct {
	ID              uint    `json:"id"`
	ParticipantID   uint    `json:"participant_id"`
	ParticipantName string  `json:"participant_name"`
	ServiceType     string  `json:"service_type"`
	Note            *string `json:"note"`
	StaffID         *uint   `json:"staff_id"`
	ProvidedAt      string  `json:"provided_at"`
}

var ServiceRowHeader = []string{
	"id", "participant_id", "participant_name", "service_type", "note", "staff_id", "provided_at",
}

func (r ServiceRow) CSVRecord() []string {
	staff := ""
	if r.StaffID != nil {
		staff = uintStr(*r.StaffID)
	}
	return []string{
		uintStr(r.ID), uintStr(r.ParticipantID), r.ParticipantName, r.ServiceType,
		str(r.Note), staff, r.ProvidedAt,
	}
}

func FormatWindow(w Window) (string, string) {
	return timeutil.FormatDateTime(w.From), timeutil.FormatDateTime(w.To)
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func uintStr(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
