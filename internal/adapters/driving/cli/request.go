package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/domain"
)

// errNoInput is returned when neither --input nor piped stdin is given.
var errNoInput = errors.New("no input: pass --input FILE or pipe a request on stdin")

// requestFile is the on-disk shape of a narrative request. Dates are strings
// so both "2024-03-01" and RFC 3339 timestamps are accepted.
type requestFile struct {
	Matter  *domain.Matter `json:"matter" yaml:"matter"`
	Entries []entryFile    `json:"entries" yaml:"entries"`
}

type entryFile struct {
	ID              string  `json:"id" yaml:"id"`
	Date            string  `json:"date" yaml:"date"`
	DurationMinutes int     `json:"duration_minutes" yaml:"duration_minutes"`
	Description     string  `json:"description" yaml:"description"`
	Amount          float64 `json:"amount" yaml:"amount"`
	Billable        *bool   `json:"billable" yaml:"billable"`
}

// toDomain converts the file into a request. Billable defaults to true.
func (f *requestFile) toDomain() (domain.NarrativeRequest, error) {
	entries := make([]domain.TimeEntry, 0, len(f.Entries))
	for i, e := range f.Entries {
		date, err := domain.ParseEntryDate(e.Date)
		if err != nil {
			return domain.NarrativeRequest{}, fmt.Errorf("entries[%d]: %w", i, err)
		}
		billable := true
		if e.Billable != nil {
			billable = *e.Billable
		}
		entries = append(entries, domain.TimeEntry{
			ID:              e.ID,
			Date:            date,
			DurationMinutes: e.DurationMinutes,
			Description:     e.Description,
			Amount:          e.Amount,
			Billable:        billable,
		})
	}
	return domain.NarrativeRequest{Entries: entries, Matter: f.Matter}, nil
}

// parseRequestFile decodes JSON when the name ends in .json or the data
// starts with '{', and YAML otherwise.
func parseRequestFile(name string, data []byte) (*requestFile, error) {
	var f requestFile
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty request", domain.ErrInvalidInput)
	}

	isJSON := strings.EqualFold(filepath.Ext(name), ".json") || trimmed[0] == '{'
	if isJSON {
		if err := json.Unmarshal(trimmed, &f); err != nil {
			return nil, fmt.Errorf("decode JSON request: %w", err)
		}
		return &f, nil
	}
	if err := yaml.Unmarshal(trimmed, &f); err != nil {
		return nil, fmt.Errorf("decode YAML request: %w", err)
	}
	return &f, nil
}

// readInput reads --input, "-" for stdin, or stdin when it is piped.
func readInput(cmd *cobra.Command, path string) (string, []byte, error) {
	switch {
	case path == "" && isTerminal(cmd.InOrStdin()):
		return "", nil, errNoInput
	case path == "" || path == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", nil, fmt.Errorf("read stdin: %w", err)
		}
		return "stdin", data, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // user-supplied request path
	if err != nil {
		return "", nil, fmt.Errorf("read %s: %w", path, err)
	}
	return path, data, nil
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// requestFlags are the flags shared by commands that build a narrative request.
type requestFlags struct {
	input       string
	title       string
	client      string
	matterType  string
	description string
	seed        uint64
	compliant   bool
	narrType    string

	noOutcomes      bool
	noBreakdown     bool
	byDate          bool
	workTypeDetails bool
	formal          bool
	informal        bool
	noComplexity    bool
	noValue         bool
}

// bind registers every request flag.
func (f *requestFlags) bind(fs *pflag.FlagSet) {
	f.bindInput(fs)
	f.bindOptions(fs)
	fs.Uint64Var(&f.seed, "seed", 0, "phrase selection seed (0 = random)")
	fs.BoolVar(&f.compliant, "compliant", false, "use the Bar-compliant template and attach a compliance check")
	fs.StringVar(&f.narrType, "type", "", "narrative type: litigation, advisory or general (default detect)")
}

func (f *requestFlags) bindInput(fs *pflag.FlagSet) {
	fs.StringVarP(&f.input, "input", "i", "", "request file in JSON or YAML (- for stdin)")
	fs.StringVar(&f.title, "title", "", "matter title")
	fs.StringVar(&f.client, "client", "", "client name")
	fs.StringVar(&f.matterType, "matter-type", "", "matter type, e.g. litigation")
	fs.StringVar(&f.description, "description", "", "matter description")
}

func (f *requestFlags) bindOptions(fs *pflag.FlagSet) {
	fs.BoolVar(&f.noOutcomes, "no-outcomes", false, `leave out the ", resulting in <outcome>" clauses`)
	fs.BoolVar(&f.noBreakdown, "no-breakdown", false, `leave out "over <duration>" in each sentence`)
	fs.BoolVar(&f.byDate, "by-date", false, "group entries by date instead of by work type")
	fs.BoolVar(&f.workTypeDetails, "work-type-details", false, `prefix each sentence with "<Category> work:"`)
	fs.BoolVar(&f.formal, "formal", false, "apply the formal wording substitutions")
	fs.BoolVar(&f.informal, "informal", false, "skip the formal wording substitutions")
	fs.BoolVar(&f.noComplexity, "no-complexity", false, "leave out the complexity justification (compliant mode)")
	fs.BoolVar(&f.noValue, "no-value-delivered", false, "leave out the value-delivered sentence (compliant mode)")
}

// build reads the request and layers options: configured defaults, then flags.
func (f *requestFlags) build(cmd *cobra.Command) (domain.NarrativeRequest, error) {
	name, data, err := readInput(cmd, f.input)
	if err != nil {
		return domain.NarrativeRequest{}, err
	}
	file, err := parseRequestFile(name, data)
	if err != nil {
		return domain.NarrativeRequest{}, err
	}
	req, err := file.toDomain()
	if err != nil {
		return domain.NarrativeRequest{}, err
	}

	f.applyMatter(&req)

	opts, err := f.options(cmd.Flags())
	if err != nil {
		return domain.NarrativeRequest{}, err
	}
	req.Options = opts
	return req, nil
}

func (f *requestFlags) applyMatter(req *domain.NarrativeRequest) {
	if f.title == "" && f.client == "" && f.matterType == "" && f.description == "" {
		return
	}
	m := domain.Matter{}
	if req.Matter != nil {
		m = *req.Matter
	}
	if f.title != "" {
		m.Title = f.title
	}
	if f.client != "" {
		m.ClientName = f.client
	}
	if f.matterType != "" {
		m.MatterType = f.matterType
	}
	if f.description != "" {
		m.Description = f.description
	}
	req.Matter = &m
}

func (f *requestFlags) options(fs *pflag.FlagSet) (domain.NarrativeOptions, error) {
	opts := domain.DefaultNarrativeOptions()
	if s := settingsService(); s != nil {
		opts = s.Defaults()
	}

	if fs.Changed("type") {
		t, err := domain.ParseNarrativeType(f.narrType)
		if err != nil {
			return opts, err
		}
		opts.NarrativeType = t
	}
	if f.noOutcomes {
		opts.IncludeOutcomes = false
	}
	if f.noBreakdown {
		opts.IncludeTimeBreakdown = false
	}
	if f.byDate {
		opts.GroupByWorkType = false
	}
	if f.workTypeDetails {
		opts.IncludeWorkTypeDetails = true
	}
	if f.formal && f.informal {
		return opts, domain.NewInvalidInputError("formal", "--formal and --informal are mutually exclusive")
	}
	if f.formal {
		opts.FormalTone = true
	}
	if f.informal {
		opts.FormalTone = false
	}
	if f.noComplexity {
		opts.IncludeComplexityJustification = false
	}
	if f.noValue {
		opts.IncludeValueDelivered = false
	}
	opts.Seed = f.seed
	return opts, nil
}
