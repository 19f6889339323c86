package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/resisync/internal/domain"
	"github.com/spf13/pflag"
)

// dateValue is a pflag.Value that parses YYYY-MM-DD dates, so date
// format errors surface at flag parse time with the flag name attached.
type dateValue struct {
	t *time.Time
}

var _ pflag.Value = (*dateValue)(nil)

func newDateValue(t *time.Time) *dateValue {
	return &dateValue{t: t}
}

func (d *dateValue) String() string {
	if d.t == nil || d.t.IsZero() {
		return ""
	}
	return d.t.Format(domain.DateLayout)
}

func (d *dateValue) Set(s string) error {
	parsed, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	*d.t = parsed
	return nil
}

func (d *dateValue) Type() string {
	return "date"
}
