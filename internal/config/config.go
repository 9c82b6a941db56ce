package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	FormatJSON  = "json"
	FormatTable = "table"

	// StdStream selects stdin for the roster or stdout for the output.
	StdStream = "-"
)

type Config struct {
	AppEnv string

	// I/O
	RosterPath   string
	OutputPath   string
	OutputFormat string

	// Logging; the CLI exports these back to LOG_* for logger.Init
	LogLevel  string
	LogFormat string

	// Empty disables the textfile export.
	MetricsTextfile string

	// Policy overrides; nil keeps the snapshot's own setting.
	DistrictPriority *bool
	QuotaReservation *bool

	StrictInput bool
}

// Load reads .env, then the environment, then args. Flags win over env.
func Load(args []string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:          getEnv("APP_ENV", "dev"),
		RosterPath:      getEnv("ROSTER_PATH", StdStream),
		OutputPath:      getEnv("OUTPUT_PATH", StdStream),
		OutputFormat:    getEnv("OUTPUT_FORMAT", FormatJSON),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "console"),
		MetricsTextfile: getEnv("METRICS_TEXTFILE", ""),
	}

	var err error
	if cfg.StrictInput, err = getBool("STRICT_INPUT", true); err != nil {
		return nil, err
	}
	if cfg.DistrictPriority, err = getOptionalBool("DISTRICT_PRIORITY"); err != nil {
		return nil, err
	}
	if cfg.QuotaReservation, err = getOptionalBool("QUOTA_RESERVATION"); err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("admission", flag.ContinueOnError)
	fs.StringVar(&cfg.RosterPath, "in", cfg.RosterPath, "Roster snapshot JSON file (- for stdin)")
	fs.StringVar(&cfg.OutputPath, "out", cfg.OutputPath, "Output file (- for stdout)")
	fs.StringVar(&cfg.OutputFormat, "format", cfg.OutputFormat, "Output format (json or table)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (json or console)")
	fs.StringVar(&cfg.MetricsTextfile, "metrics", cfg.MetricsTextfile, "Write Prometheus metrics to this textfile")
	fs.BoolVar(&cfg.StrictInput, "strict", cfg.StrictInput, "Reject rosters that break the input contract")
	fs.Var(&optionalBool{v: &cfg.DistrictPriority}, "district", "Override district priority (true or false)")
	fs.Var(&optionalBool{v: &cfg.QuotaReservation}, "quota", "Override quota reservation (true or false)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.OutputFormat = strings.ToLower(strings.TrimSpace(cfg.OutputFormat))
	switch cfg.OutputFormat {
	case FormatJSON, FormatTable:
	default:
		return nil, fmt.Errorf("unsupported output format %q (want %s or %s)", cfg.OutputFormat, FormatJSON, FormatTable)
	}
	if strings.TrimSpace(cfg.RosterPath) == "" {
		return nil, fmt.Errorf("missing roster path: use -in or ROSTER_PATH")
	}

	return cfg, nil
}

// optionalBool is a bool flag that remembers whether it was set at all.
type optionalBool struct {
	v **bool
}

func (o *optionalBool) String() string {
	if o.v == nil || *o.v == nil {
		return ""
	}
	return strconv.FormatBool(**o.v)
}

func (o *optionalBool) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}
	*o.v = &b
	return nil
}

func (o *optionalBool) IsBoolFlag() bool { return true }

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getBool(k string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def, nil
	}
	b, err := parseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid boolean env %s=%q", k, v)
	}
	return b, nil
}

func getOptionalBool(k string) (*bool, error) {
	if strings.TrimSpace(os.Getenv(k)) == "" {
		return nil, nil
	}
	b, err := getBool(k, false)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func parseBool(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "t", "yes", "y", "on":
		return true, nil
	case "0", "false", "f", "no", "n", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean %q", v)
	}
}
