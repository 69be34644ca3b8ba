package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"rtvm-report/internal/model"
)

// Config is the application configuration. It is loaded once and passed
// explicitly to everything that needs it; there is no ambient global state.
type Config struct {
	Paths       PathsConfig      `mapstructure:"paths"`
	Report      ReportConfig     `mapstructure:"report"`
	VesselTypes []string         `mapstructure:"vessel_types"`
	SWBSGroups  model.SWBSGroups `mapstructure:"swbs_groups"`
}

// PathsConfig holds file locations.
type PathsConfig struct {
	InputFile           string `mapstructure:"input_file"`           // RTVM workbook to load
	OutputDir           string `mapstructure:"output_dir"`           // Base directory for PMR exports
	TemplateFile        string `mapstructure:"template_file"`        // Optional subset template workbook
	DisagreementReports string `mapstructure:"disagreement_reports"` // Folder for disagreement report output
}

// ReportConfig holds the contract metadata stamped on generated reports.
type ReportConfig struct {
	CompanyName           string `mapstructure:"company_name"`
	ContractNumber        string `mapstructure:"contract_number"`
	DistributionStatement string `mapstructure:"distribution_statement"`
	DestructionNotice     string `mapstructure:"destruction_notice"`
}

// Load reads the configuration from a file or uses defaults.
// If configPath is empty, it looks for "config.yaml" in the current directory.
// A missing file is not an error; the built-in defaults apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath == "" {
		configPath = "config.yaml"
	}
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) || strings.Contains(err.Error(), "no such file") ||
			strings.Contains(err.Error(), "cannot find") {
			fmt.Println("Config file not found. Using built-in defaults.")
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		fmt.Printf("Loaded config from: %s\n", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.normalizePaths(); err != nil {
		return nil, err
	}
	cfg.normalizeGroups()

	return &cfg, nil
}

// normalizeGroups restores the canonical "SWBS 100" spelling of the group
// labels. Viper lowercases every map key during unmarshal.
func (c *Config) normalizeGroups() {
	normalized := make(model.SWBSGroups, len(c.SWBSGroups))
	for label, members := range c.SWBSGroups {
		normalized[strings.ToUpper(strings.TrimSpace(label))] = members
	}
	c.SWBSGroups = normalized
}

// setDefaults configures the built-in defaults, including the standard SWBS
// membership table used when no site-specific table is supplied.
func setDefaults(v *viper.Viper) {
	v.SetDefault("paths.input_file", "")
	v.SetDefault("paths.output_dir", "./output")
	v.SetDefault("paths.template_file", "")
	v.SetDefault("paths.disagreement_reports", "")

	v.SetDefault("report.company_name", "Birdon")
	v.SetDefault("report.contract_number", "70Z02323D93270001")
	v.SetDefault("report.distribution_statement",
		"DISTRIBUTION STATEMENT D: DISTRIBUTION AUTHORIZED TO DHS/CG/DOD AND THEIR "+
			"CONTRACTORS ONLY DUE TO ADMINISTRATIVE OR OPERATIONAL USE (5 OCT 2022). "+
			"OTHER REQUESTS SHALL BE REFERRED TO COMMANDANT (CG-9327).")
	v.SetDefault("report.destruction_notice",
		"DESTRUCTION NOTICE: DESTROY THIS DOCUMENT BY ANY METHOD THAT WILL PREVENT "+
			"DISCLOSURE OF CONTENTS OR RECONSTRUCTION OF THE DOCUMENT.")

	v.SetDefault("vessel_types", []string{"160-WLIC", "180-WLR"})

	v.SetDefault("swbs_groups", map[string][]string{
		"SWBS 000": {
			"040-001", "042-001", "042-003", "042-005", "045-001",
			"068-001", "068-002", "068-003", "070-001", "073-001",
			"073-003", "073-006", "073-007", "073-008", "073-009",
			"076-002", "077-001", "077-002", "083-002", "085-004",
			"086-003", "088-001", "088-002", "088-005", "088-007",
			"092-001", "096-004",
		},
		"SWBS 100": {
			"100-001", "100-002", "100-004", "100-006", "100-010",
			"100-011", "100-012", "100-013",
		},
		"SWBS 200": {
			"200-001", "200-003", "233-001", "245-001", "245-002",
			"245-003", "249-001", "249-002", "249-003", "249-004",
			"259-001",
		},
		"SWBS 202": {
			"202-012",
		},
		"SWBS 300": {
			"300-001", "300-002", "300-003", "300-006", "300-007",
			"300-008", "300-009", "300-010", "300-011", "302-001",
			"310-001", "320-003", "303-001",
		},
		"SWBS 400": {
			"400-001", "400-002", "400-003", "400-010", "400-011",
			"402-001", "402-002", "405-001", "407-001", "428-001",
			"432-001", "432-002", "435-001", "436-002", "440-001",
		},
		"SWBS 500": {
			"508-001", "555-001", "580-001", "580-004", "583-001",
			"589-002", "593-002", "593-005", "521-003",
		},
		"SWBS 600": {
			"602-001", "604-001", "634-001", "640-002",
		},
	})
}

// normalizePaths converts relative paths to absolute paths.
func (c *Config) normalizePaths() error {
	absOutput, err := filepath.Abs(c.Paths.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to resolve output_dir: %w", err)
	}
	c.Paths.OutputDir = absOutput

	if c.Paths.InputFile != "" {
		absInput, err := filepath.Abs(c.Paths.InputFile)
		if err != nil {
			return fmt.Errorf("failed to resolve input_file: %w", err)
		}
		c.Paths.InputFile = absInput
	}

	return nil
}

// EnsureOutputDir creates the base output directory if it doesn't exist.
func (c *Config) EnsureOutputDir() error {
	if err := os.MkdirAll(c.Paths.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// Validate checks if the configuration is usable for an export run.
func (c *Config) Validate() error {
	if c.Paths.OutputDir == "" {
		return fmt.Errorf("paths.output_dir cannot be empty")
	}
	if len(c.SWBSGroups) == 0 {
		return fmt.Errorf("swbs_groups must contain at least one group")
	}
	if c.Paths.TemplateFile != "" {
		if _, err := os.Stat(c.Paths.TemplateFile); os.IsNotExist(err) {
			return fmt.Errorf("template_file does not exist: %s", c.Paths.TemplateFile)
		}
	}
	return nil
}

// Print displays the current configuration.
func (c *Config) Print() {
	fmt.Println("=== RTVM Report Configuration ===")
	fmt.Printf("Input File:        %s\n", c.Paths.InputFile)
	fmt.Printf("Output Directory:  %s\n", c.Paths.OutputDir)
	fmt.Printf("Template File:     %s\n", c.Paths.TemplateFile)
	fmt.Printf("Company:           %s\n", c.Report.CompanyName)
	fmt.Printf("Contract Number:   %s\n", c.Report.ContractNumber)
	fmt.Printf("Vessel Types:      %v\n", c.VesselTypes)
	fmt.Printf("SWBS Groups:       %d configured\n", len(c.SWBSGroups))
	fmt.Println("=================================")
}
