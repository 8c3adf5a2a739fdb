package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/draessld/EDSParser/core"
	"github.com/draessld/EDSParser/internal/runtimeinfo"
)

var (
	statsInput           string
	statsFormat          string
	statsMetadataOnly    bool
	statsEstimateMemory  bool
	statsRender          bool
	statsSources         string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show EDS statistics",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVarP(&statsInput, "input", "i", "", "input .eds file (required)")
	statsCmd.Flags().StringVarP(&statsFormat, "format", "f", "table", "output format: table|json|yaml")
	statsCmd.Flags().BoolVar(&statsMetadataOnly, "metadata-only", false, "load in metadata-only storage mode")
	statsCmd.Flags().BoolVar(&statsEstimateMemory, "estimate-memory", false, "also print estimated peak memory for both storage modes")
	statsCmd.Flags().BoolVar(&statsRender, "render", false, "also print a human-readable dump of every symbol (full mode only)")
	statsCmd.Flags().StringVarP(&statsSources, "sources", "s", "", "optional .seds file to include source statistics")
	statsCmd.MarkFlagRequired("input")
}

type statsReport struct {
	N                    int     `json:"n" yaml:"n"`
	M                    int     `json:"m" yaml:"m"`
	N_Chars              uint64  `json:"N" yaml:"N"`
	MinContextLength     uint32  `json:"min_context_length" yaml:"min_context_length"`
	MaxContextLength     uint32  `json:"max_context_length" yaml:"max_context_length"`
	AvgContextLength     float64 `json:"avg_context_length" yaml:"avg_context_length"`
	NumDegenerateSymbols int     `json:"num_degenerate_symbols" yaml:"num_degenerate_symbols"`
	NumEmptyStrings      int     `json:"num_empty_strings" yaml:"num_empty_strings"`
	CommonChars          uint64  `json:"common_chars" yaml:"common_chars"`
	DegenerateChars      uint64  `json:"degenerate_chars" yaml:"degenerate_chars"`
	HasSources           bool    `json:"has_sources" yaml:"has_sources"`
	NumPaths             int     `json:"num_paths,omitempty" yaml:"num_paths,omitempty"`
	MaxPathsPerString    int     `json:"max_paths_per_string,omitempty" yaml:"max_paths_per_string,omitempty"`
	AvgPathsPerString    float64 `json:"avg_paths_per_string,omitempty" yaml:"avg_paths_per_string,omitempty"`

	EstimatedFullModeBytes     uint64 `json:"estimated_full_mode_bytes,omitempty" yaml:"estimated_full_mode_bytes,omitempty"`
	EstimatedMetadataModeBytes uint64 `json:"estimated_metadata_mode_bytes,omitempty" yaml:"estimated_metadata_mode_bytes,omitempty"`
}

func runStats(c *cobra.Command, args []string) error {
	t := runtimeinfo.NewTimer()
	defer func() { fmt.Fprint(os.Stderr, runtimeinfo.ReportLine(t)) }()

	mode := core.Full
	if statsMetadataOnly {
		mode = core.MetadataOnly
	}
	eds, err := core.LoadFile(statsInput, mode)
	if err != nil {
		return err
	}
	defer eds.Close()

	if statsSources != "" {
		sf, err := os.Open(statsSources)
		if err != nil {
			return err
		}
		err = eds.AttachSources(sf)
		sf.Close()
		if err != nil {
			return err
		}
	}

	s := eds.Statistics()
	report := statsReport{
		N:                    eds.Len(),
		M:                    eds.Cardinality(),
		N_Chars:              eds.Size(),
		MinContextLength:     s.MinContextLength,
		MaxContextLength:     s.MaxContextLength,
		AvgContextLength:     s.AvgContextLength,
		NumDegenerateSymbols: s.NumDegenerateSymbols,
		NumEmptyStrings:      s.NumEmptyStrings,
		CommonChars:          s.CommonChars,
		DegenerateChars:      s.DegenerateChars,
		HasSources:           s.HasSources,
		NumPaths:             s.NumPaths,
		MaxPathsPerString:    s.MaxPathsPerString,
		AvgPathsPerString:    s.AvgPathsPerString,
	}
	if statsEstimateMemory {
		report.EstimatedFullModeBytes = core.EstimateFullModeMemory(eds.Size(), eds.Cardinality(), eds.Len())
		report.EstimatedMetadataModeBytes = core.EstimateMetadataModeMemory(eds.Cardinality(), eds.Len())
	}

	switch statsFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	case "yaml":
		data, err := yaml.Marshal(report)
		if err != nil {
			return err
		}
		os.Stdout.Write(data)
	default:
		printTable(report)
	}

	if statsRender {
		rendered, err := eds.Render()
		if err != nil {
			fmt.Fprintf(os.Stderr, "render: %v\n", err)
		} else {
			fmt.Print(rendered)
		}
	}
	return nil
}

func printTable(r statsReport) {
	fmt.Printf("n                     %d\n", r.N)
	fmt.Printf("m                     %d\n", r.M)
	fmt.Printf("N                     %d\n", r.N_Chars)
	fmt.Printf("min_context_length    %d\n", r.MinContextLength)
	fmt.Printf("max_context_length    %d\n", r.MaxContextLength)
	fmt.Printf("avg_context_length    %.3f\n", r.AvgContextLength)
	fmt.Printf("num_degenerate_symbols %d\n", r.NumDegenerateSymbols)
	fmt.Printf("num_empty_strings     %d\n", r.NumEmptyStrings)
	fmt.Printf("common_chars          %d\n", r.CommonChars)
	fmt.Printf("degenerate_chars      %d\n", r.DegenerateChars)
	fmt.Printf("has_sources           %v\n", r.HasSources)
	if r.HasSources {
		fmt.Printf("num_paths             %d\n", r.NumPaths)
		fmt.Printf("max_paths_per_string  %d\n", r.MaxPathsPerString)
		fmt.Printf("avg_paths_per_string  %.3f\n", r.AvgPathsPerString)
	}
	if r.EstimatedFullModeBytes > 0 {
		fmt.Printf("estimated_full_mode_bytes     %d\n", r.EstimatedFullModeBytes)
		fmt.Printf("estimated_metadata_mode_bytes %d\n", r.EstimatedMetadataModeBytes)
	}
}
