// Command rlrep parses vehicle-soccer replay files and prints the decoded
// result as JSON, mirroring screp's CLI contract (read file, parse, encode)
// but structured as a cobra root command with two subcommands instead of
// screp's flat flag.Bool set, following condortango-w3g-parser's
// parser-CLI shape.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/icza/rlrep/repparser"
)

const (
	appName    = "rlrep"
	appVersion = "v0.1.0"
)

var (
	outFile string
	indent  bool
	crcMode string
	netMode string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     appName,
		Short:   "Parse vehicle-soccer replay files",
		Version: appVersion,
	}
	root.PersistentFlags().StringVar(&outFile, "out", "", "output file (default: stdout)")
	root.PersistentFlags().BoolVar(&indent, "indent", true, "indent the JSON output")
	root.PersistentFlags().StringVar(&crcMode, "crc", "on-error", "CRC check policy: always, never, on-error")

	parseCmd := &cobra.Command{
		Use:   "parse <replay file>",
		Short: "Fully parse a replay, including the network stream",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
	parseCmd.Flags().StringVar(&netMode, "network", "on-error", "network stream parse policy: always, never, on-error")

	headerCmd := &cobra.Command{
		Use:   "header-only <replay file>",
		Short: "Parse only the header and body, skipping the network stream",
		Args:  cobra.ExactArgs(1),
		RunE:  runHeaderOnly,
	}

	root.AddCommand(parseCmd, headerCmd)
	return root
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(crcMode, netMode)
	if err != nil {
		return err
	}
	return parseAndEmit(args[0], cfg)
}

func runHeaderOnly(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(crcMode, "never")
	if err != nil {
		return err
	}
	return parseAndEmit(args[0], cfg)
}

func buildConfig(crc, net string) (repparser.Config, error) {
	b := repparser.NewParserBuilder()
	switch crc {
	case "always":
		b = b.AlwaysCheckCrc()
	case "never":
		b = b.NeverCheckCrc()
	case "on-error":
		b = b.CheckCrcOnError()
	default:
		return repparser.Config{}, fmt.Errorf("invalid --crc value %q: must be always, never or on-error", crc)
	}
	switch net {
	case "always":
		b = b.AlwaysParseNetworkData()
	case "never":
		b = b.NeverParseNetworkData()
	case "on-error":
		b = b.IgnoreNetworkDataOnError()
	default:
		return repparser.Config{}, fmt.Errorf("invalid --network value %q: must be always, never or on-error", net)
	}
	return b.Build(), nil
}

func parseAndEmit(path string, cfg repparser.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading replay file: %w", err)
	}

	replay, err := repparser.ParseConfig(data, cfg)
	if err != nil {
		return fmt.Errorf("parsing replay: %w", err)
	}

	w := os.Stdout
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(replay)
}
