// keysplit-cli derives hierarchical deterministic wallets from a BIP-39
// recovery phrase.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/keysplit-tech/keysplit-core/config"
	"github.com/keysplit-tech/keysplit-core/internal/log"
	"github.com/keysplit-tech/keysplit-core/internal/wallet"
	"golang.org/x/term"
)

// Version is the CLI version, overridable at build time via -ldflags.
var Version = "0.1.0"

func main() {
	flags, err := config.ParseFlags()
	if err != nil {
		os.Exit(1)
	}

	if flags.Version {
		fmt.Printf("keysplit-cli %s\n", Version)
		return
	}
	if flags.Help || len(flags.Args) == 0 {
		usage()
		if len(flags.Args) == 0 && !flags.Help {
			os.Exit(1)
		}
		return
	}

	cfg, err := config.Load(flags)
	if err != nil {
		fatal("%v", err)
	}
	if err := log.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
		fatal("init logging: %v", err)
	}

	cmd := flags.Args[0]
	cmdArgs := flags.Args[1:]

	switch cmd {
	case "generate":
		cmdGenerate()
	case "validate":
		cmdValidate(cmdArgs)
	case "wallet":
		cmdWallet(cmdArgs)
	case "children":
		cmdChildren(cmdArgs, cfg)
	case "split":
		cmdSplit(cmdArgs)
	case "help", "--help", "-h":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: keysplit-cli [global flags] <command> [flags]

Global flags:
  --config <path>     Config file (default: ~/.keysplit/keysplit.conf)
  --log-level <lvl>   debug, info, warn, or error (default: info)
  --log-json          Log JSON to the console instead of colored output
  --log-file <path>   Also write JSON logs to this file

Commands:
  generate                        Generate a new 24-word recovery phrase
  validate [--phrase-file <f>]    Check a recovery phrase (exit 0 valid, 1 invalid)
  wallet   [--phrase-file <f>]    Derive the parent wallet (m/44'/60'/0'/0/0)
  children [--phrase-file <f>] [--count <n>]
                                  Derive child wallets at m/44'/60'/0'/0/{0..n-1}
  split    [--phrase-file <f>]    Derive the parent plus %d child wallets
  help                            Show this help

The recovery phrase is read from --phrase-file, from piped stdin, or from
an interactive prompt that does not echo.
`, wallet.SplitChildCount)
}

// ── Commands ────────────────────────────────────────────────────────────

func cmdGenerate() {
	mnemonic, err := wallet.GenerateMnemonic()
	if err != nil {
		fatal("generate mnemonic: %v", err)
	}
	log.CLI.Debug().Msg("generated new recovery phrase")
	fmt.Println(mnemonic)
}

func cmdValidate(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	phraseFile := fs.String("phrase-file", "", "Read the phrase from this file")
	fs.Parse(args)

	mnemonic := readMnemonic(*phraseFile)
	if !wallet.ValidateMnemonic(mnemonic) {
		fmt.Println("invalid")
		os.Exit(1)
	}
	fmt.Println("valid")
}

func cmdWallet(args []string) {
	fs := flag.NewFlagSet("wallet", flag.ExitOnError)
	phraseFile := fs.String("phrase-file", "", "Read the phrase from this file")
	fs.Parse(args)

	mnemonic := readMnemonic(*phraseFile)
	info, err := wallet.DeriveParentWallet(mnemonic)
	if err != nil {
		fatal("derive parent wallet: %v", err)
	}
	printJSON(info)
}

func cmdChildren(args []string, cfg *config.Config) {
	fs := flag.NewFlagSet("children", flag.ExitOnError)
	phraseFile := fs.String("phrase-file", "", "Read the phrase from this file")
	count := fs.Uint("count", uint(cfg.Wallet.DefaultChildCount), "Number of child wallets")
	fs.Parse(args)

	if *count > config.MaxChildCount {
		fatal("count is %d, max is %d", *count, config.MaxChildCount)
	}

	mnemonic := readMnemonic(*phraseFile)
	wallets, err := wallet.DeriveChildWallets(mnemonic, uint32(*count))
	if err != nil {
		fatal("derive child wallets: %v", err)
	}
	log.CLI.Debug().Int("count", len(wallets)).Msg("derived child wallets")
	printJSON(wallets)
}

func cmdSplit(args []string) {
	fs := flag.NewFlagSet("split", flag.ExitOnError)
	phraseFile := fs.String("phrase-file", "", "Read the phrase from this file")
	fs.Parse(args)

	mnemonic := readMnemonic(*phraseFile)
	result, err := wallet.CreateSplitOperation(mnemonic)
	if err != nil {
		fatal("split operation: %v", err)
	}
	log.CLI.Debug().Int("children", len(result.ChildWallets)).Msg("derived split operation")
	printJSON(result)
}

// ── Input helpers ───────────────────────────────────────────────────────

// readMnemonic obtains the recovery phrase: from a file when given, from
// piped stdin, or interactively without echoing.
func readMnemonic(phraseFile string) string {
	if phraseFile != "" {
		data, err := os.ReadFile(phraseFile)
		if err != nil {
			fatal("read phrase file: %v", err)
		}
		return normalizePhrase(string(data))
	}

	if !term.IsTerminal(int(syscall.Stdin)) {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			fatal("read phrase from stdin: %v", err)
		}
		return normalizePhrase(line)
	}

	fmt.Fprint(os.Stderr, "Recovery phrase: ")
	phrase, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr) // newline after hidden input
	if err != nil {
		fatal("read phrase: %v", err)
	}
	return normalizePhrase(string(phrase))
}

// normalizePhrase lowercases the phrase and collapses all whitespace runs
// to single spaces, so pasted input with stray newlines still validates.
func normalizePhrase(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// ── Output helpers ──────────────────────────────────────────────────────

func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fatal("encode output: %v", err)
	}
	fmt.Println(string(data))
}

// ── Error helper ────────────────────────────────────────────────────────

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
