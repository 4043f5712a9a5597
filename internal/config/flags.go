package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// EmailList holds an ordered list of recipient email addresses.
// It implements the flag.Value interface; values are space-delimited and
// repeated flag occurrences accumulate in order.
type EmailList []string

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	--vault vault name the note is stored in
//	--expires-in share link expiration (e.g. "7d", "24h"), passed to op verbatim
//	--emails space-delimited recipient email addresses (repeatable)
//	--op-binary path to the 1Password CLI executable
//	-c/--config json file path with configs
func ParseFlags() *StructuredConfig {
	var vault string
	var expiresIn string
	var emails EmailList
	var opBinary string
	var jsonConfigPath string

	flag.StringVar(&vault, "vault", "", "1Password vault name")
	flag.StringVar(&expiresIn, "expires-in", "", "Share link expiration (e.g. 7d, 24h)")
	flag.Var(&emails, "emails", "Space-delimited recipient email addresses")
	flag.StringVar(&opBinary, "op-binary", "", "1Password CLI executable")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()
	foldTrailingEmails(&emails)

	return &StructuredConfig{
		Share: Share{
			Vault:     vault,
			ExpiresIn: expiresIn,
			Emails:    emails,
		},
		Op: Op{
			Binary: opBinary,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// foldTrailingEmails re-attaches bare arguments left behind by flag.Parse.
//
// The flag package stops flag parsing at the first non-flag argument, so a
// command line like `--emails a@x.com b@y.com --vault Dev` captures only the
// first address and leaves the rest in flag.Args(). Leading bare arguments
// are appended to the email list and parsing resumes for any flags that
// follow. A bare argument with no preceding --emails has nothing to attach
// to and aborts with a usage error.
func foldTrailingEmails(emails *EmailList) {
	for rest := flag.Args(); len(rest) > 0; rest = flag.Args() {
		i := 0
		for i < len(rest) && !strings.HasPrefix(rest[i], "-") {
			i++
		}

		if i == 0 {
			return
		}

		if len(*emails) == 0 {
			fmt.Fprintf(flag.CommandLine.Output(), "unexpected argument: %s\n", rest[0])
			flag.Usage()
			os.Exit(2)
		}

		*emails = append(*emails, rest[:i]...)

		if i == len(rest) {
			return
		}
		if err := flag.CommandLine.Parse(rest[i:]); err != nil {
			return
		}
	}
}

// String returns the addresses joined by single spaces.
func (e *EmailList) String() string {
	if e == nil {
		return ""
	}

	return strings.Join(*e, " ")
}

// Set splits the input on whitespace and appends each address in order.
// Addresses are not validated here; the 1Password CLI rejects recipients it
// cannot deliver to.
func (e *EmailList) Set(s string) error {
	*e = append(*e, strings.Fields(s)...)
	return nil
}
