// Package flagx contains helpers for components that parse only their own
// subset of the command line.
package flagx

import (
	"flag"
	"strings"
)

// FilterArgs returns a slice of command-line arguments that only contains
// the allowed flags (and their values) specified in allowedFlags.
//
// Supported formats:
//  1. Flag and value as separate arguments:  -c conf.json
//  2. Flag and value combined with '=':      --config=conf.json
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			// a following token that is not a flag is this flag's value
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// ConfigFiles holds the optional configuration file locations given on the
// command line.
type ConfigFiles struct {
	// JSON is the path passed with -c or -config.
	JSON string
	// Env is the dotenv file passed with -env.
	Env string
}

// ConfigFileFlags extracts -c/-config and -env from args (usually
// os.Args[1:]). Other arguments are ignored so the caller can parse its own
// flags independently. When a flag is repeated the last value wins.
func ConfigFileFlags(args []string) ConfigFiles {
	var cf ConfigFiles

	filtered := FilterArgs(args, []string{"-c", "-config", "--config", "-env", "--env"})

	fs := flag.NewFlagSet("config-files", flag.ContinueOnError)
	fs.StringVar(&cf.JSON, "config", "", "path to JSON config file")
	fs.StringVar(&cf.JSON, "c", "", "path to JSON config file (short)")
	fs.StringVar(&cf.Env, "env", "", "path to .env file")
	_ = fs.Parse(filtered)

	return cf
}
