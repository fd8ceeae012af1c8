package main

import (
	"flag"
	"strings"
)

/* ---------- arguments (flags anywhere) ---------- */

type cliArgs struct {
	file    string
	format  string // text | json
	pretty  bool
	noParen bool // --no-paren-errors
	noWarn  bool // --no-warnings
	werr    bool // --Werror
	verbose bool
}

// parseArgs accepts the flags named in allow, in any position relative to
// the single file argument. Anything after "--" is taken as the file.
func parseArgs(argv []string, allow ...string) (cliArgs, error) {
	a := cliArgs{format: "text"}
	allowed := map[string]bool{}
	for _, f := range allow {
		allowed[f] = true
	}

	i := 0
	for i < len(argv) {
		s := argv[i]
		if s == "--" {
			i++
			break
		}
		if !strings.HasPrefix(s, "-") {
			if a.file != "" {
				return a, flag.ErrHelp
			}
			a.file = s
			i++
			continue
		}
		name, val, hasVal := strings.Cut(strings.TrimLeft(s, "-"), "=")
		if name == "werror" {
			name = "Werror"
		}
		if !allowed[name] {
			return a, flag.ErrHelp
		}
		// switches take no value; --pretty=false is a usage error, not a yes
		if hasVal && name != "format" {
			return a, flag.ErrHelp
		}
		switch name {
		case "format":
			if !hasVal {
				if i+1 >= len(argv) {
					return a, flag.ErrHelp
				}
				i++
				val = argv[i]
			}
			if val != "text" && val != "json" {
				return a, flag.ErrHelp
			}
			a.format = val
		case "pretty":
			a.pretty = true
		case "no-paren-errors":
			a.noParen = true
		case "no-warnings":
			a.noWarn = true
		case "Werror":
			a.werr = true
		case "verbose":
			a.verbose = true
		}
		i++
	}
	for ; i < len(argv) && a.file == ""; i++ {
		a.file = argv[i]
	}
	if a.file == "" {
		return a, flag.ErrHelp
	}
	return a, nil
}
