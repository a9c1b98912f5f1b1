package aur

import "strings"

// reservedVerbs are bare tokens that name operations, not packages.
var reservedVerbs = map[string]bool{
	"install": true,
	"remove":  true,
	"update":  true,
}

// ExtractPackages scans a yay argument vector and returns the package names
// the user intends to install, in first-seen order.
//
// A -S/--sync flag consumes the non-flag tokens that follow it. Any other
// bare token that is not a reserved verb and does not start with a flag
// marker is also treated as a package name. Pure query or removal flags
// contribute nothing; an empty result means the arguments should be passed
// through unmodified.
func ExtractPackages(args []string) []string {
	var packages []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case (arg == "-S" || arg == "--sync") && i+1 < len(args):
			for i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				i++
				packages = append(packages, args[i])
			}
		case !strings.HasPrefix(arg, "-") && !reservedVerbs[arg]:
			packages = append(packages, arg)
		}
	}

	return packages
}

// FilterArgs rebuilds an argument vector with every token matching a
// not-found package name removed. Flags, verbs, and found package names
// keep their original order and position.
func FilterArgs(args []string, notFound []string) []string {
	if len(notFound) == 0 {
		return args
	}

	drop := make(map[string]bool, len(notFound))
	for _, name := range notFound {
		drop[name] = true
	}

	filtered := make([]string, 0, len(args))
	for _, arg := range args {
		if !strings.HasPrefix(arg, "-") && drop[arg] {
			continue
		}
		filtered = append(filtered, arg)
	}
	return filtered
}
