// Package urls holds the user-facing links in one place so they can be
// changed without hunting through the form and command code.
//
// Usage:
//
//	import "github.com/muurk/signup/internal/urls"
//
//	fmt.Printf("Field rules: %s\n", urls.AccountRules)
package urls
