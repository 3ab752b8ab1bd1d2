package git

import "strings"

// DefaultExcludes lists generated, binary and lock artifacts that never reach the prompt.
// Patterns are git globs matched from the repository root.
var DefaultExcludes = []string{
	// lockfiles
	"**/package-lock.json",
	"**/npm-shrinkwrap.json",
	"**/yarn.lock",
	"**/pnpm-lock.yaml",
	"**/bun.lockb",
	"**/bun.lock",
	"**/Cargo.lock",
	"**/Gemfile.lock",
	"**/composer.lock",
	"**/poetry.lock",
	"**/Pipfile.lock",
	"**/uv.lock",
	"**/go.sum",
	"**/mix.lock",
	"**/pubspec.lock",
	"**/Podfile.lock",
	"**/packages.lock.json",
	"**/flake.lock",

	// build output
	"**/dist/**",
	"**/build/**",
	"**/out/**",
	"**/target/**",
	"**/.next/**",
	"**/.nuxt/**",
	"**/.svelte-kit/**",
	"**/coverage/**",
	"**/bin/**",
	"**/obj/**",

	// compiled objects and binaries
	"**/*.exe",
	"**/*.dll",
	"**/*.so",
	"**/*.dylib",
	"**/*.o",
	"**/*.a",
	"**/*.obj",
	"**/*.class",
	"**/*.jar",
	"**/*.pyc",
	"**/*.pyo",
	"**/*.wasm",
	"**/*.min.js",
	"**/*.min.css",
	"**/*.map",

	// environments and caches
	"**/node_modules/**",
	"**/.venv/**",
	"**/venv/**",
	"**/__pycache__/**",
	"**/.cache/**",
	"**/.gradle/**",
	"**/.pytest_cache/**",
	"**/.mypy_cache/**",
	"**/.turbo/**",
	"**/.parcel-cache/**",
}

// ExcludePathspecs turns glob patterns into root-anchored exclude pathspecs.
// A bare file name like "schema.graphql" is matched at any depth.
func ExcludePathspecs(patterns []string) []string {
	specs := make([]string, 0, len(patterns))
	for _, p := range patterns {
		p = strings.TrimPrefix(strings.TrimSpace(p), "/")
		if p == "" {
			continue
		}
		if !strings.Contains(p, "/") {
			p = "**/" + p
		}
		specs = append(specs, ":(top,exclude,glob)"+p)
	}
	return specs
}
