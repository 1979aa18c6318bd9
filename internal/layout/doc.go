// Package layout resolves the project directory convention targetcheck
// operates on: a project root containing a fixed build/ subdirectory.
//
// The root is either given explicitly or inferred from the installed
// executable's location two directory levels up (<root>/scripts/targetcheck
// resolves to <root>). The build directory is never configurable; it is
// always the build/ subdirectory of the root.
package layout
