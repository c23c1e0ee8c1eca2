// Package version defines the current jlib version number.
package version

// Number is the current jlib version number.
// We use semantic versioning (http://semver.org/).
const Number = "0.3.0"
