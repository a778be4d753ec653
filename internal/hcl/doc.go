// Package hcl loads build-definition files and translates their blocks into
// matrix registrations. It owns all file parsing, HCL decoding, and the
// evaluation context that exposes the current run's branch and tag to
// expressions in definition files.
package hcl
