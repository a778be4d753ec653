// Package schema defines the HCL surface of build-definition files.
package schema

import "github.com/hashicorp/hcl/v2"

// Build represents a `build` block from a definitions file. Every attribute
// is optional; absent attributes fall back to the generator defaults.
// Optional scalars are pointers so an explicit zero value stays
// distinguishable from an absent attribute.
type Build struct {
	Name        string            `hcl:"name,label"`
	Image       *string           `hcl:"image,optional"`
	Args        *string           `hcl:"args,optional"`
	Jobs        *int              `hcl:"jobs,optional"`
	Env         map[string]string `hcl:"env,optional"`
	Coverage    *bool             `hcl:"coverage,optional"`
	Platform    *string           `hcl:"platform,optional"`
	CommandArgs *string           `hcl:"command_args,optional"`
}

// Root is the top-level structure of a build-definition file, containing
// all build blocks it declares.
type Root struct {
	Builds []*Build `hcl:"build,block"`
	Remain hcl.Body `hcl:",remain"`
}
