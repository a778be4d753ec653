package hcl

import (
	"github.com/vk/cimatrix/internal/matrix"
	"github.com/vk/cimatrix/internal/schema"
)

// translateBuild converts one decoded build block into the option set for a
// single matrix registration. Only attributes the file actually sets become
// options, so the generator's own defaults apply to everything else.
func translateBuild(b *schema.Build) []matrix.Option {
	opts := []matrix.Option{matrix.WithName(b.Name)}

	if b.Image != nil {
		opts = append(opts, matrix.WithImage(*b.Image))
	}
	if b.Args != nil {
		opts = append(opts, matrix.WithArgs(*b.Args))
	}
	if b.Jobs != nil {
		opts = append(opts, matrix.WithJobs(*b.Jobs))
	}
	if len(b.Env) > 0 {
		opts = append(opts, matrix.WithEnv(b.Env))
	}
	if b.Coverage != nil {
		opts = append(opts, matrix.WithCoverage(*b.Coverage))
	}
	if b.Platform != nil {
		opts = append(opts, matrix.WithPlatform(*b.Platform))
	}
	if b.CommandArgs != nil {
		opts = append(opts, matrix.WithCommandArgs(*b.CommandArgs))
	}

	return opts
}
