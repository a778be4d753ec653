package app

import (
	"strings"

	"github.com/vk/cimatrix/internal/matrix"
)

// defaultBuilds is the built-in registration sequence used when no
// build-definition path is configured: the matrix the project ships to its
// own CI.
func defaultBuilds() [][]matrix.Option {
	return [][]matrix.Option{
		// Debian bookworm: defaults only
		{matrix.WithName("bookworm")},

		// Debian bookworm: 32 bit
		{
			matrix.WithName("bookworm - 32 bit"),
			matrix.WithPlatform("linux/386"),
		},

		// Debian bookworm: gcc-12, distcheck
		{
			matrix.WithName("bookworm - gcc-12,distcheck"),
			matrix.WithEnv(map[string]string{
				"CC":        "gcc-12",
				"CXX":       "g++12",
				"DISTCHECK": "t",
			}),
		},

		// Debian bookworm: clang-15, chain-lint, long workdir
		{
			matrix.WithName("bookworm - clang-15,chain-lint"),
			matrix.WithEnv(map[string]string{
				"CC":         "clang-15",
				"CXX":        "clang++-15",
				"chain_lint": "t",
			}),
			matrix.WithCommandArgs("--workdir=/usr/src/" + strings.Repeat("workdir/", 15)),
		},

		// Coverage instrumentation
		{
			matrix.WithName("coverage"),
			matrix.WithCoverage(true),
			matrix.WithJobs(2),
		},

		// Ubuntu 20.04
		{
			matrix.WithName("focal"),
			matrix.WithImage("focal"),
		},

		// RHEL 8 clone
		{
			matrix.WithName("el8"),
			matrix.WithImage("el8"),
		},

		// Fedora 34 with the gcc static analyzer
		{
			matrix.WithName("fedora34"),
			matrix.WithImage("fedora34"),
			matrix.WithEnv(map[string]string{"CFLAGS": "-fanalyzer"}),
		},

		// Fedora 38 with address sanitizer
		{
			matrix.WithName("fedora38 - asan"),
			matrix.WithImage("fedora38"),
			matrix.WithArgs("--enable-sanitizers"),
		},
	}
}
