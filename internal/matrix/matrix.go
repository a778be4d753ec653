package matrix

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// checkScript is the fixed entrypoint every generated command invokes.
const checkScript = "src/test/docker/docker-run-checks.sh"

// Defaults applied to a build when the corresponding option is not given.
const (
	DefaultImage = "bookworm"
	DefaultJobs  = 2
	DefaultArgs  = "--prefix=/usr" +
		" --sysconfdir=/etc" +
		" --with-systemdsystemunitdir=/etc/systemd/system" +
		" --localstatedir=/var"
)

// Environment keys the generator derives meaning from.
const (
	coverageKey  = "COVERAGE"
	distcheckKey = "DISTCHECK"
)

// Build is one row of the matrix: a single buildable configuration. The JSON
// field names are a wire format consumed by the downstream CI orchestrator
// and must not change.
type Build struct {
	Name          string            `json:"name,omitempty"`
	Env           map[string]string `json:"env"`
	Command       string            `json:"command"`
	Image         string            `json:"image"`
	Tag           string            `json:"tag,omitempty"`
	Branch        string            `json:"branch,omitempty"`
	Coverage      bool              `json:"coverage"`
	NeedsBuildx   bool              `json:"needs_buildx"`
	CreateRelease bool              `json:"create_release"`
}

// buildSpec collects the caller-supplied attributes of one Add call before
// the derived fields are computed.
type buildSpec struct {
	name        string
	image       string
	args        string
	jobs        int
	env         map[string]string
	coverage    bool
	platform    string
	commandArgs string
}

// Option customizes a single Add call.
type Option func(*buildSpec)

// WithName sets the human-readable label for the build.
func WithName(name string) Option {
	return func(s *buildSpec) { s.name = name }
}

// WithImage sets the container image the build runs in.
func WithImage(image string) Option {
	return func(s *buildSpec) { s.image = image }
}

// WithArgs replaces the default configure-style argument string.
func WithArgs(args string) Option {
	return func(s *buildSpec) { s.args = args }
}

// WithJobs sets the parallelism passed to the checker script.
func WithJobs(jobs int) Option {
	return func(s *buildSpec) { s.jobs = jobs }
}

// WithEnv sets extra environment variables for the build. The generator
// copies the map, so the caller's map is never mutated.
func WithEnv(env map[string]string) Option {
	return func(s *buildSpec) { s.env = env }
}

// WithCoverage marks the build as producing coverage artifacts.
func WithCoverage(coverage bool) Option {
	return func(s *buildSpec) { s.coverage = coverage }
}

// WithPlatform requests a non-default target platform, e.g. "linux/386".
func WithPlatform(platform string) Option {
	return func(s *buildSpec) { s.platform = platform }
}

// WithCommandArgs appends free-form text to the generated command line.
func WithCommandArgs(text string) Option {
	return func(s *buildSpec) { s.commandArgs = text }
}

// Matrix accumulates build descriptors for one CI run. The run context
// (branch or tag) is derived once at construction and copied onto every
// build; descriptors are append-only and never mutated after registration.
type Matrix struct {
	branch string
	tag    string
	builds []Build
}

// New creates a generator for one run. ref is the source-control reference
// that triggered the run (e.g. "refs/heads/main" or "refs/tags/v1.0"); an
// empty or unrecognized reference yields a run with neither branch nor tag,
// so the generator still works outside the usual CI trigger context.
func New(ref string) *Matrix {
	branch, tag := classifyRef(ref)
	return &Matrix{
		branch: branch,
		tag:    tag,
		builds: []Build{},
	}
}

// Branch returns the branch the run was triggered from, or "".
func (m *Matrix) Branch() string { return m.branch }

// Tag returns the release tag the run was triggered from, or "".
func (m *Matrix) Tag() string { return m.tag }

// Len returns the number of registered builds.
func (m *Matrix) Len() int { return len(m.builds) }

// Add registers one build, deriving its command line, environment and
// release flags from the supplied options and the run context.
func (m *Matrix) Add(opts ...Option) {
	spec := buildSpec{
		image: DefaultImage,
		args:  DefaultArgs,
		jobs:  DefaultJobs,
	}
	for _, opt := range opts {
		opt(&spec)
	}

	env := make(map[string]string, len(spec.env)+1)
	for k, v := range spec.env {
		env[k] = v
	}

	extra := spec.commandArgs
	needsBuildx := false
	if spec.platform != "" {
		extra = appendToken(extra, "--platform="+spec.platform)
		needsBuildx = true
	}

	parts := []string{checkScript, fmt.Sprintf("-j%d", spec.jobs), "--image=" + spec.image}
	if spec.args != "" {
		parts = append(parts, spec.args)
	}
	if extra != "" {
		parts = append(parts, extra)
	}
	command := strings.Join(parts, " ")

	if spec.coverage {
		env[coverageKey] = "t"
	}

	createRelease := false
	if _, ok := env[distcheckKey]; ok && m.tag != "" {
		createRelease = true
	}

	m.builds = append(m.builds, Build{
		Name:          spec.name,
		Env:           env,
		Command:       command,
		Image:         spec.image,
		Tag:           m.tag,
		Branch:        m.branch,
		Coverage:      spec.coverage,
		NeedsBuildx:   needsBuildx,
		CreateRelease: createRelease,
	})
}

// Builds returns the registered builds in registration order.
func (m *Matrix) Builds() []Build {
	out := make([]Build, len(m.builds))
	copy(out, m.builds)
	return out
}

// document is the top-level wire shape consumed by the CI orchestrator.
type document struct {
	Include []Build `json:"include"`
}

// MarshalJSON renders the matrix as the compact {"include":[...]} document.
func (m *Matrix) MarshalJSON() ([]byte, error) {
	return json.Marshal(document{Include: m.builds})
}

// Encode writes the document to w as a single line. The document is only
// meaningful as a whole, so any write error is returned to the caller.
func (m *Matrix) Encode(w io.Writer) error {
	return json.NewEncoder(w).Encode(m)
}

// String returns the compact document form of the matrix.
func (m *Matrix) String() string {
	b, err := json.Marshal(m)
	if err != nil {
		return ""
	}
	return string(b)
}

// appendToken appends tok to text with a single separating space.
func appendToken(text, tok string) string {
	if text == "" {
		return tok
	}
	return text + " " + tok
}
