package step

import "github.com/bitrise-io/go-utils/v2/env"

var defaultInputs = map[string]string{
	"playlist_version":     playlistDefaultVersion,
	"fail_on_failed_tests": "no",
	"verbose_log":          "no",
}

const playlistDefaultVersion = "2.0"

// NewInputRepository returns an env.Repository which falls back to the default value of an
// unset step input, so the step can run without a step.yml providing them.
func NewInputRepository(osRepository env.Repository) env.Repository {
	return inputRepository{
		osRepository: osRepository,
	}
}

type inputRepository struct {
	osRepository env.Repository
}

// Get ...
func (r inputRepository) Get(key string) string {
	if value := r.osRepository.Get(key); value != "" {
		return value
	}
	return defaultInputs[key]
}

// Set ...
func (r inputRepository) Set(key, value string) error {
	return r.osRepository.Set(key, value)
}

// Unset ...
func (r inputRepository) Unset(key string) error {
	return r.osRepository.Unset(key)
}

// List ...
func (r inputRepository) List() []string {
	return r.osRepository.List()
}
