package checker

import (
	"errors"
	"testing"

	"github.com/kata-containers/check-versions/internal/manifest"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genField generates optional manifest field values (empty means absent)
func genField() gopter.Gen {
	return gen.OneGenOf(gen.Const(""), gen.RegexMatch(`^v?[0-9]{1,2}\.[0-9]{1,2}(\.[0-9]{1,2})?$`))
}

// genPresent generates non-empty field values
func genPresent() gopter.Gen {
	return gen.RegexMatch(`^[a-z0-9][a-z0-9.\-]{0,15}$`)
}

func TestCurrentVersion(t *testing.T) {
	tests := []struct {
		name      string
		component manifest.Component
		want      string
		wantErr   bool
	}{
		{"tag only", manifest.Component{Tag: "v1.0"}, "v1.0", false},
		{"branch only", manifest.Component{Branch: "main"}, "main", false},
		{"version only", manifest.Component{Version: "1.20"}, "1.20", false},
		{"tag wins", manifest.Component{Tag: "v2", Branch: "dev", Version: "1"}, "v2", false},
		{"branch beats version", manifest.Component{Branch: "dev", Version: "1"}, "dev", false},
		{"nothing declared", manifest.Component{Name: "gperf"}, "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CurrentVersion(tc.component)
			if tc.wantErr {
				if !errors.Is(err, ErrMissingVersion) {
					t.Errorf("expected ErrMissingVersion, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestCurrentVersionPrecedence(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("a populated tag is always returned", prop.ForAll(
		func(tag, branch, version string) bool {
			got, err := CurrentVersion(manifest.Component{Tag: tag, Branch: branch, Version: version})
			return err == nil && got == tag
		},
		genPresent(), genField(), genField(),
	))

	properties.Property("without a tag the branch is returned", prop.ForAll(
		func(branch, version string) bool {
			got, err := CurrentVersion(manifest.Component{Branch: branch, Version: version})
			return err == nil && got == branch
		},
		genPresent(), genField(),
	))

	properties.Property("no declared fields is ErrMissingVersion", prop.ForAll(
		func(name, url string) bool {
			_, err := CurrentVersion(manifest.Component{Name: name, URL: url})
			return errors.Is(err, ErrMissingVersion)
		},
		genPresent(), gen.AnyString(),
	))

	properties.TestingRun(t)
}
