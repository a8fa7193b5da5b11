// Where: internal/compose/services.go
// What: Declared-service enumeration from compose files.
// Why: Health and log commands need the service set without a running engine.
package compose

import (
	"context"
	"fmt"
	"sort"

	composecli "github.com/compose-spec/compose-go/v2/cli"
)

// DeclaredServices parses the environment's compose file set and
// returns the declared service names in sorted order. The extra env
// entries feed compose interpolation (port variables in particular).
func DeclaredServices(ctx context.Context, projectName string, files []string, env []string) ([]string, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("no compose files given")
	}

	options, err := composecli.NewProjectOptions(
		files,
		composecli.WithOsEnv,
		composecli.WithEnv(env),
		composecli.WithName(projectName),
	)
	if err != nil {
		return nil, fmt.Errorf("compose project options: %w", err)
	}

	project, err := options.LoadProject(ctx)
	if err != nil {
		return nil, fmt.Errorf("load compose project: %w", err)
	}

	names := project.ServiceNames()
	sort.Strings(names)
	return names, nil
}
