package cli

import (
	"github.com/jfrog/jfrog-cli-core/v2/common/cliutils"
	"github.com/jfrog/jfrog-cli-core/v2/plugins/components"
	artifactoryCLI "github.com/jfrog/jfrog-cli-maven-publisher/artifactory/cli"
)

func GetJfrogCliMavenPublisherApp() components.App {
	app := components.CreateEmbeddedApp(
		"maven-publisher",
		[]components.Command{},
	)
	app.Subcommands = append(app.Subcommands, components.Namespace{
		Name:        string(cliutils.Rt),
		Description: "Artifactory commands.",
		Commands:    artifactoryCLI.GetCommands(),
		Category:    "Command Namespaces",
	})
	return app
}
