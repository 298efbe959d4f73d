package mavenstatement

import "github.com/jfrog/jfrog-cli-core/v2/plugins/components"

var Usage = []string{"rt mvns <repository-url>"}

func GetDescription() string {
	return "Print the Gradle repositories statement generated for a Maven repository url."
}

func GetArguments() []components.Argument {
	return []components.Argument{
		{
			Name:        "repository-url",
			Description: "The Maven repository url. Supports http(s):// and file:// urls, the file:~ home directory shorthand and ${VAR1|VAR2} environment variable placeholders.",
		},
	}
}
