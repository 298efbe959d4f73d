package mavenpublish

import "github.com/jfrog/jfrog-cli-core/v2/plugins/components"

var Usage = []string{"rt mvnp <container-path> <container-version>"}

func GetDescription() string {
	return "Publish an Android container to a Maven repository using its Gradle wrapper."
}

func GetArguments() []components.Argument {
	return []components.Argument{
		{
			Name:        "container-path",
			Description: "Path to the container root. The publication is appended to its lib/build.gradle file.",
		},
		{
			Name:        "container-version",
			Description: "The version of the published artifact.",
		},
	}
}
