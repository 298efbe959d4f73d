package cli

import (
	"fmt"

	"github.com/jfrog/jfrog-cli-core/v2/common/commands"
	pluginsCommon "github.com/jfrog/jfrog-cli-core/v2/plugins/common"
	"github.com/jfrog/jfrog-cli-core/v2/plugins/components"
	"github.com/jfrog/jfrog-cli-maven-publisher/artifactory/commands/maven"
	"github.com/jfrog/jfrog-cli-maven-publisher/artifactory/docs/mavenpublish"
	"github.com/jfrog/jfrog-cli-maven-publisher/artifactory/docs/mavenstatement"
	"github.com/jfrog/jfrog-client-go/utils/errorutils"
	"github.com/jfrog/jfrog-client-go/utils/log"
)

const (
	mavenCategory = "Package Managers"

	urlFlag           = "url"
	groupIdFlag       = "group-id"
	artifactIdFlag    = "artifact-id"
	mavenUserFlag     = "maven-user"
	mavenPasswordFlag = "maven-password"
	configFlag        = "config"
)

var execFunc = commands.Exec

func GetCommands() []components.Command {
	return []components.Command{
		{
			Name:        "maven-publish",
			Aliases:     []string{"mvnp"},
			Flags:       getMavenPublishFlags(),
			Description: mavenpublish.GetDescription(),
			Arguments:   mavenpublish.GetArguments(),
			Action:      mavenPublishCmd,
			Category:    mavenCategory,
		},
		{
			Name:        "maven-statement",
			Aliases:     []string{"mvns"},
			Flags:       getCredentialsFlags(),
			Description: mavenstatement.GetDescription(),
			Arguments:   mavenstatement.GetArguments(),
			Action:      mavenStatementCmd,
			Category:    mavenCategory,
		},
	}
}

func getCredentialsFlags() []components.Flag {
	return []components.Flag{
		components.NewStringFlag(mavenUserFlag, "Maven repository user. Wrap the value in brackets, like [mavenUser], to reference a Gradle property instead of a plain value.", components.SetMandatoryFalse()),
		components.NewStringFlag(mavenPasswordFlag, "Maven repository password. Wrap the value in brackets, like [mavenPassword], to reference a Gradle property instead of a plain value.", components.SetMandatoryFalse()),
	}
}

func getMavenPublishFlags() []components.Flag {
	return append([]components.Flag{
		components.NewStringFlag(urlFlag, "Maven repository url. Default: file:<home>/.m2/repository", components.SetMandatoryFalse()),
		components.NewStringFlag(groupIdFlag, "Group ID of the published artifact. Default: "+maven.DefaultGroupId, components.SetMandatoryFalse()),
		components.NewStringFlag(artifactIdFlag, "Artifact ID of the published artifact. Default: "+maven.DefaultArtifactId, components.SetMandatoryFalse()),
		components.NewStringFlag(configFlag, "Publisher configuration, as an inline JSON object or the path of a yaml/json file. Flags override its values.", components.SetMandatoryFalse()),
	}, getCredentialsFlags()...)
}

func mavenPublishCmd(c *components.Context) error {
	if c.GetNumberOfArgs() != 2 {
		return wrongNumberOfArgs(c, 2)
	}
	publisherConfig, err := getPublisherConfig(c)
	if err != nil {
		return err
	}
	publishCmd := maven.NewMavenPublishCommand().
		SetContainerPath(c.GetArgumentAt(0)).
		SetContainerVersion(c.GetArgumentAt(1)).
		SetPublisherConfig(*publisherConfig)
	if err = execFunc(publishCmd); err != nil {
		return err
	}
	maven.PrintPublicationSummary(publishCmd.Summary())
	return nil
}

func mavenStatementCmd(c *components.Context) error {
	if c.GetNumberOfArgs() != 1 {
		return wrongNumberOfArgs(c, 1)
	}
	statement, err := getRepositoryStatement(c.GetArgumentAt(0), getCredentials(c))
	if err != nil {
		return err
	}
	log.Output(statement)
	return nil
}

func getRepositoryStatement(repoUrl string, creds maven.Credentials) (string, error) {
	repoUrl = maven.ProcessRepositoryUrl(repoUrl)
	statement, ok := maven.BuildRepositoryStatement(repoUrl, creds)
	if !ok {
		return "", errorutils.CheckErrorf("unknown Maven repository type for url '%s', expected an http(s):// or file: url", repoUrl)
	}
	return statement, nil
}

// getPublisherConfig loads the --config source and the environment, then applies the flags on top.
func getPublisherConfig(c *components.Context) (*maven.PublisherConfig, error) {
	publisherConfig, err := maven.LoadPublisherConfig(c.GetStringFlagValue(configFlag))
	if err != nil {
		return nil, err
	}
	creds := getCredentials(c)
	return publisherConfig.Merge(maven.PublisherConfig{
		Url:           c.GetStringFlagValue(urlFlag),
		GroupId:       c.GetStringFlagValue(groupIdFlag),
		ArtifactId:    c.GetStringFlagValue(artifactIdFlag),
		MavenUser:     creds.User,
		MavenPassword: creds.Password,
	}), nil
}

func getCredentials(c *components.Context) maven.Credentials {
	return maven.Credentials{
		User:     c.GetStringFlagValue(mavenUserFlag),
		Password: c.GetStringFlagValue(mavenPasswordFlag),
	}
}

func wrongNumberOfArgs(c *components.Context, expected int) error {
	if c.PrintCommandHelp != nil {
		return pluginsCommon.WrongNumberOfArgumentsHandler(c)
	}
	return fmt.Errorf("wrong number of arguments (%d), expected %d", c.GetNumberOfArgs(), expected)
}
