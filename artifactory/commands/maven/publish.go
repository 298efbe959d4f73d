package maven

import (
	"fmt"
	"os"
	"path/filepath"

	gofrogcmd "github.com/jfrog/gofrog/io"
	"github.com/jfrog/jfrog-cli-core/v2/utils/config"
	"github.com/jfrog/jfrog-client-go/utils/errorutils"
	"github.com/jfrog/jfrog-client-go/utils/io/fileutils"
	"github.com/jfrog/jfrog-client-go/utils/log"
	"github.com/pkg/errors"
)

// MavenPublishCommand appends a Maven publication to a container library module and runs the Gradle
// wrapper to build and publish it.
type MavenPublishCommand struct {
	containerPath    string
	containerVersion string
	publisherConfig  PublisherConfig
	homeDir          string
	lookupEnv        EnvLookup
	runner           func(gofrogcmd.CmdConfig) error
	summary          *PublicationSummary
}

func NewMavenPublishCommand() *MavenPublishCommand {
	return &MavenPublishCommand{
		homeDir:   userHomeDir(),
		lookupEnv: os.LookupEnv,
		runner:    gofrogcmd.RunCmd,
	}
}

func (mpc *MavenPublishCommand) SetContainerPath(containerPath string) *MavenPublishCommand {
	mpc.containerPath = containerPath
	return mpc
}

func (mpc *MavenPublishCommand) SetContainerVersion(containerVersion string) *MavenPublishCommand {
	mpc.containerVersion = containerVersion
	return mpc
}

func (mpc *MavenPublishCommand) SetPublisherConfig(publisherConfig PublisherConfig) *MavenPublishCommand {
	mpc.publisherConfig = publisherConfig
	return mpc
}

// SetHomeDir sets the home directory used for the default url and the file:~ shorthand.
func (mpc *MavenPublishCommand) SetHomeDir(homeDir string) *MavenPublishCommand {
	mpc.homeDir = homeDir
	return mpc
}

func (mpc *MavenPublishCommand) SetEnvLookup(lookupEnv EnvLookup) *MavenPublishCommand {
	mpc.lookupEnv = lookupEnv
	return mpc
}

// SetRunner replaces the function running the Gradle wrapper.
func (mpc *MavenPublishCommand) SetRunner(runner func(gofrogcmd.CmdConfig) error) *MavenPublishCommand {
	mpc.runner = runner
	return mpc
}

func (mpc *MavenPublishCommand) ServerDetails() (*config.ServerDetails, error) {
	return nil, nil
}

func (mpc *MavenPublishCommand) CommandName() string {
	return "rt_maven_publish"
}

// Summary returns the summary of the last successful Run, or nil.
func (mpc *MavenPublishCommand) Summary() *PublicationSummary {
	return mpc.summary
}

func (mpc *MavenPublishCommand) Run() error {
	if mpc.containerPath == "" {
		return errorutils.CheckErrorf("container path cannot be empty")
	}
	if mpc.containerVersion == "" {
		return errorutils.CheckErrorf("container version cannot be empty")
	}
	mpc.applyDefaults()

	repoUrl := NormalizeRepositoryUrl(mpc.publisherConfig.Url, mpc.homeDir, mpc.lookupEnv)
	if IsLocalRepositoryUrl(repoUrl) {
		if err := createLocalRepositoryDirIfNotExist(repoUrl); err != nil {
			return err
		}
	}

	creds := mpc.publisherConfig.Credentials()
	for _, name := range FindUndefinedCredentialVariables(mpc.containerPath, creds) {
		log.Warn(fmt.Sprintf("The credential variable '%s' is not defined in any gradle.properties file or %s%s environment variable", name, envProjectPrefix, name))
	}

	statement, ok := BuildRepositoryStatement(repoUrl, creds)
	if !ok {
		log.Warn(fmt.Sprintf("Unknown Maven repository type for url '%s', no publication repository will be configured", repoUrl))
	}
	script, err := BuildPublicationScript(PublicationOptions{
		GroupId:             mpc.publisherConfig.GroupId,
		ArtifactId:          mpc.publisherConfig.ArtifactId,
		Version:             mpc.containerVersion,
		RepositoryStatement: statement,
	})
	if err != nil {
		return err
	}
	if err = appendToBuildGradle(filepath.Join(mpc.containerPath, libDirName, buildGradleFileName), script); err != nil {
		return err
	}

	log.Info("[=== Starting build and publication ===]")
	if err = mpc.runner(NewGradleWrapperCommand(mpc.containerPath, gradleTaskPublish)); err != nil {
		return errorutils.CheckErrorf("Gradle publication failed: %w", err)
	}
	log.Info("[=== Completed build and publication of the Container ===]")
	log.Info(fmt.Sprintf("[Publication url : %s]", repoUrl))
	log.Info(fmt.Sprintf("[Artifact: %s:%s:%s ]", mpc.publisherConfig.GroupId, mpc.publisherConfig.ArtifactId, mpc.containerVersion))

	mpc.summary = &PublicationSummary{
		RepositoryUrl:  repoUrl,
		RepositoryType: ClassifyRepositoryUrl(repoUrl),
		GroupId:        mpc.publisherConfig.GroupId,
		ArtifactId:     mpc.publisherConfig.ArtifactId,
		Version:        mpc.containerVersion,
	}
	return nil
}

func (mpc *MavenPublishCommand) applyDefaults() {
	if mpc.publisherConfig.ArtifactId == "" {
		log.Debug("Using default artifactId: " + DefaultArtifactId)
		mpc.publisherConfig.ArtifactId = DefaultArtifactId
	}
	if mpc.publisherConfig.GroupId == "" {
		log.Debug("Using default groupId: " + DefaultGroupId)
		mpc.publisherConfig.GroupId = DefaultGroupId
	}
	if mpc.publisherConfig.Url == "" {
		defaultUrl := DefaultRepositoryUrl(mpc.homeDir)
		log.Debug("Using default url: " + defaultUrl)
		mpc.publisherConfig.Url = defaultUrl
	}
}

func createLocalRepositoryDirIfNotExist(repoUrl string) error {
	dir, err := ExtractLocalPath(repoUrl)
	if err != nil {
		return err
	}
	if fileutils.IsPathExists(dir, false) {
		log.Debug("Local Maven repository directory already exists")
		return nil
	}
	log.Debug("Local Maven repository directory does not exist, creating one.")
	return errorutils.CheckError(fileutils.CreateDirIfNotExist(dir))
}

func appendToBuildGradle(buildGradlePath, script string) (err error) {
	if !fileutils.IsPathExists(buildGradlePath, false) {
		return errorutils.CheckErrorf("couldn't find the container library build file: %s", buildGradlePath)
	}
	file, err := os.OpenFile(buildGradlePath, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return errorutils.CheckError(errors.Wrap(err, "failed to open "+buildGradlePath))
	}
	defer func() {
		if closeErr := file.Close(); err == nil && closeErr != nil {
			err = errorutils.CheckError(closeErr)
		}
	}()
	if _, err = file.WriteString(script); err != nil {
		return errorutils.CheckError(errors.Wrap(err, "failed to append the publication to "+buildGradlePath))
	}
	return nil
}
