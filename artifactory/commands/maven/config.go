package maven

import (
	"strings"

	"github.com/jfrog/jfrog-client-go/utils/errorutils"
	"github.com/spf13/viper"
)

const (
	keyUrl           = "url"
	keyGroupId       = "groupId"
	keyArtifactId    = "artifactId"
	keyMavenUser     = "mavenUser"
	keyMavenPassword = "mavenPassword"

	envUrl           = "JFROG_CLI_MAVEN_URL"
	envGroupId       = "JFROG_CLI_MAVEN_GROUP_ID"
	envArtifactId    = "JFROG_CLI_MAVEN_ARTIFACT_ID"
	envMavenUser     = "JFROG_CLI_MAVEN_USER"
	envMavenPassword = "JFROG_CLI_MAVEN_PASSWORD"
)

// PublisherConfig holds the publication settings that are not positional arguments.
// Empty values are replaced by defaults when the publication runs.
type PublisherConfig struct {
	Url           string `mapstructure:"url"`
	GroupId       string `mapstructure:"groupId"`
	ArtifactId    string `mapstructure:"artifactId"`
	MavenUser     string `mapstructure:"mavenUser"`
	MavenPassword string `mapstructure:"mavenPassword"`
}

func (pc *PublisherConfig) Credentials() Credentials {
	return Credentials{User: pc.MavenUser, Password: pc.MavenPassword}
}

// LoadPublisherConfig reads the publisher configuration from source and the JFROG_CLI_MAVEN_* environment
// variables, which take precedence over source. source is either an inline JSON object, as in
// --config '{"mavenUser": "myUser"}', or the path of a yaml/json file.
// An empty source reads the environment only.
func LoadPublisherConfig(source string) (*PublisherConfig, error) {
	v := viper.New()

	_ = v.BindEnv(keyUrl, envUrl)
	_ = v.BindEnv(keyGroupId, envGroupId)
	_ = v.BindEnv(keyArtifactId, envArtifactId)
	_ = v.BindEnv(keyMavenUser, envMavenUser)
	_ = v.BindEnv(keyMavenPassword, envMavenPassword)

	source = strings.TrimSpace(source)
	switch {
	case source == "":
	case strings.HasPrefix(source, "{"):
		v.SetConfigType("json")
		if err := v.ReadConfig(strings.NewReader(source)); err != nil {
			return nil, errorutils.CheckErrorf("failed to parse the inline publisher configuration: %w", err)
		}
	default:
		v.SetConfigFile(source)
		if err := v.ReadInConfig(); err != nil {
			return nil, errorutils.CheckErrorf("failed to read the publisher configuration file %s: %w", source, err)
		}
	}

	cfg := new(PublisherConfig)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errorutils.CheckError(err)
	}
	return cfg, nil
}

// Merge overrides the configuration with the non-empty values of other.
func (pc *PublisherConfig) Merge(other PublisherConfig) *PublisherConfig {
	if other.Url != "" {
		pc.Url = other.Url
	}
	if other.GroupId != "" {
		pc.GroupId = other.GroupId
	}
	if other.ArtifactId != "" {
		pc.ArtifactId = other.ArtifactId
	}
	if other.MavenUser != "" {
		pc.MavenUser = other.MavenUser
	}
	if other.MavenPassword != "" {
		pc.MavenPassword = other.MavenPassword
	}
	return pc
}
