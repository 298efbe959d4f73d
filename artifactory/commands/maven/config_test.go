package maven

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearPublisherEnv unsets the publisher environment variables for the test duration.
func clearPublisherEnv(t *testing.T) {
	for _, env := range []string{envUrl, envGroupId, envArtifactId, envMavenUser, envMavenPassword} {
		t.Setenv(env, "")
	}
}

func TestLoadPublisherConfigInline(t *testing.T) {
	clearPublisherEnv(t)
	cfg, err := LoadPublisherConfig(`{"url": "https://mymavenrepo.com/releases", "mavenUser": "myUser", "mavenPassword": "[myPasswordVar]"}`)
	require.NoError(t, err)
	assert.Equal(t, "https://mymavenrepo.com/releases", cfg.Url)
	assert.Equal(t, "myUser", cfg.MavenUser)
	assert.Equal(t, "[myPasswordVar]", cfg.MavenPassword)
	assert.Empty(t, cfg.GroupId)
	assert.Empty(t, cfg.ArtifactId)
	assert.Equal(t, Credentials{User: "myUser", Password: "[myPasswordVar]"}, cfg.Credentials())
}

func TestLoadPublisherConfigFile(t *testing.T) {
	clearPublisherEnv(t)
	configPath := filepath.Join(t.TempDir(), "maven-publisher.yml")
	writeTestFile(t, configPath, `url: file://~/.m2/repository
groupId: com.example
artifactId: my-container
`)

	cfg, err := LoadPublisherConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, PublisherConfig{
		Url:        "file://~/.m2/repository",
		GroupId:    "com.example",
		ArtifactId: "my-container",
	}, *cfg)
}

func TestLoadPublisherConfigEnv(t *testing.T) {
	clearPublisherEnv(t)
	t.Setenv(envUrl, "http://localhost:8081/artifactory/maven-local")
	t.Setenv(envMavenUser, "envUser")

	cfg, err := LoadPublisherConfig("")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8081/artifactory/maven-local", cfg.Url)
	assert.Equal(t, "envUser", cfg.MavenUser)

	// Environment variables take precedence over the configuration source.
	cfg, err = LoadPublisherConfig(`{"mavenUser": "configUser", "groupId": "com.example"}`)
	require.NoError(t, err)
	assert.Equal(t, "envUser", cfg.MavenUser)
	assert.Equal(t, "com.example", cfg.GroupId)
}

func TestLoadPublisherConfigErrors(t *testing.T) {
	clearPublisherEnv(t)

	_, err := LoadPublisherConfig(`{"mavenUser": `)
	assert.ErrorContains(t, err, "inline publisher configuration")

	_, err = LoadPublisherConfig(filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorContains(t, err, "missing.yml")
}

func TestPublisherConfigMerge(t *testing.T) {
	cfg := &PublisherConfig{Url: "file://~/repo", GroupId: "com.example", MavenUser: "user"}
	cfg.Merge(PublisherConfig{GroupId: "com.override", ArtifactId: "lib", MavenPassword: "password"})
	assert.Equal(t, PublisherConfig{
		Url:           "file://~/repo",
		GroupId:       "com.override",
		ArtifactId:    "lib",
		MavenUser:     "user",
		MavenPassword: "password",
	}, *cfg)
}
