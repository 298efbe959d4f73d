package maven

import (
	"os"
	"path/filepath"
	"strings"

	buildinfoflexpack "github.com/jfrog/build-info-go/flexpack/gradle"
	"github.com/jfrog/jfrog-client-go/utils/io/fileutils"
	"github.com/jfrog/jfrog-client-go/utils/log"
	"golang.org/x/exp/slices"
	"gopkg.in/ini.v1"
)

var gradlePropertiesLoadOptions = ini.LoadOptions{
	Loose:                   true,
	IgnoreInlineComment:     true,
	AllowBooleanKeys:        true,
	SkipUnrecognizableLines: true,
	KeyValueDelimiters:      "=:",
}

// FindUndefinedCredentialVariables returns the variable names of bracket wrapped credentials that no
// Gradle property source defines. Gradle resolves these names as project properties when it evaluates
// the publication script, so an undefined name fails the build late.
func FindUndefinedCredentialVariables(containerPath string, creds Credentials) []string {
	if !creds.isVariableMode() {
		return nil
	}
	var names []string
	for _, val := range []string{creds.User, creds.Password} {
		name := variableName(val)
		if name == "" || name == keywordUndefined || slices.Contains(names, name) {
			continue
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil
	}

	props := collectGradleProperties(containerPath)
	var undefined []string
	for _, name := range names {
		if props[name] == "" {
			undefined = append(undefined, name)
		}
	}
	return undefined
}

// collectGradleProperties gathers the project properties visible to the container build.
// Later sources override earlier ones.
func collectGradleProperties(containerPath string) map[string]string {
	props := make(map[string]string)
	merge := func(source map[string]string) {
		for k, v := range source {
			if v != "" {
				props[k] = v
			}
		}
	}

	// 1. GRADLE_USER_HOME gradle.properties
	if home := buildinfoflexpack.GetGradleUserHome(); home != "" {
		merge(readPropertiesFile(filepath.Join(home, gradlePropertiesFileName)))
	}

	// 2. Container root and library module gradle.properties
	if sanitizedContainerPath, err := buildinfoflexpack.SanitizePath(containerPath); err == nil {
		merge(readPropertiesFile(filepath.Join(sanitizedContainerPath, gradlePropertiesFileName)))
		merge(readPropertiesFile(filepath.Join(sanitizedContainerPath, libDirName, gradlePropertiesFileName)))
	}

	// 3. ORG_GRADLE_PROJECT_<name> environment variables
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envProjectPrefix) {
			continue
		}
		parts := strings.SplitN(env, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0][gradleEnvPrefixLen:])
		val := strings.TrimSpace(parts[1])
		if key != "" && val != "" {
			props[key] = val
		}
	}
	return props
}

func readPropertiesFile(path string) map[string]string {
	m := make(map[string]string)
	if !fileutils.IsPathExists(path, false) {
		return m
	}
	cfg, err := ini.LoadSources(gradlePropertiesLoadOptions, path)
	if err != nil {
		log.Debug("Couldn't read " + path + ": " + err.Error())
		return m
	}
	for _, key := range cfg.Section(ini.DefaultSection).Keys() {
		if val := strings.TrimSpace(key.String()); val != "" {
			m[key.Name()] = val
		}
	}
	return m
}
