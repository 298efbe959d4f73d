/*
Package maven resolves Maven repository targets and generates the Gradle publication
configuration used to publish a container to them.
repository_url.go classifies repository URLs and expands the home directory shorthand and
environment variable placeholders they may contain.
*/
package maven

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jfrog/jfrog-client-go/utils/errorutils"
	"github.com/jfrog/jfrog-client-go/utils/log"
)

var (
	// ^file:// Matches the double slash file scheme only, a single slash "file:" form is not a local path
	// (.*) Capture group 1: the filesystem path
	// example: file:///home/user/.m2/repository
	localRepoUrlRe = regexp.MustCompile(`^file://(.*)`)

	// \$\{ Matches the literal ${ prefix, ([^}]+) Capture group 1: one or more characters that are not }
	// The captured text is a pipe delimited list of environment variable names tried in order
	// example: ${MAVEN_REPO|HOME}
	envPlaceHolderRe = regexp.MustCompile(`\$\{([^}]+)\}`)
)

type RepositoryType string

const (
	RemoteRepository  RepositoryType = "remote"
	LocalRepository   RepositoryType = "local"
	UnknownRepository RepositoryType = "unknown"
)

// EnvLookup reports the value of an environment variable and whether it is set.
type EnvLookup func(key string) (string, bool)

// ClassifyRepositoryUrl returns the repository type based on the url prefix only.
// "http" covers both http and https.
func ClassifyRepositoryUrl(repoUrl string) RepositoryType {
	switch {
	case strings.HasPrefix(repoUrl, prefixHttp):
		return RemoteRepository
	case strings.HasPrefix(repoUrl, prefixFile):
		return LocalRepository
	default:
		return UnknownRepository
	}
}

// NormalizeRepositoryUrl replaces the first "file:~" and "file://~" occurrences with the home directory,
// then substitutes every ${VAR1|VAR2|...} placeholder with the value of the first non-empty variable,
// or with "undefined" when none is set.
func NormalizeRepositoryUrl(repoUrl, homeDir string, lookupEnv EnvLookup) string {
	repoUrl = strings.Replace(repoUrl, homeFileTilde, prefixFile+":"+homeDir, 1)
	repoUrl = strings.Replace(repoUrl, homeFileSlashTilde, prefixFile+"://"+homeDir, 1)
	return envPlaceHolderRe.ReplaceAllStringFunc(repoUrl, func(match string) string {
		// strip ${ and }
		names := match[2 : len(match)-1]
		for _, name := range strings.Split(names, placeholderSep) {
			if lookupEnv == nil {
				break
			}
			if val, ok := lookupEnv(name); ok && val != "" {
				return val
			}
		}
		log.Debug("No environment variable is set for placeholder " + match)
		return keywordUndefined
	})
}

// ProcessRepositoryUrl normalizes the url using the current user home directory and process environment.
func ProcessRepositoryUrl(repoUrl string) string {
	return NormalizeRepositoryUrl(repoUrl, userHomeDir(), os.LookupEnv)
}

// IsLocalRepositoryUrl returns true if the url holds an extractable filesystem path (file://...).
func IsLocalRepositoryUrl(repoUrl string) bool {
	return repoUrl != "" && localRepoUrlRe.MatchString(repoUrl)
}

// ExtractLocalPath returns the filesystem path of a file:// repository url.
// Callers should check IsLocalRepositoryUrl first.
func ExtractLocalPath(repoUrl string) (string, error) {
	match := localRepoUrlRe.FindStringSubmatch(repoUrl)
	if len(match) < 2 {
		return "", errorutils.CheckErrorf("'%s' is not a local Maven repository url, expected the file:// scheme", repoUrl)
	}
	return match[1], nil
}

// DefaultLocalRepositoryDir returns <home>/.m2/repository.
func DefaultLocalRepositoryDir(homeDir string) string {
	return filepath.Join(homeDir, mavenHomeDirName, mavenRepositoryDirName)
}

// DefaultLocalRepositoryUrl returns the file:// url of the default local repository.
func DefaultLocalRepositoryUrl(homeDir string) string {
	return prefixFile + "://" + DefaultLocalRepositoryDir(homeDir)
}

// DefaultRepositoryUrl is the publication target used when none is configured.
// It uses the single slash "file:" form, so no directory is created for it.
func DefaultRepositoryUrl(homeDir string) string {
	return prefixFile + ":" + DefaultLocalRepositoryDir(homeDir)
}

func userHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Debug("Couldn't find user home directory: " + err.Error())
		return ""
	}
	return homeDir
}
