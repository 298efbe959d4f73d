package maven

import (
	"fmt"
	"strings"
)

// Credentials holds the Maven user and password. An empty field is treated as absent.
// A value wrapped in brackets, like [mavenUser], is emitted as a Gradle variable instead of a string.
type Credentials struct {
	User     string
	Password string
}

func (c Credentials) isEmpty() bool {
	return c.User == "" && c.Password == ""
}

// isVariableMode returns true if either field is a bracket wrapped variable.
// Both fields are then rendered as variables, see renderCredentialsBlock.
func (c Credentials) isVariableMode() bool {
	return isVariableCredential(c.User) || isVariableCredential(c.Password)
}

func isVariableCredential(val string) bool {
	return val != "" && val[0] == variableMarker
}

// BuildRepositoryStatement builds the repositories statement injected in the publishing block of the
// container build.gradle. The boolean result is false when the url type is unknown, in which case
// no repository should be configured.
//
// Result for a remote repository with --maven-user myUser --maven-password myPassword:
//
//	repositories {
//	    maven {
//	        url = "http://domain.name:8081/repositories"
//	        credentials {
//	            username = "myUser"
//	            password = "myPassword"
//	        }
//	    }
//	}
//
// With [myUserVar] and [myPasswordVar] the values are emitted without quotes and brackets.
func BuildRepositoryStatement(repoUrl string, creds Credentials) (string, bool) {
	switch ClassifyRepositoryUrl(repoUrl) {
	case LocalRepository:
		// Credentials are never rendered for a filesystem repository.
		// Replace \ by \\ for Windows paths.
		return renderRepositoryStatement(fmt.Sprintf(`url = "%s"`, strings.ReplaceAll(repoUrl, `\`, `\\`))), true
	case RemoteRepository:
		// TrimSpace removes the empty line left when there is no credentials block.
		mavenRepository := strings.TrimSpace(fmt.Sprintf(`url = "%s"%s`, repoUrl, renderCredentialsBlock(creds)))
		return renderRepositoryStatement(mavenRepository), true
	default:
		return "", false
	}
}

func renderRepositoryStatement(mavenRepository string) string {
	return `
    repositories {
        maven {
            ` + mavenRepository + `
        }
    }`
}

// renderCredentialsBlock renders the credentials of a remote repository.
// Once one field is a variable, the other one is rendered as a variable too, with its first and last
// characters stripped, even if it was given as a plain value.
func renderCredentialsBlock(creds Credentials) string {
	var username, password string
	switch {
	case creds.isVariableMode():
		username = variableName(creds.User)
		password = variableName(creds.Password)
	case !creds.isEmpty():
		username = quote(valueOrUndefined(creds.User))
		password = quote(valueOrUndefined(creds.Password))
	default:
		return ""
	}
	return `
            credentials {
                username = ` + username + `
                password = ` + password + `
            }`
}

// variableName strips the surrounding brackets of [name].
func variableName(val string) string {
	if val == "" {
		return keywordUndefined
	}
	if len(val) < 2 {
		return ""
	}
	return val[1 : len(val)-1]
}

func valueOrUndefined(val string) string {
	if val == "" {
		return keywordUndefined
	}
	return val
}

func quote(val string) string {
	return `"` + val + `"`
}
