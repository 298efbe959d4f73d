package maven

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func expectedStatement(mavenRepository string) string {
	return `
    repositories {
        maven {
            ` + mavenRepository + `
        }
    }`
}

func expectedCredentialsBlock(username, password string) string {
	return `
            credentials {
                username = ` + username + `
                password = ` + password + `
            }`
}

func TestBuildRepositoryStatementUnknown(t *testing.T) {
	for _, url := range []string{unknownRepoUrl, "", "ftp://mymavenrepo.com"} {
		t.Run(url, func(t *testing.T) {
			statement, ok := BuildRepositoryStatement(url, Credentials{User: "user", Password: "password"})
			assert.False(t, ok)
			assert.Empty(t, statement)
		})
	}
}

func TestBuildRepositoryStatementLocal(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		creds    Credentials
		expected string
	}{
		{
			name:     "File repository",
			url:      fileRepoUrl,
			expected: expectedStatement(`url = "` + fileRepoUrl + `"`),
		},
		{
			name:     "Credentials are ignored",
			url:      fileRepoUrl,
			creds:    Credentials{User: "user", Password: "password"},
			expected: expectedStatement(`url = "` + fileRepoUrl + `"`),
		},
		{
			name:     "Variable credentials are ignored",
			url:      fileRepoUrl,
			creds:    Credentials{User: "[user]", Password: "[password]"},
			expected: expectedStatement(`url = "` + fileRepoUrl + `"`),
		},
		{
			name:     "Backslashes are doubled",
			url:      `file://C:\Users\username\repo`,
			expected: expectedStatement(`url = "file://C:\\Users\\username\\repo"`),
		},
		{
			name:     "Single slash file scheme",
			url:      "file:/home/tester/.m2/repository",
			expected: expectedStatement(`url = "file:/home/tester/.m2/repository"`),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			statement, ok := BuildRepositoryStatement(tt.url, tt.creds)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, statement)
			assert.NotContains(t, statement, "credentials")
		})
	}
}

func TestBuildRepositoryStatementRemote(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		creds    Credentials
		expected string
	}{
		{
			name:     "http without credentials",
			url:      httpRepoUrl,
			expected: expectedStatement(`url = "` + httpRepoUrl + `"`),
		},
		{
			name:     "https without credentials",
			url:      httpsRepoUrl,
			expected: expectedStatement(`url = "` + httpsRepoUrl + `"`),
		},
		{
			name:     "http with plain user and password",
			url:      httpRepoUrl,
			creds:    Credentials{User: "user", Password: "password"},
			expected: expectedStatement(`url = "` + httpRepoUrl + `"` + expectedCredentialsBlock(`"user"`, `"password"`)),
		},
		{
			name:     "https with plain user and password",
			url:      httpsRepoUrl,
			creds:    Credentials{User: "user", Password: "password"},
			expected: expectedStatement(`url = "` + httpsRepoUrl + `"` + expectedCredentialsBlock(`"user"`, `"password"`)),
		},
		{
			name:     "http with user and password variables",
			url:      httpRepoUrl,
			creds:    Credentials{User: "[user]", Password: "[password]"},
			expected: expectedStatement(`url = "` + httpRepoUrl + `"` + expectedCredentialsBlock("user", "password")),
		},
		{
			name:     "https with user and password variables",
			url:      httpsRepoUrl,
			creds:    Credentials{User: "[uVar]", Password: "[pVar]"},
			expected: expectedStatement(`url = "` + httpsRepoUrl + `"` + expectedCredentialsBlock("uVar", "pVar")),
		},
		{
			name:     "Plain user only renders an undefined password",
			url:      httpRepoUrl,
			creds:    Credentials{User: "user"},
			expected: expectedStatement(`url = "` + httpRepoUrl + `"` + expectedCredentialsBlock(`"user"`, `"undefined"`)),
		},
		{
			name:     "Plain password only renders an undefined user",
			url:      httpRepoUrl,
			creds:    Credentials{Password: "password"},
			expected: expectedStatement(`url = "` + httpRepoUrl + `"` + expectedCredentialsBlock(`"undefined"`, `"password"`)),
		},
		{
			name:     "Variable user only renders an undefined password",
			url:      httpRepoUrl,
			creds:    Credentials{User: "[user]"},
			expected: expectedStatement(`url = "` + httpRepoUrl + `"` + expectedCredentialsBlock("user", "undefined")),
		},
		{
			name:     "Remote url backslashes are kept",
			url:      `https://host/repo\path`,
			expected: expectedStatement(`url = "https://host/repo\path"`),
		},
		{
			name:     "Bracket not in first position is a plain value",
			url:      httpRepoUrl,
			creds:    Credentials{User: "us[er]", Password: "pass"},
			expected: expectedStatement(`url = "` + httpRepoUrl + `"` + expectedCredentialsBlock(`"us[er]"`, `"pass"`)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			statement, ok := BuildRepositoryStatement(tt.url, tt.creds)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, statement)
		})
	}
}

// Once one credential is a variable, the other one is rendered as a variable too, with its first and
// last characters stripped. This captures the current output; a plain user would arguably stay quoted.
func TestBuildRepositoryStatementMixedCredentialsRegression(t *testing.T) {
	statement, ok := BuildRepositoryStatement(httpRepoUrl, Credentials{User: "myUser", Password: "[myPasswordVar]"})
	assert.True(t, ok)
	assert.Equal(t, expectedStatement(`url = "`+httpRepoUrl+`"`+expectedCredentialsBlock("yUse", "myPasswordVar")), statement)

	statement, ok = BuildRepositoryStatement(httpRepoUrl, Credentials{User: "[myUserVar]", Password: "myPassword"})
	assert.True(t, ok)
	assert.Equal(t, expectedStatement(`url = "`+httpRepoUrl+`"`+expectedCredentialsBlock("myUserVar", "yPasswor")), statement)
}

func TestBuildRepositoryStatementNoDanglingLine(t *testing.T) {
	statement, ok := BuildRepositoryStatement(httpRepoUrl, Credentials{})
	assert.True(t, ok)
	assert.Contains(t, statement, `url = "`+httpRepoUrl+`"`+"\n        }")
	assert.NotContains(t, statement, "\n\n")
}

func TestVariableName(t *testing.T) {
	tests := []struct {
		val      string
		expected string
	}{
		{"[user]", "user"},
		{"[]", ""},
		{"[", ""},
		{"", "undefined"},
		{"plain", "lai"},
	}

	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			assert.Equal(t, tt.expected, variableName(tt.val))
		})
	}
}
