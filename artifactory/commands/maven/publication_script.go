package maven

import (
	"bytes"
	"text/template"

	"github.com/jfrog/jfrog-client-go/utils/errorutils"
)

const publicationScriptTemplate = `
apply plugin: 'maven-publish'

task androidSourcesJar(type: Jar) {
    archiveClassifier = 'sources'
    from android.sourceSets.main.java.srcDirs
}

artifacts {
    archives androidSourcesJar
}

publishing {
    publications {
        release(MavenPublication) {
            afterEvaluate {
                groupId = "{{.GroupId}}"
                artifactId = "{{.ArtifactId}}"
                version = "{{.Version}}"
                from components.release
                artifact tasks.androidSourcesJar
            }
        }
    }
{{- if .RepositoryStatement}}

{{.RepositoryStatement}}
{{- end}}
  }`

var publicationScript = template.Must(template.New("publication").Parse(publicationScriptTemplate))

// PublicationOptions describes the Maven publication appended to the container build.gradle.
// An empty RepositoryStatement omits the repositories section.
type PublicationOptions struct {
	GroupId             string
	ArtifactId          string
	Version             string
	RepositoryStatement string
}

// BuildPublicationScript renders the maven-publish configuration of the container library module.
func BuildPublicationScript(opts PublicationOptions) (string, error) {
	var buf bytes.Buffer
	if err := publicationScript.Execute(&buf, opts); err != nil {
		return "", errorutils.CheckErrorf("failed to render the publication script: %w", err)
	}
	return buf.String(), nil
}
